package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeSplitRoundTrip(t *testing.T) {
	var e Encoder
	e.Bool(1, true)
	e.U32(2, 0xDEADBEEF)
	e.U64(3, 1<<40)
	e.I64(4, -42)
	e.F32(5, 1.5)
	e.F64(6, -2.25)
	e.String(7, "lounge")
	e.Data(8, []byte{0x01, 0x02})

	fields, err := Split(e.Bytes())
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(fields) != 8 {
		t.Fatalf("expected 8 fields, got %d", len(fields))
	}

	if v, err := fields[0].Bool(); err != nil || !v {
		t.Errorf("bool: %v %v", v, err)
	}
	if v, err := fields[1].U32(); err != nil || v != 0xDEADBEEF {
		t.Errorf("u32: %v %v", v, err)
	}
	if v, err := fields[2].U64(); err != nil || v != 1<<40 {
		t.Errorf("u64: %v %v", v, err)
	}
	if v, err := fields[3].I64(); err != nil || v != -42 {
		t.Errorf("i64: %v %v", v, err)
	}
	if v, err := fields[4].F32(); err != nil || v != 1.5 {
		t.Errorf("f32: %v %v", v, err)
	}
	if v, err := fields[5].F64(); err != nil || v != -2.25 {
		t.Errorf("f64: %v %v", v, err)
	}
	if v, err := fields[6].String(); err != nil || v != "lounge" {
		t.Errorf("string: %q %v", v, err)
	}
	if v, err := fields[7].Bytes(); err != nil || !bytes.Equal(v, []byte{0x01, 0x02}) {
		t.Errorf("bytes: %v %v", v, err)
	}
}

func TestSplitEmptyPayload(t *testing.T) {
	fields, err := Split([]byte{})
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(fields))
	}
}

func TestSplitShortHeader(t *testing.T) {
	if _, err := Split([]byte{0, 1, TypeBool}); !errors.Is(err, ErrShortFieldHeader) {
		t.Fatalf("expected ErrShortFieldHeader, got %v", err)
	}
}

func TestSplitShortValue(t *testing.T) {
	// id=1, type=string, len=5, only 2 value bytes follow
	payload := []byte{0, 1, TypeString, 0, 0, 0, 5, 'a', 'b'}
	if _, err := Split(payload); !errors.Is(err, ErrShortFieldValue) {
		t.Fatalf("expected ErrShortFieldValue, got %v", err)
	}
}

func TestFieldTypeMismatch(t *testing.T) {
	var e Encoder
	e.String(1, "not a number")

	fields, err := Split(e.Bytes())
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if _, err := fields[0].U32(); err == nil {
		t.Fatal("expected a type mismatch error")
	}
}

func TestUnknownFieldsReEmittedUnchanged(t *testing.T) {
	var e Encoder
	e.String(1, "known")
	e.Data(9999, []byte{0xAA, 0xBB})

	fields, err := Split(e.Bytes())
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	var out Encoder
	out.Unknown(fields[1:])

	again, err := Split(out.Bytes())
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(again) != 1 || again[0].ID != 9999 || again[0].Type != TypeBytes || !bytes.Equal(again[0].Value, []byte{0xAA, 0xBB}) {
		t.Fatalf("unknown field not preserved: %+v", again)
	}
}

func TestEmptyEncoderYieldsEmptyPayload(t *testing.T) {
	var e Encoder
	if got := e.Bytes(); len(got) != 0 {
		t.Fatalf("expected empty payload, got %d bytes", len(got))
	}
}
