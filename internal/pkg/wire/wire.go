package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

/*
 * Tag-length-value field codec used for every message on the wire.
 *
 * A field is a 7 byte header followed by the value bytes:
 *   field number  uint16 big-endian
 *   type id       uint8
 *   value length  uint32 big-endian
 *
 * Field numbers are fixed per message for compatibility. Decoders keep
 * fields they do not recognise and re-emit them unchanged.
 */

const HeaderLen = 7

// Type IDs.
const (
	TypeBool    uint8 = 1
	TypeU32     uint8 = 2
	TypeU64     uint8 = 3
	TypeI64     uint8 = 4
	TypeF32     uint8 = 5
	TypeF64     uint8 = 6
	TypeString  uint8 = 7
	TypeBytes   uint8 = 8
	TypeMessage uint8 = 9
)

var (
	ErrShortFieldHeader = errors.New("wire: short field header")
	ErrShortFieldValue  = errors.New("wire: short field value")
)

// Marshaler is implemented by every schema message.
type Marshaler interface {
	MarshalWire() []byte
}

// Field is one decoded TLV field.
type Field struct {
	ID    uint16
	Type  uint8
	Value []byte
}

// Split decodes a payload into its fields, in wire order.
func Split(payload []byte) ([]Field, error) {
	fields := make([]Field, 0)
	i := 0
	for i < len(payload) {
		if len(payload)-i < HeaderLen {
			return nil, ErrShortFieldHeader
		}
		id := binary.BigEndian.Uint16(payload[i : i+2])
		typeID := payload[i+2]
		l := binary.BigEndian.Uint32(payload[i+3 : i+7])
		i += HeaderLen
		if uint32(len(payload)-i) < l {
			return nil, ErrShortFieldValue
		}
		val := make([]byte, l)
		copy(val, payload[i:i+int(l)])
		i += int(l)
		fields = append(fields, Field{ID: id, Type: typeID, Value: val})
	}
	return fields, nil
}

func (f Field) mustType(expected uint8, length int) error {
	if f.Type != expected {
		return fmt.Errorf("wire: field %d type mismatch: got %d want %d", f.ID, f.Type, expected)
	}
	if length >= 0 && len(f.Value) != length {
		return fmt.Errorf("wire: field %d invalid value length %d", f.ID, len(f.Value))
	}
	return nil
}

func (f Field) Bool() (bool, error) {
	if err := f.mustType(TypeBool, 1); err != nil {
		return false, err
	}
	return f.Value[0] != 0, nil
}

func (f Field) U32() (uint32, error) {
	if err := f.mustType(TypeU32, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(f.Value), nil
}

func (f Field) U64() (uint64, error) {
	if err := f.mustType(TypeU64, 8); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(f.Value), nil
}

func (f Field) I64() (int64, error) {
	if err := f.mustType(TypeI64, 8); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(f.Value)), nil
}

func (f Field) F32() (float32, error) {
	if err := f.mustType(TypeF32, 4); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(f.Value)), nil
}

func (f Field) F64() (float64, error) {
	if err := f.mustType(TypeF64, 8); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(f.Value)), nil
}

func (f Field) String() (string, error) {
	if err := f.mustType(TypeString, -1); err != nil {
		return "", err
	}
	return string(f.Value), nil
}

func (f Field) Bytes() ([]byte, error) {
	if err := f.mustType(TypeBytes, -1); err != nil {
		return nil, err
	}
	return f.Value, nil
}

// Message returns the nested message payload.
func (f Field) Message() ([]byte, error) {
	if err := f.mustType(TypeMessage, -1); err != nil {
		return nil, err
	}
	return f.Value, nil
}

// Encoder accumulates fields for one message payload.
type Encoder struct {
	buf []byte
}

func (e *Encoder) append(id uint16, typeID uint8, value []byte) {
	var hdr [HeaderLen]byte
	binary.BigEndian.PutUint16(hdr[0:2], id)
	hdr[2] = typeID
	binary.BigEndian.PutUint32(hdr[3:7], uint32(len(value)))
	e.buf = append(e.buf, hdr[:]...)
	e.buf = append(e.buf, value...)
}

func (e *Encoder) Bool(id uint16, v bool) {
	b := byte(0)
	if v {
		b = 1
	}
	e.append(id, TypeBool, []byte{b})
}

func (e *Encoder) U32(id uint16, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.append(id, TypeU32, b[:])
}

func (e *Encoder) U64(id uint16, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.append(id, TypeU64, b[:])
}

func (e *Encoder) I64(id uint16, v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	e.append(id, TypeI64, b[:])
}

func (e *Encoder) F32(id uint16, v float32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(v))
	e.append(id, TypeF32, b[:])
}

func (e *Encoder) F64(id uint16, v float64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
	e.append(id, TypeF64, b[:])
}

func (e *Encoder) String(id uint16, v string) {
	e.append(id, TypeString, []byte(v))
}

func (e *Encoder) Data(id uint16, v []byte) {
	e.append(id, TypeBytes, v)
}

func (e *Encoder) Message(id uint16, m Marshaler) {
	e.append(id, TypeMessage, m.MarshalWire())
}

// Unknown re-emits fields preserved from a previous decode.
func (e *Encoder) Unknown(fields []Field) {
	for _, f := range fields {
		e.append(f.ID, f.Type, f.Value)
	}
}

// Bytes returns the encoded payload.
func (e *Encoder) Bytes() []byte {
	if e.buf == nil {
		return []byte{}
	}
	return e.buf
}
