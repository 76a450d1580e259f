package schema

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/hkwire/hkctl/internal/pkg/wire"
)

/*
 * Number and SampledValue are tagged unions: exactly one variant is set.
 * The tag is authoritative - a receiver never widens or narrows a value
 * across tags, so unsigned 64-bit counters survive next to float-valued
 * characteristics without losing bits.
 */

// Number carries one numeric value in one of four representations.
type Number struct {
	SignedInt   *int64
	UnsignedInt *uint64
	Float       *float32
	Double      *float64

	unknown []wire.Field
}

func SignedNumber(v int64) *Number    { return &Number{SignedInt: &v} }
func UnsignedNumber(v uint64) *Number { return &Number{UnsignedInt: &v} }
func FloatNumber(v float32) *Number   { return &Number{Float: &v} }
func DoubleNumber(v float64) *Number  { return &Number{Double: &v} }

const (
	fNumberSigned   uint16 = 1
	fNumberUnsigned uint16 = 2
	fNumberFloat    uint16 = 3
	fNumberDouble   uint16 = 4
)

func (n *Number) MarshalWire() []byte {
	var e wire.Encoder
	if n.SignedInt != nil {
		e.I64(fNumberSigned, *n.SignedInt)
	}
	if n.UnsignedInt != nil {
		e.U64(fNumberUnsigned, *n.UnsignedInt)
	}
	if n.Float != nil {
		e.F32(fNumberFloat, *n.Float)
	}
	if n.Double != nil {
		e.F64(fNumberDouble, *n.Double)
	}
	e.Unknown(n.unknown)
	return e.Bytes()
}

func (n *Number) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	tags := 0
	for _, f := range fields {
		var err error
		switch f.ID {
		case fNumberSigned:
			var v int64
			if v, err = f.I64(); err == nil {
				n.SignedInt = &v
				tags++
			}
		case fNumberUnsigned:
			var v uint64
			if v, err = f.U64(); err == nil {
				n.UnsignedInt = &v
				tags++
			}
		case fNumberFloat:
			var v float32
			if v, err = f.F32(); err == nil {
				n.Float = &v
				tags++
			}
		case fNumberDouble:
			var v float64
			if v, err = f.F64(); err == nil {
				n.Double = &v
				tags++
			}
		default:
			n.unknown = append(n.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	if tags != 1 {
		return Statusf(StatusInvalidArgument, "number must carry exactly one value, got %d", tags)
	}
	return nil
}

// SameKind reports whether both numbers use the same representation tag.
func (n *Number) SameKind(o *Number) bool {
	switch {
	case n.SignedInt != nil:
		return o.SignedInt != nil
	case n.UnsignedInt != nil:
		return o.UnsignedInt != nil
	case n.Float != nil:
		return o.Float != nil
	case n.Double != nil:
		return o.Double != nil
	}
	return false
}

// LessOrEqual compares two numbers of the same kind.
func (n *Number) LessOrEqual(o *Number) bool {
	switch {
	case n.SignedInt != nil && o.SignedInt != nil:
		return *n.SignedInt <= *o.SignedInt
	case n.UnsignedInt != nil && o.UnsignedInt != nil:
		return *n.UnsignedInt <= *o.UnsignedInt
	case n.Float != nil && o.Float != nil:
		return *n.Float <= *o.Float
	case n.Double != nil && o.Double != nil:
		return *n.Double <= *o.Double
	}
	return false
}

func (n *Number) String() string {
	switch {
	case n == nil:
		return "<None>"
	case n.SignedInt != nil:
		return strconv.FormatInt(*n.SignedInt, 10)
	case n.UnsignedInt != nil:
		return strconv.FormatUint(*n.UnsignedInt, 10)
	case n.Float != nil:
		return strconv.FormatFloat(float64(*n.Float), 'g', -1, 32)
	case n.Double != nil:
		return strconv.FormatFloat(*n.Double, 'g', -1, 64)
	}
	return "<None>"
}

// SampledValue is one observed characteristic value: a bool, a string, a
// number or opaque bytes. Data distinguishes presence by non-nil.
type SampledValue struct {
	Bool   *bool
	Str    *string
	Number *Number
	Data   []byte

	unknown []wire.Field
}

func BoolValue(v bool) *SampledValue      { return &SampledValue{Bool: &v} }
func StringValue(v string) *SampledValue  { return &SampledValue{Str: &v} }
func NumberValue(n *Number) *SampledValue { return &SampledValue{Number: n} }
func DataValue(b []byte) *SampledValue {
	if b == nil {
		b = []byte{}
	}
	return &SampledValue{Data: b}
}

const (
	fValueBool   uint16 = 1
	fValueString uint16 = 2
	fValueNumber uint16 = 3
	fValueData   uint16 = 4
)

func (v *SampledValue) MarshalWire() []byte {
	var e wire.Encoder
	if v.Bool != nil {
		e.Bool(fValueBool, *v.Bool)
	}
	if v.Str != nil {
		e.String(fValueString, *v.Str)
	}
	if v.Number != nil {
		e.Message(fValueNumber, v.Number)
	}
	if v.Data != nil {
		e.Data(fValueData, v.Data)
	}
	e.Unknown(v.unknown)
	return e.Bytes()
}

func (v *SampledValue) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	tags := 0
	for _, f := range fields {
		var err error
		switch f.ID {
		case fValueBool:
			var bv bool
			if bv, err = f.Bool(); err == nil {
				v.Bool = &bv
				tags++
			}
		case fValueString:
			var s string
			if s, err = f.String(); err == nil {
				v.Str = &s
				tags++
			}
		case fValueNumber:
			n := &Number{}
			if err = unmarshalNested(f, n); err == nil {
				v.Number = n
				tags++
			}
		case fValueData:
			var d []byte
			if d, err = f.Bytes(); err == nil {
				v.Data = d
				tags++
			}
		default:
			v.unknown = append(v.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	if tags != 1 {
		return Statusf(StatusInvalidArgument, "sampled value must carry exactly one variant, got %d", tags)
	}
	return nil
}

func (v *SampledValue) String() string {
	switch {
	case v == nil:
		return "<None>"
	case v.Bool != nil:
		return strconv.FormatBool(*v.Bool)
	case v.Str != nil:
		return *v.Str
	case v.Number != nil:
		return v.Number.String()
	case v.Data != nil:
		return fmt.Sprintf("{%d, b'%s'}", len(v.Data), hex.EncodeToString(v.Data))
	}
	return "<None>"
}

type unmarshaler interface {
	UnmarshalWire([]byte) error
}

func unmarshalNested(f wire.Field, m unmarshaler) error {
	payload, err := f.Message()
	if err != nil {
		return err
	}
	return m.UnmarshalWire(payload)
}
