package schema

import (
	"fmt"

	"github.com/hkwire/hkctl/internal/pkg/wire"
)

// StatusCode is the wire error taxonomy. OK is never carried in an error.
type StatusCode int32

const (
	StatusOK                 StatusCode = 0
	StatusInvalidArgument    StatusCode = 1
	StatusNotFound           StatusCode = 2
	StatusAlreadyExists      StatusCode = 3
	StatusFailedPrecondition StatusCode = 4
	StatusUnavailable        StatusCode = 5
	StatusDeadlineExceeded   StatusCode = 6
	StatusInternal           StatusCode = 7
)

var statusCodeNames = map[StatusCode]string{
	StatusOK:                 "OK",
	StatusInvalidArgument:    "InvalidArgument",
	StatusNotFound:           "NotFound",
	StatusAlreadyExists:      "AlreadyExists",
	StatusFailedPrecondition: "FailedPrecondition",
	StatusUnavailable:        "Unavailable",
	StatusDeadlineExceeded:   "DeadlineExceeded",
	StatusInternal:           "Internal",
}

func (c StatusCode) String() string {
	if s, ok := statusCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("StatusCode(%d)", int32(c))
}

// Status is the typed service error carried on the wire for any non-OK
// response. It implements error so the service and client layers can pass
// it around directly.
type Status struct {
	Code    StatusCode
	Message string

	unknown []wire.Field
}

// Statusf builds a service error.
func Statusf(code StatusCode, format string, args ...interface{}) *Status {
	return &Status{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (s *Status) Error() string {
	return s.Message
}

const (
	fStatusCode    uint16 = 1
	fStatusMessage uint16 = 2
)

func (s *Status) MarshalWire() []byte {
	var e wire.Encoder
	e.U32(fStatusCode, uint32(s.Code))
	e.String(fStatusMessage, s.Message)
	e.Unknown(s.unknown)
	return e.Bytes()
}

func (s *Status) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fStatusCode:
			s.Code, err = enumField(f, StatusInternal)
		case fStatusMessage:
			s.Message, err = f.String()
		default:
			s.unknown = append(s.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
