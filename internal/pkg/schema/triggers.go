package schema

import (
	"github.com/hkwire/hkctl/internal/pkg/wire"
)

// TriggerHeader carries the fields common to both trigger variants.
type TriggerHeader struct {
	UUID         string
	Name         string
	IsEnabled    bool
	LastFireDate uint64
	ActionSets   []NamedRef

	unknown []wire.Field
}

const (
	fTriggerHeaderUUID         uint16 = 1
	fTriggerHeaderName         uint16 = 2
	fTriggerHeaderIsEnabled    uint16 = 3
	fTriggerHeaderLastFireDate uint16 = 4
	fTriggerHeaderActionSets   uint16 = 5
)

func (h *TriggerHeader) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fTriggerHeaderUUID, h.UUID)
	e.String(fTriggerHeaderName, h.Name)
	e.Bool(fTriggerHeaderIsEnabled, h.IsEnabled)
	e.U64(fTriggerHeaderLastFireDate, h.LastFireDate)
	for i := range h.ActionSets {
		e.Message(fTriggerHeaderActionSets, &h.ActionSets[i])
	}
	e.Unknown(h.unknown)
	return e.Bytes()
}

func (h *TriggerHeader) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fTriggerHeaderUUID:
			h.UUID, err = f.String()
		case fTriggerHeaderName:
			h.Name, err = f.String()
		case fTriggerHeaderIsEnabled:
			h.IsEnabled, err = f.Bool()
		case fTriggerHeaderLastFireDate:
			h.LastFireDate, err = f.U64()
		case fTriggerHeaderActionSets:
			var ref NamedRef
			if err = unmarshalNested(f, &ref); err == nil {
				h.ActionSets = append(h.ActionSets, ref)
			}
		default:
			h.unknown = append(h.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// EventTrigger fires its action sets when one of its events occurs.
type EventTrigger struct {
	Header          TriggerHeader
	ActivationState ActivationState
	ExecutesOnce    bool
	Events          []Event
	EndEvents       []Event

	unknown []wire.Field
}

const (
	fEventTriggerHeader          uint16 = 1
	fEventTriggerActivationState uint16 = 2
	fEventTriggerExecutesOnce    uint16 = 3
	fEventTriggerEvents          uint16 = 4
	fEventTriggerEndEvents       uint16 = 5
)

func (t *EventTrigger) MarshalWire() []byte {
	var e wire.Encoder
	e.Message(fEventTriggerHeader, &t.Header)
	e.U32(fEventTriggerActivationState, uint32(t.ActivationState))
	e.Bool(fEventTriggerExecutesOnce, t.ExecutesOnce)
	for i := range t.Events {
		e.Message(fEventTriggerEvents, &t.Events[i])
	}
	for i := range t.EndEvents {
		e.Message(fEventTriggerEndEvents, &t.EndEvents[i])
	}
	e.Unknown(t.unknown)
	return e.Bytes()
}

func (t *EventTrigger) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEventTriggerHeader:
			err = unmarshalNested(f, &t.Header)
		case fEventTriggerActivationState:
			t.ActivationState, err = enumField(f, ActivationStateEnabled)
		case fEventTriggerExecutesOnce:
			t.ExecutesOnce, err = f.Bool()
		case fEventTriggerEvents:
			var ev Event
			if err = unmarshalNested(f, &ev); err == nil {
				t.Events = append(t.Events, ev)
			}
		case fEventTriggerEndEvents:
			var ev Event
			if err = unmarshalNested(f, &ev); err == nil {
				t.EndEvents = append(t.EndEvents, ev)
			}
		default:
			t.unknown = append(t.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// TimerTrigger fires its action sets on a schedule.
type TimerTrigger struct {
	Header     TriggerHeader
	FireDate   uint64
	Recurrence uint64

	unknown []wire.Field
}

const (
	fTimerTriggerHeader     uint16 = 1
	fTimerTriggerFireDate   uint16 = 2
	fTimerTriggerRecurrence uint16 = 3
)

func (t *TimerTrigger) MarshalWire() []byte {
	var e wire.Encoder
	e.Message(fTimerTriggerHeader, &t.Header)
	e.U64(fTimerTriggerFireDate, t.FireDate)
	e.U64(fTimerTriggerRecurrence, t.Recurrence)
	e.Unknown(t.unknown)
	return e.Bytes()
}

func (t *TimerTrigger) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fTimerTriggerHeader:
			err = unmarshalNested(f, &t.Header)
		case fTimerTriggerFireDate:
			t.FireDate, err = f.U64()
		case fTimerTriggerRecurrence:
			t.Recurrence, err = f.U64()
		default:
			t.unknown = append(t.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Trigger is a tagged union over the two trigger variants; exactly one is
// set.
type Trigger struct {
	Event *EventTrigger
	Timer *TimerTrigger

	unknown []wire.Field
}

const (
	fTriggerEvent uint16 = 1
	fTriggerTimer uint16 = 2
)

func (t *Trigger) MarshalWire() []byte {
	var e wire.Encoder
	if t.Event != nil {
		e.Message(fTriggerEvent, t.Event)
	}
	if t.Timer != nil {
		e.Message(fTriggerTimer, t.Timer)
	}
	e.Unknown(t.unknown)
	return e.Bytes()
}

func (t *Trigger) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	tags := 0
	for _, f := range fields {
		var err error
		switch f.ID {
		case fTriggerEvent:
			v := &EventTrigger{}
			if err = unmarshalNested(f, v); err == nil {
				t.Event = v
				tags++
			}
		case fTriggerTimer:
			v := &TimerTrigger{}
			if err = unmarshalNested(f, v); err == nil {
				t.Timer = v
				tags++
			}
		default:
			t.unknown = append(t.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	if tags != 1 {
		return Statusf(StatusInvalidArgument, "trigger must carry exactly one variant, got %d", tags)
	}
	return nil
}

// TriggerInfo returns the common header of whichever variant is set.
func (t *Trigger) TriggerInfo() *TriggerHeader {
	switch {
	case t.Event != nil:
		return &t.Event.Header
	case t.Timer != nil:
		return &t.Timer.Header
	}
	return nil
}
