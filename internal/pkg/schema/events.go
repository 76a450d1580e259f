package schema

import (
	"github.com/hkwire/hkctl/internal/pkg/wire"
)

// Coordinate is a geographic point.
type Coordinate struct {
	Latitude  float64
	Longitude float64

	unknown []wire.Field
}

const (
	fCoordinateLatitude  uint16 = 1
	fCoordinateLongitude uint16 = 2
)

func (c *Coordinate) MarshalWire() []byte {
	var e wire.Encoder
	e.F64(fCoordinateLatitude, c.Latitude)
	e.F64(fCoordinateLongitude, c.Longitude)
	e.Unknown(c.unknown)
	return e.Bytes()
}

func (c *Coordinate) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fCoordinateLatitude:
			c.Latitude, err = f.F64()
		case fCoordinateLongitude:
			c.Longitude, err = f.F64()
		default:
			c.unknown = append(c.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Region is a circular geofence.
type Region struct {
	Center *Coordinate
	Radius float64

	unknown []wire.Field
}

const (
	fRegionCenter uint16 = 1
	fRegionRadius uint16 = 2
)

func (r *Region) MarshalWire() []byte {
	var e wire.Encoder
	if r.Center != nil {
		e.Message(fRegionCenter, r.Center)
	}
	e.F64(fRegionRadius, r.Radius)
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *Region) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fRegionCenter:
			c := &Coordinate{}
			if err = unmarshalNested(f, c); err == nil {
				r.Center = c
			}
		case fRegionRadius:
			r.Radius, err = f.F64()
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// LocationEvent fires on entering or leaving a region.
type LocationEvent struct {
	UUID          string
	Region        *Region
	NotifyOnEntry bool
	NotifyOnExit  bool

	unknown []wire.Field
}

const (
	fLocationEventUUID          uint16 = 1
	fLocationEventRegion        uint16 = 2
	fLocationEventNotifyOnEntry uint16 = 3
	fLocationEventNotifyOnExit  uint16 = 4
)

func (ev *LocationEvent) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fLocationEventUUID, ev.UUID)
	if ev.Region != nil {
		e.Message(fLocationEventRegion, ev.Region)
	}
	e.Bool(fLocationEventNotifyOnEntry, ev.NotifyOnEntry)
	e.Bool(fLocationEventNotifyOnExit, ev.NotifyOnExit)
	e.Unknown(ev.unknown)
	return e.Bytes()
}

func (ev *LocationEvent) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fLocationEventUUID:
			ev.UUID, err = f.String()
		case fLocationEventRegion:
			r := &Region{}
			if err = unmarshalNested(f, r); err == nil {
				ev.Region = r
			}
		case fLocationEventNotifyOnEntry:
			ev.NotifyOnEntry, err = f.Bool()
		case fLocationEventNotifyOnExit:
			ev.NotifyOnExit, err = f.Bool()
		default:
			ev.unknown = append(ev.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// CalendarEvent fires at an absolute date.
type CalendarEvent struct {
	UUID     string
	FireDate uint64

	unknown []wire.Field
}

const (
	fCalendarEventUUID     uint16 = 1
	fCalendarEventFireDate uint16 = 2
)

func (ev *CalendarEvent) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fCalendarEventUUID, ev.UUID)
	e.U64(fCalendarEventFireDate, ev.FireDate)
	e.Unknown(ev.unknown)
	return e.Bytes()
}

func (ev *CalendarEvent) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fCalendarEventUUID:
			ev.UUID, err = f.String()
		case fCalendarEventFireDate:
			ev.FireDate, err = f.U64()
		default:
			ev.unknown = append(ev.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SignificantTimeEvent fires at a solar event plus an offset.
type SignificantTimeEvent struct {
	UUID             string
	SignificantEvent SignificantEvent
	Offset           int64

	unknown []wire.Field
}

const (
	fSignificantTimeEventUUID   uint16 = 1
	fSignificantTimeEventEvent  uint16 = 2
	fSignificantTimeEventOffset uint16 = 3
)

func (ev *SignificantTimeEvent) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fSignificantTimeEventUUID, ev.UUID)
	e.U32(fSignificantTimeEventEvent, uint32(ev.SignificantEvent))
	e.I64(fSignificantTimeEventOffset, ev.Offset)
	e.Unknown(ev.unknown)
	return e.Bytes()
}

func (ev *SignificantTimeEvent) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fSignificantTimeEventUUID:
			ev.UUID, err = f.String()
		case fSignificantTimeEventEvent:
			ev.SignificantEvent, err = enumField(f, SignificantEventSunset)
		case fSignificantTimeEventOffset:
			ev.Offset, err = f.I64()
		default:
			ev.unknown = append(ev.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DurationEvent fires after a fixed number of seconds.
type DurationEvent struct {
	UUID     string
	Duration uint64

	unknown []wire.Field
}

const (
	fDurationEventUUID     uint16 = 1
	fDurationEventDuration uint16 = 2
)

func (ev *DurationEvent) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fDurationEventUUID, ev.UUID)
	e.U64(fDurationEventDuration, ev.Duration)
	e.Unknown(ev.unknown)
	return e.Bytes()
}

func (ev *DurationEvent) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fDurationEventUUID:
			ev.UUID, err = f.String()
		case fDurationEventDuration:
			ev.Duration, err = f.U64()
		default:
			ev.unknown = append(ev.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// CharacteristicEvent fires when a characteristic reaches a value, or on
// any change when TriggerValue is absent.
type CharacteristicEvent struct {
	UUID           string
	Characteristic *NamedRef
	TriggerValue   *SampledValue

	unknown []wire.Field
}

const (
	fCharacteristicEventUUID           uint16 = 1
	fCharacteristicEventCharacteristic uint16 = 2
	fCharacteristicEventTriggerValue   uint16 = 3
)

func (ev *CharacteristicEvent) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fCharacteristicEventUUID, ev.UUID)
	if ev.Characteristic != nil {
		e.Message(fCharacteristicEventCharacteristic, ev.Characteristic)
	}
	if ev.TriggerValue != nil {
		e.Message(fCharacteristicEventTriggerValue, ev.TriggerValue)
	}
	e.Unknown(ev.unknown)
	return e.Bytes()
}

func (ev *CharacteristicEvent) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fCharacteristicEventUUID:
			ev.UUID, err = f.String()
		case fCharacteristicEventCharacteristic:
			ref := &NamedRef{}
			if err = unmarshalNested(f, ref); err == nil {
				ev.Characteristic = ref
			}
		case fCharacteristicEventTriggerValue:
			v := &SampledValue{}
			if err = unmarshalNested(f, v); err == nil {
				ev.TriggerValue = v
			}
		default:
			ev.unknown = append(ev.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ThresholdRange bounds a characteristic value; either side may be open.
type ThresholdRange struct {
	MinValue *Number
	MaxValue *Number

	unknown []wire.Field
}

const (
	fThresholdRangeMin uint16 = 1
	fThresholdRangeMax uint16 = 2
)

func (r *ThresholdRange) MarshalWire() []byte {
	var e wire.Encoder
	if r.MinValue != nil {
		e.Message(fThresholdRangeMin, r.MinValue)
	}
	if r.MaxValue != nil {
		e.Message(fThresholdRangeMax, r.MaxValue)
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *ThresholdRange) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fThresholdRangeMin:
			n := &Number{}
			if err = unmarshalNested(f, n); err == nil {
				r.MinValue = n
			}
		case fThresholdRangeMax:
			n := &Number{}
			if err = unmarshalNested(f, n); err == nil {
				r.MaxValue = n
			}
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// CharacteristicThresholdRangeEvent fires while a characteristic value is
// inside a range.
type CharacteristicThresholdRangeEvent struct {
	UUID           string
	Characteristic *NamedRef
	Range          *ThresholdRange

	unknown []wire.Field
}

const (
	fThresholdRangeEventUUID           uint16 = 1
	fThresholdRangeEventCharacteristic uint16 = 2
	fThresholdRangeEventRange          uint16 = 3
)

func (ev *CharacteristicThresholdRangeEvent) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fThresholdRangeEventUUID, ev.UUID)
	if ev.Characteristic != nil {
		e.Message(fThresholdRangeEventCharacteristic, ev.Characteristic)
	}
	if ev.Range != nil {
		e.Message(fThresholdRangeEventRange, ev.Range)
	}
	e.Unknown(ev.unknown)
	return e.Bytes()
}

func (ev *CharacteristicThresholdRangeEvent) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fThresholdRangeEventUUID:
			ev.UUID, err = f.String()
		case fThresholdRangeEventCharacteristic:
			ref := &NamedRef{}
			if err = unmarshalNested(f, ref); err == nil {
				ev.Characteristic = ref
			}
		case fThresholdRangeEventRange:
			r := &ThresholdRange{}
			if err = unmarshalNested(f, r); err == nil {
				ev.Range = r
			}
		default:
			ev.unknown = append(ev.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// PresenceEvent fires on user arrival or departure.
type PresenceEvent struct {
	UUID          string
	PresenceEvent PresenceEventType
	PresenceUser  PresenceUserType

	unknown []wire.Field
}

const (
	fPresenceEventUUID uint16 = 1
	fPresenceEventType uint16 = 2
	fPresenceEventUser uint16 = 3
)

func (ev *PresenceEvent) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fPresenceEventUUID, ev.UUID)
	e.U32(fPresenceEventType, uint32(ev.PresenceEvent))
	e.U32(fPresenceEventUser, uint32(ev.PresenceUser))
	e.Unknown(ev.unknown)
	return e.Bytes()
}

func (ev *PresenceEvent) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fPresenceEventUUID:
			ev.UUID, err = f.String()
		case fPresenceEventType:
			ev.PresenceEvent, err = enumField(f, PresenceEventNotAtHome)
		case fPresenceEventUser:
			ev.PresenceUser, err = enumField(f, PresenceUserCustomUsers)
		default:
			ev.unknown = append(ev.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Event is a tagged union over the seven event variants; exactly one is
// set.
type Event struct {
	Location        *LocationEvent
	Calendar        *CalendarEvent
	SignificantTime *SignificantTimeEvent
	Duration        *DurationEvent
	Characteristic  *CharacteristicEvent
	ThresholdRange  *CharacteristicThresholdRangeEvent
	Presence        *PresenceEvent

	unknown []wire.Field
}

const (
	fEventLocation        uint16 = 1
	fEventCalendar        uint16 = 2
	fEventSignificantTime uint16 = 3
	fEventDuration        uint16 = 4
	fEventCharacteristic  uint16 = 5
	fEventThresholdRange  uint16 = 6
	fEventPresence        uint16 = 7
)

func (ev *Event) MarshalWire() []byte {
	var e wire.Encoder
	if ev.Location != nil {
		e.Message(fEventLocation, ev.Location)
	}
	if ev.Calendar != nil {
		e.Message(fEventCalendar, ev.Calendar)
	}
	if ev.SignificantTime != nil {
		e.Message(fEventSignificantTime, ev.SignificantTime)
	}
	if ev.Duration != nil {
		e.Message(fEventDuration, ev.Duration)
	}
	if ev.Characteristic != nil {
		e.Message(fEventCharacteristic, ev.Characteristic)
	}
	if ev.ThresholdRange != nil {
		e.Message(fEventThresholdRange, ev.ThresholdRange)
	}
	if ev.Presence != nil {
		e.Message(fEventPresence, ev.Presence)
	}
	e.Unknown(ev.unknown)
	return e.Bytes()
}

func (ev *Event) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	tags := 0
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEventLocation:
			v := &LocationEvent{}
			if err = unmarshalNested(f, v); err == nil {
				ev.Location = v
				tags++
			}
		case fEventCalendar:
			v := &CalendarEvent{}
			if err = unmarshalNested(f, v); err == nil {
				ev.Calendar = v
				tags++
			}
		case fEventSignificantTime:
			v := &SignificantTimeEvent{}
			if err = unmarshalNested(f, v); err == nil {
				ev.SignificantTime = v
				tags++
			}
		case fEventDuration:
			v := &DurationEvent{}
			if err = unmarshalNested(f, v); err == nil {
				ev.Duration = v
				tags++
			}
		case fEventCharacteristic:
			v := &CharacteristicEvent{}
			if err = unmarshalNested(f, v); err == nil {
				ev.Characteristic = v
				tags++
			}
		case fEventThresholdRange:
			v := &CharacteristicThresholdRangeEvent{}
			if err = unmarshalNested(f, v); err == nil {
				ev.ThresholdRange = v
				tags++
			}
		case fEventPresence:
			v := &PresenceEvent{}
			if err = unmarshalNested(f, v); err == nil {
				ev.Presence = v
				tags++
			}
		default:
			ev.unknown = append(ev.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	if tags != 1 {
		return Statusf(StatusInvalidArgument, "event must carry exactly one variant, got %d", tags)
	}
	return nil
}
