package schema

import (
	"github.com/hkwire/hkctl/internal/pkg/wire"
)

// GenericAction is an action the platform cannot describe further.
type GenericAction struct {
	UUID string

	unknown []wire.Field
}

const fGenericActionUUID uint16 = 1

func (a *GenericAction) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fGenericActionUUID, a.UUID)
	e.Unknown(a.unknown)
	return e.Bytes()
}

func (a *GenericAction) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fGenericActionUUID:
			a.UUID, err = f.String()
		default:
			a.unknown = append(a.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// CharacteristicAction writes a characteristic when its action set runs.
// It is only valid against a writable characteristic.
type CharacteristicAction struct {
	UUID           string
	Characteristic *Characteristic

	unknown []wire.Field
}

const (
	fCharacteristicActionUUID           uint16 = 1
	fCharacteristicActionCharacteristic uint16 = 2
)

func (a *CharacteristicAction) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fCharacteristicActionUUID, a.UUID)
	if a.Characteristic != nil {
		e.Message(fCharacteristicActionCharacteristic, a.Characteristic)
	}
	e.Unknown(a.unknown)
	return e.Bytes()
}

func (a *CharacteristicAction) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fCharacteristicActionUUID:
			a.UUID, err = f.String()
		case fCharacteristicActionCharacteristic:
			c := &Characteristic{}
			if err = unmarshalNested(f, c); err == nil {
				a.Characteristic = c
			}
		default:
			a.unknown = append(a.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Action is a tagged union: exactly one variant is set.
type Action struct {
	Generic        *GenericAction
	Characteristic *CharacteristicAction

	unknown []wire.Field
}

const (
	fActionGeneric        uint16 = 1
	fActionCharacteristic uint16 = 2
)

func (a *Action) MarshalWire() []byte {
	var e wire.Encoder
	if a.Generic != nil {
		e.Message(fActionGeneric, a.Generic)
	}
	if a.Characteristic != nil {
		e.Message(fActionCharacteristic, a.Characteristic)
	}
	e.Unknown(a.unknown)
	return e.Bytes()
}

func (a *Action) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	tags := 0
	for _, f := range fields {
		var err error
		switch f.ID {
		case fActionGeneric:
			ga := &GenericAction{}
			if err = unmarshalNested(f, ga); err == nil {
				a.Generic = ga
				tags++
			}
		case fActionCharacteristic:
			ca := &CharacteristicAction{}
			if err = unmarshalNested(f, ca); err == nil {
				a.Characteristic = ca
				tags++
			}
		default:
			a.unknown = append(a.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	if tags != 1 {
		return Statusf(StatusInvalidArgument, "action must carry exactly one variant, got %d", tags)
	}
	return nil
}

// ActionSet is a named bundle of actions executed atomically.
type ActionSet struct {
	UUID          string
	Name          string
	ActionSetType ActionSetType
	IsExecuting   bool
	Actions       []Action

	unknown []wire.Field
}

const (
	fActionSetUUID        uint16 = 1
	fActionSetName        uint16 = 2
	fActionSetType        uint16 = 3
	fActionSetIsExecuting uint16 = 4
	fActionSetActions     uint16 = 5
)

func (s *ActionSet) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fActionSetUUID, s.UUID)
	e.String(fActionSetName, s.Name)
	e.U32(fActionSetType, uint32(s.ActionSetType))
	e.Bool(fActionSetIsExecuting, s.IsExecuting)
	for i := range s.Actions {
		e.Message(fActionSetActions, &s.Actions[i])
	}
	e.Unknown(s.unknown)
	return e.Bytes()
}

func (s *ActionSet) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fActionSetUUID:
			s.UUID, err = f.String()
		case fActionSetName:
			s.Name, err = f.String()
		case fActionSetType:
			s.ActionSetType, err = enumField(f, ActionSetTypeTriggerOwned)
		case fActionSetIsExecuting:
			s.IsExecuting, err = f.Bool()
		case fActionSetActions:
			var a Action
			if err = unmarshalNested(f, &a); err == nil {
				s.Actions = append(s.Actions, a)
			}
		default:
			s.unknown = append(s.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ServiceGroup is a user defined collection of services across
// accessories.
type ServiceGroup struct {
	UUID     string
	Name     string
	Services []NamedRef

	unknown []wire.Field
}

const (
	fServiceGroupUUID     uint16 = 1
	fServiceGroupName     uint16 = 2
	fServiceGroupServices uint16 = 3
)

func (g *ServiceGroup) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fServiceGroupUUID, g.UUID)
	e.String(fServiceGroupName, g.Name)
	for i := range g.Services {
		e.Message(fServiceGroupServices, &g.Services[i])
	}
	e.Unknown(g.unknown)
	return e.Bytes()
}

func (g *ServiceGroup) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fServiceGroupUUID:
			g.UUID, err = f.String()
		case fServiceGroupName:
			g.Name, err = f.String()
		case fServiceGroupServices:
			var ref NamedRef
			if err = unmarshalNested(f, &ref); err == nil {
				g.Services = append(g.Services, ref)
			}
		default:
			g.unknown = append(g.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
