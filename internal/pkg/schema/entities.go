package schema

import (
	"github.com/hkwire/hkctl/internal/pkg/wire"
)

// NamedRef is the minimal descriptor one entity embeds to reference
// another. The client never resolves references itself.
type NamedRef struct {
	UUID string
	Name string

	unknown []wire.Field
}

const (
	fRefUUID uint16 = 1
	fRefName uint16 = 2
)

func (r *NamedRef) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fRefUUID, r.UUID)
	e.String(fRefName, r.Name)
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *NamedRef) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fRefUUID:
			r.UUID, err = f.String()
		case fRefName:
			r.Name, err = f.String()
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Home is the top level container of the automation graph.
type Home struct {
	UUID      string
	Name      string
	IsPrimary bool
	HubState  HubState

	unknown []wire.Field
}

const (
	fHomeUUID      uint16 = 1
	fHomeName      uint16 = 2
	fHomeIsPrimary uint16 = 3
	fHomeHubState  uint16 = 4
)

func (h *Home) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fHomeUUID, h.UUID)
	e.String(fHomeName, h.Name)
	e.Bool(fHomeIsPrimary, h.IsPrimary)
	e.U32(fHomeHubState, uint32(h.HubState))
	e.Unknown(h.unknown)
	return e.Bytes()
}

func (h *Home) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fHomeUUID:
			h.UUID, err = f.String()
		case fHomeName:
			h.Name, err = f.String()
		case fHomeIsPrimary:
			h.IsPrimary, err = f.Bool()
		case fHomeHubState:
			h.HubState, err = enumField(f, HubStateNotAvailable)
		default:
			h.unknown = append(h.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Room belongs to exactly one home.
type Room struct {
	UUID        string
	Name        string
	Accessories []NamedRef

	unknown []wire.Field
}

const (
	fRoomUUID        uint16 = 1
	fRoomName        uint16 = 2
	fRoomAccessories uint16 = 3
)

func (r *Room) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fRoomUUID, r.UUID)
	e.String(fRoomName, r.Name)
	for i := range r.Accessories {
		e.Message(fRoomAccessories, &r.Accessories[i])
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *Room) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fRoomUUID:
			r.UUID, err = f.String()
		case fRoomName:
			r.Name, err = f.String()
		case fRoomAccessories:
			var ref NamedRef
			if err = unmarshalNested(f, &ref); err == nil {
				r.Accessories = append(r.Accessories, ref)
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

// Zone groups rooms across a home; rooms may belong to several zones.
type Zone struct {
	UUID  string
	Name  string
	Rooms []NamedRef

	unknown []wire.Field
}

const (
	fZoneUUID  uint16 = 1
	fZoneName  uint16 = 2
	fZoneRooms uint16 = 3
)

func (z *Zone) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fZoneUUID, z.UUID)
	e.String(fZoneName, z.Name)
	for i := range z.Rooms {
		e.Message(fZoneRooms, &z.Rooms[i])
	}
	e.Unknown(z.unknown)
	return e.Bytes()
}

func (z *Zone) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fZoneUUID:
			z.UUID, err = f.String()
		case fZoneName:
			z.Name, err = f.String()
		case fZoneRooms:
			var ref NamedRef
			if err = unmarshalNested(f, &ref); err == nil {
				z.Rooms = append(z.Rooms, ref)
			}
		default:
			z.unknown = append(z.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Profile is an accessory user profile.
type Profile struct {
	UUID                      string
	IsNetworkAccessRestricted bool
	Services                  []NamedRef

	unknown []wire.Field
}

const (
	fProfileUUID              uint16 = 1
	fProfileNetworkRestricted uint16 = 2
	fProfileServices          uint16 = 3
)

func (p *Profile) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fProfileUUID, p.UUID)
	e.Bool(fProfileNetworkRestricted, p.IsNetworkAccessRestricted)
	for i := range p.Services {
		e.Message(fProfileServices, &p.Services[i])
	}
	e.Unknown(p.unknown)
	return e.Bytes()
}

func (p *Profile) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fProfileUUID:
			p.UUID, err = f.String()
		case fProfileNetworkRestricted:
			p.IsNetworkAccessRestricted, err = f.Bool()
		case fProfileServices:
			var ref NamedRef
			if err = unmarshalNested(f, &ref); err == nil {
				p.Services = append(p.Services, ref)
			}
		default:
			p.unknown = append(p.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Metadata describes the type, range, units and valid values of a
// characteristic.
type Metadata struct {
	ManufacturerDescription string
	ValidValues             []SampledValue
	MinimumValue            *Number
	MaximumValue            *Number
	StepValue               *Number
	Format                  Format
	Units                   Units

	unknown []wire.Field
}

const (
	fMetadataManufacturerDescription uint16 = 1
	fMetadataValidValues             uint16 = 2
	fMetadataMinimumValue            uint16 = 3
	fMetadataMaximumValue            uint16 = 4
	fMetadataStepValue               uint16 = 5
	fMetadataFormat                  uint16 = 6
	fMetadataUnits                   uint16 = 7
)

func (m *Metadata) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fMetadataManufacturerDescription, m.ManufacturerDescription)
	for i := range m.ValidValues {
		e.Message(fMetadataValidValues, &m.ValidValues[i])
	}
	if m.MinimumValue != nil {
		e.Message(fMetadataMinimumValue, m.MinimumValue)
	}
	if m.MaximumValue != nil {
		e.Message(fMetadataMaximumValue, m.MaximumValue)
	}
	if m.StepValue != nil {
		e.Message(fMetadataStepValue, m.StepValue)
	}
	e.U32(fMetadataFormat, uint32(m.Format))
	e.U32(fMetadataUnits, uint32(m.Units))
	e.Unknown(m.unknown)
	return e.Bytes()
}

func (m *Metadata) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fMetadataManufacturerDescription:
			m.ManufacturerDescription, err = f.String()
		case fMetadataValidValues:
			var v SampledValue
			if err = unmarshalNested(f, &v); err == nil {
				m.ValidValues = append(m.ValidValues, v)
			}
		case fMetadataMinimumValue:
			n := &Number{}
			if err = unmarshalNested(f, n); err == nil {
				m.MinimumValue = n
			}
		case fMetadataMaximumValue:
			n := &Number{}
			if err = unmarshalNested(f, n); err == nil {
				m.MaximumValue = n
			}
		case fMetadataStepValue:
			n := &Number{}
			if err = unmarshalNested(f, n); err == nil {
				m.StepValue = n
			}
		case fMetadataFormat:
			m.Format, err = enumField(f, FormatDictionary)
		case fMetadataUnits:
			m.Units, err = enumField(f, UnitsMicrogramsPerCubicMeter)
		default:
			m.unknown = append(m.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	if m.MinimumValue != nil && m.MaximumValue != nil {
		if !m.MinimumValue.SameKind(m.MaximumValue) {
			return Statusf(StatusInvalidArgument, "metadata range bounds use different number kinds")
		}
		if !m.MinimumValue.LessOrEqual(m.MaximumValue) {
			return Statusf(StatusInvalidArgument, "metadata minimum exceeds maximum")
		}
	}
	return nil
}

// Characteristic is one readable or writable attribute of a service.
type Characteristic struct {
	UUID               string
	Description        string
	Properties         []Property
	CharacteristicType CharacteristicType
	Metadata           *Metadata
	Value              *SampledValue

	unknown []wire.Field
}

const (
	fCharacteristicUUID        uint16 = 1
	fCharacteristicDescription uint16 = 2
	fCharacteristicProperties  uint16 = 3
	fCharacteristicType        uint16 = 4
	fCharacteristicMetadata    uint16 = 5
	fCharacteristicValue       uint16 = 6
)

func (c *Characteristic) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fCharacteristicUUID, c.UUID)
	e.String(fCharacteristicDescription, c.Description)
	for _, p := range c.Properties {
		e.U32(fCharacteristicProperties, uint32(p))
	}
	e.U32(fCharacteristicType, uint32(c.CharacteristicType))
	if c.Metadata != nil {
		e.Message(fCharacteristicMetadata, c.Metadata)
	}
	if c.Value != nil {
		e.Message(fCharacteristicValue, c.Value)
	}
	e.Unknown(c.unknown)
	return e.Bytes()
}

func (c *Characteristic) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fCharacteristicUUID:
			c.UUID, err = f.String()
		case fCharacteristicDescription:
			c.Description, err = f.String()
		case fCharacteristicProperties:
			var p Property
			if p, err = enumField(f, PropertySupportsAuthorizationData); err == nil {
				c.Properties = append(c.Properties, p)
			}
		case fCharacteristicType:
			c.CharacteristicType, err = enumField(f, CharacteristicTypeStatusFault)
		case fCharacteristicMetadata:
			md := &Metadata{}
			if err = unmarshalNested(f, md); err == nil {
				c.Metadata = md
			}
		case fCharacteristicValue:
			v := &SampledValue{}
			if err = unmarshalNested(f, v); err == nil {
				c.Value = v
			}
		default:
			c.unknown = append(c.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// IsWritable reports whether the characteristic carries the Writable
// property.
func (c *Characteristic) IsWritable() bool {
	for _, p := range c.Properties {
		if p == PropertyWritable {
			return true
		}
	}
	return false
}

// Service is a functional unit on an accessory.
type Service struct {
	UUID                  string
	Name                  string
	IsPrimary             bool
	IsInteractive         bool
	ServiceType           ServiceType
	AssociatedServiceType string
	Characteristics       []Characteristic

	unknown []wire.Field
}

const (
	fServiceUUID            uint16 = 1
	fServiceName            uint16 = 2
	fServiceIsPrimary       uint16 = 3
	fServiceIsInteractive   uint16 = 4
	fServiceType            uint16 = 5
	fServiceAssociatedType  uint16 = 6
	fServiceCharacteristics uint16 = 7
)

func (s *Service) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fServiceUUID, s.UUID)
	e.String(fServiceName, s.Name)
	e.Bool(fServiceIsPrimary, s.IsPrimary)
	e.Bool(fServiceIsInteractive, s.IsInteractive)
	e.U32(fServiceType, uint32(s.ServiceType))
	e.String(fServiceAssociatedType, s.AssociatedServiceType)
	for i := range s.Characteristics {
		e.Message(fServiceCharacteristics, &s.Characteristics[i])
	}
	e.Unknown(s.unknown)
	return e.Bytes()
}

func (s *Service) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fServiceUUID:
			s.UUID, err = f.String()
		case fServiceName:
			s.Name, err = f.String()
		case fServiceIsPrimary:
			s.IsPrimary, err = f.Bool()
		case fServiceIsInteractive:
			s.IsInteractive, err = f.Bool()
		case fServiceType:
			s.ServiceType, err = enumField(f, ServiceTypeAccessoryInformation)
		case fServiceAssociatedType:
			s.AssociatedServiceType, err = f.String()
		case fServiceCharacteristics:
			var c Characteristic
			if err = unmarshalNested(f, &c); err == nil {
				s.Characteristics = append(s.Characteristics, c)
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

// Accessory is a physical device. A bridge accessory lists the UUIDs of
// the accessories it exposes; that list is empty for every other category.
type Accessory struct {
	UUID                  string
	Name                  string
	Room                  *NamedRef
	Category              Category
	Model                 string
	Manufacturer          string
	FirmwareVersion       string
	IsReachable           bool
	IsBlocked             bool
	IsBridged             bool
	SupportsIdentify      bool
	Profiles              []Profile
	Services              []Service
	BridgedAccessoryUUIDs []string

	unknown []wire.Field
}

const (
	fAccessoryUUID             uint16 = 1
	fAccessoryName             uint16 = 2
	fAccessoryRoom             uint16 = 3
	fAccessoryCategory         uint16 = 4
	fAccessoryModel            uint16 = 5
	fAccessoryManufacturer     uint16 = 6
	fAccessoryFirmwareVersion  uint16 = 7
	fAccessoryIsReachable      uint16 = 8
	fAccessoryIsBlocked        uint16 = 9
	fAccessoryIsBridged        uint16 = 10
	fAccessorySupportsIdentify uint16 = 11
	fAccessoryProfiles         uint16 = 12
	fAccessoryServices         uint16 = 13
	fAccessoryBridgedUUIDs     uint16 = 14
)

func (a *Accessory) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fAccessoryUUID, a.UUID)
	e.String(fAccessoryName, a.Name)
	if a.Room != nil {
		e.Message(fAccessoryRoom, a.Room)
	}
	e.U32(fAccessoryCategory, uint32(a.Category))
	e.String(fAccessoryModel, a.Model)
	e.String(fAccessoryManufacturer, a.Manufacturer)
	e.String(fAccessoryFirmwareVersion, a.FirmwareVersion)
	e.Bool(fAccessoryIsReachable, a.IsReachable)
	e.Bool(fAccessoryIsBlocked, a.IsBlocked)
	e.Bool(fAccessoryIsBridged, a.IsBridged)
	e.Bool(fAccessorySupportsIdentify, a.SupportsIdentify)
	for i := range a.Profiles {
		e.Message(fAccessoryProfiles, &a.Profiles[i])
	}
	for i := range a.Services {
		e.Message(fAccessoryServices, &a.Services[i])
	}
	for _, u := range a.BridgedAccessoryUUIDs {
		e.String(fAccessoryBridgedUUIDs, u)
	}
	e.Unknown(a.unknown)
	return e.Bytes()
}

func (a *Accessory) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fAccessoryUUID:
			a.UUID, err = f.String()
		case fAccessoryName:
			a.Name, err = f.String()
		case fAccessoryRoom:
			ref := &NamedRef{}
			if err = unmarshalNested(f, ref); err == nil {
				a.Room = ref
			}
		case fAccessoryCategory:
			a.Category, err = enumField(f, CategoryShowerHead)
		case fAccessoryModel:
			a.Model, err = f.String()
		case fAccessoryManufacturer:
			a.Manufacturer, err = f.String()
		case fAccessoryFirmwareVersion:
			a.FirmwareVersion, err = f.String()
		case fAccessoryIsReachable:
			a.IsReachable, err = f.Bool()
		case fAccessoryIsBlocked:
			a.IsBlocked, err = f.Bool()
		case fAccessoryIsBridged:
			a.IsBridged, err = f.Bool()
		case fAccessorySupportsIdentify:
			a.SupportsIdentify, err = f.Bool()
		case fAccessoryProfiles:
			var p Profile
			if err = unmarshalNested(f, &p); err == nil {
				a.Profiles = append(a.Profiles, p)
			}
		case fAccessoryServices:
			var s Service
			if err = unmarshalNested(f, &s); err == nil {
				a.Services = append(a.Services, s)
			}
		case fAccessoryBridgedUUIDs:
			var u string
			if u, err = f.String(); err == nil {
				a.BridgedAccessoryUUIDs = append(a.BridgedAccessoryUUIDs, u)
			}
		default:
			a.unknown = append(a.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	if a.Category != CategoryBridge && len(a.BridgedAccessoryUUIDs) > 0 {
		return Statusf(StatusInvalidArgument, "accessory %q carries bridged accessories but is not a bridge", a.Name)
	}
	return nil
}
