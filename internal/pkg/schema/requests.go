package schema

import (
	"github.com/hkwire/hkctl/internal/pkg/wire"
)

/*
 * Request and response records for the nine service operations. Filter
 * fields are plain strings: empty means unrestricted, anything else
 * matches an entity by case-insensitive UUID equality or case-insensitive
 * name substring. The home field is special: empty selects the primary
 * home and a non-empty filter must select exactly one home.
 */

type EnumerateHomesRequest struct {
	NameFilter string

	unknown []wire.Field
}

const fEnumerateHomesNameFilter uint16 = 1

func (r *EnumerateHomesRequest) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fEnumerateHomesNameFilter, r.NameFilter)
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateHomesRequest) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateHomesNameFilter:
			r.NameFilter, err = f.String()
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type EnumerateHomesResponse struct {
	Homes []Home

	unknown []wire.Field
}

const fEnumerateHomesHomes uint16 = 1

func (r *EnumerateHomesResponse) MarshalWire() []byte {
	var e wire.Encoder
	for i := range r.Homes {
		e.Message(fEnumerateHomesHomes, &r.Homes[i])
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateHomesResponse) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateHomesHomes:
			var h Home
			if err = unmarshalNested(f, &h); err == nil {
				r.Homes = append(r.Homes, h)
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

type EnumerateRoomsRequest struct {
	Home       string
	NameFilter string

	unknown []wire.Field
}

const (
	fEnumerateRoomsHome       uint16 = 1
	fEnumerateRoomsNameFilter uint16 = 2
)

func (r *EnumerateRoomsRequest) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fEnumerateRoomsHome, r.Home)
	e.String(fEnumerateRoomsNameFilter, r.NameFilter)
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateRoomsRequest) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateRoomsHome:
			r.Home, err = f.String()
		case fEnumerateRoomsNameFilter:
			r.NameFilter, err = f.String()
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type EnumerateRoomsResponse struct {
	Home  *Home
	Rooms []Room

	unknown []wire.Field
}

const (
	fEnumerateRoomsRespHome  uint16 = 1
	fEnumerateRoomsRespRooms uint16 = 2
)

func (r *EnumerateRoomsResponse) MarshalWire() []byte {
	var e wire.Encoder
	if r.Home != nil {
		e.Message(fEnumerateRoomsRespHome, r.Home)
	}
	for i := range r.Rooms {
		e.Message(fEnumerateRoomsRespRooms, &r.Rooms[i])
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateRoomsResponse) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateRoomsRespHome:
			h := &Home{}
			if err = unmarshalNested(f, h); err == nil {
				r.Home = h
			}
		case fEnumerateRoomsRespRooms:
			var room Room
			if err = unmarshalNested(f, &room); err == nil {
				r.Rooms = append(r.Rooms, room)
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

type EnumerateZonesRequest struct {
	Home       string
	RoomFilter string
	NameFilter string

	unknown []wire.Field
}

const (
	fEnumerateZonesHome       uint16 = 1
	fEnumerateZonesRoomFilter uint16 = 2
	fEnumerateZonesNameFilter uint16 = 3
)

func (r *EnumerateZonesRequest) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fEnumerateZonesHome, r.Home)
	e.String(fEnumerateZonesRoomFilter, r.RoomFilter)
	e.String(fEnumerateZonesNameFilter, r.NameFilter)
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateZonesRequest) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateZonesHome:
			r.Home, err = f.String()
		case fEnumerateZonesRoomFilter:
			r.RoomFilter, err = f.String()
		case fEnumerateZonesNameFilter:
			r.NameFilter, err = f.String()
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type EnumerateZonesResponse struct {
	Home  *Home
	Zones []Zone

	unknown []wire.Field
}

const (
	fEnumerateZonesRespHome  uint16 = 1
	fEnumerateZonesRespZones uint16 = 2
)

func (r *EnumerateZonesResponse) MarshalWire() []byte {
	var e wire.Encoder
	if r.Home != nil {
		e.Message(fEnumerateZonesRespHome, r.Home)
	}
	for i := range r.Zones {
		e.Message(fEnumerateZonesRespZones, &r.Zones[i])
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateZonesResponse) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateZonesRespHome:
			h := &Home{}
			if err = unmarshalNested(f, h); err == nil {
				r.Home = h
			}
		case fEnumerateZonesRespZones:
			var z Zone
			if err = unmarshalNested(f, &z); err == nil {
				r.Zones = append(r.Zones, z)
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

type EnumerateAccessoriesRequest struct {
	Home       string
	ZoneFilter string
	RoomFilter string
	NameFilter string

	unknown []wire.Field
}

const (
	fEnumerateAccessoriesHome       uint16 = 1
	fEnumerateAccessoriesZoneFilter uint16 = 2
	fEnumerateAccessoriesRoomFilter uint16 = 3
	fEnumerateAccessoriesNameFilter uint16 = 4
)

func (r *EnumerateAccessoriesRequest) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fEnumerateAccessoriesHome, r.Home)
	e.String(fEnumerateAccessoriesZoneFilter, r.ZoneFilter)
	e.String(fEnumerateAccessoriesRoomFilter, r.RoomFilter)
	e.String(fEnumerateAccessoriesNameFilter, r.NameFilter)
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateAccessoriesRequest) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateAccessoriesHome:
			r.Home, err = f.String()
		case fEnumerateAccessoriesZoneFilter:
			r.ZoneFilter, err = f.String()
		case fEnumerateAccessoriesRoomFilter:
			r.RoomFilter, err = f.String()
		case fEnumerateAccessoriesNameFilter:
			r.NameFilter, err = f.String()
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type EnumerateAccessoriesResponse struct {
	Home        *Home
	Accessories []Accessory

	unknown []wire.Field
}

const (
	fEnumerateAccessoriesRespHome        uint16 = 1
	fEnumerateAccessoriesRespAccessories uint16 = 2
)

func (r *EnumerateAccessoriesResponse) MarshalWire() []byte {
	var e wire.Encoder
	if r.Home != nil {
		e.Message(fEnumerateAccessoriesRespHome, r.Home)
	}
	for i := range r.Accessories {
		e.Message(fEnumerateAccessoriesRespAccessories, &r.Accessories[i])
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateAccessoriesResponse) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateAccessoriesRespHome:
			h := &Home{}
			if err = unmarshalNested(f, h); err == nil {
				r.Home = h
			}
		case fEnumerateAccessoriesRespAccessories:
			var a Accessory
			if err = unmarshalNested(f, &a); err == nil {
				r.Accessories = append(r.Accessories, a)
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

type EnumerateServicesRequest struct {
	Home       string
	Types      []ServiceType
	NameFilter string

	unknown []wire.Field
}

const (
	fEnumerateServicesHome       uint16 = 1
	fEnumerateServicesTypes      uint16 = 2
	fEnumerateServicesNameFilter uint16 = 3
)

func (r *EnumerateServicesRequest) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fEnumerateServicesHome, r.Home)
	for _, t := range r.Types {
		e.U32(fEnumerateServicesTypes, uint32(t))
	}
	e.String(fEnumerateServicesNameFilter, r.NameFilter)
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateServicesRequest) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateServicesHome:
			r.Home, err = f.String()
		case fEnumerateServicesTypes:
			var t ServiceType
			if t, err = enumField(f, ServiceTypeAccessoryInformation); err == nil {
				r.Types = append(r.Types, t)
			}
		case fEnumerateServicesNameFilter:
			r.NameFilter, err = f.String()
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type EnumerateServicesResponse struct {
	Home     *Home
	Services []Service

	unknown []wire.Field
}

const (
	fEnumerateServicesRespHome     uint16 = 1
	fEnumerateServicesRespServices uint16 = 2
)

func (r *EnumerateServicesResponse) MarshalWire() []byte {
	var e wire.Encoder
	if r.Home != nil {
		e.Message(fEnumerateServicesRespHome, r.Home)
	}
	for i := range r.Services {
		e.Message(fEnumerateServicesRespServices, &r.Services[i])
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateServicesResponse) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateServicesRespHome:
			h := &Home{}
			if err = unmarshalNested(f, h); err == nil {
				r.Home = h
			}
		case fEnumerateServicesRespServices:
			var s Service
			if err = unmarshalNested(f, &s); err == nil {
				r.Services = append(r.Services, s)
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

type EnumerateServiceGroupsRequest struct {
	Home       string
	NameFilter string

	unknown []wire.Field
}

const (
	fEnumerateServiceGroupsHome       uint16 = 1
	fEnumerateServiceGroupsNameFilter uint16 = 2
)

func (r *EnumerateServiceGroupsRequest) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fEnumerateServiceGroupsHome, r.Home)
	e.String(fEnumerateServiceGroupsNameFilter, r.NameFilter)
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateServiceGroupsRequest) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateServiceGroupsHome:
			r.Home, err = f.String()
		case fEnumerateServiceGroupsNameFilter:
			r.NameFilter, err = f.String()
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type EnumerateServiceGroupsResponse struct {
	Home          *Home
	ServiceGroups []ServiceGroup

	unknown []wire.Field
}

const (
	fEnumerateServiceGroupsRespHome   uint16 = 1
	fEnumerateServiceGroupsRespGroups uint16 = 2
)

func (r *EnumerateServiceGroupsResponse) MarshalWire() []byte {
	var e wire.Encoder
	if r.Home != nil {
		e.Message(fEnumerateServiceGroupsRespHome, r.Home)
	}
	for i := range r.ServiceGroups {
		e.Message(fEnumerateServiceGroupsRespGroups, &r.ServiceGroups[i])
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateServiceGroupsResponse) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateServiceGroupsRespHome:
			h := &Home{}
			if err = unmarshalNested(f, h); err == nil {
				r.Home = h
			}
		case fEnumerateServiceGroupsRespGroups:
			var g ServiceGroup
			if err = unmarshalNested(f, &g); err == nil {
				r.ServiceGroups = append(r.ServiceGroups, g)
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

type EnumerateActionSetsRequest struct {
	Home       string
	NameFilter string

	unknown []wire.Field
}

const (
	fEnumerateActionSetsHome       uint16 = 1
	fEnumerateActionSetsNameFilter uint16 = 2
)

func (r *EnumerateActionSetsRequest) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fEnumerateActionSetsHome, r.Home)
	e.String(fEnumerateActionSetsNameFilter, r.NameFilter)
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateActionSetsRequest) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateActionSetsHome:
			r.Home, err = f.String()
		case fEnumerateActionSetsNameFilter:
			r.NameFilter, err = f.String()
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type EnumerateActionSetsResponse struct {
	Home       *Home
	ActionSets []ActionSet

	unknown []wire.Field
}

const (
	fEnumerateActionSetsRespHome uint16 = 1
	fEnumerateActionSetsRespSets uint16 = 2
)

func (r *EnumerateActionSetsResponse) MarshalWire() []byte {
	var e wire.Encoder
	if r.Home != nil {
		e.Message(fEnumerateActionSetsRespHome, r.Home)
	}
	for i := range r.ActionSets {
		e.Message(fEnumerateActionSetsRespSets, &r.ActionSets[i])
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateActionSetsResponse) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateActionSetsRespHome:
			h := &Home{}
			if err = unmarshalNested(f, h); err == nil {
				r.Home = h
			}
		case fEnumerateActionSetsRespSets:
			var s ActionSet
			if err = unmarshalNested(f, &s); err == nil {
				r.ActionSets = append(r.ActionSets, s)
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

type EnumerateTriggersRequest struct {
	Home          string
	NameFilter    string
	EnabledFilter EnabledFilter
	Before        uint64
	After         uint64

	unknown []wire.Field
}

const (
	fEnumerateTriggersHome          uint16 = 1
	fEnumerateTriggersNameFilter    uint16 = 2
	fEnumerateTriggersEnabledFilter uint16 = 3
	fEnumerateTriggersBefore        uint16 = 4
	fEnumerateTriggersAfter         uint16 = 5
)

func (r *EnumerateTriggersRequest) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fEnumerateTriggersHome, r.Home)
	e.String(fEnumerateTriggersNameFilter, r.NameFilter)
	e.U32(fEnumerateTriggersEnabledFilter, uint32(r.EnabledFilter))
	e.U64(fEnumerateTriggersBefore, r.Before)
	e.U64(fEnumerateTriggersAfter, r.After)
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateTriggersRequest) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateTriggersHome:
			r.Home, err = f.String()
		case fEnumerateTriggersNameFilter:
			r.NameFilter, err = f.String()
		case fEnumerateTriggersEnabledFilter:
			r.EnabledFilter, err = enumField(f, EnabledFilterDisabledOnly)
		case fEnumerateTriggersBefore:
			r.Before, err = f.U64()
		case fEnumerateTriggersAfter:
			r.After, err = f.U64()
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type EnumerateTriggersResponse struct {
	Home     *Home
	Triggers []Trigger

	unknown []wire.Field
}

const (
	fEnumerateTriggersRespHome     uint16 = 1
	fEnumerateTriggersRespTriggers uint16 = 2
)

func (r *EnumerateTriggersResponse) MarshalWire() []byte {
	var e wire.Encoder
	if r.Home != nil {
		e.Message(fEnumerateTriggersRespHome, r.Home)
	}
	for i := range r.Triggers {
		e.Message(fEnumerateTriggersRespTriggers, &r.Triggers[i])
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *EnumerateTriggersResponse) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fEnumerateTriggersRespHome:
			h := &Home{}
			if err = unmarshalNested(f, h); err == nil {
				r.Home = h
			}
		case fEnumerateTriggersRespTriggers:
			var t Trigger
			if err = unmarshalNested(f, &t); err == nil {
				r.Triggers = append(r.Triggers, t)
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

type AddRemoveRoomRequest struct {
	Home        string
	Name        string
	Accessories []string
	Operation   RoomOperation

	unknown []wire.Field
}

const (
	fAddRemoveRoomHome        uint16 = 1
	fAddRemoveRoomName        uint16 = 2
	fAddRemoveRoomAccessories uint16 = 3
	fAddRemoveRoomOperation   uint16 = 4
)

func (r *AddRemoveRoomRequest) MarshalWire() []byte {
	var e wire.Encoder
	e.String(fAddRemoveRoomHome, r.Home)
	e.String(fAddRemoveRoomName, r.Name)
	for _, a := range r.Accessories {
		e.String(fAddRemoveRoomAccessories, a)
	}
	e.U32(fAddRemoveRoomOperation, uint32(r.Operation))
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *AddRemoveRoomRequest) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fAddRemoveRoomHome:
			r.Home, err = f.String()
		case fAddRemoveRoomName:
			r.Name, err = f.String()
		case fAddRemoveRoomAccessories:
			var a string
			if a, err = f.String(); err == nil {
				r.Accessories = append(r.Accessories, a)
			}
		case fAddRemoveRoomOperation:
			r.Operation, err = enumField(f, RoomOperationRemove)
		default:
			r.unknown = append(r.unknown, f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type AddRemoveRoomResponse struct {
	Home *Home
	Room *Room

	unknown []wire.Field
}

const (
	fAddRemoveRoomRespHome uint16 = 1
	fAddRemoveRoomRespRoom uint16 = 2
)

func (r *AddRemoveRoomResponse) MarshalWire() []byte {
	var e wire.Encoder
	if r.Home != nil {
		e.Message(fAddRemoveRoomRespHome, r.Home)
	}
	if r.Room != nil {
		e.Message(fAddRemoveRoomRespRoom, r.Room)
	}
	e.Unknown(r.unknown)
	return e.Bytes()
}

func (r *AddRemoveRoomResponse) UnmarshalWire(b []byte) error {
	fields, err := wire.Split(b)
	if err != nil {
		return err
	}
	for _, f := range fields {
		var err error
		switch f.ID {
		case fAddRemoveRoomRespHome:
			h := &Home{}
			if err = unmarshalNested(f, h); err == nil {
				r.Home = h
			}
		case fAddRemoveRoomRespRoom:
			room := &Room{}
			if err = unmarshalNested(f, room); err == nil {
				r.Room = room
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
