package hkservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/hkwire/hkctl/internal/pkg/logging"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

// Service implements HomeKit over a Provider. Every enumeration reads a
// fresh snapshot and returns either the whole result or an error, never
// part of one.
type Service struct {
	provider Provider
}

func NewService(p Provider) *Service {
	return &Service{provider: p}
}

var _ HomeKit = (*Service)(nil)

// matches implements the filter rule shared by every enumeration: an
// empty filter is unrestricted, otherwise the filter must equal the UUID
// (case-insensitive) or be a case-insensitive substring of the name.
func matches(filter, uuidStr, name string) bool {
	if filter == "" {
		return true
	}
	if strings.EqualFold(filter, uuidStr) {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

func (s *Service) snapshot(ctx context.Context) (*Snapshot, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return nil, asStatus(err)
	}
	return snap, nil
}

func asStatus(err error) *schema.Status {
	var st *schema.Status
	if errors.As(err, &st) {
		return st
	}
	return schema.Statusf(schema.StatusInternal, "provider error: %v", err)
}

// findHome resolves the home filter: empty selects the primary home, a
// non-empty filter must select exactly one home.
func findHome(snap *Snapshot, filter string) (*HomeGraph, error) {
	if filter == "" {
		if g := snap.Primary(); g != nil {
			return g, nil
		}
		return nil, schema.Statusf(schema.StatusNotFound, "no primary home")
	}

	var found []*HomeGraph
	for i := range snap.Homes {
		g := &snap.Homes[i]
		if matches(filter, g.Home.UUID, g.Home.Name) {
			found = append(found, g)
		}
	}
	switch len(found) {
	case 0:
		return nil, schema.Statusf(schema.StatusNotFound, "no home matches %q", filter)
	case 1:
		return found[0], nil
	default:
		return nil, schema.Statusf(schema.StatusInvalidArgument, "home filter %q is ambiguous: %d matches", filter, len(found))
	}
}

func (s *Service) EnumerateHomes(ctx context.Context, req *schema.EnumerateHomesRequest) (*schema.EnumerateHomesResponse, error) {
	logging.Logger(ctx).Debugf("EnumerateHomes filter=%q", req.NameFilter)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	resp := &schema.EnumerateHomesResponse{}
	for i := range snap.Homes {
		h := &snap.Homes[i].Home
		if matches(req.NameFilter, h.UUID, h.Name) {
			resp.Homes = append(resp.Homes, *h)
		}
	}
	return resp, nil
}

func (s *Service) EnumerateRooms(ctx context.Context, req *schema.EnumerateRoomsRequest) (*schema.EnumerateRoomsResponse, error) {
	logging.Logger(ctx).Debugf("EnumerateRooms home=%q filter=%q", req.Home, req.NameFilter)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	g, err := findHome(snap, req.Home)
	if err != nil {
		return nil, err
	}

	resp := &schema.EnumerateRoomsResponse{Home: &g.Home}
	for i := range g.Rooms {
		r := &g.Rooms[i]
		if matches(req.NameFilter, r.UUID, r.Name) {
			resp.Rooms = append(resp.Rooms, *r)
		}
	}
	return resp, nil
}

func (s *Service) EnumerateZones(ctx context.Context, req *schema.EnumerateZonesRequest) (*schema.EnumerateZonesResponse, error) {
	logging.Logger(ctx).Debugf("EnumerateZones home=%q room=%q filter=%q", req.Home, req.RoomFilter, req.NameFilter)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	g, err := findHome(snap, req.Home)
	if err != nil {
		return nil, err
	}

	resp := &schema.EnumerateZonesResponse{Home: &g.Home}
	for i := range g.Zones {
		z := &g.Zones[i]
		if !matches(req.NameFilter, z.UUID, z.Name) {
			continue
		}
		if !zoneHasRoom(z, req.RoomFilter) {
			continue
		}
		resp.Zones = append(resp.Zones, *z)
	}
	return resp, nil
}

func zoneHasRoom(z *schema.Zone, roomFilter string) bool {
	if roomFilter == "" {
		return true
	}
	for i := range z.Rooms {
		if matches(roomFilter, z.Rooms[i].UUID, z.Rooms[i].Name) {
			return true
		}
	}
	return false
}

func (s *Service) EnumerateAccessories(ctx context.Context, req *schema.EnumerateAccessoriesRequest) (*schema.EnumerateAccessoriesResponse, error) {
	logging.Logger(ctx).Debugf("EnumerateAccessories home=%q zone=%q room=%q filter=%q",
		req.Home, req.ZoneFilter, req.RoomFilter, req.NameFilter)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	g, err := findHome(snap, req.Home)
	if err != nil {
		return nil, err
	}

	// A zone filter restricts accessories to rooms belonging to a
	// matching zone.
	var zoneRooms map[string]bool
	if req.ZoneFilter != "" {
		zoneRooms = make(map[string]bool)
		for i := range g.Zones {
			z := &g.Zones[i]
			if !matches(req.ZoneFilter, z.UUID, z.Name) {
				continue
			}
			for j := range z.Rooms {
				zoneRooms[strings.ToLower(z.Rooms[j].UUID)] = true
			}
		}
	}

	resp := &schema.EnumerateAccessoriesResponse{Home: &g.Home}
	for i := range g.Accessories {
		a := &g.Accessories[i]
		if !matches(req.NameFilter, a.UUID, a.Name) {
			continue
		}
		if req.RoomFilter != "" {
			if a.Room == nil || !matches(req.RoomFilter, a.Room.UUID, a.Room.Name) {
				continue
			}
		}
		if zoneRooms != nil {
			if a.Room == nil || !zoneRooms[strings.ToLower(a.Room.UUID)] {
				continue
			}
		}
		resp.Accessories = append(resp.Accessories, *a)
	}
	return resp, nil
}

func (s *Service) EnumerateServices(ctx context.Context, req *schema.EnumerateServicesRequest) (*schema.EnumerateServicesResponse, error) {
	logging.Logger(ctx).Debugf("EnumerateServices home=%q types=%v filter=%q", req.Home, req.Types, req.NameFilter)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	g, err := findHome(snap, req.Home)
	if err != nil {
		return nil, err
	}

	resp := &schema.EnumerateServicesResponse{Home: &g.Home}
	for i := range g.Accessories {
		for j := range g.Accessories[i].Services {
			svc := &g.Accessories[i].Services[j]
			if !matches(req.NameFilter, svc.UUID, svc.Name) {
				continue
			}
			if len(req.Types) > 0 && !containsType(req.Types, svc.ServiceType) {
				continue
			}
			resp.Services = append(resp.Services, *svc)
		}
	}
	return resp, nil
}

func containsType(types []schema.ServiceType, t schema.ServiceType) bool {
	for _, want := range types {
		if want == t {
			return true
		}
	}
	return false
}

func (s *Service) EnumerateServiceGroups(ctx context.Context, req *schema.EnumerateServiceGroupsRequest) (*schema.EnumerateServiceGroupsResponse, error) {
	logging.Logger(ctx).Debugf("EnumerateServiceGroups home=%q filter=%q", req.Home, req.NameFilter)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	g, err := findHome(snap, req.Home)
	if err != nil {
		return nil, err
	}

	resp := &schema.EnumerateServiceGroupsResponse{Home: &g.Home}
	for i := range g.ServiceGroups {
		sg := &g.ServiceGroups[i]
		if matches(req.NameFilter, sg.UUID, sg.Name) {
			resp.ServiceGroups = append(resp.ServiceGroups, *sg)
		}
	}
	return resp, nil
}

func (s *Service) EnumerateActionSets(ctx context.Context, req *schema.EnumerateActionSetsRequest) (*schema.EnumerateActionSetsResponse, error) {
	logging.Logger(ctx).Debugf("EnumerateActionSets home=%q filter=%q", req.Home, req.NameFilter)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	g, err := findHome(snap, req.Home)
	if err != nil {
		return nil, err
	}

	resp := &schema.EnumerateActionSetsResponse{Home: &g.Home}
	for i := range g.ActionSets {
		as := &g.ActionSets[i]
		if matches(req.NameFilter, as.UUID, as.Name) {
			resp.ActionSets = append(resp.ActionSets, *as)
		}
	}
	return resp, nil
}

func (s *Service) EnumerateTriggers(ctx context.Context, req *schema.EnumerateTriggersRequest) (*schema.EnumerateTriggersResponse, error) {
	logging.Logger(ctx).Debugf("EnumerateTriggers home=%q filter=%q enabled=%d before=%d after=%d",
		req.Home, req.NameFilter, req.EnabledFilter, req.Before, req.After)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	g, err := findHome(snap, req.Home)
	if err != nil {
		return nil, err
	}

	resp := &schema.EnumerateTriggersResponse{Home: &g.Home}
	for i := range g.Triggers {
		t := &g.Triggers[i]
		hdr := t.TriggerInfo()
		if hdr == nil {
			continue
		}
		if !matches(req.NameFilter, hdr.UUID, hdr.Name) {
			continue
		}
		switch req.EnabledFilter {
		case schema.EnabledFilterEnabledOnly:
			if !hdr.IsEnabled {
				continue
			}
		case schema.EnabledFilterDisabledOnly:
			if hdr.IsEnabled {
				continue
			}
		}
		// A zero bound leaves that side of the window open.
		if req.After != 0 && hdr.LastFireDate < req.After {
			continue
		}
		if req.Before != 0 && hdr.LastFireDate > req.Before {
			continue
		}
		resp.Triggers = append(resp.Triggers, *t)
	}
	return resp, nil
}

func (s *Service) AddRemoveRoom(ctx context.Context, req *schema.AddRemoveRoomRequest) (*schema.AddRemoveRoomResponse, error) {
	logging.Logger(ctx).Debugf("AddRemoveRoom home=%q name=%q op=%d accessories=%d",
		req.Home, req.Name, req.Operation, len(req.Accessories))

	if req.Operation != schema.RoomOperationAdd && req.Operation != schema.RoomOperationRemove {
		return nil, schema.Statusf(schema.StatusInvalidArgument, "unrecognized room operation %d", req.Operation)
	}
	if req.Name == "" {
		return nil, schema.Statusf(schema.StatusInvalidArgument, "room name is required")
	}
	for _, a := range req.Accessories {
		if _, err := uuid.Parse(a); err != nil {
			return nil, schema.Statusf(schema.StatusInvalidArgument, "malformed accessory uuid %q", a)
		}
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	g, err := findHome(snap, req.Home)
	if err != nil {
		return nil, err
	}

	var room *schema.Room
	switch req.Operation {
	case schema.RoomOperationAdd:
		room, err = s.provider.AddRoom(ctx, g.Home.UUID, req.Name, req.Accessories)
	case schema.RoomOperationRemove:
		var target *schema.Room
		if target, err = resolveRoom(g, req.Name); err == nil {
			room, err = s.provider.RemoveRoom(ctx, g.Home.UUID, target.UUID, req.Accessories)
		}
	}
	if err != nil {
		return nil, asStatus(err)
	}

	// The response carries post-mutation snapshots.
	after, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range after.Homes {
		if strings.EqualFold(after.Homes[i].Home.UUID, g.Home.UUID) {
			return &schema.AddRemoveRoomResponse{Home: &after.Homes[i].Home, Room: room}, nil
		}
	}
	return nil, schema.Statusf(schema.StatusInternal, "home %s vanished during mutation", g.Home.UUID)
}

// resolveRoom identifies a room by UUID or exact name.
func resolveRoom(g *HomeGraph, nameOrUUID string) (*schema.Room, error) {
	var found []*schema.Room
	for i := range g.Rooms {
		r := &g.Rooms[i]
		if strings.EqualFold(r.UUID, nameOrUUID) || r.Name == nameOrUUID {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return nil, schema.Statusf(schema.StatusNotFound, "room %q not found", nameOrUUID)
	case 1:
		return found[0], nil
	default:
		return nil, schema.Statusf(schema.StatusInvalidArgument, "room %q is ambiguous: %d matches", nameOrUUID, len(found))
	}
}
