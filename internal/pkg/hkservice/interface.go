package hkservice

import (
	"context"

	"github.com/hkwire/hkctl/internal/pkg/schema"
)

// HomeKit is the service contract: one operation per enumeration or
// mutation. The server implements it over a Provider; the transport
// client implements it over the wire. Errors are *schema.Status.
type HomeKit interface {
	EnumerateHomes(ctx context.Context, req *schema.EnumerateHomesRequest) (*schema.EnumerateHomesResponse, error)
	EnumerateRooms(ctx context.Context, req *schema.EnumerateRoomsRequest) (*schema.EnumerateRoomsResponse, error)
	EnumerateZones(ctx context.Context, req *schema.EnumerateZonesRequest) (*schema.EnumerateZonesResponse, error)
	EnumerateAccessories(ctx context.Context, req *schema.EnumerateAccessoriesRequest) (*schema.EnumerateAccessoriesResponse, error)
	EnumerateServices(ctx context.Context, req *schema.EnumerateServicesRequest) (*schema.EnumerateServicesResponse, error)
	EnumerateServiceGroups(ctx context.Context, req *schema.EnumerateServiceGroupsRequest) (*schema.EnumerateServiceGroupsResponse, error)
	EnumerateActionSets(ctx context.Context, req *schema.EnumerateActionSetsRequest) (*schema.EnumerateActionSetsResponse, error)
	EnumerateTriggers(ctx context.Context, req *schema.EnumerateTriggersRequest) (*schema.EnumerateTriggersResponse, error)
	AddRemoveRoom(ctx context.Context, req *schema.AddRemoveRoomRequest) (*schema.AddRemoveRoomResponse, error)
}

// HomeGraph is one home's complete snapshot as the provider sees it.
type HomeGraph struct {
	Home          schema.Home
	Rooms         []schema.Room
	Zones         []schema.Zone
	Accessories   []schema.Accessory
	ActionSets    []schema.ActionSet
	Triggers      []schema.Trigger
	ServiceGroups []schema.ServiceGroup
}

// Snapshot is the provider's view of every home at one instant.
type Snapshot struct {
	Homes []HomeGraph
}

// Primary returns the primary home's graph, or nil if there is none.
func (s *Snapshot) Primary() *HomeGraph {
	for i := range s.Homes {
		if s.Homes[i].Home.IsPrimary {
			return &s.Homes[i]
		}
	}
	return nil
}

// Provider owns the object graph. The service layer only reads
// snapshots; each enumeration is a fresh query, nothing is cached.
// Mutations are atomic: they either apply completely or not at all.
type Provider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
	AddRoom(ctx context.Context, homeUUID, name string, accessoryUUIDs []string) (*schema.Room, error)
	RemoveRoom(ctx context.Context, homeUUID, roomUUID string, accessoryUUIDs []string) (*schema.Room, error)
}
