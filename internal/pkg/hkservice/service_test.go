package hkservice

import (
	"context"
	"testing"

	"github.com/hkwire/hkctl/internal/pkg/schema"
)

const (
	mainHomeUUID  = "0d9c3f4a-1b2c-4d5e-8f9a-0b1c2d3e4f5a"
	beachHomeUUID = "1e8d2c3b-4a5f-4e6d-9c8b-7a6f5e4d3c2b"
	loungeUUID    = "2f7e1d2c-3b4a-4f5e-8d7c-6b5a4f3e2d1c"
	bedroomUUID   = "3a6f0c1b-2d3e-4a5f-9e8d-5c4b3a2f1e0d"
	lampUUID      = "4b5e9f0a-1c2d-4b3a-8f7e-4d3c2b1a0f9e"
	sensorUUID    = "5c4d8e9f-0b1c-4a29-9e8f-3c2b1a0f9e8d"
)

func fixtureHomes() []HomeGraph {
	lounge := schema.NamedRef{UUID: loungeUUID, Name: "Lounge"}

	return []HomeGraph{
		{
			Home: schema.Home{UUID: mainHomeUUID, Name: "Main Home", IsPrimary: true, HubState: schema.HubStateConnected},
			Rooms: []schema.Room{
				{UUID: loungeUUID, Name: "Lounge", Accessories: []schema.NamedRef{{UUID: lampUUID, Name: "Desk Lamp"}}},
				{UUID: bedroomUUID, Name: "Bedroom"},
			},
			Zones: []schema.Zone{
				{UUID: "z1", Name: "Downstairs", Rooms: []schema.NamedRef{lounge}},
			},
			Accessories: []schema.Accessory{
				{
					UUID: lampUUID, Name: "Desk Lamp", Room: &lounge,
					Category: schema.CategoryLightBulb,
					Services: []schema.Service{
						{UUID: "s1", Name: "Desk Lamp", ServiceType: schema.ServiceTypeLightBulb},
					},
				},
				{
					UUID: sensorUUID, Name: "Motion Sensor",
					Category: schema.CategorySensor,
					Services: []schema.Service{
						{UUID: "s2", Name: "Motion Sensor", ServiceType: schema.ServiceTypeMotionSensor},
					},
				},
			},
			ActionSets: []schema.ActionSet{
				{UUID: "as1", Name: "Good Night", ActionSetType: schema.ActionSetTypeSleep},
			},
			Triggers: []schema.Trigger{
				{Timer: &schema.TimerTrigger{Header: schema.TriggerHeader{
					UUID: "t1", Name: "Nightly", IsEnabled: true, LastFireDate: 2000,
				}}},
				{Timer: &schema.TimerTrigger{Header: schema.TriggerHeader{
					UUID: "t2", Name: "Weekly", IsEnabled: false, LastFireDate: 5000,
				}}},
			},
			ServiceGroups: []schema.ServiceGroup{
				{UUID: "sg1", Name: "Lights"},
			},
		},
		{
			Home: schema.Home{UUID: beachHomeUUID, Name: "Beach House", HubState: schema.HubStateDisconnected},
		},
	}
}

func newFixtureService() *Service {
	return NewService(NewMemory(fixtureHomes()...))
}

func TestEnumerateHomesFilters(t *testing.T) {
	svc := newFixtureService()
	ctx := context.Background()

	resp, err := svc.EnumerateHomes(ctx, &schema.EnumerateHomesRequest{})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Homes) != 2 {
		t.Fatalf("expected both homes, got %d", len(resp.Homes))
	}

	// Case-insensitive name substring.
	resp, err = svc.EnumerateHomes(ctx, &schema.EnumerateHomesRequest{NameFilter: "beach"})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Homes) != 1 || resp.Homes[0].Name != "Beach House" {
		t.Fatalf("substring filter failed: %+v", resp.Homes)
	}

	// Case-insensitive UUID equality.
	resp, err = svc.EnumerateHomes(ctx, &schema.EnumerateHomesRequest{NameFilter: "0D9C3F4A-1B2C-4D5E-8F9A-0B1C2D3E4F5A"})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Homes) != 1 || resp.Homes[0].UUID != mainHomeUUID {
		t.Fatalf("uuid filter failed: %+v", resp.Homes)
	}
}

func TestFindHomeDefaultsToPrimary(t *testing.T) {
	svc := newFixtureService()

	resp, err := svc.EnumerateRooms(context.Background(), &schema.EnumerateRoomsRequest{})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if resp.Home == nil || resp.Home.UUID != mainHomeUUID {
		t.Fatalf("expected primary home, got %+v", resp.Home)
	}
	if len(resp.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(resp.Rooms))
	}
}

func TestFindHomeNoPrimary(t *testing.T) {
	svc := NewService(NewMemory(HomeGraph{
		Home: schema.Home{UUID: "h1", Name: "Only Home"},
	}))

	_, err := svc.EnumerateRooms(context.Background(), &schema.EnumerateRoomsRequest{})
	st, ok := err.(*schema.Status)
	if !ok || st.Code != schema.StatusNotFound {
		t.Fatalf("expected NotFound without a primary home, got %v", err)
	}
}

func TestFindHomeAmbiguous(t *testing.T) {
	svc := newFixtureService()

	// "home" is a substring of both home names.
	_, err := svc.EnumerateRooms(context.Background(), &schema.EnumerateRoomsRequest{Home: "ho"})
	st, ok := err.(*schema.Status)
	if !ok || st.Code != schema.StatusInvalidArgument {
		t.Fatalf("expected InvalidArgument for ambiguous filter, got %v", err)
	}
}

func TestEnumerateAccessoriesZoneAndRoomFilters(t *testing.T) {
	svc := newFixtureService()
	ctx := context.Background()

	resp, err := svc.EnumerateAccessories(ctx, &schema.EnumerateAccessoriesRequest{ZoneFilter: "Downstairs"})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Accessories) != 1 || resp.Accessories[0].UUID != lampUUID {
		t.Fatalf("zone filter failed: %+v", resp.Accessories)
	}

	// The sensor has no room, so a room filter must exclude it.
	resp, err = svc.EnumerateAccessories(ctx, &schema.EnumerateAccessoriesRequest{RoomFilter: "lounge"})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Accessories) != 1 || resp.Accessories[0].Name != "Desk Lamp" {
		t.Fatalf("room filter failed: %+v", resp.Accessories)
	}
}

func TestEnumerateServicesTypeFilter(t *testing.T) {
	svc := newFixtureService()

	resp, err := svc.EnumerateServices(context.Background(), &schema.EnumerateServicesRequest{
		Types: []schema.ServiceType{schema.ServiceTypeMotionSensor},
	})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Services) != 1 || resp.Services[0].ServiceType != schema.ServiceTypeMotionSensor {
		t.Fatalf("type filter failed: %+v", resp.Services)
	}

	// No types means no restriction.
	resp, err = svc.EnumerateServices(context.Background(), &schema.EnumerateServicesRequest{})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Services) != 2 {
		t.Fatalf("expected every service, got %d", len(resp.Services))
	}
}

func TestEnumerateTriggersFilters(t *testing.T) {
	svc := newFixtureService()
	ctx := context.Background()

	resp, err := svc.EnumerateTriggers(ctx, &schema.EnumerateTriggersRequest{
		EnabledFilter: schema.EnabledFilterEnabledOnly,
	})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Triggers) != 1 || resp.Triggers[0].TriggerInfo().Name != "Nightly" {
		t.Fatalf("enabled filter failed: %+v", resp.Triggers)
	}

	resp, err = svc.EnumerateTriggers(ctx, &schema.EnumerateTriggersRequest{
		EnabledFilter: schema.EnabledFilterDisabledOnly,
	})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Triggers) != 1 || resp.Triggers[0].TriggerInfo().Name != "Weekly" {
		t.Fatalf("disabled filter failed: %+v", resp.Triggers)
	}

	// Last fire window; zero bounds leave that side open.
	resp, err = svc.EnumerateTriggers(ctx, &schema.EnumerateTriggersRequest{After: 3000})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Triggers) != 1 || resp.Triggers[0].TriggerInfo().Name != "Weekly" {
		t.Fatalf("after filter failed: %+v", resp.Triggers)
	}

	resp, err = svc.EnumerateTriggers(ctx, &schema.EnumerateTriggersRequest{Before: 3000})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(resp.Triggers) != 1 || resp.Triggers[0].TriggerInfo().Name != "Nightly" {
		t.Fatalf("before filter failed: %+v", resp.Triggers)
	}
}

func TestAddRemoveRoomLifecycle(t *testing.T) {
	svc := newFixtureService()
	ctx := context.Background()

	// Add a room holding the motion sensor.
	resp, err := svc.AddRemoveRoom(ctx, &schema.AddRemoveRoomRequest{
		Name:        "Hallway",
		Accessories: []string{sensorUUID},
		Operation:   schema.RoomOperationAdd,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if resp.Room == nil || resp.Room.Name != "Hallway" || len(resp.Room.Accessories) != 1 {
		t.Fatalf("add response: %+v", resp.Room)
	}

	rooms, err := svc.EnumerateRooms(ctx, &schema.EnumerateRoomsRequest{NameFilter: "Hallway"})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(rooms.Rooms) != 1 {
		t.Fatalf("new room not enumerable: %+v", rooms.Rooms)
	}

	// Adding it again collides.
	_, err = svc.AddRemoveRoom(ctx, &schema.AddRemoveRoomRequest{
		Name:      "Hallway",
		Operation: schema.RoomOperationAdd,
	})
	st, ok := err.(*schema.Status)
	if !ok || st.Code != schema.StatusAlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}

	// Detach the sensor; the room itself survives.
	resp, err = svc.AddRemoveRoom(ctx, &schema.AddRemoveRoomRequest{
		Name:        "Hallway",
		Accessories: []string{sensorUUID},
		Operation:   schema.RoomOperationRemove,
	})
	if err != nil {
		t.Fatalf("detach: %v", err)
	}
	if resp.Room == nil || len(resp.Room.Accessories) != 0 {
		t.Fatalf("detach response: %+v", resp.Room)
	}
	rooms, err = svc.EnumerateRooms(ctx, &schema.EnumerateRoomsRequest{NameFilter: "Hallway"})
	if err != nil || len(rooms.Rooms) != 1 {
		t.Fatalf("room should survive detach: %v %+v", err, rooms)
	}

	// Remove the whole room.
	_, err = svc.AddRemoveRoom(ctx, &schema.AddRemoveRoomRequest{
		Name:      "Hallway",
		Operation: schema.RoomOperationRemove,
	})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	rooms, err = svc.EnumerateRooms(ctx, &schema.EnumerateRoomsRequest{NameFilter: "Hallway"})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(rooms.Rooms) != 0 {
		t.Fatalf("room should be gone: %+v", rooms.Rooms)
	}
}

func TestAddRoomMovesAccessoryOutOfOldRoom(t *testing.T) {
	svc := newFixtureService()
	ctx := context.Background()

	// The lamp starts in the Lounge; putting it in a new room must take
	// it out of the Lounge's membership, not just repoint the accessory.
	resp, err := svc.AddRemoveRoom(ctx, &schema.AddRemoveRoomRequest{
		Name:        "Office",
		Accessories: []string{lampUUID},
		Operation:   schema.RoomOperationAdd,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if resp.Room == nil || len(resp.Room.Accessories) != 1 {
		t.Fatalf("add response: %+v", resp.Room)
	}

	rooms, err := svc.EnumerateRooms(ctx, &schema.EnumerateRoomsRequest{NameFilter: "Lounge"})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(rooms.Rooms) != 1 {
		t.Fatalf("expected the lounge, got %+v", rooms.Rooms)
	}
	if n := len(rooms.Rooms[0].Accessories); n != 0 {
		t.Fatalf("lounge should be empty after the move, still holds %d", n)
	}

	acc, err := svc.EnumerateAccessories(ctx, &schema.EnumerateAccessoriesRequest{NameFilter: "Desk Lamp"})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(acc.Accessories) != 1 || acc.Accessories[0].Room == nil || acc.Accessories[0].Room.Name != "Office" {
		t.Fatalf("lamp should report the new room: %+v", acc.Accessories)
	}
}

func TestAddRemoveRoomValidation(t *testing.T) {
	svc := newFixtureService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  *schema.AddRemoveRoomRequest
		want schema.StatusCode
	}{
		{
			"invalid operation",
			&schema.AddRemoveRoomRequest{Name: "X", Operation: schema.RoomOperationInvalid},
			schema.StatusInvalidArgument,
		},
		{
			"empty name",
			&schema.AddRemoveRoomRequest{Operation: schema.RoomOperationAdd},
			schema.StatusInvalidArgument,
		},
		{
			"malformed accessory uuid",
			&schema.AddRemoveRoomRequest{Name: "X", Accessories: []string{"not-a-uuid"}, Operation: schema.RoomOperationAdd},
			schema.StatusInvalidArgument,
		},
		{
			"unknown accessory",
			&schema.AddRemoveRoomRequest{Name: "X", Accessories: []string{"6d5c4b3a-2f1e-4d0c-9b8a-7f6e5d4c3b2a"}, Operation: schema.RoomOperationAdd},
			schema.StatusNotFound,
		},
		{
			"remove unknown room",
			&schema.AddRemoveRoomRequest{Name: "No Such Room", Operation: schema.RoomOperationRemove},
			schema.StatusNotFound,
		},
		{
			"detach accessory not in room",
			&schema.AddRemoveRoomRequest{Name: "Bedroom", Accessories: []string{lampUUID}, Operation: schema.RoomOperationRemove},
			schema.StatusFailedPrecondition,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddRemoveRoom(ctx, tc.req)
			st, ok := err.(*schema.Status)
			if !ok || st.Code != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUnavailableProvider(t *testing.T) {
	mem := NewMemory(fixtureHomes()...)
	mem.SetAvailable(false)
	svc := NewService(mem)

	_, err := svc.EnumerateHomes(context.Background(), &schema.EnumerateHomesRequest{})
	st, ok := err.(*schema.Status)
	if !ok || st.Code != schema.StatusUnavailable {
		t.Fatalf("expected Unavailable, got %v", err)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	mem := NewMemory(fixtureHomes()...)
	svc := NewService(mem)
	ctx := context.Background()

	before, err := svc.EnumerateRooms(ctx, &schema.EnumerateRoomsRequest{})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	n := len(before.Rooms)

	if _, err := mem.AddRoom(ctx, mainHomeUUID, "Attic", nil); err != nil {
		t.Fatalf("add: %v", err)
	}

	// The earlier response must not have grown.
	if len(before.Rooms) != n {
		t.Fatalf("snapshot mutated: %d != %d", len(before.Rooms), n)
	}

	after, err := svc.EnumerateRooms(ctx, &schema.EnumerateRoomsRequest{})
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	if len(after.Rooms) != n+1 {
		t.Fatalf("new room missing: %d", len(after.Rooms))
	}
}
