package hkservice

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hkwire/hkctl/internal/pkg/schema"
)

// Memory is an in-process Provider. It backs the development server and
// the test suites; a platform-native adapter would replace it in a real
// deployment.
type Memory struct {
	mu          sync.RWMutex
	homes       []HomeGraph
	unavailable bool
}

func NewMemory(homes ...HomeGraph) *Memory {
	return &Memory{homes: homes}
}

// SetAvailable flips the provider's readiness; an unavailable provider
// fails every operation with StatusUnavailable.
func (m *Memory) SetAvailable(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unavailable = !ok
}

func (m *Memory) Snapshot(ctx context.Context) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.unavailable {
		return nil, schema.Statusf(schema.StatusUnavailable, "provider is not ready")
	}

	snap := &Snapshot{Homes: make([]HomeGraph, len(m.homes))}
	for i := range m.homes {
		snap.Homes[i] = copyGraph(&m.homes[i])
	}
	return snap, nil
}

func (m *Memory) AddRoom(ctx context.Context, homeUUID, name string, accessoryUUIDs []string) (*schema.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.unavailable {
		return nil, schema.Statusf(schema.StatusUnavailable, "provider is not ready")
	}

	g := m.graph(homeUUID)
	if g == nil {
		return nil, schema.Statusf(schema.StatusNotFound, "home %s not found", homeUUID)
	}

	for i := range g.Rooms {
		if g.Rooms[i].Name == name {
			return nil, schema.Statusf(schema.StatusAlreadyExists, "room %q already exists", name)
		}
	}

	// Validate before committing anything: an unknown accessory aborts
	// the whole operation.
	targets := make([]*schema.Accessory, 0, len(accessoryUUIDs))
	for _, au := range accessoryUUIDs {
		a := g.accessory(au)
		if a == nil {
			return nil, schema.Statusf(schema.StatusNotFound, "accessory %s not found", au)
		}
		targets = append(targets, a)
	}

	room := schema.Room{UUID: uuid.New().String(), Name: name}
	for _, a := range targets {
		// An accessory lives in at most one room; moving it here must
		// drop it from the old room's membership too.
		g.detachFromRoom(a)
		a.Room = &schema.NamedRef{UUID: room.UUID, Name: room.Name}
		room.Accessories = append(room.Accessories, schema.NamedRef{UUID: a.UUID, Name: a.Name})
	}
	g.Rooms = append(g.Rooms, room)

	out := copyRoom(&room)
	return &out, nil
}

func (m *Memory) RemoveRoom(ctx context.Context, homeUUID, roomUUID string, accessoryUUIDs []string) (*schema.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.unavailable {
		return nil, schema.Statusf(schema.StatusUnavailable, "provider is not ready")
	}

	g := m.graph(homeUUID)
	if g == nil {
		return nil, schema.Statusf(schema.StatusNotFound, "home %s not found", homeUUID)
	}

	roomIdx := -1
	for i := range g.Rooms {
		if strings.EqualFold(g.Rooms[i].UUID, roomUUID) {
			roomIdx = i
			break
		}
	}
	if roomIdx < 0 {
		return nil, schema.Statusf(schema.StatusNotFound, "room %s not found", roomUUID)
	}
	room := &g.Rooms[roomIdx]

	if len(accessoryUUIDs) == 0 {
		// Deleting the room detaches everything that was in it.
		for i := range g.Accessories {
			a := &g.Accessories[i]
			if a.Room != nil && strings.EqualFold(a.Room.UUID, room.UUID) {
				a.Room = nil
			}
		}
		removed := copyRoom(room)
		removed.Accessories = nil
		g.Rooms = append(g.Rooms[:roomIdx], g.Rooms[roomIdx+1:]...)
		return &removed, nil
	}

	// Detach only the listed accessories; the room itself stays.
	targets := make([]*schema.Accessory, 0, len(accessoryUUIDs))
	for _, au := range accessoryUUIDs {
		a := g.accessory(au)
		if a == nil {
			return nil, schema.Statusf(schema.StatusNotFound, "accessory %s not found", au)
		}
		if a.Room == nil || !strings.EqualFold(a.Room.UUID, room.UUID) {
			return nil, schema.Statusf(schema.StatusFailedPrecondition, "accessory %s is not in room %q", au, room.Name)
		}
		targets = append(targets, a)
	}

	detached := make(map[string]bool, len(targets))
	for _, a := range targets {
		a.Room = nil
		detached[strings.ToLower(a.UUID)] = true
	}
	kept := room.Accessories[:0:0]
	for _, ref := range room.Accessories {
		if !detached[strings.ToLower(ref.UUID)] {
			kept = append(kept, ref)
		}
	}
	room.Accessories = kept

	out := copyRoom(room)
	return &out, nil
}

// graph returns the live home graph; callers hold the lock.
func (m *Memory) graph(homeUUID string) *HomeGraph {
	for i := range m.homes {
		if strings.EqualFold(m.homes[i].Home.UUID, homeUUID) {
			return &m.homes[i]
		}
	}
	return nil
}

// detachFromRoom removes the accessory from whichever room currently
// lists it; callers hold the lock.
func (g *HomeGraph) detachFromRoom(a *schema.Accessory) {
	if a.Room == nil {
		return
	}
	for i := range g.Rooms {
		r := &g.Rooms[i]
		if !strings.EqualFold(r.UUID, a.Room.UUID) {
			continue
		}
		kept := r.Accessories[:0:0]
		for _, ref := range r.Accessories {
			if !strings.EqualFold(ref.UUID, a.UUID) {
				kept = append(kept, ref)
			}
		}
		r.Accessories = kept
		return
	}
}

func (g *HomeGraph) accessory(uuidStr string) *schema.Accessory {
	for i := range g.Accessories {
		if strings.EqualFold(g.Accessories[i].UUID, uuidStr) {
			return &g.Accessories[i]
		}
	}
	return nil
}

/*
 * Snapshots hand out copies of anything a mutation can touch (rooms,
 * accessory room assignment, room membership). Deeper structures such as
 * services and characteristics are immutable once loaded and can be
 * shared.
 */

func copyGraph(g *HomeGraph) HomeGraph {
	out := HomeGraph{
		Home:          g.Home,
		Zones:         append([]schema.Zone(nil), g.Zones...),
		ActionSets:    append([]schema.ActionSet(nil), g.ActionSets...),
		Triggers:      append([]schema.Trigger(nil), g.Triggers...),
		ServiceGroups: append([]schema.ServiceGroup(nil), g.ServiceGroups...),
	}
	out.Rooms = make([]schema.Room, len(g.Rooms))
	for i := range g.Rooms {
		out.Rooms[i] = copyRoom(&g.Rooms[i])
	}
	out.Accessories = make([]schema.Accessory, len(g.Accessories))
	for i := range g.Accessories {
		a := g.Accessories[i]
		if a.Room != nil {
			ref := *a.Room
			a.Room = &ref
		}
		out.Accessories[i] = a
	}
	return out
}

func copyRoom(r *schema.Room) schema.Room {
	out := *r
	out.Accessories = append([]schema.NamedRef(nil), r.Accessories...)
	return out
}
