package schema

import (
	"testing"

	"github.com/hkwire/hkctl/internal/pkg/wire"
)

func TestTriggerUnionExactlyOne(t *testing.T) {
	timer := Trigger{
		Timer: &TimerTrigger{
			Header: TriggerHeader{
				UUID:         "t1",
				Name:         "Nightly",
				IsEnabled:    true,
				LastFireDate: 1700000000,
				ActionSets:   []NamedRef{{UUID: "as1", Name: "Good Night"}},
			},
			FireDate:   1700086400,
			Recurrence: 86400,
		},
	}

	var out Trigger
	if err := out.UnmarshalWire(timer.MarshalWire()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Timer == nil || out.Event != nil {
		t.Fatalf("wrong variant decoded: %+v", out)
	}
	hdr := out.TriggerInfo()
	if hdr == nil || hdr.Name != "Nightly" || len(hdr.ActionSets) != 1 {
		t.Fatalf("header lost: %+v", hdr)
	}

	// No variant at all is a malformed trigger.
	err := new(Trigger).UnmarshalWire([]byte{})
	st, ok := err.(*Status)
	if !ok || st.Code != StatusInvalidArgument {
		t.Fatalf("expected InvalidArgument for empty trigger, got %v", err)
	}

	// Both variants at once is too.
	both := Trigger{
		Event: &EventTrigger{Header: TriggerHeader{UUID: "e"}},
		Timer: &TimerTrigger{Header: TriggerHeader{UUID: "t"}},
	}
	err = new(Trigger).UnmarshalWire(both.MarshalWire())
	st, ok = err.(*Status)
	if !ok || st.Code != StatusInvalidArgument {
		t.Fatalf("expected InvalidArgument for double trigger, got %v", err)
	}
}

func TestEventTriggerRoundTrip(t *testing.T) {
	in := Trigger{
		Event: &EventTrigger{
			Header: TriggerHeader{
				UUID:      "t2",
				Name:      "Arrival",
				IsEnabled: true,
			},
			ActivationState: ActivationStateEnabled,
			ExecutesOnce:    true,
			Events: []Event{
				{Presence: &PresenceEvent{
					UUID:          "ev1",
					PresenceEvent: PresenceEventFirstEntry,
					PresenceUser:  PresenceUserHomeUsers,
				}},
				{Location: &LocationEvent{
					UUID:          "ev2",
					NotifyOnEntry: true,
					Region: &Region{
						Center: &Coordinate{Latitude: 51.5, Longitude: -0.12},
						Radius: 100,
					},
				}},
			},
			EndEvents: []Event{
				{SignificantTime: &SignificantTimeEvent{
					UUID:             "ev3",
					SignificantEvent: SignificantEventSunset,
					Offset:           -1800,
				}},
			},
		},
	}

	var out Trigger
	if err := out.UnmarshalWire(in.MarshalWire()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	et := out.Event
	if et == nil {
		t.Fatal("event trigger variant lost")
	}
	if et.ActivationState != ActivationStateEnabled || !et.ExecutesOnce {
		t.Errorf("trigger attributes lost: %+v", et)
	}
	if len(et.Events) != 2 || len(et.EndEvents) != 1 {
		t.Fatalf("events lost: %d/%d", len(et.Events), len(et.EndEvents))
	}
	if et.Events[0].Presence == nil || et.Events[0].Presence.PresenceEvent != PresenceEventFirstEntry {
		t.Errorf("presence event mangled: %+v", et.Events[0])
	}
	loc := et.Events[1].Location
	if loc == nil || loc.Region == nil || loc.Region.Center == nil || loc.Region.Center.Latitude != 51.5 {
		t.Errorf("location event mangled: %+v", loc)
	}
	ste := et.EndEvents[0].SignificantTime
	if ste == nil || ste.SignificantEvent != SignificantEventSunset || ste.Offset != -1800 {
		t.Errorf("significant time event mangled: %+v", ste)
	}
}

func TestEventUnionRejectsMultipleVariants(t *testing.T) {
	var e wire.Encoder
	e.Message(1, &LocationEvent{UUID: "a"})
	e.Message(2, &CalendarEvent{UUID: "b"})

	err := new(Event).UnmarshalWire(e.Bytes())
	st, ok := err.(*Status)
	if !ok || st.Code != StatusInvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestActionUnionVariants(t *testing.T) {
	in := Action{
		Characteristic: &CharacteristicAction{
			UUID: "a1",
			Characteristic: &Characteristic{
				UUID:               "c1",
				CharacteristicType: CharacteristicTypeBrightness,
			},
		},
	}

	var out Action
	if err := out.UnmarshalWire(in.MarshalWire()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Characteristic == nil || out.Characteristic.Characteristic == nil {
		t.Fatalf("characteristic action lost: %+v", out)
	}

	err := new(Action).UnmarshalWire([]byte{})
	st, ok := err.(*Status)
	if !ok || st.Code != StatusInvalidArgument {
		t.Fatalf("expected InvalidArgument for empty action, got %v", err)
	}
}
