package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hkwire/hkctl/internal/pkg/schema"
)

func TestHomesLayout(t *testing.T) {
	resp := &schema.EnumerateHomesResponse{
		Homes: []schema.Home{
			{UUID: "h1", Name: "Main Home", IsPrimary: true, HubState: schema.HubStateConnected},
			{UUID: "h2", Name: "Beach House", HubState: schema.HubStateNotAvailable},
		},
	}

	var buf bytes.Buffer
	Homes(&buf, resp)

	want := "Home: Main Home (Primary)\n" +
		"  UUID:      h1\n" +
		"  Hub State: Connected\n" +
		"Home: Beach House\n" +
		"  UUID:      h2\n" +
		"  Hub State: Not Available\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestHomesUnknownHubState(t *testing.T) {
	var buf bytes.Buffer
	Homes(&buf, &schema.EnumerateHomesResponse{
		Homes: []schema.Home{{UUID: "h", Name: "X", HubState: schema.HubStateInvalid}},
	})
	if !strings.Contains(buf.String(), "Hub State: Unknown") {
		t.Fatalf("invalid hub state should render as Unknown:\n%s", buf.String())
	}
}

func TestZonesLayout(t *testing.T) {
	resp := &schema.EnumerateZonesResponse{
		Zones: []schema.Zone{
			{UUID: "z1", Name: "Downstairs", Rooms: []schema.NamedRef{{UUID: "r1", Name: "Lounge"}}},
		},
	}

	var buf bytes.Buffer
	Zones(&buf, resp)

	want := "Zones (1):\n" +
		"  Zone: Downstairs\n" +
		"    UUID: z1\n" +
		"    Rooms:\n" +
		"      Room: Lounge (r1)\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestAccessoriesBridgedListOnlyForBridges(t *testing.T) {
	bridge := schema.Accessory{
		UUID: "b1", Name: "Bridge",
		Category:              schema.CategoryBridge,
		BridgedAccessoryUUIDs: []string{"a1"},
	}
	lamp := schema.Accessory{
		UUID: "a1", Name: "Lamp",
		Category:  schema.CategoryLightBulb,
		IsBridged: true,
	}

	var buf bytes.Buffer
	Accessories(&buf, &schema.EnumerateAccessoriesResponse{
		Accessories: []schema.Accessory{bridge, lamp},
	})
	out := buf.String()

	if !strings.Contains(out, "    Bridged Accessories: (1)\n      UUID: a1\n") {
		t.Errorf("bridge should list bridged accessories:\n%s", out)
	}
	if strings.Count(out, "Bridged Accessories") != 1 {
		t.Errorf("only the bridge should list bridged accessories:\n%s", out)
	}
	if !strings.Contains(out, "    Room: None\n") {
		t.Errorf("roomless accessory should print Room: None:\n%s", out)
	}
	if !strings.Contains(out, "    Category: LightBulb\n") {
		t.Errorf("category name missing:\n%s", out)
	}
}

func TestServiceAndCharacteristicIndentation(t *testing.T) {
	resp := &schema.EnumerateServicesResponse{
		Home: &schema.Home{Name: "Main Home"},
		Services: []schema.Service{
			{
				UUID: "s1", Name: "Desk Lamp", IsPrimary: true,
				ServiceType: schema.ServiceTypeLightBulb,
				Characteristics: []schema.Characteristic{
					{
						UUID:               "c1",
						Description:        "Brightness",
						Properties:         []schema.Property{schema.PropertyReadable, schema.PropertyWritable},
						CharacteristicType: schema.CharacteristicTypeBrightness,
						Metadata: &schema.Metadata{
							MinimumValue: schema.SignedNumber(0),
							MaximumValue: schema.SignedNumber(100),
							Format:       schema.FormatInt,
							Units:        schema.UnitsPercentage,
						},
						Value: schema.NumberValue(schema.SignedNumber(80)),
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	Services(&buf, resp)
	out := buf.String()

	for _, line := range []string{
		"Home: Main Home\n",
		"Services: (1)\n",
		"  Service: Desk Lamp\n",
		"    UUID: s1\n",
		"    Characteristics: (1)\n",
		"      Characteristic: c1\n",
		"        Properties: Readable, Writable\n",
		"        Metadata:\n",
		"          Minimum: 0\n",
		"          Maximum: 100\n",
		"        Last Value: 80\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing %q in:\n%s", line, out)
		}
	}
}

func TestTriggersLayout(t *testing.T) {
	resp := &schema.EnumerateTriggersResponse{
		Home: &schema.Home{Name: "Main Home"},
		Triggers: []schema.Trigger{
			{Timer: &schema.TimerTrigger{
				Header: schema.TriggerHeader{
					UUID: "t1", Name: "Nightly", IsEnabled: true,
					LastFireDate: 1767225600,
					ActionSets:   []schema.NamedRef{{UUID: "as1", Name: "Good Night"}},
				},
				FireDate:   1767312000,
				Recurrence: 86400,
			}},
			{Event: &schema.EventTrigger{
				Header:          schema.TriggerHeader{UUID: "t2", Name: "Arrival"},
				ActivationState: schema.ActivationStateEnabled,
				Events: []schema.Event{
					{Presence: &schema.PresenceEvent{
						UUID:          "e1",
						PresenceEvent: schema.PresenceEventFirstEntry,
						PresenceUser:  schema.PresenceUserHomeUsers,
					}},
				},
			}},
		},
	}

	var buf bytes.Buffer
	Triggers(&buf, resp)
	out := buf.String()

	for _, line := range []string{
		"Triggers (2):\n",
		"  Trigger: Nightly\n",
		"    Type: Timer\n",
		"    Last Fire Date (UTC): 2026-01-01 00:00:00\n",
		"    Next Fire Date (UTC): 2026-01-02 00:00:00\n",
		"    Recurrence: 24h0m0s\n",
		"      Action Set: Good Night (as1)\n",
		"  Trigger: Arrival\n",
		"    Type: Event\n",
		"    Activation State: Enabled\n",
		"      Event: e1\n",
		"        Type: Presence\n",
		"        Event Type: FirstEntry\n",
		"        Users: HomeUsers\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing %q in:\n%s", line, out)
		}
	}
}

func TestRoomLayout(t *testing.T) {
	var buf bytes.Buffer
	Room(&buf, &schema.AddRemoveRoomResponse{
		Home: &schema.Home{Name: "Main Home"},
		Room: &schema.Room{Name: "Hallway"},
	})
	if got := buf.String(); got != "Home: Main Home, Room Hallway\n" {
		t.Fatalf("got %q", got)
	}
}
