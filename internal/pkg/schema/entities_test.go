package schema

import (
	"testing"

	"github.com/hkwire/hkctl/internal/pkg/wire"
)

func TestHomeRoundTripWithUnknownField(t *testing.T) {
	in := Home{
		UUID:      "11111111-2222-3333-4444-555555555555",
		Name:      "My Home",
		IsPrimary: true,
		HubState:  HubStateConnected,
	}

	// Splice in a field this decoder does not know about.
	var e wire.Encoder
	e.Unknown(mustSplit(t, in.MarshalWire()))
	e.String(900, "from a newer peer")

	var mid Home
	if err := mid.UnmarshalWire(e.Bytes()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if mid.Name != in.Name || !mid.IsPrimary || mid.HubState != HubStateConnected {
		t.Fatalf("known fields lost: %+v", mid)
	}

	// Re-encoding must carry the unknown field through.
	fields := mustSplit(t, mid.MarshalWire())
	var found bool
	for _, f := range fields {
		if f.ID == 900 {
			found = true
		}
	}
	if !found {
		t.Fatal("unknown field dropped on re-encode")
	}
}

func TestHomeDecodeClampsUnknownHubState(t *testing.T) {
	var e wire.Encoder
	e.String(1, "uuid")
	e.String(2, "name")
	e.Bool(3, false)
	e.U32(4, 99)

	var h Home
	if err := h.UnmarshalWire(e.Bytes()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if h.HubState != HubStateInvalid {
		t.Fatalf("out of range hub state not clamped: %v", h.HubState)
	}
}

func TestAccessoryBridgeInvariant(t *testing.T) {
	bridge := Accessory{
		UUID:                  "b",
		Name:                  "Bridge",
		Category:              CategoryBridge,
		BridgedAccessoryUUIDs: []string{"a1", "a2"},
	}

	var out Accessory
	if err := out.UnmarshalWire(bridge.MarshalWire()); err != nil {
		t.Fatalf("bridge should decode: %v", err)
	}
	if len(out.BridgedAccessoryUUIDs) != 2 {
		t.Fatalf("bridged UUIDs lost: %+v", out.BridgedAccessoryUUIDs)
	}

	lamp := bridge
	lamp.Category = CategoryLightBulb

	var bad Accessory
	err := bad.UnmarshalWire(lamp.MarshalWire())
	st, ok := err.(*Status)
	if !ok || st.Code != StatusInvalidArgument {
		t.Fatalf("expected InvalidArgument for non-bridge with bridged accessories, got %v", err)
	}
}

func TestMetadataRangeValidation(t *testing.T) {
	good := Metadata{
		MinimumValue: SignedNumber(0),
		MaximumValue: SignedNumber(100),
		Format:       FormatInt,
	}
	var out Metadata
	if err := out.UnmarshalWire(good.MarshalWire()); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}

	inverted := Metadata{
		MinimumValue: SignedNumber(10),
		MaximumValue: SignedNumber(1),
	}
	err := new(Metadata).UnmarshalWire(inverted.MarshalWire())
	st, ok := err.(*Status)
	if !ok || st.Code != StatusInvalidArgument {
		t.Fatalf("expected InvalidArgument for inverted range, got %v", err)
	}

	mixed := Metadata{
		MinimumValue: SignedNumber(1),
		MaximumValue: DoubleNumber(10),
	}
	err = new(Metadata).UnmarshalWire(mixed.MarshalWire())
	st, ok = err.(*Status)
	if !ok || st.Code != StatusInvalidArgument {
		t.Fatalf("expected InvalidArgument for mixed kinds, got %v", err)
	}
}

func TestServiceRoundTripNested(t *testing.T) {
	in := Service{
		UUID:          "s1",
		Name:          "Desk Lamp",
		IsPrimary:     true,
		IsInteractive: true,
		ServiceType:   ServiceTypeLightBulb,
		Characteristics: []Characteristic{
			{
				UUID:               "c1",
				Description:        "Power State",
				Properties:         []Property{PropertyReadable, PropertyWritable},
				CharacteristicType: CharacteristicTypePowerState,
				Value:              BoolValue(true),
			},
		},
	}

	var out Service
	if err := out.UnmarshalWire(in.MarshalWire()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ServiceType != ServiceTypeLightBulb {
		t.Errorf("service type: %v", out.ServiceType)
	}
	if len(out.Characteristics) != 1 {
		t.Fatalf("characteristics lost: %d", len(out.Characteristics))
	}
	c := out.Characteristics[0]
	if !c.IsWritable() {
		t.Error("writable property lost")
	}
	if c.Value == nil || c.Value.Bool == nil || !*c.Value.Bool {
		t.Errorf("sampled value lost: %+v", c.Value)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	in := Statusf(StatusNotFound, "no home matches %q", "Beach House")

	var out Status
	if err := out.UnmarshalWire(in.MarshalWire()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Code != StatusNotFound || out.Message != in.Message {
		t.Fatalf("status mangled: %+v", out)
	}
}

func mustSplit(t *testing.T, b []byte) []wire.Field {
	t.Helper()
	fields, err := wire.Split(b)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	return fields
}
