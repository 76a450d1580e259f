package schema

import (
	"testing"

	"github.com/hkwire/hkctl/internal/pkg/wire"
)

func TestEnumerateServicesRequestKeepsTypeOrder(t *testing.T) {
	in := EnumerateServicesRequest{
		Home:       "Main Home",
		Types:      []ServiceType{ServiceTypeLightBulb, ServiceTypeSwitch, ServiceTypeOutlet},
		NameFilter: "desk",
	}

	var out EnumerateServicesRequest
	if err := out.UnmarshalWire(in.MarshalWire()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Types) != 3 || out.Types[0] != ServiceTypeLightBulb || out.Types[1] != ServiceTypeSwitch || out.Types[2] != ServiceTypeOutlet {
		t.Fatalf("types mangled: %v", out.Types)
	}
	if out.Home != "Main Home" || out.NameFilter != "desk" {
		t.Fatalf("filters lost: %+v", out)
	}
}

func TestEnumerateTriggersRequestWindow(t *testing.T) {
	in := EnumerateTriggersRequest{
		EnabledFilter: EnabledFilterEnabledOnly,
		Before:        1767225600,
		After:         1767139200,
	}

	var out EnumerateTriggersRequest
	if err := out.UnmarshalWire(in.MarshalWire()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.EnabledFilter != EnabledFilterEnabledOnly || out.Before != 1767225600 || out.After != 1767139200 {
		t.Fatalf("window lost: %+v", out)
	}
}

func TestAddRemoveRoomRequestClampsOperation(t *testing.T) {
	var e wire.Encoder
	e.String(1, "")
	e.String(2, "Hallway")
	e.U32(4, 40)

	var out AddRemoveRoomRequest
	if err := out.UnmarshalWire(e.Bytes()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Operation != RoomOperationInvalid {
		t.Fatalf("out of range operation not clamped: %v", out.Operation)
	}
}
