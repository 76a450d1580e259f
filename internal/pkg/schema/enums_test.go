package schema

import "testing"

func TestServiceTypeFromName(t *testing.T) {
	if got := ServiceTypeFromName("LightBulb"); got != ServiceTypeLightBulb {
		t.Errorf("LightBulb: got %v", got)
	}
	if got := ServiceTypeFromName("MotionSensor"); got != ServiceTypeMotionSensor {
		t.Errorf("MotionSensor: got %v", got)
	}
	// Unrecognized names map to the invalid type rather than failing.
	if got := ServiceTypeFromName("Flux Capacitor"); got != ServiceTypeInvalid {
		t.Errorf("unknown name: got %v", got)
	}
}

func TestEnumNamesRoundTrip(t *testing.T) {
	for st, name := range serviceTypeNames {
		if got := ServiceTypeFromName(name); got != st && name != "InvalidServiceType" {
			t.Errorf("%s: got %v want %v", name, got, st)
		}
	}
}

func TestEnumStringFallback(t *testing.T) {
	if got := Category(255).String(); got != "255" {
		t.Errorf("out of range category: %q", got)
	}
	if got := HubState(2).String(); got != "Disconnected" {
		t.Errorf("hub state: %q", got)
	}
}
