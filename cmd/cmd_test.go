package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/hkwire/hkctl/internal/pkg/schema"
	"github.com/hkwire/hkctl/internal/pkg/transport"
)

func TestParseTimestamp(t *testing.T) {
	got, err := parseTimestamp("2026-01-01 00:00:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 1767225600 {
		t.Fatalf("expected 1767225600, got %d", got)
	}

	if got, err := parseTimestamp(""); err != nil || got != 0 {
		t.Fatalf("empty timestamp should be zero: %d %v", got, err)
	}

	_, err = parseTimestamp("next tuesday")
	var ue *usageError
	if !errors.As(err, &ue) {
		t.Fatalf("expected a usage error, got %v", err)
	}
}

func TestParseEnabledFilter(t *testing.T) {
	cases := map[string]schema.EnabledFilter{
		"either": schema.EnabledFilterNone,
		"true":   schema.EnabledFilterEnabledOnly,
		"false":  schema.EnabledFilterDisabledOnly,
	}
	for in, want := range cases {
		got, err := parseEnabledFilter(in)
		if err != nil || got != want {
			t.Errorf("%q: got %v %v, want %v", in, got, err, want)
		}
	}

	_, err := parseEnabledFilter("maybe")
	var ue *usageError
	if !errors.As(err, &ue) {
		t.Fatalf("expected a usage error, got %v", err)
	}
}

func TestParseRoomOperation(t *testing.T) {
	for _, in := range []string{"rm", "remove"} {
		op, err := parseRoomOperation(in)
		if err != nil || op != schema.RoomOperationRemove {
			t.Errorf("%q: got %v %v", in, op, err)
		}
	}
	op, err := parseRoomOperation("add")
	if err != nil || op != schema.RoomOperationAdd {
		t.Errorf("add: got %v %v", op, err)
	}

	_, err = parseRoomOperation("destroy")
	var ue *usageError
	if !errors.As(err, &ue) {
		t.Fatalf("expected a usage error, got %v", err)
	}
}

func TestReportError(t *testing.T) {
	var out strings.Builder
	code := reportError(&out, triggersCmd, usageErrorf("bad flag"))
	if code != 2 {
		t.Fatalf("usage error should exit 2, got %d", code)
	}
	if !strings.Contains(out.String(), "hkctl: bad flag") || !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("usage error should print the usage text, got %q", out.String())
	}

	out.Reset()
	code = reportError(&out, rootCmd, schema.Statusf(schema.StatusNotFound, "no such home"))
	if code != 1 {
		t.Fatalf("service error should exit 1, got %d", code)
	}
	if out.String() != "Error returned by server: no such home\n" {
		t.Fatalf("service error output: %q", out.String())
	}

	out.Reset()
	code = reportError(&out, rootCmd, &transport.TransportError{Op: "EnumerateHomes", Err: errors.New("connection refused")})
	if code != 3 {
		t.Fatalf("transport error should exit 3, got %d", code)
	}
}

func TestSampleHomesAreCoherent(t *testing.T) {
	homes := sampleHomes()
	if len(homes) == 0 {
		t.Fatal("no sample homes")
	}
	g := homes[0]
	if !g.Home.IsPrimary {
		t.Error("first sample home should be primary")
	}

	// Every room reference on an accessory must resolve to a real room.
	rooms := map[string]bool{}
	for _, r := range g.Rooms {
		rooms[r.UUID] = true
	}
	for _, a := range g.Accessories {
		if a.Room != nil && !rooms[a.Room.UUID] {
			t.Errorf("accessory %s references unknown room %s", a.Name, a.Room.UUID)
		}
	}
}
