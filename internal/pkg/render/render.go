// Package render writes enumeration results in the fixed plain-text
// layout the CLI prints. Renderers are pure: they read a response and
// write to an io.Writer, nothing else.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hkwire/hkctl/internal/pkg/schema"
)

const timeLayout = "2006-01-02 15:04:05"

func utcTime(secs uint64) string {
	return time.Unix(int64(secs), 0).UTC().Format(timeLayout)
}

func hubStateText(s schema.HubState) string {
	switch s {
	case schema.HubStateConnected:
		return "Connected"
	case schema.HubStateDisconnected:
		return "Disconnected"
	case schema.HubStateNotAvailable:
		return "Not Available"
	}
	return "Unknown"
}

func Homes(w io.Writer, resp *schema.EnumerateHomesResponse) {
	for i := range resp.Homes {
		h := &resp.Homes[i]
		primary := ""
		if h.IsPrimary {
			primary = " (Primary)"
		}
		fmt.Fprintf(w, "Home: %s%s\n", h.Name, primary)
		fmt.Fprintf(w, "  UUID:      %s\n", h.UUID)
		fmt.Fprintf(w, "  Hub State: %s\n", hubStateText(h.HubState))
	}
}

func homeLine(w io.Writer, home *schema.Home) {
	if home != nil {
		fmt.Fprintf(w, "Home: %s\n", home.Name)
	}
}

func Rooms(w io.Writer, resp *schema.EnumerateRoomsResponse) {
	homeLine(w, resp.Home)
	fmt.Fprintf(w, "Rooms (%d):\n", len(resp.Rooms))
	for i := range resp.Rooms {
		r := &resp.Rooms[i]
		fmt.Fprintf(w, "  Room: %s\n", r.Name)
		fmt.Fprintf(w, "    UUID: %s\n", r.UUID)
		fmt.Fprintf(w, "    Accessories: (%d)\n", len(r.Accessories))
		for _, a := range r.Accessories {
			fmt.Fprintf(w, "      Accessory: %s (%s)\n", a.Name, a.UUID)
		}
	}
}

func Zones(w io.Writer, resp *schema.EnumerateZonesResponse) {
	fmt.Fprintf(w, "Zones (%d):\n", len(resp.Zones))
	for i := range resp.Zones {
		z := &resp.Zones[i]
		fmt.Fprintf(w, "  Zone: %s\n", z.Name)
		fmt.Fprintf(w, "    UUID: %s\n", z.UUID)
		fmt.Fprintf(w, "    Rooms:\n")
		for _, r := range z.Rooms {
			fmt.Fprintf(w, "      Room: %s (%s)\n", r.Name, r.UUID)
		}
	}
}

func Accessories(w io.Writer, resp *schema.EnumerateAccessoriesResponse) {
	fmt.Fprintf(w, "Accessories: (%d)\n", len(resp.Accessories))
	for i := range resp.Accessories {
		a := &resp.Accessories[i]
		fmt.Fprintf(w, "  Accessory: %s\n", a.Name)
		if a.Room != nil {
			fmt.Fprintf(w, "    Room: %s (%s)\n", a.Room.Name, a.Room.UUID)
		} else {
			fmt.Fprintf(w, "    Room: None\n")
		}
		fmt.Fprintf(w, "    UUID: %s\n", a.UUID)
		fmt.Fprintf(w, "    Category: %s\n", a.Category)
		fmt.Fprintf(w, "    Model: %s\n", a.Model)
		fmt.Fprintf(w, "    Manufacturer: %s\n", a.Manufacturer)
		fmt.Fprintf(w, "    Firmware Version: %s\n", a.FirmwareVersion)
		fmt.Fprintf(w, "    Is Reachable: %t\n", a.IsReachable)
		fmt.Fprintf(w, "    Is Blocked: %t\n", a.IsBlocked)
		fmt.Fprintf(w, "    Is Bridged: %t\n", a.IsBridged)
		fmt.Fprintf(w, "    Supports Identify: %t\n", a.SupportsIdentify)
		fmt.Fprintf(w, "    Profiles: (%d)\n", len(a.Profiles))
		for j := range a.Profiles {
			p := &a.Profiles[j]
			fmt.Fprintf(w, "      Profile:\n")
			fmt.Fprintf(w, "        UUID: %s\n", p.UUID)
			fmt.Fprintf(w, "        Network Restricted: %t\n", p.IsNetworkAccessRestricted)
			fmt.Fprintf(w, "        Services: (%d)\n", len(p.Services))
			for _, s := range p.Services {
				fmt.Fprintf(w, "          Service: %s (%s)\n", s.Name, s.UUID)
			}
		}
		fmt.Fprintf(w, "    Services: (%d)\n", len(a.Services))
		for j := range a.Services {
			service(w, &a.Services[j], 6)
		}
		if a.Category == schema.CategoryBridge {
			fmt.Fprintf(w, "    Bridged Accessories: (%d)\n", len(a.BridgedAccessoryUUIDs))
			for _, u := range a.BridgedAccessoryUUIDs {
				fmt.Fprintf(w, "      UUID: %s\n", u)
			}
		}
	}
}

func Services(w io.Writer, resp *schema.EnumerateServicesResponse) {
	homeLine(w, resp.Home)
	fmt.Fprintf(w, "Services: (%d)\n", len(resp.Services))
	for i := range resp.Services {
		service(w, &resp.Services[i], 2)
	}
}

func service(w io.Writer, s *schema.Service, indent int) {
	p := strings.Repeat(" ", indent)
	fmt.Fprintf(w, "%sService: %s\n", p, s.Name)
	fmt.Fprintf(w, "%s  UUID: %s\n", p, s.UUID)
	fmt.Fprintf(w, "%s  Is Primary: %t\n", p, s.IsPrimary)
	fmt.Fprintf(w, "%s  Is Interactive: %t\n", p, s.IsInteractive)
	fmt.Fprintf(w, "%s  Service Type: %s\n", p, s.ServiceType)
	fmt.Fprintf(w, "%s  Associated Service Type: %s\n", p, s.AssociatedServiceType)
	fmt.Fprintf(w, "%s  Characteristics: (%d)\n", p, len(s.Characteristics))
	for i := range s.Characteristics {
		characteristic(w, &s.Characteristics[i], indent+4)
	}
}

func characteristic(w io.Writer, c *schema.Characteristic, indent int) {
	p := strings.Repeat(" ", indent)
	fmt.Fprintf(w, "%sCharacteristic: %s\n", p, c.UUID)
	fmt.Fprintf(w, "%s  Description: %s\n", p, c.Description)

	props := make([]string, len(c.Properties))
	for i, prop := range c.Properties {
		props[i] = prop.String()
	}
	fmt.Fprintf(w, "%s  Properties: %s\n", p, strings.Join(props, ", "))
	fmt.Fprintf(w, "%s  Type: %s\n", p, c.CharacteristicType)

	if m := c.Metadata; m != nil {
		fmt.Fprintf(w, "%s  Metadata:\n", p)
		fmt.Fprintf(w, "%s    Manufacturer Description: %s\n", p, m.ManufacturerDescription)
		if len(m.ValidValues) > 0 {
			fmt.Fprintf(w, "%s    Valid Values: (%d)\n", p, len(m.ValidValues))
			for i := range m.ValidValues {
				fmt.Fprintf(w, "%s      %s\n", p, &m.ValidValues[i])
			}
		}
		if m.MinimumValue != nil {
			fmt.Fprintf(w, "%s    Minimum: %s\n", p, m.MinimumValue)
		}
		if m.MaximumValue != nil {
			fmt.Fprintf(w, "%s    Maximum: %s\n", p, m.MaximumValue)
		}
		if m.StepValue != nil {
			fmt.Fprintf(w, "%s    Step: %s\n", p, m.StepValue)
		}
		fmt.Fprintf(w, "%s    Format: %s\n", p, m.Format)
		fmt.Fprintf(w, "%s    Units: %s\n", p, m.Units)
	}

	if c.Value != nil {
		fmt.Fprintf(w, "%s  Last Value: %s\n", p, c.Value)
	}
}

func ServiceGroups(w io.Writer, resp *schema.EnumerateServiceGroupsResponse) {
	homeLine(w, resp.Home)
	fmt.Fprintf(w, "Service Groups: (%d)\n", len(resp.ServiceGroups))
	for i := range resp.ServiceGroups {
		sg := &resp.ServiceGroups[i]
		fmt.Fprintf(w, "  Service Group: %s\n", sg.Name)
		fmt.Fprintf(w, "    UUID: %s\n", sg.UUID)
		fmt.Fprintf(w, "    Services: (%d)\n", len(sg.Services))
		for _, s := range sg.Services {
			fmt.Fprintf(w, "      Service: %s (%s)\n", s.Name, s.UUID)
		}
	}
}

func ActionSets(w io.Writer, resp *schema.EnumerateActionSetsResponse) {
	homeLine(w, resp.Home)
	fmt.Fprintf(w, "Action Sets (%d):\n", len(resp.ActionSets))
	for i := range resp.ActionSets {
		as := &resp.ActionSets[i]
		fmt.Fprintf(w, "  Action Set: %s\n", as.Name)
		fmt.Fprintf(w, "    UUID: %s\n", as.UUID)
		fmt.Fprintf(w, "    Type: %s\n", as.ActionSetType)
		fmt.Fprintf(w, "    Is Executing: %t\n", as.IsExecuting)
		fmt.Fprintf(w, "    Actions: (%d)\n", len(as.Actions))
		for j := range as.Actions {
			action(w, &as.Actions[j])
		}
	}
}

func action(w io.Writer, a *schema.Action) {
	switch {
	case a.Generic != nil:
		fmt.Fprintf(w, "      Action:\n")
		fmt.Fprintf(w, "        UUID: %s\n", a.Generic.UUID)
	case a.Characteristic != nil:
		fmt.Fprintf(w, "      Action:\n")
		fmt.Fprintf(w, "        UUID: %s\n", a.Characteristic.UUID)
		if a.Characteristic.Characteristic != nil {
			characteristic(w, a.Characteristic.Characteristic, 8)
		}
	}
}

func Triggers(w io.Writer, resp *schema.EnumerateTriggersResponse) {
	homeLine(w, resp.Home)
	fmt.Fprintf(w, "Triggers (%d):\n", len(resp.Triggers))
	for i := range resp.Triggers {
		t := &resp.Triggers[i]
		switch {
		case t.Event != nil:
			eventTrigger(w, t.Event)
		case t.Timer != nil:
			timerTrigger(w, t.Timer)
		}
	}
}

func timerTrigger(w io.Writer, t *schema.TimerTrigger) {
	h := &t.Header
	fmt.Fprintf(w, "  Trigger: %s\n", h.Name)
	fmt.Fprintf(w, "    UUID: %s\n", h.UUID)
	fmt.Fprintf(w, "    Type: Timer\n")
	fmt.Fprintf(w, "    Is Enabled: %t\n", h.IsEnabled)
	fmt.Fprintf(w, "    Last Fire Date (UTC): %s\n", utcTime(h.LastFireDate))
	fmt.Fprintf(w, "    Next Fire Date (UTC): %s\n", utcTime(t.FireDate))
	fmt.Fprintf(w, "    Recurrence: %s\n", time.Duration(t.Recurrence)*time.Second)
	actionSetRefs(w, h)
}

func eventTrigger(w io.Writer, t *schema.EventTrigger) {
	h := &t.Header
	fmt.Fprintf(w, "  Trigger: %s\n", h.Name)
	fmt.Fprintf(w, "    UUID: %s\n", h.UUID)
	fmt.Fprintf(w, "    Type: Event\n")
	fmt.Fprintf(w, "    Is Enabled: %t\n", h.IsEnabled)
	fmt.Fprintf(w, "    Last Fire Date (UTC): %s\n", utcTime(h.LastFireDate))
	fmt.Fprintf(w, "    Activation State: %s\n", t.ActivationState)
	fmt.Fprintf(w, "    Executes Once: %t\n", t.ExecutesOnce)
	fmt.Fprintf(w, "    Events: (%d)\n", len(t.Events))
	for i := range t.Events {
		event(w, &t.Events[i])
	}
	fmt.Fprintf(w, "    End Events: (%d)\n", len(t.EndEvents))
	for i := range t.EndEvents {
		event(w, &t.EndEvents[i])
	}
	actionSetRefs(w, h)
}

func actionSetRefs(w io.Writer, h *schema.TriggerHeader) {
	fmt.Fprintf(w, "    Action Sets: (%d)\n", len(h.ActionSets))
	for _, as := range h.ActionSets {
		fmt.Fprintf(w, "      Action Set: %s (%s)\n", as.Name, as.UUID)
	}
}

func event(w io.Writer, e *schema.Event) {
	switch {
	case e.Location != nil:
		le := e.Location
		fmt.Fprintf(w, "      Event: %s\n", le.UUID)
		fmt.Fprintf(w, "        Type: Location\n")
		fmt.Fprintf(w, "        Notify On Entry: %t\n", le.NotifyOnEntry)
		fmt.Fprintf(w, "        Notify On Exit: %t\n", le.NotifyOnExit)
		if r := le.Region; r != nil {
			fmt.Fprintf(w, "        Region:\n")
			if r.Center != nil {
				fmt.Fprintf(w, "          Center: (%v, %v)\n", r.Center.Latitude, r.Center.Longitude)
			}
			fmt.Fprintf(w, "          Radius: %v\n", r.Radius)
		}
	case e.Calendar != nil:
		ce := e.Calendar
		fmt.Fprintf(w, "      Event: %s\n", ce.UUID)
		fmt.Fprintf(w, "        Type: Calendar\n")
		fmt.Fprintf(w, "        Fire Date: %s\n", utcTime(ce.FireDate))
	case e.SignificantTime != nil:
		ste := e.SignificantTime
		fmt.Fprintf(w, "      Event: %s\n", ste.UUID)
		fmt.Fprintf(w, "        Type: Significant Time\n")
		fmt.Fprintf(w, "        Significant Event: %s\n", ste.SignificantEvent)
		if ste.Offset == 0 {
			fmt.Fprintf(w, "        Offset: None\n")
		} else {
			fmt.Fprintf(w, "        Offset: %s\n", time.Duration(ste.Offset)*time.Second)
		}
	case e.Duration != nil:
		de := e.Duration
		fmt.Fprintf(w, "      Event: %s\n", de.UUID)
		fmt.Fprintf(w, "        Type: Duration\n")
		fmt.Fprintf(w, "        Duration: %s\n", time.Duration(de.Duration)*time.Second)
	case e.Characteristic != nil:
		ce := e.Characteristic
		fmt.Fprintf(w, "      Event: %s\n", ce.UUID)
		fmt.Fprintf(w, "        Type: Characteristic Event\n")
		if c := ce.Characteristic; c != nil {
			fmt.Fprintf(w, "        Characteristic: %s (%s)\n", c.Name, c.UUID)
		}
		if ce.TriggerValue != nil {
			fmt.Fprintf(w, "        Trigger Value: %s\n", ce.TriggerValue)
		} else {
			fmt.Fprintf(w, "        Trigger Value: Any Change\n")
		}
	case e.ThresholdRange != nil:
		tre := e.ThresholdRange
		fmt.Fprintf(w, "      Event: %s\n", tre.UUID)
		fmt.Fprintf(w, "        Type: Characteristic Threshold Range\n")
		if c := tre.Characteristic; c != nil {
			fmt.Fprintf(w, "        Characteristic: %s (%s)\n", c.Name, c.UUID)
		}
		if r := tre.Range; r != nil {
			if r.MinValue != nil {
				fmt.Fprintf(w, "        Min: %s\n", r.MinValue)
			} else {
				fmt.Fprintf(w, "        Min: None\n")
			}
			if r.MaxValue != nil {
				fmt.Fprintf(w, "        Max: %s\n", r.MaxValue)
			} else {
				fmt.Fprintf(w, "        Max: None\n")
			}
		}
	case e.Presence != nil:
		pe := e.Presence
		fmt.Fprintf(w, "      Event: %s\n", pe.UUID)
		fmt.Fprintf(w, "        Type: Presence\n")
		fmt.Fprintf(w, "        Event Type: %s\n", pe.PresenceEvent)
		fmt.Fprintf(w, "        Users: %s\n", pe.PresenceUser)
	}
}

func Room(w io.Writer, resp *schema.AddRemoveRoomResponse) {
	home, room := "", ""
	if resp.Home != nil {
		home = resp.Home.Name
	}
	if resp.Room != nil {
		room = resp.Room.Name
	}
	fmt.Fprintf(w, "Home: %s, Room %s\n", home, room)
}
