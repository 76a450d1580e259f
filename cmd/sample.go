package cmd

import (
	"github.com/hkwire/hkctl/internal/pkg/hkservice"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

// sampleHomes seeds the development server with a small accessory
// graph. A platform adapter would replace this with the real one.
func sampleHomes() []hkservice.HomeGraph {
	const (
		homeUUID    = "5f8de1b2-6a8c-4f1e-9f2d-0c1b2a3d4e5f"
		loungeUUID  = "0a640b4d-9514-4b1e-a9a3-9a5ec5e8b201"
		bedroomUUID = "d2f0c6a7-30cd-4fc8-8f5e-2a6c4b8d9e0a"
		bridgeUUID  = "77c5e2a1-4f6b-4f1c-8cc2-b1e6d9f0a3c4"
		lampUUID    = "3b9e8d7c-6f5a-4e3d-b2c1-a0f9e8d7c6b5"
		lampSvcUUID = "8e7d6c5b-4a39-4d2e-9f8a-7b6c5d4e3f2a"
		onCharUUID  = "1f2e3d4c-5b6a-4798-8a9b-0c1d2e3f4a5b"
		sceneUUID   = "9a8b7c6d-5e4f-4a3b-8c9d-0e1f2a3b4c5d"
		timerUUID   = "4d5e6f7a-8b9c-4d1e-a2b3-c4d5e6f7a8b9"
		groupUUID   = "b1c2d3e4-f5a6-4b7c-8d9e-0f1a2b3c4d5e"
		zoneUUID    = "c9d8e7f6-a5b4-4c3d-9e8f-7a6b5c4d3e2f"
	)

	onChar := schema.Characteristic{
		UUID:               onCharUUID,
		Description:        "Power State",
		Properties:         []schema.Property{schema.PropertyReadable, schema.PropertyWritable},
		CharacteristicType: schema.CharacteristicTypePowerState,
		Value:              schema.BoolValue(true),
	}

	lampService := schema.Service{
		UUID:            lampSvcUUID,
		Name:            "Desk Lamp",
		IsPrimary:       true,
		IsInteractive:   true,
		ServiceType:     schema.ServiceTypeLightBulb,
		Characteristics: []schema.Characteristic{onChar},
	}

	loungeRef := schema.NamedRef{UUID: loungeUUID, Name: "Lounge"}

	bridge := schema.Accessory{
		UUID:                  bridgeUUID,
		Name:                  "Hue Bridge",
		Room:                  &schema.NamedRef{UUID: bedroomUUID, Name: "Bedroom"},
		Category:              schema.CategoryBridge,
		Model:                 "BSB002",
		Manufacturer:          "Signify",
		FirmwareVersion:       "1.50.0",
		IsReachable:           true,
		SupportsIdentify:      true,
		BridgedAccessoryUUIDs: []string{lampUUID},
	}

	lamp := schema.Accessory{
		UUID:            lampUUID,
		Name:            "Desk Lamp",
		Room:            &loungeRef,
		Category:        schema.CategoryLightBulb,
		Model:           "LCT012",
		Manufacturer:    "Signify",
		FirmwareVersion: "1.50.0",
		IsReachable:     true,
		IsBridged:       true,
		Services:        []schema.Service{lampService},
	}

	scene := schema.ActionSet{
		UUID:          sceneUUID,
		Name:          "Good Night",
		ActionSetType: schema.ActionSetTypeSleep,
		Actions: []schema.Action{
			{Characteristic: &schema.CharacteristicAction{
				UUID:           "6a5b4c3d-2e1f-4a9b-8c7d-6e5f4a3b2c1d",
				Characteristic: &onChar,
			}},
		},
	}

	timer := schema.Trigger{
		Timer: &schema.TimerTrigger{
			Header: schema.TriggerHeader{
				UUID:       timerUUID,
				Name:       "Nightly",
				IsEnabled:  true,
				ActionSets: []schema.NamedRef{{UUID: sceneUUID, Name: "Good Night"}},
			},
			FireDate:   1767225600,
			Recurrence: 86400,
		},
	}

	return []hkservice.HomeGraph{
		{
			Home: schema.Home{
				UUID:      homeUUID,
				Name:      "My Home",
				IsPrimary: true,
				HubState:  schema.HubStateConnected,
			},
			Rooms: []schema.Room{
				{UUID: loungeUUID, Name: "Lounge", Accessories: []schema.NamedRef{{UUID: lampUUID, Name: "Desk Lamp"}}},
				{UUID: bedroomUUID, Name: "Bedroom", Accessories: []schema.NamedRef{{UUID: bridgeUUID, Name: "Hue Bridge"}}},
			},
			Zones: []schema.Zone{
				{UUID: zoneUUID, Name: "Downstairs", Rooms: []schema.NamedRef{loungeRef}},
			},
			Accessories: []schema.Accessory{bridge, lamp},
			ActionSets:  []schema.ActionSet{scene},
			Triggers:    []schema.Trigger{timer},
			ServiceGroups: []schema.ServiceGroup{
				{UUID: groupUUID, Name: "Lights", Services: []schema.NamedRef{{UUID: lampSvcUUID, Name: "Desk Lamp"}}},
			},
		},
	}
}
