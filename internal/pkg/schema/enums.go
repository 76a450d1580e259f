package schema

import (
	"fmt"

	"github.com/hkwire/hkctl/internal/pkg/wire"
)

/*
 * Every enum travels as a 32-bit unsigned integer and has an explicit
 * Invalid/Unknown zero variant. Integer values a decoder does not know
 * clamp to that zero variant so a newer provider cannot break an older
 * client.
 */

func clampEnum[T ~int32](v uint32, max T) T {
	if v > uint32(max) {
		return 0
	}
	return T(v)
}

func enumField[T ~int32](f wire.Field, max T) (T, error) {
	v, err := f.U32()
	if err != nil {
		return 0, err
	}
	return clampEnum(v, max), nil
}

// HubState reports the home hub connectivity of a home.
type HubState int32

const (
	HubStateInvalid      HubState = 0
	HubStateConnected    HubState = 1
	HubStateDisconnected HubState = 2
	HubStateNotAvailable HubState = 3
)

var hubStateNames = map[HubState]string{
	HubStateInvalid:      "Invalid",
	HubStateConnected:    "Connected",
	HubStateDisconnected: "Disconnected",
	HubStateNotAvailable: "NotAvailable",
}

func (s HubState) String() string { return enumName(hubStateNames, s) }

// Category classifies an accessory.
type Category int32

const (
	CategoryInvalid            Category = 0
	CategoryOther              Category = 1
	CategorySecuritySystem     Category = 2
	CategoryBridge             Category = 3
	CategoryDoor               Category = 4
	CategoryDoorLock           Category = 5
	CategoryFan                Category = 6
	CategoryGarageDoorOpener   Category = 7
	CategoryIPCamera           Category = 8
	CategoryLightBulb          Category = 9
	CategoryOutlet             Category = 10
	CategoryProgrammableSwitch Category = 11
	CategoryRangeExtender      Category = 12
	CategorySensor             Category = 13
	CategorySprinkler          Category = 14
	CategorySwitch             Category = 15
	CategoryThermostat         Category = 16
	CategoryVideoDoorbell      Category = 17
	CategoryWindow             Category = 18
	CategoryWindowCovering     Category = 19
	CategoryAirPurifier        Category = 20
	CategoryAirHeater          Category = 21
	CategoryAirConditioner     Category = 22
	CategoryAirHumidifier      Category = 23
	CategoryAirDehumidifier    Category = 24
	CategoryFaucet             Category = 25
	CategoryShowerHead         Category = 26
)

var categoryNames = map[Category]string{
	CategoryInvalid:            "Invalid",
	CategoryOther:              "Other",
	CategorySecuritySystem:     "SecuritySystem",
	CategoryBridge:             "Bridge",
	CategoryDoor:               "Door",
	CategoryDoorLock:           "DoorLock",
	CategoryFan:                "Fan",
	CategoryGarageDoorOpener:   "GarageDoorOpener",
	CategoryIPCamera:           "IPCamera",
	CategoryLightBulb:          "LightBulb",
	CategoryOutlet:             "Outlet",
	CategoryProgrammableSwitch: "ProgrammableSwitch",
	CategoryRangeExtender:      "RangeExtender",
	CategorySensor:             "Sensor",
	CategorySprinkler:          "Sprinkler",
	CategorySwitch:             "Switch",
	CategoryThermostat:         "Thermostat",
	CategoryVideoDoorbell:      "VideoDoorbell",
	CategoryWindow:             "Window",
	CategoryWindowCovering:     "WindowCovering",
	CategoryAirPurifier:        "AirPurifier",
	CategoryAirHeater:          "AirHeater",
	CategoryAirConditioner:     "AirConditioner",
	CategoryAirHumidifier:      "AirHumidifier",
	CategoryAirDehumidifier:    "AirDehumidifier",
	CategoryFaucet:             "Faucet",
	CategoryShowerHead:         "ShowerHead",
}

func (c Category) String() string { return enumName(categoryNames, c) }

// ServiceType is the closed set of well-known service types.
type ServiceType int32

const (
	ServiceTypeInvalid                     ServiceType = 0
	ServiceTypeLightBulb                   ServiceType = 1
	ServiceTypeLightSensor                 ServiceType = 2
	ServiceTypeSwitch                      ServiceType = 3
	ServiceTypeBattery                     ServiceType = 4
	ServiceTypeOutlet                      ServiceType = 5
	ServiceTypeStatefulProgrammableSwitch  ServiceType = 6
	ServiceTypeStatelessProgrammableSwitch ServiceType = 7
	ServiceTypeAirPurifier                 ServiceType = 8
	ServiceTypeAirQualitySensor            ServiceType = 9
	ServiceTypeCarbonDioxideSensor         ServiceType = 10
	ServiceTypeCarbonMonoxideSensor        ServiceType = 11
	ServiceTypeSmokeSensor                 ServiceType = 12
	ServiceTypeHeaterCooler                ServiceType = 13
	ServiceTypeTemperatureSensor           ServiceType = 14
	ServiceTypeThermostat                  ServiceType = 15
	ServiceTypeFan                         ServiceType = 16
	ServiceTypeFilterMaintenance           ServiceType = 17
	ServiceTypeHumidifierDehumidifier      ServiceType = 18
	ServiceTypeHumiditySensor              ServiceType = 19
	ServiceTypeVentilationFan              ServiceType = 20
	ServiceTypeWindow                      ServiceType = 21
	ServiceTypeWindowCovering              ServiceType = 22
	ServiceTypeSlats                       ServiceType = 23
	ServiceTypeFaucet                      ServiceType = 24
	ServiceTypeValve                       ServiceType = 25
	ServiceTypeIrrigationSystem            ServiceType = 26
	ServiceTypeLeakSensor                  ServiceType = 27
	ServiceTypeDoor                        ServiceType = 28
	ServiceTypeDoorbell                    ServiceType = 29
	ServiceTypeGarageDoorOpener            ServiceType = 30
	ServiceTypeLockManagement              ServiceType = 31
	ServiceTypeLockMechanism               ServiceType = 32
	ServiceTypeMotionSensor                ServiceType = 33
	ServiceTypeOccupancySensor             ServiceType = 34
	ServiceTypeSecuritySystem              ServiceType = 35
	ServiceTypeContactSensor               ServiceType = 36
	ServiceTypeCameraControl               ServiceType = 37
	ServiceTypeCameraRtpStreamManagement   ServiceType = 38
	ServiceTypeMicrophone                  ServiceType = 39
	ServiceTypeSpeaker                     ServiceType = 40
	ServiceTypeLabel                       ServiceType = 41
	ServiceTypeAccessoryInformation        ServiceType = 42
)

var serviceTypeNames = map[ServiceType]string{
	ServiceTypeInvalid:                     "InvalidServiceType",
	ServiceTypeLightBulb:                   "LightBulb",
	ServiceTypeLightSensor:                 "LightSensor",
	ServiceTypeSwitch:                      "Switch",
	ServiceTypeBattery:                     "Battery",
	ServiceTypeOutlet:                      "Outlet",
	ServiceTypeStatefulProgrammableSwitch:  "StatefulProgrammableSwitch",
	ServiceTypeStatelessProgrammableSwitch: "StatelessProgrammableSwitch",
	ServiceTypeAirPurifier:                 "AirPurifier",
	ServiceTypeAirQualitySensor:            "AirQualitySensor",
	ServiceTypeCarbonDioxideSensor:         "CarbonDioxideSensor",
	ServiceTypeCarbonMonoxideSensor:        "CarbonMonoxideSensor",
	ServiceTypeSmokeSensor:                 "SmokeSensor",
	ServiceTypeHeaterCooler:                "HeaterCooler",
	ServiceTypeTemperatureSensor:           "TemperatureSensor",
	ServiceTypeThermostat:                  "Thermostat",
	ServiceTypeFan:                         "Fan",
	ServiceTypeFilterMaintenance:           "FilterMaintenance",
	ServiceTypeHumidifierDehumidifier:      "HumidifierDehumidifier",
	ServiceTypeHumiditySensor:              "HumiditySensor",
	ServiceTypeVentilationFan:              "VentilationFan",
	ServiceTypeWindow:                      "Window",
	ServiceTypeWindowCovering:              "WindowCovering",
	ServiceTypeSlats:                       "Slats",
	ServiceTypeFaucet:                      "Faucet",
	ServiceTypeValve:                       "Valve",
	ServiceTypeIrrigationSystem:            "IrrigationSystem",
	ServiceTypeLeakSensor:                  "LeakSensor",
	ServiceTypeDoor:                        "Door",
	ServiceTypeDoorbell:                    "Doorbell",
	ServiceTypeGarageDoorOpener:            "GarageDoorOpener",
	ServiceTypeLockManagement:              "LockManagement",
	ServiceTypeLockMechanism:               "LockMechanism",
	ServiceTypeMotionSensor:                "MotionSensor",
	ServiceTypeOccupancySensor:             "OccupancySensor",
	ServiceTypeSecuritySystem:              "SecuritySystem",
	ServiceTypeContactSensor:               "ContactSensor",
	ServiceTypeCameraControl:               "CameraControl",
	ServiceTypeCameraRtpStreamManagement:   "CameraRtpStreamManagement",
	ServiceTypeMicrophone:                  "Microphone",
	ServiceTypeSpeaker:                     "Speaker",
	ServiceTypeLabel:                       "Label",
	ServiceTypeAccessoryInformation:        "AccessoryInformation",
}

var serviceTypeValues = func() map[string]ServiceType {
	m := make(map[string]ServiceType, len(serviceTypeNames))
	for k, v := range serviceTypeNames {
		m[v] = k
	}
	return m
}()

func (t ServiceType) String() string { return enumName(serviceTypeNames, t) }

// ServiceTypeFromName maps a porcelain type name to its enum value.
// Unknown names map to ServiceTypeInvalid, which matches no real service.
func ServiceTypeFromName(name string) ServiceType {
	if t, ok := serviceTypeValues[name]; ok {
		return t
	}
	return ServiceTypeInvalid
}

// CharacteristicType identifies a well-known characteristic.
type CharacteristicType int32

const (
	CharacteristicTypeInvalid                 CharacteristicType = 0
	CharacteristicTypePowerState              CharacteristicType = 1
	CharacteristicTypeBrightness              CharacteristicType = 2
	CharacteristicTypeHue                     CharacteristicType = 3
	CharacteristicTypeSaturation              CharacteristicType = 4
	CharacteristicTypeColorTemperature        CharacteristicType = 5
	CharacteristicTypeCurrentTemperature      CharacteristicType = 6
	CharacteristicTypeTargetTemperature       CharacteristicType = 7
	CharacteristicTypeTemperatureUnits        CharacteristicType = 8
	CharacteristicTypeCurrentRelativeHumidity CharacteristicType = 9
	CharacteristicTypeTargetRelativeHumidity  CharacteristicType = 10
	CharacteristicTypeCurrentHeatingCooling   CharacteristicType = 11
	CharacteristicTypeTargetHeatingCooling    CharacteristicType = 12
	CharacteristicTypeCoolingThreshold        CharacteristicType = 13
	CharacteristicTypeHeatingThreshold        CharacteristicType = 14
	CharacteristicTypeBatteryLevel            CharacteristicType = 15
	CharacteristicTypeChargingState           CharacteristicType = 16
	CharacteristicTypeStatusLowBattery        CharacteristicType = 17
	CharacteristicTypeContactState            CharacteristicType = 18
	CharacteristicTypeCurrentLightLevel       CharacteristicType = 19
	CharacteristicTypeMotionDetected          CharacteristicType = 20
	CharacteristicTypeOccupancyDetected       CharacteristicType = 21
	CharacteristicTypeSmokeDetected           CharacteristicType = 22
	CharacteristicTypeCarbonDioxideDetected   CharacteristicType = 23
	CharacteristicTypeCarbonDioxideLevel      CharacteristicType = 24
	CharacteristicTypeCarbonMonoxideDetected  CharacteristicType = 25
	CharacteristicTypeCarbonMonoxideLevel     CharacteristicType = 26
	CharacteristicTypeAirQuality              CharacteristicType = 27
	CharacteristicTypeLeakDetected            CharacteristicType = 28
	CharacteristicTypeOutletInUse             CharacteristicType = 29
	CharacteristicTypeCurrentPosition         CharacteristicType = 30
	CharacteristicTypeTargetPosition          CharacteristicType = 31
	CharacteristicTypePositionState           CharacteristicType = 32
	CharacteristicTypeHoldPosition            CharacteristicType = 33
	CharacteristicTypeObstructionDetected     CharacteristicType = 34
	CharacteristicTypeCurrentDoorState        CharacteristicType = 35
	CharacteristicTypeTargetDoorState         CharacteristicType = 36
	CharacteristicTypeLockCurrentState        CharacteristicType = 37
	CharacteristicTypeLockTargetState         CharacteristicType = 38
	CharacteristicTypeFirmwareVersion         CharacteristicType = 39
	CharacteristicTypeHardwareVersion         CharacteristicType = 40
	CharacteristicTypeModel                   CharacteristicType = 41
	CharacteristicTypeManufacturer            CharacteristicType = 42
	CharacteristicTypeSerialNumber            CharacteristicType = 43
	CharacteristicTypeName                    CharacteristicType = 44
	CharacteristicTypeIdentify                CharacteristicType = 45
	CharacteristicTypeRotationSpeed           CharacteristicType = 46
	CharacteristicTypeRotationDirection       CharacteristicType = 47
	CharacteristicTypeSwingMode               CharacteristicType = 48
	CharacteristicTypeActive                  CharacteristicType = 49
	CharacteristicTypeInUse                   CharacteristicType = 50
	CharacteristicTypeValveType               CharacteristicType = 51
	CharacteristicTypeProgramMode             CharacteristicType = 52
	CharacteristicTypeStatusFault             CharacteristicType = 53
)

var characteristicTypeNames = map[CharacteristicType]string{
	CharacteristicTypeInvalid:                 "Invalid",
	CharacteristicTypePowerState:              "PowerState",
	CharacteristicTypeBrightness:              "Brightness",
	CharacteristicTypeHue:                     "Hue",
	CharacteristicTypeSaturation:              "Saturation",
	CharacteristicTypeColorTemperature:        "ColorTemperature",
	CharacteristicTypeCurrentTemperature:      "CurrentTemperature",
	CharacteristicTypeTargetTemperature:       "TargetTemperature",
	CharacteristicTypeTemperatureUnits:        "TemperatureUnits",
	CharacteristicTypeCurrentRelativeHumidity: "CurrentRelativeHumidity",
	CharacteristicTypeTargetRelativeHumidity:  "TargetRelativeHumidity",
	CharacteristicTypeCurrentHeatingCooling:   "CurrentHeatingCooling",
	CharacteristicTypeTargetHeatingCooling:    "TargetHeatingCooling",
	CharacteristicTypeCoolingThreshold:        "CoolingThreshold",
	CharacteristicTypeHeatingThreshold:        "HeatingThreshold",
	CharacteristicTypeBatteryLevel:            "BatteryLevel",
	CharacteristicTypeChargingState:           "ChargingState",
	CharacteristicTypeStatusLowBattery:        "StatusLowBattery",
	CharacteristicTypeContactState:            "ContactState",
	CharacteristicTypeCurrentLightLevel:       "CurrentLightLevel",
	CharacteristicTypeMotionDetected:          "MotionDetected",
	CharacteristicTypeOccupancyDetected:       "OccupancyDetected",
	CharacteristicTypeSmokeDetected:           "SmokeDetected",
	CharacteristicTypeCarbonDioxideDetected:   "CarbonDioxideDetected",
	CharacteristicTypeCarbonDioxideLevel:      "CarbonDioxideLevel",
	CharacteristicTypeCarbonMonoxideDetected:  "CarbonMonoxideDetected",
	CharacteristicTypeCarbonMonoxideLevel:     "CarbonMonoxideLevel",
	CharacteristicTypeAirQuality:              "AirQuality",
	CharacteristicTypeLeakDetected:            "LeakDetected",
	CharacteristicTypeOutletInUse:             "OutletInUse",
	CharacteristicTypeCurrentPosition:         "CurrentPosition",
	CharacteristicTypeTargetPosition:          "TargetPosition",
	CharacteristicTypePositionState:           "PositionState",
	CharacteristicTypeHoldPosition:            "HoldPosition",
	CharacteristicTypeObstructionDetected:     "ObstructionDetected",
	CharacteristicTypeCurrentDoorState:        "CurrentDoorState",
	CharacteristicTypeTargetDoorState:         "TargetDoorState",
	CharacteristicTypeLockCurrentState:        "LockCurrentState",
	CharacteristicTypeLockTargetState:         "LockTargetState",
	CharacteristicTypeFirmwareVersion:         "FirmwareVersion",
	CharacteristicTypeHardwareVersion:         "HardwareVersion",
	CharacteristicTypeModel:                   "Model",
	CharacteristicTypeManufacturer:            "Manufacturer",
	CharacteristicTypeSerialNumber:            "SerialNumber",
	CharacteristicTypeName:                    "Name",
	CharacteristicTypeIdentify:                "Identify",
	CharacteristicTypeRotationSpeed:           "RotationSpeed",
	CharacteristicTypeRotationDirection:       "RotationDirection",
	CharacteristicTypeSwingMode:               "SwingMode",
	CharacteristicTypeActive:                  "Active",
	CharacteristicTypeInUse:                   "InUse",
	CharacteristicTypeValveType:               "ValveType",
	CharacteristicTypeProgramMode:             "ProgramMode",
	CharacteristicTypeStatusFault:             "StatusFault",
}

func (t CharacteristicType) String() string { return enumName(characteristicTypeNames, t) }

// Property is one access property of a characteristic.
type Property int32

const (
	PropertyInvalid                   Property = 0
	PropertyReadable                  Property = 1
	PropertyWritable                  Property = 2
	PropertySupportsNotification      Property = 3
	PropertyHidden                    Property = 4
	PropertySupportsAuthorizationData Property = 5
)

var propertyNames = map[Property]string{
	PropertyInvalid:                   "Invalid",
	PropertyReadable:                  "Readable",
	PropertyWritable:                  "Writable",
	PropertySupportsNotification:      "SupportsNotification",
	PropertyHidden:                    "Hidden",
	PropertySupportsAuthorizationData: "SupportsAuthorizationData",
}

func (p Property) String() string { return enumName(propertyNames, p) }

// Format is the payload format a characteristic advertises.
type Format int32

const (
	FormatInvalid    Format = 0
	FormatBool       Format = 1
	FormatInt        Format = 2
	FormatFloat      Format = 3
	FormatString     Format = 4
	FormatData       Format = 5
	FormatTLV8       Format = 6
	FormatUInt8      Format = 7
	FormatUInt16     Format = 8
	FormatUInt32     Format = 9
	FormatUInt64     Format = 10
	FormatArray      Format = 11
	FormatDictionary Format = 12
)

var formatNames = map[Format]string{
	FormatInvalid:    "Invalid",
	FormatBool:       "Bool",
	FormatInt:        "Int",
	FormatFloat:      "Float",
	FormatString:     "String",
	FormatData:       "Data",
	FormatTLV8:       "TLV8",
	FormatUInt8:      "UInt8",
	FormatUInt16:     "UInt16",
	FormatUInt32:     "UInt32",
	FormatUInt64:     "UInt64",
	FormatArray:      "Array",
	FormatDictionary: "Dictionary",
}

func (f Format) String() string { return enumName(formatNames, f) }

// Units is the unit a characteristic value is expressed in.
type Units int32

const (
	UnitsNone                    Units = 0
	UnitsCelsius                 Units = 1
	UnitsFahrenheit              Units = 2
	UnitsPercentage              Units = 3
	UnitsArcDegrees              Units = 4
	UnitsSeconds                 Units = 5
	UnitsLux                     Units = 6
	UnitsPartsPerMillion         Units = 7
	UnitsMicrogramsPerCubicMeter Units = 8
)

var unitsNames = map[Units]string{
	UnitsNone:                    "None",
	UnitsCelsius:                 "Celsius",
	UnitsFahrenheit:              "Fahrenheit",
	UnitsPercentage:              "Percentage",
	UnitsArcDegrees:              "ArcDegrees",
	UnitsSeconds:                 "Seconds",
	UnitsLux:                     "Lux",
	UnitsPartsPerMillion:         "PartsPerMillion",
	UnitsMicrogramsPerCubicMeter: "MicrogramsPerCubicMeter",
}

func (u Units) String() string { return enumName(unitsNames, u) }

// ActionSetType classifies an action set.
type ActionSetType int32

const (
	ActionSetTypeUnknown       ActionSetType = 0
	ActionSetTypeUser          ActionSetType = 1
	ActionSetTypeHomeArrival   ActionSetType = 2
	ActionSetTypeHomeDeparture ActionSetType = 3
	ActionSetTypeSleep         ActionSetType = 4
	ActionSetTypeWakeUp        ActionSetType = 5
	ActionSetTypeTriggerOwned  ActionSetType = 6
)

var actionSetTypeNames = map[ActionSetType]string{
	ActionSetTypeUnknown:       "Unknown",
	ActionSetTypeUser:          "User",
	ActionSetTypeHomeArrival:   "HomeArrival",
	ActionSetTypeHomeDeparture: "HomeDeparture",
	ActionSetTypeSleep:         "Sleep",
	ActionSetTypeWakeUp:        "WakeUp",
	ActionSetTypeTriggerOwned:  "TriggerOwned",
}

func (t ActionSetType) String() string { return enumName(actionSetTypeNames, t) }

// ActivationState reports whether an event trigger can currently fire.
type ActivationState int32

const (
	ActivationStateInvalid          ActivationState = 0
	ActivationStateDisabled         ActivationState = 1
	ActivationStateDisconnected     ActivationState = 2
	ActivationStateNoCompatibleHome ActivationState = 3
	ActivationStateEnabled          ActivationState = 4
)

var activationStateNames = map[ActivationState]string{
	ActivationStateInvalid:          "Invalid",
	ActivationStateDisabled:         "Disabled",
	ActivationStateDisconnected:     "Disconnected",
	ActivationStateNoCompatibleHome: "NoCompatibleHome",
	ActivationStateEnabled:          "Enabled",
}

func (s ActivationState) String() string { return enumName(activationStateNames, s) }

// SignificantEvent is the solar event a significant-time event tracks.
type SignificantEvent int32

const (
	SignificantEventInvalid SignificantEvent = 0
	SignificantEventSunrise SignificantEvent = 1
	SignificantEventSunset  SignificantEvent = 2
)

var significantEventNames = map[SignificantEvent]string{
	SignificantEventInvalid: "Invalid",
	SignificantEventSunrise: "Sunrise",
	SignificantEventSunset:  "Sunset",
}

func (s SignificantEvent) String() string { return enumName(significantEventNames, s) }

// PresenceEventType selects when a presence event fires.
type PresenceEventType int32

const (
	PresenceEventInvalid    PresenceEventType = 0
	PresenceEventEveryEntry PresenceEventType = 1
	PresenceEventEveryExit  PresenceEventType = 2
	PresenceEventFirstEntry PresenceEventType = 3
	PresenceEventLastExit   PresenceEventType = 4
	PresenceEventAtHome     PresenceEventType = 5
	PresenceEventNotAtHome  PresenceEventType = 6
)

var presenceEventTypeNames = map[PresenceEventType]string{
	PresenceEventInvalid:    "Invalid",
	PresenceEventEveryEntry: "EveryEntry",
	PresenceEventEveryExit:  "EveryExit",
	PresenceEventFirstEntry: "FirstEntry",
	PresenceEventLastExit:   "LastExit",
	PresenceEventAtHome:     "AtHome",
	PresenceEventNotAtHome:  "NotAtHome",
}

func (t PresenceEventType) String() string { return enumName(presenceEventTypeNames, t) }

// PresenceUserType selects whose presence a presence event observes.
type PresenceUserType int32

const (
	PresenceUserInvalid     PresenceUserType = 0
	PresenceUserCurrentUser PresenceUserType = 1
	PresenceUserHomeUsers   PresenceUserType = 2
	PresenceUserCustomUsers PresenceUserType = 3
)

var presenceUserTypeNames = map[PresenceUserType]string{
	PresenceUserInvalid:     "Invalid",
	PresenceUserCurrentUser: "CurrentUser",
	PresenceUserHomeUsers:   "HomeUsers",
	PresenceUserCustomUsers: "CustomUsers",
}

func (t PresenceUserType) String() string { return enumName(presenceUserTypeNames, t) }

// EnabledFilter narrows a trigger enumeration by enablement.
type EnabledFilter int32

const (
	EnabledFilterNone         EnabledFilter = 0
	EnabledFilterEnabledOnly  EnabledFilter = 1
	EnabledFilterDisabledOnly EnabledFilter = 2
)

// RoomOperation selects the AddRemoveRoom mutation.
type RoomOperation int32

const (
	RoomOperationInvalid RoomOperation = 0
	RoomOperationAdd     RoomOperation = 1
	RoomOperationRemove  RoomOperation = 2
)

func enumName[T ~int32](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("%d", int32(v))
}
