package domain

import "strings"

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// ParseGender normaliza o texto livre recebido da fonte
func ParseGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

type DeviceClass string

const (
	DeviceMobile  DeviceClass = "mobile"
	DeviceDesktop DeviceClass = "desktop"
	DeviceUnknown DeviceClass = "unknown"
)

// DeviceKey é a chave de agrupamento de dispositivos
func DeviceKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseDeviceClass classifica o rótulo de dispositivo em uma das classes canônicas
func ParseDeviceClass(raw string) DeviceClass {
	switch DeviceKey(raw) {
	case "mobile":
		return DeviceMobile
	case "desktop":
		return DeviceDesktop
	default:
		return DeviceUnknown
	}
}
