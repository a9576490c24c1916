package bluetooth

// LookupManufacturer returns a human-readable name for a Bluetooth SIG
// company ID, used to label devices that advertise no local name.
// See: https://www.bluetooth.com/specifications/assigned-numbers/
func LookupManufacturer(companyID uint16) string {
	return companyNames[companyID]
}

var companyNames = map[uint16]string{
	0x004C: "Apple",
	0x0006: "Microsoft",
	0x00E0: "Google",
	0x0075: "Samsung",
	0x0310: "Xiaomi",
	0x0157: "Huawei",
	0x038F: "Garmin",
	0x012D: "Sony",
	0x0171: "Amazon",
	0x0059: "Nordic",
	0x000D: "Texas Inst.",
	0x015D: "Espressif",
	0x0078: "Nike",
	0x03DA: "Fitbit",
	0x0269: "Oura",
	0x0473: "Withings",
}
