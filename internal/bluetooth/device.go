package bluetooth

import "context"

// Device is one advertiser seen during a scan.
type Device struct {
	ID      string // address, or platform UUID on macOS
	Name    string
	RSSI    float64
	Fitness bool // advertises the Fitness Machine service
}

// DisplayName returns the device name or "(no name)" if empty.
func (d *Device) DisplayName() string {
	if d.Name == "" {
		return "(no name)"
	}
	return d.Name
}

// Lister enumerates nearby devices once.
type Lister interface {
	List(ctx context.Context) ([]Device, error)
}
