package bluetooth

import (
	"context"
	"fmt"
	"log/slog"

	"tinygo.org/x/bluetooth"
)

// Fitness Machine Service (FTMS), 0x1826.
var fitnessMachineService = bluetooth.New16BitUUID(0x1826)

// BLELister scans with the default adapter until the context ends.
type BLELister struct {
	adapter *bluetooth.Adapter
	log     *slog.Logger
}

// NewBLELister creates a lister on the platform default adapter.
func NewBLELister(log *slog.Logger) *BLELister {
	return &BLELister{
		adapter: bluetooth.DefaultAdapter,
		log:     log.With(slog.String("component", "ble")),
	}
}

// List enables the adapter, scans until ctx is done and returns every
// device seen. Bound ctx with a timeout; the scan never ends on its own.
func (l *BLELister) List(ctx context.Context) ([]Device, error) {
	if err := l.adapter.Enable(); err != nil {
		return nil, fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	store := NewDeviceStore()
	done := make(chan error, 1)
	go func() {
		done <- l.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			id := result.Address.String()
			name := result.LocalName()

			// Fallback: identify device by manufacturer data
			if name == "" {
				name = manufacturerLabel(id, result.ManufacturerData())
			}

			fitness := result.HasServiceUUID(fitnessMachineService)
			l.log.Debug("advertisement", "id", id, "name", name, "rssi", result.RSSI, "ftms", fitness)
			store.Upsert(id, name, float64(result.RSSI), fitness)
		})
	}()

	select {
	case err := <-done:
		// Scan returned before we asked it to stop.
		if err != nil {
			return nil, fmt.Errorf("ble scan: %w", err)
		}
	case <-ctx.Done():
		if err := l.adapter.StopScan(); err != nil {
			return nil, fmt.Errorf("stop ble scan: %w", err)
		}
		if err := <-done; err != nil {
			return nil, fmt.Errorf("ble scan: %w", err)
		}
	}

	return store.Snapshot(), nil
}

func manufacturerLabel(id string, mfrs []bluetooth.ManufacturerDataElement) string {
	if len(mfrs) == 0 {
		return ""
	}
	mfrName := LookupManufacturer(mfrs[0].CompanyID)
	if mfrName == "" {
		return ""
	}
	if len(id) == 17 {
		return mfrName + " " + id[12:] // last 2 octets e.g. "EE:FF"
	}
	return mfrName
}
