package bluetooth

import (
	"sort"
	"sync"

	"rowsim.klederson.com/internal/config"
)

// DeviceStore collects scan results. Safe for use from scan callbacks.
type DeviceStore struct {
	mu      sync.RWMutex
	devices map[string]*Device
}

// NewDeviceStore creates a new empty DeviceStore.
func NewDeviceStore() *DeviceStore {
	return &DeviceStore{
		devices: make(map[string]*Device),
	}
}

// Upsert adds or updates a device. Repeated advertisements are smoothed
// with an EMA on RSSI; a later empty name does not erase a known one.
func (s *DeviceStore) Upsert(id, name string, rssi float64, fitness bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.devices[id]; ok {
		existing.RSSI = existing.RSSI*(1-config.SmoothingAlpha) + rssi*config.SmoothingAlpha
		existing.Fitness = existing.Fitness || fitness
		if name != "" {
			existing.Name = name
		}
		return
	}

	s.devices[id] = &Device{
		ID:      id,
		Name:    name,
		RSSI:    rssi,
		Fitness: fitness,
	}
}

// Snapshot returns a copy of all devices: fitness machines first, then
// strongest RSSI first.
func (s *DeviceStore) Snapshot() []Device {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Device, 0, len(s.devices))
	for _, d := range s.devices {
		result = append(result, *d)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Fitness != result[j].Fitness {
			return result[i].Fitness
		}
		if result[i].RSSI != result[j].RSSI {
			return result[i].RSSI > result[j].RSSI // less negative is closer
		}
		return result[i].ID < result[j].ID
	})
	return result
}
