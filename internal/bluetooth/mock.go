package bluetooth

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"rowsim.klederson.com/internal/config"
)

var mockDeviceTemplates = []struct {
	Name    string
	Fitness bool
}{
	{"PM5 430123456 Row", true},
	{"Hydrow", true},
	{"WaterRower S4", true},
	{"KICKR CORE 1A2B", true},
	{"iPhone 15 Pro", false},
	{"Pixel 9 Pro", false},
	{"Apple Watch", false},
	{"Polar H10 8C1F", false},
	{"Galaxy Buds Pro", false},
	{"Fitbit Charge 6", false},
	{"", false},
	{"", false},
}

// MockLister returns fake devices for demo mode.
type MockLister struct {
	rand *rand.Rand
}

// NewMockLister creates a mock lister. The same seed lists the same devices.
func NewMockLister(seed int64) *MockLister {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MockLister{rand: rand.New(rand.NewSource(seed))}
}

// List returns between DemoDeviceMin and DemoDeviceMax devices, always
// including at least one fitness machine.
func (l *MockLister) List(ctx context.Context) ([]Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store := NewDeviceStore()
	total := config.DemoDeviceMin + l.rand.Intn(config.DemoDeviceMax-config.DemoDeviceMin+1)

	// Template 0 is a rower; keep it so the demo always has one.
	picked := append([]int{0}, l.rand.Perm(len(mockDeviceTemplates)-1)...)
	for i := range picked[1:] {
		picked[i+1]++
	}
	if total > len(picked) {
		total = len(picked)
	}

	for _, ti := range picked[:total] {
		tmpl := mockDeviceTemplates[ti]
		store.Upsert(l.randomMAC(), tmpl.Name, -40-l.rand.Float64()*50, tmpl.Fitness) // -40 to -90 dBm
	}
	return store.Snapshot(), nil
}

func (l *MockLister) randomMAC() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = byte(l.rand.Intn(256))
	}
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}
