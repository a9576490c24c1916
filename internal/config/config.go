package config

import "time"

const (
	// Dashboard
	TargetFPS      = 30 // Frames per second; one simulator tick per frame
	HistoryLen     = 120
	ResistanceKeys = 9 // keys 0-9 map to level n/9

	// Serve
	DefaultListenAddr  = ":8080"
	DefaultNATSSubject = "rower.telemetry"
	DefaultKafkaTopic  = "rower-telemetry"
	ShutdownTimeout    = 5 * time.Second
	WriteTimeout       = 200 * time.Millisecond // per websocket frame
	ClientBuffer       = 16                     // queued snapshots per websocket client

	// Scan
	DefaultScanTimeout = 10 * time.Second
	SmoothingAlpha     = 0.3 // EMA smoothing factor (30% new, 70% old)
	DemoDeviceMin      = 4
	DemoDeviceMax      = 8

	// App
	AppName    = "ROWSIM"
	AppVersion = "1.0"
	LogFile    = "rowsim.log"
)
