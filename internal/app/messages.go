package app

import "time"

// TickMsg triggers one simulator step and a redraw.
type TickMsg time.Time
