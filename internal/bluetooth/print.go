package bluetooth

import (
	"fmt"
	"io"
)

// Print writes one "Device: <name> | ID: <id>" line per device.
func Print(w io.Writer, devices []Device) error {
	if len(devices) == 0 {
		_, err := fmt.Fprintln(w, "No BLE devices found.")
		return err
	}
	for _, d := range devices {
		line := fmt.Sprintf("Device: %s | ID: %s", d.DisplayName(), d.ID)
		if d.Fitness {
			line += " [FTMS]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
