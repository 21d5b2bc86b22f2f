package tui

import "fmt"

// ConfigError reports an invalid shell configuration.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("tui config error: %s", e.Reason)
}
