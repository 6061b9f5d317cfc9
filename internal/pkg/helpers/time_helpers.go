package helpers

import "time"

// ParseDurationWithDefault parses a duration string, falling back to
// the default when the value is empty or malformed.
func ParseDurationWithDefault(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return def
	}

	return d
}
