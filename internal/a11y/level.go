package a11y

import (
	"fmt"
)

// Level controls whether checks run and how violations are ranked.
type Level uint8

const (
	// LevelOff disables all checks.
	LevelOff Level = iota
	// LevelWarn reports violations as warnings.
	LevelWarn
	// LevelStrict reports violations as errors.
	LevelStrict
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelWarn:
		return "warn"
	case LevelStrict:
		return "strict"
	}
	return "unknown"
}

// ParseLevel maps a config/flag string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "off":
		return LevelOff, nil
	case "warn":
		return LevelWarn, nil
	case "strict":
		return LevelStrict, nil
	}
	return LevelOff, fmt.Errorf("unknown a11y level %q (want strict, warn, or off)", s)
}
