package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Now is the clock used for persisted timestamps. Tests may replace it.
var Now = time.Now

// NowUnix returns the current time in epoch seconds
func NowUnix() int64 {
	return Now().Unix()
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Global logger; this may run before logging is configured.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
