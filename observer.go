package bytecursor

import (
	"github.com/rs/zerolog"
)

// LogObserver adapts a zerolog logger into an Observer, logging each
// swallowed decode failure at debug level.
func LogObserver(logger zerolog.Logger) Observer {
	return func(err error) {
		logger.Debug().Err(err).Msg("conversion failed, default substituted")
	}
}
