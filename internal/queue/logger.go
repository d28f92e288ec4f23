package queue

import "github.com/rs/zerolog/log"

// Logger routes backlite's logs to the global zerolog logger. params alternate keys and values.
type Logger struct{}

func (Logger) Info(message string, params ...any) {
	log.Debug().Fields(params).Msg(message)
}

func (Logger) Error(message string, params ...any) {
	log.Error().Fields(params).Msg(message)
}
