package util

import (
	"time"

	"github.com/rs/zerolog/log"
)

/*
	usage:

	func foo() {
		defer TimeThis(Msg("foo"))
		// code to measure
	}

*/

func Msg(msg string) (string, time.Time) {
	return msg, time.Now()
}

// TimeThis logs the time elapsed since start at debug level on log.Logger
func TimeThis(msg string, start time.Time) {
	log.Debug().Dur("elapsed", time.Since(start)).Msg(msg)
}
