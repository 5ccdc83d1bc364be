// Package testlog silences the global logger during tests.
package testlog

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Start(t *testing.T) {
	t.Helper()
	prev := log.Logger
	log.Logger = zerolog.Nop()
	t.Cleanup(func() { log.Logger = prev })
}
