// Global test suite for perf package.
package perf_test

import (
	"log/slog"
	"testing"

	"github.com/combigen/combigen/internal/config"
	"github.com/stretchr/testify/suite"
)

type Suite struct {
	suite.Suite
}

func Test(t *testing.T) {
	if testing.Verbose() {
		config.SetLoggingHandler(slog.LevelDebug, false)
	} else {
		config.SetLoggingHandler(slog.LevelWarn, false)
	}
	suite.Run(t, new(Suite))
}
