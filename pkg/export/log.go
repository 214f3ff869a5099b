package export

import (
	"time"

	"github.com/raykavin/goplotly/pkg/logger"
	"github.com/raykavin/goplotly/pkg/logger/zerolog"
)

// DefaultLog is used by WebDriver and StaticExporter unless a logger is
// given explicitly.
var DefaultLog logger.Logger = newDefaultLog()

func newDefaultLog() logger.Logger {
	log, err := zerolog.NewZerolog("info", time.RFC3339, true, false)
	if err != nil {
		return zerolog.Nop()
	}
	return log
}
