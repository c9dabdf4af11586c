package testutil

import (
	"io"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0, "text")
}
