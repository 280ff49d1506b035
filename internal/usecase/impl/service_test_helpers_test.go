package impl

import (
	"io"
	"log/slog"
	"time"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func timeNowPlusHour() time.Time {
	return time.Now().Add(time.Hour)
}
