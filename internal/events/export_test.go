package events

import (
	"log/slog"
	"time"
)

func NewTestPublisher(logger *slog.Logger, w messageWriter, now func() time.Time) *publisher {
	p := newPublisher(logger, w)
	p.now = now
	return p
}
