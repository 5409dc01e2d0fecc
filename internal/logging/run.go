package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

// WithRunID tags logger with a fresh run identifier and returns both.
func WithRunID(logger *slog.Logger) (*slog.Logger, string) {
	if logger == nil {
		logger = NewNop()
	}
	runID := uuid.NewString()
	return logger.With(String(FieldRunID, runID)), runID
}
