// Package logging assembles structured slog loggers and attribute helpers
// used across spdxdiff.
//
// Log records always go to stderr, optionally copied to a file, so stdout
// carries nothing but the report. The console handler prints the component
// as a line prefix; the JSON handler emits ts/level/msg objects.
package logging
