// Package logging provides structured logging using Go's standard library log/slog.
//
// Loggers write JSON by default, or logfmt-style text when the format is "text". The
// configuration can be read from the "log" section of a container:
//
//	log:
//	  level: debug
//	  format: text
package logging
