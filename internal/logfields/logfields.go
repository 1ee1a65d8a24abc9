package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field names shared across packages.
const (
	KeyError     = "error"
	KeyPath      = "path"
	KeyState     = "state"
	KeyReason    = "reason"
	KeyRemaining = "remaining"
	KeyInterval  = "interval"
	KeySequence  = "sequence"
	KeyStretch   = "stretch"
	KeySecondary = "secondary"
	KeyCategory  = "category"
	KeyPanic     = "panic"
)

func Path(p string) slog.Attr             { return slog.String(KeyPath, p) }
func State(s string) slog.Attr            { return slog.String(KeyState, s) }
func Reason(r string) slog.Attr           { return slog.String(KeyReason, r) }
func Remaining(d time.Duration) slog.Attr { return slog.Duration(KeyRemaining, d) }
func Interval(d time.Duration) slog.Attr  { return slog.Duration(KeyInterval, d) }
func Sequence(n int) slog.Attr            { return slog.Int(KeySequence, n) }
func Stretch(name string) slog.Attr       { return slog.String(KeyStretch, name) }
func Secondary(name string) slog.Attr     { return slog.String(KeySecondary, name) }
func Category(c string) slog.Attr         { return slog.String(KeyCategory, c) }
func Panic(value any) slog.Attr           { return slog.Any(KeyPanic, value) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
