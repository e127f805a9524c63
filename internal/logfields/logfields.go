package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRoute      = "route"
	KeyPath       = "path"
	KeyFile       = "file"
	KeySection    = "section"
	KeyStage      = "stage"
	KeyBuildID    = "build_id"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyUserAgent  = "user_agent"
	KeyRemoteAddr = "remote_addr"
	KeyAddr       = "addr"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Route(r string) slog.Attr        { return slog.String(KeyRoute, r) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func UserAgent(ua string) slog.Attr   { return slog.String(KeyUserAgent, ua) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
