package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// sensitiveKeyGroups lists attribute keys whose values are always masked,
// grouped by where they come from.
var sensitiveKeyGroups = [][]string{
	// request headers
	{"authorization", "proxy-authorization", "cookie", "set-cookie", "x-api-key", "x-auth-token"},
	// credentials
	{"password", "passwd", "secret", "token", "access_token", "refresh_token", "api_key", "apikey", "api-key",
		"private_key", "privatekey", "secret_key", "secretkey", "credential", "credentials", "auth"},
	// sessions
	{"session", "session_id", "sessionid", "sid"},
	// wallets
	{"seed", "mnemonic", "wallet_key"},
	// contact form submissions
	{"email", "e-mail", "contact_email", "message", "contact_message", "body"},
}

// sensitiveKeys is the lookup set built from sensitiveKeyGroups.
var sensitiveKeys = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, group := range sensitiveKeyGroups {
		for _, key := range group {
			set[key] = struct{}{}
		}
	}
	return set
}()

// sensitiveKeywords mask any key that contains them.
// The bare "key" is not listed: it would match "primary_key" and "monkey".
var sensitiveKeywords = []string{
	"password", "passwd", "secret", "token",
	"credential", "private", "seed", "mnemonic", "email",
}

// sensitivePatterns contains regex patterns that indicate sensitive values.
// Values matching these patterns will be sanitized regardless of key name.
var sensitivePatterns = []*regexp.Regexp{
	// JWT tokens
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),

	// Bearer tokens
	regexp.MustCompile(`(?i)^bearer\s+.+`),

	// Basic auth
	regexp.MustCompile(`(?i)^basic\s+[A-Za-z0-9+/=]+$`),

	// Long alphanumeric strings (API keys, base58 secret keys)
	regexp.MustCompile(`^[a-zA-Z0-9]{64,}$`),

	// AWS access keys
	regexp.MustCompile(`^AKIA[0-9A-Z]{16}$`),

	// Private key markers
	regexp.MustCompile(`(?i)-----BEGIN.*(PRIVATE|SECRET).*KEY-----`),

	// E-mail addresses anywhere in the value
	regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
}

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// SecureHandler wraps an slog.Handler and masks attribute values whose key
// or content looks sensitive before the wrapped handler sees them.
type SecureHandler struct {
	handler slog.Handler
}

// NewSecureHandler creates a new SecureHandler wrapping the given handler.
// If handler is nil, the returned SecureHandler will use slog.Default().Handler().
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and forwards it.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	clean := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(h.sanitizeAttr(a))
		return true
	})
	return h.handler.Handle(ctx, clean)
}

// WithAttrs masks attrs once, up front, and returns the derived handler.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		clean = append(clean, h.sanitizeAttr(a))
	}
	return &SecureHandler{handler: h.handler.WithAttrs(clean)}
}

// WithGroup returns a new handler with the given group name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

// sanitizeAttr masks one attribute. Groups are walked recursively and
// LogValuer values are resolved first so they cannot bypass the checks.
func (h *SecureHandler) sanitizeAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		clean := make([]slog.Attr, 0, len(members))
		for _, m := range members {
			clean = append(clean, h.sanitizeAttr(m))
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clean...)}
	}

	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}
	if a.Value.Kind() == slog.KindString && isSensitiveValue(a.Value.String()) {
		return slog.String(a.Key, MaskValue)
	}
	return a
}

// isSensitiveKey reports whether values under key must be masked.
func isSensitiveKey(key string) bool {
	key = strings.ToLower(key)
	if _, ok := sensitiveKeys[key]; ok {
		return true
	}
	return containsSensitiveKeyword(key)
}

// containsSensitiveKeyword checks if the key contains a sensitive keyword.
// "auth" is matched as a prefix only so that "mint_authority" stays readable.
func containsSensitiveKeyword(key string) bool {
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return strings.HasPrefix(key, "auth")
}

// isSensitiveValue checks if a value matches sensitive patterns.
func isSensitiveValue(value string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// Options configures New.
type Options struct {
	// Level is the minimum level written.
	Level slog.Level
	// JSON selects the JSON handler instead of the text handler.
	JSON bool
}

// New creates a *slog.Logger writing to w through a SecureHandler.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(NewSecureHandler(handler))
}

// NewSecureLogger creates a text logger for the CLI.
// Verbose sets the level to Debug; otherwise Warn.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	return New(w, Options{Level: CLILevel(verbose)})
}

// NewSecureJSONLogger is NewSecureLogger with JSON output.
func NewSecureJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return New(w, Options{Level: CLILevel(verbose), JSON: true})
}

// CLILevel returns the level used by one-shot CLI commands.
func CLILevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// ServerLevel returns the level used by the long-running server.
func ServerLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
