// Package log provides the slog setup shared by the HKS server and CLI.
//
// Every logger built here wraps its output handler in a SecureHandler, which
// masks sensitive attribute values before they are written:
//   - HTTP credentials (Authorization, Cookie, Set-Cookie, X-Api-Key)
//   - Secret values detected by pattern (passwords, tokens, keys)
//   - Wallet seeds and private key material
//   - Contact form e-mail addresses and message bodies
//
// Even in verbose mode these values stay masked, so a log shared in a bug
// report never carries a visitor's contact details.
//
// Scanned token addresses are not secrets, but they are logged only through
// Digest so that log lines stay short and grep-able.
//
// # Usage
//
//	logger := log.New(os.Stderr, log.Options{Level: slog.LevelInfo})
//	logger.Info("contact message received", "email", msg.Email) // email=***REDACTED***
//	slog.SetDefault(logger)
package log
