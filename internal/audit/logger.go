package audit

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	reqctx "github.com/nexthire/auth-service/internal/pkg/context"
)

// Logger provides structured audit logging for account events.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

// Record matches the hook signature taken by auth.Service.WithAudit.
// Emails are masked; failures are logged at warn level.
func (l *Logger) Record(ctx context.Context, action string, fields map[string]string) {
	evt := l.log.Info()
	if isFailure(action) {
		evt = l.log.Warn()
	}
	evt = evt.Str("action", action)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := fields[k]
		if k == "email" {
			v = maskEmail(v)
		}
		evt = evt.Str(k, v)
	}

	if rid := reqctx.GetRequestID(ctx); rid != "" {
		evt = evt.Str("request_id", rid)
	}
	evt.Msg("audit")
}

func isFailure(action string) bool {
	switch action {
	case "login_failed", "publish_failed":
		return true
	}
	return false
}

// maskEmail keeps the first two characters of the local part and the domain.
func maskEmail(email string) string {
	if len(email) < 5 {
		return "***"
	}
	at := 0
	for i, c := range email {
		if c == '@' {
			at = i
			break
		}
	}
	if at < 2 {
		return email[:1] + "***" + email[at:]
	}
	return email[:2] + "***" + email[at:]
}
