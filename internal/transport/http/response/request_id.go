package response

import (
	"net/http"

	reqctx "github.com/nexthire/auth-service/internal/pkg/context"
)

func RequestIDFromContext(r *http.Request) string {
	return reqctx.GetRequestID(r.Context())
}
