package middleware

import (
	"context"
	"net/http"

	"github.com/rs/xid"
)

// CorrelationIDHeader carries the request id to and from clients.
const CorrelationIDHeader = "X-Correlation-ID"

type correlationKey struct{}

// CorrelationCtx returns the request's correlation id, or "" when the
// context did not pass through CorrelationID.
func CorrelationCtx(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// CorrelationID tags every request with an id: the client's, when it
// sent one, otherwise a fresh xid. The id is echoed in the response
// header and stored on the context for handlers and the presenter.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		w.Header().Set(CorrelationIDHeader, id)

		ctx := context.WithValue(r.Context(), correlationKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
