package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/flashcards/internal/core"
)

// WithRequestMetadata records the client address for upload history.
// RemoteAddr has already been resolved by TrustedRealIP.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	return core.ContextWithClientIP(ctx, clientIP(r))
}
