package httpapi

import (
	"context"
	"net/http"
	"time"
)

// serverBaseCtx is canceled when the server shuts down; theme fetches
// started by a request stop with it.
var serverBaseCtx = context.Background()

// SetBaseContext sets the shutdown context; nil restores Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	serverBaseCtx = ctx
}

// fetchContext derives the context for an outbound fetch made on behalf of
// r. It also ends on server shutdown, and after timeout seconds when
// timeout > 0.
func fetchContext(r *http.Request, timeout int64) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(r.Context())
	stop := context.AfterFunc(serverBaseCtx, cancel)
	if timeout > 0 {
		var tcancel context.CancelFunc
		ctx, tcancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		return ctx, func() { tcancel(); stop(); cancel() }
	}
	return ctx, func() { stop(); cancel() }
}
