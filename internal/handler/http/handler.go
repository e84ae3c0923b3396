package http

import (
	"net/http"
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/auth"
	"github.com/opsdesk-hr/backoffice-go/internal/handler/http/middleware"
	"github.com/opsdesk-hr/backoffice-go/internal/handler/http/response"
)

// principal pulls the authenticated caller installed by the auth
// middleware. A missing principal means the route was wired outside the
// authenticated group, which is a server bug, but it is reported as 401
// rather than panicking.
func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid or missing token")
	}
	return p, ok
}

// queryDate parses an optional YYYY-MM-DD query parameter; the zero time
// means absent.
func queryDate(r *http.Request, name string) time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
