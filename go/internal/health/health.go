package health

import (
	"context"
	"net/http"
	"time"

	"github.com/mcdev12/userform/go/internal/httpjson"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 5 * time.Second

// Status is the body returned by GET /health
type Status struct {
	Status string `json:"status"`
	DB     bool   `json:"db"`
}

// Pinger checks whether the store answers a query
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker reports process liveness and store reachability.
// A store failure degrades the body but never the HTTP status.
type Checker struct {
	pinger  Pinger
	timeout time.Duration
}

func NewChecker(pinger Pinger) *Checker {
	return &Checker{
		pinger:  pinger,
		timeout: defaultTimeout,
	}
}

func (c *Checker) Check(ctx context.Context) Status {
	status := Status{Status: "ok", DB: true}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.pinger.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("health check: database unreachable")
		status.DB = false
	}
	return status
}

// HTTP handler helper
func (c *Checker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		httpjson.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	httpjson.WriteJSON(w, http.StatusOK, c.Check(r.Context()))
}
