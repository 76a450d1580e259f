package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
	"github.com/hkwire/hkctl/internal/pkg/logging"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

type RecoveryMw struct {
	next http.Handler
}

func NewRecoveryMw() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return NewRecovery(next)
	}
}

func NewRecovery(next http.Handler) *RecoveryMw {
	return &RecoveryMw{next: next}
}

func (mw *RecoveryMw) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	defer func() {
		if err := recover(); err != nil {
			logging.Logger(r.Context()).Errorf("caught panic: %v : %s", err, debug.Stack())

			// Clients expect a wire status body, not plain text.
			st := schema.Statusf(schema.StatusInternal, "internal server error")
			rw.Header().Set("Content-Type", "application/x-hkwire")
			rw.WriteHeader(http.StatusInternalServerError)
			_, _ = rw.Write(st.MarshalWire())
		}
	}()

	mw.next.ServeHTTP(rw, r)
}
