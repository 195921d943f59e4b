package api

import (
	"context"
	"database/sql"
	"net/http"
)

const msgConnectionFailed = "Erro de conexão com o banco de dados"

// connHandlerFunc is a route handler that runs on the connection checked out
// for its request.
type connHandlerFunc func(w http.ResponseWriter, r *http.Request, conn *sql.Conn)

// withConn checks out one pooled connection before next runs and returns it
// to the pool when next returns or panics. When no connection can be obtained
// within the acquire timeout the request ends with a 500 and next never runs.
func (h *Handler) withConn(next connHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := r.Context(), context.CancelFunc(func() {})
		if h.acquireTimeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, h.acquireTimeout)
		}
		conn, err := h.db.Conn(ctx)
		cancel()
		if err != nil {
			h.logger.Error("could not acquire database connection",
				"path", r.URL.Path,
				"error", err,
			)
			writeJSON(w, http.StatusInternalServerError, FailureResponse{
				Success: false,
				Error:   msgConnectionFailed,
				Details: err.Error(),
			})
			return
		}
		defer func() {
			if err := conn.Close(); err != nil {
				h.logger.Warn("release database connection", "error", err)
			}
		}()

		next(w, r, conn)
	}
}
