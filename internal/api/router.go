package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

type RouterOptions struct {
	AllowedOrigins []string
	// LoginLimiter throttles POST /login per client address. Nil disables it.
	LoginLimiter *RateLimiter
}

// NewRouter registers every route and wraps the result with the shared
// middleware. Every request, the 404 fallback included, runs on its own
// checked-out connection.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", h.withConn(h.Root)).Methods(http.MethodGet)
	r.HandleFunc("/test-db", h.withConn(h.TestDB)).Methods(http.MethodGet)
	r.HandleFunc("/cadastrof", h.withConn(h.ListEmployees)).Methods(http.MethodGet)
	r.HandleFunc("/profissionais", h.withConn(h.Professionals)).Methods(http.MethodGet)
	r.Handle("/login", opts.LoginLimiter.Middleware(h.withConn(h.Login))).Methods(http.MethodPost)
	r.HandleFunc("/agendamentos", h.withConn(h.CreateAppointment)).Methods(http.MethodPost)

	notFound := h.withConn(h.NotFound)
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	return applyMiddleware(r, h.logger, opts.AllowedOrigins)
}
