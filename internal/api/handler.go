package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"augebit/internal/service"
)

const maxBodyBytes = int64(1 << 20)

type HandlerConfig struct {
	// AcquireTimeout bounds the wait for a pooled connection.
	AcquireTimeout time.Duration
	// QueryTimeout bounds the statements run on behalf of a request.
	QueryTimeout time.Duration
}

type Handler struct {
	db             *sql.DB
	employees      *service.EmployeeService
	appointments   *service.AppointmentService
	professionals  *service.ProfessionalCatalog
	acquireTimeout time.Duration
	queryTimeout   time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

func NewHandler(
	db *sql.DB,
	employees *service.EmployeeService,
	appointments *service.AppointmentService,
	professionals *service.ProfessionalCatalog,
	cfg HandlerConfig,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		db:             db,
		employees:      employees,
		appointments:   appointments,
		professionals:  professionals,
		acquireTimeout: cfg.AcquireTimeout,
		queryTimeout:   cfg.QueryTimeout,
		logger:         logger,
		now:            time.Now,
	}
}

// queryContext detaches the statement from the client connection: once issued
// a query runs to completion or to the query timeout, even if the caller goes
// away.
func (h *Handler) queryContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx := context.WithoutCancel(r.Context())
	if h.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.queryTimeout)
}
