package api

import (
	"database/sql"
	"net/http"

	apperrors "augebit/internal/errors"
	"augebit/internal/repository"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Root answers only once a connection could be checked out, so it doubles as
// a readiness check for the whole service.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request, _ *sql.Conn) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Message:   "API funcionando corretamente!",
		Timestamp: h.now().UTC().Format(timestampLayout),
	})
}

func (h *Handler) TestDB(w http.ResponseWriter, r *http.Request, conn *sql.Conn) {
	ctx, cancel := h.queryContext(r)
	defer cancel()

	total, err := h.employees.Count(ctx, conn)
	if err != nil {
		writeServiceError(w, h.logger, r, err, errorField)
		return
	}

	writeJSON(w, http.StatusOK, TestDBResponse{
		Success:           true,
		Message:           "Conexão com banco OK!",
		TotalFuncionarios: total,
	})
}

// ListEmployees is a diagnostics route and returns the stored passwords as-is.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request, conn *sql.Conn) {
	ctx, cancel := h.queryContext(r)
	defer cancel()

	records, err := h.employees.List(ctx, conn)
	if err != nil {
		writeServiceError(w, h.logger, r, err, errorField)
		return
	}

	writeJSON(w, http.StatusOK, EmployeesResponse{Success: true, Funcionarios: records})
}

func (h *Handler) Professionals(w http.ResponseWriter, r *http.Request, _ *sql.Conn) {
	writeJSON(w, http.StatusOK, ProfessionalsResponse{
		Success:       true,
		Profissionais: h.professionals.All(),
	})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request, _ *sql.Conn) {
	writeServiceError(w, h.logger, r, apperrors.ErrNotFound("Rota não encontrada"), messageField)
}

var _ repository.Queryer = (*sql.Conn)(nil)
