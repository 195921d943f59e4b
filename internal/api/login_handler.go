package api

import (
	"database/sql"
	"net/http"

	"augebit/internal/entities"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, conn *sql.Conn) {
	var req entities.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(w, h.logger, r, err, messageField)
		return
	}
	h.logger.Info("login attempt", "email", req.Email)

	ctx, cancel := h.queryContext(r)
	defer cancel()

	user, err := h.employees.Login(ctx, conn, req)
	if err != nil {
		h.logger.Info("login rejected", "email", req.Email, "error", err)
		writeServiceError(w, h.logger, r, err, messageField)
		return
	}

	h.logger.Info("login succeeded", "email", user.Email, "id", user.ID)
	writeJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login realizado com sucesso",
		User:    *user,
	})
}
