package api

import (
	"database/sql"
	"net/http"

	"augebit/internal/entities"
)

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request, conn *sql.Conn) {
	var req entities.AppointmentRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(w, h.logger, r, err, messageField)
		return
	}
	h.logger.Info("appointment received",
		"profissional", req.Profissional,
		"data", req.Data,
		"horario", req.Horario,
	)

	ctx, cancel := h.queryContext(r)
	defer cancel()

	id, err := h.appointments.Create(ctx, conn, req)
	if err != nil {
		writeServiceError(w, h.logger, r, err, messageField)
		return
	}

	writeJSON(w, http.StatusOK, CreateAppointmentResponse{
		Success:       true,
		Message:       "Agendamento realizado com sucesso!",
		AgendamentoID: id,
	})
}
