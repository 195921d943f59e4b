package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"augebit/internal/db"
	"augebit/internal/entities"
	apperrors "augebit/internal/errors"
	"augebit/internal/repository"
)

const (
	msgAppointmentMissingFields = "Todos os campos são obrigatórios"
	msgAppointmentStorage       = "Erro ao agendar consulta"

	notifyTimeout = 30 * time.Second
)

type AppointmentService struct {
	dialect  db.Driver
	notifier Notifier
	logger   *slog.Logger
	inflight sync.WaitGroup
}

// NewAppointmentService builds the booking service. A nil notifier disables
// confirmations.
func NewAppointmentService(dialect db.Driver, notifier Notifier, logger *slog.Logger) *AppointmentService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &AppointmentService{dialect: dialect, notifier: notifier, logger: logger}
}

// Create stores one appointment and returns its generated id. Only presence of
// the seven fields is checked; their format is trusted from the client.
// Confirmation is sent in the background once the row exists and never
// affects the outcome.
func (s *AppointmentService) Create(ctx context.Context, q repository.Queryer, req entities.AppointmentRequest) (int64, error) {
	if !req.Complete() {
		return 0, apperrors.ErrBadRequest(msgAppointmentMissingFields)
	}

	appointment := req.ToModel()
	if err := repository.NewAppointmentRepository(q, s.dialect).Create(ctx, &appointment); err != nil {
		return 0, apperrors.ErrInternal(msgAppointmentStorage, err)
	}

	s.inflight.Add(1)
	go s.notify(appointment)

	return appointment.ID, nil
}

// Wait blocks until every pending confirmation has finished or ctx is done.
func (s *AppointmentService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AppointmentService) notify(appointment db.Appointment) {
	defer s.inflight.Done()
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	defer func() {
		if v := recover(); v != nil {
			s.logger.Error("panic recovered in booking confirmation",
				"agendamento_id", appointment.ID,
				"panic", v,
			)
		}
	}()

	if err := s.notifier.AppointmentBooked(ctx, appointment); err != nil {
		s.logger.Warn("booking confirmation failed",
			"agendamento_id", appointment.ID,
			"error", err,
		)
	}
}
