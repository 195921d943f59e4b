package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"augebit/internal/db"
	"augebit/internal/db/dbtest"
	"augebit/internal/entities"
	"augebit/internal/service"
)

type recordingNotifier struct {
	booked chan db.Appointment
	err    error
}

func newRecordingNotifier(err error) *recordingNotifier {
	return &recordingNotifier{booked: make(chan db.Appointment, 8), err: err}
}

func (n *recordingNotifier) AppointmentBooked(_ context.Context, a db.Appointment) error {
	n.booked <- a
	return n.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRequest() entities.AppointmentRequest {
	return entities.AppointmentRequest{
		Nome: "Maria Souza", CPF: "52998224725", Telefone: "11988887777", Email: "maria@x.com",
		Data: "2024-12-25", Horario: "14:30", Profissional: "Dra. Maria Santos",
	}
}

func TestAppointmentService_Create(t *testing.T) {
	pool := dbtest.Open(t)
	notifier := newRecordingNotifier(nil)
	svc := service.NewAppointmentService(db.SQLite, notifier, discardLogger())

	id, err := svc.Create(context.Background(), pool, validRequest())
	require.NoError(t, err)
	assert.Positive(t, id)

	stored := dbtest.GetAppointment(t, pool, id)
	assert.Equal(t, "Maria Souza", stored.Nome)
	assert.Equal(t, "2024-12-25", stored.Data)

	select {
	case a := <-notifier.booked:
		assert.Equal(t, id, a.ID)
		assert.Equal(t, "maria@x.com", a.Email)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestAppointmentService_NotifierFailureDoesNotFailBooking(t *testing.T) {
	pool := dbtest.Open(t)
	notifier := newRecordingNotifier(errors.New("sendgrid down"))
	svc := service.NewAppointmentService(db.SQLite, notifier, discardLogger())

	id, err := svc.Create(context.Background(), pool, validRequest())
	require.NoError(t, err)
	assert.Positive(t, id)

	select {
	case <-notifier.booked:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
	assert.Equal(t, 1, dbtest.CountAppointments(t, pool))
}

func TestAppointmentService_MissingFields(t *testing.T) {
	pool := dbtest.Open(t)
	svc := service.NewAppointmentService(db.SQLite, nil, discardLogger())

	req := validRequest()
	req.Horario = ""
	_, err := svc.Create(context.Background(), pool, req)
	httpErr := requireHTTPError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Todos os campos são obrigatórios", httpErr.Message)
	assert.Zero(t, dbtest.CountAppointments(t, pool))
}

func TestAppointmentService_NoFormatRevalidation(t *testing.T) {
	pool := dbtest.Open(t)
	svc := service.NewAppointmentService(db.SQLite, nil, discardLogger())

	req := validRequest()
	req.CPF = "00000000000"
	_, err := svc.Create(context.Background(), pool, req)
	require.NoError(t, err)
}

func TestAppointmentService_StorageError(t *testing.T) {
	pool := dbtest.Open(t)
	require.NoError(t, pool.Close())
	svc := service.NewAppointmentService(db.SQLite, nil, discardLogger())

	_, err := svc.Create(context.Background(), pool, validRequest())
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Erro ao agendar consulta", httpErr.Message)
	assert.NotEmpty(t, httpErr.Details())
}

type panickingNotifier struct{ done chan struct{} }

func (n panickingNotifier) AppointmentBooked(context.Context, db.Appointment) error {
	defer close(n.done)
	panic("template exploded")
}

func TestAppointmentService_NotifierPanicIsContained(t *testing.T) {
	pool := dbtest.Open(t)
	notifier := panickingNotifier{done: make(chan struct{})}
	svc := service.NewAppointmentService(db.SQLite, notifier, discardLogger())

	id, err := svc.Create(context.Background(), pool, validRequest())
	require.NoError(t, err)
	assert.Positive(t, id)

	select {
	case <-notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
	assert.Equal(t, 1, dbtest.CountAppointments(t, pool))
}

type blockingNotifier struct {
	release chan struct{}
	sent    chan int64
}

func (n *blockingNotifier) AppointmentBooked(_ context.Context, a db.Appointment) error {
	<-n.release
	n.sent <- a.ID
	return nil
}

func TestAppointmentService_WaitDrainsConfirmations(t *testing.T) {
	pool := dbtest.Open(t)
	notifier := &blockingNotifier{release: make(chan struct{}), sent: make(chan int64, 1)}
	svc := service.NewAppointmentService(db.SQLite, notifier, discardLogger())

	id, err := svc.Create(context.Background(), pool, validRequest())
	require.NoError(t, err)

	short, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Wait(short), context.DeadlineExceeded)

	close(notifier.release)
	require.NoError(t, svc.Wait(context.Background()))

	select {
	case got := <-notifier.sent:
		assert.Equal(t, id, got)
	default:
		t.Fatal("confirmation had not finished when Wait returned")
	}
}

func TestAppointmentService_WaitWithNothingPending(t *testing.T) {
	svc := service.NewAppointmentService(db.SQLite, nil, discardLogger())
	assert.NoError(t, svc.Wait(context.Background()))
}
