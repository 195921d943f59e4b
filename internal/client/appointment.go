package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// BookingConfirmedMessage is shown once a submission succeeds.
const BookingConfirmedMessage = "Consulta marcada com sucesso!"

type Booking struct {
	// ID is zero when the server did not report one.
	ID int64
}

// SubmitAppointment validates f and sends exactly one POST /agendamentos.
// Any 2xx status is a booking; the body is only read for the id. There is
// no retry.
func (c *Client) SubmitAppointment(ctx context.Context, f Form) (*Booking, error) {
	payload, err := f.Payload()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &SubmitError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/agendamentos"), bytes.NewReader(body))
	if err != nil {
		return nil, &SubmitError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("appointment request failed", "error", err)
		return nil, &SubmitError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("appointment rejected by server",
			"status", resp.StatusCode,
			"body", string(text),
		)
		return nil, &SubmitError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	var out struct {
		AgendamentoID int64 `json:"agendamentoId"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)

	return &Booking{ID: out.AgendamentoID}, nil
}
