package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"augebit/internal/entities"
)

const (
	msgLoginMissingFields = "Por favor, preencha todos os campos"
	msgLoginRejected      = "Email ou senha inválidos"
	msgServerError        = "Erro no servidor"
	msgNoResponse         = "Servidor não respondeu. Verifique sua conexão com o servidor."
)

type loginResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    entities.User `json:"user"`
}

// Login authenticates against POST /login and stores the returned user as
// the current session. Empty fields fail with a *FormError before any call;
// every other failure is a *LoginError carrying the banner text.
func (c *Client) Login(ctx context.Context, email, senha string) (*Session, error) {
	if email == "" || senha == "" {
		return nil, newFormError(msgLoginMissingFields)
	}

	body, err := json.Marshal(entities.LoginRequest{
		Email: strings.TrimSpace(email),
		Senha: strings.TrimSpace(senha),
	})
	if err != nil {
		return nil, &LoginError{Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/login"), bytes.NewReader(body))
	if err != nil {
		return nil, &LoginError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("login request failed", "error", err)
		return nil, &LoginError{Message: msgNoResponse, Err: err}
	}
	defer resp.Body.Close()

	var out loginResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := out.Message
		if decodeErr != nil || msg == "" {
			msg = msgServerError
		}
		return nil, &LoginError{Message: msg, StatusCode: resp.StatusCode}
	}
	if decodeErr != nil || !out.Success {
		return nil, &LoginError{Message: msgLoginRejected, StatusCode: resp.StatusCode, Err: decodeErr}
	}

	session := &Session{User: out.User}
	if err := c.sessions.Save(session); err != nil {
		c.logger.Error("could not store session", "error", err)
		return nil, &LoginError{Message: err.Error(), Err: err}
	}
	return session, nil
}

// CurrentSession returns the stored session, or nil when nobody is logged in
// or the stored value cannot be read.
func (c *Client) CurrentSession() *Session {
	s, err := c.sessions.Load()
	if err != nil {
		c.logger.Error("could not load session", "error", err)
		return nil
	}
	return s
}

func (c *Client) Logout() error {
	if err := c.sessions.Clear(); err != nil {
		c.logger.Error("could not clear session", "error", err)
		return err
	}
	return nil
}
