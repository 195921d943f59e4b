package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "augebit/internal/errors"
)

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched
// so the field checks downstream report what is missing.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return &apperrors.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Corpo da requisição inválido",
			Err:     err,
		}
	}
	return nil
}
