package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorHelpers(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrBadRequest("x").Code)
	assert.Equal(t, http.StatusUnauthorized, ErrUnauthorized("x").Code)
	assert.Equal(t, http.StatusNotFound, ErrNotFound("x").Code)
}

func TestInternalErrorCarriesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrInternal("Erro ao consultar banco", cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "connection refused", err.Details())
	assert.Equal(t, "Erro ao consultar banco: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))

	var target *HTTPError
	assert.True(t, errors.As(error(err), &target))
}

func TestDetailsEmptyWithoutCause(t *testing.T) {
	err := NewHTTPError(http.StatusBadRequest, "Todos os campos são obrigatórios")
	assert.Empty(t, err.Details())
	assert.Equal(t, "Todos os campos são obrigatórios", err.Error())
}
