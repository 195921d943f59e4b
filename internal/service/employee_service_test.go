package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"augebit/internal/db"
	"augebit/internal/db/dbtest"
	"augebit/internal/entities"
	apperrors "augebit/internal/errors"
	"augebit/internal/service"
)

func requireHTTPError(t *testing.T, err error, code int) *apperrors.HTTPError {
	t.Helper()
	var httpErr *apperrors.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *HTTPError, got %v", err)
	assert.Equal(t, code, httpErr.Code)
	return httpErr
}

func TestEmployeeService_Login(t *testing.T) {
	pool := dbtest.Open(t)
	ctx := context.Background()
	id := dbtest.SeedEmployee(t, pool, db.Employee{
		Email: "ana@augebit.com", Senha: "segredo", Nome: "Ana", Telefone: "1133334444", Setor: "Financeiro",
	})
	svc := service.NewEmployeeService(db.SQLite)

	user, err := svc.Login(ctx, pool, entities.LoginRequest{Email: "ana@augebit.com", Senha: "segredo"})
	require.NoError(t, err)
	assert.Equal(t, &entities.User{ID: id, Email: "ana@augebit.com", Nome: "Ana", Telefone: "1133334444", Setor: "Financeiro"}, user)

	_, err = svc.Login(ctx, pool, entities.LoginRequest{Email: "ana@augebit.com", Senha: "outra"})
	wrong := requireHTTPError(t, err, http.StatusUnauthorized)

	_, err = svc.Login(ctx, pool, entities.LoginRequest{Email: "zzz@augebit.com", Senha: "segredo"})
	unknown := requireHTTPError(t, err, http.StatusUnauthorized)
	assert.Equal(t, wrong.Message, unknown.Message)
}

func TestEmployeeService_LoginMissingFields(t *testing.T) {
	svc := service.NewEmployeeService(db.SQLite)
	for _, req := range []entities.LoginRequest{{}, {Email: "a@b.c"}, {Senha: "x"}} {
		// The queryer is never touched for incomplete input.
		_, err := svc.Login(context.Background(), nil, req)
		httpErr := requireHTTPError(t, err, http.StatusBadRequest)
		assert.Equal(t, "Email e senha são obrigatórios", httpErr.Message)
	}
}

func TestEmployeeService_StorageErrors(t *testing.T) {
	pool := dbtest.Open(t)
	require.NoError(t, pool.Close())
	ctx := context.Background()
	svc := service.NewEmployeeService(db.SQLite)

	_, err := svc.Login(ctx, pool, entities.LoginRequest{Email: "a", Senha: "b"})
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError)
	assert.NotEmpty(t, httpErr.Details())

	_, err = svc.Count(ctx, pool)
	requireHTTPError(t, err, http.StatusInternalServerError)

	_, err = svc.List(ctx, pool)
	requireHTTPError(t, err, http.StatusInternalServerError)
}

func TestEmployeeService_CountAndList(t *testing.T) {
	pool := dbtest.Open(t)
	ctx := context.Background()
	dbtest.SeedEmployee(t, pool, db.Employee{Email: "a@x.com", Senha: "1", Nome: "A"})
	svc := service.NewEmployeeService(db.SQLite)

	total, err := svc.Count(ctx, pool)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	list, err := svc.List(ctx, pool)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a@x.com", list[0].Email)
	assert.Equal(t, "1", list[0].Senha)
}
