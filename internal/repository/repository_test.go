package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"augebit/internal/db"
	"augebit/internal/db/dbtest"
	"augebit/internal/repository"
)

func TestEmployeeRepository_CountAndList(t *testing.T) {
	pool := dbtest.Open(t)
	ctx := context.Background()
	repo := repository.NewEmployeeRepository(pool, db.SQLite)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	dbtest.SeedEmployee(t, pool, db.Employee{Email: "ana@augebit.com", Senha: "123456", Nome: "Ana"})
	dbtest.SeedEmployee(t, pool, db.Employee{Email: "bruno@augebit.com", Senha: "abcdef", Nome: "Bruno"})

	total, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ana@augebit.com", list[0].Email)
	assert.Equal(t, "123456", list[0].Senha)
	assert.Equal(t, "Ana", list[0].Nome)
}

func TestEmployeeRepository_FindByCredentials(t *testing.T) {
	pool := dbtest.Open(t)
	ctx := context.Background()
	repo := repository.NewEmployeeRepository(pool, db.SQLite)

	id := dbtest.SeedEmployee(t, pool, db.Employee{
		Email: "ana@augebit.com", Senha: "segredo", Nome: "Ana", Telefone: "11999990000", Setor: "RH",
	})

	got, err := repo.FindByCredentials(ctx, "ana@augebit.com", "segredo")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Ana", got.Nome)
	assert.Equal(t, "11999990000", got.Telefone)
	assert.Equal(t, "RH", got.Setor)
	assert.Empty(t, got.Senha)

	for _, tc := range []struct{ email, senha string }{
		{"ana@augebit.com", "errada"},
		{"ANA@augebit.com", "segredo"},
		{"ana@augebit.com", "SEGREDO"},
		{"ninguem@augebit.com", "segredo"},
	} {
		got, err := repo.FindByCredentials(ctx, tc.email, tc.senha)
		require.NoError(t, err)
		assert.Nil(t, got, "%s/%s", tc.email, tc.senha)
	}
}

func TestEmployeeRepository_NullableColumns(t *testing.T) {
	pool := dbtest.Open(t)
	ctx := context.Background()

	_, err := pool.ExecContext(ctx, `INSERT INTO cadastrof (email, senha, nome) VALUES ('c@x.com', 'p', 'Carla')`)
	require.NoError(t, err)

	got, err := repository.NewEmployeeRepository(pool, db.SQLite).FindByCredentials(ctx, "c@x.com", "p")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Telefone)
	assert.Empty(t, got.Setor)
}

func TestAppointmentRepository_Create(t *testing.T) {
	pool := dbtest.Open(t)
	ctx := context.Background()
	repo := repository.NewAppointmentRepository(pool, db.SQLite)

	a := &db.Appointment{
		Nome: "Maria", CPF: "52998224725", Telefone: "11988887777", Email: "maria@x.com",
		Data: "2024-12-25", Horario: "14:30", Profissional: "Dr. João Silva",
	}
	require.NoError(t, repo.Create(ctx, a))
	assert.Positive(t, a.ID)

	stored := dbtest.GetAppointment(t, pool, a.ID)
	assert.Equal(t, *a, stored)

	// Same slot again: no uniqueness is enforced.
	dup := *a
	dup.ID = 0
	require.NoError(t, repo.Create(ctx, &dup))
	assert.NotEqual(t, a.ID, dup.ID)
	assert.Equal(t, 2, dbtest.CountAppointments(t, pool))
}

func TestAppointmentRepository_OnConn(t *testing.T) {
	pool := dbtest.Open(t)
	ctx := context.Background()

	conn, err := pool.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()

	a := &db.Appointment{Nome: "n", CPF: "c", Telefone: "t", Email: "e", Data: "d", Horario: "h", Profissional: "p"}
	require.NoError(t, repository.NewAppointmentRepository(conn, db.SQLite).Create(ctx, a))
	assert.Equal(t, 1, dbtest.CountAppointments(t, pool))
}

func TestRepositories_StorageError(t *testing.T) {
	pool := dbtest.Open(t)
	require.NoError(t, pool.Close())
	ctx := context.Background()

	_, err := repository.NewEmployeeRepository(pool, db.SQLite).Count(ctx)
	assert.Error(t, err)

	err = repository.NewAppointmentRepository(pool, db.SQLite).Create(ctx, &db.Appointment{})
	assert.Error(t, err)
}
