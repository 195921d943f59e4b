package service

import (
	"context"

	"augebit/internal/db"
	"augebit/internal/entities"
	apperrors "augebit/internal/errors"
	"augebit/internal/repository"
)

const (
	msgLoginMissingFields = "Email e senha são obrigatórios"
	msgInvalidCredentials = "Email ou senha inválidos"
	msgLoginStorage       = "Erro interno no servidor"
	msgCountStorage       = "Erro ao consultar banco"
	msgListStorage        = "Erro ao consultar funcionários"
)

// EmployeeService answers the cadastrof queries: login and the diagnostic
// count and listing. Every call runs on the connection passed in by the caller.
type EmployeeService struct {
	dialect db.Driver
}

func NewEmployeeService(dialect db.Driver) *EmployeeService {
	return &EmployeeService{dialect: dialect}
}

// Login matches email and senha exactly against stored plain-text
// credentials. Unknown email and wrong password yield the same 401.
func (s *EmployeeService) Login(ctx context.Context, q repository.Queryer, req entities.LoginRequest) (*entities.User, error) {
	if req.Email == "" || req.Senha == "" {
		return nil, apperrors.ErrBadRequest(msgLoginMissingFields)
	}

	employee, err := repository.NewEmployeeRepository(q, s.dialect).FindByCredentials(ctx, req.Email, req.Senha)
	if err != nil {
		return nil, apperrors.ErrInternal(msgLoginStorage, err)
	}
	if employee == nil {
		return nil, apperrors.ErrUnauthorized(msgInvalidCredentials)
	}

	user := entities.UserFromEmployee(*employee)
	return &user, nil
}

func (s *EmployeeService) Count(ctx context.Context, q repository.Queryer) (int64, error) {
	total, err := repository.NewEmployeeRepository(q, s.dialect).Count(ctx)
	if err != nil {
		return 0, apperrors.ErrInternal(msgCountStorage, err)
	}
	return total, nil
}

func (s *EmployeeService) List(ctx context.Context, q repository.Queryer) ([]entities.EmployeeRecord, error) {
	employees, err := repository.NewEmployeeRepository(q, s.dialect).List(ctx)
	if err != nil {
		return nil, apperrors.ErrInternal(msgListStorage, err)
	}
	return entities.EmployeeRecords(employees), nil
}
