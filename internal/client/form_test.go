package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		Nome:         "  Maria Souza ",
		CPF:          "529.982.247-25",
		Telefone:     " (11) 98888-7777",
		Email:        "maria@x.com ",
		Data:         "25/12/2024",
		Horario:      " 14:30 ",
		Profissional: "Dra. Maria Santos",
	}
}

func TestFormValidateOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		want   string
	}{
		{"blank name", func(f *Form) { f.Nome = "   " }, "Preencha todos os campos obrigatórios"},
		{"blank email beats bad cpf", func(f *Form) { f.Email = ""; f.CPF = "123" }, "Preencha todos os campos obrigatórios"},
		{"invalid cpf", func(f *Form) { f.CPF = "12345678900" }, "CPF inválido"},
		{"repeated cpf", func(f *Form) { f.CPF = "111.111.111-11" }, "CPF inválido"},
		{"cpf checked before professional", func(f *Form) { f.CPF = "123"; f.Profissional = "" }, "CPF inválido"},
		{"no professional", func(f *Form) { f.Profissional = "" }, "Selecione um profissional"},
		{"no date", func(f *Form) { f.Data = "" }, "Preencha a data e horário da consulta"},
		{"no time", func(f *Form) { f.Horario = "" }, "Preencha a data e horário da consulta"},
		{"short year", func(f *Form) { f.Data = "25/12/24" }, "Data deve estar no formato DD/MM/AAAA"},
		{"missing part", func(f *Form) { f.Data = "25/12" }, "Data deve estar no formato DD/MM/AAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)

			err := f.Validate()
			var formErr *FormError
			require.ErrorAs(t, err, &formErr)
			assert.Equal(t, "Erro", formErr.Title)
			assert.Equal(t, tt.want, formErr.Message)
		})
	}
}

func TestFormValidateNoCalendarCheck(t *testing.T) {
	f := validForm()
	f.Data = "32/13/9999"
	assert.NoError(t, f.Validate())
}

func TestFormPayload(t *testing.T) {
	p, err := validForm().Payload()
	require.NoError(t, err)

	assert.Equal(t, "Maria Souza", p.Nome)
	assert.Equal(t, "52998224725", p.CPF)
	assert.Equal(t, "(11) 98888-7777", p.Telefone)
	assert.Equal(t, "maria@x.com", p.Email)
	assert.Equal(t, "2024-12-25", p.Data)
	assert.Equal(t, "14:30", p.Horario)
	assert.Equal(t, "Dra. Maria Santos", p.Profissional)
}
