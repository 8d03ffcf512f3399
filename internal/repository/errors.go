package repository

import "errors"

// Tipos de erro que a camada de apresentação precisa distinguir.
// Os handlers mapeiam cada um para um status HTTP próprio; nunca
// colapsar conflito em erro genérico.
var (
	// ErrInvalidInput - campo obrigatório ausente ou valor fora do domínio.
	ErrInvalidInput = errors.New("dados inválidos")

	// ErrNotFound - operação referenciando um id inexistente.
	ErrNotFound = errors.New("registro não encontrado")

	// ErrVacationOverlap - o período informado sobrepõe férias já
	// cadastradas do mesmo colaborador.
	ErrVacationOverlap = errors.New("período de férias sobreposto")

	// ErrDayOffDuplicate - o colaborador já tem folga nesta data.
	ErrDayOffDuplicate = errors.New("já existe folga nesta data")
)
