package domain

import (
	"errors"
	"fmt"
)

// Erros base usados pelo núcleo de conversão. Camadas externas decidem como exibi-los.
var (
	ErrInvalidFormat  = errors.New("formato de entrada inválido")
	ErrEmptyData      = errors.New("nenhum dado para converter")
	ErrFetch          = errors.New("falha ao carregar JSON remoto")
	ErrMapping        = errors.New("falha no mapeamento de registros")
	ErrEmptyPayload   = errors.New("payload vazio - nenhum dado para converter")
	ErrInvalidContext = errors.New("parâmetros de conversão inválidos")
)

// RowError anota a falha de um registro com o número da linha (base 1).
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("erro ao processar veículo na linha %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{ErrMapping, e.Err}
}

func invalidContext(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidContext, fmt.Sprintf(format, args...))
}
