package fetch

import (
	"fmt"
	"strings"

	"autos-converter/internal/core/jsonvalue"
	"autos-converter/internal/domain"
)

// ParseText interpreta o JSON colado pelo usuário.
func ParseText(text string) (jsonvalue.Value, error) {
	if strings.TrimSpace(text) == "" {
		return jsonvalue.Value{}, fmt.Errorf("%w: Texto JSON não fornecido", domain.ErrInvalidFormat)
	}
	doc, err := jsonvalue.Parse([]byte(text))
	if err != nil {
		return jsonvalue.Value{}, fmt.Errorf("%w: JSON inválido: %v", domain.ErrInvalidFormat, err)
	}
	return doc, nil
}
