// Package fields resolve campos de registros heterogêneos por listas de apelidos e
// normaliza valores para os layouts de destino.
package fields

import (
	"strings"
	"unicode"

	"autos-converter/internal/core/jsonvalue"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// displayKeys são as subchaves usadas para reduzir um objeto a um texto.
var displayKeys = []string{"value", "name", "title", "text", "description"}

// Extract retorna o primeiro valor presente e não vazio entre os apelidos, na ordem dada.
// Nunca falha: sem correspondência retorna "".
func Extract(record jsonvalue.Value, aliases []string) string {
	for _, alias := range aliases {
		v, ok := record.Lookup(alias)
		if !ok || isBlank(v) {
			continue
		}
		return Display(v)
	}
	return ""
}

// Resolve retorna o valor bruto do primeiro apelido presente e não vazio.
func Resolve(record jsonvalue.Value, aliases []string) (jsonvalue.Value, bool) {
	for _, alias := range aliases {
		v, ok := record.Lookup(alias)
		if ok && !isBlank(v) {
			return v, true
		}
	}
	return jsonvalue.Value{}, false
}

// Display reduz um valor a texto de exibição. Objetos usam a primeira subchave conhecida
// (value, name, title, text, description) e, sem nenhuma, viram JSON. Arrays são unidos com ", ".
func Display(v jsonvalue.Value) string {
	switch v.Kind() {
	case jsonvalue.Object:
		for _, key := range displayKeys {
			if sub, ok := v.Get(key); ok && !sub.IsNull() {
				return strings.TrimSpace(sub.Text())
			}
		}
		return v.Text()
	case jsonvalue.Array:
		parts := make([]string, len(v.Items()))
		for i, item := range v.Items() {
			parts[i] = item.Text()
		}
		return strings.Join(parts, ", ")
	default:
		return strings.TrimSpace(v.Text())
	}
}

func isBlank(v jsonvalue.Value) bool {
	if v.IsNull() {
		return true
	}
	s, ok := v.Str()
	return ok && s == ""
}

// fold remove acentos e passa para minúsculas, para comparações tolerantes.
func fold(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.ToLower(strings.TrimSpace(result))
}

// Fold expõe a normalização usada nas comparações de cabeçalhos e tokens.
func Fold(s string) string {
	return fold(s)
}
