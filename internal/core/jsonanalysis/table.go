package jsonanalysis

import (
	"sort"
	"strings"

	"autos-converter/internal/core/jsonvalue"
	"autos-converter/internal/domain"
)

// Flatten achata objetos aninhados em chaves com pontos. Arrays ficam como estão.
// Registros que não são objetos viram {"valor": x}.
func Flatten(record jsonvalue.Value) []jsonvalue.Member {
	if record.Kind() != jsonvalue.Object {
		return []jsonvalue.Member{{Key: primitiveKey, Value: record}}
	}
	return flattenInto(nil, record, "")
}

func flattenInto(out []jsonvalue.Member, obj jsonvalue.Value, prefix string) []jsonvalue.Member {
	for _, m := range obj.Members() {
		key := m.Key
		if prefix != "" {
			key = prefix + "." + m.Key
		}
		if m.Value.Kind() == jsonvalue.Object {
			out = flattenInto(out, m.Value, key)
			continue
		}
		out = append(out, jsonvalue.Member{Key: key, Value: m.Value})
	}
	return out
}

// ToTable monta a tabela de pré-visualização: registros achatados, colunas em ordem
// alfabética e células formatadas por FormatCell.
func ToTable(records []jsonvalue.Value) domain.Table {
	flat := make([]map[string]jsonvalue.Value, len(records))
	var columns []string
	seen := map[string]bool{}
	for i, r := range records {
		members := Flatten(r)
		flat[i] = make(map[string]jsonvalue.Value, len(members))
		for _, m := range members {
			flat[i][m.Key] = m.Value
			if !seen[m.Key] {
				seen[m.Key] = true
				columns = append(columns, m.Key)
			}
		}
	}
	sort.Strings(columns)

	rows := make([][]string, len(flat))
	for i, item := range flat {
		row := make([]string, len(columns))
		for j, col := range columns {
			if v, ok := item[col]; ok {
				row[j] = FormatCell(v)
			}
		}
		rows[i] = row
	}
	if columns == nil {
		columns = []string{}
	}
	return domain.Table{Columns: columns, Rows: rows}
}

// FormatCell formata um valor para exibição: null vazio, arrays unidos por ", "
// (itens compostos como JSON) e objetos como JSON.
func FormatCell(v jsonvalue.Value) string {
	if v.Kind() != jsonvalue.Array {
		return v.Text()
	}
	parts := make([]string, len(v.Items()))
	for i, item := range v.Items() {
		parts[i] = item.Text()
	}
	return strings.Join(parts, ", ")
}
