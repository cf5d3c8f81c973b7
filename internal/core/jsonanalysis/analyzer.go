// Package jsonanalysis localiza o array de registros dentro de um JSON de formato
// desconhecido e descreve suas colunas para pré-visualização.
package jsonanalysis

import (
	"sort"

	"autos-converter/internal/core/jsonvalue"
)

// ShapeKind descreve onde os registros foram encontrados.
type ShapeKind string

const (
	DirectArray  ShapeKind = "direct_array"
	NestedArray  ShapeKind = "nested_array"
	SingleObject ShapeKind = "single_object"
	Primitive    ShapeKind = "primitive"
)

// RootPath identifica o próprio documento quando ele já é um array.
const RootPath = "root"

const (
	structureSampleSize = 10
	columnSampleSize    = 3
	primitiveKey        = "valor"
)

// Candidate é um array encontrado no documento.
type Candidate struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Column descreve uma chave observada nos registros.
type Column struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Nullable bool              `json:"nullable"`
	Sample   []jsonvalue.Value `json:"sample"`
}

// Metadata resume a decisão tomada pela análise.
type Metadata struct {
	Kind         ShapeKind   `json:"kind"`
	Path         string      `json:"path,omitempty"`
	Count        int         `json:"count"`
	Alternatives []Candidate `json:"alternatives,omitempty"`
}

// Analysis é o resultado da análise de um documento JSON.
type Analysis struct {
	Data      []jsonvalue.Value `json:"-"`
	Structure []Column          `json:"structure"`
	Metadata  Metadata          `json:"metadata"`
}

// Empty indica que não há registros aproveitáveis: array vazio ou objeto sem chaves.
func (a Analysis) Empty() bool {
	if len(a.Data) == 0 {
		return true
	}
	return a.Metadata.Kind == SingleObject && a.Data[0].Len() == 0
}

// Analyze decide qual é o array de registros do documento:
//  1. o próprio documento, se for array;
//  2. o maior array aninhado em um objeto (empate fica com o primeiro encontrado);
//  3. o próprio objeto como registro único;
//  4. um registro sintético {"valor": x} para valores primitivos.
func Analyze(doc jsonvalue.Value) Analysis {
	switch doc.Kind() {
	case jsonvalue.Array:
		data := doc.Items()
		return Analysis{
			Data:      data,
			Structure: arrayStructure(data),
			Metadata:  Metadata{Kind: DirectArray, Count: len(data)},
		}
	case jsonvalue.Object:
		found := findArrays(doc, "")
		if len(found) > 0 {
			best := 0
			for i, c := range found {
				if c.Count > found[best].Count {
					best = i
				}
			}
			data := found[best].value.Items()
			alternatives := make([]Candidate, 0, len(found)-1)
			for i, c := range found {
				if i != best {
					alternatives = append(alternatives, c.Candidate)
				}
			}
			return Analysis{
				Data:      data,
				Structure: arrayStructure(data),
				Metadata: Metadata{
					Kind:         NestedArray,
					Path:         found[best].Path,
					Count:        len(data),
					Alternatives: alternatives,
				},
			}
		}
		return Analysis{
			Data:      []jsonvalue.Value{doc},
			Structure: objectStructure(doc),
			Metadata:  Metadata{Kind: SingleObject, Count: 1},
		}
	default:
		record := jsonvalue.ObjectValue(jsonvalue.Member{Key: primitiveKey, Value: doc})
		return Analysis{
			Data:      []jsonvalue.Value{record},
			Structure: objectStructure(record),
			Metadata:  Metadata{Kind: Primitive, Count: 1},
		}
	}
}

// Candidates lista os arrays do documento, do maior para o menor.
func Candidates(doc jsonvalue.Value) []Candidate {
	if doc.Kind() == jsonvalue.Array {
		return []Candidate{{Path: RootPath, Count: doc.Len()}}
	}
	found := findArrays(doc, "")
	out := make([]Candidate, len(found))
	for i, c := range found {
		out[i] = c.Candidate
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

type foundArray struct {
	Candidate
	value jsonvalue.Value
}

// findArrays percorre o objeto em profundidade, sem descer dentro de arrays.
func findArrays(obj jsonvalue.Value, prefix string) []foundArray {
	var out []foundArray
	for _, m := range obj.Members() {
		path := m.Key
		if prefix != "" {
			path = prefix + "." + m.Key
		}
		switch m.Value.Kind() {
		case jsonvalue.Array:
			out = append(out, foundArray{
				Candidate: Candidate{Path: path, Count: m.Value.Len()},
				value:     m.Value,
			})
		case jsonvalue.Object:
			out = append(out, findArrays(m.Value, path)...)
		}
	}
	return out
}

// typePrecedence resolve conflitos de tipo entre registros.
var typePrecedence = []jsonvalue.Kind{
	jsonvalue.Object, jsonvalue.Array, jsonvalue.String, jsonvalue.Number, jsonvalue.Bool,
}

func arrayStructure(data []jsonvalue.Value) []Column {
	sample := data
	if len(sample) > structureSampleSize {
		sample = sample[:structureSampleSize]
	}

	var order []string
	seen := map[string]bool{}
	for _, item := range sample {
		for _, m := range item.Members() {
			if !seen[m.Key] {
				seen[m.Key] = true
				order = append(order, m.Key)
			}
		}
	}

	columns := make([]Column, 0, len(order))
	for _, key := range order {
		col := Column{Name: key, Sample: []jsonvalue.Value{}}
		types := map[jsonvalue.Kind]bool{}
		for _, item := range sample {
			v, ok := item.Get(key)
			if !ok {
				continue
			}
			if v.IsNull() {
				col.Nullable = true
				continue
			}
			types[v.Kind()] = true
			if len(col.Sample) < columnSampleSize {
				col.Sample = append(col.Sample, v)
			}
		}
		col.Type = dominantType(types)
		columns = append(columns, col)
	}
	return columns
}

func objectStructure(obj jsonvalue.Value) []Column {
	columns := make([]Column, 0, obj.Len())
	for _, m := range obj.Members() {
		columns = append(columns, Column{
			Name:     m.Key,
			Type:     m.Value.Kind().String(),
			Nullable: m.Value.IsNull(),
			Sample:   []jsonvalue.Value{m.Value},
		})
	}
	return columns
}

func dominantType(types map[jsonvalue.Kind]bool) string {
	switch len(types) {
	case 0:
		return jsonvalue.Null.String()
	case 1:
		for k := range types {
			return k.String()
		}
	}
	for _, k := range typePrecedence {
		if types[k] {
			return k.String()
		}
	}
	return "mixed"
}
