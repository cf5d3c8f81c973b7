// package domain/models.go
package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// SourceSystem identifica o sistema de gestão de revendas que gerou o arquivo de origem.
type SourceSystem string

// Sistemas de origem suportados.
const (
	SourceRevendaMais SourceSystem = "Revenda Mais"
	SourceAutoConf    SourceSystem = "AutoConf"
	SourceAutoCerto   SourceSystem = "AutoCerto"
)

// ConversionType define o layout de destino da conversão.
type ConversionType string

// Tipos de conversão suportados.
const (
	TypeVeiculos            ConversionType = "Veículos"
	TypeClientes            ConversionType = "Clientes"
	TypeTitulosFinanceiros  ConversionType = "Titulos Financeiros"
	TypeReceitasDespesasVei ConversionType = "Receitas e Despesas Veículos"
)

// Position indica se os veículos são de estoque atual ou histórico de vendas.
type Position string

// Posições de veículos.
const (
	PositionEstoque   Position = "Estoque"
	PositionHistorico Position = "Histórico"
)

// SourceKind indica se os dados de veículos vieram de planilha ou JSON.
type SourceKind string

// Tipos de fonte.
const (
	KindPlanilha SourceKind = "Planilha"
	KindJSON     SourceKind = "JSON"
)

// ConversionContext reúne os parâmetros imutáveis de uma execução de conversão.
type ConversionContext struct {
	Source       SourceSystem
	Type         ConversionType
	Position     Position
	Kind         SourceKind
	CNPJ         string
	MarkSupplier bool
}

// SupportedSources lista os sistemas de origem conhecidos.
func SupportedSources() []SourceSystem {
	return []SourceSystem{SourceRevendaMais, SourceAutoConf, SourceAutoCerto}
}

// SupportedTypes lista os tipos de conversão conhecidos.
func SupportedTypes() []ConversionType {
	return []ConversionType{TypeVeiculos, TypeClientes, TypeTitulosFinanceiros, TypeReceitasDespesasVei}
}

// Validate confere se a combinação de parâmetros é aceita pelos conversores.
func (c ConversionContext) Validate() error {
	if !containsSource(c.Source) {
		return invalidContext("origem desconhecida: %q", c.Source)
	}
	if !containsType(c.Type) {
		return invalidContext("tipo de conversão não suportado: %q", c.Type)
	}
	if c.Type == TypeVeiculos {
		if c.Position != PositionEstoque && c.Position != PositionHistorico {
			return invalidContext("posição dos veículos inválida: %q", c.Position)
		}
	}
	if c.Kind == KindJSON && c.Type != TypeVeiculos {
		return invalidContext("conversão JSON não implementada para: %s", c.Type)
	}
	return nil
}

func containsSource(s SourceSystem) bool {
	for _, known := range SupportedSources() {
		if known == s {
			return true
		}
	}
	return false
}

func containsType(t ConversionType) bool {
	for _, known := range SupportedTypes() {
		if known == t {
			return true
		}
	}
	return false
}

// --- Registros ---

// Field é um par chave/valor de um registro normalizado.
type Field struct {
	Key   string
	Value interface{}
}

// NormalizedRecord é uma linha de saída com chaves em ordem fixa, pronta para a planilha.
type NormalizedRecord []Field

// Get retorna o valor associado à chave.
func (r NormalizedRecord) Get(key string) (interface{}, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Has indica se a chave está presente no registro.
func (r NormalizedRecord) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Keys retorna as chaves na ordem do registro.
func (r NormalizedRecord) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// MarshalJSON serializa o registro como objeto preservando a ordem das chaves.
func (r NormalizedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// --- Dados tabulares ---

// Table é a representação retangular de uma planilha importada.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnIndex mapeia o nome da coluna para sua posição na linha.
type ColumnIndex map[string]int

// Index constrói o índice de colunas. Nomes duplicados ficam com a última posição.
func (t Table) Index() ColumnIndex {
	idx := make(ColumnIndex, len(t.Columns))
	for i, col := range t.Columns {
		idx[col] = i
	}
	return idx
}

// Cell retorna o valor da coluna na linha, ou "" quando a coluna não existe.
func (ci ColumnIndex) Cell(row []string, column string) string {
	i, ok := ci[column]
	if !ok || i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// --- Resultados ---

// ColumnSuggestion aponta a coluna mais parecida para uma coluna esperada ausente.
type ColumnSuggestion struct {
	Expected  string `json:"expected"`
	Suggested string `json:"suggested,omitempty"`
}

// ConversionResult é o produto de uma conversão: registros e a planilha gerada.
type ConversionResult struct {
	ID        string             `json:"id"`
	FileName  string             `json:"file_name"`
	Content   []byte             `json:"-"`
	Records   []NormalizedRecord `json:"records"`
	Warnings  []string           `json:"warnings,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// SpreadsheetPreview é o espelho da planilha importada.
type SpreadsheetPreview struct {
	Table       Table              `json:"table"`
	Suggestions []ColumnSuggestion `json:"suggestions,omitempty"`
}
