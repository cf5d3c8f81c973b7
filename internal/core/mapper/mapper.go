package mapper

import (
	"fmt"

	"autos-converter/internal/core/fields"
	"autos-converter/internal/core/jsonvalue"
	"autos-converter/internal/domain"

	"github.com/schollz/closestmatch"
)

type tableMapper func(domain.Table, domain.ConversionContext) []domain.NormalizedRecord

// tableMappers registra os mapeadores de planilha por tipo de conversão. O sistema de
// origem escolhe apenas o layout de colunas (ColumnsFor).
var tableMappers = map[domain.ConversionType]tableMapper{
	domain.TypeVeiculos:            MapVeiculos,
	domain.TypeClientes:            MapClientes,
	domain.TypeTitulosFinanceiros:  MapTitulosFinanceiros,
	domain.TypeReceitasDespesasVei: MapReceitasDespesas,
}

// Supports indica se existe mapeador de planilha para o tipo.
func Supports(t domain.ConversionType) bool {
	_, ok := tableMappers[t]
	return ok
}

// MapTable escolhe o mapeador pelo contexto e converte a tabela.
func MapTable(table domain.Table, ctx domain.ConversionContext) ([]domain.NormalizedRecord, error) {
	if !Supports(ctx.Type) {
		return nil, fmt.Errorf("%w: tipo de conversão não suportado: %s", domain.ErrInvalidContext, ctx.Type)
	}
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("%w: a planilha não possui linhas de dados", domain.ErrEmptyData)
	}
	return tableMappers[ctx.Type](table, ctx), nil
}

// MapJSON converte registros JSON. Somente veículos possuem layout JSON.
func MapJSON(records []jsonvalue.Value, ctx domain.ConversionContext) ([]domain.NormalizedRecord, error) {
	if ctx.Type != domain.TypeVeiculos {
		return nil, fmt.Errorf("%w: conversão JSON não implementada para: %s", domain.ErrInvalidContext, ctx.Type)
	}
	return MapVeiculosJSON(records, ctx)
}

// SuggestColumns aponta, para cada coluna esperada ausente no cabeçalho, a coluna mais
// parecida entre as presentes (comparação sem acentos e sem caixa).
func SuggestColumns(table domain.Table, ctx domain.ConversionContext) []domain.ColumnSuggestion {
	cols := newColumnLookup(table)

	byFolded := make(map[string]string, len(table.Columns))
	var keys []string
	for _, col := range table.Columns {
		k := fields.Fold(col)
		if k == "" {
			continue
		}
		if _, seen := byFolded[k]; !seen {
			keys = append(keys, k)
		}
		byFolded[k] = col
	}

	var cm *closestmatch.ClosestMatch
	if len(keys) > 0 {
		cm = closestmatch.New(keys, []int{2, 3})
	}

	var out []domain.ColumnSuggestion
	for _, expected := range ExpectedColumns(ctx.Source, ctx.Type) {
		if cols.has(expected) {
			continue
		}
		s := domain.ColumnSuggestion{Expected: expected}
		if cm != nil {
			if best := cm.Closest(fields.Fold(expected)); best != "" {
				s.Suggested = byFolded[best]
			}
		}
		out = append(out, s)
	}
	return out
}
