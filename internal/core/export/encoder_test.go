package export

import (
	"bytes"
	"testing"
	"time"

	"autos-converter/internal/core/mapper"
	"autos-converter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func record(pairs ...interface{}) domain.NormalizedRecord {
	var rec domain.NormalizedRecord
	for i := 0; i+1 < len(pairs); i += 2 {
		rec = append(rec, domain.Field{Key: pairs[i].(string), Value: pairs[i+1]})
	}
	return rec
}

// trimRight descarta células vazias no fim da linha, que o leitor pode ou não devolver.
func trimRight(row []string) []string {
	for len(row) > 0 && row[len(row)-1] == "" {
		row = row[:len(row)-1]
	}
	return row
}

func TestEncode_RoundTrip(t *testing.T) {
	records := []domain.NormalizedRecord{
		record("ID", "", "STATUS", 0, "MODELO", "Corolla", "COMPLEMENTO", "XEI 2.0"),
		record("ID", "", "STATUS", 1, "MODELO", "Onix", "COMPLEMENTO", ""),
		record("ID", "", "STATUS", 0, "MODELO", "Argo", "COMPLEMENTO", "Drive"),
	}

	data, err := Encode(records, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)

	require.Len(t, rows, len(records)+1)
	assert.Equal(t, []string{"ID", "STATUS", "MODELO", "COMPLEMENTO"}, rows[0])
	assert.Equal(t, []string{"", "0", "Corolla", "XEI 2.0"}, trimRight(rows[1]))
	assert.Equal(t, []string{"", "1", "Onix"}, trimRight(rows[2]))
	assert.Equal(t, []string{"", "0", "Argo", "Drive"}, trimRight(rows[3]))
}

func TestEncode_HeaderFollowsSchema(t *testing.T) {
	schema := mapper.SchemaKeys(domain.TypeClientes, domain.KindPlanilha)
	records := []domain.NormalizedRecord{
		record("Cod", "", "Nome Completo", "Ana", "IE/RG", "", "Fornecedor", ""),
		record("Cod", "", "Nome Completo", "Bia", "IE/RG", "", "Telefone1", "1199", "Tipo Telefone 1", "Celular", "Fornecedor", "Sim"),
	}

	assert.Equal(t, schema, Headers(schema, records))

	data, err := Encode(records, schema)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, schema, rows[0])

	cell := func(row []string, key string) string {
		for i, h := range schema {
			if h == key && i < len(row) {
				return row[i]
			}
		}
		return ""
	}
	assert.Equal(t, "Ana", cell(rows[1], "Nome Completo"))
	assert.Equal(t, "", cell(rows[1], "Telefone1"))
	assert.Equal(t, "1199", cell(rows[2], "Telefone1"))
	assert.Equal(t, "Celular", cell(rows[2], "Tipo Telefone 1"))
	assert.Equal(t, "Sim", cell(rows[2], "Fornecedor"))
}

func TestEncode_NoPhonesKeepsPhoneColumns(t *testing.T) {
	schema := mapper.SchemaKeys(domain.TypeClientes, domain.KindPlanilha)
	records := []domain.NormalizedRecord{
		record("Cod", "", "Nome Completo", "Ana", "Fornecedor", ""),
	}

	data, err := Encode(records, schema)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, schema, rows[0])
	assert.Contains(t, rows[0], "Tipo Telefone 3")
}

func TestHeaders_ExtraKeysAfterSchema(t *testing.T) {
	records := []domain.NormalizedRecord{
		record("B", 1, "X", 2),
		record("A", 1, "Y", 3, "X", 4),
	}
	assert.Equal(t, []string{"A", "B", "X", "Y"}, Headers([]string{"A", "B"}, records))
	assert.Equal(t, []string{"B", "X", "A", "Y"}, Headers(nil, records))
}

func TestEncode_EmptyPayload(t *testing.T) {
	_, err := Encode(nil, []string{"ID"})
	assert.ErrorIs(t, err, domain.ErrEmptyPayload)
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 7, 0, 0, time.UTC)

	ctx := domain.ConversionContext{
		Type:     domain.TypeTitulosFinanceiros,
		Position: domain.PositionEstoque,
		CNPJ:     "12345678000190",
	}
	assert.Equal(t, "Exportacao_Titulos_Financeiros_Estoque_20240305_0907_12345678000190.xlsx", FileName(ctx, now))

	ctx = domain.ConversionContext{
		Type:     domain.TypeVeiculos,
		Kind:     domain.KindJSON,
		Position: domain.PositionHistorico,
		CNPJ:     "123",
	}
	assert.Equal(t, "Exportacao_Veiculos_JSON_Histórico_20240305_0907_123.xlsx", FileName(ctx, now))

	ctx.Kind = domain.KindPlanilha
	assert.Equal(t, "Exportacao_Veículos_Histórico_20240305_0907_123.xlsx", FileName(ctx, now))
}
