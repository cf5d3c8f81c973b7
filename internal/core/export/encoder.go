// Package export grava os registros normalizados em uma planilha xlsx e nomeia o arquivo.
package export

import (
	"fmt"
	"strings"
	"time"

	"autos-converter/internal/domain"

	"github.com/xuri/excelize/v2"
)

// SheetName é o nome da única aba gerada.
const SheetName = "Output"

const fileDateLayout = "20060102_1504"

// Headers começa pelas colunas do layout de destino, na ordem dada, e acrescenta as chaves
// fora do layout na ordem em que aparecem pela primeira vez nos registros.
func Headers(schema []string, records []domain.NormalizedRecord) []string {
	headers := make([]string, 0, len(schema))
	seen := map[string]bool{}
	for _, key := range schema {
		if !seen[key] {
			seen[key] = true
			headers = append(headers, key)
		}
	}
	for _, rec := range records {
		for _, f := range rec {
			if !seen[f.Key] {
				seen[f.Key] = true
				headers = append(headers, f.Key)
			}
		}
	}
	return headers
}

// Encode gera o xlsx com a aba "Output": cabeçalho na primeira linha e um registro por linha.
// schema fixa as colunas e a ordem do cabeçalho. Chaves ausentes em um registro viram células vazias.
func Encode(records []domain.NormalizedRecord, schema []string) ([]byte, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyPayload
	}
	headers := Headers(schema, records)

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return nil, fmt.Errorf("erro ao renomear planilha: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return nil, fmt.Errorf("erro ao preparar escrita da planilha: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for i, rec := range records {
		row := make([]interface{}, len(headers))
		for j, h := range headers {
			if v, ok := rec.Get(h); ok && v != nil {
				row[j] = v
			} else {
				row[j] = ""
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("erro ao escrever linha %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar planilha: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar arquivo xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName monta Exportacao_<tipo>_<posicao>_<AAAAMMDD_HHMM>_<cnpj>.xlsx. Veículos vindos de
// JSON usam o segmento fixo Veiculos_JSON.
func FileName(ctx domain.ConversionContext, now time.Time) string {
	stamp := now.Format(fileDateLayout)
	if ctx.Type == domain.TypeVeiculos && ctx.Kind == domain.KindJSON {
		return fmt.Sprintf("Exportacao_Veiculos_JSON_%s_%s_%s.xlsx", ctx.Position, stamp, ctx.CNPJ)
	}
	kind := strings.Join(strings.Fields(string(ctx.Type)), "_")
	return fmt.Sprintf("Exportacao_%s_%s_%s_%s.xlsx", kind, ctx.Position, stamp, ctx.CNPJ)
}
