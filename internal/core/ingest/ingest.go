// Package ingest transforma planilhas enviadas (xlsx, xls, csv) em uma tabela retangular.
package ingest

import (
	"fmt"
	"strings"

	"autos-converter/internal/domain"
)

// Ingest completa cada linha com células vazias até o tamanho do cabeçalho.
// Células excedentes são mantidas. As linhas de entrada não são alteradas.
func Ingest(header []string, rows [][]string) domain.Table {
	columns := make([]string, len(header))
	copy(columns, header)

	out := make([][]string, len(rows))
	for i, row := range rows {
		size := len(row)
		if size < len(columns) {
			size = len(columns)
		}
		padded := make([]string, size)
		copy(padded, row)
		out[i] = padded
	}
	return domain.Table{Columns: columns, Rows: out}
}

// FromRows usa a primeira linha como cabeçalho e as demais como dados.
func FromRows(rows [][]string) (domain.Table, error) {
	if len(rows) == 0 {
		return domain.Table{}, fmt.Errorf("%w: nenhuma planilha indexada", domain.ErrEmptyData)
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	return Ingest(header, rows[1:]), nil
}

// Read detecta o formato do arquivo, lê a primeira planilha e monta a tabela.
func Read(filename, contentType string, data []byte) (domain.Table, error) {
	if len(data) == 0 {
		return domain.Table{}, fmt.Errorf("%w: arquivo vazio", domain.ErrEmptyData)
	}
	format, err := DetectFormat(filename, contentType, data)
	if err != nil {
		return domain.Table{}, err
	}
	rows, err := LoadWorkbook(format, data)
	if err != nil {
		return domain.Table{}, err
	}
	return FromRows(rows)
}
