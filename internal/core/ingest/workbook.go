package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"autos-converter/internal/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Format é o formato binário/textual de uma planilha.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeXLS  = "application/vnd.ms-excel"
	mimeCSV  = "text/csv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFormat decide o formato pela extensão, depois pelo content-type declarado e,
// por último, pelo conteúdo do arquivo.
func DetectFormat(filename, contentType string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	}

	if ct := strings.ToLower(strings.TrimSpace(contentType)); ct != "" {
		if semi := strings.IndexByte(ct, ';'); semi >= 0 {
			ct = strings.TrimSpace(ct[:semi])
		}
		switch ct {
		case mimeXLSX:
			return FormatXLSX, nil
		case mimeXLS:
			return FormatXLS, nil
		case mimeCSV, "application/csv":
			return FormatCSV, nil
		}
	}

	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		switch {
		case m.Is(mimeXLSX):
			return FormatXLSX, nil
		case m.Is(mimeXLS):
			return FormatXLS, nil
		case m.Is(mimeCSV), m.Is("text/plain"):
			return FormatCSV, nil
		}
	}
	return "", fmt.Errorf("%w: selecione um arquivo Excel ou CSV válido (%s)", domain.ErrInvalidFormat, filename)
}

// LoadWorkbook lê todas as linhas da primeira planilha.
func LoadWorkbook(format Format, data []byte) ([][]string, error) {
	switch format {
	case FormatXLSX:
		return readXLSX(data)
	case FormatXLS:
		rows, err := readXLS(data)
		if err != nil {
			// arquivos .xls às vezes são xlsx renomeados
			if rowsX, errX := readXLSX(data); errX == nil {
				return rowsX, nil
			}
			return nil, err
		}
		return rows, nil
	case FormatCSV:
		return readCSV(data)
	default:
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidFormat, format)
	}
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao abrir arquivo .xlsx: %v", domain.ErrInvalidFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: o arquivo .xlsx não contém planilhas", domain.ErrEmptyData)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao ler planilha %q: %v", domain.ErrInvalidFormat, sheets[0], err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao abrir arquivo .xls: %v", domain.ErrInvalidFormat, err)
	}
	if len(workbook.GetSheets()) == 0 {
		return nil, fmt.Errorf("%w: o arquivo .xls não contém planilhas", domain.ErrEmptyData)
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao obter planilha do arquivo .xls: %v", domain.ErrInvalidFormat, err)
	}

	var rows [][]string
	for _, row := range sheet.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// readCSV aceita UTF-8 (com ou sem BOM) ou ISO-8859-1, separado por ';' ou ','.
func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var src io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	reader := csv.NewReader(src)
	reader.Comma = detectDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao ler CSV: %v", domain.ErrInvalidFormat, err)
	}
	return rows, nil
}

// detectDelimiter compara ';' e ',' na primeira linha. Empate fica com ';'.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{','}) > bytes.Count(line, []byte{';'}) {
		return ','
	}
	return ';'
}
