package fields

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"autos-converter/internal/domain"
)

// Valores fixos dos layouts de destino.
const (
	FuelFlex            = "ALCOOL/GASOLINA"
	TransmissionAuto    = "Automatico"
	TransmissionManual  = "Manual"
	ConditionProprio    = "PROPRIO"
	PersonIndividual    = "Física"
	PersonCompany       = "Jurídica"
	PhoneTypeLabel      = "Celular"
	PlaceholderDocument = "00.000.000/0000-00"
	midnightSuffix      = " 00:00:00"
	outputDateLayout    = "02/01/2006 15:04:05"
)

// dateLayouts são tentados em ordem. Datas com barras seguem o padrão brasileiro (dia/mês).
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"Jan 2, 2006 3:04:05 PM",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
}

var (
	autoTokens   = []string{"automatico", "automatic", "auto", "cvt", "dsg", "tiptronic", "multitronic"}
	manualTokens = []string{"manual", "man", "stick", "mt"}
)

// NormalizeDate formata uma data como DD/MM/YYYY HH:MM:SS no horário local.
// Datas numéricas com barra são sempre lidas como dia/mês/ano, nunca mês/dia.
// Entradas que não puderem ser interpretadas voltam inalteradas.
func NormalizeDate(input string) string {
	return NormalizeDateIn(input, time.Local)
}

// NormalizeDateIn é NormalizeDate com fuso explícito.
func NormalizeDateIn(input string, loc *time.Location) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return input
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc).Format(outputDateLayout)
		}
	}
	return input
}

// NormalizeFuel converte variações de flex para ALCOOL/GASOLINA e o resto para maiúsculas.
func NormalizeFuel(input string) string {
	if input == "" {
		return ""
	}
	folded := fold(input)
	if strings.Contains(folded, "flex") || strings.Contains(folded, "alcool/gasolina") {
		return FuelFlex
	}
	return strings.ToUpper(input)
}

// NormalizeTransmission reduz o câmbio a Automatico ou Manual. Sem indicação clara, Manual.
func NormalizeTransmission(input string) string {
	folded := fold(input)
	if folded == "" {
		return ""
	}
	if containsAny(folded, autoTokens) {
		return TransmissionAuto
	}
	if containsAny(folded, manualTokens) {
		return TransmissionManual
	}
	return TransmissionManual
}

// NormalizeVehicleCondition classifica todo veículo como próprio, qualquer que seja a entrada.
func NormalizeVehicleCondition(string) string {
	return ConditionProprio
}

// StatusFromPosition retorna 0 para estoque e 1 para qualquer outra posição.
func StatusFromPosition(p domain.Position) int {
	if p == domain.PositionEstoque {
		return 0
	}
	return 1
}

// ClassifyPersonType devolve Física quando o documento não é um número finito e Jurídica caso contrário.
func ClassifyPersonType(taxID string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(taxID), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return PersonIndividual
	}
	return PersonCompany
}

// CleanDocumentID remove hífens (usado em CEPs).
func CleanDocumentID(value string) string {
	return strings.ReplaceAll(value, "-", "")
}

// GenderCode usa a primeira letra do sexo informado: M, F ou O.
func GenderCode(value string) string {
	r, _ := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return "O"
	}
	switch code := strings.ToUpper(string(r)); code {
	case "M", "F":
		return code
	default:
		return "O"
	}
}

// StreetLine descarta o que vier depois da primeira vírgula do logradouro.
func StreetLine(value string) string {
	before, _, _ := strings.Cut(value, ",")
	return strings.TrimSpace(before)
}

// SplitModel separa o código do modelo (primeira palavra) do complemento. Uma versão
// informada é acrescentada ao complemento quando ainda não faz parte dele.
func SplitModel(modelo, versao string) (model, complement string) {
	if modelo == "" {
		return "", versao
	}
	model, complement, _ = strings.Cut(modelo, " ")
	if versao != "" && !strings.Contains(complement, versao) {
		if complement == "" {
			complement = versao
		} else {
			complement = complement + " " + versao
		}
	}
	return model, complement
}

// NormalizeOperation traduz Pagar/Receber para o enumerado de destino.
func NormalizeOperation(value string) string {
	switch value {
	case "Pagar":
		return "PAGAR"
	case "Receber":
		return "RECEBER"
	default:
		return value
	}
}

// AppendMidnight acrescenta " 00:00:00" a datas presentes.
func AppendMidnight(date string) string {
	if date == "" {
		return ""
	}
	return date + midnightSuffix
}

// Settled indica quitação pela presença da data de pagamento/recebimento.
func Settled(paymentDate string) string {
	if paymentDate != "" {
		return "true"
	}
	return "false"
}

// CounterpartyDocument usa o documento padrão quando o da contraparte estiver ausente.
func CounterpartyDocument(doc string) string {
	if doc == "" {
		return PlaceholderDocument
	}
	return doc
}

// PhoneFields monta os pares telefone/tipo. Pares sem número são omitidos por completo.
func PhoneFields(cell, home, work string) []domain.Field {
	pairs := []struct {
		numberKey, typeKey, value string
	}{
		{"Telefone1", "Tipo Telefone 1", cell},
		{"Telefone 2", "Tipo Telefone 2", home},
		{"Telefone3", "Tipo Telefone 3", work},
	}
	var out []domain.Field
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		out = append(out,
			domain.Field{Key: p.numberKey, Value: p.value},
			domain.Field{Key: p.typeKey, Value: PhoneTypeLabel},
		)
	}
	return out
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
