package fields

import (
	"testing"
	"time"

	"autos-converter/internal/core/jsonvalue"
	"autos-converter/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Parse([]byte(raw))
	require.NoError(t, err)
	return v
}

func TestExtract_FirstNonEmptyAliasWins(t *testing.T) {
	record := mustParse(t, `{"model":"","MODELO":null,"title":"  Onix LT  ","name":"ignorado"}`)

	assert.Equal(t, "Onix LT", Extract(record, []string{"modelo", "model", "MODELO", "title", "name"}))
	assert.Equal(t, "", Extract(record, []string{"inexistente"}))
}

func TestExtract_NestedAndComposite(t *testing.T) {
	record := mustParse(t, `{
		"fipe": {"codigo": "001234-5"},
		"marca": {"id": 7, "name": "Fiat"},
		"cor": {"hex": "#fff"},
		"opcionais": ["Ar", "Direção", 3]
	}`)

	assert.Equal(t, "001234-5", Extract(record, []string{"fipe.codigo"}))
	assert.Equal(t, "Fiat", Extract(record, []string{"marca"}))
	assert.Equal(t, `{"hex":"#fff"}`, Extract(record, []string{"cor"}))
	assert.Equal(t, "Ar, Direção, 3", Extract(record, []string{"opcionais"}))
}

func TestExtract_NumbersAndBooleans(t *testing.T) {
	record := mustParse(t, `{"km": 15000, "valor": 45990.5, "blindado": false}`)

	assert.Equal(t, "15000", Get(record, Km))
	assert.Equal(t, "45990.5", Get(record, ValorVenda))
	assert.Equal(t, "false", Extract(record, []string{"blindado"}))
}

func TestExtract_MissingFieldIsAlwaysEmpty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("apelidos ausentes retornam vazio", prop.ForAll(
		func(aliases []string) bool {
			return Extract(jsonvalue.ObjectValue(), aliases) == "" &&
				Extract(jsonvalue.NullValue(), aliases) == ""
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.TestingRun(t)
}

func TestGet_AliasPriority(t *testing.T) {
	rec := mustParse(t, `{"title":"Titulo","model":"Argo","modelo":""}`)
	assert.Equal(t, "Argo", Get(rec, Modelo))

	rec = mustParse(t, `{"title":"Titulo","model":"Argo","modelo":"Cronos"}`)
	assert.Equal(t, "Cronos", Get(rec, Modelo))
	assert.Equal(t, "", Get(rec, Placa))
}

func TestNormalizeTransmission(t *testing.T) {
	assert.Equal(t, "Automatico", NormalizeTransmission("DSG automatizado"))
	assert.Equal(t, "Automatico", NormalizeTransmission("Automático 6 marchas"))
	assert.Equal(t, "Automatico", NormalizeTransmission("CVT"))
	assert.Equal(t, "Manual", NormalizeTransmission("5 marchas manual"))
	assert.Equal(t, "Manual", NormalizeTransmission("xyz-unknown"))
	assert.Equal(t, "", NormalizeTransmission(""))
}

func TestNormalizeTransmission_Range(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("resultado é sempre um dos valores aceitos", prop.ForAll(
		func(s string) bool {
			switch NormalizeTransmission(s) {
			case "", TransmissionAuto, TransmissionManual:
				return true
			}
			return false
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestNormalizeFuel(t *testing.T) {
	assert.Equal(t, "ALCOOL/GASOLINA", NormalizeFuel("FLEX"))
	assert.Equal(t, "ALCOOL/GASOLINA", NormalizeFuel("Álcool/Gasolina"))
	assert.Equal(t, "ALCOOL/GASOLINA", NormalizeFuel("Gasolina e Álcool (Flex)"))
	assert.Equal(t, "DIESEL", NormalizeFuel("diesel"))
	assert.Equal(t, "", NormalizeFuel(""))
}

func TestNormalizeDateIn(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	assert.Equal(t, "05/03/2024 00:00:00", NormalizeDateIn("2024-03-05", loc))
	assert.Equal(t, "05/03/2024 07:20:30", NormalizeDateIn("2024-03-05T10:20:30Z", loc))
	assert.Equal(t, "05/03/2024 10:20:30", NormalizeDateIn("2024-03-05 10:20:30", loc))
	assert.Equal(t, "21/11/2024 11:25:47", NormalizeDateIn("Nov 21, 2024 11:25:47 AM", loc))
	assert.Equal(t, "21/11/2024 00:00:00", NormalizeDateIn("21/11/2024", loc))
	assert.Equal(t, "amanhã", NormalizeDateIn("amanhã", loc))
	assert.Equal(t, "", NormalizeDateIn("", loc))
}

func TestNormalizeDate_NeverEmptiesInput(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("entrada não vazia nunca vira vazio", prop.ForAll(
		func(s string) bool {
			return NormalizeDate(s) != ""
		},
		gen.AnyString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.TestingRun(t)
}

func TestNormalizeDateIn_SlashIsDayFirst(t *testing.T) {
	assert.Equal(t, "03/04/2024 00:00:00", NormalizeDateIn("03/04/2024", time.UTC))
	assert.Equal(t, "13/01/2024 00:00:00", NormalizeDateIn("13/01/2024", time.UTC))
	assert.Equal(t, "01/13/2024", NormalizeDateIn("01/13/2024", time.UTC))
}

func TestClassifyPersonType(t *testing.T) {
	assert.Equal(t, PersonCompany, ClassifyPersonType("12345678000199"))
	assert.Equal(t, PersonIndividual, ClassifyPersonType("123.456.789-00"))
	assert.Equal(t, PersonIndividual, ClassifyPersonType(""))
	for _, s := range []string{"NaN", "nan", "Inf", "-Infinity", "+inf"} {
		assert.Equal(t, PersonIndividual, ClassifyPersonType(s), s)
	}
}

func TestSmallNormalizers(t *testing.T) {
	assert.Equal(t, "PROPRIO", NormalizeVehicleCondition("Consignado"))
	assert.Equal(t, 0, StatusFromPosition(domain.PositionEstoque))
	assert.Equal(t, 1, StatusFromPosition(domain.PositionHistorico))
	assert.Equal(t, "01310100", CleanDocumentID("01310-100"))
	assert.Equal(t, "M", GenderCode("masculino"))
	assert.Equal(t, "F", GenderCode("Feminino"))
	assert.Equal(t, "O", GenderCode("não informado"))
	assert.Equal(t, "O", GenderCode(""))
	assert.Equal(t, "Rua das Flores", StreetLine("Rua das Flores , apto 12"))
	assert.Equal(t, "PAGAR", NormalizeOperation("Pagar"))
	assert.Equal(t, "RECEBER", NormalizeOperation("Receber"))
	assert.Equal(t, "Estorno", NormalizeOperation("Estorno"))
	assert.Equal(t, "10/01/2024 00:00:00", AppendMidnight("10/01/2024"))
	assert.Equal(t, "", AppendMidnight(""))
	assert.Equal(t, "true", Settled("10/01/2024"))
	assert.Equal(t, "false", Settled(""))
	assert.Equal(t, "00.000.000/0000-00", CounterpartyDocument(""))
}

func TestSplitModel(t *testing.T) {
	model, complement := SplitModel("Corolla XEI 2.0", "")
	assert.Equal(t, "Corolla", model)
	assert.Equal(t, "XEI 2.0", complement)

	model, complement = SplitModel("Onix", "LTZ")
	assert.Equal(t, "Onix", model)
	assert.Equal(t, "LTZ", complement)

	_, complement = SplitModel("Onix 1.4 LTZ", "LTZ")
	assert.Equal(t, "1.4 LTZ", complement)

	model, complement = SplitModel("", "Sport")
	assert.Equal(t, "", model)
	assert.Equal(t, "Sport", complement)
}

func TestPhoneFields_OmitsEmptyPairs(t *testing.T) {
	got := domain.NormalizedRecord(PhoneFields("11999990000", "", "1133334444"))

	assert.Equal(t, []string{"Telefone1", "Tipo Telefone 1", "Telefone3", "Tipo Telefone 3"}, got.Keys())
	v, _ := got.Get("Tipo Telefone 3")
	assert.Equal(t, "Celular", v)
	assert.Empty(t, PhoneFields("", "", ""))
}

func TestExtractImageLinks(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"array", `{"fotos":["http://img/1.jpg"," http://img/2.jpg "]}`, `"http://img/1.jpg", "http://img/2.jpg"`},
		{"objeto", `{"images":{"capa":"https://img/c.jpg","legenda":"frente"}}`, `"https://img/c.jpg"`},
		{"url única", `{"image_url":"https://img/u.jpg"}`, `"https://img/u.jpg"`},
		{"lista separada por vírgula", `{"imagens":"http://a/1.jpg, http://a/2.jpg"}`, `"http://a/1.jpg", "http://a/2.jpg"`},
		{"texto sem url", `{"imagens":"sem fotos"}`, ``},
		{"ausente", `{"modelo":"Onix"}`, ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractImageLinks(mustParse(t, tc.raw)))
		})
	}
}
