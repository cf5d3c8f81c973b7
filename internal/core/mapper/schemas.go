// Package mapper converte linhas de planilha e registros JSON nos layouts fixos de destino
// (veículos, clientes, títulos financeiros e receitas/despesas).
package mapper

import "autos-converter/internal/domain"

// Colunas de destino de veículos.
const (
	colID               = "ID"
	colStatus           = "STATUS"
	colDataEntrada      = "DATA DE ENTRADA"
	colDataSaida        = "DATA E HORA DE SAIDA"
	colMarca            = "MARCA"
	colModelo           = "MODELO"
	colComplemento      = "COMPLEMENTO"
	colChassi           = "CHASSI"
	colRenavam          = "RENAVAM"
	colNumeroMotor      = "NUMERO MOTOR"
	colAnoFab           = "ANO FAB."
	colAnoMod           = "ANO MOD"
	colCor              = "COR"
	colCombustivel      = "COMBUSTIVEL"
	colPlaca            = "PLACA"
	colTipo             = "TIPO"
	colValorCompra      = "VALOR COMPRA"
	colValorAVista      = "VALOR A VISTA"
	colValorVenda       = "VALOR DE VENDA"
	colNomeProprietario = "NOME PROPRIETARIO ENTRADA"
	colDocProprietario  = "CPF/CNPJ PROPRIETARIO ENTRADA"
	colKm               = "KM"
	colPortas           = "PORTAS"
	colCambio           = "CAMBIO"
	colCnpjRevenda      = "CNPJ REVENDA"
	colEstado           = "ESTADO_CONVERSACAO"
	colCodigoFipe       = "CODIGO FIPE"
	colValorFipe        = "VALOR FIPE"
	colOpcionais        = "OPCIONAIS"
	colLinkImagens      = "LINK IMAGENS"
)

// estadoUsado é o estado de conservação gravado em todos os veículos.
const estadoUsado = "Usado"

// Placeholders das contas de títulos financeiros: exigem consulta manual.
const (
	placeholderConta           = "t_conta | Pode ser solicitada para o N2"
	placeholderContaFinanceira = "t_conta_financeira | Pode ser solicitada para o N2"
)

var vehicleKeys = []string{
	colID, colStatus, colDataEntrada, colDataSaida, colMarca, colModelo, colComplemento, colChassi,
	colRenavam, colNumeroMotor, colAnoFab, colAnoMod, colCor, colCombustivel, colPlaca, colTipo,
	colValorCompra, colValorAVista, colValorVenda, colNomeProprietario, colDocProprietario, colKm,
	colPortas, colCambio, colCnpjRevenda, colEstado,
}

var vehicleJSONExtraKeys = []string{colCodigoFipe, colValorFipe, colOpcionais, colLinkImagens}

var customerKeys = []string{
	"Cod", "Pessoa", "Sexo", "Nome Completo", "Apelido", "CPFCNPJ", "Email", "Cep", "Rua", "Numero",
	"Complemento", "Bairro", "Cidade", "UF", "Data Nascimento", "IE/RG",
	"Telefone1", "Tipo Telefone 1", "Telefone 2", "Tipo Telefone 2", "Telefone3", "Tipo Telefone 3",
	"Fornecedor",
}

var financialTitleKeys = []string{
	"id_titulo_financeiro", "CNPJ REVENDA", "OPERAÇÃO", "DATA EMISSÃO", "DATA VENCIMENTO",
	"NOME/RAZÃO SOCIAL CLIENTE/FORNECEDOR", "CPF/CNPJ CLIENTE/FORNECEDOR", "DESCRIÇÃO",
	"VALOR TOTAL", "QUITADO", "CONTA", "CONTA FINANCEIRA", "FORMA DE PAGAMENTO", "DATA QUITACAO",
}

var revenueExpenseKeys = []string{"id_receita_despesa_veiculo"}

// SchemaKeys retorna a ordem completa de colunas do layout de destino, usada como cabeçalho
// da planilha. Em clientes, os pares de telefone aparecem aqui mas são omitidos nas linhas
// sem o número correspondente.
func SchemaKeys(t domain.ConversionType, kind domain.SourceKind) []string {
	var keys []string
	switch t {
	case domain.TypeVeiculos:
		keys = append(keys, vehicleKeys...)
		if kind == domain.KindJSON {
			keys = append(keys, vehicleJSONExtraKeys...)
		}
	case domain.TypeClientes:
		keys = append(keys, customerKeys...)
	case domain.TypeTitulosFinanceiros:
		keys = append(keys, financialTitleKeys...)
	case domain.TypeReceitasDespesasVei:
		keys = append(keys, revenueExpenseKeys...)
	}
	return keys
}

func field(key string, value interface{}) domain.Field {
	return domain.Field{Key: key, Value: value}
}
