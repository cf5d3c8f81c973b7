package mapper

import (
	"autos-converter/internal/core/fields"
	"autos-converter/internal/domain"
)

// SheetColumns são os nomes de cabeçalho esperados nas planilhas exportadas por um sistema de origem.
type SheetColumns struct {
	// veículos
	Modelo            string
	Fornecedor        string
	CpfCnpjFornecedor string
	Cliente           string
	CpfCnpjCliente    string
	DataCompra        string
	DataVenda         string
	Marca             string
	Chassi            string
	Renavam           string
	AnoModelo         string
	Cor               string
	Combustivel       string
	Placa             string
	Tipo              string
	ValorCompra       string
	ValorVenda        string
	Km                string

	// clientes
	Pessoa              string
	Sexo                string
	Nome                string
	Apelido             string
	CpfCnpj             string
	Email               string
	Cep                 string
	Rua                 string
	Numero              string
	Complemento         string
	Bairro              string
	Cidade              string
	Estado              string
	DataNascimento      string
	RG                  string
	IE                  string
	TelefoneCelular     string
	TelefoneResidencial string
	TelefoneComercial   string

	// títulos financeiros
	DocumentoFornecedorCliente string
	Operacao                   string
	DataEmissao                string
	DataVencimento             string
	ClienteFornecedor          string
	Descricao                  string
	ValorTitulo                string
	DataPagamentoRecebimento   string
	FormaPagamentoRecebimento  string
}

// revendaMaisColumns é o layout de exportação do Revenda Mais, também usado pelos demais sistemas.
var revendaMaisColumns = SheetColumns{
	Modelo:            "MODELO",
	Fornecedor:        "FORNECEDOR",
	CpfCnpjFornecedor: "CPF/CNPJ FORNECEDOR",
	Cliente:           "CLIENTE",
	CpfCnpjCliente:    "CPF/CNPJ CLIENTE",
	DataCompra:        "DATA COMPRA",
	DataVenda:         "DATA VENDA",
	Marca:             "MARCA",
	Chassi:            "CHASSI",
	Renavam:           "RENAVAM",
	AnoModelo:         "ANO MODELO",
	Cor:               "COR",
	Combustivel:       "COMBUSTIVEL",
	Placa:             "PLACA",
	Tipo:              "TIPO",
	ValorCompra:       "VALOR COMPRA",
	ValorVenda:        "VALOR VENDA",
	Km:                "KM",

	Pessoa:              "pessoa",
	Sexo:                "sexo",
	Nome:                "nome",
	Apelido:             "apelido",
	CpfCnpj:             "cpf_cnpj",
	Email:               "email",
	Cep:                 "cep",
	Rua:                 "rua",
	Numero:              "numero",
	Complemento:         "complemento",
	Bairro:              "bairro",
	Cidade:              "cidade",
	Estado:              "estado",
	DataNascimento:      "data_nascimento",
	RG:                  "rg",
	IE:                  "ie",
	TelefoneCelular:     "telefone_celular",
	TelefoneResidencial: "telefone_residencial",
	TelefoneComercial:   "telefone_comercial",

	DocumentoFornecedorCliente: "Documento Fornecedor/cliente",
	Operacao:                   "Operação",
	DataEmissao:                "Data emissão",
	DataVencimento:             "Data vencimento",
	ClienteFornecedor:          "Cliente/Fornecedor",
	Descricao:                  "Descrição",
	ValorTitulo:                "Valor título",
	DataPagamentoRecebimento:   "Data pagamento/recebimento",
	FormaPagamentoRecebimento:  "Forma pagamento/recebimento",
}

var sourceColumns = map[domain.SourceSystem]SheetColumns{
	domain.SourceRevendaMais: revendaMaisColumns,
	domain.SourceAutoConf:    revendaMaisColumns,
	domain.SourceAutoCerto:   revendaMaisColumns,
}

// ColumnsFor retorna o layout de colunas do sistema de origem.
func ColumnsFor(source domain.SourceSystem) SheetColumns {
	if c, ok := sourceColumns[source]; ok {
		return c
	}
	return revendaMaisColumns
}

// ExpectedColumns lista as colunas que o mapeador do tipo lê da planilha.
func ExpectedColumns(source domain.SourceSystem, t domain.ConversionType) []string {
	c := ColumnsFor(source)
	switch t {
	case domain.TypeVeiculos:
		return []string{
			c.Modelo, c.Fornecedor, c.CpfCnpjFornecedor, c.Cliente, c.CpfCnpjCliente, c.DataCompra,
			c.DataVenda, c.Marca, c.Chassi, c.Renavam, c.AnoModelo, c.Cor, c.Combustivel, c.Placa,
			c.Tipo, c.ValorCompra, c.ValorVenda, c.Km,
		}
	case domain.TypeClientes:
		return []string{
			c.Pessoa, c.Sexo, c.Nome, c.Apelido, c.CpfCnpj, c.Email, c.Cep, c.Rua, c.Numero,
			c.Complemento, c.Bairro, c.Cidade, c.Estado, c.DataNascimento, c.RG, c.IE,
			c.TelefoneCelular, c.TelefoneResidencial, c.TelefoneComercial,
		}
	case domain.TypeTitulosFinanceiros:
		return []string{
			c.DocumentoFornecedorCliente, c.Operacao, c.DataEmissao, c.DataVencimento,
			c.ClienteFornecedor, c.Descricao, c.ValorTitulo, c.DataPagamentoRecebimento,
			c.FormaPagamentoRecebimento,
		}
	default:
		return nil
	}
}

// columnLookup resolve colunas pelo nome exato e, na falta dele, pelo nome sem acentos
// e sem diferença de caixa. Nomes repetidos ficam com a última posição.
type columnLookup struct {
	exact  domain.ColumnIndex
	folded map[string]int
}

func newColumnLookup(table domain.Table) columnLookup {
	folded := make(map[string]int, len(table.Columns))
	for i, col := range table.Columns {
		folded[fields.Fold(col)] = i
	}
	return columnLookup{exact: table.Index(), folded: folded}
}

func (l columnLookup) has(name string) bool {
	if _, ok := l.exact[name]; ok {
		return true
	}
	_, ok := l.folded[fields.Fold(name)]
	return ok
}

func (l columnLookup) cell(row []string, name string) string {
	if _, ok := l.exact[name]; ok {
		return l.exact.Cell(row, name)
	}
	i, ok := l.folded[fields.Fold(name)]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
