package mapper

import (
	"autos-converter/internal/core/fields"
	"autos-converter/internal/domain"
)

// MapTitulosFinanceiros converte títulos a pagar/receber.
func MapTitulosFinanceiros(table domain.Table, ctx domain.ConversionContext) []domain.NormalizedRecord {
	c := ColumnsFor(ctx.Source)
	cols := newColumnLookup(table)

	out := make([]domain.NormalizedRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		get := func(name string) string { return cols.cell(row, name) }
		paid := get(c.DataPagamentoRecebimento)

		out = append(out, domain.NormalizedRecord{
			field("id_titulo_financeiro", ""),
			field("CNPJ REVENDA", ctx.CNPJ),
			field("OPERAÇÃO", fields.NormalizeOperation(get(c.Operacao))),
			field("DATA EMISSÃO", get(c.DataEmissao)),
			field("DATA VENCIMENTO", get(c.DataVencimento)),
			field("NOME/RAZÃO SOCIAL CLIENTE/FORNECEDOR", get(c.ClienteFornecedor)),
			field("CPF/CNPJ CLIENTE/FORNECEDOR", fields.CounterpartyDocument(get(c.DocumentoFornecedorCliente))),
			field("DESCRIÇÃO", get(c.Descricao)),
			field("VALOR TOTAL", get(c.ValorTitulo)),
			field("QUITADO", fields.Settled(paid)),
			field("CONTA", placeholderConta),
			field("CONTA FINANCEIRA", placeholderContaFinanceira),
			field("FORMA DE PAGAMENTO", get(c.FormaPagamentoRecebimento)),
			field("DATA QUITACAO", fields.AppendMidnight(paid)),
		})
	}
	return out
}

// MapReceitasDespesas gera um registro com identificador vazio por linha. O layout de
// destino ainda não define outros campos.
func MapReceitasDespesas(table domain.Table, _ domain.ConversionContext) []domain.NormalizedRecord {
	out := make([]domain.NormalizedRecord, len(table.Rows))
	for i := range table.Rows {
		out[i] = domain.NormalizedRecord{field("id_receita_despesa_veiculo", "")}
	}
	return out
}
