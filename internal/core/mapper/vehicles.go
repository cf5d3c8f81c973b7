package mapper

import (
	"fmt"

	"autos-converter/internal/core/fields"
	"autos-converter/internal/core/jsonvalue"
	"autos-converter/internal/domain"
)

// MapVeiculos converte as linhas de uma planilha de veículos.
func MapVeiculos(table domain.Table, ctx domain.ConversionContext) []domain.NormalizedRecord {
	c := ColumnsFor(ctx.Source)
	cols := newColumnLookup(table)
	status := fields.StatusFromPosition(ctx.Position)

	out := make([]domain.NormalizedRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		get := func(name string) string { return cols.cell(row, name) }

		model, complement := fields.SplitModel(get(c.Modelo), "")
		owner, ownerDoc := ownerOf(
			get(c.Fornecedor), get(c.CpfCnpjFornecedor),
			get(c.Cliente), get(c.CpfCnpjCliente),
		)
		anoModelo := get(c.AnoModelo)
		valorVenda := get(c.ValorVenda)

		out = append(out, domain.NormalizedRecord{
			field(colID, ""),
			field(colStatus, status),
			field(colDataEntrada, fields.AppendMidnight(get(c.DataCompra))),
			field(colDataSaida, fields.AppendMidnight(get(c.DataVenda))),
			field(colMarca, get(c.Marca)),
			field(colModelo, model),
			field(colComplemento, complement),
			field(colChassi, get(c.Chassi)),
			field(colRenavam, get(c.Renavam)),
			field(colNumeroMotor, ""),
			field(colAnoFab, anoModelo),
			field(colAnoMod, anoModelo),
			field(colCor, get(c.Cor)),
			field(colCombustivel, fields.NormalizeFuel(get(c.Combustivel))),
			field(colPlaca, get(c.Placa)),
			field(colTipo, fields.NormalizeVehicleCondition(get(c.Tipo))),
			field(colValorCompra, get(c.ValorCompra)),
			field(colValorAVista, valorVenda),
			field(colValorVenda, valorVenda),
			field(colNomeProprietario, owner),
			field(colDocProprietario, ownerDoc),
			field(colKm, get(c.Km)),
			field(colPortas, ""),
			field(colCambio, ""),
			field(colCnpjRevenda, ctx.CNPJ),
			field(colEstado, estadoUsado),
		})
	}
	return out
}

// MapVeiculosJSON converte registros JSON de veículos. Um único objeto que embrulha a
// lista em uma propriedade é desembrulhado antes do mapeamento. Um registro que não é objeto interrompe a conversão com o número da linha (base 1).
func MapVeiculosJSON(records []jsonvalue.Value, ctx domain.ConversionContext) ([]domain.NormalizedRecord, error) {
	data := unwrapSingleArray(records)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: dados JSON vazios para mapeamento de veículos", domain.ErrEmptyData)
	}

	status := fields.StatusFromPosition(ctx.Position)
	out := make([]domain.NormalizedRecord, 0, len(data))
	for i, item := range data {
		if item.Kind() != jsonvalue.Object {
			return nil, &domain.RowError{
				Row: i + 1,
				Err: fmt.Errorf("registro do tipo %s, esperado objeto", item.Kind()),
			}
		}
		out = append(out, mapVehicleJSON(item, status, ctx.CNPJ))
	}
	return out, nil
}

// unwrapSingleArray trata {"veiculos": [...]}: um único registro com exatamente uma
// propriedade array, vazia ou de objetos.
func unwrapSingleArray(records []jsonvalue.Value) []jsonvalue.Value {
	if len(records) != 1 || records[0].Kind() != jsonvalue.Object {
		return records
	}
	var arrays []jsonvalue.Value
	for _, m := range records[0].Members() {
		if m.Value.Kind() == jsonvalue.Array {
			arrays = append(arrays, m.Value)
		}
	}
	if len(arrays) != 1 {
		return records
	}
	items := arrays[0].Items()
	if len(items) > 0 && items[0].Kind() != jsonvalue.Object {
		return records
	}
	return items
}

func mapVehicleJSON(item jsonvalue.Value, status int, cnpj string) domain.NormalizedRecord {
	get := func(name fields.Name) string { return fields.Get(item, name) }

	model, complement := fields.SplitModel(get(fields.Modelo), get(fields.Versao))
	owner, ownerDoc := ownerOf(
		get(fields.Fornecedor), get(fields.CpfCnpjFornecedor),
		get(fields.Cliente), get(fields.CpfCnpjCliente),
	)
	anoFab := firstNonEmpty(get(fields.AnoFabricacao), get(fields.AnoModelo))
	anoMod := firstNonEmpty(get(fields.AnoModelo), get(fields.AnoFabricacao))
	valorVenda := get(fields.ValorVenda)

	return domain.NormalizedRecord{
		field(colID, ""),
		field(colStatus, status),
		field(colDataEntrada, fields.NormalizeDate(get(fields.DataCompra))),
		field(colDataSaida, fields.NormalizeDate(get(fields.DataVenda))),
		field(colMarca, get(fields.Marca)),
		field(colModelo, model),
		field(colComplemento, complement),
		field(colChassi, get(fields.Chassi)),
		field(colRenavam, get(fields.Renavam)),
		field(colNumeroMotor, get(fields.NumeroMotor)),
		field(colAnoFab, anoFab),
		field(colAnoMod, anoMod),
		field(colCor, get(fields.Cor)),
		field(colCombustivel, fields.NormalizeFuel(get(fields.Combustivel))),
		field(colPlaca, get(fields.Placa)),
		field(colTipo, fields.NormalizeVehicleCondition(get(fields.Tipo))),
		field(colValorCompra, get(fields.ValorCompra)),
		field(colValorAVista, valorVenda),
		field(colValorVenda, valorVenda),
		field(colNomeProprietario, owner),
		field(colDocProprietario, ownerDoc),
		field(colKm, get(fields.Km)),
		field(colPortas, get(fields.Portas)),
		field(colCambio, fields.NormalizeTransmission(get(fields.Cambio))),
		field(colCnpjRevenda, cnpj),
		field(colEstado, estadoUsado),
		field(colCodigoFipe, get(fields.CodigoFipe)),
		field(colValorFipe, get(fields.ValorFipe)),
		field(colOpcionais, get(fields.Opcionais)),
		field(colLinkImagens, fields.ExtractImageLinks(item)),
	}
}

// ownerOf prioriza o fornecedor; sem ele, usa o cliente.
func ownerOf(supplier, supplierDoc, customer, customerDoc string) (string, string) {
	if supplier != "" {
		return supplier, supplierDoc
	}
	if customer != "" {
		return customer, customerDoc
	}
	return "", ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
