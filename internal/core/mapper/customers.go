package mapper

import (
	"autos-converter/internal/core/fields"
	"autos-converter/internal/domain"
)

const supplierMark = "Sim"

// MapClientes converte linhas de clientes. Linhas totalmente vazias são descartadas e os
// pares de telefone sem número não aparecem no registro.
func MapClientes(table domain.Table, ctx domain.ConversionContext) []domain.NormalizedRecord {
	c := ColumnsFor(ctx.Source)
	cols := newColumnLookup(table)

	supplier := ""
	if ctx.MarkSupplier {
		supplier = supplierMark
	}

	var out []domain.NormalizedRecord
	for _, row := range table.Rows {
		if blankRow(row) {
			continue
		}
		get := func(name string) string { return cols.cell(row, name) }

		doc := get(c.CpfCnpj)
		person := get(c.Pessoa)
		if person == "" {
			person = fields.ClassifyPersonType(doc)
		}
		ieRG := firstNonEmpty(get(c.RG), get(c.IE))

		rec := domain.NormalizedRecord{
			field("Cod", ""),
			field("Pessoa", person),
			field("Sexo", fields.GenderCode(get(c.Sexo))),
			field("Nome Completo", get(c.Nome)),
			field("Apelido", get(c.Apelido)),
			field("CPFCNPJ", doc),
			field("Email", get(c.Email)),
			field("Cep", fields.CleanDocumentID(get(c.Cep))),
			field("Rua", fields.StreetLine(get(c.Rua))),
			field("Numero", get(c.Numero)),
			field("Complemento", get(c.Complemento)),
			field("Bairro", get(c.Bairro)),
			field("Cidade", get(c.Cidade)),
			field("UF", get(c.Estado)),
			field("Data Nascimento", get(c.DataNascimento)),
			field("IE/RG", ieRG),
		}
		rec = append(rec, fields.PhoneFields(
			get(c.TelefoneCelular), get(c.TelefoneResidencial), get(c.TelefoneComercial),
		)...)
		rec = append(rec, field("Fornecedor", supplier))
		out = append(out, rec)
	}
	return out
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
