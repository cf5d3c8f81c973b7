package converter

import (
	"context"
	"fmt"

	"autos-converter/internal/core/ingest"
	"autos-converter/internal/core/jsonanalysis"
	"autos-converter/internal/core/jsonvalue"
	"autos-converter/internal/core/mapper"
	"autos-converter/internal/domain"

	"go.uber.org/zap"
)

// JSONPreview é o que a tela de pré-visualização mostra para um documento JSON.
type JSONPreview struct {
	Analysis   jsonanalysis.Analysis    `json:"analysis"`
	Table      domain.Table             `json:"table"`
	Candidates []jsonanalysis.Candidate `json:"candidates"`
}

// PreviewSpreadsheet devolve a tabela lida. Com um contexto válido, inclui sugestões para
// as colunas esperadas que não vieram no cabeçalho.
func (svc *service) PreviewSpreadsheet(ctx context.Context, cctx domain.ConversionContext, upload Upload) (*domain.SpreadsheetPreview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	table, err := ingest.Read(upload.FileName, upload.ContentType, upload.Data)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler planilha %q: %w", upload.FileName, err)
	}

	preview := &domain.SpreadsheetPreview{Table: table}
	cctx.Kind = domain.KindPlanilha
	if cctx.Validate() == nil {
		preview.Suggestions = mapper.SuggestColumns(table, cctx)
	}
	svc.logger.Debug("pré-visualização de planilha",
		zap.String("arquivo", upload.FileName), zap.Int("linhas", len(table.Rows)))
	return preview, nil
}

// PreviewJSON analisa o documento e achata os registros para exibição.
func (svc *service) PreviewJSON(ctx context.Context, doc jsonvalue.Value) (*JSONPreview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	analysis := jsonanalysis.Analyze(doc)
	if analysis.Empty() {
		return nil, fmt.Errorf("%w: nenhum registro encontrado no JSON", domain.ErrEmptyData)
	}
	return &JSONPreview{
		Analysis:   analysis,
		Table:      jsonanalysis.ToTable(analysis.Data),
		Candidates: jsonanalysis.Candidates(doc),
	}, nil
}
