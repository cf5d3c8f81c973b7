package converter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autos-converter/internal/core/export"
	"autos-converter/internal/core/fetch"
	"autos-converter/internal/core/ingest"
	"autos-converter/internal/core/jsonanalysis"
	"autos-converter/internal/core/jsonvalue"
	"autos-converter/internal/core/mapper"
	"autos-converter/internal/domain"
	"autos-converter/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service define a interface para os serviços de conversão de arquivos.
type Service interface {
	ConvertSpreadsheet(ctx context.Context, cctx domain.ConversionContext, upload Upload) (*domain.ConversionResult, error)
	ConvertJSON(ctx context.Context, cctx domain.ConversionContext, doc jsonvalue.Value) (*domain.ConversionResult, error)
	LoadJSON(ctx context.Context, url, text string) (jsonvalue.Value, error)
	PreviewSpreadsheet(ctx context.Context, cctx domain.ConversionContext, upload Upload) (*domain.SpreadsheetPreview, error)
	PreviewJSON(ctx context.Context, doc jsonvalue.Value) (*JSONPreview, error)
}

// Upload é um arquivo recebido para conversão.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// JSONSource busca um documento JSON por URL.
type JSONSource interface {
	Fetch(ctx context.Context, url string) (jsonvalue.Value, error)
}

// Options agrupa as dependências do serviço. Campos nulos recebem padrões seguros.
type Options struct {
	Source  JSONSource
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Clock   func() time.Time
	NewID   func() string
}

type service struct {
	source  JSONSource
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() string
}

// NewService cria uma nova instância do serviço de conversão.
func NewService(opts Options) Service {
	svc := &service{
		source:  opts.Source,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		now:     opts.Clock,
		newID:   opts.NewID,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	if svc.newID == nil {
		svc.newID = func() string { return uuid.New().String() }
	}
	return svc
}

// ---------------------- conversão ----------------------

// ConvertSpreadsheet lê a planilha enviada, aplica o mapeador do tipo escolhido e gera o xlsx.
func (svc *service) ConvertSpreadsheet(ctx context.Context, cctx domain.ConversionContext, upload Upload) (result *domain.ConversionResult, err error) {
	cctx.Kind = domain.KindPlanilha
	start := svc.now()
	defer func() { svc.observe(cctx, result, err, start) }()

	if err := cctx.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := ingest.Read(upload.FileName, upload.ContentType, upload.Data)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler planilha %q: %w", upload.FileName, err)
	}
	records, err := mapper.MapTable(table, cctx)
	if err != nil {
		return nil, err
	}

	var warnings []string
	for _, s := range mapper.SuggestColumns(table, cctx) {
		warnings = append(warnings, missingColumnWarning(s))
	}
	return svc.finish(cctx, records, warnings)
}

// ConvertJSON localiza o array de registros do documento e converte como veículos.
func (svc *service) ConvertJSON(ctx context.Context, cctx domain.ConversionContext, doc jsonvalue.Value) (result *domain.ConversionResult, err error) {
	cctx.Kind = domain.KindJSON
	start := svc.now()
	defer func() { svc.observe(cctx, result, err, start) }()

	if err := cctx.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	analysis, err := analyzeForConversion(doc)
	if err != nil {
		return nil, err
	}
	records, err := mapper.MapJSON(analysis.Data, cctx)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if n := len(analysis.Metadata.Alternatives); n > 0 {
		warnings = append(warnings, fmt.Sprintf("registros lidos de %q; %d outro(s) array(s) ignorado(s)", analysis.Metadata.Path, n))
	}
	return svc.finish(cctx, records, warnings)
}

// LoadJSON devolve o documento colado em text ou, se text estiver vazio, busca url.
func (svc *service) LoadJSON(ctx context.Context, url, text string) (jsonvalue.Value, error) {
	if strings.TrimSpace(text) != "" {
		return fetch.ParseText(text)
	}
	if strings.TrimSpace(url) == "" {
		return jsonvalue.Value{}, fmt.Errorf("%w: informe a URL ou cole o JSON", domain.ErrInvalidFormat)
	}
	if svc.source == nil {
		return jsonvalue.Value{}, fmt.Errorf("%w: carregamento por URL indisponível", domain.ErrFetch)
	}
	return svc.source.Fetch(ctx, url)
}

func (svc *service) finish(cctx domain.ConversionContext, records []domain.NormalizedRecord, warnings []string) (*domain.ConversionResult, error) {
	content, err := export.Encode(records, mapper.SchemaKeys(cctx.Type, cctx.Kind))
	if err != nil {
		return nil, err
	}
	now := svc.now()
	return &domain.ConversionResult{
		ID:        svc.newID(),
		FileName:  export.FileName(cctx, now),
		Content:   content,
		Records:   records,
		Warnings:  warnings,
		CreatedAt: now,
	}, nil
}

func (svc *service) observe(cctx domain.ConversionContext, result *domain.ConversionResult, err error, start time.Time) {
	elapsed := svc.now().Sub(start)
	if err != nil {
		svc.metrics.ObserveConversion(string(cctx.Type), string(cctx.Source), metrics.ResultFailure, 0, elapsed)
		svc.logger.Warn("conversão falhou",
			zap.String("tipo", string(cctx.Type)),
			zap.String("origem", string(cctx.Source)),
			zap.String("fonte", string(cctx.Kind)),
			zap.Error(err))
		return
	}
	svc.metrics.ObserveConversion(string(cctx.Type), string(cctx.Source), metrics.ResultSuccess, len(result.Records), elapsed)
	svc.logger.Info("conversão concluída",
		zap.String("id", result.ID),
		zap.String("tipo", string(cctx.Type)),
		zap.String("origem", string(cctx.Source)),
		zap.String("fonte", string(cctx.Kind)),
		zap.Int("registros", len(result.Records)),
		zap.Strings("avisos", result.Warnings),
		zap.String("arquivo", result.FileName))
}

func missingColumnWarning(s domain.ColumnSuggestion) string {
	if s.Suggested == "" {
		return fmt.Sprintf("coluna esperada %q não encontrada", s.Expected)
	}
	return fmt.Sprintf("coluna esperada %q não encontrada (talvez %q)", s.Expected, s.Suggested)
}

// analyzeForConversion aceita apenas arrays e objetos com ao menos um registro.
func analyzeForConversion(doc jsonvalue.Value) (jsonanalysis.Analysis, error) {
	analysis := jsonanalysis.Analyze(doc)
	if analysis.Metadata.Kind == jsonanalysis.Primitive {
		return analysis, fmt.Errorf("%w: formato JSON inválido - deve ser array ou objeto", domain.ErrInvalidFormat)
	}
	if analysis.Empty() {
		return analysis, fmt.Errorf("%w: nenhum registro encontrado no JSON", domain.ErrEmptyData)
	}
	return analysis, nil
}
