package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"autos-converter/internal/api/responses"
	"autos-converter/internal/core/converter"
	"autos-converter/internal/domain"

	"github.com/gin-gonic/gin"
)

// ConverterHandler lida com as requisições da API relacionadas à conversão de arquivos.
type ConverterHandler struct {
	service        converter.Service
	maxUploadBytes int64
}

// NewConverterHandler cria um novo handler de conversão. maxUploadBytes <= 0 desativa o limite.
func NewConverterHandler(service converter.Service, maxUploadBytes int64) *ConverterHandler {
	return &ConverterHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// selectorForm são os campos de seleção enviados junto com o arquivo ou o JSON.
type selectorForm struct {
	Origem           string `form:"origem" binding:"max=64"`
	TipoConversao    string `form:"tipoConversao" binding:"max=64"`
	Posicao          string `form:"posicao" binding:"max=32"`
	TipoFonte        string `form:"tipoFonte" binding:"max=32"`
	CNPJ             string `form:"cnpj" binding:"max=32"`
	MarcarFornecedor string `form:"marcarFornecedor" binding:"max=8"`
}

type jsonForm struct {
	selectorForm
	JSONURL  string `form:"jsonUrl" binding:"omitempty,url"`
	JSONText string `form:"jsonText"`
}

func (f selectorForm) context() domain.ConversionContext {
	return domain.ConversionContext{
		Source:       domain.SourceSystem(strings.TrimSpace(f.Origem)),
		Type:         domain.ConversionType(strings.TrimSpace(f.TipoConversao)),
		Position:     domain.Position(strings.TrimSpace(f.Posicao)),
		Kind:         domain.SourceKind(strings.TrimSpace(f.TipoFonte)),
		CNPJ:         strings.TrimSpace(f.CNPJ),
		MarkSupplier: truthy(f.MarcarFornecedor),
	}
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "on", "sim":
		return true
	}
	return false
}

// HandleConvertSpreadsheet converte a planilha enviada em "arquivo" e devolve o xlsx.
func (h *ConverterHandler) HandleConvertSpreadsheet(c *gin.Context) {
	var form selectorForm
	if err := c.ShouldBind(&form); err != nil {
		responses.Error(c, http.StatusBadRequest, "Parâmetros de conversão inválidos", err.Error())
		return
	}
	upload, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.service.ConvertSpreadsheet(c.Request.Context(), form.context(), upload)
	if err != nil {
		h.fail(c, "Erro ao converter a planilha", err)
		return
	}
	c.Header(responses.ConversionIDHeader, result.ID)
	responses.File(c, result.FileName, responses.XLSXContentType, result.Content)
}

// HandleConvertJSON converte o JSON informado por URL (jsonUrl) ou colado (jsonText).
func (h *ConverterHandler) HandleConvertJSON(c *gin.Context) {
	var form jsonForm
	if err := c.ShouldBind(&form); err != nil {
		responses.Error(c, http.StatusBadRequest, "Parâmetros de conversão inválidos", err.Error())
		return
	}

	doc, err := h.service.LoadJSON(c.Request.Context(), form.JSONURL, form.JSONText)
	if err != nil {
		h.fail(c, "Erro ao carregar JSON", err)
		return
	}
	result, err := h.service.ConvertJSON(c.Request.Context(), form.context(), doc)
	if err != nil {
		h.fail(c, "Erro ao converter JSON", err)
		return
	}
	c.Header(responses.ConversionIDHeader, result.ID)
	responses.File(c, result.FileName, responses.XLSXContentType, result.Content)
}

// HandlePreviewSpreadsheet devolve a tabela lida e as sugestões de colunas.
func (h *ConverterHandler) HandlePreviewSpreadsheet(c *gin.Context) {
	var form selectorForm
	if err := c.ShouldBind(&form); err != nil {
		responses.Error(c, http.StatusBadRequest, "Parâmetros inválidos", err.Error())
		return
	}
	upload, ok := h.readUpload(c)
	if !ok {
		return
	}

	preview, err := h.service.PreviewSpreadsheet(c.Request.Context(), form.context(), upload)
	if err != nil {
		h.fail(c, "Erro ao ler a planilha", err)
		return
	}
	responses.Success(c, preview, fmt.Sprintf("%d linha(s) lida(s)", len(preview.Table.Rows)))
}

// HandlePreviewJSON devolve a análise e a tabela achatada do JSON.
func (h *ConverterHandler) HandlePreviewJSON(c *gin.Context) {
	var form jsonForm
	if err := c.ShouldBind(&form); err != nil {
		responses.Error(c, http.StatusBadRequest, "Parâmetros inválidos", err.Error())
		return
	}

	doc, err := h.service.LoadJSON(c.Request.Context(), form.JSONURL, form.JSONText)
	if err != nil {
		h.fail(c, "Erro ao carregar JSON", err)
		return
	}
	preview, err := h.service.PreviewJSON(c.Request.Context(), doc)
	if err != nil {
		h.fail(c, "Erro ao analisar JSON", err)
		return
	}
	responses.Success(c, preview, fmt.Sprintf("%d registro(s) encontrado(s)", preview.Analysis.Metadata.Count))
}

func (h *ConverterHandler) readUpload(c *gin.Context) (converter.Upload, bool) {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo (.xlsx, .xls, .csv) não encontrado ou inválido")
		return converter.Upload{}, false
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		responses.Error(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Arquivo excede o limite de %d MB", h.maxUploadBytes>>20))
		return converter.Upload{}, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Não foi possível abrir o arquivo enviado")
		return converter.Upload{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Não foi possível ler o arquivo enviado")
		return converter.Upload{}, false
	}
	return converter.Upload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, true
}

func (h *ConverterHandler) fail(c *gin.Context, message string, err error) {
	responses.Error(c, statusFor(err), message, err.Error())
}

// statusFor traduz os erros do domínio em status HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrEmptyData),
		errors.Is(err, domain.ErrEmptyPayload),
		errors.Is(err, domain.ErrInvalidContext):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrFetch):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrMapping):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
