// internal/api/responses/responses.go
package responses

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// APIResponse é o envelope padrão das respostas JSON da API.
type APIResponse struct {
	Status  string      `json:"status"` // "success" ou "error"
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// InitLogger define o logger usado pelas respostas. nil volta ao logger mudo.
func InitLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Success envia uma resposta 200 com os dados e a mensagem.
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{Status: "success", Data: data, Message: message})
	logger.Info("API success",
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", http.StatusOK),
		zap.String("conversion_id", c.Writer.Header().Get(ConversionIDHeader)))
}

// File envia um anexo binário com o nome informado.
func File(c *gin.Context, fileName, contentType string, content []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"; filename*=UTF-8''`+url.PathEscape(fileName))
	c.Data(http.StatusOK, contentType, content)
	logger.Info("API file",
		zap.String("path", c.Request.URL.Path),
		zap.String("file", fileName),
		zap.Int("bytes", len(content)),
		zap.String("conversion_id", c.Writer.Header().Get(ConversionIDHeader)))
}

// Error envia uma resposta de erro com o código, a mensagem e detalhes opcionais.
func Error(c *gin.Context, code int, message string, errs ...string) {
	c.JSON(code, APIResponse{Status: "error", Message: message, Errors: errs})
	if code >= http.StatusInternalServerError {
		logger.Error("API error", zap.String("path", c.Request.URL.Path), zap.Int("status", code), zap.Strings("errors", errs))
		return
	}
	logger.Warn("API error", zap.String("path", c.Request.URL.Path), zap.Int("status", code), zap.Strings("errors", errs))
}

// ConversionIDHeader carrega o id da conversão nas respostas.
const ConversionIDHeader = "X-Conversion-Id"

// XLSXContentType é o tipo MIME do arquivo gerado.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
