package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter registra as rotas da API. metrics pode ser nil.
func NewRouter(h *ConverterHandler, metrics http.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/convert/planilha", h.HandleConvertSpreadsheet)
		apiV1.POST("/convert/json", h.HandleConvertJSON)
		apiV1.POST("/preview/planilha", h.HandlePreviewSpreadsheet)
		apiV1.POST("/preview/json", h.HandlePreviewJSON)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "autos-converter"})
	})
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}
	return router
}
