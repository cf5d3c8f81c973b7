// cmd/converter/main.go
package main

import (
	"log"

	"autos-converter/internal/api/handlers"
	"autos-converter/internal/api/responses"
	"autos-converter/internal/config"
	"autos-converter/internal/core/converter"
	"autos-converter/internal/core/fetch"
	"autos-converter/internal/logger"
	"autos-converter/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Falha ao carregar configuração: ", err)
	}

	zl, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatal("Falha ao iniciar logger: ", err)
	}
	defer zl.Sync()
	responses.InitLogger(zl)

	gin.SetMode(cfg.Server.Mode)

	m := metrics.New()
	fetcher := fetch.New(fetch.Options{
		Timeout:         cfg.Fetch.Timeout(),
		UseProxies:      cfg.Fetch.UseProxies,
		CorsAnywhereURL: cfg.Fetch.CorsAnywhereURL,
		AllOriginsURL:   cfg.Fetch.AllOriginsURL,
		Logger:          zl.Named("fetch"),
	})
	converterService := converter.NewService(converter.Options{
		Source:  fetcher,
		Logger:  zl.Named("converter"),
		Metrics: m,
	})
	converterHandler := handlers.NewConverterHandler(converterService, cfg.Server.MaxUploadBytes())

	router := handlers.NewRouter(converterHandler, m.Handler())
	router.MaxMultipartMemory = cfg.Server.MaxUploadBytes()

	zl.Info("Converter Service iniciado", zap.String("port", cfg.Server.Port), zap.Bool("proxies", cfg.Fetch.UseProxies))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zl.Fatal("Falha ao iniciar o servidor de conversão", zap.Error(err))
	}
}
