package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix é o prefixo das variáveis de ambiente lidas pelo serviço.
const EnvPrefix = "CONVERTER"

// Config reúne a configuração do serviço.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
}

// ServerConfig configura o servidor HTTP.
type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Mode        string `mapstructure:"mode"`
	MaxUploadMB int    `mapstructure:"max_upload_mb"`
}

// LoggingConfig configura o zap.
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// FetchConfig configura o carregamento de JSON por URL.
type FetchConfig struct {
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	UseProxies      bool   `mapstructure:"use_proxies"`
	CorsAnywhereURL string `mapstructure:"cors_anywhere_url"`
	AllOriginsURL   string `mapstructure:"allorigins_url"`
}

// Timeout devolve o timeout por requisição.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// MaxUploadBytes devolve o limite de upload em bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// LoadConfig lê a configuração do ambiente (CONVERTER_SERVER_PORT, CONVERTER_FETCH_USE_PROXIES...).
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8083")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.max_upload_mb", 20)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
	v.SetDefault("fetch.timeout_seconds", 15)
	v.SetDefault("fetch.use_proxies", true)
	v.SetDefault("fetch.cors_anywhere_url", "https://cors-anywhere.herokuapp.com/")
	v.SetDefault("fetch.allorigins_url", "https://api.allorigins.win/get")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejeita valores que impedem o serviço de subir.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("configuração inválida: server.port vazio")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("configuração inválida: server.mode %q (use debug, release ou test)", c.Server.Mode)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("configuração inválida: server.max_upload_mb deve ser positivo")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("configuração inválida: fetch.timeout_seconds deve ser positivo")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("configuração inválida: logging.level: %w", err)
	}
	return nil
}
