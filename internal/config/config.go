package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Upstream         Upstream         `mapstructure:",squash"`
	Dashboard        Dashboard        `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN                 string `mapstructure:"-"`
	Driver              string `mapstructure:"database_driver"`
	Password            string `mapstructure:"database_password"`
	URL                 string `mapstructure:"database_url"`
	User                string `mapstructure:"database_user"`
	SSLMode             string `mapstructure:"database_sslmode"`
	AutoApplyMigrations bool   `mapstructure:"migrations_auto_apply"`
}

// Auth guarda a chave compartilhada exigida pelo endpoint de atualização de métricas
type Auth struct {
	APIKey string `mapstructure:"api_key"`
}

// Upstream é o job runner remoto que recalcula as métricas
type Upstream struct {
	URL     string        `mapstructure:"upstream_url"`
	APIKey  string        `mapstructure:"upstream_api_key"`
	Timeout time.Duration `mapstructure:"upstream_timeout"`

	// MaxResponseBytes limita o corpo lido do job runner; output traz o stdout inteiro do script
	MaxResponseBytes int64 `mapstructure:"upstream_max_response_bytes"`
}

type Dashboard struct {
	// RevenueSeries escolhe a origem do gráfico de linha: "gross" ou "net"
	RevenueSeries string `mapstructure:"dashboard_revenue_series"`
}

type DashboardRefresh struct {
	CronSchedule string `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool   `mapstructure:"dashboard_refresh_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("MIGRATIONS_AUTO_APPLY", false)

	viper.SetDefault("API_KEY", "")

	viper.SetDefault("UPSTREAM_URL", "http://localhost:5001")
	viper.SetDefault("UPSTREAM_API_KEY", "")
	viper.SetDefault("UPSTREAM_TIMEOUT", "0s") // sem timeout: a chamada ao job runner pode demorar minutos
	viper.SetDefault("UPSTREAM_MAX_RESPONSE_BYTES", 64<<20)

	viper.SetDefault("DASHBOARD_REVENUE_SERIES", "gross")

	viper.SetDefault("DASHBOARD_REFRESH_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// Validate verifica combinações de valores que não fazem sentido
func (c *Config) Validate() error {
	switch c.Dashboard.RevenueSeries {
	case "gross", "net":
	default:
		return fmt.Errorf("config: DASHBOARD_REVENUE_SERIES inválido: %q (use gross ou net)", c.Dashboard.RevenueSeries)
	}

	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("config: UPSTREAM_TIMEOUT não pode ser negativo: %s", c.Upstream.Timeout)
	}

	if c.Auth.APIKey == "" {
		logrus.Warn("API_KEY não configurada: POST /metrics/update vai recusar todas as requisições")
	}

	if c.Upstream.APIKey == "" {
		logrus.Warn("UPSTREAM_API_KEY não configurada: o job runner provavelmente vai responder 401")
	}

	return nil
}

func BuildDSN(db Database) string {
	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)

	if db.SSLMode != "" {
		dsn = fmt.Sprintf("%s?sslmode=%s", dsn, db.SSLMode)
	}

	return dsn
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
