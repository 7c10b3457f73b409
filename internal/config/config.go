package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fontes suportadas para a planilha dos experts
const (
	SourceAppsScript   = "apps_script"
	SourceGoogleSheets = "google_sheets"
	SourceXLSX         = "xlsx"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Sheets             Sheets             `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	StatusSnapshotSync StatusSnapshotSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port" validate:"required"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Database só é usado para o histórico de status; desabilitado, a API funciona apenas com a planilha
type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Sheets configura a leitura da planilha: Apps Script (JSON), API do Google Sheets ou arquivo XLSX
type Sheets struct {
	Source               string        `mapstructure:"sheets_source" validate:"required,oneof=apps_script google_sheets xlsx"`
	AppsScriptURL        string        `mapstructure:"apps_script_url" validate:"required_if=Source apps_script"`
	APIToken             string        `mapstructure:"api_token"`
	RequestTimeout       time.Duration `mapstructure:"sheets_request_timeout" validate:"gt=0"`
	SpreadsheetID        string        `mapstructure:"sheets_spreadsheet_id" validate:"required_if=Source google_sheets"`
	CredentialsFile      string        `mapstructure:"sheets_credentials_file"`
	XLSXPath             string        `mapstructure:"sheets_xlsx_path" validate:"required_if=Source xlsx"`
	IgnoredTabs          []string      `mapstructure:"sheets_ignored_tabs"`
	MaxConcurrentFetches int           `mapstructure:"sheets_max_concurrent_fetches" validate:"min=1"`
	ClientCacheTTL       time.Duration `mapstructure:"client_cache_ttl"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"timezone" validate:"required"`
	Location *time.Location `mapstructure:"-"`
}

// TimeLocation retorna o fuso configurado; sem fuso carregado usa UTC
func (a App) TimeLocation() *time.Location {
	if a.Location == nil {
		return time.UTC
	}
	return a.Location
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// StatusSnapshotSync controla o job que grava o status diário de cada expert
type StatusSnapshotSync struct {
	CronSchedule string `mapstructure:"status_snapshot_cron" validate:"required"`
	Enabled      bool   `mapstructure:"status_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/experts")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("SHEETS_SOURCE", SourceAppsScript)
	viper.SetDefault("APPS_SCRIPT_URL", "")
	viper.SetDefault("API_TOKEN", "")
	viper.SetDefault("SHEETS_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "")
	viper.SetDefault("SHEETS_XLSX_PATH", "")
	viper.SetDefault("SHEETS_IGNORED_TABS", "")
	viper.SetDefault("SHEETS_MAX_CONCURRENT_FETCHES", 5)
	viper.SetDefault("CLIENT_CACHE_TTL", "5m") // mesmo tempo de revalidação do dashboard

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("STATUS_SNAPSHOT_CRON", "0 7 * * *")   // Todos os dias às 7h da manhã
	viper.SetDefault("STATUS_SNAPSHOT_SYNC_ENABLED", false) // Habilitar gravação do status diário

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if err := config.finish(); err != nil {
		return nil, err
	}

	return config, nil
}

// finish valida a configuração e preenche os campos derivados
func (c *Config) finish() error {
	c.Sheets.Source = strings.ToLower(strings.TrimSpace(c.Sheets.Source))
	c.Sheets.IgnoredTabs = cleanList(c.Sheets.IgnoredTabs)
	c.Server.AllowedOrigins = cleanList(c.Server.AllowedOrigins)

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}

	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

func cleanList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
