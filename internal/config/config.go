package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Origens aceitas em DATASET_SOURCE
const (
	SourceHTTP     = "http"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Chart          Chart          `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Dataset define de onde o MarketingData é carregado
type Dataset struct {
	Source  string        `mapstructure:"dataset_source"`
	URL     string        `mapstructure:"dataset_url"`
	Token   string        `mapstructure:"dataset_token"`
	Path    string        `mapstructure:"dataset_path"`
	Table   string        `mapstructure:"dataset_table"`
	Timeout time.Duration `mapstructure:"dataset_timeout"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

// Chart guarda o tamanho padrão dos gráficos quando a requisição não informa
type Chart struct {
	Width  float64 `mapstructure:"chart_width"`
	Height float64 `mapstructure:"chart_height"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("DATASET_SOURCE", SourceFile)
	viper.SetDefault("DATASET_URL", "")
	viper.SetDefault("DATASET_TOKEN", "")
	viper.SetDefault("DATASET_PATH", "data/marketing.json")
	viper.SetDefault("DATASET_TABLE", "campaigns")
	viper.SetDefault("DATASET_TIMEOUT", "30s")

	viper.SetDefault("DATASET_REFRESH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("CHART_WIDTH", 800)
	viper.SetDefault("CHART_HEIGHT", 300)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Dataset.Source = strings.ToLower(strings.TrimSpace(config.Dataset.Source))
	if err := config.Dataset.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate confere se a origem escolhida tem o que precisa para buscar o dataset
func (d Dataset) Validate() error {
	switch d.Source {
	case SourceHTTP:
		if d.URL == "" {
			return fmt.Errorf("DATASET_URL é obrigatório quando DATASET_SOURCE=%s", SourceHTTP)
		}
	case SourceFile:
		if d.Path == "" {
			return fmt.Errorf("DATASET_PATH é obrigatório quando DATASET_SOURCE=%s", SourceFile)
		}
	case SourcePostgres:
		if d.Table == "" {
			return fmt.Errorf("DATASET_TABLE é obrigatório quando DATASET_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %q", d.Source)
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
