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

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	groqDefaultModel = "llama-3.3-70b-versatile"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	LLM            LLM            `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Conversation   Conversation   `mapstructure:",squash"`
	AnalysisLog    AnalysisLog    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

// LLM configura o endpoint de chat completion (OpenAI ou Groq)
type LLM struct {
	Provider     string        `mapstructure:"-"`
	GroqAPIKey   string        `mapstructure:"groq_api_key"`
	OpenAIAPIKey string        `mapstructure:"openai_api_key"`
	APIKey       string        `mapstructure:"-"`
	BaseURL      string        `mapstructure:"llm_base_url"`
	Model        string        `mapstructure:"llm_model"`
	Temperature  float64       `mapstructure:"llm_temperature"`
	Timeout      time.Duration `mapstructure:"llm_timeout"`
}

type Dataset struct {
	Seed       uint64 `mapstructure:"dataset_seed"`
	StartMonth string `mapstructure:"dataset_start_month"`
	Months     int    `mapstructure:"dataset_months"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type Conversation struct {
	MaxTurns int `mapstructure:"conversation_max_turns"`
}

type AnalysisLog struct {
	Enabled bool `mapstructure:"analysis_log_enabled"`
	Limit   int  `mapstructure:"analysis_log_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insights?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5) // O log de análises tem pouca escrita
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_TEMPERATURE", 0.2)
	viper.SetDefault("LLM_TIMEOUT", "60s")

	viper.SetDefault("DATASET_SEED", 42)
	viper.SetDefault("DATASET_START_MONTH", "2024-01")
	viper.SetDefault("DATASET_MONTHS", 12)

	viper.SetDefault("DATASET_REFRESH_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("CONVERSATION_MAX_TURNS", 6)

	viper.SetDefault("ANALYSIS_LOG_ENABLED", false) // Sem banco, usa o log em memória
	viper.SetDefault("ANALYSIS_LOG_LIMIT", 50)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.LLM.resolveProvider(os.Getenv("LLM_BASE_URL") != "", os.Getenv("LLM_MODEL") != "")

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// resolveProvider escolhe a chave de API. GROQ_API_KEY tem prioridade e troca
// a URL e o modelo padrão para os da Groq, a menos que tenham sido definidos.
func (l *LLM) resolveProvider(customBaseURL, customModel bool) {
	switch {
	case strings.TrimSpace(l.GroqAPIKey) != "":
		l.Provider = "groq"
		l.APIKey = strings.TrimSpace(l.GroqAPIKey)
		if !customBaseURL {
			l.BaseURL = groqBaseURL
		}
		if !customModel {
			l.Model = groqDefaultModel
		}
	case strings.TrimSpace(l.OpenAIAPIKey) != "":
		l.Provider = "openai"
		l.APIKey = strings.TrimSpace(l.OpenAIAPIKey)
	default:
		l.Provider = "none"
	}

	l.BaseURL = strings.TrimRight(l.BaseURL, "/")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
