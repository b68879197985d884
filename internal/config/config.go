package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Insights        Insights        `mapstructure:",squash"`
	InsightsRefresh InsightsRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Insights struct {
	// Janela de dados históricos usada no cálculo dos insights
	LookbackDays int `mapstructure:"insights_lookback_days"`
	// Idade máxima de um relatório em cache antes de recalcular
	CacheMaxAgeHours int `mapstructure:"insights_cache_max_age_hours"`
}

type InsightsRefresh struct {
	CronSchedule      string `mapstructure:"insights_refresh_cron"`
	MaxConcurrentJobs int    `mapstructure:"insights_refresh_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"insights_refresh_enabled"`
	// Janela de retenção das métricas diárias; zero desabilita a limpeza
	RetentionDays int `mapstructure:"insights_refresh_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ppc_insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("INSIGHTS_LOOKBACK_DAYS", 60) // 60 dias de histórico nas análises
	viper.SetDefault("INSIGHTS_CACHE_MAX_AGE_HOURS", 24)

	// Defaults para o recálculo agendado de insights
	viper.SetDefault("INSIGHTS_REFRESH_CRON", "0 6 * * *")      // Todos os dias às 6h da manhã
	viper.SetDefault("INSIGHTS_REFRESH_MAX_CONCURRENT_JOBS", 3) // 3 workspaces em paralelo
	viper.SetDefault("INSIGHTS_REFRESH_ENABLED", false)
	viper.SetDefault("INSIGHTS_REFRESH_RETENTION_DAYS", 180) // ~6 meses de histórico

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
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
		filepath.Join(cwd, "../.env"),            // Diretório acima
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
