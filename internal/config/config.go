package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/business-advisor-api/internal/domain"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Thresholds Thresholds `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
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

// Thresholds são os limites padrão das regras de recomendação. Podem ser
// sobrescritos por requisição no endpoint de análise.
type Thresholds struct {
	CACCeiling     float64 `mapstructure:"threshold_cac_ceiling"`
	CACIncreasePct float64 `mapstructure:"threshold_cac_increase_pct"`
	SalesGrowthPct float64 `mapstructure:"threshold_sales_growth_pct"`
	CostsGrowthPct float64 `mapstructure:"threshold_costs_growth_pct"`
}

// ToDomain converte a seção de configuração para o tipo de domínio,
// preenchendo com os padrões qualquer campo não informado
func (t Thresholds) ToDomain() domain.Thresholds {
	configured := domain.Thresholds{
		CACCeiling:     t.CACCeiling,
		CACIncreasePct: t.CACIncreasePct,
		SalesGrowthPct: t.SalesGrowthPct,
		CostsGrowthPct: t.CostsGrowthPct,
	}

	return configured.WithDefaults(domain.DefaultThresholds())
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/advisor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults dos limites das regras de recomendação
	viper.SetDefault("THRESHOLD_CAC_CEILING", 50.0)       // CAC aceitável até $50
	viper.SetDefault("THRESHOLD_CAC_INCREASE_PCT", 20.0)  // Alta de CAC relevante acima de 20%
	viper.SetDefault("THRESHOLD_SALES_GROWTH_PCT", 10.0)  // Crescimento de vendas relevante acima de 10%
	viper.SetDefault("THRESHOLD_COSTS_GROWTH_PCT", 15.0)  // Alta de custos relevante acima de 15%

	// Defaults da materialização diária de relatórios
	viper.SetDefault("REPORT_SYNC_CRON", "30 3 * * *") // Todos os dias às 3h30 da manhã
	viper.SetDefault("REPORT_SYNC_ENABLED", false)     // Habilitar materialização diária

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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
