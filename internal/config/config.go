package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	ShopAPI        ShopAPI        `mapstructure:",squash"`
	Checkout       Checkout       `mapstructure:",squash"`
	Reports        Reports        `mapstructure:",squash"`
	ReportSnapshot ReportSnapshot `mapstructure:",squash"`
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
}

// ShopAPI é a API remota que guarda produtos, clientes e vendas
type ShopAPI struct {
	URL        string        `mapstructure:"shop_api_url"`
	UploadsURL string        `mapstructure:"shop_api_uploads_url"`
	Timeout    time.Duration `mapstructure:"shop_api_timeout"`
}

type Checkout struct {
	TaxRate     decimal.Decimal `mapstructure:"-"`
	RawTaxRate  string          `mapstructure:"checkout_tax_rate"`
	StockPolicy string          `mapstructure:"checkout_stock_policy"`
	Timeout     time.Duration   `mapstructure:"checkout_timeout"`
}

type Reports struct {
	TopCustomers int            `mapstructure:"report_top_customers"`
	TopProducts  int            `mapstructure:"report_top_products"`
	SortBuckets  bool           `mapstructure:"report_sort_buckets"`
	Timezone     string         `mapstructure:"report_timezone"`
	Location     *time.Location `mapstructure:"-"`
}

type ReportSnapshot struct {
	CronSchedule  string `mapstructure:"report_snapshot_cron"`
	Enabled       bool   `mapstructure:"report_snapshot_enabled"`
	RetentionDays int    `mapstructure:"report_snapshot_retention_days"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/shop?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHOP_API_URL", "http://localhost:3000")
	viper.SetDefault("SHOP_API_UPLOADS_URL", "http://localhost:3000/uploads")
	viper.SetDefault("SHOP_API_TIMEOUT", "15s")

	viper.SetDefault("CHECKOUT_TAX_RATE", "0.18")          // IGV
	viper.SetDefault("CHECKOUT_STOCK_POLICY", "cumulative") // cumulative | incremental
	viper.SetDefault("CHECKOUT_TIMEOUT", "20s")

	viper.SetDefault("REPORT_TOP_CUSTOMERS", 5)
	viper.SetDefault("REPORT_TOP_PRODUCTS", 10)
	viper.SetDefault("REPORT_SORT_BUCKETS", false)
	viper.SetDefault("REPORT_TIMEZONE", "Local") // fuso usado para dias, semanas e meses dos relatórios

	// Snapshot diário dos relatórios
	viper.SetDefault("REPORT_SNAPSHOT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("REPORT_SNAPSHOT_ENABLED", false)
	viper.SetDefault("REPORT_SNAPSHOT_RETENTION_DAYS", 365)

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
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
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

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize deriva os campos calculados e valida os valores lidos
func (c *Config) finalize() error {
	taxRate, err := decimal.NewFromString(strings.TrimSpace(c.Checkout.RawTaxRate))
	if err != nil {
		return fmt.Errorf("config: CHECKOUT_TAX_RATE inválido %q: %w", c.Checkout.RawTaxRate, err)
	}
	if taxRate.IsNegative() {
		return fmt.Errorf("config: CHECKOUT_TAX_RATE não pode ser negativo: %s", taxRate)
	}
	c.Checkout.TaxRate = taxRate

	c.Checkout.StockPolicy = strings.ToLower(strings.TrimSpace(c.Checkout.StockPolicy))
	if c.Checkout.StockPolicy != "cumulative" && c.Checkout.StockPolicy != "incremental" {
		return fmt.Errorf("config: CHECKOUT_STOCK_POLICY inválido: %q", c.Checkout.StockPolicy)
	}

	location, err := time.LoadLocation(strings.TrimSpace(c.Reports.Timezone))
	if err != nil {
		return fmt.Errorf("config: REPORT_TIMEZONE inválido %q: %w", c.Reports.Timezone, err)
	}
	c.Reports.Location = location

	c.ShopAPI.URL = strings.TrimRight(c.ShopAPI.URL, "/")
	c.ShopAPI.UploadsURL = strings.TrimRight(c.ShopAPI.UploadsURL, "/")

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
