package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Advisor behavior
	API    APIConfig
	Intent IntentConfig

	// Remote classifier / generative fallback
	GenAI GenAIConfig

	// Advisor backends
	Finance FinanceConfig
	HR      HRConfig
	Orders  OrdersConfig
	Reports ReportsConfig
	NL2SQL  NL2SQLConfig

	// Artifact storage
	Artifact ArtifactConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// APIConfig tunes how advisors call their backends.
type APIConfig struct {
	UseMockResponses bool
	RetryCount       int
	RetryDelay       string
}

// IntentConfig controls the routing classifier.
// Mode is one of off, auto, force.
type IntentConfig struct {
	Mode string
}

type GenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type FinanceConfig struct {
	URL        string
	Username   string
	Password   string
	ReportPath string
	PONumber   string
}

type HRConfig struct {
	URL      string
	Username string
	Password string
}

type OrdersConfig struct {
	URL       string
	Username  string
	Password  string
	ListLimit int
}

type ReportsConfig struct {
	URL          string
	Username     string
	Password     string
	ClientID     string
	ClientSecret string
	TokenURL     string
	WorkbookID   string
	CanvasID     string
}

type NL2SQLConfig struct {
	URL      string
	Username string
	Password string
}

type ArtifactConfig struct {
	// Object storage; in-memory storage with locally signed URLs is used
	// when Endpoint is empty.
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	PublicBaseURL       string
	PresignTTLSeconds   int
	MaxDownloadAttempts int
	MaxInlineBytes      int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Advisor behavior
	cfg.API.UseMockResponses = viper.GetBool("api.use_mock_responses")
	cfg.API.RetryCount = viper.GetInt("api.retry_count")
	cfg.API.RetryDelay = viper.GetString("api.retry_delay")
	cfg.Intent.Mode = viper.GetString("intent.mode")

	// Remote classifier
	cfg.GenAI.APIKey = viper.GetString("genai.api_key")
	cfg.GenAI.BaseURL = viper.GetString("genai.base_url")
	cfg.GenAI.Model = viper.GetString("genai.model")
	if key := viper.GetString("genai_api_key"); key != "" {
		cfg.GenAI.APIKey = key
	}

	// Finance backend
	cfg.Finance.URL = viper.GetString("finance.url")
	cfg.Finance.Username = viper.GetString("finance.username")
	cfg.Finance.Password = viper.GetString("finance.password")
	cfg.Finance.ReportPath = viper.GetString("finance.report_path")
	cfg.Finance.PONumber = viper.GetString("finance.po_number")
	if pw := viper.GetString("finance_password"); pw != "" {
		cfg.Finance.Password = pw
	}

	// HR backend
	cfg.HR.URL = viper.GetString("hr.url")
	cfg.HR.Username = viper.GetString("hr.username")
	cfg.HR.Password = viper.GetString("hr.password")
	if pw := viper.GetString("hr_password"); pw != "" {
		cfg.HR.Password = pw
	}

	// Orders backend
	cfg.Orders.URL = viper.GetString("orders.url")
	cfg.Orders.Username = viper.GetString("orders.username")
	cfg.Orders.Password = viper.GetString("orders.password")
	cfg.Orders.ListLimit = viper.GetInt("orders.list_limit")
	if pw := viper.GetString("orders_password"); pw != "" {
		cfg.Orders.Password = pw
	}

	// Reports backend
	cfg.Reports.URL = viper.GetString("reports.url")
	cfg.Reports.Username = viper.GetString("reports.username")
	cfg.Reports.Password = viper.GetString("reports.password")
	cfg.Reports.ClientID = viper.GetString("reports.client_id")
	cfg.Reports.ClientSecret = viper.GetString("reports.client_secret")
	cfg.Reports.TokenURL = viper.GetString("reports.token_url")
	cfg.Reports.WorkbookID = viper.GetString("reports.workbook_id")
	cfg.Reports.CanvasID = viper.GetString("reports.canvas_id")
	if secret := viper.GetString("reports_client_secret"); secret != "" {
		cfg.Reports.ClientSecret = secret
	}

	// NL2SQL backend
	cfg.NL2SQL.URL = viper.GetString("nl2sql.url")
	cfg.NL2SQL.Username = viper.GetString("nl2sql.username")
	cfg.NL2SQL.Password = viper.GetString("nl2sql.password")
	if pw := viper.GetString("nl2sql_password"); pw != "" {
		cfg.NL2SQL.Password = pw
	}

	// Artifact storage
	cfg.Artifact.Endpoint = viper.GetString("artifact.endpoint")
	cfg.Artifact.AccessKey = viper.GetString("artifact.access_key")
	cfg.Artifact.SecretKey = viper.GetString("artifact.secret_key")
	cfg.Artifact.Bucket = viper.GetString("artifact.bucket")
	cfg.Artifact.UseSSL = viper.GetBool("artifact.use_ssl")
	cfg.Artifact.PublicBaseURL = viper.GetString("artifact.public_base_url")
	cfg.Artifact.PresignTTLSeconds = viper.GetInt("artifact.presign_ttl_seconds")
	cfg.Artifact.MaxDownloadAttempts = viper.GetInt("artifact.max_download_attempts")
	cfg.Artifact.MaxInlineBytes = viper.GetInt("artifact.max_inline_bytes")
	if secret := viper.GetString("artifact_secret_key"); secret != "" {
		cfg.Artifact.SecretKey = secret
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("api.use_mock_responses", true)
	viper.SetDefault("api.retry_count", 3)
	viper.SetDefault("api.retry_delay", "1s")
	viper.SetDefault("intent.mode", "auto")

	viper.SetDefault("orders.list_limit", 10)
	viper.SetDefault("finance.report_path", "/Custom/ROIC/ROIC_PO_REPORTS.xdo")
	viper.SetDefault("finance.po_number", "55269")
	viper.SetDefault("reports.workbook_id", "L3NoYXJlZC9SQ09FL0Fic2VuY2UgV29ya2Jvb2s")
	viper.SetDefault("reports.canvas_id", "snapshot!canvas!1")

	viper.SetDefault("artifact.bucket", "advisor-artifacts")
	viper.SetDefault("artifact.public_base_url", "http://localhost:8080")
	viper.SetDefault("artifact.presign_ttl_seconds", 900)
	viper.SetDefault("artifact.max_download_attempts", 3)
	viper.SetDefault("artifact.max_inline_bytes", 18000)
}
