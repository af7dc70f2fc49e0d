package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	PII       PIIConfig       `mapstructure:"pii"`
	LLM       LLMConfig       `mapstructure:"llm"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
	WebSocket WebSocketConfig `mapstructure:"websocket"`
}

type ServerConfig struct {
	Port          int           `mapstructure:"port"`
	MetricsPort   int           `mapstructure:"metrics_port"`
	SecretKey     string        `mapstructure:"secret_key"`
	MaxTextLength int           `mapstructure:"max_text_length"`
	BodyLimit     int           `mapstructure:"body_limit"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
	DocsURL       string        `mapstructure:"docs_url"`
}

type MetricsConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	EnableLatency  bool `mapstructure:"enable_latency"`
	EnablePerRoute bool `mapstructure:"enable_per_route"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

// PIIConfig configures the Azure AI Language PII recognizer. An empty
// endpoint disables redaction and texts reach the LLM unredacted.
type PIIConfig struct {
	Endpoint          string        `mapstructure:"endpoint"`
	APIKey            string        `mapstructure:"api_key"`
	UseIdentity       bool          `mapstructure:"use_identity"`
	Language          string        `mapstructure:"language"`
	MaxChunkLength    int           `mapstructure:"max_chunk_length"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Breaker           BreakerConfig `mapstructure:"breaker"`
}

type LLMConfig struct {
	Provider    string         `mapstructure:"provider"`
	Model       string         `mapstructure:"model"`
	APIKey      string         `mapstructure:"api_key"`
	BaseURL     string         `mapstructure:"base_url"`
	MaxTokens   int            `mapstructure:"max_tokens"`
	Temperature float64        `mapstructure:"temperature"`
	Timeout     time.Duration  `mapstructure:"timeout"`
	Breaker     BreakerConfig  `mapstructure:"breaker"`
	Azure       AzureLLMConfig `mapstructure:"azure"`
	Bedrock     BedrockConfig  `mapstructure:"bedrock"`
}

type BreakerConfig struct {
	MaxFailures  uint32        `mapstructure:"max_failures"`
	ResetTimeout time.Duration `mapstructure:"reset_timeout"`
}

type AzureLLMConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	APIVersion  string `mapstructure:"api_version"`
	UseIdentity bool   `mapstructure:"use_identity"`
}

type BedrockConfig struct {
	Region       string `mapstructure:"region"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	SessionToken string `mapstructure:"session_token"`
	UseRole      bool   `mapstructure:"use_role"`
	RoleARN      string `mapstructure:"role_arn"`
}

type RateLimitConfig struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

type TelemetryConfig struct {
	Workers   int              `mapstructure:"workers"`
	QueueSize int              `mapstructure:"queue_size"`
	Exporters []ExporterConfig `mapstructure:"exporters"`
}

type ExporterConfig struct {
	Name     string                 `mapstructure:"name"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

type SentryConfig struct {
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
	Debug       bool    `mapstructure:"debug"`
}

type WebSocketConfig struct {
	MaxConnections   int           `mapstructure:"max_connections"`
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout"`
}

var ErrMissingSecretKey = errors.New("server.secret_key is required")

var globalConfig Config

// Load reads config.yaml from configPath (or ./config, or .) and overlays
// environment variables, with "." in keys replaced by "_" (SERVER_PORT,
// LLM_API_KEY, ...). A missing file is not an error.
func Load(configPath string) error {
	cfg, err := load(viper.New(), configPath)
	if err != nil {
		return err
	}
	globalConfig = *cfg
	return nil
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	setDefaultValues(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.SecretKey) == "" {
		return ErrMissingSecretKey
	}
	if c.Server.MaxTextLength <= 0 {
		return fmt.Errorf("server.max_text_length must be positive, got %d", c.Server.MaxTextLength)
	}
	if c.PII.MaxChunkLength <= 0 {
		return fmt.Errorf("pii.max_chunk_length must be positive, got %d", c.PII.MaxChunkLength)
	}
	if c.LLM.Provider == "" || c.LLM.Model == "" {
		return errors.New("llm.provider and llm.model are required")
	}
	return nil
}

// setDefaultValues registers every key so that environment variables are
// picked up even when config.yaml does not mention them.
func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.secret_key", "")
	v.SetDefault("server.max_text_length", 50000)
	v.SetDefault("server.body_limit", 1024*1024)
	v.SetDefault("server.read_timeout", 60*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.docs_url", "/swagger.json")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("metrics.enable_per_route", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "inclusionguard")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)

	v.SetDefault("pii.endpoint", "")
	v.SetDefault("pii.api_key", "")
	v.SetDefault("pii.use_identity", false)
	v.SetDefault("pii.language", "")
	v.SetDefault("pii.max_chunk_length", 5000)
	v.SetDefault("pii.requests_per_second", 0)
	v.SetDefault("pii.breaker.max_failures", 3)
	v.SetDefault("pii.breaker.reset_timeout", 15*time.Second)

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_tokens", 2048)
	v.SetDefault("llm.temperature", 0)
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("llm.breaker.max_failures", 5)
	v.SetDefault("llm.breaker.reset_timeout", 30*time.Second)
	v.SetDefault("llm.azure.endpoint", "")
	v.SetDefault("llm.azure.api_version", "")
	v.SetDefault("llm.azure.use_identity", false)
	v.SetDefault("llm.bedrock.region", "")
	v.SetDefault("llm.bedrock.access_key", "")
	v.SetDefault("llm.bedrock.secret_key", "")
	v.SetDefault("llm.bedrock.session_token", "")
	v.SetDefault("llm.bedrock.use_role", false)
	v.SetDefault("llm.bedrock.role_arn", "")

	v.SetDefault("rate_limit.limit", 60)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("telemetry.workers", 4)
	v.SetDefault("telemetry.queue_size", 1000)

	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("sentry.debug", false)

	v.SetDefault("websocket.max_connections", 1000)
	v.SetDefault("websocket.handshake_timeout", 15*time.Second)
}

func GetConfig() *Config {
	return &globalConfig
}
