package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config представляет конфигурацию приложения
type Config struct {
	HTTP     HTTP     `yaml:"http"`
	Database Database `yaml:"database"`
	Kafka    Kafka    `yaml:"kafka"`
	Notifier Notifier `yaml:"notifier"`
	Logger   Logger   `yaml:"logger"`
}

// HTTP представляет конфигурацию HTTP сервера
type HTTP struct {
	Port            string        `yaml:"port" envconfig:"HTTP_PORT"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"HTTP_REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"HTTP_SHUTDOWN_TIMEOUT"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" envconfig:"HTTP_MAX_BODY_BYTES"`
}

// Database представляет конфигурацию базы данных
type Database struct {
	Host            string        `yaml:"host" envconfig:"DB_HOST"`
	Port            string        `yaml:"port" envconfig:"DB_PORT"`
	User            string        `yaml:"user" envconfig:"DB_USER"`
	Password        string        `yaml:"password" envconfig:"DB_PASSWORD"`
	DBName          string        `yaml:"dbname" envconfig:"DB_NAME"`
	SSLMode         string        `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	MaxOpenConns    int           `yaml:"max_open_conns" envconfig:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" envconfig:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" envconfig:"DB_CONN_MAX_LIFETIME"`
	SearchPath      string        `yaml:"search_path" envconfig:"DB_SEARCH_PATH"`
}

// DSN returns the lib/pq connection string
func (d Database) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
	if d.SearchPath != "" {
		dsn += " search_path=" + d.SearchPath
	}
	return dsn
}

// Kafka представляет конфигурацию Kafka. Пустой список брокеров отключает публикацию.
type Kafka struct {
	Brokers        []string `yaml:"brokers" envconfig:"KAFKA_BROKERS"`
	OrderFeedTopic string   `yaml:"order_feed_topic" envconfig:"STONE_ORDER_FEED_TOPIC"`
}

// Enabled reports whether the order feed should be published
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0 && k.OrderFeedTopic != ""
}

// Notifier представляет конфигурацию шлюза WhatsApp для оповещений
type Notifier struct {
	BaseURL string        `yaml:"base_url" envconfig:"WPP_BASE_URL"`
	Token   string        `yaml:"token" envconfig:"WPP_TOKEN"`
	Route   string        `yaml:"route" envconfig:"WPP_ROUTE"`
	Phone   string        `yaml:"phone" envconfig:"WPP_FONE"`
	IsGroup bool          `yaml:"is_group" envconfig:"WPP_IS_GROUP"`
	Timeout time.Duration `yaml:"timeout" envconfig:"WPP_TIMEOUT"`
	Header  string        `yaml:"header" envconfig:"WPP_HEADER"`
}

// Enabled reports whether alerts go to the WhatsApp gateway instead of the log only
func (n Notifier) Enabled() bool {
	return n.BaseURL != "" && n.Route != "" && n.Phone != ""
}

// Logger представляет конфигурацию логгера
type Logger struct {
	Level      string `yaml:"level" envconfig:"LOG_LEVEL"`
	Encoding   string `yaml:"encoding" envconfig:"LOG_ENCODING"`
	OutputPath string `yaml:"output_path" envconfig:"LOG_OUTPUT_PATH"`
}

// legacyDatabase holds the variable names used by earlier deployments
type legacyDatabase struct {
	Host     string `envconfig:"DB_ENDERECO"`
	Port     string `envconfig:"DB_PORTA"`
	User     string `envconfig:"DB_USUARIO"`
	Password string `envconfig:"DB_SENHA"`
	DBName   string `envconfig:"DB_NOME"`
}

// Default returns the configuration used when neither a file nor the environment set a value
func Default() Config {
	return Config{
		HTTP: HTTP{
			Port:            "8080",
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Database: Database{
			Host:            "localhost",
			Port:            "5432",
			User:            "postgres",
			Password:        "postgres",
			DBName:          "stone",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Kafka: Kafka{
			OrderFeedTopic: "stone.orders",
		},
		Notifier: Notifier{
			Timeout: 10 * time.Second,
			Header:  "+ Med Paciente",
		},
		Logger: Logger{
			Level:      "info",
			Encoding:   "json",
			OutputPath: "stdout",
		},
	}
}

// LoadConfig загружает конфигурацию: значения по умолчанию, затем файл CONFIG_PATH, затем переменные окружения
func LoadConfig() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found: %w", path, err)
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	var legacy legacyDatabase
	if err := envconfig.Process("", &legacy); err != nil {
		return fmt.Errorf("failed to read legacy database env: %w", err)
	}
	overrideString(&cfg.Database.Host, legacy.Host)
	overrideString(&cfg.Database.Port, legacy.Port)
	overrideString(&cfg.Database.User, legacy.User)
	overrideString(&cfg.Database.Password, legacy.Password)
	overrideString(&cfg.Database.DBName, legacy.DBName)

	// Sections are processed one by one so that keys are not prefixed with the section name.
	sections := map[string]any{
		"http":     &cfg.HTTP,
		"database": &cfg.Database,
		"kafka":    &cfg.Kafka,
		"notifier": &cfg.Notifier,
		"logger":   &cfg.Logger,
	}
	for name, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return fmt.Errorf("failed to read %s env: %w", name, err)
		}
	}

	return nil
}

func overrideString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
