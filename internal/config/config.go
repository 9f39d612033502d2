package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Sheets    SheetsConfig    `yaml:"sheets"`
	Recaptcha RecaptchaConfig `yaml:"recaptcha"`
	Admin     AdminConfig     `yaml:"admin"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"release" validate:"required,oneof=debug release test"`
}

// PostgresConfig is optional on purpose: without a URL the service runs on
// the sheet destination alone and the dashboard reports the store as down.
type PostgresConfig struct {
	URL             string        `yaml:"url"               env:"DATABASE_URL"         env-default:""`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10" validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"  validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m" validate:"gt=0"`
}

func (p *PostgresConfig) Configured() bool {
	return p.URL != ""
}

type SheetsConfig struct {
	ServiceAccountEmail string `yaml:"service_account_email" env:"GOOGLE_SERVICE_ACCOUNT_EMAIL" env-default:""`
	PrivateKey          string `yaml:"private_key"           env:"GOOGLE_PRIVATE_KEY"           env-default:""`
	SheetID             string `yaml:"sheet_id"              env:"GOOGLE_SHEET_ID"              env-default:""`
}

type RecaptchaConfig struct {
	SecretKey string `yaml:"secret_key" env:"RECAPTCHA_SECRET_KEY" env-default:""`
}

type AdminConfig struct {
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-default:""`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	// Local development keeps secrets in .env; missing file is fine.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
