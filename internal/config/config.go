package config

import (
	"fmt"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"     validate:"required"`
	Logger     LoggerConfig     `yaml:"logger"     validate:"required"`
	Gin        GinConfig        `yaml:"gin"        validate:"required"`
	Storage    StorageConfig    `yaml:"storage"    validate:"required"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	Redis      RedisConfig      `yaml:"redis"`
	Events     EventsConfig     `yaml:"events"     validate:"required"`
	Booking    BookingConfig    `yaml:"booking"    validate:"required"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"  validate:"required"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Cloudinary CloudinaryConfig `yaml:"cloudinary"`
	Auth       AuthConfig       `yaml:"auth"       validate:"required"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit" validate:"required"`
	Locations  []LocationSeed   `yaml:"locations"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
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

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres memory"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"safemeet"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
	MigrationsDir   string        `yaml:"migrations_dir"    env:"DB_MIGRATIONS_DIR"    env-default:"migrations"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig enables the distributed session lock when Addr is set.
type RedisConfig struct {
	Addr      string        `yaml:"addr"       env:"REDIS_ADDR"       env-default:""`
	Password  string        `yaml:"password"   env:"REDIS_PASSWORD"   env-default:""`
	DB        int           `yaml:"db"         env:"REDIS_DB"         env-default:"0"        validate:"min=0"`
	KeyPrefix string        `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"safemeet:lock:"`
	LockTTL   time.Duration `yaml:"lock_ttl"   env:"REDIS_LOCK_TTL"   env-default:"10s"`
	LockWait  time.Duration `yaml:"lock_wait"  env:"REDIS_LOCK_WAIT"  env-default:"5s"`
}

type EventsConfig struct {
	Driver   string `yaml:"driver"   env:"EVENTS_DRIVER"   env-default:"none"     validate:"required,oneof=none nats rabbitmq"`
	URL      string `yaml:"url"      env:"EVENTS_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"EVENTS_EXCHANGE" env-default:"safemeet.events"`
	Prefix   string `yaml:"prefix"   env:"EVENTS_PREFIX"   env-default:"safemeet"`
}

type BookingConfig struct {
	SessionTTL   time.Duration `yaml:"session_ttl"   env:"BOOKING_SESSION_TTL"   env-default:"24h" validate:"gt=0"`
	MinLeadTime  time.Duration `yaml:"min_lead_time" env:"BOOKING_MIN_LEAD_TIME" env-default:"2h"  validate:"gte=0"`
	SlotStep     time.Duration `yaml:"slot_step"     env:"BOOKING_SLOT_STEP"     env-default:"30m" validate:"gt=0"`
	CodeAttempts int           `yaml:"code_attempts" env:"BOOKING_CODE_ATTEMPTS" env-default:"5"   validate:"min=1"`
}

type SchedulerConfig struct {
	Interval  time.Duration `yaml:"interval"   env:"SCHEDULER_INTERVAL"   env-default:"30s" validate:"required,gt=0"`
	BatchSize int           `yaml:"batch_size" env:"SCHEDULER_BATCH_SIZE" env-default:"100" validate:"min=1"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

// CloudinaryConfig enables photo uploads when CloudName is set.
type CloudinaryConfig struct {
	CloudName string `yaml:"cloud_name" env:"CLOUDINARY_CLOUD_NAME" env-default:""`
	APIKey    string `yaml:"api_key"    env:"CLOUDINARY_API_KEY"    env-default:""`
	APISecret string `yaml:"api_secret" env:"CLOUDINARY_API_SECRET" env-default:""`
	Folder    string `yaml:"folder"     env:"CLOUDINARY_FOLDER"     env-default:"safemeet/verifications"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" validate:"required,min=16"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"   env:"RATE_LIMIT_RPS"   env-default:"5"  validate:"gt=0"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"20" validate:"min=1"`
}

// LocationSeed describes a meetup location created at start-up if missing.
type LocationSeed struct {
	ID              string                         `yaml:"id"                validate:"required"`
	Name            string                         `yaml:"name"              validate:"required"`
	Address         string                         `yaml:"address"           validate:"required"`
	SafetyLevel     string                         `yaml:"safety_level"`
	StaffContact    string                         `yaml:"staff_contact"`
	Timezone        string                         `yaml:"timezone"`
	CapacityPerSlot int                            `yaml:"capacity_per_slot"`
	OperatingHours  map[string][]domain.TimeWindow `yaml:"operating_hours"`
}

// Seeds converts the configured locations into service input keyed by id.
func (c *Config) Seeds() (map[string]domain.CreateLocationInput, error) {
	out := make(map[string]domain.CreateLocationInput, len(c.Locations))
	for _, l := range c.Locations {
		if _, dup := out[l.ID]; dup {
			return nil, fmt.Errorf("location %s is configured twice", l.ID)
		}

		hours := make(map[time.Weekday][]domain.TimeWindow, len(l.OperatingHours))
		for day, windows := range l.OperatingHours {
			wd, ok := domain.ParseWeekday(day)
			if !ok {
				return nil, fmt.Errorf("location %s: unknown weekday %q", l.ID, day)
			}
			hours[wd] = append(hours[wd], windows...)
		}

		out[l.ID] = domain.CreateLocationInput{
			Name:            l.Name,
			Address:         l.Address,
			SafetyLevel:     domain.SafetyLevel(l.SafetyLevel),
			StaffContact:    l.StaffContact,
			Timezone:        l.Timezone,
			OperatingHours:  hours,
			CapacityPerSlot: l.CapacityPerSlot,
		}
	}
	return out, nil
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
