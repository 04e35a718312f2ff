package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Admin     AdminConfig     `mapstructure:"admin"`
	Survey    SurveyConfig    `mapstructure:"survey"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AdminConfig gates the analytics dashboard. Password is a shared secret;
// PasswordHash, when set, takes precedence and is compared with bcrypt.
type AdminConfig struct {
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"`
	JWTSecret    string `mapstructure:"jwt_secret"`
	TokenHours   int    `mapstructure:"token_hours"`
}

type SurveyConfig struct {
	AccessCodes        map[string]string `mapstructure:"access_codes"`
	SessionTTLMinutes  int               `mapstructure:"session_ttl_minutes"`
	DeviceFlagTTLHours int               `mapstructure:"device_flag_ttl_hours"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("AI_ENG_TAM")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")
	viper.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")
	viper.BindEnv("server.port", "SERVER_PORT")

	// Admin dashboard
	viper.BindEnv("admin.password", "ADMIN_PASSWORD")
	viper.BindEnv("admin.password_hash", "ADMIN_PASSWORD_HASH")
	viper.BindEnv("admin.jwt_secret", "ADMIN_JWT_SECRET")

	// Survey access codes
	viper.BindEnv("survey.access_codes.faculty", "SURVEY_ACCESS_CODE_FACULTY")
	viper.BindEnv("survey.access_codes.student", "SURVEY_ACCESS_CODE_STUDENT")
	viper.BindEnv("survey.access_codes.practitioner", "SURVEY_ACCESS_CODE_PRACTITIONER")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// release 模式下校验管理口令强度
	if cfg.Server.Mode == "release" && cfg.Admin.PasswordHash == "" && len(cfg.Admin.Password) < 8 {
		return nil, fmt.Errorf("admin password is too short (%d chars), must be at least 8 characters in release mode", len(cfg.Admin.Password))
	}

	if cfg.Survey.SessionTTLMinutes <= 0 {
		cfg.Survey.SessionTTLMinutes = 120
	}
	if cfg.Admin.TokenHours <= 0 {
		cfg.Admin.TokenHours = 12
	}

	return &cfg, nil
}
