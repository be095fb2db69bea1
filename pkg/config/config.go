package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "rolodex"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "ROLODEX_DB_DSN"
	EnvDBHost = "ROLODEX_DB_HOST"
	EnvDBUser = "ROLODEX_DB_USER"
	EnvDBName = "ROLODEX_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	Password PasswordConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ROLODEX_APP_ENV" required:"true"`
	Port         string `envconfig:"ROLODEX_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ROLODEX_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ROLODEX_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ROLODEX_DB_DSN"`
	Driver string `envconfig:"ROLODEX_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ROLODEX_DB_HOST"`
	LegacyPort     int    `envconfig:"ROLODEX_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ROLODEX_DB_USER"`
	LegacyPassword string `envconfig:"ROLODEX_DB_PASSWORD"`
	LegacyName     string `envconfig:"ROLODEX_DB_NAME"`
	LegacySSLMode  string `envconfig:"ROLODEX_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ROLODEX_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ROLODEX_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ROLODEX_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ROLODEX_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"ROLODEX_AUTO_MIGRATE" default:"false"`
}

type JWTConfig struct {
	Secret            string `envconfig:"ROLODEX_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ROLODEX_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"ROLODEX_JWT_EXPIRATION_MINUTES" required:"true"`
}

// TokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"ROLODEX_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"ROLODEX_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"ROLODEX_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"ROLODEX_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"ROLODEX_ARGON_KEY_LEN" default:"32"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ROLODEX_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
