package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = "CANTEEN"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "CANTEEN_DB_DSN"
	EnvDBHost = "CANTEEN_DB_HOST"
	EnvDBUser = "CANTEEN_DB_USER"
	EnvDBName = "CANTEEN_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Orders        OrdersConfig
	Slots         SlotsConfig
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
	Env          string `envconfig:"CANTEEN_APP_ENV" required:"true"`
	Port         string `envconfig:"CANTEEN_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CANTEEN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CANTEEN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

type DBConfig struct {
	DSN string `envconfig:"CANTEEN_DB_DSN"`

	LegacyHost     string `envconfig:"CANTEEN_DB_HOST"`
	LegacyPort     int    `envconfig:"CANTEEN_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CANTEEN_DB_USER"`
	LegacyPassword string `envconfig:"CANTEEN_DB_PASSWORD"`
	LegacyName     string `envconfig:"CANTEEN_DB_NAME"`
	LegacySSLMode  string `envconfig:"CANTEEN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CANTEEN_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CANTEEN_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CANTEEN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CANTEEN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CANTEEN_REDIS_URL" required:"true"`
	PoolSize     int           `envconfig:"CANTEEN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CANTEEN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CANTEEN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CANTEEN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CANTEEN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"CANTEEN_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"CANTEEN_JWT_ISSUER" default:"campus-canteen"`
	ExpirationMinutes      int    `envconfig:"CANTEEN_JWT_EXPIRATION_MINUTES" default:"10080"`
	RefreshTokenTTLMinutes int    `envconfig:"CANTEEN_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CANTEEN_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CANTEEN_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CANTEEN_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CANTEEN_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CANTEEN_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow           time.Duration `envconfig:"CANTEEN_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit    int           `envconfig:"CANTEEN_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit          int           `envconfig:"CANTEEN_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow        time.Duration `envconfig:"CANTEEN_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterUsernameLimit int           `envconfig:"CANTEEN_AUTH_RATE_LIMIT_REGISTER_USERNAME_LIMIT" default:"3"`
	RegisterIPLimit       int           `envconfig:"CANTEEN_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate  bool `envconfig:"CANTEEN_AUTO_MIGRATE" default:"false"`
	SeedDefaults bool `envconfig:"CANTEEN_SEED_DEFAULTS" default:"true"`
}

type OrdersConfig struct {
	// StrictFlow rejects backward status transitions. The legacy behavior lets
	// staff overwrite any status, so this defaults off.
	StrictFlow bool `envconfig:"CANTEEN_ORDERS_STRICT_FLOW" default:"false"`
	// ValidateTotals cross-checks the submitted total against the line items.
	ValidateTotals bool `envconfig:"CANTEEN_ORDERS_VALIDATE_TOTALS" default:"true"`
}

type SlotsConfig struct {
	DefaultCapacity int `envconfig:"CANTEEN_SLOTS_DEFAULT_CAPACITY" default:"20"`
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
