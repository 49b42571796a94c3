package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvFileVar names the environment variable holding the config file path.
const EnvFileVar = "WORKLOG_ENV"

// DefaultEnvFile is used when EnvFileVar is unset.
const DefaultEnvFile = ".env"

// Account is the single account allowed to use the API.
type Account struct {
	Username string
	Password string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Log struct {
		Level string
	}
	Account Account
}

// Load reads the JSON config file named by WORKLOG_ENV (default .env).
func Load() (*Config, error) {
	path := os.Getenv(EnvFileVar)
	if path == "" {
		path = DefaultEnvFile
	}
	return LoadFile(path)
}

// LoadFile reads config from a JSON file. Keys may be nested
// ({"account": {"password": ...}}) or flat ({"account.password": ...}).
// Any key can be overridden by WORKLOG_<KEY> with dots replaced by underscores.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WORKLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(path)
	// .env would otherwise be parsed as dotenv.
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.SetDefault("http.addr", ":5000")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("log.level", "info")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Account.Username = v.GetString("account.username")
	cfg.Account.Password = v.GetString("account.password")

	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("db.dsn is required (WORKLOG_DB_DSN)")
	}
	if cfg.Account.Password == "" {
		return nil, fmt.Errorf("account.password is required (WORKLOG_ACCOUNT_PASSWORD)")
	}

	return cfg, nil
}
