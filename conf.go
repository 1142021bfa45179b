package daytrack

import (
	"fmt"
	"os"
	"path"

	"github.com/joho/godotenv"
)

type Config struct {
	Backend     string
	DatabaseURL string
	RedisAddr   string
	LogLevel    string
	LogPath     string
	TimeFormat  string
	DevMode     bool
}

const (
	KeyBackend     = "DAYTRACK_BACKEND"
	KeyDatabaseURL = "DAYTRACK_DB_URL"
	KeyRedisAddr   = "DAYTRACK_REDIS_ADDR"
	KeyLogLevel    = "DAYTRACK_LOG_LEVEL"
	KeyLogPath     = "DAYTRACK_LOG_PATH"
	KeyTimeFormat  = "DAYTRACK_TIME_FORMAT"
	KeyDevMode     = "DAYTRACK_DEV_MODE"
)

const (
	BackendSqlite = "sqlite"
	BackendRedis  = "redis"

	DefaultBackend    = BackendSqlite
	DefaultRedisAddr  = "localhost:6379"
	DefaultLogLevel   = "WARN"
	DefaultTimeFormat = "Jan 02 15:04"
)

var (
	userHome, _        = os.UserHomeDir()
	DefaultDatabaseURL = path.Join(userHome, ".daytrack", "daytrack.db")
	DefaultLogPath     = path.Join(userHome, ".daytrack", "daytrack.log")
)

// DefaultConfFile is where LoadConfig looks when the caller has no preference.
func DefaultConfFile() string {
	cfgDir, _ := os.UserConfigDir()
	return path.Join(cfgDir, "daytrack", "daytrack.conf")
}

// LoadConfig resolves each setting from the environment, then confFile, then
// the defaults. confFile is created with the defaults if it does not exist.
func LoadConfig(confFile string) (Config, error) {
	if _, err := os.Stat(confFile); err != nil {
		if err := writeDefaultConf(confFile); err != nil {
			return Config{}, fmt.Errorf("failed to create default conf file: %w", err)
		}
	}

	fromFile, err := godotenv.Read(confFile)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read conf file %s: %w", confFile, err)
	}

	get := func(key, def string) string {
		return coalesce(os.Getenv(key), fromFile[key], def)
	}
	conf := Config{
		Backend:     get(KeyBackend, DefaultBackend),
		DatabaseURL: get(KeyDatabaseURL, DefaultDatabaseURL),
		RedisAddr:   get(KeyRedisAddr, DefaultRedisAddr),
		LogLevel:    get(KeyLogLevel, DefaultLogLevel),
		LogPath:     get(KeyLogPath, DefaultLogPath),
		TimeFormat:  get(KeyTimeFormat, DefaultTimeFormat),
		DevMode:     get(KeyDevMode, "") != "",
	}

	if conf.DevMode {
		conf.LogLevel = "DEBUG"
		conf.DatabaseURL = path.Join(os.TempDir(), "daytrack-dev.db")
		conf.LogPath = path.Join(os.TempDir(), "daytrack-dev.log")
	}

	switch conf.Backend {
	case BackendSqlite, BackendRedis:
	default:
		return Config{}, fmt.Errorf("unknown backend %q", conf.Backend)
	}

	return conf, nil
}

func writeDefaultConf(confFile string) error {
	if err := os.MkdirAll(path.Dir(confFile), 0o744); err != nil {
		return err
	}
	return godotenv.Write(map[string]string{
		KeyBackend:     DefaultBackend,
		KeyDatabaseURL: DefaultDatabaseURL,
		KeyLogLevel:    DefaultLogLevel,
		KeyLogPath:     DefaultLogPath,
		KeyTimeFormat:  DefaultTimeFormat,
	}, confFile)
}

func coalesce(args ...string) string {
	for _, s := range args {
		if s != "" {
			return s
		}
	}
	return ""
}
