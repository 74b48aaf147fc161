package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB         DBConfig
	Server     ServerConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Token      TokenConfig
	Expedition ExpeditionConfig
	Catalog    CatalogConfig
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	AllowOrigins string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type TokenConfig struct {
	Secret string
	Issuer string
}

type ExpeditionConfig struct {
	// StateTTL bounds how long an idle expedition survives in the cache.
	StateTTL time.Duration
	// HistoryLimit caps the number of attempts returned by progress queries.
	HistoryLimit int
	// TranscriptLimit caps the chat messages kept in expedition state.
	TranscriptLimit int
}

type CatalogConfig struct {
	// Path overrides the bundled content when set.
	Path string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.idle_timeout", 20)
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 1521)
	v.SetDefault("db.name", "FREEPDB1")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("token.issuer", "arctic-chronicler")
	v.SetDefault("expedition.state_ttl", 24)
	v.SetDefault("expedition.history_limit", 20)
	v.SetDefault("expedition.transcript_limit", 100)
}

// LoadConfig reads config.yaml and applies environment overrides
// (e.g. SERVER_PORT, DB_HOST, REDIS_ADDRESS, TOKEN_SECRET). A missing file is
// not an error; defaults and the environment are used instead.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../configs")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Token: TokenConfig{
			Secret: v.GetString("token.secret"),
			Issuer: v.GetString("token.issuer"),
		},
		Expedition: ExpeditionConfig{
			StateTTL:        time.Duration(v.GetInt("expedition.state_ttl")) * time.Hour,
			HistoryLimit:    v.GetInt("expedition.history_limit"),
			TranscriptLimit: v.GetInt("expedition.transcript_limit"),
		},
		Catalog: CatalogConfig{
			Path: v.GetString("catalog.path"),
		},
	}
}

// GetDSN returns the go-ora connection URL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
