package util

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	MaxBodyLength     int           `mapstructure:"MAX_BODY_LENGTH"`
	OpenPostTTL       time.Duration `mapstructure:"OPEN_POST_TTL"`
	RenderCacheTTL    time.Duration `mapstructure:"RENDER_CACHE_TTL"`
	MaxInlineDepth    int           `mapstructure:"MAX_INLINE_DEPTH"`
	CodeLexer         string        `mapstructure:"CODE_LEXER"`
}

// defaults for everything that has a sane value without deployment specifics
func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("MAX_BODY_LENGTH", 2000)
	v.SetDefault("OPEN_POST_TTL", 30*time.Minute)
	v.SetDefault("RENDER_CACHE_TTL", 10*time.Minute)
	v.SetDefault("MAX_INLINE_DEPTH", 4)
	v.SetDefault("CODE_LEXER", "c")
}

// LoadConfig reads app.env from path and overrides it with environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	// env files carry lists as comma separated strings
	config.AllowedOrigins = splitList(config.AllowedOrigins)
	return
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The address may come with or without a scheme. If no port is specified, port will be an
// empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		err = fmt.Errorf("error parsing http server url: %w", err)
		return
	}

	if u.Hostname() == "" {
		err = fmt.Errorf("http server address %q has no host", config.HTTPServerAddress)
		return
	}

	return u.Hostname(), u.Port(), nil
}

// ListenAddress returns the host:port pair the HTTP server binds to.
func (config *Config) ListenAddress() (string, error) {
	host, port, err := config.ExtractHostPort()
	if err != nil {
		return "", err
	}
	if port == "" {
		port = "80"
	}
	return net.JoinHostPort(host, port), nil
}
