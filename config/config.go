package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "SELLERDESK_CONFIG_FILE"
	envPrefix         = "SELLERDESK"
)

type Config struct {
	LogLevel       slog.Level    `mapstructure:"log_level"`
	ListenAddr     string        `mapstructure:"listen_addr"`
	APIBaseURL     string        `mapstructure:"api_base_url"`
	SessionFile    string        `mapstructure:"session_file"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

func Load() Config {
	// Local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	viper.SetDefault("log_level", "INFO")
	viper.SetDefault("listen_addr", "127.0.0.1:8080")
	viper.SetDefault("api_base_url", "http://localhost:3000")
	viper.SetDefault("session_file", defaultSessionFile())
	viper.SetDefault("request_timeout", 15*time.Second)

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if path := getConfigFilepath(); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			die(err)
		}
	}

	// slog.Level decodes from text ("INFO", "DEBUG"), which the default
	// hooks do not cover.
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))

	var cfg Config
	if err := viper.Unmarshal(&cfg, decodeHook); err != nil {
		die(err)
	}
	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "sellerdesk", "session.json")
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	LogLevel=%q
	ListenAddr=%q
	APIBaseURL=%q
	SessionFile=%q
	RequestTimeout=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.ListenAddr,
		c.APIBaseURL,
		c.SessionFile,
		c.RequestTimeout,
	)
}
