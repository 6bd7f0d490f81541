package main

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// serverConfig is the layered configuration for stegoserver: environment
// variables (STEGOCRYPT_*) override an optional config file
// (stegoserver.yaml in the working directory or /etc/stegocrypt/), which
// overrides the defaults below. No command-line flags are read.
type serverConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	GinMode      string
}

func loadConfig() serverConfig {
	v := viper.New()
	v.SetEnvPrefix("STEGOCRYPT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("stegoserver")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/stegocrypt")

	v.SetDefault("port", "8080")
	v.SetDefault("read_timeout", 30*time.Second)
	v.SetDefault("write_timeout", 30*time.Second)
	v.SetDefault("idle_timeout", 60*time.Second)
	v.SetDefault("gin_mode", "release")

	// A missing config file is fine: env vars and defaults still apply.
	_ = v.ReadInConfig()

	return serverConfig{
		Port:         v.GetString("port"),
		ReadTimeout:  v.GetDuration("read_timeout"),
		WriteTimeout: v.GetDuration("write_timeout"),
		IdleTimeout:  v.GetDuration("idle_timeout"),
		GinMode:      v.GetString("gin_mode"),
	}
}
