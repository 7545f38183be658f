package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	LogLevel       string
	FormatTimeout  time.Duration
	NpxBin         string
	ClangFormatBin string
	GofmtBin       string
	BlackBin       string
	PhpCsFixerBin  string
	PhpcbfBin      string
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3001")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FORMAT_TIMEOUT_SECONDS", 30)
	v.SetDefault("NPX_BIN", "npx")
	v.SetDefault("CLANG_FORMAT_BIN", "clang-format")
	v.SetDefault("GOFMT_BIN", "gofmt")
	v.SetDefault("BLACK_BIN", "black")
	v.SetDefault("PHP_CS_FIXER_BIN", "php-cs-fixer")
	v.SetDefault("PHPCBF_BIN", "phpcbf")

	return &Config{
		Port:           v.GetString("PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		FormatTimeout:  time.Duration(v.GetInt("FORMAT_TIMEOUT_SECONDS")) * time.Second,
		NpxBin:         v.GetString("NPX_BIN"),
		ClangFormatBin: v.GetString("CLANG_FORMAT_BIN"),
		GofmtBin:       v.GetString("GOFMT_BIN"),
		BlackBin:       v.GetString("BLACK_BIN"),
		PhpCsFixerBin:  v.GetString("PHP_CS_FIXER_BIN"),
		PhpcbfBin:      v.GetString("PHPCBF_BIN"),
	}
}
