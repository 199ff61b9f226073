package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Chart  ChartConfig
	Ledger LedgerConfig
}

// ChartConfig holds chart geometry defaults; the live terminal width can
// still override these at render time.
type ChartConfig struct {
	Width  int
	Height int
}

// LedgerConfig holds input settings.
type LedgerConfig struct {
	Dir string // base path for relative ledger file names
}

// Load reads configuration from file and env. Env var overrides use
// prefix FINTRACK_.
func Load() (Config, error) {
	v := viper.New()

	cwd, _ := os.Getwd()
	v.SetDefault("chart.width", 72)
	v.SetDefault("chart.height", 12)
	v.SetDefault("ledger.dir", cwd)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FINTRACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		dir, err := os.UserConfigDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(dir, "fintrack"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FINTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

func normalize(c Config) Config {
	if c.Chart.Width < 40 || c.Chart.Width > 200 {
		c.Chart.Width = 72
	}
	if c.Chart.Height < 8 || c.Chart.Height > 30 {
		c.Chart.Height = 12
	}
	if strings.TrimSpace(c.Ledger.Dir) == "" {
		c.Ledger.Dir, _ = os.Getwd()
	}
	return c
}
