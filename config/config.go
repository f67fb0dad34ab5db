// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/fortunevm/consts"
	"github.com/ava-labs/fortunevm/event"
	"github.com/ava-labs/fortunevm/pebble"
	"github.com/ava-labs/fortunevm/trace"
)

// EnvPrefix is prepended to every environment variable read by [Load].
const EnvPrefix = "FORTUNEVM_"

var (
	ErrInvalidSlotDuration = errors.New("slot duration must be positive")
	ErrMissingDataDir      = errors.New("data dir is required")
)

type Config struct {
	DataDir string `yaml:"dataDir" env:"DATA_DIR"`

	LogLevel        string `yaml:"logLevel"        env:"LOG_LEVEL"`
	LogDisplayLevel string `yaml:"logDisplayLevel" env:"LOG_DISPLAY_LEVEL"`
	LogMaxSizeMB    int    `yaml:"logMaxSizeMB"    env:"LOG_MAX_SIZE_MB"`
	LogMaxBackups   int    `yaml:"logMaxBackups"   env:"LOG_MAX_BACKUPS"`

	// GenesisUnix is the wall clock second slot 0 starts at.
	GenesisUnix  int64         `yaml:"genesisUnix"  env:"GENESIS_UNIX"`
	SlotDuration time.Duration `yaml:"slotDuration" env:"SLOT_DURATION"`

	RPCAddr     string `yaml:"rpcAddr"     env:"RPC_ADDR"`
	MetricsAddr string `yaml:"metricsAddr" env:"METRICS_ADDR"`

	Pebble  pebble.Config       `yaml:"pebble"  envPrefix:"PEBBLE_"`
	Journal event.JournalConfig `yaml:"journal" envPrefix:"JOURNAL_"`
	Trace   trace.Config        `yaml:"trace"   envPrefix:"TRACE_"`
}

func NewDefaultConfig() *Config {
	return &Config{
		DataDir:         ".fortunevm",
		LogLevel:        logging.Info.String(),
		LogDisplayLevel: logging.Info.String(),
		LogMaxSizeMB:    8,
		LogMaxBackups:   4,
		SlotDuration:    400 * time.Millisecond,
		RPCAddr:         "127.0.0.1:9650",
		MetricsAddr:     "127.0.0.1:9651",
		Pebble:          pebble.NewDefaultConfig(),
		Journal: event.JournalConfig{
			MaxSizeMB:  16,
			MaxBackups: 8,
		},
		Trace: trace.Config{
			Enabled:         false,
			TraceSampleRate: 1,
			Endpoint:        trace.DefaultEndpoint,
			AppName:         consts.Name,
			Version:         consts.Version,
		},
	}
}

// Load starts from the defaults, applies the YAML file at [path] (if any)
// and then any FORTUNEVM_* environment variables.
func Load(path string) (*Config, error) {
	c := NewDefaultConfig()
	if len(path) > 0 {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.UnmarshalStrict(b, c); err != nil {
			return nil, fmt.Errorf("%w: unable to parse %s", err, path)
		}
	}
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, c.Verify()
}

func (c *Config) Verify() error {
	if len(c.DataDir) == 0 {
		return ErrMissingDataDir
	}
	if c.SlotDuration <= 0 {
		return ErrInvalidSlotDuration
	}
	if _, err := logging.ToLevel(c.LogLevel); err != nil {
		return err
	}
	_, err := logging.ToLevel(c.LogDisplayLevel)
	return err
}

func (c *Config) GetLogLevel() logging.Level {
	l, _ := logging.ToLevel(c.LogLevel)
	return l
}

func (c *Config) GetLogDisplayLevel() logging.Level {
	l, _ := logging.ToLevel(c.LogDisplayLevel)
	return l
}

func (c *Config) GetGenesis() time.Time {
	return time.Unix(c.GenesisUnix, 0)
}

func (c *Config) GetTraceConfig() *trace.Config {
	return &c.Trace
}

// Paths inside [DataDir].

func (c *Config) DatabasePath() string { return filepath.Join(c.DataDir, "db") }
func (c *Config) LogPath() string      { return filepath.Join(c.DataDir, "logs", consts.Name+".log") }
func (c *Config) KeyPath() string      { return filepath.Join(c.DataDir, "key.pk") }

// JournalConfig returns the journal config with its path defaulted into
// [DataDir].
func (c *Config) JournalConfig() event.JournalConfig {
	j := c.Journal
	if len(j.Path) == 0 {
		j.Path = filepath.Join(c.DataDir, "events.jsonl")
	}
	return j
}
