package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration for the run command, loaded from flags, env, or
// config file.
type Config struct {
	Authority         string
	BurnWallet        string
	MintAuthority     string
	MinEntry          uint64
	EntryTiers        []string
	MaxCapacity       int
	Ops               string
	Out               string
	PoolsOut          string
	Rejects           string
	StateFile         string
	BatchSize         int
	PGDSN             string
	LogLevel          string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return Config{}, err
	}

	v.SetDefault("min-entry", uint64(50_000_000))
	v.SetDefault("max-capacity", 10)
	v.SetDefault("out", "./data/settlements.jsonl")
	v.SetDefault("pools-out", "./data/pools.jsonl")
	v.SetDefault("rejects", "./data/rejected_ops.jsonl")
	v.SetDefault("state-file", "./data/state.json")
	v.SetDefault("batch-size", 100)
	v.SetDefault("log-level", "info")

	cfg := Config{
		Authority:         v.GetString("authority"),
		BurnWallet:        v.GetString("burn-wallet"),
		MintAuthority:     v.GetString("mint-authority"),
		MinEntry:          v.GetUint64("min-entry"),
		EntryTiers:        getStringSlice(v, "entry-tiers"),
		MaxCapacity:       v.GetInt("max-capacity"),
		Ops:               v.GetString("ops"),
		Out:               v.GetString("out"),
		PoolsOut:          v.GetString("pools-out"),
		Rejects:           v.GetString("rejects"),
		StateFile:         v.GetString("state-file"),
		BatchSize:         v.GetInt("batch-size"),
		PGDSN:             v.GetString("pg-dsn"),
		LogLevel:          v.GetString("log-level"),
	}

	return cfg, nil
}

// ParseAmounts converts decimal strings into amounts.
func ParseAmounts(items []string) ([]uint64, error) {
	if len(items) == 0 {
		return nil, nil
	}
	amounts := make([]uint64, 0, len(items))
	for _, item := range items {
		amount, err := strconv.ParseUint(strings.TrimSpace(item), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", item, err)
		}
		amounts = append(amounts, amount)
	}
	return amounts, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("RACEPOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
