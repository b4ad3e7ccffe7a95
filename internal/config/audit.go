package config

import "github.com/spf13/pflag"

// AuditConfig holds configuration for the audit command.
type AuditConfig struct {
	In       string
	LogLevel string
}

// LoadAudit merges config file, environment variables, and flags into
// AuditConfig.
func LoadAudit(cfgFile string, flags *pflag.FlagSet) (AuditConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return AuditConfig{}, err
	}

	v.SetDefault("in", "./data/settlements.jsonl")
	v.SetDefault("log-level", "info")

	cfg := AuditConfig{
		In:       v.GetString("in"),
		LogLevel: v.GetString("log-level"),
	}

	return cfg, nil
}
