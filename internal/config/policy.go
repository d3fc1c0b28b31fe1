package config

import (
	"errors"
	"fmt"

	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// PolicyEnvPrefix prefixes environment overrides, e.g. POLICY_SMOOTHING_ALPHA.
const PolicyEnvPrefix = "POLICY"

// LoadPolicy builds the engine policy from the shipped defaults, an optional
// policy file and POLICY_* environment variables, in increasing precedence.
// An empty path looks for policy.{yaml,json,toml} in . and ./config and
// carries on without one.
func LoadPolicy(path string) (engine.Policy, error) {
	v := viper.New()

	var defaults map[string]any
	if err := mapstructure.Decode(engine.DefaultPolicy(), &defaults); err != nil {
		return engine.Policy{}, fmt.Errorf("encode default policy: %w", err)
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(PolicyEnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("policy")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return engine.Policy{}, fmt.Errorf("read policy file: %w", err)
		}
	}

	var policy engine.Policy
	if err := v.Unmarshal(&policy); err != nil {
		return engine.Policy{}, fmt.Errorf("decode policy: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return engine.Policy{}, fmt.Errorf("invalid policy: %w", err)
	}
	return policy, nil
}
