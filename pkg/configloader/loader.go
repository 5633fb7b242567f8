// Package configloader builds statebuffer configurations from YAML documents,
// configuration files, and environment variables using Viper.
//
// The loader never fails on out-of-contract capacity values: a non-positive
// max_buffer_size is passed through and rejected by the buffer constructor,
// which silently retains the default capacity.
package configloader

import (
	"bytes"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/viper"

	"github.com/hyp3rd/statebuffer"
	"github.com/hyp3rd/statebuffer/internal/utils"
)

const defaultEnvPrefix = "STATEBUFFER"

// FromEnv loads configuration sourced from environment variables using the provided prefix.
// Environment keys are normalized by uppercasing and replacing dots with underscores.
func FromEnv(prefix string) (statebuffer.Config, error) {
	viperInstance := viper.New()

	normalized := normalizePrefix(prefix)

	err := bindEnvironment(viperInstance, normalized)
	if err != nil {
		return statebuffer.Config{}, err
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return statebuffer.Config{}, err
	}

	return applyRaw(raw)
}

// FromYAML loads configuration from a YAML document provided as bytes.
func FromYAML(data []byte) (statebuffer.Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return statebuffer.Config{}, ewrap.Wrap(err, "failed to read YAML configuration")
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return statebuffer.Config{}, err
	}

	return applyRaw(raw)
}

// FromFile loads configuration from a YAML file and merges environment
// overrides using the default prefix. Relative paths are confined to the
// system's temporary directory.
func FromFile(path string) (statebuffer.Config, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, defaultEnvPrefix)
	if err != nil {
		return statebuffer.Config{}, err
	}

	securePath, err := utils.SecurePath(path)
	if err != nil {
		return statebuffer.Config{}, err
	}

	viperInstance.SetConfigFile(securePath)

	err = viperInstance.ReadInConfig()
	if err != nil {
		return statebuffer.Config{}, ewrap.Wrap(err, "failed to read configuration file").
			WithMetadata("path", path)
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return statebuffer.Config{}, err
	}

	return applyRaw(raw)
}

func loadRawFromViper(viperInstance *viper.Viper) (rawConfig, error) {
	var raw rawConfig

	for _, key := range allKeys() {
		if !viperInstance.IsSet(key) {
			continue
		}

		viperInstance.Set(key, viperInstance.Get(key))
	}

	err := viperInstance.Unmarshal(&raw)
	if err != nil {
		return rawConfig{}, ewrap.Wrap(err, "failed to decode configuration")
	}

	return raw, nil
}

func bindEnvironment(viperInstance *viper.Viper, prefix string) error {
	replacer := strings.NewReplacer(".", "_")
	viperInstance.SetEnvKeyReplacer(replacer)

	if prefix != "" {
		viperInstance.SetEnvPrefix(prefix)
	}

	viperInstance.AutomaticEnv()

	for _, key := range allKeys() {
		err := viperInstance.BindEnv(key)
		if err != nil {
			return ewrap.Wrap(err, "failed to bind environment key").
				WithMetadata("key", key).
				WithMetadata("prefix", prefix)
		}
	}

	return nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return defaultEnvPrefix
	}

	prefix = strings.TrimSuffix(prefix, "_")
	prefix = strings.ReplaceAll(prefix, "-", "_")

	return strings.ToUpper(prefix)
}
