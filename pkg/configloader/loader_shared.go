package configloader

import (
	"github.com/hyp3rd/ewrap"
	"github.com/sirupsen/logrus"

	"github.com/hyp3rd/statebuffer"
)

type rawConfig struct {
	MaxBufferSize        *int   `mapstructure:"max_buffer_size"         yaml:"max_buffer_size"`
	KeepLastSensorHandle *bool  `mapstructure:"keep_last_sensor_handle" yaml:"keep_last_sensor_handle"`
	LogLevel             string `mapstructure:"log_level"               yaml:"log_level"`
	Color                struct {
		Enable   *bool `mapstructure:"enable"    yaml:"enable"`
		ForceTTY *bool `mapstructure:"force_tty" yaml:"force_tty"`
	} `mapstructure:"color" yaml:"color"`
}

func applyRaw(raw rawConfig) (statebuffer.Config, error) {
	cfg := statebuffer.DefaultConfig()

	if raw.MaxBufferSize != nil {
		cfg.MaxBufferSize = *raw.MaxBufferSize
	}

	if raw.KeepLastSensorHandle != nil {
		cfg.KeepLastSensorHandle = *raw.KeepLastSensorHandle
	}

	if raw.LogLevel != "" {
		level, err := logrus.ParseLevel(raw.LogLevel)
		if err != nil {
			return statebuffer.Config{}, ewrap.Wrap(err, "invalid log level").
				WithMetadata("log_level", raw.LogLevel)
		}

		logger := logrus.New()
		logger.SetLevel(level)
		cfg.Logger = logger
	}

	if raw.Color.Enable != nil {
		cfg.Color.Enable = *raw.Color.Enable
	}

	if raw.Color.ForceTTY != nil {
		cfg.Color.ForceTTY = *raw.Color.ForceTTY
	}

	return cfg, nil
}

func allKeys() []string {
	return []string{
		"max_buffer_size",
		"keep_last_sensor_handle",
		"log_level",
		"color.enable",
		"color.force_tty",
	}
}
