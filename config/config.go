package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"cpu-scheduler-simulator/internal/schedulers"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	ContextSwitchDuration float64
	WorkloadPath          string
	ReportDir             string
}

// Load reads configuration into v from path, or from config.yaml in the working
// directory when path is empty. Environment variables prefixed with CPUSIM_ override
// file values, e.g. CPUSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(v *viper.Viper, path string) (*SchedulerConfig, error) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", schedulers.DefaultQuantum)
	v.SetDefault("scheduler.context_switch_duration", schedulers.DefaultContextSwitchDuration)
	v.SetDefault("workload.path", "")
	v.SetDefault("report.dir", "")

	v.SetEnvPrefix("cpusim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		ContextSwitchDuration: v.GetFloat64("scheduler.context_switch_duration"),
		WorkloadPath:          v.GetString("workload.path"),
		ReportDir:             v.GetString("report.dir"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if err := c.Options().Validate(); err != nil {
		return err
	}
	return nil
}

func (c *SchedulerConfig) Options() schedulers.Options {
	return schedulers.Options{
		Quantum:               c.RoundRobinTimeQuantum,
		ContextSwitchDuration: c.ContextSwitchDuration,
	}
}
