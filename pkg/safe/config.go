package safe

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Backoff selects how the inter-attempt delay grows across retries.
type Backoff string

const (
	BackoffConstant    Backoff = "constant"
	BackoffLinear      Backoff = "linear"
	BackoffExponential Backoff = "exponential"
)

// Retry bounds additional attempts after an initial failure. Times 0 means
// no retry. Constructed once per call and read-only during the loop.
type Retry struct {
	Times int `json:"times" yaml:"times"`
}

// RetryCtx adds inter-attempt delay control for blocking operations. An
// empty Backoff means constant.
type RetryCtx struct {
	Times   int     `json:"times" yaml:"times"`
	DelayMS int     `json:"delay_ms" yaml:"delay_ms"`
	Backoff Backoff `json:"backoff" yaml:"backoff"`
}

// Config for synchronous execution. An omitted retry block implies zero
// retries.
type Config struct {
	Retry Retry `json:"retry" yaml:"retry"`
}

// ConfigCtx for blocking execution.
type ConfigCtx struct {
	Retry RetryCtx `json:"retry" yaml:"retry"`
}

// ParseConfig decodes a Config from YAML. Unrecognized keys are ignored by
// the decoder; negative times are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse safe config: %w", err)
	}
	if cfg.Retry.Times < 0 {
		return Config{}, fmt.Errorf("parse safe config: retry.times must be non-negative, got %d", cfg.Retry.Times)
	}
	return cfg, nil
}

// ParseConfigCtx decodes a ConfigCtx from YAML with the same leniency as
// ParseConfig, validating the backoff literal as well.
func ParseConfigCtx(data []byte) (ConfigCtx, error) {
	var cfg ConfigCtx
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ConfigCtx{}, fmt.Errorf("parse safe config: %w", err)
	}
	if cfg.Retry.Times < 0 {
		return ConfigCtx{}, fmt.Errorf("parse safe config: retry.times must be non-negative, got %d", cfg.Retry.Times)
	}
	if cfg.Retry.DelayMS < 0 {
		return ConfigCtx{}, fmt.Errorf("parse safe config: retry.delay_ms must be non-negative, got %d", cfg.Retry.DelayMS)
	}
	switch cfg.Retry.Backoff {
	case "", BackoffConstant, BackoffLinear, BackoffExponential:
	default:
		return ConfigCtx{}, fmt.Errorf("parse safe config: unknown backoff %q", cfg.Retry.Backoff)
	}
	return cfg, nil
}

// delay computes the pause before retry attempt i, 0-based counting from the
// first retry after the initial failure.
func (r RetryCtx) delay(attempt int) time.Duration {
	base := time.Duration(r.DelayMS) * time.Millisecond
	if base <= 0 {
		return 0
	}
	switch r.Backoff {
	case BackoffLinear:
		return base * time.Duration(attempt+1)
	case BackoffExponential:
		return base * time.Duration(1<<attempt)
	default:
		return base
	}
}

func firstConfig(cfg []Config) Config {
	if len(cfg) > 0 {
		return cfg[0]
	}
	return Config{}
}

func firstConfigCtx(cfg []ConfigCtx) ConfigCtx {
	if len(cfg) > 0 {
		return cfg[0]
	}
	return ConfigCtx{}
}
