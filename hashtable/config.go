package hashtable

import (
	"fmt"

	"github.com/on-the-ground/primetable/configkeys"
	"github.com/on-the-ground/primetable/shared/helper"
	"github.com/on-the-ground/primetable/shared/zaplog"
)

// Hasher names accepted in Config.Hasher.
const (
	HasherPoly37 = "poly37"
	HasherXXHash = "xxhash"
)

// Config describes a table in terms that can be read from a key-value
// binding map.
type Config struct {
	InitialSize int
	Hasher      string
	// LogLevel enables a console logger when non-empty.
	LogLevel string
}

// DefaultConfig returns the config used for keys absent from a binding map.
func DefaultConfig() Config {
	return Config{Hasher: HasherPoly37}
}

// LoadConfig reads the configkeys.ConfigHashTable* keys from bindingMap.
// Missing keys keep their defaults; a key holding the wrong type is an
// error wrapping ErrInvalidConfig.
func LoadConfig(bindingMap map[string]any) (Config, error) {
	cfg := DefaultConfig()
	var err error

	if cfg.InitialSize, err = lookupOr(bindingMap, configkeys.ConfigHashTableInitialSize, cfg.InitialSize); err != nil {
		return Config{}, err
	}
	if cfg.Hasher, err = lookupOr(bindingMap, configkeys.ConfigHashTableHasher, cfg.Hasher); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = lookupOr(bindingMap, configkeys.ConfigHashTableLogLevel, cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func lookupOr[T any](bindingMap map[string]any, key string, fallback T) (T, error) {
	raw, ok := bindingMap[key]
	if !ok {
		return fallback, nil
	}
	v, err := helper.GetTypedValueOf[T](func() (any, error) { return raw, nil })
	if err != nil {
		return fallback, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	return v, nil
}

// NewFromConfig builds a table from cfg. Options are applied after the
// ones derived from cfg, so they take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Table, error) {
	var derived []Option

	switch cfg.Hasher {
	case "", HasherPoly37:
		derived = append(derived, WithHasher(Poly37))
	case HasherXXHash:
		derived = append(derived, WithHasher(XXHash))
	default:
		return nil, fmt.Errorf("%w: unknown hasher %q", ErrInvalidConfig, cfg.Hasher)
	}

	if cfg.LogLevel != "" {
		logger, err := zaplog.New(zaplog.Level(cfg.LogLevel))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		derived = append(derived, WithLogger(logger))
	}

	return New(cfg.InitialSize, append(derived, opts...)...), nil
}
