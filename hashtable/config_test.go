package hashtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/primetable/configkeys"
	"github.com/on-the-ground/primetable/hashtable"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := hashtable.LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, hashtable.DefaultConfig(), cfg)
	assert.Equal(t, hashtable.HasherPoly37, cfg.Hasher)
}

func TestLoadConfig_ReadsKeys(t *testing.T) {
	cfg, err := hashtable.LoadConfig(map[string]any{
		configkeys.ConfigHashTableInitialSize: 8000,
		configkeys.ConfigHashTableHasher:      hashtable.HasherXXHash,
		configkeys.ConfigHashTableLogLevel:    "warn",
		"config.unrelated":                    true,
	})
	require.NoError(t, err)
	assert.Equal(t, hashtable.Config{
		InitialSize: 8000,
		Hasher:      hashtable.HasherXXHash,
		LogLevel:    "warn",
	}, cfg)
}

func TestLoadConfig_WrongType(t *testing.T) {
	_, err := hashtable.LoadConfig(map[string]any{
		configkeys.ConfigHashTableInitialSize: "large",
	})
	assert.ErrorIs(t, err, hashtable.ErrInvalidConfig)
	assert.Contains(t, err.Error(), configkeys.ConfigHashTableInitialSize)
}

func TestNewFromConfig(t *testing.T) {
	tbl, err := hashtable.NewFromConfig(hashtable.Config{
		InitialSize: 8000,
		Hasher:      hashtable.HasherXXHash,
		LogLevel:    "error",
	})
	require.NoError(t, err)
	assert.Equal(t, 11551, tbl.Capacity())

	require.NoError(t, tbl.Insert("k", "v"))
	v, ok := tbl.Lookup("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestNewFromConfig_Invalid(t *testing.T) {
	_, err := hashtable.NewFromConfig(hashtable.Config{Hasher: "md5"})
	assert.ErrorIs(t, err, hashtable.ErrInvalidConfig)

	_, err = hashtable.NewFromConfig(hashtable.Config{LogLevel: "loud"})
	assert.ErrorIs(t, err, hashtable.ErrInvalidConfig)
}
