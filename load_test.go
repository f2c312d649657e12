package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	want := Config{
		Allocation: "p12345",
		Username:   "jdoe",
	}
	for _, file := range []string{
		"testfiles/config.yaml",
		"testfiles/config.toml",
	} {
		got, err := LoadConfig(afero.NewOsFs(), file)
		require.NoError(t, err, file)
		if got != want {
			t.Errorf("%s: got %v, wanted %v\n", file, got, want)
		}
	}
}

func TestLoadConfigMissingKey(t *testing.T) {
	_, err := LoadConfig(afero.NewOsFs(), "testfiles/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"username"`)
	assert.NotContains(t, err.Error(), `"allocation"`)
}

func TestLoadConfigErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := LoadConfig(fs, "config.yaml")
	assert.Error(t, err)

	_, err = LoadConfig(afero.NewOsFs(), "testfiles/bad.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "empty.yaml", nil, 0644))
	_, err = LoadConfig(fs, "empty.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"allocation"`)
	assert.Contains(t, err.Error(), `"username"`)
}

func TestParseConfig(t *testing.T) {
	got, err := ParseConfig([]byte("allocation = \"b1042\"\nusername = \"abc123\"\n"), "toml")
	require.NoError(t, err)
	assert.Equal(t, Config{Allocation: "b1042", Username: "abc123"}, got)

	// unknown keys are ignored
	got, err = ParseConfig([]byte("allocation: b1042\nusername: abc123\nextra: 1\n"), "yaml")
	require.NoError(t, err)
	assert.Equal(t, Config{Allocation: "b1042", Username: "abc123"}, got)
}
