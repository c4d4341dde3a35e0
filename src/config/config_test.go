package config

import (
	"os"
	"testing"

	helpers_test "github.com/eriklarko/truth-tabler/src/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {

	t.Run("valid, existing config", func(t *testing.T) {
		content := `show-steps: false
prompt: "? "`
		configFile := helpers_test.CreateTempFileWithContents(t, content)

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.False(t, config.ShowSteps)
		assert.Equal(t, "? ", config.Prompt)
	})

	t.Run("missing keys keep their defaults", func(t *testing.T) {
		content := `prompt: "logic> "`
		configFile := helpers_test.CreateTempFileWithContents(t, content)

		config, err := LoadConfig(configFile)
		require.NoError(t, err)

		assert.True(t, config.ShowSteps)
		assert.Equal(t, "logic> ", config.Prompt)
	})

	t.Run("invalid, existing config", func(t *testing.T) {
		content := `foo` // no keys
		configFile := helpers_test.CreateTempFileWithContents(t, content)

		_, err := LoadConfig(configFile)
		assert.False(t, os.IsNotExist(err))
		assert.Error(t, err)
	})

	t.Run("non-existing config", func(t *testing.T) {
		_, err := LoadConfig("non-existing.yaml")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestWriteConfig(t *testing.T) {
	configFile := helpers_test.CreateTempFile(t, "test_config.yaml").Name()

	config := &Config{
		ShowSteps: false,
		Prompt:    ">> ",

		Path: configFile,
	}

	err := config.Write()
	require.NoError(t, err)

	// Verify file content
	content, err := os.ReadFile(configFile)
	require.NoError(t, err)

	assert.Contains(t, string(content), "show-steps: false\n")
	assert.Contains(t, string(content), "prompt: '>> '\n")

	// and that it round-trips
	loaded, err := LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
