package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			assert.Equal(t, tt.expected, GetEnvWithDefault(tt.key, tt.defaultValue))
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Run("int parses when valid", func(t *testing.T) {
		t.Setenv("RETRIES", "3")
		assert.Equal(t, 3, GetEnvAsType("RETRIES", 5))
	})

	t.Run("int falls back when invalid", func(t *testing.T) {
		t.Setenv("RETRIES", "three")
		assert.Equal(t, 5, GetEnvAsType("RETRIES", 5))
	})

	t.Run("bool parses when valid", func(t *testing.T) {
		t.Setenv("FLAG", "true")
		assert.True(t, GetEnvAsType("FLAG", false))
	})

	t.Run("unset falls back", func(t *testing.T) {
		os.Unsetenv("NOT_THERE")
		assert.Equal(t, "fallback", GetEnvAsType("NOT_THERE", "fallback"))
	})
}

func TestLoadConfig(t *testing.T) {
	vars := []string{"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL", "DB_URI", "DB_CONNECT_RETRIES"}
	cleanupTestEnv := func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DB_URI", "postgres://pizza:secret@db:5432/pizzas?sslmode=disable")
		t.Setenv("DB_CONNECT_RETRIES", "2")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "postgres://pizza:secret@db:5432/pizzas?sslmode=disable", config.DatabaseURI)
		assert.Equal(t, 2, config.DBConnectRetries)
		assert.Equal(t, "0.0.0.0:9000", config.Address())
	})

	t.Run("log level follows APP_ENV when LOG_LEVEL is unset", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_ENV", "production")

		config, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "error", config.LogLevel)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 5555, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "development", config.Environment)
		assert.Equal(t, DefaultDatabaseURI, config.DatabaseURI)
		assert.Equal(t, 5, config.DBConnectRetries)
	})
}

func TestConfigStringMasksPassword(t *testing.T) {
	config := &Config{
		Port:        5555,
		Host:        "localhost",
		DatabaseURI: "postgres://pizza:secret@db:5432/pizzas",
	}

	s := config.String()
	assert.NotContains(t, s, "secret")
	assert.Contains(t, s, "pizza:REDACTED@db:5432")
}

func TestConfigStringKeepsFilePaths(t *testing.T) {
	config := &Config{DatabaseURI: "app.db"}
	assert.Contains(t, config.String(), "DatabaseURI: app.db")
}

func TestLevelForEnvironment(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, LevelForEnvironment("development"))
	assert.Equal(t, logrus.ErrorLevel, LevelForEnvironment("production"))
	assert.Equal(t, logrus.InfoLevel, LevelForEnvironment("staging"))
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
