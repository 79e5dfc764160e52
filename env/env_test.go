package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {

	for _, key := range []string{
		"PORT", "BOOKS_DB_FILE", "STORAGE_DRIVER", "MONGODB_URI", "MONGODB_NAME",
		"MONGODB_COLLECTION", "LOG_FORMAT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {

	t.Run("Should use defaults when nothing is set", func(t *testing.T) {

		clearEnv(t)

		env, err := GetEnv()
		require.NoError(t, err)
		require.Equal(t, Default(), *env)
		require.Equal(t, 8181, env.Server.Port)
		require.Equal(t, "db.json", env.Storage.DBFile)
	})

	t.Run("Should read values from environment", func(t *testing.T) {

		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("BOOKS_DB_FILE", "/var/lib/books/db.json")
		t.Setenv("STORAGE_DRIVER", "MongoDB")
		t.Setenv("MONGODB_URI", "mongodb://mongo:27017")
		t.Setenv("MONGODB_NAME", "library")
		t.Setenv("MONGODB_COLLECTION", "mirror")
		t.Setenv("LOG_FORMAT", "JSON")
		t.Setenv("LOG_LEVEL", "debug")

		env, err := GetEnv()
		require.NoError(t, err)
		require.Equal(t, Env{
			Server:  ServerConfig{Port: 9090},
			Storage: StorageConfig{Driver: MongoDBStorageDriver, DBFile: "/var/lib/books/db.json"},
			MongoDB: MongoDBConfig{URI: "mongodb://mongo:27017", DB: "library", Collection: "mirror"},
			Log:     LogConfig{Format: "json", Level: slog.LevelDebug},
		}, *env)
	})

	t.Run("Should throw error on invalid values", func(t *testing.T) {

		var testCases = map[string]struct {
			Key   string
			Value string
		}{
			"Non-numeric port":  {Key: "PORT", Value: "http"},
			"Out of range port": {Key: "PORT", Value: "70000"},
			"Unknown driver":    {Key: "STORAGE_DRIVER", Value: "sqlite"},
			"Unknown log level": {Key: "LOG_LEVEL", Value: "loud"},
		}

		for name, testCase := range testCases {

			t.Run(name, func(t *testing.T) {

				clearEnv(t)
				t.Setenv(testCase.Key, testCase.Value)

				env, err := GetEnv()
				require.Error(t, err)
				require.Nil(t, env)
			})
		}
	})
}

func TestLoadDotEnv(t *testing.T) {

	t.Run("Should skip missing file", func(t *testing.T) {
		require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("Should seed unset variables only", func(t *testing.T) {

		clearEnv(t)
		require.NoError(t, os.Unsetenv("BOOKS_DB_FILE"))
		t.Setenv("PORT", "7070")

		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("PORT=6060\nBOOKS_DB_FILE=seeded.json\n"), 0o644))
		t.Cleanup(func() { os.Unsetenv("BOOKS_DB_FILE") })

		require.NoError(t, LoadDotEnv(file))

		env, err := GetEnv()
		require.NoError(t, err)
		require.Equal(t, 7070, env.Server.Port)
		require.Equal(t, "seeded.json", env.Storage.DBFile)
	})
}
