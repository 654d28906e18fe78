package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/sciseed/internal/config"
	"github.com/Rana718/sciseed/template"
)

func TestInitializeProject(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, initializeProject(template.SQLite))

	_, err := os.Stat(config.FileName)
	assert.NoError(t, err)

	env, err := os.ReadFile(".env")
	require.NoError(t, err)
	assert.Equal(t, "DATABASE_URL=sqlite://./university.sqlite\n", string(env))

	assert.Error(t, initializeProject(template.SQLite), "second init must not overwrite the config")
}

func TestHandleEnvFileKeepsExistingURL(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("DATABASE_URL=postgres://db/uni"), 0644))

	require.NoError(t, handleEnvFile("DATABASE_URL=mysql://x\n"))

	env, err := os.ReadFile(".env")
	require.NoError(t, err)
	assert.Equal(t, "DATABASE_URL=postgres://db/uni", string(env))
}

func TestHandleEnvFileAppends(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("OTHER=1"), 0644))

	require.NoError(t, handleEnvFile("DATABASE_URL=mysql://x\n"))

	env, err := os.ReadFile(".env")
	require.NoError(t, err)
	assert.Equal(t, "OTHER=1\n\n# Added by sciseed\nDATABASE_URL=mysql://x\n", string(env))
}
