package template

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	raw, err := NewProjectTemplate(MySQL).GetConfig()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	db := doc["database"].(map[string]interface{})
	assert.Equal(t, "mysql", db["provider"])
	assert.Equal(t, "DATABASE_URL", db["url_env"])

	seed := doc["seed"].(map[string]interface{})
	assert.EqualValues(t, 10, seed["faculties"])
	assert.EqualValues(t, 40, seed["scientists_per_faculty"])
	assert.Equal(t, true, seed["unique"])
}

func TestGetEnvTemplate(t *testing.T) {
	assert.Equal(t, "DATABASE_URL=sqlite://./university.sqlite\n", NewProjectTemplate(SQLite).GetEnvTemplate())
	assert.Empty(t, NewProjectTemplate(Export).GetEnvTemplate())
}

func TestValidateDatabaseType(t *testing.T) {
	assert.Equal(t, PostgreSQL, ValidateDatabaseType("postgres"))
	assert.Equal(t, SQLite, ValidateDatabaseType("sqlite3"))
	assert.Equal(t, Export, ValidateDatabaseType("export"))
	assert.Equal(t, PostgreSQL, ValidateDatabaseType("oracle"))
}
