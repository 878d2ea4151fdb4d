package version

import (
	"testing"

	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	info := Get()
	assert.Contains(t, info.String(), "dbaccessor version "+Version)
	assert.Contains(t, info.FullString(), "Git Commit: "+GitCommit)
}

func TestParseEngine(t *testing.T) {
	tests := map[string]string{
		"3.45.1":                       "3.45.1",
		"16.2 (Debian 16.2-1.pgdg120)": "16.2.0",
		"8.0.36-0ubuntu0.22.04.1":      "8.0.36",
		"10":                           "10.0.0",
	}
	for in, want := range tests {
		v, err := ParseEngine(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, v.String(), in)
	}

	_, err := ParseEngine("unknown")
	assert.Error(t, err)
}

func TestCheckEngine(t *testing.T) {
	assert.NoError(t, CheckEngine(domain.SQLite, "3.45.1"))
	assert.ErrorIs(t, CheckEngine(domain.SQLite, "3.8.11"), ErrEngineTooOld)

	assert.NoError(t, CheckEngine(domain.PostgreSQL, "16.2 (Debian)"))
	assert.ErrorIs(t, CheckEngine(domain.PostgreSQL, "9.6.24"), ErrEngineTooOld)

	assert.NoError(t, CheckEngine(domain.MySQL, "8.0.36-log"))
	assert.ErrorIs(t, CheckEngine(domain.MySQL, "5.6.51"), ErrEngineTooOld)

	assert.NoError(t, CheckEngine("oracle", "anything"))
	assert.Error(t, CheckEngine(domain.SQLite, "garbage"))
}
