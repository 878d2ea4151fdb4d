package compiler_test

import (
	"testing"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/query/compiler"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexName(t *testing.T) {
	assert.Equal(t, "stocks_industry_index", compiler.IndexName("stocks", "industry"))
}

func TestCompiler_CreateTable(t *testing.T) {
	comp := compiler.NewSQLCompiler(domain.SQLite)

	plan, err := comp.CreateTable("stocks", []domain.ColumnDef{
		{Name: "id", Type: "integer primary key unique"},
		{Name: "ticker", Type: "text unique"},
		{Name: "price", Type: "numeric"},
	})
	require.NoError(t, err)

	assert.Equal(t, "CREATE TABLE IF NOT EXISTS stocks (id integer primary key unique, ticker text unique, price numeric)", plan.SQL)
	assert.Empty(t, plan.Args)
}

func TestCompiler_CreateTable_Errors(t *testing.T) {
	comp := compiler.NewSQLCompiler(domain.SQLite)

	_, err := comp.CreateTable("stocks", nil)
	assert.ErrorIs(t, err, dberr.ErrEmptyColumnList)

	_, err = comp.CreateTable("stocks", []domain.ColumnDef{{Name: "bad name", Type: "text"}})
	assert.ErrorIs(t, err, dberr.ErrInvalidIdentifier)

	_, err = comp.CreateTable("9stocks", []domain.ColumnDef{{Name: "ticker", Type: "text"}})
	assert.ErrorIs(t, err, dberr.ErrInvalidIdentifier)
}

func TestCompiler_IndexStatements(t *testing.T) {
	tests := []struct {
		dialect    domain.Dialect
		wantCreate string
		wantDrop   string
	}{
		{
			dialect:    domain.SQLite,
			wantCreate: "CREATE UNIQUE INDEX stocks_industry_index ON stocks (industry)",
			wantDrop:   "DROP INDEX IF EXISTS stocks_industry_index",
		},
		{
			dialect:    domain.PostgreSQL,
			wantCreate: "CREATE UNIQUE INDEX stocks_industry_index ON stocks (industry)",
			wantDrop:   "DROP INDEX IF EXISTS stocks_industry_index",
		},
		{
			dialect:    domain.MySQL,
			wantCreate: "CREATE UNIQUE INDEX stocks_industry_index ON stocks (industry)",
			wantDrop:   "DROP INDEX stocks_industry_index ON stocks",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			comp := compiler.NewSQLCompiler(tt.dialect)

			create, err := comp.CreateIndex("stocks", "industry")
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreate, create.SQL)

			drop, err := comp.DropIndex("stocks", "industry")
			require.NoError(t, err)
			assert.Equal(t, tt.wantDrop, drop.SQL)
		})
	}
}

func TestCompiler_DropTable(t *testing.T) {
	comp := compiler.NewSQLCompiler(domain.SQLite)

	plan, err := comp.DropTable("stocks")
	require.NoError(t, err)
	assert.Equal(t, "DROP TABLE IF EXISTS stocks", plan.SQL)

	_, err = comp.DropTable("stocks cascade")
	assert.ErrorIs(t, err, dberr.ErrInvalidIdentifier)
}

func TestValidIdentifier(t *testing.T) {
	assert.True(t, compiler.ValidIdentifier("stocks"))
	assert.True(t, compiler.ValidIdentifier("_private_1"))
	assert.False(t, compiler.ValidIdentifier(""))
	assert.False(t, compiler.ValidIdentifier("1abc"))
	assert.False(t, compiler.ValidIdentifier("a.b"))
	assert.False(t, compiler.ValidIdentifier("a-b"))
}
