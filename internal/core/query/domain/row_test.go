package domain_test

import (
	"testing"

	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
	"github.com/stretchr/testify/assert"
)

func TestRow_SameShape(t *testing.T) {
	a := domain.Row{{Column: "ticker", Value: "ibm"}, {Column: "price", Value: 56}}
	b := domain.Row{{Column: "price", Value: 34}, {Column: "ticker", Value: "dal"}}
	c := domain.Row{{Column: "ticker", Value: "xom"}}

	assert.True(t, a.SameShape(b))
	assert.False(t, a.SameShape(c))
	assert.False(t, c.SameShape(a))
}

func TestRowFromMap_SortsColumns(t *testing.T) {
	row := domain.RowFromMap(map[string]interface{}{"ticker": "ibm", "beta": 1.1, "price": 56})

	assert.Equal(t, []string{"beta", "price", "ticker"}, row.Columns())
	assert.Equal(t, []interface{}{1.1, 56, "ibm"}, row.Values())
}

func TestRow_GetSet(t *testing.T) {
	row := domain.Zip([]string{"ticker", "price"}, []interface{}{"ibm", 56})

	v, ok := row.Get("price")
	assert.True(t, ok)
	assert.Equal(t, 56, v)

	row = row.Set("price", 60).Set("beta", 1.1)
	assert.Equal(t, []string{"ticker", "price", "beta"}, row.Columns())
	assert.Equal(t, map[string]interface{}{"ticker": "ibm", "price": 60, "beta": 1.1}, row.Map())

	_, ok = row.Get("missing")
	assert.False(t, ok)
}

func TestRow_SetDoesNotModifyReceiver(t *testing.T) {
	base := make(domain.Row, 0, 4)
	base = append(base, domain.Field{Column: "ticker", Value: "ibm"})

	a := base.Set("ticker", "msft")
	b := base.Set("price", 56)
	c := base.Set("beta", 1.1)

	assert.Equal(t, "ibm", base[0].Value)
	assert.Len(t, base, 1)
	assert.Equal(t, "msft", a[0].Value)
	assert.Equal(t, []string{"ticker", "price"}, b.Columns())
	assert.Equal(t, []string{"ticker", "beta"}, c.Columns())
}

func TestOperator_Valid(t *testing.T) {
	for _, op := range []domain.Operator{"=", ">", "<", ">=", "<=", "!=", "<>"} {
		assert.True(t, op.Valid(), op)
	}
	for _, op := range []domain.Operator{"LIKE", "==", "IN", ""} {
		assert.False(t, op.Valid(), op)
	}
}

func TestParseDialect(t *testing.T) {
	assert.Equal(t, domain.PostgreSQL, domain.ParseDialect("postgresql"))
	assert.Equal(t, domain.PostgreSQL, domain.ParseDialect("postgres"))
	assert.Equal(t, domain.MySQL, domain.ParseDialect("mysql"))
	assert.Equal(t, domain.SQLite, domain.ParseDialect("sqlite"))
	assert.Equal(t, domain.SQLite, domain.ParseDialect(""))
}
