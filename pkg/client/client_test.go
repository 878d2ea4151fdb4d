package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/satishbabariya/dbaccessor/internal/debug"
	"github.com/satishbabariya/dbaccessor/pkg/client"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var stocksColumns = []client.ColumnDef{
	{Name: "id", Type: "integer primary key autoincrement not null"},
	{Name: "ticker", Type: "text unique"},
	{Name: "industry", Type: "text"},
	{Name: "beta", Type: "numeric"},
	{Name: "price", Type: "numeric"},
}

func stock(ticker, industry string, beta float64, price int) client.Row {
	return client.Row{
		{Column: "ticker", Value: ticker},
		{Column: "industry", Value: industry},
		{Column: "beta", Value: beta},
		{Column: "price", Value: price},
	}
}

var stocks = []client.Row{
	stock("ibm", "technology", 1.1, 56),
	stock("msft", "technology", 1.2, 64),
	stock("dal", "transportation", 1.3, 34),
	stock("xom", "energy", 1.4, 42),
}

// AccessorSuite runs against a fresh SQLite file per test.
type AccessorSuite struct {
	suite.Suite
	ctx  context.Context
	path string
	db   *client.Accessor
}

func TestAccessorSuite(t *testing.T) {
	suite.Run(t, new(AccessorSuite))
}

func (s *AccessorSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "stocks.db")

	db, err := client.Open(s.ctx, s.path, client.DefaultOptions())
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(s.db.CreateTable(s.ctx, "stocks", stocksColumns))
}

func (s *AccessorSuite) TearDownTest() {
	s.NoError(s.db.Close())
}

func (s *AccessorSuite) tickers(opts client.ReadOptions) []string {
	opts.Columns = []string{"ticker"}
	rows, err := s.db.Read(s.ctx, "stocks", opts)
	s.Require().NoError(err)

	out := make([]string, len(rows))
	for i, r := range rows {
		v, _ := r.Get("ticker")
		out[i] = v.(string)
	}
	return out
}

func (s *AccessorSuite) TestInsertReadRoundTrip() {
	res, err := s.db.Insert(s.ctx, "stocks", stocks)
	s.Require().NoError(err)
	s.Equal(int64(4), res.RowsAffected)

	rows, err := s.db.Read(s.ctx, "stocks", client.ReadOptions{
		Columns: []string{"ticker", "industry"},
		Where:   []client.Predicate{client.Where("industry", client.Eq, "technology")},
		OrderBy: []client.OrderBy{{Column: "ticker", Direction: client.Desc}},
	})
	s.Require().NoError(err)

	s.Equal([]client.Row{
		{{Column: "ticker", Value: "msft"}, {Column: "industry", Value: "technology"}},
		{{Column: "ticker", Value: "ibm"}, {Column: "industry", Value: "technology"}},
	}, rows)
}

func (s *AccessorSuite) TestReadWithoutColumnsUsesSchemaOrder() {
	_, err := s.db.Insert(s.ctx, "stocks", stocks[:1])
	s.Require().NoError(err)

	rows, err := s.db.Read(s.ctx, "stocks", client.ReadOptions{})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)

	s.Equal([]string{"id", "ticker", "industry", "beta", "price"}, rows[0].Columns())
	ticker, _ := rows[0].Get("ticker")
	s.Equal("ibm", ticker)
	beta, _ := rows[0].Get("beta")
	s.Equal(1.1, beta)
}

func (s *AccessorSuite) TestReadFilters() {
	_, err := s.db.Insert(s.ctx, "stocks", stocks)
	s.Require().NoError(err)

	s.Equal([]string{"dal", "xom"}, s.tickers(client.ReadOptions{
		Where:   []client.Predicate{client.Where("price", client.Lt, 50)},
		OrderBy: []client.OrderBy{{Column: "price", Direction: "asc"}},
	}))

	s.Equal([]string{"xom", "dal", "msft", "ibm"}, s.tickers(client.ReadOptions{
		OrderBy: []client.OrderBy{{Column: "beta", Direction: client.Desc}},
	}))

	s.Equal([]string{"ibm"}, s.tickers(client.ReadOptions{
		Where: []client.Predicate{
			client.Where("industry", client.Eq, "technology"),
			client.Where("price", client.Lte, 56),
		},
	}))
}

func (s *AccessorSuite) TestInsertBatchRollsBackOnConstraintFailure() {
	batch := []client.Row{stocks[0], stocks[1], stock("ibm", "duplicate", 9.9, 1)}

	_, err := s.db.Insert(s.ctx, "stocks", batch)
	s.Require().Error(err)
	s.True(client.IsEngine(err))
	s.Equal(client.Constraint, client.SubkindOf(err))

	rows, err := s.db.Read(s.ctx, "stocks", client.ReadOptions{})
	s.Require().NoError(err)
	s.Empty(rows, "no row of a failed batch may persist")
}

func (s *AccessorSuite) TestInsertValidation() {
	_, err := s.db.Insert(s.ctx, "stocks", nil)
	s.ErrorIs(err, client.ErrEmptyInsertBatch)

	_, err = s.db.Insert(s.ctx, "stocks", []client.Row{
		stocks[0],
		{{Column: "ticker", Value: "dal"}},
	})
	s.ErrorIs(err, client.ErrInconsistentRowShape)
}

func (s *AccessorSuite) TestUpdate() {
	_, err := s.db.Insert(s.ctx, "stocks", stocks)
	s.Require().NoError(err)

	res, err := s.db.Update(s.ctx, "stocks",
		client.Row{{Column: "industry", Value: "finance"}, {Column: "beta", Value: 3.0}},
		[]client.Predicate{client.Where("ticker", client.Eq, "ibm")},
	)
	s.Require().NoError(err)
	s.Equal(int64(1), res.RowsAffected)

	rows, err := s.db.Read(s.ctx, "stocks", client.ReadOptions{
		Columns: []string{"industry", "beta"},
		Where:   []client.Predicate{client.Where("ticker", client.Eq, "ibm")},
	})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)

	industry, _ := rows[0].Get("industry")
	s.Equal("finance", industry)
	beta, _ := rows[0].Get("beta")
	s.EqualValues(3, beta)

	_, err = s.db.Update(s.ctx, "stocks", nil, nil)
	s.ErrorIs(err, client.ErrEmptyUpdate)
}

func (s *AccessorSuite) TestDeleteAllIsIdempotent() {
	_, err := s.db.Insert(s.ctx, "stocks", stocks)
	s.Require().NoError(err)

	res, err := s.db.Delete(s.ctx, "stocks", nil)
	s.Require().NoError(err)
	s.Equal(int64(4), res.RowsAffected)

	res, err = s.db.Delete(s.ctx, "stocks", nil)
	s.Require().NoError(err)
	s.Equal(int64(0), res.RowsAffected)

	rows, err := s.db.Read(s.ctx, "stocks", client.ReadOptions{})
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *AccessorSuite) TestDeleteWithPredicate() {
	_, err := s.db.Insert(s.ctx, "stocks", stocks)
	s.Require().NoError(err)

	res, err := s.db.Delete(s.ctx, "stocks", []client.Predicate{client.Where("industry", client.Ne, "technology")})
	s.Require().NoError(err)
	s.Equal(int64(2), res.RowsAffected)

	s.ElementsMatch([]string{"ibm", "msft"}, s.tickers(client.ReadOptions{}))
}

func (s *AccessorSuite) TestValidationFailsBeforeEngine() {
	_, err := s.db.Read(s.ctx, "stocks", client.ReadOptions{
		Where: []client.Predicate{client.Where("ticker", "LIKE", "i%")},
	})
	s.ErrorIs(err, client.ErrInvalidOperator)
	s.False(client.IsEngine(err))

	_, err = s.db.Read(s.ctx, "stocks", client.ReadOptions{
		OrderBy: []client.OrderBy{{Column: "price", Direction: "sideways"}},
	})
	s.ErrorIs(err, client.ErrInvalidSortDirection)

	_, err = s.db.Read(s.ctx, "stocks; DROP TABLE stocks", client.ReadOptions{})
	s.ErrorIs(err, client.ErrInvalidIdentifier)

	tables, err := s.db.Tables(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"stocks"}, tables)
}

func (s *AccessorSuite) TestReadUnknownTable() {
	_, err := s.db.Read(s.ctx, "bogus", client.ReadOptions{})
	s.True(client.IsUnknownTable(err))

	_, err = s.db.Read(s.ctx, "bogus", client.ReadOptions{Columns: []string{"x"}})
	s.True(client.IsEngine(err))
	s.Equal(client.Syntax, client.SubkindOf(err))
}

func (s *AccessorSuite) TestValidator() {
	v, err := s.db.Validator(s.ctx)
	s.Require().NoError(err)

	s.True(v.IsTable("stocks"))
	s.False(v.IsTable("bogus"))

	ok, err := v.IsField("stocks", "ticker")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = v.IsField("stocks", "volume")
	s.Require().NoError(err)
	s.False(ok)

	_, err = v.IsField("bogus", "ticker")
	var ute *client.UnknownTableError
	s.Require().ErrorAs(err, &ute)
	s.Equal("bogus", ute.Table)
}

func (s *AccessorSuite) TestSqlitePrefixedTableIsVisible() {
	s.Require().NoError(s.db.CreateTable(s.ctx, "sqlitestats", []client.ColumnDef{{Name: "n", Type: "integer"}}))

	tables, err := s.db.Tables(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"sqlitestats", "stocks"}, tables)

	v, err := s.db.Validator(s.ctx)
	s.Require().NoError(err)
	s.True(v.IsTable("sqlitestats"))

	ok, err := v.IsField("sqlitestats", "n")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *AccessorSuite) TestValidatorIsNotRefreshed() {
	v, err := s.db.Validator(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.db.CreateTable(s.ctx, "accounts", []client.ColumnDef{{Name: "owner", Type: "text"}}))
	s.False(v.IsTable("accounts"))

	fresh, err := s.db.Validator(s.ctx)
	s.Require().NoError(err)
	s.True(fresh.IsTable("accounts"))
}

func (s *AccessorSuite) TestIndexes() {
	name, err := s.db.CreateIndex(s.ctx, "stocks", "industry")
	s.Require().NoError(err)
	s.Equal("stocks_industry_index", name)

	indexes, err := s.db.Indexes(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"stocks_industry_index"}, indexes)

	s.Require().NoError(s.db.DropIndex(s.ctx, "stocks", "industry"))
	indexes, err = s.db.Indexes(s.ctx)
	s.Require().NoError(err)
	s.Empty(indexes)

	// Dropping a missing index is not an error.
	s.NoError(s.db.DropIndex(s.ctx, "stocks", "industry"))
}

func (s *AccessorSuite) TestDropTable() {
	s.Require().NoError(s.db.DropTable(s.ctx, "stocks"))
	s.Require().NoError(s.db.DropTable(s.ctx, "stocks"))

	tables, err := s.db.Tables(s.ctx)
	s.Require().NoError(err)
	s.Empty(tables)
}

func (s *AccessorSuite) TestDescribeAndSnapshot() {
	cols, err := s.db.Describe(s.ctx, "stocks")
	s.Require().NoError(err)
	s.Len(cols, 5)
	s.True(strings.EqualFold("integer", cols[0].Type), cols[0].Type)

	snap, err := s.db.Snapshot(s.ctx)
	s.Require().NoError(err)

	out, err := snap.JSON()
	s.Require().NoError(err)

	var decoded map[string][][2]string
	s.Require().NoError(json.Unmarshal(out, &decoded))
	s.Equal("ticker", decoded["stocks"][1][0])
	s.True(strings.EqualFold("text", decoded["stocks"][1][1]), decoded["stocks"][1][1])
}

func (s *AccessorSuite) TestCreateStatementsAndVersion() {
	defs, err := s.db.CreateStatements(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(defs, 1)
	s.Contains(defs[0].SQL, "ticker text unique")

	v, err := s.db.EngineVersion(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(v)

	s.Equal(client.SQLite, s.db.Dialect())
}

func TestOpen_MissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	_, err := client.Open(context.Background(), path, client.Options{CreateIfMissing: false})
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrConnectionFailure)
	assert.ErrorIs(t, err, client.ErrDatabaseNotFound)
}

func TestOpen_UsesInjectedFs(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := client.Open(context.Background(), "/srv/app.db", client.Options{}, client.WithFs(fs))
	assert.ErrorIs(t, err, client.ErrDatabaseNotFound)
}

func TestConnect_UnsupportedProvider(t *testing.T) {
	_, err := client.Connect(context.Background(), "oracle", "dsn", client.DefaultOptions())
	assert.ErrorIs(t, err, client.ErrConnectionFailure)
}

func TestVerboseObserver(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "verbose.db")

	var seen []*client.EngineError
	db, err := client.Open(ctx, path, client.Options{CreateIfMissing: true, Verbose: true},
		client.WithObserver(client.ObserverFunc(func(_ context.Context, err *client.EngineError) {
			seen = append(seen, err)
		})))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Read(ctx, "bogus", client.ReadOptions{Columns: []string{"x"}})
	require.Error(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "query", seen[0].Op)
}

func TestQuietByDefault(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "quiet.db")

	called := false
	db, err := client.Open(ctx, path, client.DefaultOptions(),
		client.WithObserver(client.ObserverFunc(func(context.Context, *client.EngineError) { called = true })))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Read(ctx, "bogus", client.ReadOptions{Columns: []string{"x"}})
	require.Error(t, err)
	assert.False(t, called)
}

func TestVerboseLogger(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "logged.db")

	var buf bytes.Buffer
	db, err := client.Open(ctx, path, client.Options{CreateIfMissing: true, Verbose: true},
		client.WithLogger(debug.New(&buf, true)))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Delete(ctx, "bogus", nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "no such table")
}
