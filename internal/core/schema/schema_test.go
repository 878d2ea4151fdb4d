package schema

import (
	"context"
	"testing"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/introspection/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// fakeIntrospector serves a fixed schema.
type fakeIntrospector struct {
	tables    []string
	columns   map[string][]domain.Column
	described []string
}

func (f *fakeIntrospector) ListTables(context.Context) ([]string, error) { return f.tables, nil }

func (f *fakeIntrospector) ListIndexes(context.Context) ([]string, error) { return nil, nil }

func (f *fakeIntrospector) DescribeTable(_ context.Context, table string) ([]domain.Column, error) {
	f.described = append(f.described, table)
	cols, ok := f.columns[table]
	if !ok {
		return nil, &dberr.UnknownTableError{Table: table}
	}
	return cols, nil
}

func (f *fakeIntrospector) CreateStatements(context.Context) ([]domain.TableDefinition, error) {
	return nil, nil
}

func (f *fakeIntrospector) EngineVersion(context.Context) (string, error) { return "test", nil }

func stocksSchema() *fakeIntrospector {
	return &fakeIntrospector{
		tables: []string{"stocks", "accounts"},
		columns: map[string][]domain.Column{
			"stocks": {
				{Name: "id", Type: "integer", Position: 1},
				{Name: "ticker", Type: "text", Position: 2},
				{Name: "price", Type: "numeric", Position: 3},
			},
			"accounts": {
				{Name: "owner", Type: "text", Position: 1},
			},
		},
	}
}

func TestBuild_FollowsListTablesOrder(t *testing.T) {
	in := stocksSchema()

	snap, err := Build(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"stocks", "accounts"}, in.described)
	assert.Equal(t, []string{"stocks", "accounts"}, snap.Tables())
	assert.Equal(t, 2, snap.Len())

	cols, ok := snap.Columns("stocks")
	require.True(t, ok)
	assert.Len(t, cols, 3)
	assert.Equal(t, "ticker", cols[1].Name)
}

func TestBuild_PropagatesDescribeFailure(t *testing.T) {
	in := stocksSchema()
	in.tables = append(in.tables, "vanished")

	_, err := Build(context.Background(), in)
	require.Error(t, err)
	assert.True(t, dberr.IsUnknownTable(err))
}

func TestSnapshot_IsImmutable(t *testing.T) {
	cols := []domain.Column{{Name: "ticker", Type: "text", Position: 1}}
	snap := NewSnapshot([]Table{{Name: "stocks", Columns: cols}})

	cols[0].Name = "changed"
	got, _ := snap.Columns("stocks")
	assert.Equal(t, "ticker", got[0].Name)

	got[0].Name = "changed again"
	again, _ := snap.Columns("stocks")
	assert.Equal(t, "ticker", again[0].Name)
}

func TestValidator(t *testing.T) {
	snap, err := Build(context.Background(), stocksSchema())
	require.NoError(t, err)
	v := NewValidator(snap)

	assert.True(t, v.IsTable("stocks"))
	assert.False(t, v.IsTable("bogus"))

	ok, err := v.IsField("stocks", "ticker")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.IsField("stocks", "volume")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = v.IsField("bogus", "ticker")
	var ute *dberr.UnknownTableError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "bogus", ute.Table)

	fields, err := v.Fields("stocks")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "ticker", "price"}, fields)

	_, err = v.Fields("bogus")
	assert.ErrorIs(t, err, dberr.ErrUnknownTable)

	assert.Equal(t, []string{"stocks", "accounts"}, v.Tables())
	assert.Same(t, snap, v.Snapshot())
}

func TestSnapshot_JSON(t *testing.T) {
	snap := NewSnapshot([]Table{
		{Name: "stocks", Columns: []domain.Column{{Name: "ticker", Type: "text", Position: 1}}},
		{Name: "accounts", Columns: []domain.Column{}},
	})

	out, err := snap.JSON()
	require.NoError(t, err)

	want := `{
    "accounts": [],
    "stocks": [
        [
            "ticker",
            "text"
        ]
    ]
}`
	assert.Equal(t, want, string(out))
}

func TestSnapshot_YAML(t *testing.T) {
	snap, err := Build(context.Background(), stocksSchema())
	require.NoError(t, err)

	out, err := snap.YAML()
	require.NoError(t, err)

	var decoded []struct {
		Table   string `yaml:"table"`
		Columns []struct {
			Name string `yaml:"name"`
			Type string `yaml:"type"`
		} `yaml:"columns"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "stocks", decoded[0].Table)
	assert.Equal(t, "accounts", decoded[1].Table)
	assert.Equal(t, "price", decoded[0].Columns[2].Name)
	assert.Equal(t, "numeric", decoded[0].Columns[2].Type)
}

func TestSnapshot_Markdown(t *testing.T) {
	snap, err := Build(context.Background(), stocksSchema())
	require.NoError(t, err)

	md := snap.Markdown()
	assert.Contains(t, md, "## stocks")
	assert.Contains(t, md, "| 2 | ticker | text |")
	assert.Contains(t, md, "## accounts")

	assert.Contains(t, NewSnapshot(nil).Markdown(), "No tables")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"json": FormatJSON, "JSON": FormatJSON, "yaml": FormatYAML, "yml": FormatYAML,
		"markdown": FormatMarkdown, "md": FormatMarkdown,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFieldDefinitions(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{
			name: "stocks",
			sql:  "CREATE TABLE stocks (id integer primary key autoincrement not null, ticker text unique, industry text, beta numeric, price numeric)",
			want: []string{"id integer primary key autoincrement not null", "ticker text unique", "industry text", "beta numeric", "price numeric"},
		},
		{
			name: "nested parentheses",
			sql:  "CREATE TABLE t (code varchar(16), amount decimal(10, 2), note text default 'a,b')",
			want: []string{"code varchar(16)", "amount decimal(10, 2)", "note text default 'a,b'"},
		},
		{name: "empty", sql: "", want: nil},
		{name: "no column list", sql: "CREATE TABLE t", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldDefinitions(tt.sql))
		})
	}
}
