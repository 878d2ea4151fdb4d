package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/ui"
	"github.com/satishbabariya/dbaccessor/pkg/client"
)

// printRows writes rows as a table, or as a JSON array when asJSON is set.
func printRows(columns []string, rows []client.Row, asJSON bool) error {
	if asJSON {
		out := make([]map[string]interface{}, len(rows))
		for i, r := range rows {
			out[i] = r.Map()
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(ui.Out, string(data))
		return nil
	}

	if len(rows) == 0 {
		ui.PrintInfo("(0 rows)")
		return nil
	}
	if len(columns) == 0 {
		columns = rows[0].Columns()
	}
	values := make([][]interface{}, len(rows))
	for i, r := range rows {
		values[i] = r.Values()
	}
	if err := ui.PrintTable(columns, ui.RowsTable(values)); err != nil {
		return err
	}
	ui.PrintInfo("(%d rows)", len(rows))
	return nil
}

// readRowsFile decodes a JSON array of objects from path, or stdin for "-".
func readRowsFile(path string, stdin io.Reader) ([]client.Row, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return decodeRows(data)
}

func decodeRows(data []byte) ([]client.Row, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var objects []map[string]interface{}
	if err := dec.Decode(&objects); err != nil {
		return nil, fmt.Errorf("rows must be a JSON array of objects: %w", err)
	}

	rows := make([]client.Row, len(objects))
	for i, obj := range objects {
		for k, v := range obj {
			val, err := jsonValue(v)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i, k, err)
			}
			obj[k] = val
		}
		rows[i] = client.RowFromMap(obj)
	}
	return rows, nil
}

// jsonValue narrows decoded JSON to the scalar types drivers accept.
func jsonValue(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case nil, string, bool:
		return val, nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		return val.Float64()
	default:
		return nil, fmt.Errorf("unsupported value %v", v)
	}
}

// parseColumnDefs parses "name:type" arguments. The type may contain spaces
// when quoted by the shell.
func parseColumnDefs(args []string) ([]client.ColumnDef, error) {
	defs := make([]client.ColumnDef, 0, len(args))
	for _, arg := range args {
		name, typ, ok := strings.Cut(arg, ":")
		if !ok || name == "" || strings.TrimSpace(typ) == "" {
			return nil, fmt.Errorf("invalid column %q (want name:type)", arg)
		}
		defs = append(defs, client.ColumnDef{Name: name, Type: strings.TrimSpace(typ)})
	}
	return defs, nil
}

func splitColumns(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cols = append(cols, p)
		}
	}
	return cols
}
