package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a snapshot dump format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown schema format %q (want json, yaml or markdown)", s)
	}
}

// Dump renders s in the given format.
func (s *Snapshot) Dump(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return s.JSON()
	case FormatYAML:
		return s.YAML()
	case FormatMarkdown:
		return []byte(s.Markdown()), nil
	default:
		return nil, fmt.Errorf("unknown schema format %q", f)
	}
}

// JSON renders the snapshot as {"table": [["column", "type"], ...]} with
// sorted keys and a four space indent.
func (s *Snapshot) JSON() ([]byte, error) {
	m := make(map[string][][2]string, len(s.tables))
	for _, t := range s.tables {
		pairs := make([][2]string, len(t.Columns))
		for i, c := range t.Columns {
			pairs[i] = [2]string{c.Name, c.Type}
		}
		m[t.Name] = pairs
	}
	return json.MarshalIndent(m, "", "    ")
}

type yamlColumn struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type yamlTable struct {
	Table   string       `yaml:"table"`
	Columns []yamlColumn `yaml:"columns"`
}

// YAML renders the snapshot as an ordered list of tables.
func (s *Snapshot) YAML() ([]byte, error) {
	out := make([]yamlTable, len(s.tables))
	for i, t := range s.tables {
		cols := make([]yamlColumn, len(t.Columns))
		for j, c := range t.Columns {
			cols[j] = yamlColumn{Name: c.Name, Type: c.Type}
		}
		out[i] = yamlTable{Table: t.Name, Columns: cols}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return buf.Bytes(), nil
}

// Markdown renders one section per table.
func (s *Snapshot) Markdown() string {
	var b strings.Builder
	b.WriteString("# Schema\n")
	if len(s.tables) == 0 {
		b.WriteString("\n_No tables._\n")
		return b.String()
	}
	for _, t := range s.tables {
		fmt.Fprintf(&b, "\n## %s\n\n", t.Name)
		b.WriteString("| # | Column | Type |\n")
		b.WriteString("|---|--------|------|\n")
		for _, c := range t.Columns {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", c.Position, c.Name, c.Type)
		}
	}
	return b.String()
}
