// Package render emits combinations on a writer, one per line.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/combigen/combigen/internal/cartesian"
	"github.com/gosimple/slug"
)

// Columns slugs dimension names into output-safe column names.
func Columns(names []string) []string {
	columns := make([]string, len(names))
	for i, name := range names {
		columns[i] = strings.ReplaceAll(slug.Make(name), "-", "_")
	}
	return columns
}

// Renderer writes one combination snapshot per call.
type Renderer interface {
	Render(values []any) error
	Close() error
}

// New returns the renderer for format: csv, json or values.
func New(w io.Writer, format string, columns []string) (Renderer, error) {
	switch format {
	case "csv":
		out := csv.NewWriter(w)
		err := out.Write(columns)
		if err != nil {
			return nil, err
		}
		return &csvRenderer{out: out}, nil
	case "json":
		return &jsonRenderer{out: json.NewEncoder(w), columns: columns}, nil
	case "values":
		return valuesRenderer{out: w}, nil
	}
	return nil, fmt.Errorf("unknown output format: %s", format)
}

// Emit drains the product through a renderer. limit caps the number of
// combinations, 0 means all of them.
func Emit(w io.Writer, format string, names []string, product *cartesian.Product, limit int) (count uint64, err error) {
	renderer, err := New(w, format, Columns(names))
	if err != nil {
		return
	}
	for {
		if 0 < limit && count >= uint64(limit) {
			break
		}
		combination, ok := product.Next()
		if !ok {
			break
		}
		values, err := cartesian.AllRemaining[any](combination)
		if err != nil {
			return count, err
		}
		err = renderer.Render(values)
		if err != nil {
			return count, err
		}
		count++
	}
	return count, renderer.Close()
}

type csvRenderer struct {
	out *csv.Writer
}

func (r *csvRenderer) Render(values []any) error {
	record := make([]string, len(values))
	for i, value := range values {
		record[i] = fmt.Sprint(value)
	}
	return r.out.Write(record)
}

func (r *csvRenderer) Close() error {
	r.out.Flush()
	return r.out.Error()
}

type jsonRenderer struct {
	out     *json.Encoder
	columns []string
}

func (r *jsonRenderer) Render(values []any) error {
	row := make(map[string]any, len(values))
	for i, value := range values {
		row[r.columns[i]] = value
	}
	return r.out.Encode(row)
}

func (jsonRenderer) Close() error {
	return nil
}

type valuesRenderer struct {
	out io.Writer
}

func (r valuesRenderer) Render(values []any) error {
	words := make([]string, len(values))
	for i, value := range values {
		words[i] = fmt.Sprint(value)
	}
	_, err := fmt.Fprintln(r.out, strings.Join(words, " "))
	return err
}

func (valuesRenderer) Close() error {
	return nil
}
