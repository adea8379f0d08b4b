// Functions to normalize YAML input before decoding into data structure.
package config

import (
	"errors"
	"fmt"
)

// NormalizeRoot accepts the document root and resolves aliases.
func NormalizeRoot(yaml any) (root map[string]any, err error) {
	root, ok := yaml.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("bad document root, must be a map, got %T", yaml)
	}
	err = NormalizeAlias(&root, "dimensions", "dimension")
	if err != nil {
		return
	}
	raw, found := root["dimensions"]
	if !found {
		return nil, errors.New("missing dimensions")
	}
	root["dimensions"], err = NormalizeDimensions(raw)
	return
}

// NormalizeAlias replaces alias key by the canonical key. Conflict when
// both are set.
func NormalizeAlias(yaml *map[string]any, key, alias string) (err error) {
	value, hasAlias := (*yaml)[alias]
	if !hasAlias {
		return
	}

	_, hasKey := (*yaml)[key]
	if hasKey {
		return fmt.Errorf("key conflict: %s and %s", key, alias)
	}

	delete(*yaml, alias)
	(*yaml)[key] = value
	return
}

// NormalizeDimensions normalizes each entry of the dimensions list.
// A YAML map does not preserve order, so the list form is mandatory.
func NormalizeDimensions(yaml any) (list []any, err error) {
	rawList, ok := yaml.([]any)
	if !ok {
		return nil, fmt.Errorf("dimensions must be a list, got %T", yaml)
	}
	for i, rawItem := range rawList {
		item, err := NormalizeDimension(rawItem)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		list = append(list, item)
	}
	return
}

// NormalizeDimension accepts the long form:
//
//	name: browser
//	values: [firefox, chrome]
//
// and the single-key shorthand:
//
//	browser: [firefox, chrome]
//
// Scalar values normalize to a one-value list.
func NormalizeDimension(yaml any) (dim map[string]any, err error) {
	dim, ok := yaml.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("must be a map, got %T", yaml)
	}

	_, hasName := dim["name"]
	if hasName {
		err = NormalizeAlias(&dim, "values", "value")
		if err != nil {
			return
		}
		dim["values"] = NormalizeList(dim["values"])
		return
	}

	if 1 != len(dim) {
		return nil, errors.New("shorthand must hold a single key")
	}
	for name, values := range dim {
		dim = map[string]any{
			"name":   name,
			"values": NormalizeList(values),
		}
	}
	return
}

// NormalizeList ensures a scalar yields a single-item list. nil yields an
// empty list.
func NormalizeList(yaml any) (list []any) {
	if yaml == nil {
		return []any{}
	}
	list, ok := yaml.([]any)
	if !ok {
		list = append(list, yaml)
	}
	return
}
