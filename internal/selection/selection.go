// Package selection classifies a caller-supplied criterion into one of three
// modes (primary key, field map, predicate) and builds the WHERE clause and
// bind arguments for it.
package selection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wennys/modelbuddy/pkg/types"
)

// Criterion is a classified selection criterion awaiting resolution against
// a table schema. Construct one with Key, Where, or Predicate; Sniff covers
// callers holding untyped input.
type Criterion struct {
	Mode   types.SelectionMode
	Key    any
	Fields types.Fields
	Expr   string
	Args   []any
}

// Key selects a row by primary key value.
func Key(v any) Criterion {
	return Criterion{Mode: types.ByPrimaryKey, Key: v}
}

// Where selects a row by ordered column/value equality pairs.
func Where(fields types.Fields) Criterion {
	return Criterion{Mode: types.ByFieldMap, Fields: fields}
}

// Predicate selects a row by a free-form WHERE expression with ?-style
// placeholders. The argument list is mandatory, even for expressions with
// zero placeholders.
func Predicate(expr string, args ...any) Criterion {
	return Criterion{Mode: types.ByPredicate, Expr: expr, Args: args}
}

// Sniff classifies untyped input by shape: Fields or a map become a
// field-map criterion, a string containing a space or comparison token
// becomes a predicate, anything else is taken as a primary key value.
//
// This is a syntactic heuristic, not semantic parsing: a bare string VALUE
// containing a space or operator character is misclassified as a predicate.
// Callers that can know the mode should use Key, Where, or Predicate
// directly.
func Sniff(criterion any, args ...any) Criterion {
	switch v := criterion.(type) {
	case Criterion:
		return v
	case types.Fields:
		return Where(v)
	case map[string]any:
		// Plain maps have no iteration order; sort keys so the
		// generated predicate is deterministic.
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		fields := make(types.Fields, 0, len(v))
		for _, name := range names {
			fields = append(fields, types.Field{Name: name, Value: v[name]})
		}
		return Where(fields)
	case string:
		if strings.ContainsAny(v, " =<>") {
			return Predicate(v, args...)
		}
		return Key(v)
	default:
		return Key(v)
	}
}

// Resolve builds the selection state for a criterion against a schema.
// It returns a *types.SelectionError on malformed input.
func Resolve(schema types.Schema, c Criterion) (types.Selection, error) {
	switch c.Mode {
	case types.ByPrimaryKey:
		pk, ok := schema.PrimaryKey()
		if !ok {
			return types.Selection{}, &types.SelectionError{Mode: c.Mode, Err: types.ErrNoPrimaryKey}
		}
		return types.Selection{
			Mode:      c.Mode,
			Predicate: pk + " = ?",
			Args:      []any{c.Key},
		}, nil

	case types.ByFieldMap:
		if len(c.Fields) == 0 {
			return types.Selection{}, &types.SelectionError{Mode: c.Mode, Err: types.ErrEmptyFieldMap}
		}
		parts := make([]string, 0, len(c.Fields))
		args := make([]any, 0, len(c.Fields))
		for _, f := range c.Fields {
			if !schema.Has(f.Name) {
				return types.Selection{}, &types.SelectionError{
					Mode: c.Mode,
					Err:  fmt.Errorf("%w: %s", types.ErrUnknownColumn, f.Name),
				}
			}
			parts = append(parts, f.Name+" = ?")
			args = append(args, f.Value)
		}
		return types.Selection{
			Mode:      c.Mode,
			Predicate: strings.Join(parts, " AND "),
			Args:      args,
		}, nil

	case types.ByPredicate:
		if len(c.Args) == 0 {
			return types.Selection{}, &types.SelectionError{Mode: c.Mode, Err: types.ErrMissingArgs}
		}
		return types.Selection{
			Mode:      c.Mode,
			Predicate: stripWhere(c.Expr),
			Args:      c.Args,
		}, nil

	default:
		return types.Selection{}, nil
	}
}

// stripWhere removes one leading "WHERE " prefix, case-insensitively, so
// callers may write the predicate with or without it.
func stripWhere(expr string) string {
	trimmed := strings.TrimSpace(expr)
	if len(trimmed) >= 6 && strings.EqualFold(trimmed[:6], "WHERE ") {
		return strings.TrimSpace(trimmed[6:])
	}
	return trimmed
}
