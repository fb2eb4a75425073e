// Package filter turns a per-resource set of optional list filters into a
// parameterized squirrel predicate with a fixed ordering.
//
// Every resource declares its recognized keys once, as an ordered slice of
// Field values. Predicates are emitted in that declared order and their
// arguments are bound in the same order, so the generated SQL for a given
// set of supplied keys is always identical.
package filter

import (
	"github.com/Masterminds/squirrel"
)

// Op is the comparison a Field applies to its columns.
type Op int

const (
	// Eq renders "col = v".
	Eq Op = iota
	// Gte renders "col >= v".
	Gte
	// Lte renders "col <= v".
	Lte
	// Contains renders "col ILIKE %v%", OR-ed over every column. The value is
	// not escaped: % and _ in it keep their pattern meaning.
	Contains
)

// Field is one recognized filter key of resource filter F.
type Field[F any] struct {
	Key     string
	Op      Op
	Columns []string
	// Value reads the raw value from the filter. An empty string means the
	// key was not supplied.
	Value func(F) string
}

// Spec is the complete filter declaration of one list query.
type Spec[F any] struct {
	Table   string
	Columns []string
	Fields  []Field[F]
	OrderBy []string
}

// Builder is the statement builder every postgres repository uses.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Predicates returns one condition per supplied key, in declared order.
// The result is empty when nothing was supplied.
func (s Spec[F]) Predicates(f F) squirrel.And {
	var and squirrel.And
	for _, fld := range s.Fields {
		v := fld.Value(f)
		if v == "" {
			continue
		}
		and = append(and, fld.condition(v))
	}
	return and
}

// Supplied lists the keys present in f, in declared order.
func (s Spec[F]) Supplied(f F) []string {
	var keys []string
	for _, fld := range s.Fields {
		if fld.Value(f) != "" {
			keys = append(keys, fld.Key)
		}
	}
	return keys
}

// Select builds the full list query. With no supplied keys the statement
// has no WHERE clause at all.
func (s Spec[F]) Select(f F) squirrel.SelectBuilder {
	q := Builder().Select(s.Columns...).From(s.Table)
	if preds := s.Predicates(f); len(preds) > 0 {
		q = q.Where(preds)
	}
	return q.OrderBy(s.OrderBy...)
}

func (fld Field[F]) condition(v string) squirrel.Sqlizer {
	switch fld.Op {
	case Gte:
		return squirrel.GtOrEq{fld.Columns[0]: v}
	case Lte:
		return squirrel.LtOrEq{fld.Columns[0]: v}
	case Contains:
		pattern := "%" + v + "%"
		if len(fld.Columns) == 1 {
			return squirrel.ILike{fld.Columns[0]: pattern}
		}
		or := make(squirrel.Or, 0, len(fld.Columns))
		for _, col := range fld.Columns {
			or = append(or, squirrel.ILike{col: pattern})
		}
		return or
	default:
		return squirrel.Eq{fld.Columns[0]: v}
	}
}
