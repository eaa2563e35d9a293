package query

import sq "github.com/Masterminds/squirrel"

// Conditions is an ordered list of WHERE predicates joined with AND.
//
// Each predicate carries its own arguments, so the rendered placeholders
// and the argument list cannot fall out of step.
type Conditions struct {
	preds []sq.Sqlizer
}

// Where starts an empty condition list.
func Where() *Conditions {
	return &Conditions{}
}

// Equal adds "column = value".
func (c *Conditions) Equal(column string, value any) *Conditions {
	c.preds = append(c.preds, sq.Eq{column: value})
	return c
}

// Search adds "(c1 ILIKE '%term%' OR c2 ILIKE '%term%' ...)". The same
// term is bound once per column. An empty term or column list adds nothing.
func (c *Conditions) Search(term string, columns ...string) *Conditions {
	if term == "" || len(columns) == 0 {
		return c
	}
	pattern := "%" + term + "%"
	or := make(sq.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, sq.ILike{col: pattern})
	}
	c.preds = append(c.preds, or)
	return c
}

// Len reports the number of predicates.
func (c *Conditions) Len() int {
	if c == nil {
		return 0
	}
	return len(c.preds)
}

func (c *Conditions) apply(b sq.SelectBuilder) sq.SelectBuilder {
	if c == nil {
		return b
	}
	for _, p := range c.preds {
		b = b.Where(p)
	}
	return b
}

// EqualIfPresent adds "column = *value" when value is non-nil. A nil
// pointer means the filter key was not supplied and is left out entirely.
func EqualIfPresent[T any](c *Conditions, column string, value *T) *Conditions {
	if value == nil {
		return c
	}
	return c.Equal(column, *value)
}
