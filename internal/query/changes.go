package query

// assignment is one "column = value" pair of an UPDATE.
type assignment struct {
	column string
	value  any
}

// Changes is an ordered set of column assignments for a partial update.
type Changes struct {
	sets []assignment
}

// Set assigns value to column. Zero values (false, 0, "") are applied.
func (c *Changes) Set(column string, value any) *Changes {
	c.sets = append(c.sets, assignment{column: column, value: value})
	return c
}

// Len reports the number of assignments.
func (c *Changes) Len() int {
	if c == nil {
		return 0
	}
	return len(c.sets)
}

// Empty reports whether there is nothing to write.
func (c *Changes) Empty() bool {
	return c.Len() == 0
}

// SetIfPresent assigns *value to column when value is non-nil.
func SetIfPresent[T any](c *Changes, column string, value *T) *Changes {
	if value == nil {
		return c
	}
	return c.Set(column, *value)
}
