// Package query composes the parameterized SQL used by every repository.
//
// It renders filtered, paginated selects and partial updates from typed,
// partially populated inputs. Predicates and assignments are accumulated
// as squirrel values that carry their own arguments, so statement text and
// the argument list are always built from the same ordered sequence.
package query

import sq "github.com/Masterminds/squirrel"

// psql renders $n placeholders for PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
