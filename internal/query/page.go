package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
)

// DefaultLimit is the page size used when the caller supplies none.
const DefaultLimit = 100

// Page is a LIMIT/OFFSET window.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPage returns the first page of DefaultLimit rows.
func DefaultPage() Page {
	return Page{Limit: DefaultLimit}
}

// NewPage validates limit and offset.
func NewPage(limit, offset int) (Page, error) {
	p := Page{Limit: limit, Offset: offset}
	if err := p.Validate(); err != nil {
		return Page{}, err
	}
	return p, nil
}

// Validate rejects non-positive limits and negative offsets. There is no
// upper bound on the limit.
func (p Page) Validate() error {
	var fieldErrors []errs.FieldError
	if p.Limit <= 0 {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "limit", Error: "must be a positive integer"})
	}
	if p.Offset < 0 {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "offset", Error: "must not be negative"})
	}
	if fieldErrors != nil {
		return errs.NewInvalidInputError(fmt.Sprintf("invalid page (limit=%d, offset=%d)", p.Limit, p.Offset), fieldErrors)
	}
	return nil
}

// MaybeMore reports whether a result of n rows could be followed by another
// page. It is a heuristic: a store holding exactly Limit matching rows also
// reports true. Use a repository Count for an authoritative answer.
func (p Page) MaybeMore(n int) bool {
	return n == p.Limit
}

// ParsePage maps raw query-string values onto a Page. Absent or
// non-numeric values fall back to DefaultLimit and 0; numeric values are
// validated as-is, so "-1" is rejected rather than replaced.
func ParsePage(limit, offset string) (Page, error) {
	p := DefaultPage()
	if n, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil {
		p.Limit = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(offset)); err == nil {
		p.Offset = n
	}
	if err := p.Validate(); err != nil {
		return Page{}, err
	}
	return p, nil
}
