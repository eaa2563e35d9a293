package query

import (
	"testing"

	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	p, err := NewPage(25, 50)
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: 25, Offset: 50}, p)

	_, err = NewPage(0, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = NewPage(10, -1)
	var appErr *errs.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []errs.FieldError{{Field: "offset", Error: "must not be negative"}}, appErr.Errors)
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		limit   string
		offset  string
		want    Page
		wantErr bool
	}{
		{name: "absent", want: Page{Limit: 100}},
		{name: "non numeric", limit: "ten", offset: "x", want: Page{Limit: 100}},
		{name: "numeric", limit: "20", offset: " 40 ", want: Page{Limit: 20, Offset: 40}},
		{name: "zero limit", limit: "0", wantErr: true},
		{name: "negative offset", limit: "5", offset: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePage(tt.limit, tt.offset)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaybeMoreIsHeuristic(t *testing.T) {
	p := Page{Limit: 3}

	assert.True(t, p.MaybeMore(3), "a full page suggests more, even when the store holds exactly three rows")
	assert.False(t, p.MaybeMore(2))
}
