package service

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// Postgres driver errors as the repositories surface them.
func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func fkViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

func TestListQueryNormalization(t *testing.T) {
	tests := []struct {
		name       string
		query      ListQuery
		wantLimit  int
		wantOffset int
	}{
		{"defaults", ListQuery{}, 10, 0},
		{"explicit page", ListQuery{Page: 3, Limit: 20}, 20, 40},
		{"zero page clamps to first", ListQuery{Page: 0, Limit: 5}, 5, 0},
		{"oversized limit falls back", ListQuery{Page: 2, Limit: 500}, 10, 10},
		{"negative values", ListQuery{Page: -1, Limit: -5}, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.query.options()
			assert.Equal(t, tt.wantLimit, opts.Limit)
			assert.Equal(t, tt.wantOffset, opts.Offset)
		})
	}
}

func TestListQueryPagination(t *testing.T) {
	p := ListQuery{Page: 2, Limit: 10}.pagination(25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)

	empty := ListQuery{}.pagination(0)
	assert.Equal(t, 0, empty.TotalPages)
}
