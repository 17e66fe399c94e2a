package service

import (
	"classroom-backend/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListQuery carries the common list parameters parsed from the query string
type ListQuery struct {
	Search    string
	Page      int
	Limit     int
	SortField string
	SortOrder string
}

// Pagination describes the page window of a list response
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func (q ListQuery) normalized() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > maxPageSize {
		q.Limit = defaultPageSize
	}
	return q
}

func (q ListQuery) options() repository.ListOptions {
	q = q.normalized()
	return repository.ListOptions{
		Search:    q.Search,
		SortField: q.SortField,
		SortOrder: q.SortOrder,
		Limit:     q.Limit,
		Offset:    (q.Page - 1) * q.Limit,
	}
}

func (q ListQuery) pagination(total int64) Pagination {
	q = q.normalized()
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return Pagination{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: pages,
	}
}
