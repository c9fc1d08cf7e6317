package service

import (
	"fmt"
	"strings"

	"vidtube/internal/repository"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is the 1-based page and page size asked for by the client.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) normalize() PageRequest {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p PageRequest) query() repository.PageQuery {
	return repository.PageQuery{Limit: p.Limit, Offset: (p.Page - 1) * p.Limit}
}

// Page is one page of a listing.
type Page[T any] struct {
	Docs        []T  `json:"docs"`
	TotalDocs   int  `json:"totalDocs"`
	Limit       int  `json:"limit"`
	Page        int  `json:"page"`
	TotalPages  int  `json:"totalPages"`
	HasPrevPage bool `json:"hasPrevPage"`
	HasNextPage bool `json:"hasNextPage"`
	PrevPage    *int `json:"prevPage"`
	NextPage    *int `json:"nextPage"`
}

func newPage[T any](res *repository.PageResult[T], req PageRequest) *Page[T] {
	p := &Page[T]{
		Docs:      res.Items,
		TotalDocs: res.Total,
		Limit:     req.Limit,
		Page:      req.Page,
	}
	if p.Docs == nil {
		p.Docs = []T{}
	}
	p.TotalPages = (res.Total + req.Limit - 1) / req.Limit
	if req.Page > 1 {
		prev := req.Page - 1
		p.HasPrevPage = true
		p.PrevPage = &prev
	}
	if req.Page < p.TotalPages {
		next := req.Page + 1
		p.HasNextPage = true
		p.NextPage = &next
	}
	return p
}

// listPage normalizes req, runs fetch and wraps its result.
func listPage[T any](req PageRequest, fetch func(repository.PageQuery) (*repository.PageResult[T], error)) (*Page[T], error) {
	req = req.normalize()
	res, err := fetch(req.query())
	if err != nil {
		return nil, err
	}
	return newPage(res, req), nil
}

// parseSort validates sortBy against allowed and maps sortType to a
// direction. Empty values fall back to createdAt descending.
func parseSort(sortBy, sortType string, allowed ...string) (repository.Sort, error) {
	s := repository.Sort{Field: "createdAt", Descending: true}
	if sortBy != "" {
		ok := false
		for _, a := range allowed {
			if a == sortBy {
				ok = true
				break
			}
		}
		if !ok {
			return s, invalid(fmt.Sprintf("sortBy must be one of: %s", strings.Join(allowed, ", ")))
		}
		s.Field = sortBy
	}
	switch strings.ToLower(sortType) {
	case "", "desc":
		s.Descending = true
	case "asc":
		s.Descending = false
	default:
		return s, invalid("sortType must be asc or desc")
	}
	return s, nil
}
