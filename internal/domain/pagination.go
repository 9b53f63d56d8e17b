package domain

import "github.com/sunar87/foodgram/foodgram/config"

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// NewPage clamps number and limit into the accepted range.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	if limit < 1 {
		limit = config.DefaultPageSize
	}
	if limit > config.MaxPageSize {
		limit = config.MaxPageSize
	}
	return Page{Number: number, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// HasNext reports whether rows remain after this page.
func (p Page) HasNext(total int) bool {
	return p.Offset()+p.Limit < total
}

type PageResult[T any] struct {
	Count int
	Items []T
}
