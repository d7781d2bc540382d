// Package queries contains the read side of the lifecycle engine.
// Handlers read straight from storage through gorm without locks and return
// read models shaped for the API, never aggregates.
package queries

import (
	"math"

	"loadbook/internal/pkg/errs"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page selects a zero-based slice of an ordered result set.
type Page struct {
	number int
	size   int
}

// NewPage validates the page number (>= 0) and size (1..MaxPageSize).
func NewPage(number int, size int) (Page, error) {
	if number < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 0, math.MaxInt32)
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}
	return Page{number: number, size: size}, nil
}

// FirstPage is page 0 with the default size.
func FirstPage() Page {
	return Page{number: 0, size: DefaultPageSize}
}

func (p Page) Number() int {
	return p.number
}

func (p Page) Size() int {
	if p.size == 0 {
		return DefaultPageSize
	}
	return p.size
}

func (p Page) offset() int {
	return p.number * p.Size()
}

// Paged is one page of a result set plus the navigation facts a client needs.
type Paged[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
	HasNext       bool
	HasPrevious   bool
}

func newPaged[T any](content []T, page Page, total int64) Paged[T] {
	size := page.Size()
	totalPages := int((total + int64(size) - 1) / int64(size))

	return Paged[T]{
		Content:       content,
		Page:          page.Number(),
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page.Number() == 0,
		Last:          page.Number() >= totalPages-1,
		HasNext:       page.Number() < totalPages-1,
		HasPrevious:   page.Number() > 0,
	}
}
