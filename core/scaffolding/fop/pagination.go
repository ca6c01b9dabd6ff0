// Package fop provides filter, order, and page support for repository
// queries.
package fop

import (
	"fmt"
	"strconv"
)

// Pagination bounds shared by every list endpoint.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page represents requested page-number pagination.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// ParsePage parses page number and size query values. Empty values take the
// defaults (page 1, size 20). Sizes above MaxPageSize are clamped; values
// below 1 are rejected.
func ParsePage(pageNumber string, pageSize string) (Page, error) {
	number := 1
	if pageNumber != "" {
		var err error
		number, err = strconv.Atoi(pageNumber)
		if err != nil {
			return Page{}, fmt.Errorf("page conversion: %w", err)
		}
	}
	if number < 1 {
		return Page{}, fmt.Errorf("page value too small, must be 1 or greater")
	}

	size := DefaultPageSize
	if pageSize != "" {
		var err error
		size, err = strconv.Atoi(pageSize)
		if err != nil {
			return Page{}, fmt.Errorf("size conversion: %w", err)
		}
	}
	if size < 1 {
		return Page{}, fmt.Errorf("size value too small, must be 1 or greater")
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Page{
		Number: number,
		Size:   size,
	}, nil
}
