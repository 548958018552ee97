// Package pagination provides offset and keyset pagination helpers for
// list endpoints. Order history uses keyset cursors so a register
// scrolling through a busy day never skips or repeats rows; everything
// else uses plain page/per_page.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Pagination describes one page of an offset-paginated result.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// PaginationParams are the page/per_page query parameters.
type PaginationParams struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// Validate clamps parameters into valid ranges.
func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 15
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset returns the SQL offset for the current page.
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// NewPagination builds the pagination metadata for a page.
func NewPagination(page, perPage int, total int64) *Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	return &Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// PaginatedResult pairs a page of items with its pagination metadata.
type PaginatedResult[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// NewPaginatedResult wraps items and pagination into one result.
func NewPaginatedResult[T any](items []T, pagination *Pagination) *PaginatedResult[T] {
	return &PaginatedResult[T]{
		Items:      items,
		Pagination: pagination,
	}
}

// CursorDirection says which way a cursor walk moves.
type CursorDirection string

const (
	CursorDirectionNext CursorDirection = "next"
	CursorDirectionPrev CursorDirection = "prev"
)

// Cursor is the decoded keyset position. CreatedAt breaks ties between
// rows sharing a timestamp together with the ID.
type Cursor struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// CursorParams are the cursor/direction/limit query parameters.
type CursorParams struct {
	Cursor    string          `form:"cursor" json:"cursor"`
	Direction CursorDirection `form:"direction" json:"direction"`
	Limit     int             `form:"limit" json:"limit"`
}

// Validate clamps parameters into valid ranges.
func (c *CursorParams) Validate() {
	if c.Limit < 1 {
		c.Limit = 15
	}
	if c.Limit > 100 {
		c.Limit = 100
	}
	if c.Direction == "" {
		c.Direction = CursorDirectionNext
	}
}

// DecodeCursor decodes the base64 cursor, or returns nil when the walk
// starts from the beginning.
func (c *CursorParams) DecodeCursor() (*Cursor, error) {
	if c.Cursor == "" {
		return nil, nil
	}

	decoded, err := base64.URLEncoding.DecodeString(c.Cursor)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor format: %w", err)
	}

	var cursor Cursor
	if err := json.Unmarshal(decoded, &cursor); err != nil {
		return nil, fmt.Errorf("invalid cursor data: %w", err)
	}

	return &cursor, nil
}

// EncodeCursor encodes a row position as an opaque base64 cursor.
func EncodeCursor(id string, createdAt ...time.Time) string {
	cursor := Cursor{ID: id}
	if len(createdAt) > 0 {
		cursor.CreatedAt = createdAt[0]
	}

	data, _ := json.Marshal(cursor)
	return base64.URLEncoding.EncodeToString(data)
}

// CursorPagination describes one page of a cursor-paginated result.
type CursorPagination struct {
	NextCursor *string `json:"next_cursor,omitempty"`
	PrevCursor *string `json:"prev_cursor,omitempty"`
	HasNext    bool    `json:"has_next"`
	HasPrev    bool    `json:"has_prev"`
	Limit      int     `json:"limit"`
}

// CursorPaginatedResult pairs items with cursor pagination metadata.
type CursorPaginatedResult[T any] struct {
	Items      []T               `json:"items"`
	Pagination *CursorPagination `json:"pagination"`
}

// NewCursorPagination builds cursor metadata from a fetched page. The
// caller fetches limit+1 rows so the extra row signals another page.
func NewCursorPagination[T any](items []T, limit int, getID func(T) string, getCreatedAt func(T) time.Time) (*CursorPagination, []T) {
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	pagination := &CursorPagination{
		Limit:   limit,
		HasNext: hasMore,
		HasPrev: false, // caller sets this from cursor presence
	}

	if len(items) > 0 {
		lastItem := items[len(items)-1]
		nextCursor := EncodeCursor(getID(lastItem), getCreatedAt(lastItem))
		pagination.NextCursor = &nextCursor

		firstItem := items[0]
		prevCursor := EncodeCursor(getID(firstItem), getCreatedAt(firstItem))
		pagination.PrevCursor = &prevCursor
	}

	return pagination, items
}

// NewCursorPaginatedResult wraps items and cursor metadata into one result.
func NewCursorPaginatedResult[T any](items []T, pagination *CursorPagination) *CursorPaginatedResult[T] {
	return &CursorPaginatedResult[T]{
		Items:      items,
		Pagination: pagination,
	}
}
