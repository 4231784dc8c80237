package model

import (
	"math"
	"time"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage keeps Page*MaxPageSize within int.
	MaxPage = math.MaxInt / MaxPageSize
)

// UserSearchFilter narrows a user search. Nil fields do not constrain the result.
type UserSearchFilter struct {
	LastName       *string
	DocumentNumber *string
	Status         *UserStatus
	BirthDateFrom  *time.Time
	BirthDateTo    *time.Time
}

// SortField is a user attribute a search can be ordered by.
type SortField string

const (
	SortFieldID             SortField = "ID"
	SortFieldFirstName      SortField = "FIRST_NAME"
	SortFieldLastName       SortField = "LAST_NAME"
	SortFieldDocumentNumber SortField = "DOCUMENT_NUMBER"
	SortFieldBirthDate      SortField = "BIRTH_DATE"
)

// Valid reports whether the sort field is one of the known values.
func (f SortField) Valid() bool {
	switch f {
	case SortFieldID, SortFieldFirstName, SortFieldLastName, SortFieldDocumentNumber, SortFieldBirthDate:
		return true
	}
	return false
}

// SortDirection is the order of a search result.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// PageRequest selects one page of a search result.
// Zero values of Sort and Direction mean "use the default".
type PageRequest struct {
	Page      int
	Size      int
	Sort      SortField
	Direction SortDirection
}

// Offset returns the number of elements before the requested page.
// It saturates at math.MaxInt instead of overflowing and is never negative.
func (r PageRequest) Offset() int {
	if r.Page <= 0 || r.Size <= 0 {
		return 0
	}
	if r.Page > math.MaxInt/r.Size {
		return math.MaxInt
	}
	return r.Page * r.Size
}

// Page is one slice of a larger result set.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewPage builds a page and computes the total page count from total and size.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
