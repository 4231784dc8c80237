package search

import (
	"fmt"
	"strings"

	"github.com/dtroode/users-server/internal/model"
)

var sortColumns = map[model.SortField]string{
	model.SortFieldID:             "id",
	model.SortFieldFirstName:      "first_name",
	model.SortFieldLastName:       "last_name",
	model.SortFieldDocumentNumber: "document_number",
	model.SortFieldBirthDate:      "birth_date",
}

// Column maps a sort field to its column name.
func Column(f model.SortField) (string, bool) {
	c, ok := sortColumns[f]
	return c, ok
}

// OrderBy renders an ORDER BY clause. Unknown fields sort by id.
func OrderBy(f model.SortField, dir model.SortDirection) string {
	column, ok := Column(f)
	if !ok {
		column = "id"
	}
	if dir == model.SortDesc {
		return fmt.Sprintf("ORDER BY %s DESC", column)
	}
	return fmt.Sprintf("ORDER BY %s ASC", column)
}

// Compare orders two users by the given field and direction.
// It returns a negative number when a sorts before b. Unset document numbers
// and birth dates compare greater than any value, so they come last in ASC
// and first in DESC, like NULL columns in ORDER BY.
func Compare(f model.SortField, dir model.SortDirection, a, b model.User) int {
	var c int
	switch f {
	case model.SortFieldFirstName:
		c = strings.Compare(a.FirstName, b.FirstName)
	case model.SortFieldLastName:
		c = strings.Compare(a.LastName, b.LastName)
	case model.SortFieldDocumentNumber:
		c = nullsLast(a.DocumentNumber == "", b.DocumentNumber == "", func() int {
			return strings.Compare(a.DocumentNumber, b.DocumentNumber)
		})
	case model.SortFieldBirthDate:
		c = nullsLast(!a.HasBirthDate(), !b.HasBirthDate(), func() int {
			return a.BirthDate.Compare(b.BirthDate)
		})
	default:
		c = strings.Compare(a.ID.String(), b.ID.String())
	}
	if dir == model.SortDesc {
		return -c
	}
	return c
}

func nullsLast(aNull, bNull bool, cmp func() int) int {
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return 1
	case bNull:
		return -1
	}
	return cmp()
}
