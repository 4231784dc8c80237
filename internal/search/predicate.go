// Package search turns a user search filter into a list of predicates that can be
// evaluated in memory or rendered into a SQL WHERE clause.
package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/users-server/internal/model"
)

type operator int

const (
	opContains operator = iota
	opEqual
	opGreaterOrEqual
	opLessOrEqual
)

// Predicate is a single condition over one user attribute.
type Predicate struct {
	column string
	op     operator
	arg    any
	match  func(model.User) bool
}

// Matches reports whether the user satisfies the predicate.
func (p Predicate) Matches(u model.User) bool {
	return p.match(u)
}

// SQL renders the predicate using $n as its placeholder and returns the bound argument.
func (p Predicate) SQL(n int) (string, any) {
	switch p.op {
	case opContains:
		return fmt.Sprintf(`LOWER(%s) LIKE $%d ESCAPE '\'`, p.column, n), p.arg
	case opGreaterOrEqual:
		return fmt.Sprintf("%s >= $%d", p.column, n), p.arg
	case opLessOrEqual:
		return fmt.Sprintf("%s <= $%d", p.column, n), p.arg
	default:
		return fmt.Sprintf("%s = $%d", p.column, n), p.arg
	}
}

// Predicates is a conjunction of predicates. An empty list matches every user.
type Predicates []Predicate

// Matches reports whether the user satisfies every predicate.
func (ps Predicates) Matches(u model.User) bool {
	for _, p := range ps {
		if !p.Matches(u) {
			return false
		}
	}
	return true
}

// Where renders the predicates as a WHERE clause whose placeholders start at $first.
// It returns an empty clause and no arguments when there are no predicates.
func (ps Predicates) Where(first int) (string, []any) {
	if len(ps) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(ps))
	args := make([]any, 0, len(ps))
	for i, p := range ps {
		clause, arg := p.SQL(first + i)
		clauses = append(clauses, clause)
		args = append(args, arg)
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

// FromFilter builds one predicate for every attribute set in the filter.
func FromFilter(f model.UserSearchFilter) Predicates {
	var ps Predicates
	if f.LastName != nil {
		ps = append(ps, LastNameContains(*f.LastName))
	}
	if f.DocumentNumber != nil {
		ps = append(ps, DocumentNumberContains(*f.DocumentNumber))
	}
	if f.Status != nil {
		ps = append(ps, StatusIs(*f.Status))
	}
	if f.BirthDateFrom != nil {
		ps = append(ps, BornOnOrAfter(*f.BirthDateFrom))
	}
	if f.BirthDateTo != nil {
		ps = append(ps, BornOnOrBefore(*f.BirthDateTo))
	}
	return ps
}

// LastNameContains matches users whose last name contains s, ignoring case.
func LastNameContains(s string) Predicate {
	return contains("last_name", s, func(u model.User) string { return u.LastName })
}

// DocumentNumberContains matches users whose document number contains s, ignoring case.
// Users without a document number never match.
func DocumentNumberContains(s string) Predicate {
	return contains("document_number", s, func(u model.User) string { return u.DocumentNumber })
}

// StatusIs matches users with exactly the given status.
func StatusIs(status model.UserStatus) Predicate {
	return Predicate{
		column: "status",
		op:     opEqual,
		arg:    string(status),
		match:  func(u model.User) bool { return u.Status == status },
	}
}

// BornOnOrAfter matches users born on the given day or later.
func BornOnOrAfter(t time.Time) Predicate {
	from := day(t)
	return Predicate{
		column: "birth_date",
		op:     opGreaterOrEqual,
		arg:    from,
		match: func(u model.User) bool {
			return u.HasBirthDate() && !day(u.BirthDate).Before(from)
		},
	}
}

// BornOnOrBefore matches users born on the given day or earlier.
func BornOnOrBefore(t time.Time) Predicate {
	to := day(t)
	return Predicate{
		column: "birth_date",
		op:     opLessOrEqual,
		arg:    to,
		match: func(u model.User) bool {
			return u.HasBirthDate() && !day(u.BirthDate).After(to)
		},
	}
}

func contains(column, s string, value func(model.User) string) Predicate {
	needle := strings.ToLower(s)
	return Predicate{
		column: column,
		op:     opContains,
		arg:    "%" + escapeLike(needle) + "%",
		match: func(u model.User) bool {
			v := value(u)
			return v != "" && strings.Contains(strings.ToLower(v), needle)
		},
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
