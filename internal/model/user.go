package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReservedUsername is the account that can never be deleted.
const ReservedUsername = "admin"

// AdultAge is the minimum age in full years for a new user.
const AdultAge = 18

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User, passwordHash string) (User, error)
	Update(ctx context.Context, user User, passwordHash string) (User, error)
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	FindByIDWithPassword(ctx context.Context, id uuid.UUID) (UserWithPassword, error)
	Search(ctx context.Context, filter UserSearchFilter, req PageRequest) (Page[User], error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByDocumentNumber(ctx context.Context, number string) (bool, error)
}

// PasswordHasher is a one-way password hashing capability.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// User represents a stored user. Empty optional strings and a zero BirthDate mean the value is absent.
type User struct {
	ID             uuid.UUID
	Username       string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	DocumentType   DocumentType
	DocumentNumber string
	Address        string
	Status         UserStatus
	BirthDate      time.Time
}

// UserWithPassword pairs a user with its stored password hash.
type UserWithPassword struct {
	User         User
	PasswordHash string
}

// HasBirthDate reports whether the birth date is set.
func (u User) HasBirthDate() bool {
	return !u.BirthDate.IsZero()
}

// HasDocument reports whether both document type and number are set.
func (u User) HasDocument() bool {
	return u.DocumentType != "" && u.DocumentNumber != ""
}

// WithStatus returns a copy of the user with the given status.
func (u User) WithStatus(status UserStatus) User {
	u.Status = status
	return u
}

// AgeAt returns the number of full years between the birth date and now.
func (u User) AgeAt(now time.Time) int {
	by, bm, bd := u.BirthDate.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	return age
}

// UserStatus is the lifecycle state of a user.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
	UserStatusDeleted  UserStatus = "DELETED"
)

// Valid reports whether the status is one of the known values.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusDeleted:
		return true
	}
	return false
}
