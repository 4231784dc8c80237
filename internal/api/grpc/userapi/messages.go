package userapi

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator"
)

// DateLayout is the wire format of dates.
const DateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
	return v
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s characters long", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s characters long", fe.Field(), fe.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", fe.Field()))
		case "uuid":
			msgs = append(msgs, fmt.Sprintf("field %s must be a uuid", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of [%s]", fe.Field(), fe.Param()))
		case "date":
			msgs = append(msgs, fmt.Sprintf("field %s must be a date in format YYYY-MM-DD", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", fe.Field()))
		}
	}
	return errors.New(strings.Join(msgs, ", "))
}

// User is the wire representation of a user.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	Address        string `json:"address,omitempty"`
	Status         string `json:"status"`
	BirthDate      string `json:"birth_date,omitempty"`
}

type CreateUserRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=50"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty"`
	DocumentType   string `json:"document_type,omitempty" validate:"omitempty,oneof=DNI CE PASSPORT TI"`
	DocumentNumber string `json:"document_number,omitempty"`
	Address        string `json:"address,omitempty"`
	BirthDate      string `json:"birth_date,omitempty" validate:"omitempty,date"`
}

func (r *CreateUserRequest) Validate() error { return validateStruct(r) }

type UpdateUserRequest struct {
	ID        string `json:"id" validate:"required,uuid"`
	Username  string `json:"username" validate:"required,min=3,max=50"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Status    string `json:"status" validate:"required,oneof=ACTIVE INACTIVE DELETED"`
	BirthDate string `json:"birth_date,omitempty" validate:"omitempty,date"`
}

func (r *UpdateUserRequest) Validate() error { return validateStruct(r) }

type UserIDRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

func (r *UserIDRequest) Validate() error { return validateStruct(r) }

type ChangePasswordRequest struct {
	ID              string `json:"id" validate:"required,uuid"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (r *ChangePasswordRequest) Validate() error { return validateStruct(r) }

// Paging holds the page selection shared by search requests.
type Paging struct {
	Page      int    `json:"page"`
	Size      int    `json:"size"`
	SortField string `json:"sort_field,omitempty" validate:"omitempty,oneof=ID FIRST_NAME LAST_NAME DOCUMENT_NUMBER BIRTH_DATE"`
	Direction string `json:"direction,omitempty" validate:"omitempty,oneof=ASC DESC"`
}

type SearchUsersRequest struct {
	LastName       *string `json:"last_name,omitempty"`
	DocumentNumber *string `json:"document_number,omitempty"`
	Status         string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE DELETED"`
	BirthDateFrom  string  `json:"birth_date_from,omitempty" validate:"omitempty,date"`
	BirthDateTo    string  `json:"birth_date_to,omitempty" validate:"omitempty,date"`
	Paging
}

func (r *SearchUsersRequest) Validate() error { return validateStruct(r) }

type SearchByLastNameRequest struct {
	LastName string `json:"last_name" validate:"required"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE DELETED"`
	Paging
}

func (r *SearchByLastNameRequest) Validate() error { return validateStruct(r) }

type SearchByDocumentNumberRequest struct {
	DocumentNumber string `json:"document_number" validate:"required"`
	Status         string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE DELETED"`
	Paging
}

func (r *SearchByDocumentNumberRequest) Validate() error { return validateStruct(r) }

type UserResponse struct {
	User User `json:"user"`
}

type UsersPage struct {
	Users         []User `json:"users"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"total_elements"`
	TotalPages    int    `json:"total_pages"`
}

type Empty struct{}
