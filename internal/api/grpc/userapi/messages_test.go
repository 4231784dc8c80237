package userapi

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/encoding"
)

func validCreate() *CreateUserRequest {
	return &CreateUserRequest{
		Username:       "jdoe",
		Password:       "s3cretpass",
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "jdoe@example.com",
		DocumentType:   "DNI",
		DocumentNumber: "12345678",
		BirthDate:      "1990-01-01",
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(r *CreateUserRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(r *CreateUserRequest) {}},
		{name: "optional fields empty", mutate: func(r *CreateUserRequest) {
			r.Email, r.DocumentType, r.DocumentNumber, r.BirthDate = "", "", "", ""
		}},
		{name: "username too short", mutate: func(r *CreateUserRequest) { r.Username = "jd" }, wantErr: "field username must be at least 3 characters long"},
		{name: "username too long", mutate: func(r *CreateUserRequest) { r.Username = strings.Repeat("a", 51) }, wantErr: "field username must be at most 50 characters long"},
		{name: "password too short", mutate: func(r *CreateUserRequest) { r.Password = "short" }, wantErr: "field password must be at least 8 characters long"},
		{name: "first name missing", mutate: func(r *CreateUserRequest) { r.FirstName = "" }, wantErr: "field first_name is a required field"},
		{name: "bad email", mutate: func(r *CreateUserRequest) { r.Email = "not-an-email" }, wantErr: "field email must be a valid email"},
		{name: "unknown document type", mutate: func(r *CreateUserRequest) { r.DocumentType = "SSN" }, wantErr: "field document_type must be one of [DNI CE PASSPORT TI]"},
		{name: "bad birth date", mutate: func(r *CreateUserRequest) { r.BirthDate = "01/01/1990" }, wantErr: "field birth_date must be a date in format YYYY-MM-DD"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := validCreate()
			tt.mutate(r)
			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestOtherRequests_Validate(t *testing.T) {
	t.Parallel()

	id := uuid.NewString()
	name := "doe"

	tests := []struct {
		name    string
		req     interface{ Validate() error }
		wantErr bool
	}{
		{name: "id ok", req: &UserIDRequest{ID: id}},
		{name: "id not uuid", req: &UserIDRequest{ID: "42"}, wantErr: true},
		{name: "update ok", req: &UpdateUserRequest{ID: id, Username: "jdoe", FirstName: "J", LastName: "D", Status: "INACTIVE"}},
		{name: "update without status", req: &UpdateUserRequest{ID: id, Username: "jdoe", FirstName: "J", LastName: "D"}, wantErr: true},
		{name: "change password ok", req: &ChangePasswordRequest{ID: id, CurrentPassword: "old", NewPassword: "newpassword", ConfirmPassword: "newpassword"}},
		{name: "change password short", req: &ChangePasswordRequest{ID: id, CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "new"}, wantErr: true},
		{name: "search empty", req: &SearchUsersRequest{}},
		{name: "search full", req: &SearchUsersRequest{LastName: &name, Status: "ACTIVE", BirthDateFrom: "1980-01-01", BirthDateTo: "1990-12-31", Paging: Paging{Page: 1, Size: 20, SortField: "LAST_NAME", Direction: "DESC"}}},
		{name: "search bad sort", req: &SearchUsersRequest{Paging: Paging{SortField: "PASSWORD"}}, wantErr: true},
		{name: "search bad direction", req: &SearchUsersRequest{Paging: Paging{Direction: "UP"}}, wantErr: true},
		{name: "by last name missing", req: &SearchByLastNameRequest{}, wantErr: true},
		{name: "by document ok", req: &SearchByDocumentNumberRequest{DocumentNumber: "123", Status: "DELETED"}},
		{name: "by document bad status", req: &SearchByDocumentNumberRequest{DocumentNumber: "123", Status: "GONE"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestJSONCodec_Registered(t *testing.T) {
	t.Parallel()

	codec := encoding.GetCodec(CodecName)
	if !assert.NotNil(t, codec) {
		return
	}

	data, err := codec.Marshal(&UserIDRequest{ID: "abc"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc"}`, string(data))
}
