package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/users-server/internal/model"
	"github.com/dtroode/users-server/internal/search"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, username, first_name, last_name, email, phone, document_type, document_number,
	address, status, birth_date, password_hash`

var uniqueConstraintFields = map[string]string{
	"users_username_key":        "username",
	"users_email_key":           "email",
	"users_document_number_key": "document number",
}

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User, passwordHash string) (model.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := `INSERT INTO users (id, username, first_name, last_name, email, phone, document_type, document_number,
			  address, status, birth_date, password_hash)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING ` + userColumns

	saved, _, err := scanUser(r.db.QueryRow(ctx, query, userArgs(user, passwordHash)...))
	if err != nil {
		if uniqueErr := uniqueViolation(err); uniqueErr != nil {
			return model.User{}, uniqueErr
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User, passwordHash string) (model.User, error) {
	query := `UPDATE users SET username = $2, first_name = $3, last_name = $4, email = $5, phone = $6,
			  document_type = $7, document_number = $8, address = $9, status = $10, birth_date = $11,
			  password_hash = $12, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	saved, _, err := scanUser(r.db.QueryRow(ctx, query, userArgs(user, passwordHash)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		if uniqueErr := uniqueViolation(err); uniqueErr != nil {
			return model.User{}, uniqueErr
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	found, err := r.FindByIDWithPassword(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	return found.User, nil
}

func (r *UserRepository) FindByIDWithPassword(ctx context.Context, id uuid.UUID) (model.UserWithPassword, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, hash, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserWithPassword{}, model.ErrNotFound
		}
		return model.UserWithPassword{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return model.UserWithPassword{User: user, PasswordHash: hash}, nil
}

func (r *UserRepository) Search(ctx context.Context, filter model.UserSearchFilter, req model.PageRequest) (model.Page[model.User], error) {
	countQuery, selectQuery, args := buildSearchQueries(filter, req)

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return model.Page[model.User]{}, fmt.Errorf("failed to count users: %w", err)
	}

	rows, err := r.db.Query(ctx, selectQuery, append(args, req.Size, req.Offset())...)
	if err != nil {
		return model.Page[model.User]{}, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0, req.Size)
	for rows.Next() {
		user, _, err := scanUser(rows)
		if err != nil {
			return model.Page[model.User]{}, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return model.Page[model.User]{}, fmt.Errorf("failed to iterate users: %w", err)
	}

	return model.NewPage(users, req, total), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *UserRepository) ExistsByDocumentNumber(ctx context.Context, number string) (bool, error) {
	return r.exists(ctx, "document_number", number)
}

func (r *UserRepository) exists(ctx context.Context, column, value string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM users WHERE %s = $1)`, column)

	var exists bool
	if err := r.db.QueryRow(ctx, query, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", column, err)
	}
	return exists, nil
}

// buildSearchQueries returns the count and page queries for a search. The page query
// expects LIMIT and OFFSET appended to args.
func buildSearchQueries(filter model.UserSearchFilter, req model.PageRequest) (string, string, []any) {
	where, args := search.FromFilter(filter).Where(1)

	countQuery := "SELECT COUNT(*) FROM users"
	selectQuery := "SELECT " + userColumns + " FROM users"
	if where != "" {
		countQuery += " " + where
		selectQuery += " " + where
	}
	selectQuery += fmt.Sprintf(" %s LIMIT $%d OFFSET $%d",
		search.OrderBy(req.Sort, req.Direction), len(args)+1, len(args)+2)

	return countQuery, selectQuery, args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (model.User, string, error) {
	var user model.User
	var status string
	var birthDate *time.Time
	var email, phone, documentType, documentNumber, address, hash *string

	err := row.Scan(
		&user.ID, &user.Username, &user.FirstName, &user.LastName, &email, &phone,
		&documentType, &documentNumber, &address, &status, &birthDate, &hash,
	)
	if err != nil {
		return model.User{}, "", err
	}

	user.Email = deref(email)
	user.Phone = deref(phone)
	user.DocumentType = model.DocumentType(deref(documentType))
	user.DocumentNumber = deref(documentNumber)
	user.Address = deref(address)
	user.Status = model.UserStatus(status)
	if birthDate != nil {
		user.BirthDate = *birthDate
	}

	return user, deref(hash), nil
}

func userArgs(user model.User, passwordHash string) []any {
	var birthDate *time.Time
	if user.HasBirthDate() {
		birthDate = &user.BirthDate
	}

	return []any{
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		nullable(user.Email),
		nullable(user.Phone),
		nullable(string(user.DocumentType)),
		nullable(user.DocumentNumber),
		nullable(user.Address),
		string(user.Status),
		birthDate,
		passwordHash,
	}
}

func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}

	field, ok := uniqueConstraintFields[pgErr.ConstraintName]
	if !ok {
		field = "value"
	}
	return model.NewValidationError(fmt.Sprintf("%s is already in use", field))
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
