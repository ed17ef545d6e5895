package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

const userColumns = `id, name, last_name, rut, birth_date, position, age`

// lookupColumns are the only fields FindBy may filter on.
var lookupColumns = map[string]string{
	"rut":       "rut",
	"name":      "name",
	"last_name": "last_name",
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var position sql.NullString
	var age sql.NullInt64
	if err := row.Scan(&u.ID, &u.Name, &u.LastName, &u.RUT, &u.BirthDate, &position, &age); err != nil {
		return nil, err
	}
	u.Position = textPtr(position)
	u.Age = intPtr(age)
	u.BirthDate = domain.DateOf(u.BirthDate)
	return &u, nil
}

// Create inserts a new user. A duplicate rut is a conflict.
func (r *UserRepository) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	const q = `
INSERT INTO users (name, last_name, rut, birth_date, position, age)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns + `;
`
	u, err := scanUser(r.db.QueryRowContext(ctx, q,
		req.Name,
		req.LastName,
		req.RUT,
		domain.FormatDate(req.BirthDate),
		nullableText(req.Position),
		nullableInt(req.Age),
	))
	if err != nil {
		return nil, translateWriteError(domain.EntityUser, "create user", err)
	}
	return u, nil
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`

	u, err := scanUser(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(domain.EntityUser, id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindBy returns the first user whose field equals value. Only rut, name and
// last_name can be used.
func (r *UserRepository) FindBy(ctx context.Context, field, value string) (*domain.User, error) {
	column, ok := lookupColumns[field]
	if !ok {
		return nil, domain.NewUnknownField(field)
	}

	q := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1 ORDER BY id LIMIT 1;`

	u, err := scanUser(r.db.QueryRowContext(ctx, q, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(domain.EntityUser, value)
		}
		return nil, fmt.Errorf("find user by %s: %w", field, err)
	}
	return u, nil
}

// List returns every user in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY id;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]domain.User, 0, 16)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// Update overwrites the supplied fields of a user.
func (r *UserRepository) Update(ctx context.Context, id int64, req *domain.UpdateUserRequest) (*domain.User, error) {
	const q = `
UPDATE users
SET name = COALESCE($2, name),
    last_name = COALESCE($3, last_name),
    rut = COALESCE($4, rut),
    birth_date = COALESCE($5::date, birth_date),
    position = COALESCE($6, position),
    age = COALESCE($7, age)
WHERE id = $1
RETURNING ` + userColumns + `;
`
	u, err := scanUser(r.db.QueryRowContext(ctx, q,
		id,
		nullableText(req.Name),
		nullableText(req.LastName),
		nullableText(req.RUT),
		nullableDate(req.BirthDate),
		nullableText(req.Position),
		nullableInt(req.Age),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(domain.EntityUser, id)
		}
		return nil, translateWriteError(domain.EntityUser, "update user", err)
	}
	return u, nil
}

// Delete removes a user; users still responsible for projects are rejected.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return translateDeleteError(domain.EntityUser, "delete user", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n == 0 {
		return domain.NewNotFound(domain.EntityUser, id)
	}
	return nil
}
