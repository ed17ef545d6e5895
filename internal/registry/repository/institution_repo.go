package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

const institutionColumns = `id, name, description, address, creation_date`

// InstitutionRepository provides persistence operations for institutions
type InstitutionRepository struct {
	db *sql.DB
}

// NewInstitutionRepository creates a new institution repository
func NewInstitutionRepository(db *sql.DB) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

func scanInstitution(row rowScanner) (*domain.Institution, error) {
	var inst domain.Institution
	var description, address sql.NullString
	if err := row.Scan(&inst.ID, &inst.Name, &description, &address, &inst.CreationDate); err != nil {
		return nil, err
	}
	inst.Description = textPtr(description)
	inst.Address = textPtr(address)
	inst.CreationDate = domain.DateOf(inst.CreationDate)
	return &inst, nil
}

// Create inserts a new institution.
func (r *InstitutionRepository) Create(ctx context.Context, req *domain.CreateInstitutionRequest) (*domain.Institution, error) {
	const q = `
INSERT INTO institutions (name, description, address, creation_date)
VALUES ($1, $2, $3, $4)
RETURNING ` + institutionColumns + `;
`
	inst, err := scanInstitution(r.db.QueryRowContext(ctx, q,
		req.Name,
		nullableText(req.Description),
		nullableText(req.Address),
		domain.FormatDate(req.CreationDate),
	))
	if err != nil {
		return nil, translateWriteError(domain.EntityInstitution, "create institution", err)
	}
	return inst, nil
}

// GetByID returns the institution with the given id.
func (r *InstitutionRepository) GetByID(ctx context.Context, id int64) (*domain.Institution, error) {
	const q = `SELECT ` + institutionColumns + ` FROM institutions WHERE id = $1;`

	inst, err := scanInstitution(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(domain.EntityInstitution, id)
		}
		return nil, fmt.Errorf("get institution: %w", err)
	}
	return inst, nil
}

// List returns every institution in insertion order.
func (r *InstitutionRepository) List(ctx context.Context) ([]domain.Institution, error) {
	const q = `SELECT ` + institutionColumns + ` FROM institutions ORDER BY id;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Institution, 0, 16)
	for rows.Next() {
		inst, err := scanInstitution(rows)
		if err != nil {
			return nil, fmt.Errorf("scan institution: %w", err)
		}
		out = append(out, *inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	return out, nil
}

// Update overwrites the supplied fields of an institution.
func (r *InstitutionRepository) Update(ctx context.Context, id int64, req *domain.UpdateInstitutionRequest) (*domain.Institution, error) {
	// COALESCE keeps the stored value for fields the caller did not supply.
	const q = `
UPDATE institutions
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    address = COALESCE($4, address),
    creation_date = COALESCE($5::date, creation_date)
WHERE id = $1
RETURNING ` + institutionColumns + `;
`
	inst, err := scanInstitution(r.db.QueryRowContext(ctx, q,
		id,
		nullableText(req.Name),
		nullableText(req.Description),
		nullableText(req.Address),
		nullableDate(req.CreationDate),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(domain.EntityInstitution, id)
		}
		return nil, translateWriteError(domain.EntityInstitution, "update institution", err)
	}
	return inst, nil
}

// Delete removes an institution. Institutions still referenced by projects
// are rejected with a conflict.
func (r *InstitutionRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM institutions WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return translateDeleteError(domain.EntityInstitution, "delete institution", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete institution: %w", err)
	}
	if n == 0 {
		return domain.NewNotFound(domain.EntityInstitution, id)
	}
	return nil
}
