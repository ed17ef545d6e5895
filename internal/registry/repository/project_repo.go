package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

const projectColumns = `id, name, description, start_date, end_date, institution_id, user_id`

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var description sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &description, &p.StartDate, &p.EndDate, &p.InstitutionID, &p.UserID); err != nil {
		return nil, err
	}
	p.Description = textPtr(description)
	p.StartDate = domain.DateOf(p.StartDate)
	p.EndDate = domain.DateOf(p.EndDate)
	return &p, nil
}

// Create inserts a project. The foreign keys reject unknown institution or
// user ids in the same statement, so a concurrent delete cannot orphan it.
func (r *ProjectRepository) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error) {
	const q = `
INSERT INTO projects (name, description, start_date, end_date, institution_id, user_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q,
		req.Name,
		nullableText(req.Description),
		domain.FormatDate(req.StartDate),
		domain.FormatDate(req.EndDate),
		req.InstitutionID,
		req.UserID,
	))
	if err != nil {
		return nil, translateWriteError(domain.EntityProject, "create project", err)
	}
	return p, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1;`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(domain.EntityProject, id)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects ORDER BY id;`
	return r.query(ctx, "list projects", q)
}

// ListByInstitution returns the projects owned by an institution.
func (r *ProjectRepository) ListByInstitution(ctx context.Context, institutionID int64) ([]domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE institution_id = $1 ORDER BY id;`
	return r.query(ctx, "list projects by institution", q, institutionID)
}

// ListByUser returns the projects a user is responsible for.
func (r *ProjectRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY id;`
	return r.query(ctx, "list projects by user", q, userID)
}

func (r *ProjectRepository) query(ctx context.Context, op, q string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// Update overwrites the supplied fields of a project.
func (r *ProjectRepository) Update(ctx context.Context, id int64, req *domain.UpdateProjectRequest) (*domain.Project, error) {
	const q = `
UPDATE projects
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    start_date = COALESCE($4::date, start_date),
    end_date = COALESCE($5::date, end_date),
    institution_id = COALESCE($6, institution_id),
    user_id = COALESCE($7, user_id)
WHERE id = $1
RETURNING ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q,
		id,
		nullableText(req.Name),
		nullableText(req.Description),
		nullableDate(req.StartDate),
		nullableDate(req.EndDate),
		nullableID(req.InstitutionID),
		nullableID(req.UserID),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(domain.EntityProject, id)
		}
		return nil, translateWriteError(domain.EntityProject, "update project", err)
	}
	return p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM projects WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n == 0 {
		return domain.NewNotFound(domain.EntityProject, id)
	}
	return nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
