package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

const projectColumns = "id, title, date, category, description, image, tags, link, featured, status, sort_order, created, updated"

func scanProjectRow(scan func(dest ...any) error) (domain.Project, error) {
	var p domain.Project
	err := scan(&p.Id, &p.Title, &p.Date, &p.Category, &p.Description, &p.Image,
		pq.Array(&p.Tags), &p.Link, &p.Featured, &p.Status, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Projects returns projects for display, featured first then newest.
// Without an explicit status filter, archived projects stay hidden.
func (s *Storage) Projects(status string) ([]domain.Project, error) {
	query := "SELECT " + projectColumns + " FROM projects"
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	} else {
		query += " WHERE status <> $1"
		args = append(args, domain.ProjectArchived)
	}
	query += " ORDER BY featured DESC, created DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProjectRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// FeaturedProjects returns the highlighted, non-archived projects, newest first.
func (s *Storage) FeaturedProjects() ([]domain.Project, error) {
	rows, err := s.db.Query("SELECT "+projectColumns+
		" FROM projects WHERE featured AND status <> $1 ORDER BY created DESC",
		domain.ProjectArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to query featured projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProjectRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *Storage) Project(id int64) (domain.Project, error) {
	row := s.db.QueryRow("SELECT "+projectColumns+" FROM projects WHERE id = $1", id)
	p, err := scanProjectRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, internal_errors.NotFound("Project not found")
		}
		return domain.Project{}, fmt.Errorf("failed to query project: %w", err)
	}
	return p, nil
}

func (s *Storage) SaveProject(p domain.Project) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
        INSERT INTO projects(title, date, category, description, image, tags, link, featured, status, sort_order)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id`,
		p.Title, p.Date, p.Category, p.Description, p.Image, pq.Array(p.Tags),
		p.Link, p.Featured, p.Status, p.SortOrder).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert project: %w", err)
	}
	return id, nil
}

func (s *Storage) UpdateProject(p domain.Project) error {
	result, err := s.db.Exec(`
        UPDATE projects
        SET title = $1, date = $2, category = $3, description = $4, image = $5,
            tags = $6, link = $7, featured = $8, status = $9, sort_order = $10,
            updated = NOW()
        WHERE id = $11`,
		p.Title, p.Date, p.Category, p.Description, p.Image, pq.Array(p.Tags),
		p.Link, p.Featured, p.Status, p.SortOrder, p.Id)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for project update: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Project not found")
	}
	return nil
}

func (s *Storage) DeleteProject(id int64) error {
	result, err := s.db.Exec("DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for project deletion: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Project not found")
	}
	return nil
}
