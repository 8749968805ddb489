package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

const teamMemberColumns = "id, name, role, image, bio, sort_order, is_active, created, updated"
const applicationColumns = "id, name, email, phone, linkedin, interest, comment, status, admin_notes, created, updated"

func scanTeamMemberRow(scan func(dest ...any) error) (domain.TeamMember, error) {
	var m domain.TeamMember
	err := scan(&m.Id, &m.Name, &m.Role, &m.Image, &m.Bio, &m.SortOrder, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// TeamMembers returns the roster in display order. When activeOnly is set,
// hidden members are skipped.
func (s *Storage) TeamMembers(activeOnly bool) ([]domain.TeamMember, error) {
	query := "SELECT " + teamMemberColumns + " FROM team_members"
	if activeOnly {
		query += " WHERE is_active"
	}
	query += " ORDER BY sort_order ASC, created ASC"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		m, err := scanTeamMemberRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Storage) TeamMember(id int64) (domain.TeamMember, error) {
	row := s.db.QueryRow("SELECT "+teamMemberColumns+" FROM team_members WHERE id = $1", id)
	m, err := scanTeamMemberRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TeamMember{}, internal_errors.NotFound("Team member not found")
		}
		return domain.TeamMember{}, fmt.Errorf("failed to query team member: %w", err)
	}
	return m, nil
}

func (s *Storage) SaveTeamMember(m domain.TeamMember) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
        INSERT INTO team_members(name, role, image, bio, sort_order, is_active)
        VALUES($1, $2, $3, $4, $5, $6)
        RETURNING id`,
		m.Name, m.Role, m.Image, m.Bio, m.SortOrder, m.IsActive).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert team member: %w", err)
	}
	return id, nil
}

func (s *Storage) UpdateTeamMember(m domain.TeamMember) error {
	result, err := s.db.Exec(`
        UPDATE team_members
        SET name = $1, role = $2, image = $3, bio = $4, sort_order = $5, is_active = $6, updated = NOW()
        WHERE id = $7`,
		m.Name, m.Role, m.Image, m.Bio, m.SortOrder, m.IsActive, m.Id)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for team member update: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Team member not found")
	}
	return nil
}

func (s *Storage) DeleteTeamMember(id int64) error {
	result, err := s.db.Exec("DELETE FROM team_members WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for team member deletion: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Team member not found")
	}
	return nil
}

func scanApplicationRow(scan func(dest ...any) error) (domain.TeamApplication, error) {
	var a domain.TeamApplication
	err := scan(&a.Id, &a.Name, &a.Email, &a.Phone, &a.Linkedin, &a.Interest,
		&a.Comment, &a.Status, &a.AdminNotes, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (s *Storage) SaveApplication(a domain.TeamApplication) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
        INSERT INTO team_applications(name, email, phone, linkedin, interest, comment)
        VALUES($1, $2, $3, $4, $5, $6)
        RETURNING id`,
		a.Name, a.Email, a.Phone, a.Linkedin, a.Interest, a.Comment).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert application: %w", err)
	}
	return id, nil
}

// Applications returns join requests newest first, optionally narrowed to a status.
func (s *Storage) Applications(status string) ([]domain.TeamApplication, error) {
	query := "SELECT " + applicationColumns + " FROM team_applications"
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.TeamApplication
	for rows.Next() {
		a, err := scanApplicationRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (s *Storage) Application(id int64) (domain.TeamApplication, error) {
	row := s.db.QueryRow("SELECT "+applicationColumns+" FROM team_applications WHERE id = $1", id)
	a, err := scanApplicationRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TeamApplication{}, internal_errors.NotFound("Application not found")
		}
		return domain.TeamApplication{}, fmt.Errorf("failed to query application: %w", err)
	}
	return a, nil
}

func (s *Storage) UpdateApplicationStatus(id int64, status, adminNotes string) error {
	result, err := s.db.Exec(`
        UPDATE team_applications
        SET status = $1,
            admin_notes = CASE WHEN $2 <> '' THEN $2 ELSE admin_notes END,
            updated = NOW()
        WHERE id = $3`,
		status, adminNotes, id)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for application update: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Application not found")
	}
	return nil
}

func (s *Storage) DeleteApplication(id int64) error {
	result, err := s.db.Exec("DELETE FROM team_applications WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for application deletion: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Application not found")
	}
	return nil
}

// DeleteAllApplications wipes the application queue and reports how many
// rows were removed.
func (s *Storage) DeleteAllApplications() (int64, error) {
	result, err := s.db.Exec("DELETE FROM team_applications")
	if err != nil {
		return 0, fmt.Errorf("failed to delete applications: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows for application wipe: %w", err)
	}
	return affected, nil
}
