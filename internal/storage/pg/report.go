package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

const reportColumns = "id, title, description, reporter_name, reporter_email, category, project_url, status, admin_notes, created, updated"

func scanReportRow(scan func(dest ...any) error) (domain.Report, error) {
	var r domain.Report
	err := scan(&r.Id, &r.Title, &r.Description, &r.ReporterName, &r.ReporterEmail,
		&r.Category, &r.ProjectURL, &r.Status, &r.AdminNotes, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (s *Storage) SaveReport(r domain.Report) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
        INSERT INTO reports(title, description, reporter_name, reporter_email, category, project_url)
        VALUES($1, $2, $3, $4, $5, $6)
        RETURNING id`,
		r.Title, r.Description, r.ReporterName, r.ReporterEmail, r.Category, r.ProjectURL).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert report: %w", err)
	}
	return id, nil
}

// Reports returns reports newest first, optionally narrowed to a status.
func (s *Storage) Reports(status string) ([]domain.Report, error) {
	query := "SELECT " + reportColumns + " FROM reports"
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		r, err := scanReportRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// FeaturedReports returns approved and featured reports for the public feed.
func (s *Storage) FeaturedReports() ([]domain.Report, error) {
	rows, err := s.db.Query("SELECT "+reportColumns+" FROM reports WHERE status IN ($1, $2) ORDER BY created DESC",
		domain.ReportFeatured, domain.ReportApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to query featured reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		r, err := scanReportRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (s *Storage) Report(id int64) (domain.Report, error) {
	row := s.db.QueryRow("SELECT "+reportColumns+" FROM reports WHERE id = $1", id)
	r, err := scanReportRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Report{}, internal_errors.NotFound("Report not found")
		}
		return domain.Report{}, fmt.Errorf("failed to query report: %w", err)
	}
	return r, nil
}

func (s *Storage) UpdateReportStatus(id int64, status, adminNotes string) error {
	result, err := s.db.Exec(`
        UPDATE reports
        SET status = $1,
            admin_notes = CASE WHEN $2 <> '' THEN $2 ELSE admin_notes END,
            updated = NOW()
        WHERE id = $3`,
		status, adminNotes, id)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for report update: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Report not found")
	}
	return nil
}

// DeleteAllReports wipes the report queue and reports how many rows were removed.
func (s *Storage) DeleteAllReports() (int64, error) {
	result, err := s.db.Exec("DELETE FROM reports")
	if err != nil {
		return 0, fmt.Errorf("failed to delete reports: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows for report wipe: %w", err)
	}
	return affected, nil
}

func (s *Storage) DeleteReport(id int64) error {
	result, err := s.db.Exec("DELETE FROM reports WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for report deletion: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Report not found")
	}
	return nil
}
