package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

const feedbackColumns = "id, name, email, role, workplace, comment, rating, featured, created, updated"

func scanFeedbackRow(scan func(dest ...any) error) (domain.Feedback, error) {
	var f domain.Feedback
	err := scan(&f.Id, &f.Name, &f.Email, &f.Role, &f.Workplace, &f.Comment, &f.Rating, &f.Featured, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (s *Storage) SaveFeedback(f domain.Feedback) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
        INSERT INTO feedback(name, email, role, workplace, comment, rating)
        VALUES($1, $2, $3, $4, $5, $6)
        RETURNING id`,
		f.Name, f.Email, f.Role, f.Workplace, f.Comment, f.Rating).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert feedback: %w", err)
	}
	return id, nil
}

// AllFeedback returns every entry, newest first.
func (s *Storage) AllFeedback() ([]domain.Feedback, error) {
	return queryFeedback(s.db, "SELECT "+feedbackColumns+" FROM feedback ORDER BY created DESC")
}

// PublicFeedback returns every testimonial for the public page, curated
// ones first, then newest.
func (s *Storage) PublicFeedback() ([]domain.Feedback, error) {
	return queryFeedback(s.db, "SELECT "+feedbackColumns+" FROM feedback ORDER BY featured DESC, created DESC")
}

func queryFeedback(q Querier, query string, args ...any) ([]domain.Feedback, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var entries []domain.Feedback
	for rows.Next() {
		f, err := scanFeedbackRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		entries = append(entries, f)
	}
	return entries, rows.Err()
}

func (s *Storage) Feedback(id int64) (domain.Feedback, error) {
	row := s.db.QueryRow("SELECT "+feedbackColumns+" FROM feedback WHERE id = $1", id)
	f, err := scanFeedbackRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Feedback{}, internal_errors.NotFound("Feedback not found")
		}
		return domain.Feedback{}, fmt.Errorf("failed to query feedback: %w", err)
	}
	return f, nil
}

func (s *Storage) SetFeedbackFeatured(id int64, featured bool) error {
	result, err := s.db.Exec("UPDATE feedback SET featured = $1, updated = NOW() WHERE id = $2", featured, id)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for feedback update: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Feedback not found")
	}
	return nil
}

func (s *Storage) DeleteFeedback(id int64) error {
	result, err := s.db.Exec("DELETE FROM feedback WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for feedback deletion: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Feedback not found")
	}
	return nil
}
