package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

const videoColumns = "id, name, category, filename, original_name, path, size, mime_type, is_active, created, updated"

func scanVideoRow(scan func(dest ...any) error) (domain.Video, error) {
	var v domain.Video
	err := scan(&v.Id, &v.Name, &v.Category, &v.Filename, &v.OriginalName, &v.Path,
		&v.Size, &v.MimeType, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

// Videos returns all uploads, newest first.
func (s *Storage) Videos() ([]domain.Video, error) {
	rows, err := s.db.Query("SELECT " + videoColumns + " FROM videos ORDER BY created DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		v, err := scanVideoRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (s *Storage) Video(id int64) (domain.Video, error) {
	row := s.db.QueryRow("SELECT "+videoColumns+" FROM videos WHERE id = $1", id)
	v, err := scanVideoRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Video{}, internal_errors.NotFound("Video not found")
		}
		return domain.Video{}, fmt.Errorf("failed to query video: %w", err)
	}
	return v, nil
}

// ActiveVideo returns the single active upload for a category, if any.
func (s *Storage) ActiveVideo(category string) (domain.Video, error) {
	row := s.db.QueryRow("SELECT "+videoColumns+" FROM videos WHERE category = $1 AND is_active", category)
	v, err := scanVideoRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Video{}, internal_errors.NotFound("No active video for category")
		}
		return domain.Video{}, fmt.Errorf("failed to query active video: %w", err)
	}
	return v, nil
}

// deactivateCategoryVideos flips every active upload in a category off,
// optionally sparing one id. Runs against the db or a transaction.
func deactivateCategoryVideos(q Querier, category string, exceptID int64) error {
	_, err := q.Exec("UPDATE videos SET is_active = FALSE, updated = NOW() WHERE category = $1 AND id <> $2 AND is_active",
		category, exceptID)
	if err != nil {
		return fmt.Errorf("failed to deactivate videos: %w", err)
	}
	return nil
}

// ReplaceActiveVideo deactivates every upload in the video's category and
// inserts the new one as active, all in a single transaction so the
// one-active-per-category invariant holds even across a crash mid-replace.
func (s *Storage) ReplaceActiveVideo(v domain.Video) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := deactivateCategoryVideos(tx, v.Category, 0); err != nil {
			return err
		}
		err := tx.QueryRow(`
            INSERT INTO videos(name, category, filename, original_name, path, size, mime_type, is_active)
            VALUES($1, $2, $3, $4, $5, $6, $7, TRUE)
            RETURNING id`,
			v.Name, v.Category, v.Filename, v.OriginalName, v.Path, v.Size, v.MimeType).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert video: %w", err)
		}
		return nil
	})
	return id, err
}

// SetVideoActive toggles a video. Activating also deactivates its category
// siblings inside the same transaction.
func (s *Storage) SetVideoActive(id int64, active bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var category string
		err := tx.QueryRow("SELECT category FROM videos WHERE id = $1", id).Scan(&category)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound("Video not found")
			}
			return fmt.Errorf("failed to query video category: %w", err)
		}

		if active {
			if err := deactivateCategoryVideos(tx, category, id); err != nil {
				return err
			}
		}
		if _, err := tx.Exec("UPDATE videos SET is_active = $1, updated = NOW() WHERE id = $2", active, id); err != nil {
			return fmt.Errorf("failed to toggle video: %w", err)
		}
		return nil
	})
}

func (s *Storage) DeleteVideo(id int64) error {
	result, err := s.db.Exec("DELETE FROM videos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for video deletion: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Video not found")
	}
	return nil
}
