package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

const subscriptionColumns = "id, email, is_active, unsubscribe_token, created, updated"

func scanSubscriptionRow(scan func(dest ...any) error) (domain.Subscription, error) {
	var sub domain.Subscription
	err := scan(&sub.Id, &sub.Email, &sub.IsActive, &sub.UnsubscribeToken, &sub.CreatedAt, &sub.UpdatedAt)
	return sub, err
}

// SaveSubscription inserts a subscriber or reactivates a previously
// unsubscribed one. Besides the stored row it reports whether the address
// already existed and whether it was active before the call, so callers
// can tell a returning subscriber from a duplicate signup. The prior CTE
// reads the pre-statement snapshot, which is exactly the state before
// the upsert ran.
func (s *Storage) SaveSubscription(email, token string) (domain.Subscription, bool, bool, error) {
	row := s.db.QueryRow(`
        WITH prior AS (
            SELECT is_active FROM subscriptions WHERE email = LOWER($1)
        ), saved AS (
            INSERT INTO subscriptions(email, unsubscribe_token)
            VALUES(LOWER($1), $2)
            ON CONFLICT (email) DO UPDATE
                SET is_active = TRUE, updated = NOW()
            RETURNING `+subscriptionColumns+`
        )
        SELECT saved.*, prior.is_active FROM saved LEFT JOIN prior ON TRUE`,
		email, token)

	var sub domain.Subscription
	var priorActive sql.NullBool
	err := row.Scan(&sub.Id, &sub.Email, &sub.IsActive, &sub.UnsubscribeToken, &sub.CreatedAt, &sub.UpdatedAt, &priorActive)
	if err != nil {
		return domain.Subscription{}, false, false, fmt.Errorf("failed to save subscription: %w", err)
	}
	return sub, priorActive.Valid, priorActive.Bool, nil
}

// Subscriptions returns all subscribers, newest first.
func (s *Storage) Subscriptions() ([]domain.Subscription, error) {
	rows, err := s.db.Query("SELECT " + subscriptionColumns + " FROM subscriptions ORDER BY created DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscriptionRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// ActiveSubscriberEmails returns the addresses a newsletter goes to.
func (s *Storage) ActiveSubscriberEmails() ([]string, error) {
	rows, err := s.db.Query("SELECT email FROM subscriptions WHERE is_active ORDER BY created ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query active subscribers: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber email: %w", err)
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

// DeactivateSubscription flips a subscriber inactive by unsubscribe token.
func (s *Storage) DeactivateSubscription(token string) error {
	if token == "" {
		return internal_errors.BadRequest("Missing unsubscribe token")
	}
	result, err := s.db.Exec("UPDATE subscriptions SET is_active = FALSE, updated = NOW() WHERE unsubscribe_token = $1", token)
	if err != nil {
		return fmt.Errorf("failed to deactivate subscription: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for unsubscribe: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Subscription not found")
	}
	return nil
}

func (s *Storage) Subscription(id int64) (domain.Subscription, error) {
	row := s.db.QueryRow("SELECT "+subscriptionColumns+" FROM subscriptions WHERE id = $1", id)
	sub, err := scanSubscriptionRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subscription{}, internal_errors.NotFound("Subscription not found")
		}
		return domain.Subscription{}, fmt.Errorf("failed to query subscription: %w", err)
	}
	return sub, nil
}

// SetSubscriptionActive toggles a subscriber from the admin panel.
func (s *Storage) SetSubscriptionActive(id int64, active bool) (domain.Subscription, error) {
	row := s.db.QueryRow("UPDATE subscriptions SET is_active = $1, updated = NOW() WHERE id = $2 RETURNING "+subscriptionColumns,
		active, id)
	sub, err := scanSubscriptionRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subscription{}, internal_errors.NotFound("Subscription not found")
		}
		return domain.Subscription{}, fmt.Errorf("failed to toggle subscription: %w", err)
	}
	return sub, nil
}

func (s *Storage) DeleteSubscription(id int64) error {
	result, err := s.db.Exec("DELETE FROM subscriptions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for subscription deletion: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Subscription not found")
	}
	return nil
}

// DeleteSubscriptions removes the given ids and reports how many rows
// actually went away.
func (s *Storage) DeleteSubscriptions(ids []int64) (int64, error) {
	result, err := s.db.Exec("DELETE FROM subscriptions WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to delete subscriptions: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows for subscription batch delete: %w", err)
	}
	return affected, nil
}

// DeleteAllSubscriptions wipes the subscriber list and reports how many
// rows were removed.
func (s *Storage) DeleteAllSubscriptions() (int64, error) {
	result, err := s.db.Exec("DELETE FROM subscriptions")
	if err != nil {
		return 0, fmt.Errorf("failed to delete subscriptions: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows for subscription wipe: %w", err)
	}
	return affected, nil
}
