package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

const contactColumns = "id, name, email, subject, message, status, admin_response, created, updated"

func scanContactRow(scan func(dest ...any) error) (domain.Contact, error) {
	var c domain.Contact
	err := scan(&c.Id, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &c.AdminResponse, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *Storage) SaveContact(c domain.Contact) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
        INSERT INTO contacts(name, email, subject, message)
        VALUES($1, $2, $3, $4)
        RETURNING id`,
		c.Name, c.Email, c.Subject, c.Message).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert contact: %w", err)
	}
	return id, nil
}

// Contacts returns all messages, newest first.
func (s *Storage) Contacts() ([]domain.Contact, error) {
	rows, err := s.db.Query("SELECT " + contactColumns + " FROM contacts ORDER BY created DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		c, err := scanContactRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *Storage) Contact(id int64) (domain.Contact, error) {
	row := s.db.QueryRow("SELECT "+contactColumns+" FROM contacts WHERE id = $1", id)
	c, err := scanContactRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contact{}, internal_errors.NotFound("Contact not found")
		}
		return domain.Contact{}, fmt.Errorf("failed to query contact: %w", err)
	}
	return c, nil
}

// UpdateContactStatus sets the status and, optionally, the stored admin response.
func (s *Storage) UpdateContactStatus(id int64, status, adminResponse string) error {
	result, err := s.db.Exec(`
        UPDATE contacts
        SET status = $1,
            admin_response = CASE WHEN $2 <> '' THEN $2 ELSE admin_response END,
            updated = NOW()
        WHERE id = $3`,
		status, adminResponse, id)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for contact update: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Contact not found")
	}
	return nil
}

// DeleteAllContacts wipes the inbox and reports how many rows were removed.
func (s *Storage) DeleteAllContacts() (int64, error) {
	result, err := s.db.Exec("DELETE FROM contacts")
	if err != nil {
		return 0, fmt.Errorf("failed to delete contacts: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows for contact wipe: %w", err)
	}
	return affected, nil
}

func (s *Storage) DeleteContact(id int64) error {
	result, err := s.db.Exec("DELETE FROM contacts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for contact deletion: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Contact not found")
	}
	return nil
}
