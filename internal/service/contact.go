package service

import (
	"strings"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

type ContactService interface {
	Submit(c domain.Contact) (domain.Contact, error)
	List() ([]domain.Contact, error)
	UpdateStatus(id int64, status, adminResponse string) (domain.Contact, error)
	Delete(id int64) error
	DeleteAll() (int64, error)
}

type ContactStorage interface {
	SaveContact(c domain.Contact) (int64, error)
	Contacts() ([]domain.Contact, error)
	Contact(id int64) (domain.Contact, error)
	UpdateContactStatus(id int64, status, adminResponse string) error
	DeleteContact(id int64) error
	DeleteAllContacts() (int64, error)
}

type ContactSvc struct {
	storage ContactStorage
}

func NewContact(storage ContactStorage) *ContactSvc {
	return &ContactSvc{storage: storage}
}

func (s *ContactSvc) Submit(c domain.Contact) (domain.Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Subject = strings.TrimSpace(c.Subject)
	c.Status = domain.ContactUnread

	id, err := s.storage.SaveContact(c)
	if err != nil {
		return domain.Contact{}, err
	}
	return s.storage.Contact(id)
}

func (s *ContactSvc) List() ([]domain.Contact, error) {
	return s.storage.Contacts()
}

func (s *ContactSvc) UpdateStatus(id int64, status, adminResponse string) (domain.Contact, error) {
	switch status {
	case domain.ContactUnread, domain.ContactRead, domain.ContactReplied:
	default:
		return domain.Contact{}, errors.BadRequest("Invalid contact status")
	}
	if err := s.storage.UpdateContactStatus(id, status, adminResponse); err != nil {
		return domain.Contact{}, err
	}
	return s.storage.Contact(id)
}

func (s *ContactSvc) Delete(id int64) error {
	return s.storage.DeleteContact(id)
}

func (s *ContactSvc) DeleteAll() (int64, error) {
	return s.storage.DeleteAllContacts()
}
