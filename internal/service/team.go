package service

import (
	"strings"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

type TeamService interface {
	Members(activeOnly bool) ([]domain.TeamMember, error)
	Member(id int64) (domain.TeamMember, error)
	CreateMember(m domain.TeamMember) (domain.TeamMember, error)
	UpdateMember(m domain.TeamMember) (domain.TeamMember, error)
	DeleteMember(id int64) error

	Apply(a domain.TeamApplication) (domain.TeamApplication, error)
	Applications(status string) ([]domain.TeamApplication, error)
	Application(id int64) (domain.TeamApplication, error)
	UpdateApplicationStatus(id int64, status, adminNotes string) (domain.TeamApplication, error)
	DeleteApplication(id int64) error
	DeleteAllApplications() (int64, error)
}

type TeamStorage interface {
	TeamMembers(activeOnly bool) ([]domain.TeamMember, error)
	TeamMember(id int64) (domain.TeamMember, error)
	SaveTeamMember(m domain.TeamMember) (int64, error)
	UpdateTeamMember(m domain.TeamMember) error
	DeleteTeamMember(id int64) error

	SaveApplication(a domain.TeamApplication) (int64, error)
	Applications(status string) ([]domain.TeamApplication, error)
	Application(id int64) (domain.TeamApplication, error)
	UpdateApplicationStatus(id int64, status, adminNotes string) error
	DeleteApplication(id int64) error
	DeleteAllApplications() (int64, error)
}

type Team struct {
	storage TeamStorage
}

func NewTeam(storage TeamStorage) *Team {
	return &Team{storage: storage}
}

func (s *Team) Members(activeOnly bool) ([]domain.TeamMember, error) {
	return s.storage.TeamMembers(activeOnly)
}

func (s *Team) Member(id int64) (domain.TeamMember, error) {
	return s.storage.TeamMember(id)
}

func (s *Team) CreateMember(m domain.TeamMember) (domain.TeamMember, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Role = strings.TrimSpace(m.Role)
	if m.Name == "" || m.Role == "" {
		return domain.TeamMember{}, errors.BadRequest("Name and role are required")
	}
	id, err := s.storage.SaveTeamMember(m)
	if err != nil {
		return domain.TeamMember{}, err
	}
	return s.storage.TeamMember(id)
}

func (s *Team) UpdateMember(m domain.TeamMember) (domain.TeamMember, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Role = strings.TrimSpace(m.Role)
	if m.Name == "" || m.Role == "" {
		return domain.TeamMember{}, errors.BadRequest("Name and role are required")
	}
	if err := s.storage.UpdateTeamMember(m); err != nil {
		return domain.TeamMember{}, err
	}
	return s.storage.TeamMember(m.Id)
}

func (s *Team) DeleteMember(id int64) error {
	return s.storage.DeleteTeamMember(id)
}

func (s *Team) Apply(a domain.TeamApplication) (domain.TeamApplication, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Status = domain.ApplicationNew

	id, err := s.storage.SaveApplication(a)
	if err != nil {
		return domain.TeamApplication{}, err
	}
	return s.storage.Application(id)
}

func (s *Team) Applications(status string) ([]domain.TeamApplication, error) {
	if status != "" && !isValidApplicationStatus(status) {
		return nil, errors.BadRequest("Invalid application status")
	}
	return s.storage.Applications(status)
}

func (s *Team) Application(id int64) (domain.TeamApplication, error) {
	return s.storage.Application(id)
}

func (s *Team) UpdateApplicationStatus(id int64, status, adminNotes string) (domain.TeamApplication, error) {
	if !isValidApplicationStatus(status) {
		return domain.TeamApplication{}, errors.BadRequest("Invalid application status")
	}
	if err := s.storage.UpdateApplicationStatus(id, status, adminNotes); err != nil {
		return domain.TeamApplication{}, err
	}
	return s.storage.Application(id)
}

func (s *Team) DeleteApplication(id int64) error {
	return s.storage.DeleteApplication(id)
}

func (s *Team) DeleteAllApplications() (int64, error) {
	return s.storage.DeleteAllApplications()
}

func isValidApplicationStatus(status string) bool {
	switch status {
	case domain.ApplicationNew, domain.ApplicationReviewing, domain.ApplicationAccepted, domain.ApplicationRejected:
		return true
	}
	return false
}
