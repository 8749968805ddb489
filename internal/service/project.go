package service

import (
	"strings"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

type ProjectService interface {
	List(status string) ([]domain.Project, error)
	Featured() ([]domain.Project, error)
	Get(id int64) (domain.Project, error)
	Create(p domain.Project) (domain.Project, error)
	Update(p domain.Project) (domain.Project, error)
	Delete(id int64) error
}

type ProjectStorage interface {
	Projects(status string) ([]domain.Project, error)
	FeaturedProjects() ([]domain.Project, error)
	Project(id int64) (domain.Project, error)
	SaveProject(p domain.Project) (int64, error)
	UpdateProject(p domain.Project) error
	DeleteProject(id int64) error
}

type ProjectSvc struct {
	storage ProjectStorage
}

func NewProject(storage ProjectStorage) *ProjectSvc {
	return &ProjectSvc{storage: storage}
}

func (s *ProjectSvc) List(status string) ([]domain.Project, error) {
	if status != "" && !domain.IsValidProjectStatus(status) {
		return nil, errors.BadRequest("Invalid project status")
	}
	return s.storage.Projects(status)
}

// Featured returns the highlighted projects for the landing page.
func (s *ProjectSvc) Featured() ([]domain.Project, error) {
	return s.storage.FeaturedProjects()
}

func (s *ProjectSvc) Get(id int64) (domain.Project, error) {
	return s.storage.Project(id)
}

func (s *ProjectSvc) Create(p domain.Project) (domain.Project, error) {
	if err := prepareProject(&p); err != nil {
		return domain.Project{}, err
	}
	id, err := s.storage.SaveProject(p)
	if err != nil {
		return domain.Project{}, err
	}
	return s.storage.Project(id)
}

func (s *ProjectSvc) Update(p domain.Project) (domain.Project, error) {
	if err := prepareProject(&p); err != nil {
		return domain.Project{}, err
	}
	if err := s.storage.UpdateProject(p); err != nil {
		return domain.Project{}, err
	}
	return s.storage.Project(p.Id)
}

func (s *ProjectSvc) Delete(id int64) error {
	return s.storage.DeleteProject(id)
}

func prepareProject(p *domain.Project) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return errors.BadRequest("Title is required")
	}
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	if !domain.IsValidProjectStatus(p.Status) {
		return errors.BadRequest("Invalid project status")
	}
	p.Tags = NormalizeTags(p.Tags)
	return nil
}
