package service

import (
	"strings"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

type FeedbackService interface {
	Submit(f domain.Feedback) (domain.Feedback, error)
	List() ([]domain.Feedback, error)
	Public() ([]domain.Feedback, error)
	SetFeatured(id int64, featured bool) (domain.Feedback, error)
	Delete(id int64) error
}

type FeedbackStorage interface {
	SaveFeedback(f domain.Feedback) (int64, error)
	AllFeedback() ([]domain.Feedback, error)
	PublicFeedback() ([]domain.Feedback, error)
	Feedback(id int64) (domain.Feedback, error)
	SetFeedbackFeatured(id int64, featured bool) error
	DeleteFeedback(id int64) error
}

type FeedbackSvc struct {
	storage FeedbackStorage
}

func NewFeedback(storage FeedbackStorage) *FeedbackSvc {
	return &FeedbackSvc{storage: storage}
}

func (s *FeedbackSvc) Submit(f domain.Feedback) (domain.Feedback, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	if f.Rating < 1 || f.Rating > 5 {
		return domain.Feedback{}, errors.BadRequest("Rating must be between 1 and 5")
	}
	// New testimonials go through manual curation before showing up publicly.
	f.Featured = false

	id, err := s.storage.SaveFeedback(f)
	if err != nil {
		return domain.Feedback{}, err
	}
	return s.storage.Feedback(id)
}

func (s *FeedbackSvc) List() ([]domain.Feedback, error) {
	return s.storage.AllFeedback()
}

// Public returns every testimonial for the site, curated entries first.
func (s *FeedbackSvc) Public() ([]domain.Feedback, error) {
	return s.storage.PublicFeedback()
}

func (s *FeedbackSvc) SetFeatured(id int64, featured bool) (domain.Feedback, error) {
	if err := s.storage.SetFeedbackFeatured(id, featured); err != nil {
		return domain.Feedback{}, err
	}
	return s.storage.Feedback(id)
}

func (s *FeedbackSvc) Delete(id int64) error {
	return s.storage.DeleteFeedback(id)
}
