package service

import (
	"strings"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

type ReportService interface {
	Submit(r domain.Report) (domain.Report, error)
	List(status string) ([]domain.Report, error)
	Featured() ([]domain.Report, error)
	Get(id int64) (domain.Report, error)
	UpdateStatus(id int64, status, adminNotes string) (domain.Report, error)
	Delete(id int64) error
	DeleteAll() (int64, error)
}

type ReportStorage interface {
	SaveReport(r domain.Report) (int64, error)
	Reports(status string) ([]domain.Report, error)
	FeaturedReports() ([]domain.Report, error)
	Report(id int64) (domain.Report, error)
	UpdateReportStatus(id int64, status, adminNotes string) error
	DeleteReport(id int64) error
	DeleteAllReports() (int64, error)
}

type ReportSvc struct {
	storage ReportStorage
}

func NewReport(storage ReportStorage) *ReportSvc {
	return &ReportSvc{storage: storage}
}

func (s *ReportSvc) Submit(r domain.Report) (domain.Report, error) {
	r.Title = strings.TrimSpace(r.Title)
	r.ReporterName = strings.TrimSpace(r.ReporterName)
	r.ReporterEmail = strings.ToLower(strings.TrimSpace(r.ReporterEmail))
	r.Status = domain.ReportNew

	id, err := s.storage.SaveReport(r)
	if err != nil {
		return domain.Report{}, err
	}
	return s.storage.Report(id)
}

func (s *ReportSvc) List(status string) ([]domain.Report, error) {
	if status != "" && !isValidReportStatus(status) {
		return nil, errors.BadRequest("Invalid report status")
	}
	return s.storage.Reports(status)
}

func (s *ReportSvc) Featured() ([]domain.Report, error) {
	return s.storage.FeaturedReports()
}

func (s *ReportSvc) Get(id int64) (domain.Report, error) {
	return s.storage.Report(id)
}

func (s *ReportSvc) UpdateStatus(id int64, status, adminNotes string) (domain.Report, error) {
	if !isValidReportStatus(status) {
		return domain.Report{}, errors.BadRequest("Invalid report status")
	}
	if err := s.storage.UpdateReportStatus(id, status, adminNotes); err != nil {
		return domain.Report{}, err
	}
	return s.storage.Report(id)
}

func (s *ReportSvc) Delete(id int64) error {
	return s.storage.DeleteReport(id)
}

func (s *ReportSvc) DeleteAll() (int64, error) {
	return s.storage.DeleteAllReports()
}

func isValidReportStatus(status string) bool {
	switch status {
	case domain.ReportNew, domain.ReportReviewing, domain.ReportApproved, domain.ReportFeatured, domain.ReportRejected:
		return true
	}
	return false
}
