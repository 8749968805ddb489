package handler

import (
	"context"
	"time"

	"github.com/Arittroskr32/CyberPiT-backend/internal/config"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/mailer"
	"github.com/Arittroskr32/CyberPiT-backend/internal/service"
	"github.com/Arittroskr32/CyberPiT-backend/internal/storage/pg"
)

// Mocks implement just the service interfaces a test touches; handlers under
// test get nil for everything else.

func testConfig() *config.Config {
	return &config.Config{
		Public: config.Public{
			JwtTTL:            7 * 24 * time.Hour,
			BlogsPerPage:      9,
			AdminBlogsPerPage: 20,
		},
	}
}

type MockAuthService struct {
	LoginFunc func(email, password string) (string, domain.Admin, error)
	AdminFunc func(id int64) (domain.Admin, error)
}

func (m *MockAuthService) Login(email, password string) (string, domain.Admin, error) {
	return m.LoginFunc(email, password)
}

func (m *MockAuthService) Admin(id int64) (domain.Admin, error) {
	return m.AdminFunc(id)
}

type MockContactService struct {
	SubmitFunc       func(c domain.Contact) (domain.Contact, error)
	ListFunc         func() ([]domain.Contact, error)
	UpdateStatusFunc func(id int64, status, adminResponse string) (domain.Contact, error)
	DeleteFunc       func(id int64) error
	DeleteAllFunc    func() (int64, error)
}

func (m *MockContactService) Submit(c domain.Contact) (domain.Contact, error) {
	return m.SubmitFunc(c)
}

func (m *MockContactService) List() ([]domain.Contact, error) {
	return m.ListFunc()
}

func (m *MockContactService) UpdateStatus(id int64, status, adminResponse string) (domain.Contact, error) {
	return m.UpdateStatusFunc(id, status, adminResponse)
}

func (m *MockContactService) Delete(id int64) error {
	return m.DeleteFunc(id)
}

func (m *MockContactService) DeleteAll() (int64, error) {
	return m.DeleteAllFunc()
}

type MockBlogService struct {
	ListFunc            func(filter pg.BlogFilter) ([]domain.Blog, domain.Pagination, error)
	FeaturedFunc        func() ([]domain.Blog, error)
	GetFunc             func(id int64) (domain.Blog, error)
	GetPublishedFunc    func(id int64) (domain.Blog, error)
	GetAndCountViewFunc func(id int64) (domain.Blog, error)
	LikeFunc            func(id int64) (int64, error)
	CreateFunc          func(b domain.Blog) (domain.Blog, error)
	UpdateFunc          func(b domain.Blog) (domain.Blog, error)
	DeleteFunc          func(id int64) error
	UploadImageFunc     func(upload *domain.PendingUpload) (string, error)
	RenderContentFunc   func(markdown string) (string, error)
}

func (m *MockBlogService) List(filter pg.BlogFilter) ([]domain.Blog, domain.Pagination, error) {
	return m.ListFunc(filter)
}

func (m *MockBlogService) Featured() ([]domain.Blog, error) {
	return m.FeaturedFunc()
}

func (m *MockBlogService) Get(id int64) (domain.Blog, error) {
	return m.GetFunc(id)
}

func (m *MockBlogService) GetPublished(id int64) (domain.Blog, error) {
	return m.GetPublishedFunc(id)
}

func (m *MockBlogService) GetAndCountView(id int64) (domain.Blog, error) {
	return m.GetAndCountViewFunc(id)
}

func (m *MockBlogService) Like(id int64) (int64, error) {
	return m.LikeFunc(id)
}

func (m *MockBlogService) Create(b domain.Blog) (domain.Blog, error) {
	return m.CreateFunc(b)
}

func (m *MockBlogService) Update(b domain.Blog) (domain.Blog, error) {
	return m.UpdateFunc(b)
}

func (m *MockBlogService) Delete(id int64) error {
	return m.DeleteFunc(id)
}

func (m *MockBlogService) UploadImage(upload *domain.PendingUpload) (string, error) {
	return m.UploadImageFunc(upload)
}

func (m *MockBlogService) RenderContent(markdown string) (string, error) {
	return m.RenderContentFunc(markdown)
}

func (m *MockBlogService) Categories() []string {
	return domain.BlogCategories
}

type MockVideoService struct {
	UploadFunc    func(category, name string, upload *domain.PendingUpload) (domain.Video, error)
	ListFunc      func() ([]domain.Video, error)
	CurrentFunc   func() (map[string]string, error)
	SetActiveFunc func(id int64, active bool) (domain.Video, error)
	DeleteFunc    func(id int64) error
}

func (m *MockVideoService) Upload(category, name string, upload *domain.PendingUpload) (domain.Video, error) {
	return m.UploadFunc(category, name, upload)
}

func (m *MockVideoService) List() ([]domain.Video, error) {
	return m.ListFunc()
}

func (m *MockVideoService) Current() (map[string]string, error) {
	return m.CurrentFunc()
}

func (m *MockVideoService) SetActive(id int64, active bool) (domain.Video, error) {
	return m.SetActiveFunc(id, active)
}

func (m *MockVideoService) Delete(id int64) error {
	return m.DeleteFunc(id)
}

type MockSubscriptionService struct {
	SubscribeFunc      func(email string) (domain.Subscription, service.SubscribeStatus, error)
	ListFunc           func() ([]domain.Subscription, error)
	UnsubscribeFunc    func(token string) error
	SetActiveFunc      func(id int64, active bool) (domain.Subscription, error)
	DeleteFunc         func(id int64) error
	DeleteBatchFunc    func(ids []int64) (int64, error)
	DeleteAllFunc      func() (int64, error)
	SendNewsletterFunc func(ctx context.Context, subject, body string) (mailer.Outcome, error)
}

func (m *MockSubscriptionService) Subscribe(email string) (domain.Subscription, service.SubscribeStatus, error) {
	return m.SubscribeFunc(email)
}

func (m *MockSubscriptionService) SetActive(id int64, active bool) (domain.Subscription, error) {
	return m.SetActiveFunc(id, active)
}

func (m *MockSubscriptionService) DeleteBatch(ids []int64) (int64, error) {
	return m.DeleteBatchFunc(ids)
}

func (m *MockSubscriptionService) List() ([]domain.Subscription, error) {
	return m.ListFunc()
}

func (m *MockSubscriptionService) Unsubscribe(token string) error {
	return m.UnsubscribeFunc(token)
}

func (m *MockSubscriptionService) Delete(id int64) error {
	return m.DeleteFunc(id)
}

func (m *MockSubscriptionService) DeleteAll() (int64, error) {
	return m.DeleteAllFunc()
}

func (m *MockSubscriptionService) SendNewsletter(ctx context.Context, subject, body string) (mailer.Outcome, error) {
	return m.SendNewsletterFunc(ctx, subject, body)
}

type MockReportService struct {
	SubmitFunc       func(r domain.Report) (domain.Report, error)
	ListFunc         func(status string) ([]domain.Report, error)
	FeaturedFunc     func() ([]domain.Report, error)
	GetFunc          func(id int64) (domain.Report, error)
	UpdateStatusFunc func(id int64, status, adminNotes string) (domain.Report, error)
	DeleteFunc       func(id int64) error
	DeleteAllFunc    func() (int64, error)
}

func (m *MockReportService) Submit(r domain.Report) (domain.Report, error) {
	return m.SubmitFunc(r)
}

func (m *MockReportService) List(status string) ([]domain.Report, error) {
	return m.ListFunc(status)
}

func (m *MockReportService) Featured() ([]domain.Report, error) {
	return m.FeaturedFunc()
}

func (m *MockReportService) Get(id int64) (domain.Report, error) {
	return m.GetFunc(id)
}

func (m *MockReportService) UpdateStatus(id int64, status, adminNotes string) (domain.Report, error) {
	return m.UpdateStatusFunc(id, status, adminNotes)
}

func (m *MockReportService) Delete(id int64) error {
	return m.DeleteFunc(id)
}

func (m *MockReportService) DeleteAll() (int64, error) {
	return m.DeleteAllFunc()
}

type MockProjectService struct {
	ListFunc     func(status string) ([]domain.Project, error)
	FeaturedFunc func() ([]domain.Project, error)
	GetFunc      func(id int64) (domain.Project, error)
	CreateFunc   func(p domain.Project) (domain.Project, error)
	UpdateFunc   func(p domain.Project) (domain.Project, error)
	DeleteFunc   func(id int64) error
}

func (m *MockProjectService) List(status string) ([]domain.Project, error) {
	return m.ListFunc(status)
}

func (m *MockProjectService) Featured() ([]domain.Project, error) {
	return m.FeaturedFunc()
}

func (m *MockProjectService) Get(id int64) (domain.Project, error) {
	return m.GetFunc(id)
}

func (m *MockProjectService) Create(p domain.Project) (domain.Project, error) {
	return m.CreateFunc(p)
}

func (m *MockProjectService) Update(p domain.Project) (domain.Project, error) {
	return m.UpdateFunc(p)
}

func (m *MockProjectService) Delete(id int64) error {
	return m.DeleteFunc(id)
}

type MockFeedbackService struct {
	SubmitFunc      func(f domain.Feedback) (domain.Feedback, error)
	ListFunc        func() ([]domain.Feedback, error)
	PublicFunc      func() ([]domain.Feedback, error)
	SetFeaturedFunc func(id int64, featured bool) (domain.Feedback, error)
	DeleteFunc      func(id int64) error
}

func (m *MockFeedbackService) Submit(f domain.Feedback) (domain.Feedback, error) {
	return m.SubmitFunc(f)
}

func (m *MockFeedbackService) List() ([]domain.Feedback, error) {
	return m.ListFunc()
}

func (m *MockFeedbackService) Public() ([]domain.Feedback, error) {
	return m.PublicFunc()
}

func (m *MockFeedbackService) SetFeatured(id int64, featured bool) (domain.Feedback, error) {
	return m.SetFeaturedFunc(id, featured)
}

func (m *MockFeedbackService) Delete(id int64) error {
	return m.DeleteFunc(id)
}

type MockTeamService struct {
	MembersFunc                 func(activeOnly bool) ([]domain.TeamMember, error)
	MemberFunc                  func(id int64) (domain.TeamMember, error)
	CreateMemberFunc            func(m domain.TeamMember) (domain.TeamMember, error)
	UpdateMemberFunc            func(m domain.TeamMember) (domain.TeamMember, error)
	DeleteMemberFunc            func(id int64) error
	ApplyFunc                   func(a domain.TeamApplication) (domain.TeamApplication, error)
	ApplicationsFunc            func(status string) ([]domain.TeamApplication, error)
	ApplicationFunc             func(id int64) (domain.TeamApplication, error)
	UpdateApplicationStatusFunc func(id int64, status, adminNotes string) (domain.TeamApplication, error)
	DeleteApplicationFunc       func(id int64) error
	DeleteAllApplicationsFunc   func() (int64, error)
}

func (m *MockTeamService) Members(activeOnly bool) ([]domain.TeamMember, error) {
	return m.MembersFunc(activeOnly)
}

func (m *MockTeamService) Member(id int64) (domain.TeamMember, error) {
	return m.MemberFunc(id)
}

func (m *MockTeamService) CreateMember(member domain.TeamMember) (domain.TeamMember, error) {
	return m.CreateMemberFunc(member)
}

func (m *MockTeamService) UpdateMember(member domain.TeamMember) (domain.TeamMember, error) {
	return m.UpdateMemberFunc(member)
}

func (m *MockTeamService) DeleteMember(id int64) error {
	return m.DeleteMemberFunc(id)
}

func (m *MockTeamService) Apply(a domain.TeamApplication) (domain.TeamApplication, error) {
	return m.ApplyFunc(a)
}

func (m *MockTeamService) Applications(status string) ([]domain.TeamApplication, error) {
	return m.ApplicationsFunc(status)
}

func (m *MockTeamService) Application(id int64) (domain.TeamApplication, error) {
	return m.ApplicationFunc(id)
}

func (m *MockTeamService) UpdateApplicationStatus(id int64, status, adminNotes string) (domain.TeamApplication, error) {
	return m.UpdateApplicationStatusFunc(id, status, adminNotes)
}

func (m *MockTeamService) DeleteApplication(id int64) error {
	return m.DeleteApplicationFunc(id)
}

func (m *MockTeamService) DeleteAllApplications() (int64, error) {
	return m.DeleteAllApplicationsFunc()
}
