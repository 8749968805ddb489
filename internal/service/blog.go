package service

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/errors"
	"github.com/Arittroskr32/CyberPiT-backend/internal/storage/pg"
)

const readTimeWordsPerMinute = 200

// previewRunes is how much post content a listing carries. The full text
// only ships on the single-post endpoints.
const previewRunes = 150

const featuredBlogLimit = 3

const imageSubDir = "images"

type BlogService interface {
	List(filter pg.BlogFilter) ([]domain.Blog, domain.Pagination, error)
	Featured() ([]domain.Blog, error)
	Get(id int64) (domain.Blog, error)
	GetPublished(id int64) (domain.Blog, error)
	GetAndCountView(id int64) (domain.Blog, error)
	Like(id int64) (int64, error)
	Create(b domain.Blog) (domain.Blog, error)
	Update(b domain.Blog) (domain.Blog, error)
	Delete(id int64) error
	UploadImage(upload *domain.PendingUpload) (string, error)
	RenderContent(markdown string) (string, error)
	Categories() []string
}

type BlogStorage interface {
	Blogs(filter pg.BlogFilter) ([]domain.Blog, int64, error)
	Blog(id int64) (domain.Blog, error)
	PublishedBlog(id int64) (domain.Blog, error)
	SaveBlog(b domain.Blog) (int64, error)
	UpdateBlog(b domain.Blog) error
	DeleteBlog(id int64) error
	IncrementBlogViews(id int64) (int64, error)
	IncrementBlogLikes(id int64) (int64, error)
}

type Blog struct {
	storage   BlogStorage
	media     MediaStorage
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
	perPage   int
}

func NewBlog(storage BlogStorage, media MediaStorage, perPage int) *Blog {
	return &Blog{
		storage:   storage,
		media:     media,
		md:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitizer: bluemonday.UGCPolicy(),
		perPage:   perPage,
	}
}

func (s *Blog) List(filter pg.BlogFilter) ([]domain.Blog, domain.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = s.perPage
	}

	blogs, total, err := s.storage.Blogs(filter)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	for i := range blogs {
		blogs[i].Content = previewContent(blogs[i].Content)
	}

	pages := int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage))
	if pages == 0 {
		pages = 1
	}
	pagination := domain.Pagination{
		Current: filter.Page,
		Pages:   pages,
		Total:   total,
		HasNext: filter.Page < pages,
		HasPrev: filter.Page > 1,
	}
	return blogs, pagination, nil
}

// Featured returns the latest highlighted published posts with preview
// content, capped for the landing page strip.
func (s *Blog) Featured() ([]domain.Blog, error) {
	blogs, _, err := s.storage.Blogs(pg.BlogFilter{
		OnlyPublished: true,
		OnlyFeatured:  true,
		Page:          1,
		PerPage:       featuredBlogLimit,
	})
	if err != nil {
		return nil, err
	}
	for i := range blogs {
		blogs[i].Content = previewContent(blogs[i].Content)
	}
	return blogs, nil
}

// Get returns a post regardless of publication state. Admin use only.
func (s *Blog) Get(id int64) (domain.Blog, error) {
	return s.storage.Blog(id)
}

// GetPublished returns a post for the public surface. Drafts stay hidden.
func (s *Blog) GetPublished(id int64) (domain.Blog, error) {
	return s.storage.PublishedBlog(id)
}

// GetAndCountView fetches a published post and registers one view. The
// returned copy carries the incremented counter.
func (s *Blog) GetAndCountView(id int64) (domain.Blog, error) {
	blog, err := s.storage.PublishedBlog(id)
	if err != nil {
		return domain.Blog{}, err
	}
	views, err := s.storage.IncrementBlogViews(id)
	if err != nil {
		return domain.Blog{}, err
	}
	blog.Views = views
	return blog, nil
}

func (s *Blog) Like(id int64) (int64, error) {
	return s.storage.IncrementBlogLikes(id)
}

func (s *Blog) Create(b domain.Blog) (domain.Blog, error) {
	if err := s.prepare(&b); err != nil {
		return domain.Blog{}, err
	}
	id, err := s.storage.SaveBlog(b)
	if err != nil {
		return domain.Blog{}, err
	}
	return s.storage.Blog(id)
}

func (s *Blog) Update(b domain.Blog) (domain.Blog, error) {
	if err := s.prepare(&b); err != nil {
		return domain.Blog{}, err
	}
	if err := s.storage.UpdateBlog(b); err != nil {
		return domain.Blog{}, err
	}
	return s.storage.Blog(b.Id)
}

func (s *Blog) Delete(id int64) error {
	return s.storage.DeleteBlog(id)
}

// UploadImage stores a post illustration under a random filename and
// returns the path the frontend can embed.
func (s *Blog) UploadImage(upload *domain.PendingUpload) (string, error) {
	filename := uuid.NewString() + strings.ToLower(filepath.Ext(upload.Filename))
	if _, err := s.media.Save(upload.Data, imageSubDir, filename); err != nil {
		return "", err
	}
	return "/" + path.Join(imageSubDir, filename), nil
}

// RenderContent converts stored markdown to sanitized HTML for display.
func (s *Blog) RenderContent(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return s.sanitizer.Sanitize(buf.String()), nil
}

func (s *Blog) Categories() []string {
	return domain.BlogCategories
}

// prepare normalizes a post before it hits storage: category check, tag
// cleanup and the derived read time.
func (s *Blog) prepare(b *domain.Blog) error {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	if b.Title == "" {
		return errors.BadRequest("Title is required")
	}
	if strings.TrimSpace(b.Content) == "" {
		return errors.BadRequest("Content is required")
	}
	if !domain.IsValidBlogCategory(b.Category) {
		return errors.BadRequest("Invalid blog category")
	}
	b.Tags = NormalizeTags(b.Tags)
	b.ReadTime = EstimateReadTime(b.Content)
	return nil
}

// previewContent truncates listing content so index pages stay light.
// Counted in runes so a cut never lands mid-character.
func previewContent(content string) string {
	runes := []rune(content)
	if len(runes) <= previewRunes {
		return content
	}
	return string(runes[:previewRunes]) + "..."
}

// NormalizeTags trims, lowercases and dedupes, preserving first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// EstimateReadTime derives reading minutes from word count, minimum 1.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + readTimeWordsPerMinute - 1) / readTimeWordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
