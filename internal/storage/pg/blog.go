package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

const blogColumns = "id, title, content, author, category, tags, image_url, blog_url, is_published, is_featured, read_time, views, likes, created, updated"

// BlogFilter narrows blog listings. Zero values mean "no constraint".
type BlogFilter struct {
	Category      string
	Search        string
	OnlyPublished bool
	OnlyFeatured  bool
	Page          int
	PerPage       int
}

func scanBlogRow(scan func(dest ...any) error) (domain.Blog, error) {
	var b domain.Blog
	err := scan(&b.Id, &b.Title, &b.Content, &b.Author, &b.Category, pq.Array(&b.Tags),
		&b.ImageURL, &b.BlogURL, &b.IsPublished, &b.IsFeatured, &b.ReadTime,
		&b.Views, &b.Likes, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func blogWhereClause(filter BlogFilter) (string, []any) {
	where := "WHERE TRUE"
	var args []any
	if filter.OnlyPublished {
		where += " AND is_published"
	}
	if filter.OnlyFeatured {
		where += " AND is_featured"
	}
	if filter.Category != "" && filter.Category != "All" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (title ILIKE $%d OR content ILIKE $%d OR author ILIKE $%d"+
			" OR EXISTS (SELECT 1 FROM unnest(tags) tag WHERE tag ILIKE $%d))", n, n, n, n)
	}
	return where, args
}

// Blogs returns one page of posts matching the filter, newest first,
// plus the total number of matching rows.
func (s *Storage) Blogs(filter BlogFilter) ([]domain.Blog, int64, error) {
	where, args := blogWhereClause(filter)

	var total int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM blogs "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = s.cfg.Public.BlogsPerPage
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, perPage, (page-1)*perPage)
	query := fmt.Sprintf("SELECT %s FROM blogs %s ORDER BY created DESC LIMIT $%d OFFSET $%d",
		blogColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	var blogs []domain.Blog
	for rows.Next() {
		b, err := scanBlogRow(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (s *Storage) Blog(id int64) (domain.Blog, error) {
	row := s.db.QueryRow("SELECT "+blogColumns+" FROM blogs WHERE id = $1", id)
	b, err := scanBlogRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Blog{}, internal_errors.NotFound("Blog not found")
		}
		return domain.Blog{}, fmt.Errorf("failed to query blog: %w", err)
	}
	return b, nil
}

// PublishedBlog returns a post only if it is published. Drafts come back
// as NotFound so the public surface never leaks them.
func (s *Storage) PublishedBlog(id int64) (domain.Blog, error) {
	row := s.db.QueryRow("SELECT "+blogColumns+" FROM blogs WHERE id = $1 AND is_published", id)
	b, err := scanBlogRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Blog{}, internal_errors.NotFound("Blog not found")
		}
		return domain.Blog{}, fmt.Errorf("failed to query published blog: %w", err)
	}
	return b, nil
}

func (s *Storage) SaveBlog(b domain.Blog) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
        INSERT INTO blogs(title, content, author, category, tags, image_url, blog_url, is_published, is_featured, read_time)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id`,
		b.Title, b.Content, b.Author, b.Category, pq.Array(b.Tags),
		b.ImageURL, b.BlogURL, b.IsPublished, b.IsFeatured, b.ReadTime).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert blog: %w", err)
	}
	return id, nil
}

func (s *Storage) UpdateBlog(b domain.Blog) error {
	result, err := s.db.Exec(`
        UPDATE blogs
        SET title = $1, content = $2, author = $3, category = $4, tags = $5,
            image_url = $6, blog_url = $7, is_published = $8, is_featured = $9,
            read_time = $10, updated = NOW()
        WHERE id = $11`,
		b.Title, b.Content, b.Author, b.Category, pq.Array(b.Tags),
		b.ImageURL, b.BlogURL, b.IsPublished, b.IsFeatured, b.ReadTime, b.Id)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for blog update: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Blog not found")
	}
	return nil
}

func (s *Storage) DeleteBlog(id int64) error {
	result, err := s.db.Exec("DELETE FROM blogs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for blog deletion: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Blog not found")
	}
	return nil
}

// IncrementBlogViews bumps the view counter and returns the new value.
func (s *Storage) IncrementBlogViews(id int64) (int64, error) {
	var views int64
	err := s.db.QueryRow("UPDATE blogs SET views = views + 1 WHERE id = $1 AND is_published RETURNING views", id).Scan(&views)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, internal_errors.NotFound("Blog not found")
		}
		return 0, fmt.Errorf("failed to increment blog views: %w", err)
	}
	return views, nil
}

// IncrementBlogLikes bumps the like counter and returns the new value.
// Likes only arrive through the public surface, so drafts are off limits.
func (s *Storage) IncrementBlogLikes(id int64) (int64, error) {
	var likes int64
	err := s.db.QueryRow("UPDATE blogs SET likes = likes + 1 WHERE id = $1 AND is_published RETURNING likes", id).Scan(&likes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, internal_errors.NotFound("Blog not found")
		}
		return 0, fmt.Errorf("failed to increment blog likes: %w", err)
	}
	return likes, nil
}
