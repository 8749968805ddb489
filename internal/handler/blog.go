package handler

import (
	"fmt"
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/storage/pg"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
	"github.com/Arittroskr32/CyberPiT-backend/internal/validation"
)

// GetBlogs serves the public blog listing: published posts only, paginated,
// with optional category and search narrowing.
func (h *Handler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	filter := pg.BlogFilter{
		Category:      r.URL.Query().Get("category"),
		Search:        r.URL.Query().Get("search"),
		OnlyPublished: true,
		OnlyFeatured:  r.URL.Query().Get("featured") == "true",
		Page:          page,
	}
	blogs, pagination, err := h.blog.List(filter)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if blogs == nil {
		blogs = []domain.Blog{}
	}
	writeJSON(w, api.BlogListResponse{Success: true, Blogs: blogs, Pagination: pagination})
}

// GetFeaturedBlogs serves the landing page strip of highlighted posts.
func (h *Handler) GetFeaturedBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blog.Featured()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if blogs == nil {
		blogs = []domain.Blog{}
	}
	writeJSON(w, api.BlogFeaturedResponse{Success: true, Blogs: blogs})
}

// GetBlog serves one public post and registers a view.
func (h *Handler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	blog, err := h.blog.GetAndCountView(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.BlogResponse{Success: true, Blog: blog})
}

// RenderBlog returns the post's markdown rendered as sanitized HTML.
func (h *Handler) RenderBlog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	blog, err := h.blog.GetPublished(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	html, err := h.blog.RenderContent(blog.Content)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.BlogRenderResponse{Success: true, HTML: html})
}

func (h *Handler) LikeBlog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	likes, err := h.blog.Like(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.BlogCounterResponse{Success: true, Count: likes})
}

func (h *Handler) GetBlogCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.BlogCategoriesResponse{Success: true, Categories: h.blog.Categories()})
}

// GetAdminBlogs lists all posts for the admin panel, drafts included.
func (h *Handler) GetAdminBlogs(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	filter := pg.BlogFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Page:     page,
		PerPage:  h.cfg.Public.AdminBlogsPerPage,
	}
	blogs, pagination, err := h.blog.List(filter)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if blogs == nil {
		blogs = []domain.Blog{}
	}
	writeJSON(w, api.BlogListResponse{Success: true, Blogs: blogs, Pagination: pagination})
}

// GetAdminBlog serves one post with full content, drafts included, for
// the edit form.
func (h *Handler) GetAdminBlog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	blog, err := h.blog.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.BlogResponse{Success: true, Blog: blog})
}

// UploadBlogImage accepts a multipart form with an "image" file field and
// stores the blob for embedding in posts.
func (h *Handler) UploadBlogImage(w http.ResponseWriter, r *http.Request) {
	maxRequestSize := validation.CalculateMaxRequestSize(h.cfg.Public.MaxImageUploadSize, 1<<20)
	if err := validation.ValidateAndParseMultipart(r, w, maxRequestSize); err != nil {
		maxSizeMB := validation.FormatSizeMB(h.cfg.Public.MaxImageUploadSize)
		utils.WriteError(w, fmt.Sprintf("Image exceeds the limit of %.0f MB", maxSizeMB), http.StatusRequestEntityTooLarge)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) != 1 {
		utils.WriteError(w, "Exactly one image file is required", http.StatusBadRequest)
		return
	}

	upload, err := validation.ValidateUpload(files[0], h.cfg.Public.AllowedImageMimeTypes)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer func() {
		if closer, ok := upload.Data.(interface{ Close() error }); ok {
			closer.Close()
		}
	}()

	imageURL, err := h.blog.UploadImage(upload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.ImageUploadResponse{Success: true, Message: "Image uploaded", ImageURL: imageURL})
}

func (h *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var body api.BlogRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	blog, err := h.blog.Create(blogFromRequest(body, 0))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.BlogResponse{Success: true, Blog: blog})
}

func (h *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.BlogRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	blog, err := h.blog.Update(blogFromRequest(body, id))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.BlogResponse{Success: true, Blog: blog})
}

func (h *Handler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.blog.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "Blog deleted"})
}

func blogFromRequest(body api.BlogRequest, id int64) domain.Blog {
	published := true
	if body.IsPublished != nil {
		published = *body.IsPublished
	}
	return domain.Blog{
		Id:          id,
		Title:       body.Title,
		Content:     body.Content,
		Author:      body.Author,
		Category:    body.Category,
		Tags:        body.Tags,
		ImageURL:    body.ImageURL,
		BlogURL:     body.BlogURL,
		IsPublished: published,
		IsFeatured:  body.IsFeatured,
	}
}
