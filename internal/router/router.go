package router

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Arittroskr32/CyberPiT-backend/internal/middleware/metrics"
	"github.com/Arittroskr32/CyberPiT-backend/internal/setup"
)

// New wires every route of the API.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Config.Public.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	adminOnly := deps.AuthMiddleware.AdminOnly()

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Stored hero videos and blog images are served straight from the media root.
	videoDir := http.Dir(filepath.Join(deps.MediaRoot, "video"))
	r.Handle("/video/*", http.StripPrefix("/video/", http.FileServer(videoDir)))
	imageDir := http.Dir(filepath.Join(deps.MediaRoot, "images"))
	r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(imageDir)))

	r.Route("/v1", func(r chi.Router) {
		// Public surface
		r.Get("/blogs", h.GetBlogs)
		r.Get("/blogs/categories", h.GetBlogCategories)
		r.Get("/blogs/featured", h.GetFeaturedBlogs)
		r.Get("/blogs/{id}", h.GetBlog)
		r.Get("/blogs/{id}/render", h.RenderBlog)
		r.Post("/blogs/{id}/like", h.LikeBlog)
		r.Get("/projects", h.GetProjects)
		r.Get("/projects/featured", h.GetFeaturedProjects)
		r.Get("/projects/{id}", h.GetProject)
		r.Get("/team", h.GetTeamMembers)
		r.Post("/team/apply", h.SubmitApplication)
		r.Get("/reports/featured", h.GetFeaturedReports)
		r.Post("/reports", h.SubmitReport)
		r.Get("/feedback", h.GetPublicFeedback)
		r.Post("/feedback", h.SubmitFeedback)
		r.Post("/contact", h.SubmitContact)
		r.Post("/subscribe", h.Subscribe)
		r.Get("/unsubscribe", h.Unsubscribe)
		r.Get("/videos/current", h.GetCurrentVideos)

		// Auth
		r.Post("/auth/login", h.Login)
		r.Post("/auth/logout", h.Logout)

		// Admin surface
		r.Route("/admin", func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/me", h.Me)
			r.Get("/dashboard", h.GetDashboardStats)

			r.Get("/blogs", h.GetAdminBlogs)
			r.Post("/blogs", h.CreateBlog)
			r.Post("/blogs/image", h.UploadBlogImage)
			r.Get("/blogs/{id}", h.GetAdminBlog)
			r.Put("/blogs/{id}", h.UpdateBlog)
			r.Delete("/blogs/{id}", h.DeleteBlog)

			r.Get("/contacts", h.GetContacts)
			r.Patch("/contacts/{id}", h.UpdateContactStatus)
			r.Delete("/contacts/{id}", h.DeleteContact)
			r.Delete("/contacts", h.ClearContacts)

			r.Get("/reports", h.GetReports)
			r.Get("/reports/{id}", h.GetReport)
			r.Patch("/reports/{id}", h.UpdateReportStatus)
			r.Delete("/reports/{id}", h.DeleteReport)
			r.Delete("/reports", h.ClearReports)

			r.Get("/feedback", h.GetFeedback)
			r.Patch("/feedback/{id}", h.SetFeedbackFeatured)
			r.Delete("/feedback/{id}", h.DeleteFeedback)

			r.Post("/projects", h.CreateProject)
			r.Put("/projects/{id}", h.UpdateProject)
			r.Delete("/projects/{id}", h.DeleteProject)

			r.Get("/team", h.GetAdminTeamMembers)
			r.Post("/team", h.CreateTeamMember)
			r.Put("/team/{id}", h.UpdateTeamMember)
			r.Delete("/team/{id}", h.DeleteTeamMember)

			r.Get("/applications", h.GetApplications)
			r.Get("/applications/{id}", h.GetApplication)
			r.Patch("/applications/{id}", h.UpdateApplicationStatus)
			r.Delete("/applications/{id}", h.DeleteApplication)
			r.Delete("/applications", h.ClearApplications)

			r.Get("/subscriptions", h.GetSubscriptions)
			r.Patch("/subscriptions/{id}", h.ToggleSubscription)
			r.Delete("/subscriptions/batch", h.DeleteSubscriptionsBatch)
			r.Delete("/subscriptions/{id}", h.DeleteSubscription)
			r.Delete("/subscriptions", h.DeleteAllSubscriptions)
			r.Post("/newsletter", h.SendNewsletter)

			r.Get("/videos", h.GetVideos)
			r.Post("/videos", h.UploadVideo)
			r.Patch("/videos/{id}", h.ToggleVideo)
			r.Delete("/videos/{id}", h.DeleteVideo)
		})
	})

	return r
}
