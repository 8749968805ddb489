package setup

import (
	"github.com/Arittroskr32/CyberPiT-backend/internal/config"
	"github.com/Arittroskr32/CyberPiT-backend/internal/handler"
	"github.com/Arittroskr32/CyberPiT-backend/internal/jwt"
	"github.com/Arittroskr32/CyberPiT-backend/internal/mailer"
	"github.com/Arittroskr32/CyberPiT-backend/internal/middleware"
	"github.com/Arittroskr32/CyberPiT-backend/internal/service"
	"github.com/Arittroskr32/CyberPiT-backend/internal/storage/fs"
	"github.com/Arittroskr32/CyberPiT-backend/internal/storage/pg"
)

// Dependencies holds every initialized component of the application.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
	MediaRoot      string
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	media, err := fs.New(cfg.Public.MediaRoot)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	dispatcher := mailer.NewDispatcher(cfg.Private.Brevo, mailer.NewClient(cfg.Private.Brevo))

	auth := service.NewAuth(storage, jwtService)
	blog := service.NewBlog(storage, media, cfg.Public.BlogsPerPage)
	contact := service.NewContact(storage)
	report := service.NewReport(storage)
	feedback := service.NewFeedback(storage)
	project := service.NewProject(storage)
	team := service.NewTeam(storage)
	subscriptions := service.NewSubscriptions(storage, dispatcher)
	videos := service.NewVideos(storage, media)
	dashboard := service.NewDashboard(storage)

	h := handler.New(auth, blog, contact, report, feedback, project, team, subscriptions, videos, dashboard, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            jwtService,
		AuthMiddleware: middleware.NewAuth(jwtService, auth),
		MediaRoot:      media.Root(),
	}, nil
}
