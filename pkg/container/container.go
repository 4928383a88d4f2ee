package container

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"orgsite-backend/internal/config"
	infraCache "orgsite-backend/internal/infrastructure/cache"
	"orgsite-backend/internal/infrastructure/database"
	"orgsite-backend/internal/infrastructure/email"
	"orgsite-backend/internal/infrastructure/queue"
	"orgsite-backend/internal/infrastructure/storage"
	"orgsite-backend/internal/migrate"
	"orgsite-backend/internal/shared/markdown"
	"orgsite-backend/pkg/cache"
	"orgsite-backend/pkg/jwt"

	"orgsite-backend/internal/domains/auth"
	authHandler "orgsite-backend/internal/domains/auth/handler"
	authRepo "orgsite-backend/internal/domains/auth/repository"
	authService "orgsite-backend/internal/domains/auth/service"

	"orgsite-backend/internal/domains/blog"
	blogHandler "orgsite-backend/internal/domains/blog/handler"
	blogRepo "orgsite-backend/internal/domains/blog/repository"
	blogService "orgsite-backend/internal/domains/blog/service"

	"orgsite-backend/internal/domains/contact"
	contactHandler "orgsite-backend/internal/domains/contact/handler"
	contactRepo "orgsite-backend/internal/domains/contact/repository"
	contactService "orgsite-backend/internal/domains/contact/service"

	"orgsite-backend/internal/domains/homesection"
	sectionHandler "orgsite-backend/internal/domains/homesection/handler"
	sectionRepo "orgsite-backend/internal/domains/homesection/repository"
	sectionService "orgsite-backend/internal/domains/homesection/service"

	"orgsite-backend/internal/domains/newsletter"
	newsletterHandler "orgsite-backend/internal/domains/newsletter/handler"
	newsletterRepo "orgsite-backend/internal/domains/newsletter/repository"
	newsletterService "orgsite-backend/internal/domains/newsletter/service"

	"orgsite-backend/internal/domains/offering"
	offeringHandler "orgsite-backend/internal/domains/offering/handler"
	offeringRepo "orgsite-backend/internal/domains/offering/repository"
	offeringService "orgsite-backend/internal/domains/offering/service"

	"orgsite-backend/internal/domains/page"
	pageHandler "orgsite-backend/internal/domains/page/handler"
	pageRepo "orgsite-backend/internal/domains/page/repository"
	pageService "orgsite-backend/internal/domains/page/service"

	"orgsite-backend/internal/domains/policy"
	policyHandler "orgsite-backend/internal/domains/policy/handler"
	policyRepo "orgsite-backend/internal/domains/policy/repository"
	policyService "orgsite-backend/internal/domains/policy/service"

	"orgsite-backend/internal/domains/project"
	projectHandler "orgsite-backend/internal/domains/project/handler"
	projectRepo "orgsite-backend/internal/domains/project/repository"
	projectService "orgsite-backend/internal/domains/project/service"

	"orgsite-backend/internal/domains/recruitment"
	recruitmentHandler "orgsite-backend/internal/domains/recruitment/handler"
	recruitmentRepo "orgsite-backend/internal/domains/recruitment/repository"
	recruitmentService "orgsite-backend/internal/domains/recruitment/service"

	"orgsite-backend/internal/domains/team"
	teamHandler "orgsite-backend/internal/domains/team/handler"
	teamRepo "orgsite-backend/internal/domains/team/repository"
	teamService "orgsite-backend/internal/domains/team/service"

	"orgsite-backend/internal/domains/upload"
	uploadHandler "orgsite-backend/internal/domains/upload/handler"
	uploadService "orgsite-backend/internal/domains/upload/service"
)

// Container is the root of the dependency graph. It owns the process-wide
// pgx pool, Redis and asynq clients; Cleanup releases them.
//
// Build order: config -> infrastructure -> repositories -> services -> handlers.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Pages      *infraCache.PageStore
	Storage    *storage.MinIOStorage
	Queue      queue.Enqueuer
	Email      email.EmailService
	JWTManager *jwt.Manager
	Metrics    *prometheus.Registry

	// Repositories
	AdminRepo       auth.Repository
	BlogRepo        blog.Repository
	ContactRepo     contact.Repository
	SectionRepo     homesection.Repository
	NewsletterRepo  newsletter.Repository
	OfferingRepo    offering.Repository
	PageRepo        page.Repository
	PolicyRepo      policy.Repository
	ProjectRepo     project.Repository
	RecruitmentRepo recruitment.Repository
	TeamRepo        team.Repository

	// Services
	AuthService        auth.Service
	BlogService        blog.Service
	ContactService     contact.Service
	SectionService     homesection.Service
	NewsletterService  newsletter.Service
	OfferingService    offering.Service
	PageService        page.Service
	PolicyService      policy.Service
	ProjectService     project.Service
	RecruitmentService recruitment.Service
	TeamService        team.Service
	UploadService      upload.Service

	// Handlers
	AuthHandler        *authHandler.AuthHandler
	BlogHandler        *blogHandler.BlogHandler
	ContactHandler     *contactHandler.ContactHandler
	SectionHandler     *sectionHandler.SectionHandler
	NewsletterHandler  *newsletterHandler.NewsletterHandler
	OfferingHandler    *offeringHandler.OfferingHandler
	PageHandler        *pageHandler.PageHandler
	PolicyHandler      *policyHandler.PolicyHandler
	ProjectHandler     *projectHandler.ProjectHandler
	RecruitmentHandler *recruitmentHandler.RecruitmentHandler
	TeamHandler        *teamHandler.TeamHandler
	UploadHandler      *uploadHandler.UploadHandler
}

// NewContainer loads configuration and builds every dependency.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return Build(cfg)
}

// Build wires the graph from an already loaded config.
func Build(cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.App.Environment).Msg("initializing container")

	c := &Container{Config: cfg}
	ok := false
	defer func() {
		if !ok {
			c.Cleanup()
		}
	}()

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	ok = true
	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.Config

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.App.AutoMigrate {
		if err := migrate.Up(ctx, dbConfig.ConnString()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info().Msg("migrations applied")
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Redis is optional: page cache and login limiter degrade gracefully.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
	}
	c.Cache = redisCache
	c.Pages = infraCache.NewPageStore(redisCache, cfg.Cache.PageTTL)

	st, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}
	c.Storage = st

	if cfg.Queue.Enabled {
		c.Queue = queue.NewAsynqEnqueuer(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	} else {
		c.Queue = queue.NoopEnqueuer{}
	}

	c.Email = email.NewSMTPEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.App.Name)
	c.JWTManager = jwt.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	c.Metrics = prometheus.NewRegistry()
	c.Metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		database.NewPoolCollector(db),
	)
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AdminRepo = authRepo.NewPostgresRepository(pool)
	c.BlogRepo = blogRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
	c.SectionRepo = sectionRepo.NewPostgresRepository(pool)
	c.NewsletterRepo = newsletterRepo.NewPostgresRepository(pool)
	c.OfferingRepo = offeringRepo.NewPostgresRepository(pool)
	c.PageRepo = pageRepo.NewPostgresRepository(pool)
	c.PolicyRepo = policyRepo.NewPostgresRepository(pool)
	c.ProjectRepo = projectRepo.NewPostgresRepository(pool)
	c.RecruitmentRepo = recruitmentRepo.NewPostgresRepository(pool)
	c.TeamRepo = teamRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	cfg := c.Config

	limiter := authService.NewLoginLimiter(c.Cache, cfg.Session.MaxLoginAttempts, cfg.Session.LoginWindow)
	c.AuthService = authService.NewAuthService(c.AdminRepo, c.JWTManager, limiter)

	c.BlogService = blogService.NewBlogService(c.BlogRepo, markdown.NewRenderer())
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.Pages)
	c.SectionService = sectionService.NewSectionService(c.SectionRepo, c.Pages)
	c.NewsletterService = newsletterService.NewNewsletterService(c.NewsletterRepo, c.Queue)
	c.OfferingService = offeringService.NewOfferingService(c.OfferingRepo, c.Pages)
	c.PolicyService = policyService.NewPolicyService(c.PolicyRepo)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo, c.Pages)
	c.RecruitmentService = recruitmentService.NewRecruitmentService(c.RecruitmentRepo, c.Pages)
	c.TeamService = teamService.NewMemberService(c.TeamRepo, c.Pages)

	c.PageService = pageService.NewPageService(pageService.Sources{
		Sections:    c.SectionService,
		Offerings:   c.OfferingService,
		Team:        c.TeamService,
		Projects:    c.ProjectService,
		Contacts:    c.ContactService,
		Recruitment: c.RecruitmentService,
	}, c.PageRepo, c.Pages)

	c.UploadService = uploadService.NewUploadService(
		c.Storage,
		storage.NewImageProcessor(),
		c.Queue,
		uploadService.Config{MaxBytes: cfg.Upload.MaxBytes, DefaultFolder: cfg.Upload.DefaultFolder},
	)
}

func (c *Container) initHandlers() {
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService, authHandler.CookieOptions{
		Name:   c.Config.Session.CookieName,
		Secure: c.Config.Session.CookieSecure,
	})
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.SectionHandler = sectionHandler.NewSectionHandler(c.SectionService)
	c.NewsletterHandler = newsletterHandler.NewNewsletterHandler(c.NewsletterService)
	c.OfferingHandler = offeringHandler.NewOfferingHandler(c.OfferingService)
	c.PageHandler = pageHandler.NewPageHandler(c.PageService)
	c.PolicyHandler = policyHandler.NewPolicyHandler(c.PolicyService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.RecruitmentHandler = recruitmentHandler.NewRecruitmentHandler(c.RecruitmentService)
	c.TeamHandler = teamHandler.NewTeamHandler(c.TeamService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)
}

// Cleanup releases every connection the container opened. Safe on a
// partially built container.
func (c *Container) Cleanup() {
	if q, ok := c.Queue.(*queue.AsynqEnqueuer); ok {
		if err := q.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close asynq client")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("container cleanup completed")
}
