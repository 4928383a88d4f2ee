package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"orgsite-backend/internal/domains/contact"
	"orgsite-backend/internal/domains/homesection"
	"orgsite-backend/internal/domains/offering"
	"orgsite-backend/internal/domains/page"
	"orgsite-backend/internal/domains/project"
	"orgsite-backend/internal/domains/recruitment"
	"orgsite-backend/internal/domains/team"
	pagecache "orgsite-backend/internal/infrastructure/cache"
	"orgsite-backend/internal/shared/apperror"
)

// Store is the cache-aside page document store; *cache.PageStore satisfies it.
type Store interface {
	Load(ctx context.Context, path string, dest interface{}) bool
	Store(ctx context.Context, path string, value interface{})
}

// Sources are the content services a page is assembled from.
type Sources struct {
	Sections    homesection.Service
	Offerings   offering.Service
	Team        team.Service
	Projects    project.Service
	Contacts    contact.Service
	Recruitment recruitment.Service
}

type pageService struct {
	src   Sources
	repo  page.Repository
	store Store
}

func NewPageService(src Sources, repo page.Repository, store Store) page.Service {
	return &pageService{src: src, repo: repo, store: store}
}

func (s *pageService) Home(ctx context.Context) (*page.HomePage, error) {
	var doc page.HomePage
	if s.store != nil && s.store.Load(ctx, pagecache.PathHome, &doc) {
		return &doc, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { doc.Sections, err = s.src.Sections.ListActive(gctx); return })
	g.Go(func() (err error) { doc.Services, err = s.src.Offerings.ListActive(gctx); return })
	g.Go(func() (err error) { doc.Team, err = s.src.Team.ListActive(gctx); return })
	g.Go(func() (err error) { doc.Projects, err = s.src.Projects.ListActive(gctx); return })
	g.Go(func() (err error) { doc.Contacts, err = s.src.Contacts.ListActive(gctx); return })
	g.Go(func() error {
		settings, err := s.currentRecruitment(gctx)
		if err != nil || settings == nil {
			return err
		}
		status := settings.ToStatus()
		doc.Recruitment = &status
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.store != nil {
		s.store.Store(ctx, pagecache.PathHome, &doc)
	}
	return &doc, nil
}

func (s *pageService) Recruitment(ctx context.Context) (*page.RecruitmentPage, error) {
	var doc page.RecruitmentPage
	if s.store != nil && s.store.Load(ctx, pagecache.PathRecruitment, &doc) {
		return &doc, nil
	}

	settings, err := s.currentRecruitment(ctx)
	if err != nil {
		return nil, err
	}
	doc.Settings = settings
	doc.IsOpen = settings != nil && settings.IsOpen

	if s.store != nil {
		s.store.Store(ctx, pagecache.PathRecruitment, &doc)
	}
	return &doc, nil
}

func (s *pageService) AdminSettings(ctx context.Context) (*page.AdminSettings, error) {
	var doc page.AdminSettings
	if s.store != nil && s.store.Load(ctx, pagecache.PathAdminSettings, &doc) {
		return &doc, nil
	}

	settings, err := s.currentRecruitment(ctx)
	if err != nil {
		return nil, err
	}
	doc.Recruitment = settings

	if s.store != nil {
		s.store.Store(ctx, pagecache.PathAdminSettings, &doc)
	}
	return &doc, nil
}

// Dashboard is always read live.
func (s *pageService) Dashboard(ctx context.Context) (*page.Dashboard, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to load dashboard", err)
	}

	doc := &page.Dashboard{Counts: *counts}
	settings, err := s.currentRecruitment(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		status := settings.ToStatus()
		doc.Recruitment = &status
	}
	return doc, nil
}

// currentRecruitment returns nil settings when none have been created.
func (s *pageService) currentRecruitment(ctx context.Context) (*recruitment.Settings, error) {
	settings, err := s.src.Recruitment.GetCurrent(ctx)
	if errors.Is(err, recruitment.ErrSettingsNotFound) {
		return nil, nil
	}
	return settings, err
}
