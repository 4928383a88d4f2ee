package main

import (
	"github.com/hibiken/asynq"

	newsletterJob "orgsite-backend/internal/domains/newsletter/job"
	recruitmentJob "orgsite-backend/internal/domains/recruitment/job"
	uploadJob "orgsite-backend/internal/domains/upload/job"
	"orgsite-backend/internal/shared"
	"orgsite-backend/pkg/container"
)

// HandlerRegistry holds every task handler the worker serves.
type HandlerRegistry struct {
	processImage      *uploadJob.ProcessImageHandler
	newsletterWelcome *newsletterJob.WelcomeHandler
	recruitmentWindow *recruitmentJob.SyncWindowHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		processImage:      uploadJob.NewProcessImageHandler(c.UploadService),
		newsletterWelcome: newsletterJob.NewWelcomeHandler(c.Email, c.Config.App.SiteURL),
		recruitmentWindow: recruitmentJob.NewSyncWindowHandler(c.RecruitmentService),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeProcessUploadImage, h.processImage.ProcessTask)
	mux.HandleFunc(shared.TypeSendNewsletterWelcome, h.newsletterWelcome.ProcessTask)
	mux.HandleFunc(shared.TypeSyncRecruitmentWindow, h.recruitmentWindow.ProcessTask)
}
