package page

import "context"

type Service interface {
	Home(ctx context.Context) (*HomePage, error)
	Recruitment(ctx context.Context) (*RecruitmentPage, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	AdminSettings(ctx context.Context) (*AdminSettings, error)
}
