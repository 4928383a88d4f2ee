package page

import (
	"orgsite-backend/internal/domains/contact"
	"orgsite-backend/internal/domains/homesection"
	"orgsite-backend/internal/domains/offering"
	"orgsite-backend/internal/domains/project"
	"orgsite-backend/internal/domains/recruitment"
	"orgsite-backend/internal/domains/team"
)

// HomePage is the page-data document of the landing page.
type HomePage struct {
	Sections    []homesection.Section `json:"sections"`
	Services    []offering.Offering   `json:"services"`
	Team        []team.Member         `json:"team"`
	Projects    []project.Project     `json:"projects"`
	Contacts    []contact.Contact     `json:"contacts"`
	Recruitment *recruitment.Status   `json:"recruitment"`
}

// RecruitmentPage carries the current settings, nil when none exist yet.
type RecruitmentPage struct {
	Settings *recruitment.Settings `json:"settings"`
	IsOpen   bool                  `json:"isOpen"`
}

type AdminSettings struct {
	Recruitment *recruitment.Settings `json:"recruitment"`
}

// Counts holds row totals shown on the admin dashboard.
type Counts struct {
	BlogPosts         int64 `json:"blogPosts"`
	PublishedPosts    int64 `json:"publishedPosts"`
	Contacts          int64 `json:"contacts"`
	Projects          int64 `json:"projects"`
	Services          int64 `json:"services"`
	TeamMembers       int64 `json:"teamMembers"`
	Policies          int64 `json:"policies"`
	Subscribers       int64 `json:"subscribers"`
	ActiveSubscribers int64 `json:"activeSubscribers"`
	HomeSections      int64 `json:"homeSections"`
}

type Dashboard struct {
	Counts      Counts              `json:"counts"`
	Recruitment *recruitment.Status `json:"recruitment"`
}
