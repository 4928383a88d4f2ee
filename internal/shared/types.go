package shared

// Background task types (asynq).
const (
	TypeProcessUploadImage    = "upload:process_image"
	TypeSendNewsletterWelcome = "newsletter:welcome"
	TypeSyncRecruitmentWindow = "recruitment:sync_window"

	QueueDefault = "default"
	QueueLow     = "low"
)

// ProcessUploadImagePayload points at an uploaded original in the blob store.
type ProcessUploadImagePayload struct {
	ObjectKey string `json:"objectKey"`
}

type NewsletterWelcomePayload struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type SyncRecruitmentWindowPayload struct{}
