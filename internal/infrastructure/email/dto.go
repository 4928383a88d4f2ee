package email

type NewsletterWelcomeData struct {
	Email          string
	Name           string
	UnsubscribeURL string
}
