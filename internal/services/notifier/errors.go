package notifier

// NotifierError represents notifier configuration errors
type NotifierError string

func (e NotifierError) Error() string {
	return string(e)
}

const (
	ErrInvalidWebhookURL NotifierError = "invalid discord webhook url"
	ErrNilExecutor       NotifierError = "webhook executor cannot be nil"
	ErrNilMessaging      NotifierError = "messaging service cannot be nil"
)
