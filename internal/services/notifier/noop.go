package notifier

import "context"

type noopNotifier struct{}

// NewNoop returns a notifier that drops every summary
func NewNoop() Service {
	return noopNotifier{}
}

func (noopNotifier) PostDuelSummary(ctx context.Context, input *PostDuelSummaryInput) error {
	return nil
}
