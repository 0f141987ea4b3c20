package notifier

// Embed colours for tests in notifier_test
const (
	ColorWin  = colorWin
	ColorDraw = colorDraw
)
