package quiz

// accuracyLoadedMsg carries the past accuracy for the word being asked.
type accuracyLoadedMsg struct {
	Word     string
	Accuracy float64
	Attempts int
}

// feedbackDoneMsg is sent when the user dismisses the answer feedback.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
