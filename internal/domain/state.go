package domain

// WorkState is where the person is, as implied by the last logged event.
type WorkState string

const (
	StateAway    WorkState = "away"
	StateWorking WorkState = "working"
	StateOnBreak WorkState = "on break"
)

// StateAfter returns the state the log is in when last is its most recent
// activity. An empty log is away.
func StateAfter(last ActivityType) WorkState {
	switch {
	case last.StartsWork():
		return StateWorking
	case last == ActivityBreak:
		return StateOnBreak
	default:
		return StateAway
	}
}
