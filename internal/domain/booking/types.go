package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusFailed, StatusRefunded:
		return true
	default:
		return false
	}
}

// statusRank orders the lifecycle. Transitions only move forward: a
// cancelled or failed booking cannot be reconfirmed, and refunded is
// terminal after confirmed.
var statusRank = map[Status]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusCancelled: 2,
	StatusFailed:    2,
	StatusRefunded:  2,
}

func (s Status) CanTransitionTo(next Status) bool {
	if !s.IsValid() || !next.IsValid() || s == next {
		return false
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled || next == StatusFailed
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusRefunded
	default:
		// cancelled / failed / refunded are terminal
		return false
	}
}

func (s Status) IsTerminal() bool {
	return statusRank[s] >= 2
}
