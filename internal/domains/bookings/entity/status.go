package entity

import "github.com/savioruz/kickmatch/pkg/constant"

type Status string

const (
	StatusPending   Status = constant.BookingStatusPending
	StatusConfirmed Status = constant.BookingStatusConfirmed
	StatusCancelled Status = constant.BookingStatusCancelled
	StatusCompleted Status = constant.BookingStatusCompleted
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether next is reachable from s in one step.
// Completion is only reached from confirmed, by the scheduled job.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}
