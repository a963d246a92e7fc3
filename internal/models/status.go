package models

import (
	"encoding/json"
	"fmt"
)

// Status is the lifecycle stage of an epic or story.
// Any status may be set from any other; there is no enforced progression.
type Status int

const (
	StatusOpen Status = iota
	StatusInProgress
	StatusResolved
	StatusClosed
)

// AllStatuses lists every status in picker order.
var AllStatuses = []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// persisted names, as stored in the data file
var statusNames = map[Status]string{
	StatusOpen:       "Open",
	StatusInProgress: "Inprogress",
	StatusResolved:   "Resolved",
	StatusClosed:     "Closed",
}

// String returns the display form used by pages (e.g. "IN PROGRESS").
func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "OPEN"
	case StatusInProgress:
		return "IN PROGRESS"
	case StatusResolved:
		return "RESOLVED"
	case StatusClosed:
		return "CLOSED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus converts a persisted status name back into a Status.
func ParseStatus(name string) (Status, error) {
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", name)
}

// PersistedName returns the name written to storage.
func (s Status) PersistedName() string {
	return statusNames[s]
}

func (s Status) MarshalJSON() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unknown status %d", int(s))
	}
	return json.Marshal(name)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
