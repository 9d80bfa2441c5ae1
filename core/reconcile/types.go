package reconcile

import "fmt"

// LookupState is the outcome of searching the destination for an entity.
type LookupState int

const (
	// LookupNotFound means the search succeeded and found nothing.
	LookupNotFound LookupState = iota
	// LookupFound means an existing record matches the entity.
	LookupFound
	// LookupError means the search itself failed; absence is unknown.
	LookupError
)

func (s LookupState) String() string {
	switch s {
	case LookupNotFound:
		return "not_found"
	case LookupFound:
		return "found"
	case LookupError:
		return "error"
	default:
		return fmt.Sprintf("lookup_state(%d)", int(s))
	}
}

// Lookup is the result of Adapter.Lookup.
type Lookup struct {
	// State tells found, not found and failed apart.
	State LookupState

	// RecordID identifies the existing record when State is LookupFound.
	RecordID string

	// MatchedBy names the key that matched (e.g. "appid", "title").
	MatchedBy string

	// Err carries the failure when State is LookupError.
	Err error
}

// Found builds a successful lookup.
func Found(recordID, matchedBy string) Lookup {
	return Lookup{State: LookupFound, RecordID: recordID, MatchedBy: matchedBy}
}

// NotFound builds an empty lookup.
func NotFound() Lookup {
	return Lookup{State: LookupNotFound}
}

// Failed builds a lookup that could not decide.
func Failed(err error) Lookup {
	return Lookup{State: LookupError, Err: err}
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCreate creates a new record.
	ActionCreate ActionType = "create"
	// ActionUpdate overwrites an existing record.
	ActionUpdate ActionType = "update"
	// ActionSkip leaves an existing record untouched because updates are disabled.
	ActionSkip ActionType = "skip"
	// ActionBlocked refuses to write because the lookup failed.
	ActionBlocked ActionType = "blocked"
	// ActionFiltered drops the entity before any lookup.
	ActionFiltered ActionType = "filtered"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key string `json:"key"`

	// Name is the display name used in logs.
	Name string `json:"name"`

	// RecordID is the existing record targeted by an update or skip.
	RecordID string `json:"record_id,omitempty"`

	// Reason explains why this action was chosen.
	Reason string `json:"reason"`
}

// Writes reports whether the action mutates the destination.
func (a Action) Writes() bool {
	return a.Type == ActionCreate || a.Type == ActionUpdate
}

// Outcome is what happened to one entity.
type Outcome struct {
	Action Action `json:"action"`

	// Applied is true once the mutation succeeded.
	Applied bool `json:"applied"`

	// Error holds the mutation failure, if any.
	Error string `json:"error,omitempty"`
}

// Options controls reconcile behaviour.
type Options struct {
	// EnableUpdate overwrites existing records instead of skipping them.
	EnableUpdate bool

	// DryRun plans actions without executing any mutation.
	DryRun bool
}

// Summary provides aggregate counts over a run.
type Summary struct {
	Total    int `json:"total"`
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Blocked  int `json:"blocked"`
	Filtered int `json:"filtered"`
	Failed   int `json:"failed"`
	// Planned counts writes that a dry run did not execute.
	Planned int `json:"planned"`
}

// Add folds one outcome into the summary.
func (s *Summary) Add(o Outcome) {
	s.Total++
	switch {
	case o.Error != "":
		s.Failed++
	case o.Action.Type == ActionSkip:
		s.Skipped++
	case o.Action.Type == ActionBlocked:
		s.Blocked++
	case o.Action.Type == ActionFiltered:
		s.Filtered++
	case !o.Applied:
		s.Planned++
	case o.Action.Type == ActionCreate:
		s.Created++
	case o.Action.Type == ActionUpdate:
		s.Updated++
	}
}
