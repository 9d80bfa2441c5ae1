package reconcile

import (
	"context"
	"fmt"
)

// Adapter defines the model-specific side of a reconciliation: how an entity
// is identified, how the destination is searched and how it is written.
type Adapter[T any] interface {
	// Key returns the stable identifier of the entity.
	Key(item T) string

	// DisplayName returns the name used in logs and reports.
	DisplayName(item T) string

	// Lookup searches the destination for a record matching the entity.
	// Transport failures must be reported as LookupError, never as LookupNotFound.
	Lookup(ctx context.Context, item T) Lookup

	// Create writes a new record for the entity.
	Create(ctx context.Context, item T) error

	// Update overwrites the record identified by recordID.
	Update(ctx context.Context, recordID string, item T) error
}

// Decide maps a lookup onto an action. It performs no I/O.
func Decide(key, name string, lookup Lookup, opts Options) Action {
	action := Action{Key: key, Name: name}

	switch lookup.State {
	case LookupFound:
		action.RecordID = lookup.RecordID
		if opts.EnableUpdate {
			action.Type = ActionUpdate
			action.Reason = fmt.Sprintf("exists (matched by %s)", lookup.MatchedBy)
		} else {
			action.Type = ActionSkip
			action.Reason = "exists and updates are disabled"
		}
	case LookupNotFound:
		action.Type = ActionCreate
		action.Reason = "not found"
	default:
		action.Type = ActionBlocked
		action.Reason = "lookup failed"
		if lookup.Err != nil {
			action.Reason = fmt.Sprintf("lookup failed: %v", lookup.Err)
		}
	}

	return action
}

// Plan looks the entity up and decides what to do with it.
func Plan[T any](ctx context.Context, adapter Adapter[T], item T, opts Options) Action {
	lookup := adapter.Lookup(ctx, item)
	return Decide(adapter.Key(item), adapter.DisplayName(item), lookup, opts)
}

// Apply executes a planned action. Skipped and blocked actions are no-ops, and
// nothing is written when opts.DryRun is set.
func Apply[T any](ctx context.Context, adapter Adapter[T], item T, action Action, opts Options) Outcome {
	outcome := Outcome{Action: action}

	if !action.Writes() || opts.DryRun {
		return outcome
	}

	var err error
	switch action.Type {
	case ActionCreate:
		err = adapter.Create(ctx, item)
	case ActionUpdate:
		err = adapter.Update(ctx, action.RecordID, item)
	}

	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Applied = true
	return outcome
}

// ReconcileOne plans and applies in one step.
func ReconcileOne[T any](ctx context.Context, adapter Adapter[T], item T, opts Options) Outcome {
	return Apply(ctx, adapter, item, Plan(ctx, adapter, item, opts), opts)
}
