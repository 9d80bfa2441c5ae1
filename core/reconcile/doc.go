// Package reconcile provides the decision engine that keeps a destination
// (a Notion database) in step with a source (a Steam library), one entity at a time.
//
// # Architecture
//
// The engine is split in two steps, mirroring a plan/apply workflow:
//
//  1. Plan: the Adapter looks the entity up in the destination and Decide maps
//     the tri-state Lookup onto an Action:
//     - LookupNotFound -> ActionCreate
//     - LookupFound -> ActionUpdate, or ActionSkip when updates are disabled
//     - LookupError -> ActionBlocked (a failed search never turns into a create)
//  2. Apply: create and update actions are executed through the Adapter unless
//     Options.DryRun is set. The resulting Outcome is folded into a Summary.
//
// Entities dropped before any lookup are recorded as ActionFiltered so they
// still show up in the Summary.
//
// # Adapters
//
// Adapters are generic over the entity type so the Steam game pipeline can pass
// its fully derived record straight through to Create/Update without casts.
//
// # Usage Example
//
//	opts := reconcile.Options{EnableUpdate: true}
//	outcome := reconcile.ReconcileOne(ctx, adapter, record, opts)
//	summary.Add(outcome)
package reconcile
