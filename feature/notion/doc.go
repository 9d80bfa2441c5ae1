// Package notion talks to the Notion REST API.
//
// It covers the four calls a sync needs: reading the database schema,
// querying rows, creating pages and updating pages. Every call goes through
// the shared retry client, so an exhausted budget surfaces as
// retry.ErrExhausted.
//
// Wire types are hand written and cover only the property types the sync
// reads or writes.
package notion
