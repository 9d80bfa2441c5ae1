// Package report builds the summary of a sync run and exports it as a JSON
// object to the report bucket.
package report
