// Package library turns a Steam library into rows of the Notion games database.
//
// A Record bundles everything known about one game. Its derived fields are
// computed once and serialized identically for creation and update, with the
// completion and tag columns adapting to the live column types. The Service
// drives a full sync: schema validation, library fetch, then one game at a
// time through filter, lookup and write.
package library
