// Package storefront scrapes the public Steam storefront and community pages
// for the data the Web API does not expose: a game's short description, its
// user tags and the player's own review text.
//
// All calls are single attempts. A failure degrades to empty data and is
// logged, it never aborts a sync.
package storefront
