// Package router maps navigable location fragments onto routes. A route is
// ephemeral: recomputed on every navigation, never persisted.
package router

import "strings"

// View paths. Every fragment resolves to exactly one of these; anything
// unrecognized falls back to the listings view.
const (
	PathHome          = "home"
	PathLogin         = "login"
	PathRegister      = "register"
	PathItem          = "item"
	PathItemReviews   = "item-reviews"
	PathItemNew       = "item-new"
	PathItemEdit      = "item-edit"
	PathMyItems       = "my-items"
	PathOwnerBookings = "owner-bookings"
	PathMessages      = "messages"
	PathBookings      = "bookings"
)

// Route is the parsed (path, id) pair driving which view resolver is active.
type Route struct {
	Path string
	ID   string
}

// singleSegment is the set of fragments that are complete routes by
// themselves.
var singleSegment = map[string]bool{
	PathHome:          true,
	PathLogin:         true,
	PathRegister:      true,
	PathMyItems:       true,
	PathOwnerBookings: true,
	PathMessages:      true,
	PathBookings:      true,
}

// Resolve parses a location fragment into a Route. Recognized shapes:
//
//	""                  -> home
//	<single segment>    -> that view (home, login, register, my-items,
//	                       owner-bookings, messages, bookings)
//	item/{id}           -> item detail
//	item/{id}/reviews   -> item reviews
//	items/new           -> item creation
//	items/{id}/edit     -> item editing
//
// Everything else resolves to home.
func Resolve(fragment string) Route {
	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")

	var segments []string
	for _, seg := range strings.Split(fragment, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	switch len(segments) {
	case 0:
		return Route{Path: PathHome}

	case 1:
		if singleSegment[segments[0]] {
			return Route{Path: segments[0]}
		}

	case 2:
		if segments[0] == "item" {
			return Route{Path: PathItem, ID: segments[1]}
		}
		if segments[0] == "items" && segments[1] == "new" {
			return Route{Path: PathItemNew}
		}

	case 3:
		if segments[0] == "item" && segments[2] == "reviews" {
			return Route{Path: PathItemReviews, ID: segments[1]}
		}
		if segments[0] == "items" && segments[2] == "edit" {
			return Route{Path: PathItemEdit, ID: segments[1]}
		}
	}

	return Route{Path: PathHome}
}

// ItemFragment builds the fragment for an item detail view.
func ItemFragment(id string) string {
	return "item/" + id
}

// ItemReviewsFragment builds the fragment for an item's reviews view.
func ItemReviewsFragment(id string) string {
	return "item/" + id + "/reviews"
}

// ItemEditFragment builds the fragment for an item's edit view.
func ItemEditFragment(id string) string {
	return "items/" + id + "/edit"
}

// ItemNewFragment is the fragment for the item creation view.
const ItemNewFragment = "items/new"
