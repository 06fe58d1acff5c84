// Package view contains the view resolvers: each one turns (route, session)
// into renderable content plus the deferred handler registrations the render
// loop attaches after paint. Resolvers receive their collaborators through
// an explicit Env so they can be exercised against fakes.
package view

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/ChouguleParas07/RentAThing/internal/api"
	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/router"
	"github.com/ChouguleParas07/RentAThing/internal/session"
)

// Service is the slice of the API client the resolvers consume.
type Service interface {
	Login(ctx context.Context, email, password string) (api.TokenPair, error)
	MeWithToken(ctx context.Context, token string) (domain.UserSummary, error)
	Register(ctx context.Context, req api.RegisterRequest) error

	ListItems(ctx context.Context, params api.ListItemsParams) (domain.ItemList, error)
	GetItem(ctx context.Context, id string) (domain.Item, error)
	CreateItem(ctx context.Context, payload api.ItemPayload) (domain.Item, error)
	UpdateItem(ctx context.Context, id string, payload api.ItemPayload) (domain.Item, error)

	CreateBooking(ctx context.Context, req api.BookingRequest) (domain.Booking, error)
	RenterBookings(ctx context.Context) (domain.BookingList, error)
	OwnerBookings(ctx context.Context) (domain.BookingList, error)
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error

	Conversations(ctx context.Context, limit int) (domain.MessageList, error)
	ItemReviews(ctx context.Context, itemID string) (domain.ReviewList, error)
	CreateReview(ctx context.Context, req api.ReviewRequest) (domain.Review, error)
}

// Env carries the resolvers' collaborators.
type Env struct {
	Service  Service
	Sessions session.Store
}

// listLimit caps list fetches, matching the service's page size.
const listLimit = 50

// GlobalEntry marks a handler as view-global rather than scoped to one
// cursor entry.
const GlobalEntry = -1

// Handler is a deferred behavior registration: a key binding the render
// loop attaches after the content paint. Exactly one of Navigate or Do is
// set.
type Handler struct {
	// Key is the key press that triggers the handler.
	Key string

	// Label is the control label shown in the handler hint line.
	Label string

	// Entry scopes the handler to one cursor entry, or GlobalEntry.
	Entry int

	// Navigate is the location fragment to navigate to.
	Navigate string

	// Do performs a side effect. The render loop re-runs the full render
	// cycle afterwards, success or failure, so the screen always reflects
	// confirmed server state.
	Do func(ctx context.Context) (notice string, err error)
}

// Submitted is the outcome of a successful form submission.
type Submitted struct {
	// Notice is a confirmation shown on the next paint.
	Notice string

	// Navigate is the fragment to go to; empty re-renders the current
	// route (which also resets the form).
	Navigate string
}

// Form is a two-phase form registration: Build constructs a fresh input
// form over value pointers the resolver owns, so a failed submission can
// rebuild the form without losing what the user typed; Submit reads those
// values and performs the submission.
type Form struct {
	Build  func() *huh.Form
	Submit func(ctx context.Context) (Submitted, error)
}

// Entry is one cursor-navigable block of content.
type Entry struct {
	Text string
}

// Result is a resolver's output: a pure content descriptor plus deferred
// behavior, applied by the render loop.
type Result struct {
	// Title is the page title.
	Title string

	// Header is content painted above the entry list.
	Header string

	// Entries are the cursor-navigable blocks, possibly none.
	Entries []Entry

	// Footer is content painted below the entry list.
	Footer string

	// Handlers are attached after the content paint.
	Handlers []Handler

	// Form, when set, is painted below the footer and driven until
	// submission.
	Form *Form

	// Redirect, when set, aborts the paint and navigates instead. Used by
	// gated views sending anonymous users to login.
	Redirect string
}

// Resolver produces a Result for a route. Any error escaping a resolver is
// caught by the render loop's single top-level boundary.
type Resolver func(ctx context.Context, env Env, route router.Route) (Result, error)

// For returns the resolver for a route. Routing guarantees every route maps
// to exactly one resolver; the listings view is the fallback.
func For(route router.Route) Resolver {
	switch route.Path {
	case router.PathLogin:
		return Login
	case router.PathRegister:
		return Register
	case router.PathItem:
		return ItemDetail
	case router.PathItemReviews:
		return ItemReviews
	case router.PathItemNew:
		return ItemCreate
	case router.PathItemEdit:
		return ItemEdit
	case router.PathMyItems:
		return MyItems
	case router.PathOwnerBookings:
		return OwnerBookings
	case router.PathMessages:
		return Messages
	case router.PathBookings:
		return RenterBookings
	default:
		return Listings
	}
}

// gateUser redirects anonymous viewers to login. Gated resolvers call this
// before any API work so no fetch happens for a logged-out user.
func gateUser(env Env) (*domain.UserSummary, *Result) {
	user := env.Sessions.User()
	if user == nil {
		return nil, &Result{Redirect: router.PathLogin}
	}
	return user, nil
}

// gateOwner additionally requires an item-managing role. Unauthorized
// access is shown, not hidden: a renter gets a static panel explaining why,
// never a silent redirect.
func gateOwner(env Env, title, denied string) (*domain.UserSummary, *Result) {
	user, redirect := gateUser(env)
	if redirect != nil {
		return nil, redirect
	}
	if !user.Role.CanManageItems() {
		return nil, &Result{
			Title:  title,
			Header: errorPanel(denied),
		}
	}
	return user, nil
}
