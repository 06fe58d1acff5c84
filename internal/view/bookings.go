package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/router"
)

// RenterBookings resolves the caller's bookings as a renter. A fetch
// failure degrades to the empty state rather than blocking the view.
func RenterBookings(ctx context.Context, env Env, _ router.Route) (Result, error) {
	_, redirect := gateUser(env)
	if redirect != nil {
		return *redirect, nil
	}

	list, err := env.Service.RenterBookings(ctx)
	if err != nil {
		list = domain.BookingList{}
	}

	result := Result{Title: "My bookings"}

	if len(list.Bookings) == 0 {
		result.Footer = emptyState("No bookings yet. Browse items and request a booking.")
		return result, nil
	}

	for _, b := range list.Bookings {
		result.Entries = append(result.Entries, Entry{Text: renterBookingCard(b)})
	}

	return result, nil
}

// OwnerBookings resolves bookings against the caller's items, offering the
// syntactically reachable transition for each booking's current status. The
// service is the authority on legality; after any transition request,
// success or failure, the loop re-renders so the screen shows confirmed
// server state.
func OwnerBookings(ctx context.Context, env Env, _ router.Route) (Result, error) {
	_, redirect := gateOwner(env, "Owner Bookings", "Only owners can view this page.")
	if redirect != nil {
		return *redirect, nil
	}

	list, err := env.Service.OwnerBookings(ctx)
	if err != nil {
		list = domain.BookingList{}
	}

	result := Result{Title: "Owner Bookings"}

	if len(list.Bookings) == 0 {
		result.Footer = emptyState("No bookings for your items yet.")
		return result, nil
	}

	for i, b := range list.Bookings {
		result.Entries = append(result.Entries, Entry{Text: ownerBookingCard(b)})

		for _, target := range b.Status.NextStatuses() {
			result.Handlers = append(result.Handlers, transitionHandler(env, i, b.ID, target))
		}
	}

	return result, nil
}

// transitionHandler builds the deferred action for one status transition.
func transitionHandler(env Env, entry int, bookingID string, target domain.BookingStatus) Handler {
	return Handler{
		Key:   transitionKey(target),
		Label: domain.TransitionLabel(target),
		Entry: entry,
		Do: func(ctx context.Context) (string, error) {
			if err := env.Service.UpdateBookingStatus(ctx, bookingID, target); err != nil {
				return "", err
			}
			return fmt.Sprintf("Booking %s.", strings.ToLower(string(target))), nil
		},
	}
}

// transitionKey maps a transition target to its key binding.
func transitionKey(target domain.BookingStatus) string {
	switch target {
	case domain.StatusApproved:
		return "a"
	case domain.StatusRejected:
		return "r"
	case domain.StatusCompleted:
		return "c"
	}
	return ""
}

func renterBookingCard(b domain.Booking) string {
	return cardStyle.Render(fmt.Sprintf("%s → %s\n%s · Status: %s",
		b.StartDate, b.EndDate,
		mutedStyle.Render("Total "+b.TotalPrice.Display()),
		statusBadge(string(b.Status)),
	))
}

func ownerBookingCard(b domain.Booking) string {
	return cardStyle.Render(fmt.Sprintf("Booking #%s\n%s → %s\nTotal: %s\nStatus: %s",
		b.ShortID(),
		b.StartDate, b.EndDate,
		b.TotalPrice.Display(),
		statusBadge(string(b.Status)),
	))
}
