package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/ChouguleParas07/RentAThing/internal/api"
	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/router"
)

// ItemDetail resolves the item detail view. A booking-request form is
// offered only when the viewer can book: logged in and not the item's
// owner. Anonymous viewers get a login prompt; the owner gets neither.
func ItemDetail(ctx context.Context, env Env, route router.Route) (Result, error) {
	item, err := env.Service.GetItem(ctx, route.ID)
	if err != nil {
		return Result{}, err
	}

	user := env.Sessions.User()

	result := Result{
		Title:  item.Title,
		Header: itemDetailCard(item),
		Handlers: []Handler{
			{Key: "esc", Label: "Back", Entry: GlobalEntry, Navigate: router.PathHome},
			{Key: "R", Label: "Reviews", Entry: GlobalEntry, Navigate: router.ItemReviewsFragment(item.ID)},
		},
	}

	switch {
	case item.CanBook(user):
		result.Form = bookingRequestForm(env, item)
	case user == nil:
		result.Footer = mutedStyle.Render("Log in to request a booking.")
	}

	return result, nil
}

// itemDetailCard renders the full item card.
func itemDetailCard(item domain.Item) string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render(item.DescriptionOrDash()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Price    %s / day\n", priceStyle.Render(item.DailyPrice.Display()))
	fmt.Fprintf(&b, "Deposit  %s", item.SecurityDeposit.Display())
	if item.LocationText != nil && *item.LocationText != "" {
		fmt.Fprintf(&b, "\nLocation %s", *item.LocationText)
	}
	return cardStyle.Render(b.String())
}

// bookingRequestForm builds the booking request sub-flow. On success the
// confirmation persists and the view re-renders in place with a fresh form,
// so the user can request another range without navigating away.
func bookingRequestForm(env Env, item domain.Item) *Form {
	var startDate, endDate, notes string

	return &Form{
		Build: func() *huh.Form {
			return huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Start date").
					Placeholder("YYYY-MM-DD").
					Value(&startDate).
					Validate(dateField),
				huh.NewInput().
					Title("End date").
					Placeholder("YYYY-MM-DD").
					Value(&endDate).
					Validate(dateField),
				huh.NewInput().
					Title("Notes").
					Value(&notes),
			).Title("Request booking"))
		},
		Submit: func(ctx context.Context) (Submitted, error) {
			_, err := env.Service.CreateBooking(ctx, api.BookingRequest{
				ItemID:    item.ID,
				StartDate: strings.TrimSpace(startDate),
				EndDate:   strings.TrimSpace(endDate),
				Notes:     optionalText(notes),
			})
			if err != nil {
				return Submitted{}, err
			}
			return Submitted{Notice: "Booking requested. Check My bookings."}, nil
		},
	}
}

// dateField accepts ISO dates only, the shape the service expects.
func dateField(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a date as YYYY-MM-DD")
	}
	return nil
}
