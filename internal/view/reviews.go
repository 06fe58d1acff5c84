package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ChouguleParas07/RentAThing/internal/api"
	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/router"
)

// ItemReviews resolves an item's review list. The review form appears only
// for renters; owners and anonymous viewers read without writing. A fetch
// failure degrades to the empty state.
func ItemReviews(ctx context.Context, env Env, route router.Route) (Result, error) {
	list, err := env.Service.ItemReviews(ctx, route.ID)
	if err != nil {
		list = domain.ReviewList{}
	}

	result := Result{
		Title: "Reviews",
		Handlers: []Handler{
			{Key: "esc", Label: "Back to item", Entry: GlobalEntry, Navigate: router.ItemFragment(route.ID)},
		},
	}

	if len(list.Reviews) == 0 {
		result.Footer = emptyState("No reviews yet.")
	} else {
		for _, r := range list.Reviews {
			result.Entries = append(result.Entries, Entry{Text: reviewCard(r)})
		}
	}

	if user := env.Sessions.User(); user != nil && user.Role.CanReview() {
		result.Form = reviewForm(env, route.ID)
	}

	return result, nil
}

// reviewForm builds the review submission sub-flow. On success the view
// re-renders in place, so the fresh review shows up in the list above a
// reset form.
func reviewForm(env Env, itemID string) *Form {
	rating := 5
	var comment string

	return &Form{
		Build: func() *huh.Form {
			return huh.NewForm(huh.NewGroup(
				huh.NewSelect[int]().
					Title("Rating").
					Options(
						huh.NewOption("★★★★★", 5),
						huh.NewOption("★★★★☆", 4),
						huh.NewOption("★★★☆☆", 3),
						huh.NewOption("★★☆☆☆", 2),
						huh.NewOption("★☆☆☆☆", 1),
					).
					Value(&rating),
				huh.NewText().
					Title("Comment").
					Lines(3).
					Value(&comment),
			).Title("Write a review"))
		},
		Submit: func(ctx context.Context) (Submitted, error) {
			_, err := env.Service.CreateReview(ctx, api.ReviewRequest{
				ItemID:  itemID,
				Rating:  rating,
				Comment: optionalText(comment),
			})
			if err != nil {
				return Submitted{}, err
			}
			return Submitted{Notice: "Review submitted!"}, nil
		},
	}
}

func reviewCard(r domain.Review) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", r.Stars(), mutedStyle.Render(r.CreatedAt))
	if r.Comment != nil && *r.Comment != "" {
		b.WriteString("\n" + *r.Comment)
	}
	return cardStyle.Render(b.String())
}
