package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ChouguleParas07/RentAThing/internal/api"
	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/router"
)

// MyItems resolves the owner's item management list.
func MyItems(ctx context.Context, env Env, _ router.Route) (Result, error) {
	user, redirect := gateOwner(env, "My Items", "Only owners can view this page.")
	if redirect != nil {
		return *redirect, nil
	}

	list, err := env.Service.ListItems(ctx, api.ListItemsParams{Limit: listLimit, OwnerID: user.ID})
	if err != nil {
		list = domain.ItemList{}
	}

	result := Result{
		Title: "My Items",
		Handlers: []Handler{
			{Key: "n", Label: "Add New Item", Entry: GlobalEntry, Navigate: router.ItemNewFragment},
		},
	}

	if len(list.Items) == 0 {
		result.Footer = emptyState("You haven't added any items yet.")
		return result, nil
	}

	for i, item := range list.Items {
		result.Entries = append(result.Entries, Entry{Text: itemCard(item)})
		result.Handlers = append(result.Handlers,
			Handler{Key: "enter", Label: "View", Entry: i, Navigate: router.ItemFragment(item.ID)},
			Handler{Key: "e", Label: "Edit", Entry: i, Navigate: router.ItemEditFragment(item.ID)},
		)
	}

	return result, nil
}

// ItemCreate resolves the item creation form.
func ItemCreate(_ context.Context, env Env, _ router.Route) (Result, error) {
	_, redirect := gateOwner(env, "Add New Item", "Only owners can add items.")
	if redirect != nil {
		return *redirect, nil
	}

	fields := &itemFields{}

	form := &Form{
		Build: fields.build,
		Submit: func(ctx context.Context) (Submitted, error) {
			if _, err := env.Service.CreateItem(ctx, fields.payload()); err != nil {
				return Submitted{}, err
			}
			return Submitted{
				Notice:   "Item created successfully!",
				Navigate: router.PathMyItems,
			}, nil
		},
	}

	return Result{
		Title:    "Add New Item",
		Form:     form,
		Handlers: []Handler{{Key: "esc", Label: "Back to My Items", Entry: GlobalEntry, Navigate: router.PathMyItems}},
	}, nil
}

// ItemEdit resolves the item edit form, pre-filled from a fresh fetch. A
// fetch failure yields a not-found panel instead of a broken form.
func ItemEdit(ctx context.Context, env Env, route router.Route) (Result, error) {
	_, redirect := gateOwner(env, "Edit Item", "Only owners can edit items.")
	if redirect != nil {
		return *redirect, nil
	}

	item, err := env.Service.GetItem(ctx, route.ID)
	if err != nil {
		return Result{
			Title:  "Edit Item",
			Header: errorPanel("Item not found."),
		}, nil
	}

	fields := fieldsFromItem(item)

	form := &Form{
		Build: fields.build,
		Submit: func(ctx context.Context) (Submitted, error) {
			if _, err := env.Service.UpdateItem(ctx, item.ID, fields.payload()); err != nil {
				return Submitted{}, err
			}
			return Submitted{Notice: "Item updated successfully!"}, nil
		},
	}

	return Result{
		Title:    "Edit Item",
		Form:     form,
		Handlers: []Handler{{Key: "esc", Label: "Back to My Items", Entry: GlobalEntry, Navigate: router.PathMyItems}},
	}, nil
}

// itemFields holds the raw form values for create and edit. Values stay
// strings until submission so partially typed numbers never block typing.
type itemFields struct {
	title           string
	description     string
	dailyPrice      string
	securityDeposit string
	locationText    string
}

func fieldsFromItem(item domain.Item) *itemFields {
	f := &itemFields{
		title:           item.Title,
		dailyPrice:      string(item.DailyPrice),
		securityDeposit: string(item.SecurityDeposit),
	}
	if item.Description != nil {
		f.description = *item.Description
	}
	if item.LocationText != nil {
		f.locationText = *item.LocationText
	}
	return f
}

func (f *itemFields) build() *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&f.title).
			Validate(requiredField("title")),
		huh.NewText().
			Title("Description").
			Lines(3).
			Value(&f.description),
		huh.NewInput().
			Title("Daily Price ($)").
			Value(&f.dailyPrice).
			Validate(priceField(true)),
		huh.NewInput().
			Title("Security Deposit ($)").
			Value(&f.securityDeposit).
			Validate(priceField(false)),
		huh.NewInput().
			Title("Location").
			Value(&f.locationText),
	))
}

// payload maps the raw form values onto the API shape: absent optional
// numbers coerce to 0, absent optional text to an explicit null.
func (f *itemFields) payload() api.ItemPayload {
	return api.ItemPayload{
		Title:           strings.TrimSpace(f.title),
		Description:     optionalText(f.description),
		DailyPrice:      parsePrice(f.dailyPrice),
		SecurityDeposit: parsePrice(f.securityDeposit),
		LocationText:    optionalText(f.locationText),
	}
}

// parsePrice coerces a form value to a non-negative amount, 0 when absent.
func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// priceField validates a numeric amount. Only the input constraint itself;
// any further validation belongs to the service.
func priceField(required bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if required {
				return fmt.Errorf("amount is required")
			}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return fmt.Errorf("enter a non-negative amount")
		}
		return nil
	}
}
