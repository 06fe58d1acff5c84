package view

import (
	"context"
	"fmt"

	"github.com/ChouguleParas07/RentAThing/internal/api"
	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/router"
)

// Listings resolves the public browse view. Open to everyone, logged in or
// not.
func Listings(ctx context.Context, env Env, _ router.Route) (Result, error) {
	list, err := env.Service.ListItems(ctx, api.ListItemsParams{Limit: listLimit})
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Title:  "Browse items",
		Header: fmt.Sprintf("%d item(s) available", list.Total),
	}

	if len(list.Items) == 0 {
		result.Header = ""
		result.Footer = emptyState("No items yet. Register as Owner and add items.")
		return result, nil
	}

	for i, item := range list.Items {
		result.Entries = append(result.Entries, Entry{Text: itemCard(item)})
		result.Handlers = append(result.Handlers, Handler{
			Key:      "enter",
			Label:    "View",
			Entry:    i,
			Navigate: router.ItemFragment(item.ID),
		})
	}

	return result, nil
}

// itemCard renders one listing summary block.
func itemCard(item domain.Item) string {
	return cardStyle.Render(fmt.Sprintf("%s\n%s\n%s",
		titleStyle.MarginBottom(0).Render(item.Title),
		mutedStyle.Render(item.DescriptionOrDash()),
		priceStyle.Render(item.DailyPrice.Display()+" / day"),
	))
}
