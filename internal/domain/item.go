package domain

// Item is a rentable listing. The client only ever holds transient read
// copies fetched per view; the remote service owns the record.
type Item struct {
	ID              string  `json:"id"`
	OwnerID         string  `json:"owner_id"`
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	DailyPrice      Money   `json:"daily_price"`
	SecurityDeposit Money   `json:"security_deposit"`
	LocationText    *string `json:"location_text,omitempty"`
}

// ItemList is the list response shape for item queries.
type ItemList struct {
	Total int    `json:"total"`
	Items []Item `json:"items"`
}

// CanBook reports whether the given viewer may request a booking for the
// item: a user must be present and must not be the item's owner.
func (i Item) CanBook(viewer *UserSummary) bool {
	return viewer != nil && viewer.ID != i.OwnerID
}

// DescriptionOrDash returns the description, or a dash placeholder when none
// was provided.
func (i Item) DescriptionOrDash() string {
	if i.Description != nil && *i.Description != "" {
		return *i.Description
	}
	return "—"
}
