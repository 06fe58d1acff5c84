package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ChouguleParas07/RentAThing/internal/domain"
)

// TokenPair is the login response. Only the access token is persisted
// client-side.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (TokenPair, error) {
	var pair TokenPair
	err := c.call(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &pair)
	return pair, err
}

// Me fetches the authenticated user using the session's token.
func (c *Client) Me(ctx context.Context) (domain.UserSummary, error) {
	var user domain.UserSummary
	err := c.call(ctx, http.MethodGet, "/auth/me", nil, &user)
	return user, err
}

// MeWithToken fetches the authenticated user with an explicit token. Used
// during login, before the new token has been persisted to the session.
func (c *Client) MeWithToken(ctx context.Context, token string) (domain.UserSummary, error) {
	raw, err := c.do(ctx, http.MethodGet, "/auth/me", nil, token)
	if err != nil {
		return domain.UserSummary{}, err
	}
	var user domain.UserSummary
	return user, decode(raw, &user)
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Email    string      `json:"email"`
	FullName *string     `json:"full_name"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Register creates a new account. The caller logs in separately afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.call(ctx, http.MethodPost, "/auth/register", req, nil)
}

// ListItemsParams narrows an item listing query.
type ListItemsParams struct {
	Limit   int
	OwnerID string
}

// ListItems fetches item listings, optionally filtered to one owner.
func (c *Client) ListItems(ctx context.Context, params ListItemsParams) (domain.ItemList, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.OwnerID != "" {
		query.Set("owner_id", params.OwnerID)
	}

	path := "/items"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list domain.ItemList
	err := c.call(ctx, http.MethodGet, path, nil, &list)
	return list, err
}

// GetItem fetches a single item by id.
func (c *Client) GetItem(ctx context.Context, id string) (domain.Item, error) {
	var item domain.Item
	err := c.call(ctx, http.MethodGet, "/items/"+url.PathEscape(id), nil, &item)
	return item, err
}

// ItemPayload is the create/update shape for items. Optional text fields
// are pointers so that an absent value is sent as an explicit null, never
// as an empty string posing as data.
type ItemPayload struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	DailyPrice      float64 `json:"daily_price"`
	SecurityDeposit float64 `json:"security_deposit"`
	LocationText    *string `json:"location_text"`
}

// CreateItem creates a new listing owned by the caller.
func (c *Client) CreateItem(ctx context.Context, payload ItemPayload) (domain.Item, error) {
	var item domain.Item
	err := c.call(ctx, http.MethodPost, "/items", payload, &item)
	return item, err
}

// UpdateItem updates an existing listing.
func (c *Client) UpdateItem(ctx context.Context, id string, payload ItemPayload) (domain.Item, error) {
	var item domain.Item
	err := c.call(ctx, http.MethodPatch, "/items/"+url.PathEscape(id), payload, &item)
	return item, err
}

// BookingRequest is the payload for requesting a booking.
type BookingRequest struct {
	ItemID    string  `json:"item_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Notes     *string `json:"notes"`
}

// CreateBooking requests a booking for a date range.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (domain.Booking, error) {
	var booking domain.Booking
	err := c.call(ctx, http.MethodPost, "/bookings", req, &booking)
	return booking, err
}

// RenterBookings fetches the caller's bookings as a renter.
func (c *Client) RenterBookings(ctx context.Context) (domain.BookingList, error) {
	var list domain.BookingList
	err := c.call(ctx, http.MethodGet, "/bookings/me/renter", nil, &list)
	return list, err
}

// OwnerBookings fetches bookings against the caller's items.
func (c *Client) OwnerBookings(ctx context.Context) (domain.BookingList, error) {
	var list domain.BookingList
	err := c.call(ctx, http.MethodGet, "/bookings/me/owner", nil, &list)
	return list, err
}

// UpdateBookingStatus requests a status transition. The target status rides
// in a query parameter for wire compatibility with the deployed service;
// the service is the sole authority on transition legality.
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	path := fmt.Sprintf("/bookings/%s/status?new_status=%s",
		url.PathEscape(id), url.QueryEscape(string(status)))
	return c.call(ctx, http.MethodPatch, path, nil, nil)
}

// Conversations fetches the flat recent-message feed the messaging index
// groups client-side.
func (c *Client) Conversations(ctx context.Context, limit int) (domain.MessageList, error) {
	path := "/chat/conversations"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var list domain.MessageList
	err := c.call(ctx, http.MethodGet, path, nil, &list)
	return list, err
}

// ItemReviews fetches the reviews for an item.
func (c *Client) ItemReviews(ctx context.Context, itemID string) (domain.ReviewList, error) {
	var list domain.ReviewList
	err := c.call(ctx, http.MethodGet, "/reviews/items/"+url.PathEscape(itemID), nil, &list)
	return list, err
}

// ReviewRequest is the payload for submitting a review.
type ReviewRequest struct {
	ItemID  string  `json:"item_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// CreateReview submits a review for an item.
func (c *Client) CreateReview(ctx context.Context, req ReviewRequest) (domain.Review, error) {
	var review domain.Review
	err := c.call(ctx, http.MethodPost, "/reviews", req, &review)
	return review, err
}

// call performs a request and decodes the response into out when non-nil.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(raw, out)
}

func decode(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Message: "decode response: " + err.Error()}
	}
	return nil
}
