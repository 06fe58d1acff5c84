package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/session"
)

func TestLoginThenMe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.com", creds["email"])
		assert.Equal(t, "secret123", creds["password"])
		w.Write([]byte(`{"access_token":"tok-abc","refresh_token":"tok-ref","token_type":"bearer"}`))
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"u1","email":"a@b.com","role":"RENTER"}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := session.NewFileStore(t.TempDir())
	client := New(server.URL, store, 5*time.Second)

	pair, err := client.Login(context.Background(), "a@b.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", pair.AccessToken)

	// The fresh token is usable before it lands in the session store.
	user, err := client.MeWithToken(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, domain.RoleRenter, user.Role)
}

func TestListItemsQuery(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"total":1,"items":[{"id":"i1","owner_id":"o1","title":"Drill","daily_price":19.99,"security_deposit":0}]}`))
	})

	list, err := client.ListItems(context.Background(), ListItemsParams{Limit: 50, OwnerID: "o1"})
	require.NoError(t, err)
	assert.Equal(t, "limit=50&owner_id=o1", gotQuery)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Drill", list.Items[0].Title)
	assert.Equal(t, "$19.99", list.Items[0].DailyPrice.Display())
}

func TestUpdateBookingStatusWireShape(t *testing.T) {
	var gotMethod, gotPath, gotQuery string
	var gotBody []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	})

	err := client.UpdateBookingStatus(context.Background(), "b1", domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/bookings/b1/status", gotPath)
	assert.Equal(t, "new_status=APPROVED", gotQuery)
	assert.Empty(t, gotBody)
}

func TestItemPayloadSendsExplicitNulls(t *testing.T) {
	var gotBody map[string]json.RawMessage
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id":"i1"}`))
	})

	_, err := client.CreateItem(context.Background(), ItemPayload{
		Title:      "Drill",
		DailyPrice: 19.99,
	})
	require.NoError(t, err)

	assert.Equal(t, json.RawMessage(`19.99`), gotBody["daily_price"])
	assert.Equal(t, json.RawMessage(`0`), gotBody["security_deposit"])
	assert.Equal(t, json.RawMessage(`null`), gotBody["description"])
	assert.Equal(t, json.RawMessage(`null`), gotBody["location_text"])
}

func TestRegisterPayload(t *testing.T) {
	var gotBody map[string]json.RawMessage
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})

	err := client.Register(context.Background(), RegisterRequest{
		Email:    "a@b.com",
		Password: "secret123",
		Role:     domain.RoleOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`null`), gotBody["full_name"])
	assert.Equal(t, json.RawMessage(`"OWNER"`), gotBody["role"])
}

func TestConversationsAndReviews(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /chat/conversations", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"total":1,"messages":[{"id":"m1","sender_id":"u2","receiver_id":"u1","conversation_id":"c1","content":"hi"}]}`))
	})
	mux.HandleFunc("GET /reviews/items/i1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":1,"reviews":[{"id":"r1","item_id":"i1","author_id":"u1","rating":5,"comment":"Great!"}]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client := New(server.URL, session.NewFileStore(t.TempDir()), 5*time.Second)

	msgs, err := client.Conversations(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, msgs.Messages, 1)
	assert.Equal(t, "c1", msgs.Messages[0].ConversationID)

	reviews, err := client.ItemReviews(context.Background(), "i1")
	require.NoError(t, err)
	require.Len(t, reviews.Reviews, 1)
	assert.Equal(t, 5, reviews.Reviews[0].Rating)
}
