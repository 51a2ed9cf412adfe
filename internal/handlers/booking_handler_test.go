package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventmarket/internal/helpers"
	"github.com/joshua-takyi/eventmarket/internal/models"
	"github.com/joshua-takyi/eventmarket/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore backs all four repo interfaces for handler tests.
type memStore struct {
	events   map[string]*models.Event
	bookings map[string]*models.Booking
	users    map[string]*models.User
	payments map[string]*models.Payment
}

func newMemStore() *memStore {
	return &memStore{
		events:   map[string]*models.Event{},
		bookings: map[string]*models.Booking{},
		users:    map[string]*models.User{},
		payments: map[string]*models.Payment{},
	}
}

func (m *memStore) CreateEvent(ctx context.Context, e *models.Event) (*models.Event, error) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	m.events[e.ID.Hex()] = e
	return e, nil
}

func (m *memStore) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	if e, ok := m.events[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) SaveEvent(ctx context.Context, e *models.Event) (*models.Event, error) {
	m.events[e.ID.Hex()] = e
	return e, nil
}

func (m *memStore) DeleteEvent(ctx context.Context, id string) error {
	delete(m.events, id)
	return nil
}

func (m *memStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range m.events {
		out = append(out, e)
	}
	return out, nil
}

func (m *memStore) SaveBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	m.bookings[b.ID.Hex()] = b
	return b, nil
}

func (m *memStore) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range m.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (m *memStore) ListBookingsByUser(ctx context.Context, userID string) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) ListBookingsByEvent(ctx context.Context, eventID string) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range m.bookings {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	m.users[u.ID] = u
	return u, nil
}

func (m *memStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	return m.users[id], nil
}

func (m *memStore) DeleteUser(ctx context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func (m *memStore) CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.payments[p.ID.Hex()] = p
	return p, nil
}

func (m *memStore) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, nil
}

func (m *memStore) ListPaymentsByUser(ctx context.Context, userID string) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range m.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newBookingRouter(t *testing.T, store *memStore, claims *helpers.EnhancedClaims) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	inventory := services.NewEventService(store, nil)
	payments := services.NewPaymentService(store)
	notifier := services.NewNotificationService(nil, logger)
	svc := services.NewBookingService(store, store, store, inventory, payments, notifier, logger)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set("user", claims)
		}
		c.Next()
	})
	r.POST("/bookings", CreateBooking(svc))
	r.GET("/bookings/:id", GetBooking(svc))
	r.PATCH("/bookings/:id/cancel", CancelBooking(svc))
	r.GET("/bookings/user/:user_id/upcoming", ListUserUpcomingBookings(svc))
	return r
}

func seedStore(t *testing.T, store *memStore) *models.Event {
	t.Helper()
	event, err := store.CreateEvent(context.Background(), &models.Event{
		Title:          "Tech Summit",
		EventDateTime:  time.Now().Add(72 * time.Hour),
		TicketPrice:    30,
		Capacity:       50,
		AvailableSeats: 50,
		BookingEnabled: true,
	})
	require.NoError(t, err)
	_, err = store.CreateUser(context.Background(), &models.User{
		ID:    "uid-1",
		Name:  "Kofi",
		Email: "kofi@example.com",
	})
	require.NoError(t, err)
	return event
}

func TestCreateBookingEndpoint(t *testing.T) {
	store := newMemStore()
	event := seedStore(t, store)
	router := newBookingRouter(t, store, &helpers.EnhancedClaims{UserID: "uid-1", Role: "USER"})

	body, _ := json.Marshal(map[string]interface{}{
		"event_id":        event.ID.Hex(),
		"number_of_seats": 2,
		"payment_method":  "CREDIT_CARD",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Booking successful", resp.Message)
}

func TestCreateBookingEndpoint_InsufficientSeats(t *testing.T) {
	store := newMemStore()
	event := seedStore(t, store)
	router := newBookingRouter(t, store, &helpers.EnhancedClaims{UserID: "uid-1"})

	body, _ := json.Marshal(map[string]interface{}{
		"event_id":        event.ID.Hex(),
		"number_of_seats": 500,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookingEndpoint_Unauthenticated(t *testing.T) {
	store := newMemStore()
	seedStore(t, store)
	router := newBookingRouter(t, store, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetBookingEndpoint_NotFound(t *testing.T) {
	store := newMemStore()
	seedStore(t, store)
	router := newBookingRouter(t, store, &helpers.EnhancedClaims{UserID: "uid-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/64b0c8f2e1a2b3c4d5e6f708", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelBookingEndpoint_ForbiddenForOtherUser(t *testing.T) {
	store := newMemStore()
	event := seedStore(t, store)
	owner := &helpers.EnhancedClaims{UserID: "uid-1"}
	router := newBookingRouter(t, store, owner)

	body, _ := json.Marshal(map[string]interface{}{
		"event_id":        event.ID.Hex(),
		"number_of_seats": 1,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var bookingID string
	for id := range store.bookings {
		bookingID = id
	}

	intruderRouter := newBookingRouter(t, store, &helpers.EnhancedClaims{UserID: "uid-other"})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingID+"/cancel", nil)
	intruderRouter.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListUserUpcomingBookingsEndpoint_OwnershipEnforced(t *testing.T) {
	store := newMemStore()
	seedStore(t, store)
	router := newBookingRouter(t, store, &helpers.EnhancedClaims{UserID: "uid-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/user/uid-other/upcoming", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
