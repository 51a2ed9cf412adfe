package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/joshua-takyi/eventmarket/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEventRepo keeps events in a map and hands out copies on reads, the way
// a document store hands out decoded snapshots. onGet runs after each read
// and lets tests sequence concurrent readers.
type fakeEventRepo struct {
	mu      sync.Mutex
	events  map[string]*models.Event
	saveErr error
	onGet   func(*models.Event)
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*models.Event{}}
}

func (f *fakeEventRepo) put(event *models.Event) *models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	cp := *event
	f.events[event.ID.Hex()] = &cp
	return event
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	return f.put(event), nil
}

func (f *fakeEventRepo) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	f.mu.Lock()
	stored, ok := f.events[id]
	var cp *models.Event
	if ok {
		c := *stored
		cp = &c
	}
	f.mu.Unlock()

	if cp != nil && f.onGet != nil {
		f.onGet(cp)
	}
	return cp, nil
}

func (f *fakeEventRepo) SaveEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return f.put(event), nil
}

func (f *fakeEventRepo) DeleteEvent(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) ListEvents(ctx context.Context) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Event, 0, len(f.events))
	for _, e := range f.events {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

// stored returns the persisted state of an event, bypassing onGet.
func (f *fakeEventRepo) stored(id string) *models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.events[id]; ok {
		cp := *e
		return &cp
	}
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	saveErr  error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingRepo) SaveBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	cp := *booking
	f.bookings[booking.ID.Hex()] = &cp
	return booking, nil
}

func (f *fakeBookingRepo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return f.filter(func(*models.Booking) bool { return true }), nil
}

func (f *fakeBookingRepo) ListBookingsByUser(ctx context.Context, userID string) ([]*models.Booking, error) {
	return f.filter(func(b *models.Booking) bool { return b.UserID == userID }), nil
}

func (f *fakeBookingRepo) ListBookingsByEvent(ctx context.Context, eventID string) ([]*models.Booking, error) {
	return f.filter(func(b *models.Booking) bool { return b.EventID == eventID }), nil
}

func (f *fakeBookingRepo) filter(keep func(*models.Booking) bool) []*models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Booking
	for _, b := range f.bookings {
		if keep(b) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	if phone, ok := fields["phone_number"].(string); ok {
		u.PhoneNumber = phone
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakePaymentRepo struct {
	mu        sync.Mutex
	payments  map[string]*models.Payment
	createErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*models.Payment{}}
}

func (f *fakePaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	cp := *payment
	f.payments[payment.ID.Hex()] = &cp
	return payment, nil
}

func (f *fakePaymentRepo) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.payments[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePaymentRepo) ListPaymentsByUser(ctx context.Context, userID string) ([]*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeSender records sends on a buffered channel so tests can wait for the
// asynchronous notification dispatch.
type fakeSender struct {
	sent chan sentMail
	err  error
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(chan sentMail, 8)}
}

func (f *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	f.sent <- sentMail{To: to, Subject: subject, Body: body}
	return f.err
}

// bookingFixture bundles the fakes behind a fully wired BookingService.
type bookingFixture struct {
	events   *fakeEventRepo
	bookings *fakeBookingRepo
	users    *fakeUserRepo
	payments *fakePaymentRepo
	sender   *fakeSender
	svc      *BookingService
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		events:   newFakeEventRepo(),
		bookings: newFakeBookingRepo(),
		users:    newFakeUserRepo(),
		payments: newFakePaymentRepo(),
		sender:   newFakeSender(),
	}
	logger := testLogger()
	inventory := NewEventService(f.events, nil)
	payments := NewPaymentService(f.payments)
	notifier := NewNotificationService(f.sender, logger)
	f.svc = NewBookingService(f.bookings, f.events, f.users, inventory, payments, notifier, logger)
	return f
}
