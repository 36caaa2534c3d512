// Package memory implementa os contratos de repositório em memória, para testes
// de use case. Transações são simuladas com snapshot e restauração.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-queue/internal/domain/income"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type state struct {
	barbers  map[uint]models.Barber
	services map[uint]models.Service
	clients  map[uint]models.Client
	bookings map[uint]models.Booking
	incomes  map[uint]models.Income
}

func (s state) clone() state {
	return state{
		barbers:  cloneMap(s.barbers),
		services: cloneMap(s.services),
		clients:  cloneMap(s.clients),
		bookings: cloneMap(s.bookings),
		incomes:  cloneMap(s.incomes),
	}
}

func cloneMap[T any](m map[uint]T) map[uint]T {
	out := make(map[uint]T, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type Repo struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
	seq   uint
	data  state
}

func New() *Repo {
	return &Repo{
		locks: make(map[uint]*sync.Mutex),
		data: state{
			barbers:  make(map[uint]models.Barber),
			services: make(map[uint]models.Service),
			clients:  make(map[uint]models.Client),
			bookings: make(map[uint]models.Booking),
			incomes:  make(map[uint]models.Income),
		},
	}
}

func (r *Repo) nextID() uint {
	r.seq++
	return r.seq
}

// ======================================================
// SEED / INSPECTION
// ======================================================

func (r *Repo) AddBarber(b models.Barber) models.Barber {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == 0 {
		b.ID = r.nextID()
	}
	r.data.barbers[b.ID] = b
	return b
}

func (r *Repo) AddService(s models.Service) models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID()
	r.data.services[s.ID] = s
	return s
}

func (r *Repo) AddClient(c models.Client) models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID()
	r.data.clients[c.ID] = c
	return c
}

func (r *Repo) AddBooking(b models.Booking) models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID()
	b.Client, b.Service, b.Barber = nil, nil, nil
	r.data.bookings[b.ID] = b
	return b
}

func (r *Repo) Booking(id uint) models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data.bookings[id]
}

func (r *Repo) Bookings() []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedValues(r.data.bookings)
}

func (r *Repo) Incomes() []models.Income {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedValues(r.data.incomes)
}

func (r *Repo) Clients() []models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedValues(r.data.clients)
}

func sortedValues[T any](m map[uint]T) []T {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

// ======================================================
// TRANSACTION
// ======================================================

func (r *Repo) WithBarberLock(
	ctx context.Context,
	barberID uint,
	fn func(tx booking.Repository) error,
) error {

	r.mu.Lock()
	if _, ok := r.data.barbers[barberID]; !ok {
		r.mu.Unlock()
		return booking.ErrBarberNotFound
	}
	l, ok := r.locks[barberID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[barberID] = l
	}
	r.mu.Unlock()

	l.Lock()
	defer l.Unlock()

	r.mu.Lock()
	snapshot := r.data.clone()
	r.mu.Unlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.data = snapshot
		r.mu.Unlock()
		return err
	}
	return nil
}

// ======================================================
// BARBER
// ======================================================

func (r *Repo) GetBarber(_ context.Context, barberID uint) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.data.barbers[barberID]
	if !ok {
		return nil, booking.ErrBarberNotFound
	}
	return &b, nil
}

func (r *Repo) GetBarberByUsername(_ context.Context, username string) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.data.barbers {
		if b.Username == username {
			return &b, nil
		}
	}
	return nil, booking.ErrBarberNotFound
}

func (r *Repo) ListBarbers(_ context.Context) ([]models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedValues(r.data.barbers), nil
}

func (r *Repo) UpdateBarber(_ context.Context, b *models.Barber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.data.barbers[b.ID]
	if !ok {
		return booking.ErrBarberNotFound
	}
	cur.WorkStartTime = b.WorkStartTime
	cur.WorkEndTime = b.WorkEndTime
	cur.SMSNotificationsEnabled = b.SMSNotificationsEnabled
	cur.Timezone = b.Timezone
	r.data.barbers[b.ID] = cur
	return nil
}

// ======================================================
// SERVICE
// ======================================================

func (r *Repo) GetService(_ context.Context, barberID uint, serviceID uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.data.services[serviceID]
	if !ok || s.BarberID != barberID {
		return nil, booking.ErrServiceNotFound
	}
	return &s, nil
}

func (r *Repo) ListServices(_ context.Context, barberID uint) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Service{}
	for _, s := range sortedValues(r.data.services) {
		if s.BarberID == barberID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repo) ServiceNameTaken(_ context.Context, barberID uint, name string, exceptID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.data.services {
		if s.BarberID == barberID && s.Name == name && s.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repo) CreateService(ctx context.Context, s *models.Service) error {
	if taken, _ := r.ServiceNameTaken(ctx, s.BarberID, s.Name, 0); taken {
		return catalog.ErrDuplicateServiceName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID()
	r.data.services[s.ID] = *s
	return nil
}

func (r *Repo) UpdateService(ctx context.Context, s *models.Service) error {
	if taken, _ := r.ServiceNameTaken(ctx, s.BarberID, s.Name, s.ID); taken {
		return catalog.ErrDuplicateServiceName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data.services[s.ID] = *s
	return nil
}

func (r *Repo) DeleteService(_ context.Context, barberID uint, serviceID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.data.services[serviceID]
	if !ok || s.BarberID != barberID {
		return booking.ErrServiceNotFound
	}

	for id, b := range r.data.bookings {
		if b.ServiceID != nil && *b.ServiceID == serviceID {
			b.ServiceID = nil
			r.data.bookings[id] = b
		}
	}
	for id, in := range r.data.incomes {
		if in.ServiceID != nil && *in.ServiceID == serviceID {
			in.ServiceID = nil
			r.data.incomes[id] = in
		}
	}
	delete(r.data.services, serviceID)
	return nil
}

// ======================================================
// CLIENT
// ======================================================

func (r *Repo) GetClient(_ context.Context, barberID uint, clientID uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.data.clients[clientID]
	if !ok || c.BarberID != barberID {
		return nil, booking.ErrClientNotFound
	}
	return &c, nil
}

func (r *Repo) GetOrCreateClient(
	_ context.Context,
	barberID uint,
	name string,
	surname string,
	phone string,
) (*models.Client, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.data.clients {
		if c.BarberID == barberID && c.Phone == phone {
			return &c, nil
		}
	}

	c := models.Client{
		ID:       r.nextID(),
		BarberID: barberID,
		Name:     name,
		Surname:  surname,
		Phone:    phone,
	}
	r.data.clients[c.ID] = c
	return &c, nil
}

func (r *Repo) ListClients(_ context.Context, barberID uint, query string) ([]models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q := strings.ToLower(query)
	out := []models.Client{}
	for _, c := range sortedValues(r.data.clients) {
		if c.BarberID != barberID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Surname), q) &&
			!strings.Contains(c.Phone, q) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repo) PhoneTaken(_ context.Context, barberID uint, phone string, exceptID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.data.clients {
		if c.BarberID == barberID && c.Phone == phone && c.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repo) CreateClient(ctx context.Context, c *models.Client) error {
	if taken, _ := r.PhoneTaken(ctx, c.BarberID, c.Phone, 0); taken {
		return catalog.ErrDuplicatePhone
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID()
	r.data.clients[c.ID] = *c
	return nil
}

func (r *Repo) UpdateClient(ctx context.Context, c *models.Client) error {
	if taken, _ := r.PhoneTaken(ctx, c.BarberID, c.Phone, c.ID); taken {
		return catalog.ErrDuplicatePhone
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data.clients[c.ID] = *c
	return nil
}

func (r *Repo) DeleteClient(_ context.Context, barberID uint, clientID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.data.clients[clientID]
	if !ok || c.BarberID != barberID {
		return booking.ErrClientNotFound
	}

	for id, b := range r.data.bookings {
		if b.ClientID != nil && *b.ClientID == clientID {
			b.ClientID = nil
			r.data.bookings[id] = b
		}
	}
	for id, in := range r.data.incomes {
		if in.ClientID != nil && *in.ClientID == clientID {
			in.ClientID = nil
			r.data.incomes[id] = in
		}
	}
	delete(r.data.clients, clientID)
	return nil
}

// ======================================================
// BOOKING
// ======================================================

// withRelations simula os Preload do gorm. Chamar com mu travado.
func (r *Repo) withRelations(b models.Booking) models.Booking {
	if b.ClientID != nil {
		if c, ok := r.data.clients[*b.ClientID]; ok {
			b.Client = &c
		}
	}
	if b.ServiceID != nil {
		if s, ok := r.data.services[*b.ServiceID]; ok {
			b.Service = &s
		}
	}
	if barber, ok := r.data.barbers[b.BarberID]; ok {
		b.Barber = &barber
	}
	return b
}

func stripRelations(b models.Booking) models.Booking {
	b.Client, b.Service, b.Barber = nil, nil, nil
	return b
}

func (r *Repo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.CancellationToken != nil {
		for _, other := range r.data.bookings {
			if other.CancellationToken != nil && *other.CancellationToken == *b.CancellationToken {
				return booking.ErrInvalidState
			}
		}
	}

	b.ID = r.nextID()
	r.data.bookings[b.ID] = stripRelations(*b)
	return nil
}

func (r *Repo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data.bookings[b.ID]; !ok {
		return booking.ErrBookingNotFound
	}
	r.data.bookings[b.ID] = stripRelations(*b)
	return nil
}

func (r *Repo) GetBooking(_ context.Context, barberID uint, bookingID uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.data.bookings[bookingID]
	if !ok || b.BarberID != barberID {
		return nil, booking.ErrBookingNotFound
	}
	b = r.withRelations(b)
	return &b, nil
}

func (r *Repo) GetBookingByToken(_ context.Context, token string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.data.bookings {
		if b.CancellationToken != nil && *b.CancellationToken == token {
			b = r.withRelations(b)
			return &b, nil
		}
	}
	return nil, booking.ErrBookingNotFound
}

func (r *Repo) ListWaiting(_ context.Context, barberID uint) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range sortedValues(r.data.bookings) {
		if b.BarberID == barberID && b.Status == string(booking.StatusWaiting) {
			out = append(out, r.withRelations(b))
		}
	}
	booking.SortQueue(out)
	return out, nil
}

func sameDay(b models.Booking, date time.Time) bool {
	return b.AppointmentDate != nil && booking.Day(*b.AppointmentDate).Equal(booking.Day(date))
}

func byAppointmentTime(list []models.Booking) {
	sort.SliceStable(list, func(i, j int) bool {
		ti, tj := "", ""
		if list[i].AppointmentTime != nil {
			ti = *list[i].AppointmentTime
		}
		if list[j].AppointmentTime != nil {
			tj = *list[j].AppointmentTime
		}
		if ti != tj {
			return ti < tj
		}
		return list[i].ID < list[j].ID
	})
}

func (r *Repo) ListDue(_ context.Context, barberID uint, date time.Time, clock string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.data.bookings {
		status := booking.Status(b.Status)
		if b.BarberID != barberID || (status != booking.StatusPending && status != booking.StatusConfirmed) {
			continue
		}
		if !sameDay(b, date) || b.AppointmentTime == nil || *b.AppointmentTime > clock {
			continue
		}
		out = append(out, b)
	}
	byAppointmentTime(out)
	return out, nil
}

func (r *Repo) ListBookingsForDate(
	_ context.Context,
	barberID uint,
	date time.Time,
	statuses []booking.Status,
) ([]models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[string(s)] = true
	}

	var out []models.Booking
	for _, b := range r.data.bookings {
		if b.BarberID != barberID || !sameDay(b, date) {
			continue
		}
		if len(allowed) > 0 && !allowed[b.Status] {
			continue
		}
		out = append(out, r.withRelations(b))
	}
	byAppointmentTime(out)
	return out, nil
}

// SetQueuePositions também verifica a unicidade que o índice parcial garante no postgres.
func (r *Repo) SetQueuePositions(_ context.Context, changed []*models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range changed {
		b, ok := r.data.bookings[c.ID]
		if !ok {
			return booking.ErrBookingNotFound
		}
		for _, other := range r.data.bookings {
			if other.ID != b.ID &&
				other.BarberID == b.BarberID &&
				other.Status == string(booking.StatusWaiting) &&
				b.Status == string(booking.StatusWaiting) &&
				other.QueuePosition == c.QueuePosition {
				return booking.ErrInvalidState
			}
		}
		b.QueuePosition = c.QueuePosition
		r.data.bookings[b.ID] = b
	}
	return nil
}

func (r *Repo) MarkConfirmationSent(_ context.Context, bookingID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.data.bookings[bookingID]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.SMSConfirmationSent = true
	r.data.bookings[bookingID] = b
	return nil
}

func (r *Repo) MarkReminderSent(_ context.Context, bookingID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.data.bookings[bookingID]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.SMSReminderSent = true
	r.data.bookings[bookingID] = b
	return nil
}

// ======================================================
// INCOME
// ======================================================

func (r *Repo) CreateIncome(_ context.Context, in *models.Income) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	in.ID = r.nextID()
	stored := *in
	stored.Client, stored.Service = nil, nil
	r.data.incomes[in.ID] = stored
	return nil
}

func (r *Repo) GetIncome(_ context.Context, barberID uint, incomeID uint) (*models.Income, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	in, ok := r.data.incomes[incomeID]
	if !ok || in.BarberID != barberID {
		return nil, income.ErrIncomeNotFound
	}
	return &in, nil
}

func (r *Repo) UpdateIncome(_ context.Context, in *models.Income) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data.incomes[in.ID]; !ok {
		return income.ErrIncomeNotFound
	}
	r.data.incomes[in.ID] = *in
	return nil
}

func (r *Repo) ListIncomeByDate(_ context.Context, barberID uint, date time.Time) ([]models.Income, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Income{}
	for _, in := range sortedValues(r.data.incomes) {
		if in.BarberID == barberID && booking.Day(in.Date).Equal(booking.Day(date)) {
			out = append(out, in)
		}
	}
	return out, nil
}

func (r *Repo) ListCredit(_ context.Context, barberID uint, paid *bool) ([]models.Income, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Income{}
	for _, in := range sortedValues(r.data.incomes) {
		if in.BarberID != barberID || in.PaymentMethod != string(booking.PaymentCredit) {
			continue
		}
		if paid != nil && in.CreditPaid != *paid {
			continue
		}
		out = append(out, in)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreditPaid != out[j].CreditPaid {
			return !out[i].CreditPaid
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

var (
	_ booking.Repository = (*Repo)(nil)
	_ catalog.Repository = (*Repo)(nil)
	_ income.Repository  = (*Repo)(nil)
)
