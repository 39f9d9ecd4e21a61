package memory

import (
	"context"
	"sort"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	store *Store
}

func NewReservationReadStore(store *Store) *ReservationReadStore {
	return &ReservationReadStore{store: store}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var view *queries.ReservationView
	err := s.store.read(ctx, func(st *state) error {
		rec, ok := st.reservations[id]
		if !ok {
			return infra.NotFound("reservation not found")
		}
		view = reservationView(st, rec)
		return nil
	})
	return view, err
}

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	views := make([]*queries.ReservationView, 0)
	err := s.store.read(ctx, func(st *state) error {
		for _, rec := range st.reservations {
			if rec.UserID == userID {
				views = append(views, reservationView(st, rec))
			}
		}
		return nil
	})
	sort.SliceStable(views, func(i, j int) bool { return views[i].Arrival.After(views[j].Arrival) })
	return views, err
}

func reservationView(st *state, rec reservationRecord) *queries.ReservationView {
	return &queries.ReservationView{
		ID:           rec.ID,
		UserID:       rec.UserID,
		LocationID:   rec.LocationID,
		LocationName: st.locations[rec.LocationID].Name,
		CarID:        rec.CarID,
		LicensePlate: st.cars[rec.CarID].LicensePlate,
		Arrival:      rec.Arrival,
		Exit:         rec.Exit,
		PriceCents:   rec.PriceCents,
		Status:       rec.Status,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

type PaymentReadStore struct {
	store *Store
}

func NewPaymentReadStore(store *Store) *PaymentReadStore {
	return &PaymentReadStore{store: store}
}

func (s *PaymentReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.PaymentView, error) {
	views := make([]*queries.PaymentView, 0)
	err := s.store.read(ctx, func(st *state) error {
		for _, rec := range st.payments {
			if rec.UserID != userID {
				continue
			}
			res := st.reservations[rec.ReservationID]
			views = append(views, &queries.PaymentView{
				ID:            rec.ID,
				ReservationID: rec.ReservationID,
				UserID:        rec.UserID,
				LocationID:    res.LocationID,
				LocationName:  st.locations[res.LocationID].Name,
				AmountCents:   rec.AmountCents,
				Method:        rec.Method,
				Status:        rec.Status,
				PaidAt:        rec.PaidAt,
				UpdatedAt:     rec.UpdatedAt,
			})
		}
		return nil
	})
	sort.SliceStable(views, func(i, j int) bool { return views[i].PaidAt.After(views[j].PaidAt) })
	return views, err
}

type LocationReadStore struct {
	store *Store
}

func NewLocationReadStore(store *Store) *LocationReadStore {
	return &LocationReadStore{store: store}
}

func (s *LocationReadStore) FindAll(ctx context.Context) ([]*queries.LocationView, error) {
	views := make([]*queries.LocationView, 0)
	err := s.store.read(ctx, func(st *state) error {
		for _, rec := range st.locations {
			views = append(views, locationView(rec))
		}
		return nil
	})
	sort.SliceStable(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, err
}

func (s *LocationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LocationView, error) {
	var view *queries.LocationView
	err := s.store.read(ctx, func(st *state) error {
		rec, ok := st.locations[id]
		if !ok {
			return infra.NotFound("location not found")
		}
		view = locationView(rec)
		return nil
	})
	return view, err
}

func locationView(rec locationRecord) *queries.LocationView {
	return &queries.LocationView{
		ID:             rec.ID,
		Name:           rec.Name,
		Address:        rec.Address,
		Latitude:       rec.Latitude,
		Longitude:      rec.Longitude,
		Capacity:       rec.Capacity,
		AvailableSpots: rec.AvailableSpots,
		UpdatedAt:      rec.UpdatedAt,
	}
}

type CarReadStore struct {
	store *Store
}

func NewCarReadStore(store *Store) *CarReadStore {
	return &CarReadStore{store: store}
}

func (s *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	var view *queries.CarView
	err := s.store.read(ctx, func(st *state) error {
		rec, ok := st.cars[id]
		if !ok {
			return infra.NotFound("car not found")
		}
		view = carView(rec)
		return nil
	})
	return view, err
}

func (s *CarReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.CarView, error) {
	views := make([]*queries.CarView, 0)
	err := s.store.read(ctx, func(st *state) error {
		for _, rec := range st.cars {
			if rec.UserID == userID {
				views = append(views, carView(rec))
			}
		}
		return nil
	})
	sort.SliceStable(views, func(i, j int) bool { return views[i].CreatedAt.Before(views[j].CreatedAt) })
	return views, err
}

func carView(rec carRecord) *queries.CarView {
	return &queries.CarView{
		ID:           rec.ID,
		UserID:       rec.UserID,
		Name:         rec.Name,
		LicensePlate: rec.LicensePlate,
		Make:         rec.Make,
		Model:        rec.Model,
		Year:         rec.Year,
		Color:        rec.Color,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

type RevenueReadStore struct {
	store *Store
}

func NewRevenueReadStore(store *Store) *RevenueReadStore {
	return &RevenueReadStore{store: store}
}

func (s *RevenueReadStore) MonthlyCompletedTotals(ctx context.Context, from, to time.Time, locationID *uuid.UUID) ([]queries.MonthlyRevenue, error) {
	byMonth := map[int]*queries.MonthlyRevenue{}
	err := s.store.read(ctx, func(st *state) error {
		for _, rec := range st.payments {
			if rec.Status != payment.StatusCompleted.String() {
				continue
			}
			if rec.PaidAt.Before(from) || !rec.PaidAt.Before(to) {
				continue
			}
			if locationID != nil && st.reservations[rec.ReservationID].LocationID != *locationID {
				continue
			}
			month := int(rec.PaidAt.UTC().Month())
			m, ok := byMonth[month]
			if !ok {
				m = &queries.MonthlyRevenue{Month: month}
				byMonth[month] = m
			}
			m.TotalCents += rec.AmountCents
			m.PaymentCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]queries.MonthlyRevenue, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// Outbox exposes queued notification jobs to the relay worker.
type Outbox struct {
	store *Store
}

func NewOutbox(store *Store) *Outbox {
	return &Outbox{store: store}
}

func (o *Outbox) ClaimDue(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]shared.NotificationJob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o.store.mu.Lock()
	defer o.store.mu.Unlock()

	jobs := make([]shared.NotificationJob, 0)
	for _, job := range o.store.state.jobs {
		if job.Status == shared.JobStatusPending && !job.RunAt.After(now) {
			jobs = append(jobs, job)
		}
	}
	sort.Slice(jobs, func(i, j int) bool {
		if !jobs[i].RunAt.Equal(jobs[j].RunAt) {
			return jobs[i].RunAt.Before(jobs[j].RunAt)
		}
		return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
	})
	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}
	for i := range jobs {
		jobs[i].RunAt = now.Add(lease)
		o.store.state.jobs[jobs[i].ID] = jobs[i]
	}
	return jobs, nil
}

func (o *Outbox) MarkSent(ctx context.Context, id uuid.UUID, _ time.Time) error {
	return o.update(ctx, id, func(job *shared.NotificationJob) {
		job.Status = shared.JobStatusSent
		job.Attempts++
		job.LastError = nil
	})
}

func (o *Outbox) MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt time.Time, giveUp bool) error {
	return o.update(ctx, id, func(job *shared.NotificationJob) {
		job.Attempts++
		job.LastError = &reason
		job.RunAt = retryAt
		if giveUp {
			job.Status = shared.JobStatusFailed
		}
	})
}

func (o *Outbox) update(ctx context.Context, id uuid.UUID, fn func(*shared.NotificationJob)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	o.store.mu.Lock()
	defer o.store.mu.Unlock()

	job, ok := o.store.state.jobs[id]
	if !ok {
		return infra.NotFound("notification job not found")
	}
	fn(&job)
	o.store.state.jobs[id] = job
	return nil
}
