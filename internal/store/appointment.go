package store

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"carelink-api/internal/availability"
	"carelink-api/internal/model"
)

// AddAppointment books a. The slot check and the insert happen under one
// lock, so two concurrent bookings of the same slot cannot both succeed.
func (s *Store) AddAppointment(ctx context.Context, a model.Appointment) (model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slotTaken(a.ProviderID, a.Date, a.Time) {
		return model.Appointment{}, ErrSlotTaken
	}
	now := s.now().UTC()
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = model.StatusPending
	}
	a.CreatedAt, a.UpdatedAt = now, now
	s.appointments = append(s.appointments, a)
	s.persist(ctx, KeyAppointments, s.appointments)
	return a, nil
}

func (s *Store) FindAppointment(id string) (model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Appointment{}, ErrNotFound
}

func (s *Store) AllAppointments() []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Appointment(nil), s.appointments...)
}

// AppointmentsFor returns the appointments a user takes part in, ordered by
// date then time of day.
func (s *Store) AppointmentsFor(userID string, role model.Role) []model.Appointment {
	s.mu.RLock()
	var out []model.Appointment
	for _, a := range s.appointments {
		switch {
		case role == model.RolePatient && a.PatientID == userID,
			role == model.RoleDoctor && a.ProviderID == userID:
			out = append(out, a)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Date.Compare(out[j].Date); c != 0 {
			return c < 0
		}
		return minuteOf(out[i].Time) < minuteOf(out[j].Time)
	})
	return out
}

// unparseable labels sort last
func minuteOf(label string) int {
	if m, ok := availability.ParseLabel(label); ok {
		return m
	}
	return 24 * 60
}

func (s *Store) SetAppointmentStatus(ctx context.Context, id string, status model.AppointmentStatus) (model.Appointment, error) {
	return s.UpdateAppointment(ctx, id, func(a *model.Appointment) error {
		a.Status = status
		return nil
	})
}

// UpdateAppointment applies mutate to the appointment under the store lock.
// An error from mutate aborts the update and is returned unchanged.
func (s *Store) UpdateAppointment(ctx context.Context, id string, mutate func(*model.Appointment) error) (model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		a := s.appointments[i]
		if err := mutate(&a); err != nil {
			return model.Appointment{}, err
		}
		a.UpdatedAt = s.now().UTC()
		s.appointments[i] = a
		s.persist(ctx, KeyAppointments, s.appointments)
		return a, nil
	}
	return model.Appointment{}, ErrNotFound
}

// SlotTaken reports whether an open appointment already holds the slot.
func (s *Store) SlotTaken(providerID string, date model.Date, label string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slotTaken(providerID, date, label)
}

func (s *Store) slotTaken(providerID string, date model.Date, label string) bool {
	for _, a := range s.appointments {
		if a.ProviderID == providerID && a.Date == date && a.Time == label && a.Status.Open() {
			return true
		}
	}
	return false
}
