// Package store is the authoritative in-memory state of the service. Every
// mutation is written through to a storage.Storage on a best-effort basis.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"carelink-api/internal/metrics"
	"carelink-api/internal/model"
	"carelink-api/internal/storage"
)

// Fixed persistence keys.
const (
	KeyUsers        = "users"
	KeyAppointments = "appointments"
	KeyVitals       = "vitals"
	KeySymptoms     = "symptoms"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrSlotTaken      = errors.New("slot already booked")
)

type Store struct {
	mu      sync.RWMutex
	storage storage.Storage
	log     zerolog.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	users        []model.User
	appointments []model.Appointment
	vitals       []model.Vital
	symptoms     []model.Symptom
	refresh      map[string]*RefreshToken
}

func New(st storage.Storage, log zerolog.Logger, m *metrics.Metrics) *Store {
	return &Store{
		storage: st,
		log:     log,
		metrics: m,
		now:     time.Now,
		refresh: make(map[string]*RefreshToken),
	}
}

// Init loads every collection from storage. A missing or unreadable key
// leaves that collection empty; an empty directory is then filled with seed.
func (s *Store) Init(ctx context.Context, seed []model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	load(ctx, s, KeyUsers, &s.users)
	load(ctx, s, KeyAppointments, &s.appointments)
	load(ctx, s, KeyVitals, &s.vitals)
	load(ctx, s, KeySymptoms, &s.symptoms)

	if len(s.users) == 0 && len(seed) > 0 {
		s.users = append([]model.User(nil), seed...)
		s.persist(ctx, KeyUsers, s.users)
		s.log.Info().Int("users", len(seed)).Msg("seeded demo directory")
	}
}

func load[T any](ctx context.Context, s *Store, key string, dst *[]T) {
	*dst = nil
	b, err := s.storage.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("storage read failed")
		return
	}
	var v []T
	if err := json.Unmarshal(b, &v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stored value unreadable, starting empty")
		return
	}
	*dst = v
}

// persist writes one collection. Failures are logged and dropped; memory
// stays authoritative. Caller holds s.mu.
func (s *Store) persist(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err == nil {
		err = s.storage.Set(ctx, key, b)
	}
	if err != nil {
		s.metrics.ObserveStorageFailure(key)
		s.log.Warn().Err(err).Str("key", key).Msg("persist failed, keeping in-memory state")
	}
}
