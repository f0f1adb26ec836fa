package store

import (
	"context"

	"github.com/google/uuid"

	"carelink-api/internal/model"
)

func (s *Store) AddVital(ctx context.Context, v model.Vital) model.Vital {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	s.vitals = append(s.vitals, v)
	s.persist(ctx, KeyVitals, s.vitals)
	return v
}

func (s *Store) FindVital(id string) (model.Vital, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vitals {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Vital{}, ErrNotFound
}

// UpdateVital replaces the entry with v's ID if it belongs to v.PatientID.
func (s *Store) UpdateVital(ctx context.Context, v model.Vital) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vitals {
		if s.vitals[i].ID == v.ID && s.vitals[i].PatientID == v.PatientID {
			s.vitals[i] = v
			s.persist(ctx, KeyVitals, s.vitals)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteVital(ctx context.Context, patientID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vitals {
		if s.vitals[i].ID == id && s.vitals[i].PatientID == patientID {
			s.vitals = append(s.vitals[:i], s.vitals[i+1:]...)
			s.persist(ctx, KeyVitals, s.vitals)
			return nil
		}
	}
	return ErrNotFound
}

// VitalsFor returns a patient's vitals in insertion order.
func (s *Store) VitalsFor(patientID string) []model.Vital {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Vital
	for _, v := range s.vitals {
		if v.PatientID == patientID {
			out = append(out, v)
		}
	}
	return out
}

func (s *Store) AddSymptom(ctx context.Context, sym model.Symptom) model.Symptom {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sym.ID == "" {
		sym.ID = uuid.New().String()
	}
	s.symptoms = append(s.symptoms, sym)
	s.persist(ctx, KeySymptoms, s.symptoms)
	return sym
}

func (s *Store) DeleteSymptom(ctx context.Context, patientID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.symptoms {
		if s.symptoms[i].ID == id && s.symptoms[i].PatientID == patientID {
			s.symptoms = append(s.symptoms[:i], s.symptoms[i+1:]...)
			s.persist(ctx, KeySymptoms, s.symptoms)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) SymptomsFor(patientID string) []model.Symptom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Symptom
	for _, sym := range s.symptoms {
		if sym.PatientID == patientID {
			out = append(out, sym)
		}
	}
	return out
}
