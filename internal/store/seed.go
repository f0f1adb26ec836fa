package store

import (
	"fmt"
	"time"

	"carelink-api/internal/model"
)

type demoUser struct {
	id, name, email, password string
	profile                   model.Profile
}

func demoDirectory() []demoUser {
	return []demoUser{
		{"doc-1", "Dr. Amara Okafor", "amara.okafor@carelink.dev", "doctor123", &model.DoctorProfile{
			Specialization: "Cardiology",
			Experience:     12,
			Availability:   []string{"09:00 AM", "10:30 AM", "02:00 PM", "04:00 PM"},
		}},
		{"doc-2", "Dr. Lucas Brandt", "lucas.brandt@carelink.dev", "doctor123", &model.DoctorProfile{
			Specialization: "General Practice",
			Experience:     7,
			Availability:   []string{"08:00", "11:00", "13:30", "17:00"},
		}},
		{"doc-3", "Dr. Mei Tanaka", "mei.tanaka@carelink.dev", "doctor123", &model.DoctorProfile{
			Specialization: "Endocrinology",
			Experience:     9,
			Availability:   []string{"9:15AM", "12:45 PM", "15:00"},
		}},
		{"pat-1", "Jordan Ellis", "patient@carelink.dev", "patient123", &model.PatientProfile{
			DateOfBirth: model.Date{Year: 1988, Month: time.April, Day: 17},
			Phone:       "+1-555-0100",
			BloodType:   "O+",
		}},
		{"pha-1", "Sam Rivera", "pharmacist@carelink.dev", "pharma123", &model.PharmacistProfile{
			PharmacyName:  "Northside Pharmacy",
			LicenseNumber: "PH-20931",
		}},
	}
}

// DemoUsers builds the seed directory, hashing each demo password with hash.
func DemoUsers(hash func(string) (string, error)) ([]model.User, error) {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	dir := demoDirectory()
	out := make([]model.User, 0, len(dir))
	for _, d := range dir {
		h, err := hash(d.password)
		if err != nil {
			return nil, fmt.Errorf("hash demo password for %s: %w", d.email, err)
		}
		out = append(out, model.User{
			ID:           d.id,
			Name:         d.name,
			Email:        d.email,
			PasswordHash: h,
			Profile:      d.profile,
			CreatedAt:    created,
		})
	}
	return out, nil
}
