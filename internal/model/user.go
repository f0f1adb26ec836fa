package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type Role string

const (
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
	RolePharmacist Role = "pharmacist"
)

var ErrUnknownRole = errors.New("unknown role")

// Profile is the role-specific half of a User. Exactly one implementation
// exists per Role.
type Profile interface {
	Role() Role
}

type PatientProfile struct {
	DateOfBirth Date   `json:"dateOfBirth,omitzero"`
	Phone       string `json:"phone,omitempty"`
	BloodType   string `json:"bloodType,omitempty"`
}

type DoctorProfile struct {
	Specialization string   `json:"specialization"`
	Experience     int      `json:"experience,omitempty"`
	Availability   []string `json:"availability"`
}

type PharmacistProfile struct {
	PharmacyName  string `json:"pharmacyName"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
}

func (*PatientProfile) Role() Role    { return RolePatient }
func (*DoctorProfile) Role() Role     { return RoleDoctor }
func (*PharmacistProfile) Role() Role { return RolePharmacist }

// NewProfile returns an empty profile for role.
func NewProfile(role Role) (Profile, error) {
	switch role {
	case RolePatient:
		return &PatientProfile{}, nil
	case RoleDoctor:
		return &DoctorProfile{}, nil
	case RolePharmacist:
		return &PharmacistProfile{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Profile      Profile
	CreatedAt    time.Time
}

func (u *User) Role() Role {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Role()
}

// Provider projects a doctor onto the bookable provider view.
func (u *User) Provider() (Provider, bool) {
	d, ok := u.Profile.(*DoctorProfile)
	if !ok {
		return Provider{}, false
	}
	return Provider{
		ID:             u.ID,
		Name:           u.Name,
		Specialization: d.Specialization,
		Availability:   append([]string(nil), d.Availability...),
	}, true
}

type userJSON struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"passwordHash"`
	Role         Role            `json:"role"`
	Profile      json.RawMessage `json:"profile"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (u User) MarshalJSON() ([]byte, error) {
	if u.Profile == nil {
		return nil, fmt.Errorf("user %s: missing profile", u.ID)
	}
	raw, err := json.Marshal(u.Profile)
	if err != nil {
		return nil, err
	}
	return json.Marshal(userJSON{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Profile.Role(),
		Profile:      raw,
		CreatedAt:    u.CreatedAt,
	})
}

func (u *User) UnmarshalJSON(b []byte) error {
	var w userJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	p, err := NewProfile(w.Role)
	if err != nil {
		return err
	}
	if len(w.Profile) > 0 && string(w.Profile) != "null" {
		dec := json.NewDecoder(bytes.NewReader(w.Profile))
		dec.DisallowUnknownFields()
		if err := dec.Decode(p); err != nil {
			return fmt.Errorf("%s profile: %w", w.Role, err)
		}
	}
	*u = User{
		ID:           w.ID,
		Name:         w.Name,
		Email:        w.Email,
		PasswordHash: w.PasswordHash,
		Profile:      p,
		CreatedAt:    w.CreatedAt,
	}
	return nil
}
