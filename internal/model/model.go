package model

import "time"

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusRejected  AppointmentStatus = "Rejected"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Valid reports whether s is one of the four lifecycle states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Open reports whether the appointment still holds its slot.
func (s AppointmentStatus) Open() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Appointment struct {
	ID         string            `json:"id"`
	PatientID  string            `json:"patientId"`
	ProviderID string            `json:"providerId"`
	Date       Date              `json:"date"`
	Time       string            `json:"time"`
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// Provider is the bookable view of a doctor.
type Provider struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Availability   []string `json:"availability"`
}

type VitalStatus string

const (
	VitalNormal  VitalStatus = "normal"
	VitalHigh    VitalStatus = "high"
	VitalLow     VitalStatus = "low"
	VitalUnknown VitalStatus = "unknown"
)

type Vital struct {
	ID        string      `json:"id"`
	PatientID string      `json:"patientId"`
	Date      Date        `json:"date"`
	Type      string      `json:"type"`
	Value     string      `json:"value"`
	Unit      string      `json:"unit"`
	Status    VitalStatus `json:"status"`
}

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

func (s Severity) Valid() bool {
	return s == SeverityMild || s == SeverityModerate || s == SeveritySevere
}

type Symptom struct {
	ID        string   `json:"id"`
	PatientID string   `json:"patientId"`
	Date      Date     `json:"date"`
	Name      string   `json:"symptom"`
	Severity  Severity `json:"severity"`
	Notes     string   `json:"notes,omitempty"`
}
