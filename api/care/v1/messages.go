package carev1

import "encoding/json"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	// Profile is the role-specific object, decoded against Role.
	Profile json.RawMessage `json:"profile,omitempty"`
}

type RegisterResponse struct {
	UserId       string `json:"userId"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	UserId       string `json:"userId"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type Provider struct {
	Id             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Availability   []string `json:"availability"`
}

type ListProvidersRequest struct{}

type ListProvidersResponse struct {
	Providers []*Provider `json:"providers"`
}

type SlotOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ListAvailableSlotsRequest struct {
	ProviderId string `json:"providerId"`
	Date       string `json:"date"`
}

type ListAvailableSlotsResponse struct {
	Slots []*SlotOption `json:"slots"`
}

type Appointment struct {
	Id         string `json:"id"`
	PatientId  string `json:"patientId"`
	ProviderId string `json:"providerId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type CreateAppointmentRequest struct {
	ProviderId string `json:"providerId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Notes      string `json:"notes"`
}

type CreateAppointmentResponse struct {
	Appointment *Appointment `json:"appointment"`
}

type ListAppointmentsRequest struct {
	// Status filters by lifecycle state; empty returns all.
	Status string `json:"status"`
}

type ListAppointmentsResponse struct {
	Appointments []*Appointment `json:"appointments"`
}

type GetAppointmentRequest struct {
	Id string `json:"id"`
}

type GetAppointmentResponse struct {
	Appointment *Appointment `json:"appointment"`
}

type UpdateAppointmentStatusRequest struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type UpdateAppointmentStatusResponse struct {
	Appointment *Appointment `json:"appointment"`
}

type Vital struct {
	Id     string `json:"id"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	Value  string `json:"value"`
	Unit   string `json:"unit"`
	Status string `json:"status"`
}

type AddVitalRequest struct {
	Date   string `json:"date"`
	Type   string `json:"type"`
	Value  string `json:"value"`
	Unit   string `json:"unit"`
	Status string `json:"status"`
}

type AddVitalResponse struct {
	Vital *Vital `json:"vital"`
}

type UpdateVitalRequest struct {
	Id     string `json:"id"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	Value  string `json:"value"`
	Unit   string `json:"unit"`
	Status string `json:"status"`
}

type UpdateVitalResponse struct {
	Vital *Vital `json:"vital"`
}

type DeleteVitalRequest struct {
	Id string `json:"id"`
}

type DeleteVitalResponse struct{}

type ListVitalsRequest struct {
	Type   string `json:"type"`
	From   string `json:"from"`
	To     string `json:"to"`
	Search string `json:"search"`
}

type ListVitalsResponse struct {
	Vitals []*Vital `json:"vitals"`
}

type Symptom struct {
	Id       string `json:"id"`
	Date     string `json:"date"`
	Symptom  string `json:"symptom"`
	Severity string `json:"severity"`
	Notes    string `json:"notes,omitempty"`
}

type AddSymptomRequest struct {
	Date     string `json:"date"`
	Symptom  string `json:"symptom"`
	Severity string `json:"severity"`
	Notes    string `json:"notes"`
}

type AddSymptomResponse struct {
	Symptom *Symptom `json:"symptom"`
}

type DeleteSymptomRequest struct {
	Id string `json:"id"`
}

type DeleteSymptomResponse struct{}

type ListSymptomsRequest struct {
	Severity string `json:"severity"`
	From     string `json:"from"`
	To       string `json:"to"`
	Search   string `json:"search"`
}

type ListSymptomsResponse struct {
	Symptoms []*Symptom `json:"symptoms"`
}

type HealthSummaryRequest struct{}

type HealthSummaryResponse struct {
	TotalEntries    int32  `json:"totalEntries"`
	AbnormalVitals  int32  `json:"abnormalVitals"`
	LastEntryDate   string `json:"lastEntryDate"`
	MostCommonVital string `json:"mostCommonVital"`
}
