package model

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 9}, d)
	assert.Equal(t, "2024-03-09", d.String())

	for _, bad := range []string{"", "2024-3-9", "09/03/2024", "2024-02-30", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateOfUsesLocation(t *testing.T) {
	// 23:30 UTC is already the next day in UTC+2
	utc := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
	east := utc.In(time.FixedZone("plus2", 2*3600))
	assert.Equal(t, "2024-05-01", DateOf(utc).String())
	assert.Equal(t, "2024-05-02", DateOf(east).String())
}

func TestDateOrderMatchesText(t *testing.T) {
	raw := []string{"2023-12-31", "2024-01-02", "2024-01-10", "2023-02-28", "2024-01-01"}
	dates := make([]Date, len(raw))
	for i, s := range raw {
		d, err := ParseDate(s)
		require.NoError(t, err)
		dates[i] = d
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	sort.Strings(raw)
	for i := range raw {
		assert.Equal(t, raw[i], dates[i].String())
	}
}

func TestDateJSON(t *testing.T) {
	v := Vital{ID: "v1", Date: Date{Year: 2024, Month: time.July, Day: 4}, Type: "Heart Rate", Value: "72", Status: VitalNormal}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"date":"2024-07-04"`)

	var back Vital
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, v, back)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"07/04/2024"}`), &back))
}

func TestUserJSONRoundTrip(t *testing.T) {
	users := []User{
		{ID: "p1", Name: "Pat", Email: "pat@example.com", PasswordHash: "h", Profile: &PatientProfile{Phone: "555", BloodType: "O+", DateOfBirth: Date{Year: 1990, Month: time.January, Day: 2}}},
		{ID: "d1", Name: "Dr. Who", Email: "doc@example.com", PasswordHash: "h", Profile: &DoctorProfile{Specialization: "Cardiology", Experience: 12, Availability: []string{"09:00 AM", "10:00 AM"}}},
		{ID: "r1", Name: "Rx", Email: "rx@example.com", PasswordHash: "h", Profile: &PharmacistProfile{PharmacyName: "Corner", LicenseNumber: "L-1"}},
	}
	b, err := json.Marshal(users)
	require.NoError(t, err)

	var back []User
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back, 3)
	for i := range users {
		assert.Equal(t, users[i].Role(), back[i].Role())
		assert.Equal(t, users[i].Profile, back[i].Profile)
	}
}

func TestUserJSONRejectsMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown role", `{"id":"x","role":"nurse","profile":{}}`},
		{"doctor fields on patient", `{"id":"x","role":"patient","profile":{"specialization":"ENT"}}`},
		{"pharmacy on doctor", `{"id":"x","role":"doctor","profile":{"pharmacyName":"A"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			assert.Error(t, json.Unmarshal([]byte(tt.raw), &u))
		})
	}
}

func TestUserMarshalWithoutProfile(t *testing.T) {
	_, err := json.Marshal(User{ID: "x"})
	assert.Error(t, err)
}

func TestProviderProjection(t *testing.T) {
	doc := User{ID: "d1", Name: "Dr. A", Profile: &DoctorProfile{Specialization: "GP", Availability: []string{"9:00 AM"}}}
	p, ok := doc.Provider()
	require.True(t, ok)
	assert.Equal(t, Provider{ID: "d1", Name: "Dr. A", Specialization: "GP", Availability: []string{"9:00 AM"}}, p)

	// mutating the projection must not touch the profile
	p.Availability[0] = "changed"
	assert.Equal(t, "9:00 AM", doc.Profile.(*DoctorProfile).Availability[0])

	pat := User{ID: "p1", Profile: &PatientProfile{}}
	_, ok = pat.Provider()
	assert.False(t, ok)
}

func TestAppointmentStatus(t *testing.T) {
	assert.True(t, StatusPending.Open())
	assert.True(t, StatusConfirmed.Open())
	assert.False(t, StatusRejected.Open())
	assert.False(t, StatusCancelled.Open())
	assert.False(t, AppointmentStatus("Done").Valid())
}
