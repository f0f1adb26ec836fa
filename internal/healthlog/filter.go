package healthlog

import (
	"sort"
	"strings"

	"carelink-api/internal/model"
)

// All disables the type or severity filter, same as an empty string.
const All = "all"

type VitalFilter struct {
	Type   string
	From   string
	To     string
	Search string
}

type SymptomFilter struct {
	Severity string
	From     string
	To       string
	Search   string
}

// FilterVitals applies f conjunctively and returns the matches newest first.
// The input slice is not modified.
func FilterVitals(vitals []model.Vital, f VitalFilter) []model.Vital {
	r := newDateRange(f.From, f.To)
	q := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.Vital, 0, len(vitals))
	for _, v := range vitals {
		if selected(f.Type) && v.Type != f.Type {
			continue
		}
		if !r.contains(v.Date) || !matches(q, v.Type, v.Value, v.Unit) {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// FilterSymptoms is FilterVitals for symptom entries; search covers name and notes.
func FilterSymptoms(symptoms []model.Symptom, f SymptomFilter) []model.Symptom {
	r := newDateRange(f.From, f.To)
	q := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.Symptom, 0, len(symptoms))
	for _, s := range symptoms {
		if selected(f.Severity) && string(s.Severity) != f.Severity {
			continue
		}
		if !r.contains(s.Date) || !matches(q, s.Name, s.Notes) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func selected(v string) bool {
	return v != "" && !strings.EqualFold(v, All)
}

func matches(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// dateRange is inclusive; a zero bound is open.
type dateRange struct {
	from, to model.Date
}

// newDateRange drops any bound that does not parse.
func newDateRange(from, to string) dateRange {
	var r dateRange
	if d, err := model.ParseDate(strings.TrimSpace(from)); err == nil {
		r.from = d
	}
	if d, err := model.ParseDate(strings.TrimSpace(to)); err == nil {
		r.to = d
	}
	return r
}

func (r dateRange) contains(d model.Date) bool {
	if !r.from.IsZero() && d.Before(r.from) {
		return false
	}
	if !r.to.IsZero() && d.After(r.to) {
		return false
	}
	return true
}
