package healthlog

import "carelink-api/internal/model"

// Summary describes the whole log regardless of any active filter.
type Summary struct {
	TotalEntries    int        `json:"totalEntries"`
	AbnormalVitals  int        `json:"abnormalVitals"`
	LastEntryDate   model.Date `json:"lastEntryDate,omitzero"`
	MostCommonVital string     `json:"mostCommonVital,omitempty"`
}

// Summarize must be given the unfiltered collections. Ties for the most
// common vital type go to the type seen first.
func Summarize(vitals []model.Vital, symptoms []model.Symptom) Summary {
	s := Summary{TotalEntries: len(vitals) + len(symptoms)}

	counts := make(map[string]int)
	var order []string
	for _, v := range vitals {
		if v.Status != model.VitalNormal {
			s.AbnormalVitals++
		}
		if v.Date.After(s.LastEntryDate) {
			s.LastEntryDate = v.Date
		}
		if _, seen := counts[v.Type]; !seen {
			order = append(order, v.Type)
		}
		counts[v.Type]++
	}
	for _, sym := range symptoms {
		if sym.Date.After(s.LastEntryDate) {
			s.LastEntryDate = sym.Date
		}
	}

	best := 0
	for _, t := range order {
		if counts[t] > best {
			best = counts[t]
			s.MostCommonVital = t
		}
	}
	return s
}
