// Package healthlog derives badge statuses for vital readings and builds the
// filtered, sorted views of a patient's log.
package healthlog

import (
	"strconv"
	"strings"

	"carelink-api/internal/model"
)

// Auto asks ResolveStatus to run the classifier instead of taking a manual pick.
const Auto = "auto"

type rule struct {
	match    []string
	classify func(value string) model.VitalStatus
}

// order matters: "blood pressure" and "blood sugar" both contain "blood"
var rules = []rule{
	{[]string{"blood pressure"}, bloodPressure},
	{[]string{"heart"}, threshold(func(v float64) model.VitalStatus {
		switch {
		case v > 100:
			return model.VitalHigh
		case v < 50:
			return model.VitalLow
		}
		return model.VitalNormal
	})},
	{[]string{"temperature", "temp"}, threshold(func(v float64) model.VitalStatus {
		if v >= 100.4 {
			return model.VitalHigh
		}
		return model.VitalNormal
	})},
	{[]string{"blood sugar", "glucose"}, threshold(func(v float64) model.VitalStatus {
		switch {
		case v >= 126:
			return model.VitalHigh
		case v < 70:
			return model.VitalLow
		}
		return model.VitalNormal
	})},
}

// Classify maps a reading to normal/high/low/unknown using fixed per-type
// thresholds. Missing type or value yields normal.
func Classify(vitalType, value string) model.VitalStatus {
	vitalType = strings.ToLower(strings.TrimSpace(vitalType))
	value = strings.TrimSpace(value)
	if vitalType == "" || value == "" {
		return model.VitalNormal
	}
	for _, r := range rules {
		for _, m := range r.match {
			if strings.Contains(vitalType, m) {
				return r.classify(value)
			}
		}
	}
	return model.VitalNormal
}

// ResolveStatus honours an explicit status pick and re-runs Classify for
// "auto", empty, or anything outside the enumeration.
func ResolveStatus(selection, vitalType, value string) model.VitalStatus {
	switch s := model.VitalStatus(strings.ToLower(strings.TrimSpace(selection))); s {
	case model.VitalNormal, model.VitalHigh, model.VitalLow, model.VitalUnknown:
		return s
	}
	return Classify(vitalType, value)
}

func bloodPressure(value string) model.VitalStatus {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return model.VitalUnknown
	}
	sys, ok1 := leadingInt(parts[0])
	dia, ok2 := leadingInt(parts[1])
	if !ok1 || !ok2 {
		return model.VitalUnknown
	}
	switch {
	case sys >= 140 || dia >= 90:
		return model.VitalHigh
	case sys <= 90 || dia <= 60:
		return model.VitalLow
	}
	return model.VitalNormal
}

func threshold(f func(float64) model.VitalStatus) func(string) model.VitalStatus {
	return func(value string) model.VitalStatus {
		v, ok := numeric(value)
		if !ok {
			return model.VitalUnknown
		}
		return f(v)
	}
}

// numeric strips everything but digits and '.' and parses the longest
// number at the front of what is left, so "98.6 °F", "110bpm" and
// "98.6 F." all read.
func numeric(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		if j := strings.IndexByte(digits[i+1:], '.'); j >= 0 {
			digits = digits[:i+1+j]
		}
	}
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, false
	}
	return v, true
}
