package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value tolerant of sloppy client input. Numeric
// strings are parsed and unparseable input decodes to 0; NaN, infinite,
// and negative values additionally count as 0 during aggregation, so bad
// data degrades to zero instead of poisoning totals.
type Amount float64

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

// Float returns the amount clamped for aggregation: NaN, infinite, and
// negative values count as 0.
func (a Amount) Float() float64 {
	v := float64(a)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Frequency describes how often a line item recurs.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyOnce      Frequency = "once"
)

// PerYear returns the annualization multiplier for the frequency.
// An unset frequency is treated as monthly; one-off items count once.
func (f Frequency) PerYear() float64 {
	switch f {
	case FrequencyDaily:
		return 365
	case FrequencyWeekly:
		return 52
	case FrequencyQuarterly:
		return 4
	case FrequencyYearly, FrequencyOnce:
		return 1
	default:
		return 12
	}
}

// Tag is the semantic classification of a line item. Rules match on tags,
// never on free-text category names; the category string is display-only.
type Tag string

const (
	TagNone          Tag = ""
	TagHousing       Tag = "housing"
	TagEmergencyFund Tag = "emergency_fund"
	TagSalary        Tag = "salary"
	TagDebtPayment   Tag = "debt_payment"
	TagOther         Tag = "other"
)

// InferTag maps a free-text category name to a semantic tag using
// case-insensitive substring matching. It runs once at data entry so the
// rule engine never has to scan category text itself.
func InferTag(category string) Tag {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "rent"), strings.Contains(c, "mortgage"), strings.Contains(c, "housing"):
		return TagHousing
	case strings.Contains(c, "emergency"):
		return TagEmergencyFund
	case strings.Contains(c, "salary"), strings.Contains(c, "wage"), strings.Contains(c, "payroll"):
		return TagSalary
	case strings.Contains(c, "loan"), strings.Contains(c, "credit card"), strings.Contains(c, "debt"):
		return TagDebtPayment
	default:
		return TagNone
	}
}

// FinancialLineItem is one entry in a collection of cash flow or balances.
type FinancialLineItem struct {
	Value       Amount    `json:"value"`
	Category    string    `json:"category"`
	Tag         Tag       `json:"tag,omitempty"`
	IsRecurring *bool     `json:"is_recurring,omitempty"`
	Frequency   Frequency `json:"frequency,omitempty"`
}

// Recurring reports whether the item repeats; unset defaults to true.
func (li FinancialLineItem) Recurring() bool {
	return li.IsRecurring == nil || *li.IsRecurring
}

// EffectiveTag returns the explicit tag, falling back to inference from
// the category name for items entered before tagging existed.
func (li FinancialLineItem) EffectiveTag() Tag {
	if li.Tag != TagNone {
		return li.Tag
	}
	return InferTag(li.Category)
}
