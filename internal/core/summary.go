package core

import (
	"sort"
	"time"
)

// MonthSummary is the cashflow for one calendar month.
type MonthSummary struct {
	Month   string // YYYY-MM
	Income  Money
	Expense Money // negative or zero
	Net     Money
}

// CategoryTotal is an aggregated amount under one category label.
type CategoryTotal struct {
	Label string
	Total Money
}

// SummarizeMonths computes per-month income/expense/net over an in-memory
// transaction window, newest month first, covering the last `months` months
// ending at now. Used as the fallback when the storage aggregate is
// unavailable; months without transactions still appear with zero totals.
func SummarizeMonths(txns []Transaction, months int, now time.Time) []MonthSummary {
	if months <= 0 {
		months = 12
	}

	byMonth := make(map[string]*MonthSummary)
	out := make([]MonthSummary, 0, months)
	for i := 0; i < months; i++ {
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		key := d.Format("2006-01")
		out = append(out, MonthSummary{Month: key})
		byMonth[key] = &out[len(out)-1]
	}

	for _, t := range txns {
		s, ok := byMonth[t.Date.MonthKey()]
		if !ok {
			continue
		}
		if t.Amount.Cents >= 0 {
			s.Income = s.Income.Add(t.Amount)
		} else {
			s.Expense = s.Expense.Add(t.Amount)
		}
		s.Net = s.Net.Add(t.Amount)
	}
	return out
}

// TopCategoriesForMonth ranks expense categories for one month by spend
// magnitude, largest first, bounded to limit entries. Income rows are
// excluded; uncategorized spending shows under UncategorizedLabel.
func TopCategoriesForMonth(txns []Transaction, categories []Category, monthKey string, limit int) []CategoryTotal {
	if limit <= 0 {
		limit = 8
	}

	totals := make(map[string]int64)
	order := make([]string, 0)
	for _, t := range txns {
		if t.Date.MonthKey() != monthKey || t.Amount.Cents >= 0 {
			continue
		}
		label := CategoryLabel(t, categories)
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] += -t.Amount.Cents
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, label := range order {
		out = append(out, CategoryTotal{Label: label, Total: Money{Cents: totals[label]}})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.Cents > out[j].Total.Cents
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
