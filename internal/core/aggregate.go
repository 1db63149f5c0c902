package core

// UncategorizedLabel is the display label for transactions without a resolved
// category.
const UncategorizedLabel = "Uncategorized"

// CategoryGroup is a labeled slice of transactions sharing one category label.
type CategoryGroup struct {
	Label        string
	Transactions []Transaction
}

// GroupByAccount buckets a flat transaction list by owning account. Input
// order is preserved within each group; callers establish meaningful order
// before or after grouping.
func GroupByAccount(txns []Transaction) map[string][]Transaction {
	grouped := make(map[string][]Transaction)
	for _, t := range txns {
		grouped[t.AccountID] = append(grouped[t.AccountID], t)
	}
	return grouped
}

// CategoryLabel resolves a transaction's category reference to a display
// label of the form "<kind>: <name>". Missing or unresolved references map to
// UncategorizedLabel rather than an error.
func CategoryLabel(t Transaction, categories []Category) string {
	if t.CategoryID == "" {
		return UncategorizedLabel
	}
	for _, c := range categories {
		if c.ID == t.CategoryID {
			return string(c.Kind) + ": " + c.Name
		}
	}
	return UncategorizedLabel
}

// GroupByCategory buckets transactions under their resolved category labels.
// Groups appear in first-appearance order of their label in the input, so the
// result does not depend on the order categories were loaded in.
func GroupByCategory(txns []Transaction, categories []Category) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, t := range txns {
		label := CategoryLabel(t, categories)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, CategoryGroup{Label: label})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}
	return groups
}
