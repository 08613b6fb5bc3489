package controller

// List item types.
type historyItem struct {
	expr   string
	bounds string
	output string
}

func (h historyItem) FilterValue() string {
	return h.expr
}
