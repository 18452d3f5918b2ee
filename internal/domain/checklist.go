package domain

import "strings"

// CustomItemPrefix marks checklist items added by the user. Only these items
// may be removed; template items can only be toggled.
const CustomItemPrefix = "custom-"

// ChecklistItem is one line of the trip-prep checklist.
type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// IsCustom reports whether the item was added by the user.
func (i ChecklistItem) IsCustom() bool {
	return strings.HasPrefix(i.ID, CustomItemPrefix)
}

// Checklist maps a category name to its ordered items.
type Checklist map[string][]ChecklistItem

// Clone returns a deep copy of c.
func (c Checklist) Clone() Checklist {
	out := make(Checklist, len(c))
	for k, items := range c {
		out[k] = append([]ChecklistItem(nil), items...)
	}
	return out
}

// ChecklistProgress counts checked items.
type ChecklistProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
