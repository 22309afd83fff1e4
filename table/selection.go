package table

import (
	"sort"

	"github.com/unicsmcr/hs_members/entities"
)

// Selection tracks which members are checked for bulk actions.
// An absent id is not selected.
type Selection map[entities.MemberID]bool

// Toggle returns a new selection with the flag of id inverted
func (s Selection) Toggle(id entities.MemberID) Selection {
	toggled := make(Selection, len(s)+1)
	for k, v := range s {
		toggled[k] = v
	}
	toggled[id] = !s[id]
	return toggled
}

// IsAllSelected reports whether visibleIDs is non-empty and every id in it is selected.
// Ids outside visibleIDs are irrelevant.
func (s Selection) IsAllSelected(visibleIDs []entities.MemberID) bool {
	if len(visibleIDs) == 0 {
		return false
	}
	for _, id := range visibleIDs {
		if !s[id] {
			return false
		}
	}
	return true
}

// IsAnySelected reports whether any id is selected, on any page
func (s Selection) IsAnySelected() bool {
	for _, selected := range s {
		if selected {
			return true
		}
	}
	return false
}

// IsSelected reports whether id is selected
func (s Selection) IsSelected(id entities.MemberID) bool {
	return s[id]
}

// SelectedIDs returns the selected ids in ascending order
func (s Selection) SelectedIDs() []entities.MemberID {
	ids := make([]entities.MemberID, 0, len(s))
	for id, selected := range s {
		if selected {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SelectAllVisible returns a selection with every visible id selected
func SelectAllVisible(visibleIDs []entities.MemberID) Selection {
	selection := make(Selection, len(visibleIDs))
	for _, id := range visibleIDs {
		selection[id] = true
	}
	return selection
}

// ClearAll returns an empty selection
func ClearAll() Selection {
	return Selection{}
}
