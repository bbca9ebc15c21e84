package navigation

// SubItemState selects the connector drawn to the left of a sub item.
type SubItemState string

const (
	SubItemIntermediateBeforeSelected SubItemState = "intermediate-before-selected"
	SubItemIntermediateSelected       SubItemState = "intermediate-selected"
	SubItemIntermediateAfterSelected  SubItemState = "intermediate-after-selected"
	SubItemLastSelected               SubItemState = "last-selected"
	SubItemLastNotSelected            SubItemState = "last-not-selected"
)

// SubItemAdornment returns the state of the sub item at index in a list of
// length entries where selectedIndex is highlighted. A negative selectedIndex
// means no sub item is selected.
func SubItemAdornment(index, length, selectedIndex int) SubItemState {
	if index == length-1 {
		if index == selectedIndex {
			return SubItemLastSelected
		}
		return SubItemLastNotSelected
	}
	switch {
	case selectedIndex < 0 || index > selectedIndex:
		return SubItemIntermediateAfterSelected
	case index == selectedIndex:
		return SubItemIntermediateSelected
	default:
		return SubItemIntermediateBeforeSelected
	}
}
