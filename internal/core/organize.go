package core

// CategoryGroup is one bucket of the full grocery list.
type CategoryGroup struct {
	Category Category     `json:"category"`
	Lines    []DemandLine `json:"lines"`
}

// GroupByCategory buckets demand lines by shopping category in the
// fixed CategoryOrder. Empty categories are omitted; within a category,
// lines keep the order the consolidator produced.
func GroupByCategory(lines []DemandLine) []CategoryGroup {
	buckets := make(map[Category][]DemandLine)
	for _, line := range lines {
		buckets[line.Category] = append(buckets[line.Category], line)
	}

	groups := make([]CategoryGroup, 0, len(buckets))
	for _, cat := range CategoryOrder {
		if bucket, ok := buckets[cat]; ok {
			groups = append(groups, CategoryGroup{Category: cat, Lines: bucket})
		}
	}
	return groups
}

// AisleGroup is one store section of the shopping-list view.
type AisleGroup struct {
	Aisle Aisle        `json:"aisle"`
	Label string       `json:"label"`
	Lines []DemandLine `json:"lines"`
}

// GroupByAisle buckets the given lines by store section in the fixed
// walking order. Sections with no items are omitted. Callers pass the
// checked subset of the demand list, selected via SelectLines.
func GroupByAisle(lines []DemandLine) []AisleGroup {
	buckets := make(map[Aisle][]DemandLine)
	for _, line := range lines {
		aisle := AisleFor(line.Name)
		buckets[aisle] = append(buckets[aisle], line)
	}

	groups := make([]AisleGroup, 0, len(buckets))
	for _, aisle := range AisleOrder {
		if bucket, ok := buckets[aisle]; ok {
			groups = append(groups, AisleGroup{Aisle: aisle, Label: aisle.Label(), Lines: bucket})
		}
	}
	return groups
}

// SelectLines returns the subset of lines whose display name is in the
// checked set, preserving order. Lines absent from the set are dropped;
// names in the set with no matching line are ignored.
func SelectLines(lines []DemandLine, checked map[string]bool) []DemandLine {
	if len(checked) == 0 {
		return nil
	}
	var selected []DemandLine
	for _, line := range lines {
		if checked[line.Name] {
			selected = append(selected, line)
		}
	}
	return selected
}
