package piechart

import (
	"regexp"
)

// Entry is the number of items seen for one category.
type Entry struct {
	Category string
	Count    int
}

// Tally is an ordered list of category counts. Categories appear in the
// order they were first seen.
type Tally []Entry

// Aggregate counts items per category. Category order in the result is the
// order of first occurrence in items. An empty slice yields an empty Tally.
func Aggregate[T any](items []T, classify func(T) string) Tally {
	var (
		tally Tally
		index = make(map[string]int)
	)
	for _, item := range items {
		c := classify(item)
		if i, ok := index[c]; ok {
			tally[i].Count++
			continue
		}
		index[c] = len(tally)
		tally = append(tally, Entry{Category: c, Count: 1})
	}
	return tally
}

// Total returns the sum of all counts.
func (t Tally) Total() int {
	var total int
	for _, e := range t {
		total += e.Count
	}
	return total
}

// Count returns the count for category c, or 0.
func (t Tally) Count(c string) int {
	for _, e := range t {
		if e.Category == c {
			return e.Count
		}
	}
	return 0
}

// Categories returns the categories in tally order.
func (t Tally) Categories() []string {
	cs := make([]string, len(t))
	for i, e := range t {
		cs[i] = e.Category
	}
	return cs
}

// DefaultPreset is the preset the host assumes for markers without one.
const DefaultPreset = "islands#blueIcon"

var presetStyle = regexp.MustCompile(`#(.*)Icon`)

// PresetStyle extracts the style name from a marker preset, so
// "islands#redIcon" becomes "red". An empty preset is treated as
// DefaultPreset. Presets that don't follow the pattern are returned as is
// and will fail color lookup.
func PresetStyle(preset string) string {
	if preset == "" {
		preset = DefaultPreset
	}
	m := presetStyle.FindStringSubmatch(preset)
	if m == nil {
		return preset
	}
	return m[1]
}
