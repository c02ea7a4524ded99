package piechart

import (
	"math/rand"
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/require"
)

func identity(s string) string { return s }

type TallyTest struct {
	Description string
	Items       []string
	Want        Tally
}

var tallyTests = []TallyTest{
	{
		"two styles",
		[]string{"blue", "blue", "red"},
		Tally{{"blue", 2}, {"red", 1}},
	},
	{
		"single style",
		[]string{"green", "green"},
		Tally{{"green", 2}},
	},
	{
		"first seen order",
		[]string{"b", "a", "b", "c", "a"},
		Tally{{"b", 2}, {"a", 2}, {"c", 1}},
	},
	{
		"case sensitive",
		[]string{"Blue", "blue"},
		Tally{{"Blue", 1}, {"blue", 1}},
	},
	{
		"empty",
		nil,
		nil,
	},
}

func TestAggregate(t *testing.T) {
	for _, test := range tallyTests {
		got := Aggregate(test.Items, identity)
		require.Equal(t, test.Want, got, test.Description)
		require.Equal(t, len(test.Items), got.Total(), test.Description)
	}
}

func TestAggregateEmpty(t *testing.T) {
	is := is.New(t)

	tally := Aggregate([]string{}, identity)
	is.Equal(len(tally), 0)
	is.Equal(tally.Total(), 0)
}

func TestAggregateRandomSequences(t *testing.T) {
	styles := []string{"blue", "red", "green", "olive", "night"}
	rnd := rand.New(rand.NewSource(1))

	for n := 0; n < 200; n++ {
		items := make([]string, rnd.Intn(50))
		for i := range items {
			items[i] = styles[rnd.Intn(len(styles))]
		}

		var order []string
		seen := map[string]bool{}
		for _, s := range items {
			if !seen[s] {
				seen[s] = true
				order = append(order, s)
			}
		}

		tally := Aggregate(items, identity)
		require.Equal(t, len(items), tally.Total())
		if len(order) == 0 {
			require.Empty(t, tally.Categories())
		} else {
			require.Equal(t, order, tally.Categories())
		}
		require.Equal(t, tally, Aggregate(items, identity))
	}
}

func TestAggregateClassifies(t *testing.T) {
	type marker struct{ preset string }
	markers := []marker{{"islands#redIcon"}, {""}, {"islands#redIcon"}}

	tally := Aggregate(markers, func(m marker) string { return PresetStyle(m.preset) })
	require.Equal(t, Tally{{"red", 2}, {"blue", 1}}, tally)
	require.Equal(t, 2, tally.Count("red"))
	require.Equal(t, 0, tally.Count("green"))
}

func TestPresetStyle(t *testing.T) {
	is := is.New(t)

	is.Equal(PresetStyle("islands#blueIcon"), "blue")
	is.Equal(PresetStyle("islands#darkOrangeIcon"), "darkOrange")
	is.Equal(PresetStyle(""), "blue")
	is.Equal(PresetStyle("purple"), "purple")
}
