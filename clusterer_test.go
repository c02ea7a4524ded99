package piechart

import (
	"errors"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

type marker struct {
	Preset string
}

func markerStyle(m marker) string {
	return PresetStyle(m.Preset)
}

func TestOnClusterFormed(t *testing.T) {
	c, err := NewClusterer(DefaultConfig(), markerStyle)
	require.NoError(t, err)

	center := orb.Point{37.62, 55.75}
	members := []marker{{"islands#blueIcon"}, {"islands#redIcon"}, {""}}
	cluster, err := c.OnClusterFormed(center, members)
	require.NoError(t, err)

	require.Equal(t, center, cluster.Center)
	require.Equal(t, 3, cluster.Total)
	require.Equal(t, []int{10, 100}, cluster.Numbers)
	require.Len(t, cluster.Icons, 3)

	require.Equal(t, [2]int{46, 46}, cluster.Icons[0].Size)
	require.Equal(t, Tuple{-29, -29}, cluster.Icons[1].Offset)
	require.Equal(t, CircleShape{Center: Tuple{0, 2}, Radius: 34}, cluster.Icons[2].Shape)
	for _, icon := range cluster.Icons {
		require.True(t, strings.HasPrefix(icon.Href, "data:image/png;base64,"))
	}
}

func TestOnClusterFormedUnknownStyle(t *testing.T) {
	c, err := NewClusterer(DefaultConfig(), markerStyle)
	require.NoError(t, err)

	_, err = c.OnClusterFormed(orb.Point{0, 0}, []marker{{"islands#blueIcon"}, {"islands#purpleIcon"}})
	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, "purple", cerr.Category)
}

type fakeBuilder struct {
	tally Tally
	total int
}

func (f *fakeBuilder) BuildClusterVisual(tally Tally, total int) (IconSet, error) {
	f.tally, f.total = tally, total
	return IconSet{{Name: SizeSmall, Size: IconSize{Width: 1, Height: 2}, MediaType: "image/png"}}, nil
}

func TestClustererUsesBuilder(t *testing.T) {
	fb := &fakeBuilder{}
	c := &Clusterer[string]{Builder: fb, Classify: identity, Numbers: []int{3}}

	cluster, err := c.OnClusterFormed(orb.Point{1, 2}, []string{"a", "b", "a"})
	require.NoError(t, err)
	require.Equal(t, Tally{{"a", 2}, {"b", 1}}, fb.tally)
	require.Equal(t, 3, fb.total)
	require.Equal(t, [2]int{1, 2}, cluster.Icons[0].Size)
	require.Equal(t, []int{3}, cluster.Numbers)
}
