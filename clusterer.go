package piechart

import (
	"fmt"

	"github.com/paulmach/orb"
)

// IconDescriptor is what the host needs to place one cluster icon.
type IconDescriptor struct {
	Href   string      `json:"href"`
	Size   [2]int      `json:"size"`
	Offset Tuple       `json:"offset"`
	Shape  CircleShape `json:"shape"`
}

// Cluster is the visual of a formed cluster: one icon per size plus the
// thresholds the host's label renderer switches number formats at.
type Cluster struct {
	Center  orb.Point        `json:"center"`
	Total   int              `json:"total"`
	Icons   []IconDescriptor `json:"icons"`
	Numbers []int            `json:"numbers"`
}

// Clusterer turns clusters formed by the host into pie-chart visuals.
// Classify extracts the style of a member marker.
type Clusterer[T any] struct {
	Builder  ClusterVisualBuilder
	Classify func(T) string
	Numbers  []int
}

// NewClusterer returns a Clusterer drawing with the icon builder for cfg.
func NewClusterer[T any](cfg *Config, classify func(T) string) (*Clusterer[T], error) {
	b, err := NewIconBuilder(cfg)
	if err != nil {
		return nil, err
	}
	return &Clusterer[T]{Builder: b, Classify: classify, Numbers: cfg.Numbers}, nil
}

// OnClusterFormed tallies the styles of members and builds the cluster's
// icons.
func (c *Clusterer[T]) OnClusterFormed(center orb.Point, members []T) (*Cluster, error) {
	tally := Aggregate(members, c.Classify)
	icons, err := c.Builder.BuildClusterVisual(tally, len(members))
	if err != nil {
		return nil, fmt.Errorf("cluster at %v: %w", center, err)
	}

	cluster := &Cluster{
		Center:  center,
		Total:   len(members),
		Icons:   make([]IconDescriptor, len(icons)),
		Numbers: append([]int(nil), c.Numbers...),
	}
	for i, icon := range icons {
		cluster.Icons[i] = IconDescriptor{
			Href:   icon.DataURL(),
			Size:   [2]int{icon.Size.Width, icon.Size.Height},
			Offset: icon.Size.Offset,
			Shape:  icon.Size.Shape,
		}
	}
	return cluster, nil
}
