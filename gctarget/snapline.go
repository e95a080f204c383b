package gctarget

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

type SnapKind string

const (
	GridCenter   SnapKind = "grid-center"
	ItemEdge     SnapKind = "item-edge"
	ItemCenter   SnapKind = "item-center"
	ItemDistance SnapKind = "item-distance"
)

// SnapLine is a guide at Position along one axis, drawn from Start to End along the other.
type SnapLine struct {
	ID          string      `json:"id"`
	Orientation Orientation `json:"orientation"`
	Position    float64     `json:"position"`
	Start       float64     `json:"start"`
	End         float64     `json:"end"`
	Kind        SnapKind    `json:"type"`

	ItemID         string   `json:"itemId,omitempty"`
	ReferenceItems []string `json:"referenceItems,omitempty"`
	// Distance is the gap length of an item-distance indicator.
	Distance float64 `json:"distance,omitempty"`
}

type SnapBehavior struct {
	GridCenter   bool `json:"gridCenter" toml:"grid_center"`
	ItemEdges    bool `json:"itemEdges" toml:"item_edges"`
	ItemCenters  bool `json:"itemCenters" toml:"item_centers"`
	ItemDistance bool `json:"itemDistance" toml:"item_distance"`
}

func AllSnaps() SnapBehavior {
	return SnapBehavior{
		GridCenter:   true,
		ItemEdges:    true,
		ItemCenters:  true,
		ItemDistance: true,
	}
}

func (b SnapBehavior) Any() bool {
	return b.GridCenter || b.ItemEdges || b.ItemCenters || b.ItemDistance
}
