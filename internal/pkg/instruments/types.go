package instruments

import "fmt"

// Option is one selectable answer for an item, worth Value points.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Item is a single scored activity within an instrument.
type Item struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Options []Option `json:"options"`
}

// ValidValue reports whether v is one of the item's defined option values.
func (i *Item) ValidValue(v int) bool {
	for _, opt := range i.Options {
		if opt.Value == v {
			return true
		}
	}
	return false
}

// MaxValue returns the highest option value of the item.
func (i *Item) MaxValue() int {
	max := 0
	for _, opt := range i.Options {
		if opt.Value > max {
			max = opt.Value
		}
	}
	return max
}

// TierBand maps a closed lower bound to a tier. Bands are stored highest
// bound first and must partition [0, MaxScore].
type TierBand struct {
	LowerBound int  `json:"lower_bound"`
	Tier       Tier `json:"tier"`
}

// Definition describes one instrument version: its items, the attainable
// maximum, and the threshold table used to classify a total score.
type Definition struct {
	ID       string     `json:"id"`
	Version  int        `json:"version"`
	Title    string     `json:"title"`
	Items    []Item     `json:"items"`
	MaxScore int        `json:"max_score"`
	Bands    []TierBand `json:"bands"`
}

// Key identifies the definition in the registry, e.g. "aks@2".
func (d *Definition) Key() string {
	return fmt.Sprintf("%s@%d", d.ID, d.Version)
}

// Item returns the item with the given id, if defined.
func (d *Definition) Item(id string) (*Item, bool) {
	for idx := range d.Items {
		if d.Items[idx].ID == id {
			return &d.Items[idx], true
		}
	}
	return nil, false
}

// Result is the outcome of scoring one instrument. TotalScore and Complete
// are derived from the responses and the definition, never stored apart.
type Result struct {
	InstrumentID string         `json:"instrumentId" bson:"instrumentId"`
	Version      int            `json:"version" bson:"version"`
	Responses    map[string]int `json:"responses" bson:"responses"`
	TotalScore   int            `json:"totalScore" bson:"totalScore"`
	Complete     bool           `json:"complete" bson:"complete"`
}

// Classification pairs the dependency tier with the long-term-care flag.
type Classification struct {
	Tier  Tier `json:"tier"`
	IsPJP bool `json:"isPJP"`
}
