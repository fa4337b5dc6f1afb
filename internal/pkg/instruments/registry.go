package instruments

import (
	"fmt"
	"sort"
)

// The registry holds every instrument version ever used to score a record,
// so historical records stay interpretable under the definition they were
// scored against. It is populated at init time and read-only afterwards.
var registry = map[string]*Definition{}

func register(def *Definition) {
	if err := validateDefinition(def); err != nil {
		panic(fmt.Sprintf("instruments: invalid definition %s: %v", def.Key(), err))
	}
	if _, exists := registry[def.Key()]; exists {
		panic(fmt.Sprintf("instruments: duplicate definition %s", def.Key()))
	}
	registry[def.Key()] = def
}

// Lookup returns the definition for an instrument id and version.
func Lookup(id string, version int) (*Definition, bool) {
	def, ok := registry[fmt.Sprintf("%s@%d", id, version)]
	return def, ok
}

// LookupLatest returns the highest registered version of an instrument.
func LookupLatest(id string) (*Definition, bool) {
	var latest *Definition
	for _, def := range registry {
		if def.ID != id {
			continue
		}
		if latest == nil || def.Version > latest.Version {
			latest = def
		}
	}
	return latest, latest != nil
}

// All returns every registered definition, ordered by id then version.
func All() []*Definition {
	defs := make([]*Definition, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].ID != defs[j].ID {
			return defs[i].ID < defs[j].ID
		}
		return defs[i].Version < defs[j].Version
	})
	return defs
}

func validateDefinition(def *Definition) error {
	if def.ID == "" || def.Version < 1 {
		return fmt.Errorf("missing id or version")
	}
	if len(def.Items) == 0 {
		return fmt.Errorf("no items")
	}

	sumMax := 0
	seenItems := map[string]bool{}
	for idx := range def.Items {
		item := &def.Items[idx]
		if seenItems[item.ID] {
			return fmt.Errorf("duplicate item %q", item.ID)
		}
		seenItems[item.ID] = true
		if len(item.Options) == 0 {
			return fmt.Errorf("item %q has no options", item.ID)
		}
		seenValues := map[int]bool{}
		for _, opt := range item.Options {
			if opt.Value < 0 {
				return fmt.Errorf("item %q has negative option value", item.ID)
			}
			if seenValues[opt.Value] {
				return fmt.Errorf("item %q has duplicate option value %d", item.ID, opt.Value)
			}
			seenValues[opt.Value] = true
		}
		sumMax += item.MaxValue()
	}
	if sumMax != def.MaxScore {
		return fmt.Errorf("max score %d does not match sum of item maxima %d", def.MaxScore, sumMax)
	}

	// Bands must be highest-first, start at 0, and stay within [0, MaxScore].
	if len(def.Bands) == 0 {
		return fmt.Errorf("no tier bands")
	}
	for i, band := range def.Bands {
		if band.LowerBound < 0 || band.LowerBound > def.MaxScore {
			return fmt.Errorf("band %d lower bound %d outside [0, %d]", i, band.LowerBound, def.MaxScore)
		}
		if i > 0 && band.LowerBound >= def.Bands[i-1].LowerBound {
			return fmt.Errorf("bands not strictly descending at index %d", i)
		}
	}
	if def.Bands[len(def.Bands)-1].LowerBound != 0 {
		return fmt.Errorf("lowest band must start at 0")
	}
	return nil
}
