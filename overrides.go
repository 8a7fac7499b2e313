package llpsi

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Slot addresses one cell of a declension table.
type Slot struct {
	Casus   Casus
	Numerus Numerus
}

// Key returns the override blob key for the slot, e.g. "ablPl".
func (s Slot) Key() string {
	return s.Casus.Abbrev() + s.Numerus.Abbrev()
}

// AllSlots lists the twelve slots, singular first.
var AllSlots = func() []Slot {
	slots := make([]Slot, 0, len(AllCases)*len(AllNumeri))
	for _, n := range AllNumeri {
		for _, c := range AllCases {
			slots = append(slots, Slot{Casus: c, Numerus: n})
		}
	}
	return slots
}()

var slotsByKey = func() map[string]Slot {
	m := make(map[string]Slot, len(AllSlots))
	for _, s := range AllSlots {
		m[s.Key()] = s
	}
	return m
}()

// Overrides holds literal forms that replace computed ones.
type Overrides map[Slot]string

// Lookup returns the override for (c, n), if any.
func (o Overrides) Lookup(c Casus, n Numerus) (string, bool) {
	form, ok := o[Slot{Casus: c, Numerus: n}]
	return form, ok
}

// GenderOverrides holds one Overrides table per gender.
type GenderOverrides map[Genus]Overrides

// For returns the table for g; a nil table has no overrides.
func (g GenderOverrides) For(genus Genus) Overrides {
	return g[genus]
}

// ParseOverrides decodes a flat override blob such as
// {"nomSg": "vīs", "accSg": "vim"}. Empty strings are ignored.
func ParseOverrides(blob string) (Overrides, error) {
	if blob == "" {
		return nil, nil
	}
	var raw map[string]string
	if err := sonic.UnmarshalString(blob, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOverride, err)
	}
	return overridesFromMap(raw)
}

// ParseGenderOverrides decodes an override blob keyed by gender letter:
// {"m": {"nomSg": "alius"}, "n": {"nomSg": "aliud"}}.
func ParseGenderOverrides(blob string) (GenderOverrides, error) {
	if blob == "" {
		return nil, nil
	}
	var raw map[string]map[string]string
	if err := sonic.UnmarshalString(blob, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOverride, err)
	}
	out := make(GenderOverrides, len(raw))
	for code, forms := range raw {
		if code == "m/f" {
			return nil, fmt.Errorf("%w: gender key %q", ErrInvalidOverride, code)
		}
		g, err := ParseGenus(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOverride, err)
		}
		ovr, err := overridesFromMap(forms)
		if err != nil {
			return nil, err
		}
		out[g] = ovr
	}
	return out, nil
}

func overridesFromMap(raw map[string]string) (Overrides, error) {
	out := make(Overrides, len(raw))
	for key, form := range raw {
		slot, ok := slotsByKey[key]
		if !ok {
			return nil, fmt.Errorf("%w: key %q", ErrInvalidOverride, key)
		}
		if form == "" {
			continue
		}
		out[slot] = form
	}
	return out, nil
}
