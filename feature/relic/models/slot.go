package models

import "fmt"

// Slot is the equipment position a relic piece occupies.
type Slot int

const (
	Head Slot = iota
	Hands
	Body
	Feet
	PlanarSphere
	LinkRope
)

var slotNames = [...]string{
	Head:         "Head",
	Hands:        "Hands",
	Body:         "Body",
	Feet:         "Feet",
	PlanarSphere: "PlanarSphere",
	LinkRope:     "LinkRope",
}

// AllSlots returns every slot in declaration order.
func AllSlots() []Slot {
	return []Slot{Head, Hands, Body, Feet, PlanarSphere, LinkRope}
}

func (s Slot) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotNames[s]
}

// IsValid reports whether s is one of the declared slots.
func (s Slot) IsValid() bool {
	return s >= 0 && int(s) < len(slotNames)
}

// IsPlanar reports whether the slot belongs to a planar ornament.
func (s Slot) IsPlanar() bool {
	return s == PlanarSphere || s == LinkRope
}

func (s Slot) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid slot %d", int(s))
	}
	return []byte(slotNames[s]), nil
}

func (s *Slot) UnmarshalText(text []byte) error {
	v := string(text)
	for i, name := range slotNames {
		if name == v {
			*s = Slot(i)
			return nil
		}
	}
	return fmt.Errorf("unknown slot %q", v)
}
