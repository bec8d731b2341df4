package models

// Relic is a fully assembled relic piece.
//
// Token is derived from the identity-bearing fields (set, slot, star, level
// and stats) and Locked is only ever raised by lock reconciliation.
type Relic struct {
	SetName  SetName `json:"set_name"`
	Slot     Slot    `json:"slot"`
	Star     uint32  `json:"star"`
	Level    uint32  `json:"level"`
	MainStat Stat    `json:"main_stat"`
	SubStat1 *Stat   `json:"sub_stat_1,omitempty"`
	SubStat2 *Stat   `json:"sub_stat_2,omitempty"`
	SubStat3 *Stat   `json:"sub_stat_3,omitempty"`
	SubStat4 *Stat   `json:"sub_stat_4,omitempty"`
	Equip    *string `json:"equip,omitempty"`
	Locked   bool    `json:"locked"`
	Token    string  `json:"token"`
}

// SubStats returns the four sub-stat positions in order. Absent positions are nil.
func (r *Relic) SubStats() [4]*Stat {
	return [4]*Stat{r.SubStat1, r.SubStat2, r.SubStat3, r.SubStat4}
}

// SetSubStat stores s at position i (0-based). Positions outside 0..3 are ignored.
func (r *Relic) SetSubStat(i int, s *Stat) {
	switch i {
	case 0:
		r.SubStat1 = s
	case 1:
		r.SubStat2 = s
	case 2:
		r.SubStat3 = s
	case 3:
		r.SubStat4 = s
	}
}

// EquipName returns the equipped character name, or "" when unequipped.
func (r *Relic) EquipName() string {
	if r.Equip == nil {
		return ""
	}
	return *r.Equip
}

// Lock is a persisted decision to protect the relic with the given token.
type Lock struct {
	Token string `json:"token"`
	Save  bool   `json:"save"`
}
