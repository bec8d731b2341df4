package models

import "fmt"

// SetName identifies a relic set.
type SetName int

const (
	PasserbyofWanderingCloud SetName = iota
	MusketeerofWildWheat
	KnightofPurityPalace
	HunterofGlacialForest
	ChampionofStreetwiseBoxing
	GuardofWutheringSnow
	FiresmithofLavaForging
	GeniusofBrilliantStars
	BandofSizzlingThunder
	EagleofTwilightLine
	ThiefofShootingMeteor
	WastelanderofBanditryDesert
	SpaceSealingStation
	FleetoftheAgeless
	PanGalacticCommercialEnterprise
	BelobogoftheArchitects
	CelestialDifferentiator
	InertSalsotto
	TaliaKingdomofBanditry
	SprightlyVonwacq
	RutilantArena
	BrokenKeel
	LongevousDisciple
	MessengerTraversingHackerspace
	TheAshblazingGrandDuke
	PrisonerinDeepConfinement
	PenaconyLandoftheDreams
	FirmamentFronlineGlamoth
	ZhongBiao
	XianQu
	ChuYun
	WuZhu
	ZhuLian
	DuLan
	TieQi
	YongLie
)

var setNames = [...]string{
	PasserbyofWanderingCloud:        "PasserbyofWanderingCloud",
	MusketeerofWildWheat:            "MusketeerofWildWheat",
	KnightofPurityPalace:            "KnightofPurityPalace",
	HunterofGlacialForest:           "HunterofGlacialForest",
	ChampionofStreetwiseBoxing:      "ChampionofStreetwiseBoxing",
	GuardofWutheringSnow:            "GuardofWutheringSnow",
	FiresmithofLavaForging:          "FiresmithofLavaForging",
	GeniusofBrilliantStars:          "GeniusofBrilliantStars",
	BandofSizzlingThunder:           "BandofSizzlingThunder",
	EagleofTwilightLine:             "EagleofTwilightLine",
	ThiefofShootingMeteor:           "ThiefofShootingMeteor",
	WastelanderofBanditryDesert:     "WastelanderofBanditryDesert",
	SpaceSealingStation:             "SpaceSealingStation",
	FleetoftheAgeless:               "FleetoftheAgeless",
	PanGalacticCommercialEnterprise: "PanGalacticCommercialEnterprise",
	BelobogoftheArchitects:          "BelobogoftheArchitects",
	CelestialDifferentiator:         "CelestialDifferentiator",
	InertSalsotto:                   "InertSalsotto",
	TaliaKingdomofBanditry:          "TaliaKingdomofBanditry",
	SprightlyVonwacq:                "SprightlyVonwacq",
	RutilantArena:                   "RutilantArena",
	BrokenKeel:                      "BrokenKeel",
	LongevousDisciple:               "LongevousDisciple",
	MessengerTraversingHackerspace:  "MessengerTraversingHackerspace",
	TheAshblazingGrandDuke:          "TheAshblazingGrandDuke",
	PrisonerinDeepConfinement:       "PrisonerinDeepConfinement",
	PenaconyLandoftheDreams:         "PenaconyLandoftheDreams",
	FirmamentFronlineGlamoth:        "FirmamentFronlineGlamoth",
	ZhongBiao:                       "ZhongBiao",
	XianQu:                          "XianQu",
	ChuYun:                          "ChuYun",
	WuZhu:                           "WuZhu",
	ZhuLian:                         "ZhuLian",
	DuLan:                           "DuLan",
	TieQi:                           "TieQi",
	YongLie:                         "YongLie",
}

// AllSetNames returns every set in declaration order.
func AllSetNames() []SetName {
	out := make([]SetName, len(setNames))
	for i := range setNames {
		out[i] = SetName(i)
	}
	return out
}

func (n SetName) String() string {
	if !n.IsValid() {
		return fmt.Sprintf("SetName(%d)", int(n))
	}
	return setNames[n]
}

// IsValid reports whether n is one of the declared sets.
func (n SetName) IsValid() bool {
	return n >= 0 && int(n) < len(setNames)
}

func (n SetName) MarshalText() ([]byte, error) {
	if !n.IsValid() {
		return nil, fmt.Errorf("invalid set name %d", int(n))
	}
	return []byte(setNames[n]), nil
}

func (n *SetName) UnmarshalText(text []byte) error {
	v := string(text)
	for i, name := range setNames {
		if name == v {
			*n = SetName(i)
			return nil
		}
	}
	return fmt.Errorf("unknown set name %q", v)
}
