package types

type MaxDimensions struct {
	LengthStuds  *int `json:"lengthStuds,omitempty"`
	WidthStuds   *int `json:"widthStuds,omitempty"`
	HeightPlates *int `json:"heightPlates,omitempty"`
}

// ConfigRequest is the user questionnaire driving one configuration run.
// Budget and Weight are pointers so that an absent ceiling can be told
// apart from an explicit zero.
type ConfigRequest struct {
	Functions    []string          `json:"functions"`
	SubFunctions map[string]string `json:"subFunctions,omitempty"`
	Budget       *float64          `json:"budget"`
	Weight       *float64          `json:"weight"`
	Priority     string            `json:"priority"`
	Sensors      []string          `json:"sensors"`

	Terrain       string         `json:"terrain,omitempty"`       // indoor | outdoor_flat | offroad | water_pool
	SizeClass     string         `json:"sizeClass,omitempty"`     // small | medium | large
	MaxDimensions *MaxDimensions `json:"maxDimensions,omitempty"`

	ComplexityLevel int    `json:"complexityLevel,omitempty"` // 1 / 2 / 3
	PowerProfile    string `json:"powerProfile,omitempty"`    // long_runtime | balanced | performance

	DecorationLevel string   `json:"decorationLevel,omitempty"` // minimal | normal | rich
	PreferredColors []string `json:"preferredColors,omitempty"`

	OwnedSets         []string `json:"ownedSets,omitempty"`
	UseOnlyOwnedParts bool     `json:"useOnlyOwnedParts,omitempty"`
}

type ConfigResponse struct {
	Selected        []Part  `json:"selected"`
	TotalPrice      float64 `json:"total_price"`
	TotalWeight     float64 `json:"total_weight"`
	RemainingBudget float64 `json:"remaining_budget"`
	Note            string  `json:"note,omitempty"`
}
