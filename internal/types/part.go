package types

// Geometry carries the physical footprint of a part. Stud counts are the
// LEGO grid dimensions, size class is one of small|medium|large.
type Geometry struct {
	SizeClass    string `json:"size_class,omitempty"`
	StudLength   int    `json:"stud_length,omitempty"`
	StudWidth    int    `json:"stud_width,omitempty"`
	HeightPlates int    `json:"height_plates,omitempty"`
}

type Electronics struct {
	RPMNominal       float64 `json:"rpm_nominal,omitempty"`
	TorqueNominalNcm float64 `json:"torque_nominal_ncm,omitempty"`
	VoltageNominal   float64 `json:"voltage_nominal,omitempty"`
}

type Scores struct {
	StructuralStrength    float64 `json:"structural_strength,omitempty"`
	CostEfficiency        float64 `json:"cost_efficiency,omitempty"`
	ConnectionVersatility float64 `json:"connection_versatility,omitempty"`
}

type Connector struct {
	Type  string `json:"type"`
	Count int    `json:"count,omitempty"`
}

// Part is a single catalog entry. The simple catalog JSON only fills id,
// name, category, price, weight and image; the extended fields stay empty
// until the configurator normalizes the record.
type Part struct {
	ID       int     `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null;column:name" json:"name"`
	Category string  `gorm:"index;not null;column:category" json:"category"`
	Price    float64 `gorm:"not null;column:price" json:"price"`
	Weight   float64 `gorm:"not null;column:weight" json:"weight"`
	Image    string  `gorm:"column:image" json:"image,omitempty"`

	LegoNumber  string `gorm:"column:lego_number" json:"lego_number,omitempty"`
	Family      string `gorm:"column:family" json:"family,omitempty"`
	SystemType  string `gorm:"column:system_type" json:"system_type,omitempty"`
	Color       string `gorm:"column:color" json:"color,omitempty"`
	Material    string `gorm:"column:material" json:"material,omitempty"`
	Domain      string `gorm:"index;column:domain" json:"domain,omitempty"`
	PrimaryRole string `gorm:"column:primary_role" json:"primary_role,omitempty"`

	Roles       []string     `gorm:"serializer:json" json:"roles,omitempty"`
	Geometry    *Geometry    `gorm:"serializer:json" json:"geometry,omitempty"`
	Electronics *Electronics `gorm:"serializer:json" json:"electronics,omitempty"`
	Scores      *Scores      `gorm:"serializer:json" json:"scores,omitempty"`
	Connectors  []Connector  `gorm:"serializer:json" json:"connectors,omitempty"`

	// UniqueID is stamped per selected instance ("<id>-<position>") and is
	// never persisted.
	UniqueID string `gorm:"-" json:"unique_id,omitempty"`
}

func (Part) TableName() string {
	return "part"
}
