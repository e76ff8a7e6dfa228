package types

// Operating environment a part is suited for.
const (
	DomainGround    = "ground"
	DomainAir       = "air"
	DomainWater     = "water"
	DomainUniversal = "universal"
)

// Catalog categories referenced by the configurator. The catalog may carry
// more categories than these; unknown ones are still indexed and selectable.
const (
	CategoryMotor       = "motor"
	CategoryWheel       = "wheel"
	CategoryTire        = "tire"
	CategoryTrack       = "track"
	CategoryLeg         = "leg"
	CategoryPropeller   = "propeller"
	CategoryWater       = "water"
	CategoryWing        = "wing"
	CategoryManipulator = "manipulator"
	CategorySensor      = "sensor"
	CategoryController  = "controller"
	CategoryPower       = "power"
	CategoryStructure   = "structure"
	CategoryAccessory   = "accessory"
)
