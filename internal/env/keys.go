package env

// Unit is a measurement unit for authored dimensions. Meshes are emitted in
// millimeters; geometry authored under another unit is scaled by Factor
// when its primitive is expanded.
type Unit string

// Supported measurement units.
const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Meter      Unit = "m"
	Inch       Unit = "in"
)

// Factor returns how many millimeters one of u is. Unknown units read as 1
// (treated as millimeters).
func (u Unit) Factor() float64 {
	switch u {
	case Centimeter:
		return 10
	case Meter:
		return 1000
	case Inch:
		return 25.4
	default:
		return 1
	}
}

// ParseUnit returns the Unit for a scene-file or environment spelling,
// or ok=false when the spelling is not a supported unit.
func ParseUnit(s string) (Unit, bool) {
	switch Unit(s) {
	case Millimeter, Centimeter, Meter, Inch:
		return Unit(s), true
	default:
		return "", false
	}
}

// Registered context keys. New keys can be added here (or by callers with
// their own Key values) without touching the evaluator.
var (
	// UnitKey is the measurement unit for authored dimensions.
	UnitKey = Key[Unit]{Name: "unit", Default: Millimeter}

	// InteractionKey controls whether a subtree participates in editor
	// interaction (selection, hit-testing). It has no effect on geometry.
	InteractionKey = Key[bool]{Name: "interactionEnabled", Default: true}

	// SegmentsKey is the tessellation resolution used when a primitive
	// leaves its segment/slice count unset (zero).
	SegmentsKey = Key[int]{Name: "segments", Default: 16}
)
