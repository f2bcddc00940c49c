package schema

// FieldKind is the expected shape of an extracted parameter.
type FieldKind uint8

const (
	FieldNumeric FieldKind = iota
	FieldText
)

// Field is one entry of the extraction catalog: the exact column name the
// report parameter maps to, a short description for the backend prompt, and
// the expected kind.
type Field struct {
	Name        string
	Description string
	Kind        FieldKind
}

// Canonical parameter names. These double as ledger column headers.
const (
	BridgeLength      = "Bridge Length (m)"
	BridgeWidth       = "Bridge Width (m)"
	BridgeHeight      = "Bridge Height (m)"
	CrossSectionDiam  = "Cross-Sectional Diameter (m)"
	CrossSectionArea  = "Cross-Sectional Area (m²)"
	CrossSectionMOI   = "Cross-Sectional Moment of Inertia (m⁴)"
	NumStrands        = "Number of Strands"
	NumBeams          = "Number of Beams"
	InclinationAngle  = "Angle of Inclination (°)"
	DeclinationAngle  = "Angle of Declination (°)"
	YoungsModulus     = "Young's Modulus (Pa)"
	PoissonsRatio     = "Poisson's Ratio"
	Density           = "Density (kg/m³)"
	TensileYield      = "Tensile Yield Strength (Pa)"
	ShearModulus      = "Shear Modulus (Pa)"
	AppliedForce      = "Applied Force (N)"
	MeshElements      = "Mesh Elements"
	MeshDensity       = "Mesh Density (elements/m³)"
	MaxEquivStress    = "Max Equivalent Stress (Pa)"
	MaxPrincipStress  = "Max Principal Stress (Pa)"
	MinMaxDeformation = "Min/Max Deformation (m)"
	SafetyFactor      = "Safety Factor"
	ReactionForces    = "Reaction Forces (N)"
	StrainEnergy      = "Strain Energy (J)"
)

// Derived parameter names.
const (
	WorkDone       = "Work Done (J)"
	EnergyResidual = "Energy Residual (J)"
	YieldResidual  = "Yield Constraint Residual"
	// header keeps the historical "(N)" suffix from the dataset template;
	// the value is kilograms
	MaxFailureLoad = "Max Failure Load (N)"
)

// ExtractedFields is the fixed catalog sent to the text-understanding
// backend, in prompt order. Every extraction result is total over these
// names: a parameter the backend cannot locate is Unknown, never absent.
var ExtractedFields = []Field{
	{BridgeLength, "overall bridge span length in meters", FieldNumeric},
	{BridgeWidth, "bridge deck width in meters", FieldNumeric},
	{BridgeHeight, "bridge height in meters", FieldNumeric},
	{CrossSectionDiam, "member cross-sectional diameter in meters", FieldNumeric},
	{CrossSectionArea, "member cross-sectional area in square meters", FieldNumeric},
	{CrossSectionMOI, "cross-sectional second moment of area in m^4", FieldNumeric},
	{NumStrands, "number of strands in the truss", FieldNumeric},
	{NumBeams, "number of load-bearing beams", FieldNumeric},
	{InclinationAngle, "angle of inclination in degrees", FieldNumeric},
	{DeclinationAngle, "angle of declination in degrees", FieldNumeric},
	{YoungsModulus, "material Young's modulus in pascals", FieldNumeric},
	{PoissonsRatio, "material Poisson's ratio", FieldNumeric},
	{Density, "material density in kg per cubic meter", FieldNumeric},
	{TensileYield, "tensile yield strength in pascals", FieldNumeric},
	{ShearModulus, "shear modulus in pascals", FieldNumeric},
	{AppliedForce, "applied load force in newtons", FieldNumeric},
	{MeshElements, "total finite-element mesh element count", FieldNumeric},
	{MeshDensity, "mesh density in elements per cubic meter", FieldNumeric},
	{MaxEquivStress, "maximum equivalent (von Mises) stress in pascals", FieldNumeric},
	{MaxPrincipStress, "maximum principal stress in pascals", FieldNumeric},
	{MinMaxDeformation, "deformation range as [min, max] in meters", FieldText},
	{SafetyFactor, "minimum safety factor", FieldNumeric},
	{ReactionForces, "support reaction force vectors as a nested array in newtons", FieldText},
	{StrainEnergy, "total strain energy in joules", FieldNumeric},
}

// Constants holds the fixed-by-design fields. They override whatever the
// backend extracted: the rig always uses six strands and two beams on a
// level span, and the dataset's categorical columns are single-valued.
var Constants = map[string]Value{
	NumStrands:       Number(6),
	NumBeams:         Number(2),
	InclinationAngle: Number(0),
	DeclinationAngle: Number(0),
	"Bridge Type":    Text("Truss"),
	"Symmetry":       Number(1),
	"Joint Design":   Text("Bonded"),
	"Load Type":      Text("Point"),
	"Support Type":   Text("Fixed"),
}
