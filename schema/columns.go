package schema

// IDColumn is the identifier column of the ledger. It is assigned by the
// ledger at append time and never by the assembler.
const IDColumn = "Bridge ID"

// Columns is the full ledger header in template order, identifier first.
// It is a superset of the extraction catalog: columns with no extracted,
// derived or constant source stay NA in every appended row.
var Columns = []string{
	IDColumn,
	BridgeLength,
	BridgeWidth,
	BridgeHeight,
	CrossSectionDiam,
	CrossSectionArea,
	CrossSectionMOI,
	NumStrands,
	NumBeams,
	InclinationAngle,
	DeclinationAngle,
	"Bridge Type",
	"Symmetry",
	"Joint Design",
	YoungsModulus,
	PoissonsRatio,
	Density,
	TensileYield,
	ShearModulus,
	AppliedForce,
	"Load Location (x, y, z)",
	"Load Type",
	"Support Type",
	"Support Locations",
	MeshElements,
	MeshDensity,
	"Element Type",
	MaxEquivStress,
	MaxPrincipStress,
	MinMaxDeformation,
	SafetyFactor,
	ReactionForces,
	StrainEnergy,
	WorkDone,
	"Stress Equilibrium Residual",
	"Constitutive Law Residual",
	EnergyResidual,
	YieldResidual,
	MaxFailureLoad,
}
