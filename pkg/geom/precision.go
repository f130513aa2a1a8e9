package geom

const (
	// MinPositive is the smallest positive normal float64. Lengths and
	// determinants at or below it are treated as zero.
	MinPositive = 0x1p-1022

	// Confusion is the default linear tolerance for point coincidence.
	Confusion = 1e-7

	// Angular is the default angular tolerance in radians.
	Angular = 1e-12
)
