package geom

// TrsfForm classifies a transformation. It is informational: composition
// and the canonical setters keep it in step with the stored parameters, but
// the raw setters on Trsf2d do not reclassify.
type TrsfForm int

const (
	Identity TrsfForm = iota
	Rotation
	Translation
	PointMirror
	Ax1Mirror
	Ax2Mirror
	Scale
	CompoundTrsf
	Other
)

var trsfFormNames = [...]string{
	Identity:     "Identity",
	Rotation:     "Rotation",
	Translation:  "Translation",
	PointMirror:  "PointMirror",
	Ax1Mirror:    "Ax1Mirror",
	Ax2Mirror:    "Ax2Mirror",
	Scale:        "Scale",
	CompoundTrsf: "CompoundTrsf",
	Other:        "Other",
}

func (f TrsfForm) String() string {
	if f < 0 || int(f) >= len(trsfFormNames) {
		return "TrsfForm(?)"
	}
	return trsfFormNames[f]
}
