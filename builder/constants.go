package builder

//-----------------------------------------------------------------------------
// Method name constants, used to prefix errors with the constructor name.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for Build.
	MethodBuild = "Build"
	// MethodMesh is the canonical name for the NewMesh constructor.
	MethodMesh = "NewMesh"
	// MethodQuadGrid is the canonical name for the QuadGrid constructor.
	MethodQuadGrid = "QuadGrid"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodGeodesic is the canonical name for the Geodesic constructor.
	MethodGeodesic = "Geodesic"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinFaceNeighbors is the smallest number of vertices an internal face may have.
const MinFaceNeighbors = 3

// MinGridDim is the smallest allowed grid dimension along an open axis.
const MinGridDim = 1

// MinWrappedGridDim is the smallest allowed grid dimension along a wrapped
// axis. Two cells around a seam would share both of their side edges.
const MinWrappedGridDim = 3

// MaxGeodesicSubdivisions bounds Geodesic; level n has 20·4ⁿ faces.
const MaxGeodesicSubdivisions = 8
