// Package builder turns a minimal "face → ordered neighbor vertices"
// description into a fully linked half-edge store, and ships the shapes
// tessel uses most as ready-made descriptions.
//
// The package offers:
//
//   - Build(ix, opts...): the one-shot construction algorithm.
//   - Indexer / WrapIndexer: the input contract. Any type exposing the
//     vertex, edge and face totals plus the neighbor list of each internal
//     face can be built; WrapIndexer adds per-(face, neighbor) wraps for
//     periodic planes.
//   - Shapes:
//     – NewMesh:       explicit face lists, external counts derived.
//     – QuadGrid:      plane, cylinder (WithWrapX or WithWrapY) or torus.
//     – PlatonicSolid: the five regular convex solids.
//     – Geodesic:      subdivided icosahedron.
//   - Options: WithLogger, WithWrapTracking for Build; WithWrapX, WithWrapY,
//     WithCellSize for grids; WithRadius for spherical shapes.
//
// Guarantees:
//
//   - Every store returned by Build passes topology.Validate.
//   - Internal half-edges come first, in face order; face f's edge i points
//     at neighbor i. External half-edges and faces follow.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured errors for invalid input, prefixed with the method name and
//     wrapping the package sentinels (ErrTooFewFaces, ErrBadSize,
//     ErrIndexOutOfRange, ErrInvalidTopology, ...).
//
// Example:
//
//	grid, _ := builder.QuadGrid(8, 8, builder.WithWrapX(), builder.WithWrapY())
//	topo, err := builder.Build(grid)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(topo.ExternalFaceCount()) // 0
package builder
