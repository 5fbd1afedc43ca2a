// Package attr holds per-element data for a topology: columns indexed by
// vertex, half-edge or face, read either directly or "as seen from" a
// half-edge so callers never touch the store's raw arrays.
//
// Columns:
//
//	Vertex[T]  one value per vertex;  Near(e) / Far(e) read the ends of e
//	Edge[T]    one value per half-edge; Twin(e) reads the opposite side
//	Face[T]    one value per face;    Near(e) / Far(e) read the sides of e
//
// Positions adds geometry for periodic planes: a Surface turns the generic
// wrap views of an edgewrap.EdgeWrap into translations, so a neighbor's
// position can be fetched next to the element it is seen from, seams
// included. On a store without wraps every offset is zero.
package attr
