package edgewrap

import "strings"

// Relation names one of the eight directional relations stored per half-edge.
type Relation uint8

const (
	// VertToEdge: the edge as seen from the near vertex.
	VertToEdge Relation = iota
	// FaceToEdge: the edge as seen from the near face.
	FaceToEdge
	// EdgeToVert: the far vertex as seen from the edge.
	EdgeToVert
	// EdgeToFace: the far face as seen from the edge.
	EdgeToFace
	// VertToVert: the far vertex as seen from the near vertex.
	VertToVert
	// VertToFace: the far face as seen from the near vertex.
	VertToFace
	// FaceToVert: the far vertex as seen from the near face.
	FaceToVert
	// FaceToFace: the far face as seen from the near face.
	FaceToFace

	// RelationCount is the number of relations packed into an EdgeWrap.
	RelationCount = 8
)

// relationNames is indexed by Relation.
var relationNames = [RelationCount]string{
	"VertToEdge", "FaceToEdge", "EdgeToVert", "EdgeToFace",
	"VertToVert", "VertToFace", "FaceToVert", "FaceToFace",
}

// String returns the relation name, or "Relation(?)" for out-of-range values.
func (r Relation) String() string {
	if r >= RelationCount {
		return "Relation(?)"
	}
	return relationNames[r]
}

// IsPrimary reports whether r is one of the four authoritative relations.
func (r Relation) IsPrimary() bool { return r < VertToVert }

// shift is the bit offset of r's nibble inside an EdgeWrap.
func (r Relation) shift() uint { return uint(r) * relationBits }

// Wrap is the generic 4-direction view of a single relation.
type Wrap uint8

const (
	// None means no translation.
	None Wrap = 0
	// PosAxis0 adds one positive period along axis 0.
	PosAxis0 Wrap = 1 << 0
	// NegAxis0 adds one negative period along axis 0.
	NegAxis0 Wrap = 1 << 1
	// PosAxis1 adds one positive period along axis 1.
	PosAxis1 Wrap = 1 << 2
	// NegAxis1 adds one negative period along axis 1.
	NegAxis1 Wrap = 1 << 3

	// Axis0Mask selects both sign bits of axis 0.
	Axis0Mask = PosAxis0 | NegAxis0
	// Axis1Mask selects both sign bits of axis 1.
	Axis1Mask = PosAxis1 | NegAxis1
	// PosMask selects the positive bits of both axes.
	PosMask = PosAxis0 | PosAxis1
	// NegMask selects the negative bits of both axes.
	NegMask = NegAxis0 | NegAxis1
	// WrapMask selects every meaningful bit of a Wrap.
	WrapMask = Axis0Mask | Axis1Mask
)

// relationBits is the width of one relation nibble.
const relationBits = 4

// EdgeWrap packs the eight relations of one half-edge.
type EdgeWrap uint32

// Nibble masks, one per relation, plus aggregates.
const (
	VertToEdgeMask EdgeWrap = EdgeWrap(WrapMask) << (relationBits * uint(VertToEdge))
	FaceToEdgeMask EdgeWrap = EdgeWrap(WrapMask) << (relationBits * uint(FaceToEdge))
	EdgeToVertMask EdgeWrap = EdgeWrap(WrapMask) << (relationBits * uint(EdgeToVert))
	EdgeToFaceMask EdgeWrap = EdgeWrap(WrapMask) << (relationBits * uint(EdgeToFace))
	VertToVertMask EdgeWrap = EdgeWrap(WrapMask) << (relationBits * uint(VertToVert))
	VertToFaceMask EdgeWrap = EdgeWrap(WrapMask) << (relationBits * uint(VertToFace))
	FaceToVertMask EdgeWrap = EdgeWrap(WrapMask) << (relationBits * uint(FaceToVert))
	FaceToFaceMask EdgeWrap = EdgeWrap(WrapMask) << (relationBits * uint(FaceToFace))

	// PrimaryMask covers the four authoritative relations.
	PrimaryMask = VertToEdgeMask | FaceToEdgeMask | EdgeToVertMask | EdgeToFaceMask
	// DerivedMask covers the four pre-computed relations.
	DerivedMask = VertToVertMask | VertToFaceMask | FaceToVertMask | FaceToFaceMask

	// posBits selects every positive bit of every relation (bits 0 and 2 of each nibble).
	posBits EdgeWrap = 0x55555555
	// negBits selects every negative bit of every relation (bits 1 and 3 of each nibble).
	negBits EdgeWrap = 0xAAAAAAAA
)

// String renders a Wrap as e.g. "+0-1", or "none".
func (g Wrap) String() string {
	if g&WrapMask == None {
		return "none"
	}
	var sb strings.Builder
	if g&PosAxis0 != 0 {
		sb.WriteString("+0")
	}
	if g&NegAxis0 != 0 {
		sb.WriteString("-0")
	}
	if g&PosAxis1 != 0 {
		sb.WriteString("+1")
	}
	if g&NegAxis1 != 0 {
		sb.WriteString("-1")
	}
	return sb.String()
}

// String lists every relation that carries a translation, e.g.
// "EdgeToVert:+0 VertToVert:+0", or "none".
func (w EdgeWrap) String() string {
	if w == 0 {
		return "none"
	}
	parts := make([]string, 0, RelationCount)
	for r := Relation(0); r < RelationCount; r++ {
		if g := w.Get(r); g != None {
			parts = append(parts, r.String()+":"+g.String())
		}
	}
	return strings.Join(parts, " ")
}
