package edgewrap

// Make returns an EdgeWrap holding g in relation r and nothing else.
func Make(r Relation, g Wrap) EdgeWrap {
	return EdgeWrap(g&WrapMask) << r.shift()
}

// Get projects relation r onto its generic 4-direction view.
func (w EdgeWrap) Get(r Relation) Wrap {
	return Wrap(w>>r.shift()) & WrapMask
}

// Set returns w with relation r replaced by g.
func (w EdgeWrap) Set(r Relation, g Wrap) EdgeWrap {
	mask := EdgeWrap(WrapMask) << r.shift()
	return (w &^ mask) | Make(r, g)
}

// Has reports whether relation r carries any bit.
func (w EdgeWrap) Has(r Relation) bool { return w.Get(r) != None }

// VertToVert is the generic view a planar surface uses to place the far
// vertex next to the near vertex.
func (w EdgeWrap) VertToVert() Wrap { return w.Get(VertToVert) }

// VertToFace is the generic view used to place the far face next to the near vertex.
func (w EdgeWrap) VertToFace() Wrap { return w.Get(VertToFace) }

// FaceToVert is the generic view used to place the far vertex next to the near face.
func (w EdgeWrap) FaceToVert() Wrap { return w.Get(FaceToVert) }

// FaceToFace is the generic view used to place the far face next to the near face.
func (w EdgeWrap) FaceToFace() Wrap { return w.Get(FaceToFace) }

// Primary returns w restricted to the four authoritative relations.
func (w EdgeWrap) Primary() EdgeWrap { return w & PrimaryMask }

// Canonical clears every axis whose positive and negative bits are both set.
func (w EdgeWrap) Canonical() EdgeWrap {
	both := (w & posBits) & ((w & negBits) >> 1)
	return w &^ (both | both<<1)
}

// IsCanonical reports whether no axis of any relation has both bits set.
func (w EdgeWrap) IsCanonical() bool { return w.Canonical() == w }

// Derive recomputes the four derived relations from the primary ones.
// Primary relations are canonicalized first; derived bits in w are discarded.
func (w EdgeWrap) Derive() EdgeWrap {
	p := w.Primary().Canonical()
	v2e, f2e := p.Get(VertToEdge), p.Get(FaceToEdge)
	e2v, e2f := p.Get(EdgeToVert), p.Get(EdgeToFace)
	return p.
		Set(VertToVert, Compose(v2e, e2v)).
		Set(VertToFace, Compose(v2e, e2f)).
		Set(FaceToVert, Compose(f2e, e2v)).
		Set(FaceToFace, Compose(f2e, e2f))
}

// Mirror returns the wrap of the twin implied by w: every outward primary
// relation of w becomes the inverted inward relation of the twin. The
// derived relations of the result are recomputed.
func (w EdgeWrap) Mirror() EdgeWrap {
	return mirrorPrimary(w).Derive()
}

// mirrorPrimary maps w's primary relations onto the twin's, without deriving.
func mirrorPrimary(w EdgeWrap) EdgeWrap {
	var m EdgeWrap
	m = m.Set(VertToEdge, w.Get(EdgeToVert).Invert())
	m = m.Set(EdgeToVert, w.Get(VertToEdge).Invert())
	m = m.Set(FaceToEdge, w.Get(EdgeToFace).Invert())
	m = m.Set(EdgeToFace, w.Get(FaceToEdge).Invert())
	return m
}

// CrossMerge ORs each edge's outward bits into the twin's matching inward
// bit pair, so that both sides encode mirror-image information. Where the
// two sides disagree the axis collapses to none. Both results are canonical
// and carry freshly derived relations.
func CrossMerge(edge, twin EdgeWrap) (EdgeWrap, EdgeWrap) {
	e := edge.Primary() | mirrorPrimary(twin)
	t := twin.Primary() | mirrorPrimary(edge)
	return e.Derive(), t.Derive()
}

// Compose combines two consecutive relations into the transitive one.
// Opposite signs on one axis cancel; equal signs stay set.
func Compose(a, b Wrap) Wrap {
	return (a | b).Canonical()
}

// ComposeAll folds Compose over gs, starting from None.
func ComposeAll(gs ...Wrap) Wrap {
	acc := None
	for _, g := range gs {
		acc = Compose(acc, g)
	}
	return acc
}

// Invert swaps the positive and negative bit of each axis.
func (g Wrap) Invert() Wrap {
	return ((g&PosMask)<<1 | (g&NegMask)>>1) & WrapMask
}

// Canonical clears any axis with both sign bits set.
func (g Wrap) Canonical() Wrap {
	g &= WrapMask
	if g&Axis0Mask == Axis0Mask {
		g &^= Axis0Mask
	}
	if g&Axis1Mask == Axis1Mask {
		g &^= Axis1Mask
	}
	return g
}

// IsNone reports whether g carries no net translation.
func (g Wrap) IsNone() bool { return g.Canonical() == None }

// Axis0 returns the signed period count along axis 0: -1, 0 or +1.
func (g Wrap) Axis0() int { return axisSign(g.Canonical(), PosAxis0, NegAxis0) }

// Axis1 returns the signed period count along axis 1: -1, 0 or +1.
func (g Wrap) Axis1() int { return axisSign(g.Canonical(), PosAxis1, NegAxis1) }

func axisSign(g, pos, neg Wrap) int {
	switch {
	case g&pos != 0:
		return 1
	case g&neg != 0:
		return -1
	default:
		return 0
	}
}

// FromAxes builds a Wrap from signed period counts. Only the sign of each
// argument matters.
func FromAxes(axis0, axis1 int) Wrap {
	var g Wrap
	switch {
	case axis0 > 0:
		g |= PosAxis0
	case axis0 < 0:
		g |= NegAxis0
	}
	switch {
	case axis1 > 0:
		g |= PosAxis1
	case axis1 < 0:
		g |= NegAxis1
	}
	return g
}
