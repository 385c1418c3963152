package render

// clipPlane identifies one of the six homogeneous clip-space half-space
// boundaries x = ±w, y = ±w, z = ±w.
type clipPlane int

const (
	planeNegX clipPlane = iota
	planePosX
	planeNegY
	planePosY
	planeNegZ
	planePosZ
)

// clipPlanes enumerates the six planes in the fixed order the clipper
// walks them: -x, +x, -y, +y, -z, +z.
var clipPlanes = [6]clipPlane{planeNegX, planePosX, planeNegY, planePosY, planeNegZ, planePosZ}

// signedDistance returns d such that d > 0 means the vertex is inside the
// half-space for the given plane.
func signedDistance(p clipPlane, clip [4]float64) float64 {
	x, y, z, w := clip[0], clip[1], clip[2], clip[3]
	switch p {
	case planeNegX:
		return w + x
	case planePosX:
		return w - x
	case planeNegY:
		return w + y
	case planePosY:
		return w - y
	case planeNegZ:
		return w + z
	case planePosZ:
		return w - z
	}
	return 0
}

func clipCoords(v Vertex) [4]float64 {
	return [4]float64{v.ClipPosition.X, v.ClipPosition.Y, v.ClipPosition.Z, v.ClipPosition.W}
}

// ClipPolygon runs Sutherland-Hodgman on the polygon described by indices
// (into vb) against the six clip-space half-spaces x=±w, y=±w, z=±w, in
// that fixed order. It returns a new index list; vb is mutated in place
// with any vertices created by boundary-crossing interpolation. The
// result is empty if the polygon lies entirely outside the clip volume.
func ClipPolygon(vb *VertexBuffer, indices []int) []int {
	current := indices
	for _, plane := range clipPlanes {
		if len(current) == 0 {
			return current
		}
		current = clipAgainstPlane(vb, current, plane)
	}
	return current
}

func clipAgainstPlane(vb *VertexBuffer, indices []int, plane clipPlane) []int {
	out := make([]int, 0, len(indices)+1)
	n := len(indices)
	start := indices[n-1]
	startInside := signedDistance(plane, clipCoords(vb.At(start))) > 0

	for _, end := range indices {
		endInside := signedDistance(plane, clipCoords(vb.At(end))) > 0

		switch {
		case startInside && endInside:
			out = append(out, end)
		case startInside && !endInside:
			out = append(out, intersect(vb, plane, start, end))
		case !startInside && endInside:
			out = append(out, intersect(vb, plane, start, end), end)
		}

		start, startInside = end, endInside
	}
	return out
}

// intersect appends the vertex where edge (start, end) crosses plane.
func intersect(vb *VertexBuffer, plane clipPlane, start, end int) int {
	dStart := signedDistance(plane, clipCoords(vb.At(start)))
	dEnd := signedDistance(plane, clipCoords(vb.At(end)))
	t := dStart / (dStart - dEnd)
	return vb.AppendInterpolated(start, end, t)
}
