package geom

// Wrap computes the periodic index of a focus coordinate i displaced by di
// along an axis of length D. It is defined for any signed di, including
// displacements larger in magnitude than D.
//
// Property (periodicity closure): Wrap(Wrap(c, di, D), -di, D) == c for all
// signed di and all D > 0. See TestWrapClosure.
//
// Complexity: O(1).
func Wrap(i, di, D int) int {
	return ((i+di)%D + D) % D
}

// Cardinality returns the number of cells in a neighborhood of the given
// rank, radius, and shape (the focus cell is included in the count).
//
//   - Moore:      (2r+1)^rank
//   - VonNeumann: 2*rank*radius + 1 (engine convention: axial arms + center,
//     not a textbook Von Neumann ball at radius > 1; preserved intentionally,
//     see package geom's test for the documented open question).
//
// Complexity: O(rank).
func Cardinality(rank, radius int, shape Shape) int {
	switch shape {
	case VonNeumann:
		return 2*rank*radius + 1
	default: // Moore
		f := 2*radius + 1
		n := 1
		for a := 0; a < rank; a++ {
			n *= f
		}
		return n
	}
}

// IsDiagonal2D reports whether the offset (i, j) is a diagonal (non-axial)
// neighbor: both axes non-zero.
//
// Complexity: O(1).
func IsDiagonal2D(i, j int) bool {
	return i != 0 && j != 0
}

// IsDiagonal3D reports whether the offset (i, j, k) is diagonal under the
// engine's source-compatible (asymmetric) predicate: when the axis-1 offset
// is zero, diagonal requires both other axes non-zero; otherwise diagonal
// requires either other axis non-zero.
//
// The two-branch form replicates the original engine's predicate. Because
// each branch only asks which axes are non-zero, it classifies every offset
// the same way as the uniform "at least two non-zero axes" definition, at
// any radius. See TestDiagonal3DAsymmetryDocumented.
//
// Complexity: O(1).
func IsDiagonal3D(i, j, k int) bool {
	if i == 0 {
		return j != 0 && k != 0
	}
	return j != 0 || k != 0
}

// EnumerateOffsets returns the canonical, deterministic sequence of offsets
// for the given rank, radius, and shape. Moore neighborhoods are enumerated
// in lexicographic order by axis; Von Neumann neighborhoods follow the
// arms-then-center layout documented on FlatToOffset.
//
// Complexity: O(Cardinality(rank, radius, shape)).
func EnumerateOffsets(rank, radius int, shape Shape) []Offset {
	n := Cardinality(rank, radius, shape)
	offsets := make([]Offset, n)
	for q := 0; q < n; q++ {
		offsets[q] = FlatToOffset(q, rank, radius, shape)
	}
	return offsets
}

// FlatToOffset maps a flat enumeration index q to its offset under the
// given rank, radius, and shape. It is the inverse of EnumerateOffsets in
// the sense that EnumerateOffsets(rank, radius, shape)[q] equals
// FlatToOffset(q, rank, radius, shape) for every valid q.
//
// Moore layout: for factor f = 2*radius+1, axis i (0-indexed, most
// significant first) takes digit (q / f^(rank-1-i)) mod f, offset digit-r.
//
// Von Neumann layout (rank k, radius r, arm length r, L = 2*k*r+1):
//   - rank 1: offset = q - r.
//   - rank k>1: the first r entries are the axis-1 negative arm
//     (q-r, 0, ..., 0); the next Cardinality(k-1, r, VonNeumann) entries are
//     a nested Von Neumann block over axes 2..k with axis-1 held at 0; the
//     last r entries are the axis-1 positive arm (q-3r ... in rank 2; in
//     general q shifted past the negative arm and nested block, offset 1..r).
//
// Complexity: O(rank).
func FlatToOffset(q, rank, radius int, shape Shape) Offset {
	if shape == VonNeumann {
		return vonNeumannOffset(rank, radius, q)
	}
	return mooreOffset(q, rank, radius)
}

func mooreOffset(q, rank, radius int) Offset {
	f := 2*radius + 1
	off := make(Offset, rank)
	for i := 0; i < rank; i++ {
		power := 1
		for a := 0; a < rank-1-i; a++ {
			power *= f
		}
		digit := (q / power) % f
		off[i] = digit - radius
	}
	return off
}

// vonNeumannOffset implements the recursive arms-then-center layout
// described on FlatToOffset.
func vonNeumannOffset(rank, radius, q int) Offset {
	if rank == 1 {
		return Offset{q - radius}
	}

	armLen := radius
	subSize := Cardinality(rank-1, radius, VonNeumann)

	switch {
	case q < armLen:
		// Negative arm on axis 1: axis-1 offset in [-radius, -1], rest 0.
		off := make(Offset, rank)
		off[0] = q - radius
		return off
	case q < armLen+subSize:
		// Nested Von Neumann block over axes 2..rank, axis-1 held at 0.
		sub := vonNeumannOffset(rank-1, radius, q-armLen)
		off := make(Offset, rank)
		copy(off[1:], sub)
		return off
	default:
		// Positive arm on axis 1: axis-1 offset in [1, radius], rest 0.
		qq := q - (armLen + subSize)
		off := make(Offset, rank)
		off[0] = qq + 1
		return off
	}
}
