package predicates

import (
	"math"
	"math/big"

	"github.com/havenmesh/triangulate/types"
)

// The determinant-sign tests below follow the standard adaptive-precision
// scheme: evaluate in float64 with a conservative error bound, and only fall
// back to arbitrary-precision arithmetic when the fast result lands inside
// that bound. Every triangulation correctness guarantee rests on these two
// signs (orientation, in-circle) never flipping under round-off, so the
// fallback is never skipped for speed.
const signFilter = 1e-15

// orientSign returns the sign of the determinant |ax ay 1; bx by 1; cx cy 1|
// for points (a,b,c): +1 counter-clockwise, -1 clockwise, 0 collinear.
func orientSign(a, b, c types.Point) int {
	ax := b.X - a.X
	ay := b.Y - a.Y
	bx := c.X - a.X
	by := c.Y - a.Y
	det := ax*by - ay*bx

	maxMag := maxAbs(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	eps := maxMag * maxMag * signFilter
	if eps < signFilter {
		eps = signFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orientSignExact(a, b, c)
	}
}

func orientSignExact(a, b, c types.Point) int {
	ax := bigSub(b.X, a.X)
	ay := bigSub(b.Y, a.Y)
	bx := bigSub(c.X, a.X)
	by := bigSub(c.Y, a.Y)
	return det2(ax, ay, bx, by).Sign()
}

// inCircleSign returns the sign of the lifted determinant testing point d
// against the circumcircle of (a,b,c): +1 inside, -1 outside, 0 cocircular,
// assuming (a,b,c) is counter-clockwise.
func inCircleSign(a, b, c, d types.Point) int {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	ad2 := adx*adx + ady*ady
	bd2 := bdx*bdx + bdy*bdy
	cd2 := cdx*cdx + cdy*cdy

	det := ad2*(bdx*cdy-bdy*cdx) -
		bd2*(adx*cdy-ady*cdx) +
		cd2*(adx*bdy-ady*bdx)

	maxMag := maxAbs(adx, ady, bdx, bdy, cdx, cdy)
	eps := math.Pow(maxMag, 3) * signFilter
	if eps < signFilter {
		eps = signFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return inCircleSignExact(a, b, c, d)
	}
}

func inCircleSignExact(a, b, c, d types.Point) int {
	ax := bigSub(a.X, d.X)
	ay := bigSub(a.Y, d.Y)
	bx := bigSub(b.X, d.X)
	by := bigSub(b.Y, d.Y)
	cx := bigSub(c.X, d.X)
	cy := bigSub(c.Y, d.Y)

	ad2 := bigDot(ax, ay, ax, ay)
	bd2 := bigDot(bx, by, bx, by)
	cd2 := bigDot(cx, cy, cx, cy)

	term1 := bigFloat(0).Mul(ad2, det2(bx, by, cx, cy))
	term2 := bigFloat(0).Mul(bd2, det2(ax, ay, cx, cy))
	term3 := bigFloat(0).Mul(cd2, det2(ax, ay, bx, by))

	det := bigFloat(0).Add(term1, term3)
	det.Sub(det, term2)
	return det.Sign()
}

// lineCrossParams solves for the parameters t, u at which line a+t*(b-a)
// crosses line c+u*(d-c), falling back to exact arithmetic when the
// determinant is too close to zero for the float64 division to be trusted.
// ok is false when the two lines are parallel.
func lineCrossParams(a, b, c, d types.Point) (t, u float64, ok bool) {
	abx, aby := b.X-a.X, b.Y-a.Y
	cdx, cdy := d.X-c.X, d.Y-c.Y
	acx, acy := c.X-a.X, c.Y-a.Y

	den := abx*cdy - aby*cdx
	maxMag := maxAbs(abx, aby, cdx, cdy, acx, acy)
	tol := maxMag * maxMag * signFilter
	if tol < signFilter {
		tol = signFilter
	}
	if math.Abs(den) <= tol {
		return lineCrossParamsExact(a, b, c, d)
	}

	t = (acx*cdy - acy*cdx) / den
	u = (acx*aby - acy*abx) / den
	return t, u, true
}

func lineCrossParamsExact(a, b, c, d types.Point) (t, u float64, ok bool) {
	abx := bigSub(b.X, a.X)
	aby := bigSub(b.Y, a.Y)
	cdx := bigSub(d.X, c.X)
	cdy := bigSub(d.Y, c.Y)
	acx := bigSub(c.X, a.X)
	acy := bigSub(c.Y, a.Y)

	den := det2(abx, aby, cdx, cdy)
	if den.Sign() == 0 {
		return 0, 0, false
	}

	tBig := bigFloat(0).Quo(det2(acx, acy, cdx, cdy), den)
	uBig := bigFloat(0).Quo(det2(acx, acy, abx, aby), den)

	t, _ = tBig.Float64()
	u, _ = uBig.Float64()
	return t, u, true
}

func det2(ax, ay, bx, by *big.Float) *big.Float {
	out := bigFloat(0).Mul(ax, by)
	out.Sub(out, bigFloat(0).Mul(ay, bx))
	return out
}

func bigDot(ax, ay, bx, by *big.Float) *big.Float {
	out := bigFloat(0).Mul(ax, bx)
	out.Add(out, bigFloat(0).Mul(ay, by))
	return out
}

func bigSub(x, y float64) *big.Float {
	return bigFloat(0).Sub(bigFloat(x), bigFloat(y))
}

func bigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(v)
}

func maxAbs(values ...float64) float64 {
	max := 0.0
	for _, v := range values {
		if abs := math.Abs(v); abs > max {
			max = abs
		}
	}
	return max
}
