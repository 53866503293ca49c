package expansion

// Expansion is a non-overlapping, increasing-magnitude sequence of
// float64 components representing, exactly, their unrounded sum. A
// nil or zero-length Expansion represents the value 0. Every routine
// that produces an Expansion writes into a caller-supplied backing
// slice (capacity sized per that routine's doc comment) and returns
// the resulting, possibly shorter, sub-slice — callers never need to
// heap-allocate to use this package.
type Expansion []float64

// Leading returns the most significant component of e, whose sign is
// the sign of the exact value e represents, or 0 if e is empty.
func (e Expansion) Leading() float64 {
	if len(e) == 0 {
		return 0
	}
	return e[len(e)-1]
}

// FromScalar lifts a single float64 into a length-1 Expansion, stored
// in out[:1]. Callers pass a backing array of capacity >= 1.
func FromScalar(out Expansion, a float64) Expansion {
	mustFit(cap(out), 1)
	out = out[:1]
	out[0] = a
	return out
}

// FromDiff computes a-b exactly as a length-2 Expansion (via TwoDiff),
// stored in out[:2]. Callers pass a backing array of capacity >= 2.
// The low component is kept even when zero, preserving the general
// zero-tolerant invariant the rest of this package relies on.
func FromDiff(out Expansion, a, b float64) Expansion {
	mustFit(cap(out), 2)
	hi, lo := TwoDiff(a, b)
	out = out[:2]
	out[0], out[1] = lo, hi
	return out
}

// Sum computes e+f exactly, zero-eliminated, into out. Requires
// cap(out) >= len(e)+len(f). This is Shewchuk's
// fast_expansion_sum_zeroelim: e and f must each independently satisfy
// the Expansion invariants; the merge-and-cascade below produces a
// result that does too.
func Sum(out, e, f Expansion) Expansion {
	mustFit(cap(out), len(e)+len(f))
	return fastExpansionSum(out[:0], e, f)
}

// Sub computes e-f exactly, zero-eliminated, into out. Requires
// cap(out) >= len(e)+len(f). Implemented as Sum(e, -f): negating every
// component of an Expansion preserves both invariants and is exact.
func Sub(out, e, f Expansion) Expansion {
	mustFit(cap(out), len(e)+len(f))
	neg := make(Expansion, len(f))
	for i, v := range f {
		neg[i] = -v
	}
	return fastExpansionSum(out[:0], e, neg)
}

func fastExpansionSum(h, e, f Expansion) Expansion {
	elen, flen := len(e), len(f)
	if elen == 0 {
		return append(h, f...)
	}
	if flen == 0 {
		return append(h, e...)
	}

	ei, fi := 0, 0
	enow, fnow := e[0], f[0]
	var q float64
	if magLess(fnow, enow) {
		q = enow
		ei++
		if ei < elen {
			enow = e[ei]
		}
	} else {
		q = fnow
		fi++
		if fi < flen {
			fnow = f[fi]
		}
	}

	if ei < elen && fi < flen {
		var qNew, hh float64
		if magLess(fnow, enow) {
			qNew, hh = FastTwoSum(enow, q)
			ei++
			if ei < elen {
				enow = e[ei]
			}
		} else {
			qNew, hh = FastTwoSum(fnow, q)
			fi++
			if fi < flen {
				fnow = f[fi]
			}
		}
		q = qNew
		if hh != 0 {
			h = append(h, hh)
		}

		for ei < elen && fi < flen {
			var qNew2, hh2 float64
			if magLess(fnow, enow) {
				qNew2, hh2 = TwoSum(q, enow)
				ei++
				if ei < elen {
					enow = e[ei]
				}
			} else {
				qNew2, hh2 = TwoSum(q, fnow)
				fi++
				if fi < flen {
					fnow = f[fi]
				}
			}
			q = qNew2
			if hh2 != 0 {
				h = append(h, hh2)
			}
		}
	}
	for ei < elen {
		qNew, hh := TwoSum(q, enow)
		ei++
		if ei < elen {
			enow = e[ei]
		}
		q = qNew
		if hh != 0 {
			h = append(h, hh)
		}
	}
	for fi < flen {
		qNew, hh := TwoSum(q, fnow)
		fi++
		if fi < flen {
			fnow = f[fi]
		}
		q = qNew
		if hh != 0 {
			h = append(h, hh)
		}
	}
	if q != 0 || len(h) == 0 {
		h = append(h, q)
	}
	return h
}

// magLess reports whether enow belongs before fnow in the merge, i.e.
// whether |enow| <= |fnow|, using Shewchuk's branch-free comparison
// trick (avoids an explicit math.Abs call in the hot merge loop).
func magLess(fnow, enow float64) bool {
	return (fnow > enow) == (fnow > -enow)
}

// Scale computes e*b exactly, zero-eliminated, into out. Requires
// cap(out) >= 2*len(e). This is Shewchuk's scale_expansion_zeroelim.
func Scale(out Expansion, e Expansion, b float64) Expansion {
	mustFit(cap(out), 2*len(e))
	h := out[:0]
	if len(e) == 0 {
		return h
	}
	bh, bl := Split(b)
	q, hh := TwoProductPreSplit(e[0], b, bh, bl)
	if hh != 0 {
		h = append(h, hh)
	}
	for i := 1; i < len(e); i++ {
		p1, p0 := TwoProductPreSplit(e[i], b, bh, bl)
		sum, hh1 := TwoSum(q, p0)
		if hh1 != 0 {
			h = append(h, hh1)
		}
		qNew, hh2 := FastTwoSum(p1, sum)
		if hh2 != 0 {
			h = append(h, hh2)
		}
		q = qNew
	}
	if q != 0 || len(h) == 0 {
		h = append(h, q)
	}
	return h
}

// Multiply computes the exact product e*f, zero-eliminated, into out.
// Requires cap(out) >= 2*len(e)*len(f). Not part of Shewchuk's
// original predicates.c, which only ever scales an Expansion by a bare
// float64; this is the direct generalization to Expansion*Expansion
// needed for the squared-distance terms in bisect/inball, which
// square a 2-term coordinate-difference Expansion against itself.
// Implemented by distributing over f's components with Scale and
// accumulating the partial products with Sum; the partial-product and
// running-total buffers are allocated internally. Only the exact
// fallback kernels ever reach this routine; the filtered fast path
// stays allocation-free.
func Multiply(out, e, f Expansion) Expansion {
	mustFit(cap(out), 2*len(e)*len(f))
	acc := Expansion(nil)
	for _, fj := range f {
		term := Scale(make(Expansion, 2*len(e)), e, fj)
		acc = fastExpansionSum(make(Expansion, 0, len(acc)+len(term)), acc, term)
	}
	out = out[:len(acc)]
	copy(out, acc)
	return out
}

// Dot evaluates the sum of pairwise products sum_i(u_i * v_i) as a
// single Expansion, the convenience behind the squared-distance terms
// used throughout the predicate kernels (e.g. |c-a|^2 = Dot(out,
// (c-a)_x,(c-a)_x,
// (c-a)_y,(c-a)_y[, (c-a)_z,(c-a)_z])). pairs must have even length,
// each (pairs[2k], pairs[2k+1]) being one (u,v) term.
func Dot(out Expansion, pairs ...Expansion) Expansion {
	if len(pairs)%2 != 0 {
		panic("expansion: Dot requires an even number of operands")
	}
	acc := Expansion(nil)
	for i := 0; i+1 < len(pairs); i += 2 {
		u, v := pairs[i], pairs[i+1]
		prod := Multiply(make(Expansion, 2*len(u)*len(v)), u, v)
		acc = fastExpansionSum(make(Expansion, 0, len(acc)+len(prod)), acc, prod)
	}
	mustFit(cap(out), len(acc))
	out = out[:len(acc)]
	copy(out, acc)
	return out
}
