// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/mixedradix"
)

// World is one joint assignment of a factor's variables, in Vars() order.
type World []core.Assignment

// Value returns the value assigned to v in the world.
func (w World) Value(v *core.Variable) (core.Value, bool) {
	for _, a := range w {
		if a.Var.Equal(v) {
			return a.Value, true
		}
	}

	return core.Value{}, false
}

// All enumerates every (world, value) pair in canonical order: the last
// variable varies fastest. The sequence is finite and restartable, and each
// step yields a freshly allocated World the caller may keep.
//
//	for w, p := range phi.All() {
//		fmt.Println(w, p)
//	}
func (f *Factor) All() iter.Seq2[World, float64] {
	return func(yield func(World, float64) bool) {
		f.forEach(func(offset int, digits []int) bool {
			w := make(World, len(f.vars))
			for i, v := range f.vars {
				w[i] = core.Assignment{Var: v, Value: f.doms[i].At(digits[f.slot(i)])}
			}

			return yield(w, f.values[offset])
		})
	}
}

// forEach drives fn once per cell in canonical order with the cell offset
// and its digit tuple (indexed by radix slot). The tuple is reused between
// calls. Returning false from fn stops the walk.
//
// Enumerating with Increment from the zero tuple visits offsets 0..Size()-1
// in ascending order, so the offset is a plain counter.
func (f *Factor) forEach(fn func(offset int, digits []int) bool) {
	digits := make([]int, f.codec.Len())
	for offset := 0; ; offset++ {
		if !fn(offset, digits) {
			return
		}
		if !f.codec.Increment(digits) {
			return
		}
	}
}

// alignment maps digit tuples of a source factor onto offsets of a target
// factor whose variables are a subset of the source's.
type alignment struct {
	src   []int // src[targetSlot] = source slot holding the same variable
	codec *mixedradix.Codec
	buf   []int
}

// align builds the source→target alignment.
// Errors: ErrUnknownVariable if target has a variable source lacks,
// ErrDomainMismatch if a shared variable has a different domain.
func align(source, target *Factor) (*alignment, error) {
	a := &alignment{
		src:   make([]int, len(target.vars)),
		codec: target.codec,
		buf:   make([]int, len(target.vars)),
	}
	for ti, v := range target.vars {
		si, ok := source.pos[v.Name()]
		if !ok {
			return nil, fmt.Errorf("%s: %w", v.Name(), ErrUnknownVariable)
		}
		if !sameDomain(source.doms[si], target.doms[ti]) {
			return nil, fmt.Errorf("%s: %w", v.Name(), ErrDomainMismatch)
		}
		a.src[target.slot(ti)] = source.slot(si)
	}

	return a, nil
}

// offset returns the target offset matching a source digit tuple.
func (a *alignment) offset(sourceDigits []int) int {
	for ts, ss := range a.src {
		a.buf[ts] = sourceDigits[ss]
	}

	return a.codec.Offset(a.buf)
}

// sameDomain reports whether a and b list the same values in the same order.
func sameDomain(a, b *core.FiniteDomain) bool {
	if a == b {
		return true
	}
	if a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}

	return true
}
