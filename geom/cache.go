// SPDX-License-Identifier: MIT

package geom

// derived is a cache for one derived attribute (transpose, inverse,
// determinant, magnitude, operand class, ...).
//
// It has exactly two states: Dirty (fresh == false, the zero value) and
// Fresh. A getter that finds it Dirty recomputes and stores, moving it to
// Fresh; every committed mutation of the owner moves it back to Dirty.
// Immutable owners never invalidate, so their first store is final.
//
// The error of a failed recomputation (e.g. ErrSingular) is cached alongside
// the cell, so a singular matrix reports the same error on every access
// until it is mutated.
type derived[T any] struct {
	fresh      bool
	cell       T
	err        error
	recomputes int
}

// stale reports whether the next access must recompute.
func (d *derived[T]) stale() bool { return !d.fresh }

// store records a recomputed cell (or failure) and marks the cache Fresh.
func (d *derived[T]) store(cell T, err error) {
	d.cell, d.err = cell, err
	d.fresh = true
	d.recomputes++
}

// load returns the cached cell and error. Valid only when !stale().
func (d *derived[T]) load() (T, error) { return d.cell, d.err }

// invalidate marks the cache Dirty. The cell is kept for reuse.
func (d *derived[T]) invalidate() { d.fresh = false }
