package stabilizer

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	errs "github.com/matzehuels/graphstab/pkg/errors"
	"github.com/matzehuels/graphstab/pkg/pauli"
)

// DefaultMaxQubits bounds N when EnumerateOptions.MaxQubits is zero.
// 2^20 elements of 20 symbols each is roughly 40 MB.
const DefaultMaxQubits = 20

// cancelCheckInterval is how many elements a worker computes between
// context checks.
const cancelCheckInterval = 1 << 12

// EnumerateOptions configures EnumerateGroup.
type EnumerateOptions struct {
	// MaxQubits is the largest generator count accepted. Zero means
	// DefaultMaxQubits. Values above errors.MaxQubitsCeiling are rejected.
	MaxQubits int

	// Workers is the number of goroutines computing elements. Zero or one
	// runs sequentially.
	Workers int
}

func (o EnumerateOptions) maxQubits() int {
	if o.MaxQubits == 0 {
		return DefaultMaxQubits
	}
	return o.MaxQubits
}

// EnumerateGroup multiplies every subset of gens and returns the 2^N
// resulting elements sorted by pauli.Compare. The zero coefficient vector
// yields the identity with phase +1. N = 0 yields the single element ("", +1).
//
// It fails before allocating when N exceeds the qubit bound, when the
// generators have different lengths, or when ctx is cancelled. If two
// coefficient vectors produce the same element the generators are dependent
// and a MALFORMED_GENERATORS error wrapping *errors.CollisionError is
// returned. No partial group is ever returned.
func EnumerateGroup(ctx context.Context, gens []pauli.String, opts EnumerateOptions) (*Group, error) {
	if err := errs.ValidateMaxQubits(opts.MaxQubits); err != nil {
		return nil, err
	}
	if err := errs.ValidateWorkers(opts.Workers); err != nil {
		return nil, err
	}

	n := len(gens)
	if limit := opts.maxQubits(); n > limit {
		return nil, errs.New(errs.ErrCodeTooManyQubits,
			"%d generators exceed the limit of %d (group would hold 2^%d elements)", n, limit, n)
	}

	width := n
	if n > 0 {
		width = len(gens[0])
	}
	for i, g := range gens {
		if len(g) != width {
			return nil, errs.Wrap(errs.ErrCodeLengthMismatch, pauli.ErrLengthMismatch,
				"generator %d has length %d, want %d", i, len(g), width)
		}
	}

	total := uint64(1) << n
	elems := make([]pauli.Phased, total)
	if err := fill(ctx, gens, width, elems, opts.Workers); err != nil {
		return nil, err
	}

	slices.SortFunc(elems, pauli.Compare)
	if err := checkDistinct(gens, width, elems); err != nil {
		return nil, err
	}

	return &Group{
		width:      width,
		generators: cloneStrings(gens),
		elements:   elems,
	}, nil
}

// Element returns the product of the generators selected by c, multiplied
// left to right in increasing generator index, starting from (I…I, +1).
func Element(gens []pauli.String, width int, c uint64) pauli.Phased {
	acc := pauli.NewIdentity(width)
	for i, g := range gens {
		if Selected(c, i) {
			// Lengths are checked by the caller.
			_ = acc.MulInPlace(g)
		}
	}
	return acc
}

// fill computes elems[c] for every coefficient vector c. With more than one
// worker the range is split into contiguous chunks.
func fill(ctx context.Context, gens []pauli.String, width int, elems []pauli.Phased, workers int) error {
	total := uint64(len(elems))
	if workers <= 1 || total < uint64(workers) {
		return fillRange(ctx, gens, width, elems, 0, total)
	}

	g, gctx := errgroup.WithContext(ctx)
	chunk := (total + uint64(workers) - 1) / uint64(workers)
	for lo := uint64(0); lo < total; lo += chunk {
		hi := min(lo+chunk, total)
		g.Go(func() error {
			return fillRange(gctx, gens, width, elems, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// errgroup cancels gctx on return; report the caller's cancellation only.
	return ctx.Err()
}

func fillRange(ctx context.Context, gens []pauli.String, width int, elems []pauli.Phased, lo, hi uint64) error {
	for c := range coefficientRange(lo, hi) {
		if (c-lo)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		elems[c] = Element(gens, width, c)
	}
	return nil
}

// checkDistinct expects elems sorted. On a repeat it reports the first
// colliding pair found by collision.
func checkDistinct(gens []pauli.String, width int, elems []pauli.Phased) error {
	for k := 1; k < len(elems); k++ {
		if elems[k].Equal(elems[k-1]) {
			return errs.Wrap(errs.ErrCodeMalformedGenerators, collision(gens, width),
				"generators are not independent: %d of %d elements are distinct", distinctCount(elems), len(elems))
		}
	}
	return nil
}

// collision walks the coefficient vectors in order and returns the first
// pair of non-zero vectors with equal products. A pair with the zero vector
// is reported only when the identity is the sole repeated element.
func collision(gens []pauli.String, width int) *errs.CollisionError {
	identity := pauli.NewIdentity(width)
	seen := make(map[string]uint64)
	var identityAt uint64
	for c := range Coefficients(len(gens)) {
		if c == 0 {
			continue
		}
		e := Element(gens, width, c)
		if first, ok := seen[e.Key()]; ok {
			return &errs.CollisionError{First: first, Second: c, Qubits: len(gens), Pauli: e.String()}
		}
		seen[e.Key()] = c
		if identityAt == 0 && e.Equal(identity) {
			identityAt = c
		}
	}
	return &errs.CollisionError{First: 0, Second: identityAt, Qubits: len(gens), Pauli: identity.String()}
}

func distinctCount(sorted []pauli.Phased) int {
	if len(sorted) == 0 {
		return 0
	}
	n := 1
	for k := 1; k < len(sorted); k++ {
		if !sorted[k].Equal(sorted[k-1]) {
			n++
		}
	}
	return n
}

func cloneStrings(in []pauli.String) []pauli.String {
	out := make([]pauli.String, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}
