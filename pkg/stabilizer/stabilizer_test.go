package stabilizer_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphstab/pkg/adjacency"
	errs "github.com/matzehuels/graphstab/pkg/errors"
	"github.com/matzehuels/graphstab/pkg/pauli"
	"github.com/matzehuels/graphstab/pkg/stabilizer"
)

// randomGraph returns a symmetric zero-diagonal matrix with edge probability p.
func randomGraph(n int, p float64, seed uint64) adjacency.Matrix {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m := adjacency.New(n)
	for i := range n {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				m[i][j], m[j][i] = 1, 1
			}
		}
	}
	return m
}

func texts(g *stabilizer.Group) []string {
	var out []string
	for e := range g.All() {
		out = append(out, e.String())
	}
	return out
}

func TestDeriveGenerators_Triangle(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(adjacency.Complete(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"XZZ", "ZXZ", "ZZX"}, stabilizer.FormatGenerators(gens))
}

func TestDeriveGenerators_EmptyGraph(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(adjacency.New(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"XI", "IX"}, stabilizer.FormatGenerators(gens))
}

func TestDeriveGenerators_ZeroQubits(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(adjacency.Matrix{})
	require.NoError(t, err)
	assert.NotNil(t, gens)
	assert.Empty(t, gens)
}

func TestDeriveGenerators_NonSquare(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(adjacency.Matrix{{0, 1}, {1}})
	assert.Nil(t, gens, "no partial generator list on error")
	assert.ErrorIs(t, err, adjacency.ErrNonSquare)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidShape))
}

// TestDeriveGenerators_ToggleSemantics covers asymmetric rows, weighted
// entries and a diagonal entry clearing the pivot.
func TestDeriveGenerators_ToggleSemantics(t *testing.T) {
	tests := []struct {
		name string
		m    adjacency.Matrix
		want []string
	}{
		{"asymmetric", adjacency.Matrix{{0, 1}, {0, 0}}, []string{"XZ", "IX"}},
		{"weights are booleans", adjacency.Matrix{{0, 2.5}, {-1, 0}}, []string{"XZ", "ZX"}},
		{"diagonal clears pivot", adjacency.Matrix{{1, 1}, {1, 0}}, []string{"IZ", "ZX"}},
		{"path", adjacency.Matrix{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}, []string{"XZI", "ZXZ", "IZX"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gens, err := stabilizer.DeriveGenerators(tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stabilizer.FormatGenerators(gens))
		})
	}
}

func TestDeriveGenerators_PivotIsX(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		m := randomGraph(9, 0.4, seed)
		gens, err := stabilizer.DeriveGenerators(m)
		require.NoError(t, err)
		require.Len(t, gens, 9)
		for i, g := range gens {
			require.Len(t, g, 9)
			assert.Equal(t, pauli.X, g[i], "generator %d", i)
			for j, s := range g {
				if j == i {
					continue
				}
				want := pauli.I
				if m.HasEdge(i, j) {
					want = pauli.Z
				}
				assert.Equal(t, want, s, "generator %d position %d", i, j)
			}
		}
	}
}

func TestDeriveGenerators_Deterministic(t *testing.T) {
	m := randomGraph(8, 0.5, 42)
	a, err := stabilizer.DeriveGenerators(m)
	require.NoError(t, err)
	b, err := stabilizer.DeriveGenerators(m)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEnumerateGroup_Triangle(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(adjacency.Complete(3))
	require.NoError(t, err)

	g, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, 8, g.Len())
	assert.Equal(t, []string{"+III", "+IYY", "-XXX", "+XZZ", "+YIY", "+YYI", "+ZXZ", "+ZZX"}, texts(g))

	assert.True(t, g.Contains(pauli.NewIdentity(3)))

	all := pauli.NewIdentity(3)
	for _, gen := range gens {
		require.NoError(t, all.MulInPlace(gen))
	}
	assert.True(t, g.Contains(all), "product of all generators %s", all)

	require.NoError(t, g.Verify())
}

func TestEnumerateGroup_EmptyGraph(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(adjacency.New(2))
	require.NoError(t, err)

	g, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"+II", "+IX", "+XI", "+XX"}, texts(g))
}

func TestEnumerateGroup_ZeroQubits(t *testing.T) {
	g, err := stabilizer.EnumerateGroup(context.Background(), nil, stabilizer.EnumerateOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	assert.Equal(t, "", g.At(0).Pauli.String())
	assert.Equal(t, pauli.PlusOne, g.At(0).Phase)
	assert.NoError(t, g.Verify())
}

func TestEnumerateGroup_SizeAndDistinct(t *testing.T) {
	for n := 0; n <= 10; n++ {
		gens, err := stabilizer.DeriveGenerators(randomGraph(n, 0.5, uint64(n)+7))
		require.NoError(t, err)

		g, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
		require.NoError(t, err)
		require.Equal(t, 1<<n, g.Len(), "n=%d", n)

		seen := make(map[string]bool, g.Len())
		for e := range g.All() {
			assert.False(t, seen[e.Key()], "duplicate %s", e)
			seen[e.Key()] = true
		}
		assert.True(t, seen[pauli.NewIdentity(n).Key()], "identity missing for n=%d", n)
	}
}

func TestEnumerateGroup_ParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()
	for _, n := range []int{1, 5, 10, 12} {
		gens, err := stabilizer.DeriveGenerators(randomGraph(n, 0.3, 99))
		require.NoError(t, err)

		seq, err := stabilizer.EnumerateGroup(ctx, gens, stabilizer.EnumerateOptions{})
		require.NoError(t, err)
		for _, w := range []int{2, 3, 8} {
			par, err := stabilizer.EnumerateGroup(ctx, gens, stabilizer.EnumerateOptions{Workers: w})
			require.NoError(t, err)
			assert.Equal(t, seq.Elements(), par.Elements(), "n=%d workers=%d", n, w)
		}
	}
}

func TestEnumerateGroup_Deterministic(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(randomGraph(7, 0.5, 3))
	require.NoError(t, err)

	a, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.NoError(t, err)
	b, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, a.Elements(), b.Elements())
}

func TestEnumerateGroup_Collision(t *testing.T) {
	gens := []pauli.String{pauli.MustParse("XZ"), pauli.MustParse("XZ")}
	g, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	assert.Nil(t, g)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeMalformedGenerators))

	var coll *errs.CollisionError
	require.True(t, errors.As(err, &coll))
	assert.Equal(t, uint64(0b01), coll.First)
	assert.Equal(t, uint64(0b10), coll.Second)
	assert.Equal(t, "+XZ", coll.Pauli)
}

func TestEnumerateGroup_SelfLoopCollides(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(adjacency.Matrix{{1}})
	require.NoError(t, err)
	_, err = stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	assert.True(t, errs.Is(err, errs.ErrCodeMalformedGenerators))

	// The lone generator is I, so it only collides with the empty product.
	var coll *errs.CollisionError
	require.True(t, errors.As(err, &coll))
	assert.Equal(t, uint64(0), coll.First)
	assert.Equal(t, uint64(1), coll.Second)
	assert.Equal(t, "+I", coll.Pauli)
}

func TestEnumerateGroup_CollisionReportsLowestPair(t *testing.T) {
	// XI·IX = XX repeats the third generator. The full product 0b111 is the
	// identity as well, but 0b011 and 0b100 come first.
	gens := []pauli.String{pauli.MustParse("XI"), pauli.MustParse("IX"), pauli.MustParse("XX")}
	_, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.Error(t, err)

	var coll *errs.CollisionError
	require.True(t, errors.As(err, &coll))
	assert.Equal(t, uint64(0b011), coll.First)
	assert.Equal(t, uint64(0b100), coll.Second)
	assert.Equal(t, "+XX", coll.Pauli)
}

func TestEnumerateGroup_LengthMismatch(t *testing.T) {
	gens := []pauli.String{pauli.MustParse("XZ"), pauli.MustParse("X")}
	_, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	assert.ErrorIs(t, err, pauli.ErrLengthMismatch)
	assert.True(t, errs.Is(err, errs.ErrCodeLengthMismatch))
}

func TestEnumerateGroup_TooManyQubits(t *testing.T) {
	gens := make([]pauli.String, stabilizer.DefaultMaxQubits+1)
	for i := range gens {
		gens[i] = pauli.Identity(len(gens))
	}
	_, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	assert.True(t, errs.Is(err, errs.ErrCodeTooManyQubits))

	small, err := stabilizer.DeriveGenerators(adjacency.Complete(4))
	require.NoError(t, err)
	_, err = stabilizer.EnumerateGroup(context.Background(), small, stabilizer.EnumerateOptions{MaxQubits: 3})
	assert.True(t, errs.Is(err, errs.ErrCodeTooManyQubits))

	_, err = stabilizer.EnumerateGroup(context.Background(), small, stabilizer.EnumerateOptions{MaxQubits: 31})
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
}

func TestEnumerateGroup_Cancelled(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(randomGraph(10, 0.5, 1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, w := range []int{0, 4} {
		g, err := stabilizer.EnumerateGroup(ctx, gens, stabilizer.EnumerateOptions{Workers: w})
		assert.Nil(t, g)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", w)
	}
}

// TestGeneratorOrder_Phase checks the swap rule on generator products: the
// phase flips when the pair anti-commutes and is unchanged otherwise.
func TestGeneratorOrder_Phase(t *testing.T) {
	tests := []struct {
		name        string
		m           adjacency.Matrix
		anticommute bool
	}{
		// XZ and IX differ on one position (Z vs X).
		{"single overlap", adjacency.Matrix{{0, 1}, {0, 0}}, true},
		// XZ and ZX differ on two positions.
		{"double overlap", adjacency.Matrix{{0, 1}, {1, 0}}, false},
		// XI and IX do not overlap.
		{"disjoint", adjacency.New(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gens, err := stabilizer.DeriveGenerators(tt.m)
			require.NoError(t, err)

			p01, ph01, err := pauli.MultiplyStrings(gens[0], gens[1])
			require.NoError(t, err)
			p10, ph10, err := pauli.MultiplyStrings(gens[1], gens[0])
			require.NoError(t, err)

			assert.Equal(t, p01, p10)
			if tt.anticommute {
				assert.Equal(t, ph01.Neg(), ph10)
			} else {
				assert.Equal(t, ph01, ph10)
			}
		})
	}
}

func TestGroup_Lookup(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(adjacency.Complete(3))
	require.NoError(t, err)
	g, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.NoError(t, err)

	ph, ok := g.Lookup(pauli.MustParse("XXX"))
	require.True(t, ok)
	assert.Equal(t, pauli.MinusOne, ph)

	_, ok = g.Lookup(pauli.MustParse("XXI"))
	assert.False(t, ok)

	assert.False(t, g.Contains(pauli.Phased{Pauli: pauli.MustParse("XXX"), Phase: pauli.PlusOne}))
	assert.Equal(t, "group(3 qubits, 8 elements)", g.String())
}

func TestGroup_ElementsAreCopies(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(adjacency.Complete(2))
	require.NoError(t, err)
	g, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.NoError(t, err)

	elems := g.Elements()
	elems[0].Pauli[0] = pauli.Z
	assert.Equal(t, "+II", g.At(0).String())

	gens[0][0] = pauli.Y
	assert.Equal(t, "XZ", g.Generators()[0].String(), "group keeps its own generator copy")
}

func TestGroup_JSONRoundTrip(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(randomGraph(5, 0.5, 11))
	require.NoError(t, err)
	g, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.NoError(t, err)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var back stabilizer.Group
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g.Elements(), back.Elements())
	assert.Equal(t, g.Generators(), back.Generators())
	assert.NoError(t, back.Verify())
}

func TestGroup_UnmarshalRejectsBadCount(t *testing.T) {
	data := []byte(`{"qubits":1,"generators":["X"],"elements":[{"pauli":"I","phase":"+1"}]}`)
	var g stabilizer.Group
	err := json.Unmarshal(data, &g)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))
}

func TestGroup_UnmarshalRejectsTooManyGenerators(t *testing.T) {
	gen := `"X` + strings.Repeat("I", 63) + `"`
	gens := strings.TrimSuffix(strings.Repeat(gen+",", 64), ",")
	data := []byte(`{"qubits":64,"generators":[` + gens + `],"elements":[]}`)

	var g stabilizer.Group
	err := json.Unmarshal(data, &g)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))
}

func TestGroup_VerifyRejectsAntiCommuting(t *testing.T) {
	// XZ and IX anti-commute but still give four distinct products.
	gens, err := stabilizer.DeriveGenerators(adjacency.Matrix{{0, 1}, {0, 0}})
	require.NoError(t, err)
	g, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())

	err = g.Verify()
	assert.True(t, errs.Is(err, errs.ErrCodeMalformedGenerators))
	assert.Contains(t, err.Error(), "anti-commute")
}

func TestCoefficients(t *testing.T) {
	var got []uint64
	for c := range stabilizer.Coefficients(3) {
		got = append(got, c)
	}
	assert.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7}, got)

	// Early break leaves the sequence restartable.
	for c := range stabilizer.Coefficients(3) {
		if c == 2 {
			break
		}
	}
	count := 0
	for range stabilizer.Coefficients(0) {
		count++
	}
	assert.Equal(t, 1, count)

	assert.True(t, stabilizer.Selected(0b101, 2))
	assert.False(t, stabilizer.Selected(0b101, 1))
}

func TestGroup_Decompose(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(randomGraph(6, 0.5, 5))
	require.NoError(t, err)
	g, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.NoError(t, err)

	for c := range stabilizer.Coefficients(len(gens)) {
		e := stabilizer.Element(gens, len(gens), c)
		got, ok := g.Decompose(e)
		require.True(t, ok, "element %s", e)
		assert.Equal(t, c, got)
	}

	_, ok := g.Decompose(pauli.Phased{Pauli: pauli.Identity(6), Phase: pauli.MinusOne})
	assert.False(t, ok)
}
