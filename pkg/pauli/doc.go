// Package pauli implements the single-qubit Pauli algebra and its extension to
// multi-qubit Pauli strings.
//
// # Symbols and phases
//
// A [Symbol] is one of I, X, Y, Z. Multiplying two symbols with [MultiplySymbol]
// yields a symbol and a [Phase] from {+1, +i, -1, -i}. Phases are stored as the
// power of i (0..3), so products stay exact; [Phase.Complex] converts to a
// complex128 scalar for display or interop.
//
// # Strings
//
// A [String] is an ordered sequence of symbols where position k acts on qubit k.
// [MultiplyStrings] multiplies two equal-length strings position by position and
// returns the accumulated phase. Order matters: X·Y = +iZ but Y·X = -iZ.
//
//	a := pauli.MustParse("XZ")
//	b := pauli.MustParse("ZX")
//	p, ph, _ := pauli.MultiplyStrings(a, b) // YY, +1
//
// A [Phased] pairs a string with a phase and is the element type of stabilizer
// groups. [Compare] defines the total order used to sort them.
package pauli
