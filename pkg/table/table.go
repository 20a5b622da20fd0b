// Package table ingests raw truth tables and prepares them for compilation.
package table

import "github.com/aretw0/verdict/pkg/domain"

// DefaultDontCare is the reserved literal users write for an unconstrained
// output. It is translated to the internal sentinel here, before any value
// reaches the compiler, so the sentinel can never collide with a literal.
const DefaultDontCare = "*"

// Translate converts raw output strings into domain Values. The dontCare
// token (DefaultDontCare when empty) becomes the sentinel; every other string
// is an opaque literal, never parsed or interpreted.
func Translate(values []string, dontCare string) []domain.Value {
	if dontCare == "" {
		dontCare = DefaultDontCare
	}
	out := make([]domain.Value, len(values))
	for i, v := range values {
		if v == dontCare {
			out[i] = domain.AnyValue
		} else {
			out[i] = domain.NewLiteral(v)
		}
	}
	return out
}

// Inputs generates the row-major input combinations matching the table
// layout: row 0 is the all-true assignment, and variable j of row r is true
// when bit (k-1-j) of r is clear. Row r of a conforming table holds the
// output for Inputs(k)[r].
func Inputs(k int) [][]bool {
	rows := make([][]bool, 1<<k)
	for r := range rows {
		row := make([]bool, k)
		for j := 0; j < k; j++ {
			row[j] = r&(1<<(k-1-j)) == 0
		}
		rows[r] = row
	}
	return rows
}
