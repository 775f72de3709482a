// SPDX-License-Identifier: MIT

package geom

import (
	"strconv"
	"strings"
)

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// formatTuple renders name(c0, c1, ...) with %g-style components.
func formatTuple(name string, values []float32) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			b.WriteString(fmtSep)
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	b.WriteByte(')')

	return b.String()
}

// formatRows renders an n×n row-major buffer one bracketed row per line.
func formatRows(values []float32, n int) string {
	var b strings.Builder
	var i, j int
	for i = 0; i < n; i++ {
		b.WriteString(fmtRowOpen)
		for j = 0; j < n; j++ {
			b.WriteString(strconv.FormatFloat(float64(values[i*n+j]), 'g', -1, 32))
			if j+1 < n {
				b.WriteString(fmtSep)
			}
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}
