// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"math"
	"testing"
)

func TestTable_Index(t *testing.T) {
	t.Parallel()

	table := make(Table, 1024)

	tests := []struct {
		phase float32
		want  int
	}{
		{0, 0},
		{0.5, 511},
		{0.999999, 1022},
		{1, 1023},
		{1.5, 1023},
		{-0.25, 0},
	}

	for _, tt := range tests {
		if got := table.Index(tt.phase); got != tt.want {
			t.Errorf("Index(%v) = %d, want %d", tt.phase, got, tt.want)
		}
	}
}

func TestTable_Lookup(t *testing.T) {
	t.Parallel()

	table := Table{0, 1, 2, 3, 4}

	// 0.6*4 = 2.4 -> lower index 2, no interpolation
	if got := table.Lookup(0.6); got != 2 {
		t.Errorf("Lookup(0.6) = %v, want 2", got)
	}
	if got := table.Lookup(0.99); got != 3 {
		t.Errorf("Lookup(0.99) = %v, want 3", got)
	}
}

func TestTable_Lerp(t *testing.T) {
	t.Parallel()

	table := Table{0, 10, 20}

	tests := []struct {
		name  string
		index float32
		want  float32
	}{
		{"below one uses index as weight", 0.5, 5},
		{"fractional part as weight", 1.25, 12.5},
		{"whole index", 1, 10},
		{"last index", 2, 20},
		{"clamped low", -3, 0},
		{"clamped high", 7, 20},
		{"nan", float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := table.Lerp(tt.index); math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("Lerp(%v) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestTable_LerpMatchesLookupOnGrid(t *testing.T) {
	t.Parallel()

	table := MustGenerate(Sine, 64)
	for i := range table {
		if table.Lerp(float32(i)) != table[i] {
			t.Errorf("Lerp(%d) = %v, want %v", i, table.Lerp(float32(i)), table[i])
		}
	}
}

func TestTable_PeakEqualClone(t *testing.T) {
	t.Parallel()

	table := Table{0.25, -0.75, 0.5}
	if table.Peak() != 0.75 {
		t.Errorf("Peak() = %v, want 0.75", table.Peak())
	}

	clone := table.Clone()
	clone[0] = 1
	if table[0] != 0.25 {
		t.Error("Clone() shares storage with the original")
	}

	if table.Equal(clone, 0.1) {
		t.Error("Equal() = true for tables 0.75 apart")
	}
	if !table.Equal(Table{0.25, -0.75, 0.5001}, 0.001) {
		t.Error("Equal() = false within tolerance")
	}
	if table.Equal(Table{0.25}, 1) {
		t.Error("Equal() = true for different lengths")
	}
}
