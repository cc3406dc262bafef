// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloatToLinear16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int
	}{
		{name: "zero", input: 0, want: 0},
		{name: "positive full scale", input: 1.0, want: 32767},
		{name: "negative full scale", input: -1.0, want: -32767},
		{name: "half", input: 0.5, want: 16383},
		{name: "clamp over max", input: 1.5, want: 32767},
		{name: "clamp under min", input: -2.0, want: -32767},
		{name: "truncates toward zero", input: 0.99999, want: 32766},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FloatToLinear16(tt.input); got != tt.want {
				t.Errorf("FloatToLinear16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
