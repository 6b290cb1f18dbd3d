// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestResample_SameRateIsNoop(t *testing.T) {
	t.Parallel()

	b := constantBuffer(8000, 100, 0.25)
	got := b.Resample(8000)

	if got != b {
		t.Error("Resample() to the same rate should return the receiver")
	}
}

func TestResample_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		srcRate    int
		srcLen     int
		targetRate int
		wantLen    int
	}{
		{
			name:       "downsample 44100 to 8000",
			srcRate:    44100,
			srcLen:     44100,
			targetRate: 8000,
			wantLen:    8000,
		},
		{
			name:       "upsample 8000 to 44100",
			srcRate:    8000,
			srcLen:     8000,
			targetRate: 44100,
			wantLen:    44100,
		},
		{
			name:       "length truncates",
			srcRate:    3,
			srcLen:     10,
			targetRate: 2,
			wantLen:    6, // 10 * 2/3 = 6.66 truncated
		},
		{
			name:       "empty input",
			srcRate:    8000,
			srcLen:     0,
			targetRate: 16000,
			wantLen:    0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := New(tt.srcRate, tt.srcLen)
			got := b.Resample(tt.targetRate)

			if got.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got.Len(), tt.wantLen)
			}
			if got.Rate != tt.targetRate {
				t.Errorf("Rate = %d, want %d", got.Rate, tt.targetRate)
			}
		})
	}
}

func TestResample_LinearInterpolation(t *testing.T) {
	t.Parallel()

	// Doubling the rate of a two-sample ramp: positions 0, 0.5, 1, 1.5.
	// The final position clamps to the last source sample.
	b := FromSamples(1, []float64{0, 1})
	got := b.Resample(2)

	want := []float64{0, 0.5, 1, 1}
	if got.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Len(), len(want))
	}
	for i := range want {
		if math.Abs(got.Samples[i]-want[i]) > 1e-12 {
			t.Errorf("Samples[%d] = %v, want %v", i, got.Samples[i], want[i])
		}
	}
}

func TestTrimOrPad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  []float64
		n    int
		want []float64
	}{
		{
			name: "same length unchanged",
			src:  []float64{0.1, 0.2, 0.3},
			n:    3,
			want: []float64{0.1, 0.2, 0.3},
		},
		{
			name: "truncates to prefix",
			src:  []float64{0.1, 0.2, 0.3, 0.4},
			n:    2,
			want: []float64{0.1, 0.2},
		},
		{
			name: "pads with silence",
			src:  []float64{0.5},
			n:    4,
			want: []float64{0.5, 0, 0, 0},
		},
		{
			name: "to zero length",
			src:  []float64{0.5, 0.6},
			n:    0,
			want: []float64{},
		},
		{
			name: "empty input pads",
			src:  nil,
			n:    3,
			want: []float64{0, 0, 0},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FromSamples(8000, tt.src).TrimOrPad(tt.n)

			if got.Len() != tt.n {
				t.Fatalf("Len() = %d, want %d", got.Len(), tt.n)
			}
			if got.Rate != 8000 {
				t.Errorf("Rate = %d, want 8000", got.Rate)
			}
			for i := range tt.want {
				if got.Samples[i] != tt.want[i] {
					t.Errorf("Samples[%d] = %v, want %v", i, got.Samples[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoopToLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  []float64
		n    int
		want []float64
	}{
		{
			name: "exact multiple is concatenation",
			src:  []float64{0.1, 0.2},
			n:    6,
			want: []float64{0.1, 0.2, 0.1, 0.2, 0.1, 0.2},
		},
		{
			name: "partial final repetition",
			src:  []float64{0.1, 0.2, 0.3},
			n:    5,
			want: []float64{0.1, 0.2, 0.3, 0.1, 0.2},
		},
		{
			name: "longer input truncates instead of looping",
			src:  []float64{0.1, 0.2, 0.3, 0.4},
			n:    2,
			want: []float64{0.1, 0.2},
		},
		{
			name: "same length unchanged",
			src:  []float64{0.1, 0.2},
			n:    2,
			want: []float64{0.1, 0.2},
		},
		{
			name: "to zero length",
			src:  []float64{0.1},
			n:    0,
			want: []float64{},
		},
		{
			name: "empty input yields silence",
			src:  nil,
			n:    4,
			want: []float64{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FromSamples(8000, tt.src).LoopToLength(tt.n)

			if got.Len() != tt.n {
				t.Fatalf("Len() = %d, want %d", got.Len(), tt.n)
			}
			for i := range tt.want {
				if got.Samples[i] != tt.want[i] {
					t.Errorf("Samples[%d] = %v, want %v", i, got.Samples[i], tt.want[i])
				}
			}
		})
	}
}

func TestTransforms_DoNotMutateInput(t *testing.T) {
	t.Parallel()

	src := []float64{0.1, 0.2, 0.3}
	b := FromSamples(8000, src)

	b.Resample(16000)
	b.TrimOrPad(10)
	b.LoopToLength(10)

	for i, want := range []float64{0.1, 0.2, 0.3} {
		if src[i] != want {
			t.Fatalf("input mutated: Samples[%d] = %v, want %v", i, src[i], want)
		}
	}
}
