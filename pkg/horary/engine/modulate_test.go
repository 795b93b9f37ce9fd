package engine

import (
	"math"
	"testing"

	"stellium-hq/horarium/pkg/horary"
)

func TestModulate(t *testing.T) {
	tests := []struct {
		name       string
		chart      *horary.Chart
		baseline   bool
		blocked    bool
		bonus      float64
		want       float64
	}{
		{
			name:     "affirmed seed",
			chart:    &horary.Chart{},
			baseline: true,
			want:     0.5,
		},
		{
			name:  "denied seed",
			chart: &horary.Chart{},
			want:  0.2,
		},
		{
			name:     "blocked overrides affirmed seed",
			chart:    &horary.Chart{},
			baseline: true,
			blocked:  true,
			want:     0.2,
		},
		{
			name:     "bonus rides on the seed",
			chart:    &horary.Chart{},
			baseline: true,
			bonus:    WeightTranslation,
			want:     0.5 + WeightTranslation,
		},
		{
			name: "all modulator categories add",
			chart: &horary.Chart{
				Modulators: map[horary.ModulatorName]float64{
					horary.ModulatorDignities:  0.1,
					horary.ModulatorReceptions: 0.05,
					horary.ModulatorBenefics:   0.05,
				},
			},
			baseline: true,
			want:     0.7,
		},
		{
			name: "negative weights subtract",
			chart: &horary.Chart{
				Modulators: map[horary.ModulatorName]float64{
					horary.ModulatorDignities: -0.15,
				},
			},
			baseline: true,
			want:     0.35,
		},
		{
			name: "unknown modulator categories are ignored",
			chart: &horary.Chart{
				Modulators: map[horary.ModulatorName]float64{
					"malefics": 0.4,
				},
			},
			baseline: true,
			want:     0.5,
		},
		{
			name:     "retrograde penalty floors",
			chart:    &horary.Chart{Retrograde: true},
			baseline: true,
			want:     0.0,
		},
		{
			name: "ceiling clamp",
			chart: &horary.Chart{
				Modulators: map[horary.ModulatorName]float64{
					horary.ModulatorDignities: 2.0,
				},
			},
			baseline: true,
			want:     1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := newTestEvaluator(t, nil)
			ev := &evaluation{
				chart:    tt.chart,
				baseline: tt.baseline,
				blocked:  tt.blocked,
				bonus:    tt.bonus,
			}

			got := eval.modulate(ev)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("modulate() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("modulate() = %v outside [0, 1]", got)
			}
			if len(ev.proof) != 0 {
				t.Errorf("modulate() appended to proof: %v", ev.proof)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}

	for _, tt := range tests {
		if got := clamp(tt.in); got != tt.want {
			t.Errorf("clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
