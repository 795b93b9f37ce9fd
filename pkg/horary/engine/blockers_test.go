package engine

import (
	"reflect"
	"testing"

	"stellium-hq/horarium/pkg/horary"
)

func TestDetectBlockers(t *testing.T) {
	tests := []struct {
		name        string
		blockers    []horary.BlockerKind
		fatal       bool
		wantBlocked bool
		wantProof   []string
	}{
		{
			name:        "no blockers",
			blockers:    nil,
			fatal:       true,
			wantBlocked: false,
			wantProof:   nil,
		},
		{
			name:        "prohibition blocks",
			blockers:    []horary.BlockerKind{horary.BlockerProhibition},
			fatal:       true,
			wantBlocked: true,
			wantProof:   []string{"blocker:prohibition"},
		},
		{
			name:        "refranation blocks",
			blockers:    []horary.BlockerKind{horary.BlockerRefranation},
			fatal:       true,
			wantBlocked: true,
			wantProof:   []string{"blocker:refranation"},
		},
		{
			name:        "fatal combustion blocks",
			blockers:    []horary.BlockerKind{horary.BlockerCombustion},
			fatal:       true,
			wantBlocked: true,
			wantProof:   []string{"blocker:combustion"},
		},
		{
			name:        "non-fatal combustion does not block",
			blockers:    []horary.BlockerKind{horary.BlockerCombustion},
			fatal:       false,
			wantBlocked: false,
			wantProof:   nil,
		},
		{
			name: "fixed check order, first match wins",
			blockers: []horary.BlockerKind{
				horary.BlockerCombustion,
				horary.BlockerRefranation,
				horary.BlockerProhibition,
			},
			fatal:       true,
			wantBlocked: true,
			wantProof:   []string{"blocker:prohibition"},
		},
		{
			name: "non-fatal combustion alongside refranation still blocks",
			blockers: []horary.BlockerKind{
				horary.BlockerCombustion,
				horary.BlockerRefranation,
			},
			fatal:       false,
			wantBlocked: true,
			wantProof:   []string{"blocker:refranation"},
		},
		{
			name:        "unrecognized blocker kinds are ignored",
			blockers:    []horary.BlockerKind{"eclipse", "void-of-course"},
			fatal:       true,
			wantBlocked: false,
			wantProof:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultEngineConfig().WithFatalCombustion(tt.fatal)
			eval := newTestEvaluator(t, config)

			ev := &evaluation{chart: &horary.Chart{Blockers: tt.blockers}}
			eval.detectBlockers(ev)

			if ev.blocked != tt.wantBlocked {
				t.Errorf("blocked = %v, want %v", ev.blocked, tt.wantBlocked)
			}
			if !reflect.DeepEqual(ev.proof, tt.wantProof) {
				t.Errorf("proof = %v, want %v", ev.proof, tt.wantProof)
			}
		})
	}
}
