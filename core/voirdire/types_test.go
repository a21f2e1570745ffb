package voirdire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStages(t *testing.T) {
	stages := ValidStages()
	require.Len(t, stages, 5)

	expected := map[Stage]bool{
		StageGroupScreen:             true,
		StageIndividualFollowup:      true,
		StageIndividualLockIn:        true,
		StageCauseMotion:             true,
		StageDeniedCausePreservation: true,
	}
	for _, s := range stages {
		assert.True(t, expected[s], "unexpected stage %q", s)
	}
}

func TestWorkflowSteps_Order(t *testing.T) {
	steps := WorkflowSteps()
	require.Len(t, steps, 8)

	assert.Equal(t, StepNormalize, steps[0])
	assert.Equal(t, StepDefineRule, steps[1])
	assert.Equal(t, StepBinaryClarifier, steps[5])
	assert.Equal(t, StepCauseMotionLine, steps[6])
	assert.Equal(t, StepPreservationLine, steps[7])
}

func TestResponse_PayloadFieldsSerializeAtTopLevel(t *testing.T) {
	resp := Response{
		RequestID:    "req-1",
		Model:        "claude-sonnet-4-20250514",
		Version:      ProtocolVersion,
		Jurisdiction: SupportedState,
		AnalysisPayload: AnalysisPayload{
			Summary: Summary{
				LikelyCauseCandidates: []string{"Juror #7"},
				LikelyPeremptoryOnly:  []string{},
				ImmediateActions:      []string{},
				Notes:                 "n",
			},
			Analyses:     []AnalysisItem{},
			Preservation: Preservation{Recommended: false, Lines: []string{}, Conditions: []string{}},
			Warnings:     []Warning{},
		},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	// The embedded payload must flatten into the envelope.
	assert.Contains(t, m, "summary")
	assert.Contains(t, m, "analyses")
	assert.Contains(t, m, "preservation")
	assert.Contains(t, m, "warnings")
	assert.NotContains(t, m, "AnalysisPayload")

	assert.Equal(t, "1.0.0", m["version"])
	assert.Equal(t, "TX", m["jurisdiction"])
}

func TestResponse_AuditOmittedWhenNil(t *testing.T) {
	data, err := json.Marshal(Response{RequestID: "req-1"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "audit")
}

func TestTurnIDSet(t *testing.T) {
	transcript := []TranscriptTurn{
		{TurnID: "t1", SpeakerRole: RoleJuror, Content: "a"},
		{TurnID: "t2", SpeakerRole: RoleProsecutor, Content: "b"},
	}

	ids := TurnIDSet(transcript)
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, "t1")
	assert.Contains(t, ids, "t2")
}

func TestUnknownTurnRefs(t *testing.T) {
	transcript := []TranscriptTurn{
		{TurnID: "t1", SpeakerRole: RoleJuror, Content: "a"},
		{TurnID: "t2", SpeakerRole: RoleJuror, Content: "b"},
	}

	tests := []struct {
		name    string
		payload AnalysisPayload
		want    []string
	}{
		{
			name: "all refs known",
			payload: AnalysisPayload{Analyses: []AnalysisItem{{
				SourceTurnRefs: []string{"t1", "t2"},
				KeyAdmissions:  []Admission{{Admission: "x", SourceTurnID: "t1"}},
			}}},
			want: nil,
		},
		{
			name: "unknown source ref",
			payload: AnalysisPayload{Analyses: []AnalysisItem{{
				SourceTurnRefs: []string{"t1", "t9"},
			}}},
			want: []string{"t9"},
		},
		{
			name: "unknown admission citation",
			payload: AnalysisPayload{Analyses: []AnalysisItem{{
				SourceTurnRefs: []string{"t1"},
				KeyAdmissions:  []Admission{{Admission: "x", SourceTurnID: "t7"}},
			}}},
			want: []string{"t7"},
		},
		{
			name: "duplicates reported once",
			payload: AnalysisPayload{Analyses: []AnalysisItem{
				{SourceTurnRefs: []string{"t9", "t9"}},
				{SourceTurnRefs: []string{"t9"}},
			}},
			want: []string{"t9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnknownTurnRefs(transcript, &tt.payload)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownTurnRefs_NilPayload(t *testing.T) {
	assert.Nil(t, UnknownTurnRefs(nil, nil))
}
