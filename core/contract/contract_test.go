package contract

import (
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileContract(t *testing.T) *jsonschema.Schema {
	t.Helper()
	data, err := json.Marshal(InputSchema())
	require.NoError(t, err)

	sch, err := jsonschema.CompileString("tool_input.schema.json", string(data))
	require.NoError(t, err, "tool contract must itself be a valid JSON Schema")
	return sch
}

func TestInputSchema_IsValidJSONSchema(t *testing.T) {
	compileContract(t)
}

func TestInputSchema_FreshCopyPerCall(t *testing.T) {
	first := InputSchema()
	first["type"] = "tampered"

	second := InputSchema()
	assert.Equal(t, "object", second["type"])
}

func TestInputSchema_RequiredSections(t *testing.T) {
	required, ok := InputSchema()["required"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"summary", "analyses", "preservation", "warnings"}, required)
}

func TestInputSchema_AcceptsConformingPayload(t *testing.T) {
	sch := compileContract(t)

	payload := `{
	  "summary": {
	    "likely_cause_candidates": ["Juror #7"],
	    "likely_peremptory_only": [],
	    "immediate_actions": ["lock in the override"],
	    "notes": "n"
	  },
	  "analyses": [{
	    "issue_id": "issue-1",
	    "juror_ref": "Juror #7",
	    "issue_type": "burden_of_proof_bias",
	    "status": "possible_cause_needs_lock_in",
	    "evidence_summary": "hedged refusal of one-witness rule",
	    "key_admissions": [{"admission": "needs DNA", "source_turn_id": "t1"}],
	    "legal_hooks": [{"code": "35.16(b)(3)", "rationale": "bias against the law"}],
	    "ambiguity_flags": [],
	    "question_plan": {
	      "sequence_type": "lock_in",
	      "purpose": "build the record",
	      "questions": [{"step": "normalize", "text": "q", "style": "individual", "expected_signal": "s"}]
	    },
	    "confidence": "MEDIUM",
	    "confidence_reasons": ["hedged"],
	    "source_turn_refs": ["t1"]
	  }],
	  "preservation": {"recommended": true, "lines": ["l"], "conditions": ["c"]},
	  "warnings": [{"type": "missing_lock_in", "message": "m"}]
	}`

	var decoded any
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.NoError(t, sch.Validate(decoded))
}

func TestInputSchema_RejectsBadEnumValues(t *testing.T) {
	sch := compileContract(t)

	tests := []struct {
		name  string
		patch func(m map[string]any)
	}{
		{
			name: "bad status",
			patch: func(m map[string]any) {
				m["analyses"].([]any)[0].(map[string]any)["status"] = "definitely_strike"
			},
		},
		{
			name: "bad confidence",
			patch: func(m map[string]any) {
				m["analyses"].([]any)[0].(map[string]any)["confidence"] = "MAYBE"
			},
		},
		{
			name: "bad warning type",
			patch: func(m map[string]any) {
				m["warnings"] = []any{map[string]any{"type": "nope", "message": "m"}}
			},
		},
		{
			name: "bad question step",
			patch: func(m map[string]any) {
				plan := m["analyses"].([]any)[0].(map[string]any)["question_plan"].(map[string]any)
				plan["questions"].([]any)[0].(map[string]any)["step"] = "wing_it"
			},
		},
	}

	base := `{
	  "summary": {"likely_cause_candidates": [], "likely_peremptory_only": [], "immediate_actions": [], "notes": ""},
	  "analyses": [{
	    "issue_id": "i", "juror_ref": "j", "issue_type": "t",
	    "status": "strong_cause_candidate", "evidence_summary": "e",
	    "key_admissions": [], "legal_hooks": [], "ambiguity_flags": [],
	    "question_plan": {"sequence_type": "s", "purpose": "p",
	      "questions": [{"step": "normalize", "text": "q", "style": "bench", "expected_signal": "s"}]},
	    "confidence": "HIGH", "confidence_reasons": [], "source_turn_refs": []
	  }],
	  "preservation": {"recommended": false, "lines": [], "conditions": []},
	  "warnings": []
	}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded map[string]any
			require.NoError(t, json.Unmarshal([]byte(base), &decoded))
			tt.patch(decoded)
			assert.Error(t, sch.Validate(any(decoded)))
		})
	}
}

func TestToolIdentity(t *testing.T) {
	assert.Equal(t, "submit_strike_for_cause_analysis", ToolName)
	assert.NotEmpty(t, ToolDescription)
	assert.Equal(t, "1.0.0", Version)
}
