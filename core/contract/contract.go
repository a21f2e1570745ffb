// Package contract defines the structured-output tool the backend is
// forced to invoke. The input schema mirrors the response entity minus the
// envelope fields the orchestrator adds itself; it is the first line of
// defense, and the response schema re-check in the orchestrator is the
// second. Versioned together with prompts/strike_for_cause_system.txt.
package contract

// ToolName is the single tool the backend may respond with.
const ToolName = "submit_strike_for_cause_analysis"

// ToolDescription is shown to the backend alongside the schema.
const ToolDescription = "Submit the complete strike-for-cause voir dire analysis as structured JSON."

// Version tracks the contract shape. Keep in lockstep with the system
// prompt's workflow vocabulary.
const Version = "1.0.0"

// InputSchema returns the JSON Schema the backend's output must satisfy.
// The returned map is freshly built on each call so callers may not
// accidentally mutate shared state.
func InputSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"summary", "analyses", "preservation", "warnings"},
		"properties": map[string]any{
			"summary": map[string]any{
				"type":     "object",
				"required": []string{"likely_cause_candidates", "likely_peremptory_only", "immediate_actions", "notes"},
				"properties": map[string]any{
					"likely_cause_candidates": stringArray(),
					"likely_peremptory_only":  stringArray(),
					"immediate_actions":       stringArray(),
					"notes":                   map[string]any{"type": "string"},
				},
			},
			"analyses": map[string]any{
				"type":  "array",
				"items": analysisSchema(),
			},
			"preservation": map[string]any{
				"type":     "object",
				"required": []string{"recommended", "lines", "conditions"},
				"properties": map[string]any{
					"recommended": map[string]any{"type": "boolean"},
					"lines":       stringArray(),
					"conditions":  stringArray(),
				},
			},
			"warnings": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"type", "message"},
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []string{
								"commitment_question_risk",
								"insufficient_record",
								"hardship_not_cause",
								"confirmatory_fairness_question",
								"batson_risk",
								"rehabilitation_vulnerability",
								"missing_lock_in",
								"nonverbal_only",
							},
						},
						"message": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

func analysisSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"required": []string{
			"issue_id", "juror_ref", "issue_type", "status", "evidence_summary",
			"key_admissions", "legal_hooks", "ambiguity_flags", "question_plan",
			"confidence", "confidence_reasons", "source_turn_refs",
		},
		"properties": map[string]any{
			"issue_id":   map[string]any{"type": "string"},
			"juror_ref":  map[string]any{"type": "string"},
			"issue_type": map[string]any{"type": "string"},
			"status": map[string]any{
				"type": "string",
				"enum": []string{
					"strong_cause_candidate",
					"possible_cause_needs_lock_in",
					"insufficient_for_cause_peremptory_only",
					"hardship_excuse_path",
					"disqualification_admin_path",
				},
			},
			"evidence_summary": map[string]any{"type": "string"},
			"key_admissions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"admission", "source_turn_id"},
					"properties": map[string]any{
						"admission":      map[string]any{"type": "string"},
						"source_turn_id": map[string]any{"type": "string"},
					},
				},
			},
			"legal_hooks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"code", "rationale"},
					"properties": map[string]any{
						"code":      map[string]any{"type": "string"},
						"rationale": map[string]any{"type": "string"},
					},
				},
			},
			"ambiguity_flags": stringArray(),
			"question_plan":   questionPlanSchema(),
			"motion_language": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"short_form":    map[string]any{"type": "string"},
					"expanded_form": map[string]any{"type": "string"},
				},
			},
			"alternatives": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"approach": map[string]any{"type": "string"},
						"questions": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []string{"step", "text"},
								"properties": map[string]any{
									"step": map[string]any{"type": "string"},
									"text": map[string]any{"type": "string"},
								},
							},
						},
					},
				},
			},
			"confidence": map[string]any{
				"type": "string",
				"enum": []string{"HIGH", "MEDIUM", "LOW"},
			},
			"confidence_reasons": stringArray(),
			"source_turn_refs":   stringArray(),
		},
	}
}

func questionPlanSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"sequence_type", "purpose", "questions"},
		"properties": map[string]any{
			"sequence_type": map[string]any{"type": "string"},
			"purpose":       map[string]any{"type": "string"},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"step", "text", "style", "expected_signal"},
					"properties": map[string]any{
						"step": map[string]any{
							"type": "string",
							"enum": []string{
								"normalize",
								"define_rule",
								"confirm_understanding",
								"elicit_conflict",
								"lock_in_override",
								"binary_clarifier",
								"cause_motion_line",
								"preservation_line",
							},
						},
						"text": map[string]any{"type": "string"},
						"style": map[string]any{
							"type": "string",
							"enum": []string{"panel_safe", "individual", "bench"},
						},
						"expected_signal": map[string]any{"type": "string"},
						"if_yes":          map[string]any{"type": "string"},
						"if_no":           map[string]any{"type": "string"},
						"if_hedge":        map[string]any{"type": "string"},
					},
				},
			},
			"stop_conditions":       stringArray(),
			"anti_commitment_check": map[string]any{"type": "string"},
		},
	}
}

func stringArray() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}
