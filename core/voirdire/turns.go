package voirdire

// TurnIDSet collects the turn ids present in a transcript.
func TurnIDSet(transcript []TranscriptTurn) map[string]struct{} {
	ids := make(map[string]struct{}, len(transcript))
	for _, turn := range transcript {
		ids[turn.TurnID] = struct{}{}
	}
	return ids
}

// UnknownTurnRefs returns, in citation order, every turn id the payload
// cites that does not exist in the transcript. Checked across
// analyses[*].source_turn_refs and key_admissions[*].source_turn_id.
func UnknownTurnRefs(transcript []TranscriptTurn, payload *AnalysisPayload) []string {
	if payload == nil {
		return nil
	}

	known := TurnIDSet(transcript)
	seen := make(map[string]struct{})
	var unknown []string

	record := func(id string) {
		if id == "" {
			return
		}
		if _, ok := known[id]; ok {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		unknown = append(unknown, id)
	}

	for _, analysis := range payload.Analyses {
		for _, ref := range analysis.SourceTurnRefs {
			record(ref)
		}
		for _, admission := range analysis.KeyAdmissions {
			record(admission.SourceTurnID)
		}
	}

	return unknown
}
