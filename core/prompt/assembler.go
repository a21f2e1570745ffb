// Package prompt renders a validated request into the two texts handed to
// the backend: the static system instruction and a deterministic user
// turn reproducing every populated request field in a fixed order.
package prompt

import (
	"fmt"
	"strings"

	"github.com/adalundhe/strikegate/core/voirdire"
)

// Defaults resolved into the rendered output preferences.
const (
	DefaultQuestionCount = 8
	DefaultVerbosity     = "standard"
)

// Assembler renders prompts from an injected, immutable system text.
// Safe for concurrent use.
type Assembler struct {
	systemText string
}

// NewAssembler builds an assembler around already-loaded system text.
func NewAssembler(systemText string) (*Assembler, error) {
	if strings.TrimSpace(systemText) == "" {
		return nil, ErrEmptySystemText
	}
	return &Assembler{systemText: systemText}, nil
}

// System returns the static system instruction text.
func (a *Assembler) System() string {
	return a.systemText
}

// RenderUser serializes the request into labeled sections. Repeated calls
// with the same request produce byte-identical output: field order is
// fixed and nothing time- or map-order-dependent is rendered.
func (a *Assembler) RenderUser(req *voirdire.Request) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("## JURISDICTION\nState: %s", req.Jurisdiction.State))
	if req.Jurisdiction.County != "" {
		parts = append(parts, fmt.Sprintf("County: %s", req.Jurisdiction.County))
	}
	if req.Jurisdiction.Court != "" {
		parts = append(parts, fmt.Sprintf("Court: %s", req.Jurisdiction.Court))
	}
	if req.Jurisdiction.JudgeProfile != "" {
		parts = append(parts, fmt.Sprintf("Judge Profile: %s", req.Jurisdiction.JudgeProfile))
	}

	parts = append(parts, fmt.Sprintf("\n## MATTER\nCase Type: %s", req.Matter.CaseType))
	if req.Matter.OffenseLevel != "" {
		parts = append(parts, fmt.Sprintf("Offense Level: %s", req.Matter.OffenseLevel))
	}
	if req.Matter.PunishmentRangeText != "" {
		parts = append(parts, fmt.Sprintf("Punishment Range: %s", req.Matter.PunishmentRangeText))
	}
	if len(req.Matter.KeyLegalRulesInPlay) > 0 {
		parts = append(parts, fmt.Sprintf("Key Legal Rules: %s", strings.Join(req.Matter.KeyLegalRulesInPlay, "; ")))
	}
	if len(req.Matter.ProhibitedCaseFacts) > 0 {
		parts = append(parts, fmt.Sprintf("PROHIBITED FACTS (do NOT reference): %s", strings.Join(req.Matter.ProhibitedCaseFacts, "; ")))
	}

	parts = append(parts, fmt.Sprintf("\n## STAGE\n%s", req.Stage))

	parts = append(parts, fmt.Sprintf("\n## TARGET JUROR\nJuror Ref: %s", req.TargetJuror.JurorRef))
	if req.TargetJuror.PanelPosition > 0 {
		parts = append(parts, fmt.Sprintf("Panel Position: %d", req.TargetJuror.PanelPosition))
	}

	if len(req.AnalysisFocus) > 0 {
		parts = append(parts, fmt.Sprintf("\n## ANALYSIS FOCUS\n%s", strings.Join(req.AnalysisFocus, ", ")))
	}

	parts = append(parts, "\n## TRANSCRIPT")
	for _, turn := range req.Transcript {
		parts = append(parts, renderTurn(turn))
	}

	parts = append(parts, renderPreferences(req.OutputPreferences)...)

	return strings.Join(parts, "\n")
}

func renderTurn(turn voirdire.TranscriptTurn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", turn.TurnID, turn.SpeakerRole)
	if turn.JurorRef != "" {
		fmt.Fprintf(&b, " (%s)", turn.JurorRef)
	}
	fmt.Fprintf(&b, ": %s", turn.Content)
	if turn.Nonverbal != "" {
		fmt.Fprintf(&b, " [nonverbal: %s]", turn.Nonverbal)
	}
	if turn.Confidence != "" && turn.Confidence != voirdire.TurnVerbatim {
		fmt.Fprintf(&b, " [%s]", turn.Confidence)
	}
	return b.String()
}

func renderPreferences(prefs *voirdire.OutputPreferences) []string {
	if prefs == nil {
		prefs = &voirdire.OutputPreferences{}
	}

	questionCount := prefs.QuestionCount
	if questionCount == 0 {
		questionCount = DefaultQuestionCount
	}
	verbosity := prefs.Verbosity
	if verbosity == "" {
		verbosity = DefaultVerbosity
	}

	parts := []string{
		"\n## OUTPUT PREFERENCES",
		fmt.Sprintf("Question count target: %d", questionCount),
		fmt.Sprintf("Include motion language: %t", resolveBool(prefs.IncludeMotionLanguage, true)),
		fmt.Sprintf("Include preservation script: %t", resolveBool(prefs.IncludePreservationScript, true)),
	}
	if prefs.IncludeAlternatives {
		parts = append(parts, "Include alternative approaches")
	}
	if prefs.IncludePanelSafeVersion {
		parts = append(parts, "Include panel-safe versions of individual questions")
	}
	parts = append(parts, fmt.Sprintf("Verbosity: %s", verbosity))

	return parts
}

func resolveBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
