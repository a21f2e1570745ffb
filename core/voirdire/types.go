// Package voirdire defines the request and response entities for the
// strike-for-cause analysis protocol. The structs mirror the runtime JSON
// Schemas in core/schema; the schemas remain authoritative at the boundary.
package voirdire

// ProtocolVersion is the fixed version literal stamped on every response.
// Bump together with the tool contract and the system prompt.
const ProtocolVersion = "1.0.0"

// SupportedState is the single jurisdiction the analyzer currently covers.
const SupportedState = "TX"

// Stage identifies the voir dire phase the transcript was captured in.
type Stage string

const (
	StageGroupScreen             Stage = "group_screen"
	StageIndividualFollowup      Stage = "individual_followup"
	StageIndividualLockIn        Stage = "individual_lock_in"
	StageCauseMotion             Stage = "cause_motion"
	StageDeniedCausePreservation Stage = "denied_cause_preservation"
)

// ValidStages returns the closed set of voir dire stages.
func ValidStages() []Stage {
	return []Stage{
		StageGroupScreen,
		StageIndividualFollowup,
		StageIndividualLockIn,
		StageCauseMotion,
		StageDeniedCausePreservation,
	}
}

// SpeakerRole attributes a transcript turn.
type SpeakerRole string

const (
	RoleProsecutor     SpeakerRole = "prosecutor"
	RoleDefenseCounsel SpeakerRole = "defense_counsel"
	RoleJudge          SpeakerRole = "judge"
	RoleJuror          SpeakerRole = "juror"
	RoleObserver       SpeakerRole = "observer"
)

// TurnConfidence tags how faithfully a turn was transcribed.
type TurnConfidence string

const (
	TurnVerbatim   TurnConfidence = "verbatim"
	TurnParaphrase TurnConfidence = "paraphrase"
	TurnSummary    TurnConfidence = "summary"
)

// TranscriptTurn is one utterance in the voir dire record. TurnID is the
// stable identifier analyses cite as evidence.
type TranscriptTurn struct {
	TurnID      string         `json:"turn_id"`
	SpeakerRole SpeakerRole    `json:"speaker_role"`
	JurorRef    string         `json:"juror_ref,omitempty"`
	Content     string         `json:"content"`
	Timestamp   string         `json:"timestamp,omitempty"`
	Source      string         `json:"source,omitempty"`
	Nonverbal   string         `json:"nonverbal,omitempty"`
	Confidence  TurnConfidence `json:"confidence,omitempty"`
}

// Jurisdiction names the court the analysis applies to.
type Jurisdiction struct {
	State        string `json:"state"`
	County       string `json:"county,omitempty"`
	Court        string `json:"court,omitempty"`
	JudgeProfile string `json:"judge_profile,omitempty"`
}

// Matter classifies the underlying case.
type Matter struct {
	CaseType            string   `json:"case_type"`
	OffenseLevel        string   `json:"offense_level,omitempty"`
	PunishmentRangeText string   `json:"punishment_range_text,omitempty"`
	KeyLegalRulesInPlay []string `json:"key_legal_rules_in_play,omitempty"`
	ProhibitedCaseFacts []string `json:"prohibited_case_facts,omitempty"`
}

// TargetJuror identifies the juror the analysis concerns.
type TargetJuror struct {
	JurorRef      string `json:"juror_ref"`
	PanelPosition int    `json:"panel_position,omitempty"`
}

// OutputPreferences control which optional response sections are requested.
// Boolean fields are pointers so "explicitly disabled" is distinguishable
// from "unset"; defaults are resolved by the prompt assembler.
type OutputPreferences struct {
	QuestionCount             int    `json:"question_count,omitempty"`
	IncludeAlternatives       bool   `json:"include_alternatives,omitempty"`
	IncludeMotionLanguage     *bool  `json:"include_motion_language,omitempty"`
	IncludePreservationScript *bool  `json:"include_preservation_script,omitempty"`
	IncludePanelSafeVersion   bool   `json:"include_panel_safe_version,omitempty"`
	ResponseFormat            string `json:"response_format,omitempty"`
	Verbosity                 string `json:"verbosity,omitempty"`
}

// Privacy carries redaction flags. AllowStorageForTraining is a literal
// false in the schema; it exists so a request asserting true is rejected.
type Privacy struct {
	RedactJurorIdentifiers  bool `json:"redact_juror_identifiers,omitempty"`
	AllowStorageForTraining bool `json:"allow_storage_for_training,omitempty"`
	RetentionDays           int  `json:"retention_days,omitempty"`
}

// Request describes one analysis task. It is constructed by the caller,
// consumed exactly once, and never mutated.
type Request struct {
	Jurisdiction      Jurisdiction       `json:"jurisdiction"`
	Matter            Matter             `json:"matter"`
	Stage             Stage              `json:"stage"`
	Transcript        []TranscriptTurn   `json:"transcript"`
	TargetJuror       TargetJuror        `json:"target_juror"`
	AnalysisFocus     []string           `json:"analysis_focus,omitempty"`
	OutputPreferences *OutputPreferences `json:"output_preferences,omitempty"`
	Privacy           *Privacy           `json:"privacy,omitempty"`
	Metadata          map[string]any     `json:"metadata,omitempty"`
}

// IssueStatus is the closed set of dispositions an analysis can reach.
type IssueStatus string

const (
	StatusStrongCauseCandidate IssueStatus = "strong_cause_candidate"
	StatusNeedsLockIn          IssueStatus = "possible_cause_needs_lock_in"
	StatusPeremptoryOnly       IssueStatus = "insufficient_for_cause_peremptory_only"
	StatusHardshipExcusePath   IssueStatus = "hardship_excuse_path"
	StatusDisqualificationPath IssueStatus = "disqualification_admin_path"
)

// ConfidenceLevel grades how well the record supports a finding.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "HIGH"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceLow    ConfidenceLevel = "LOW"
)

// QuestionStep is the ordered vocabulary of the record-building workflow.
type QuestionStep string

const (
	StepNormalize            QuestionStep = "normalize"
	StepDefineRule           QuestionStep = "define_rule"
	StepConfirmUnderstanding QuestionStep = "confirm_understanding"
	StepElicitConflict       QuestionStep = "elicit_conflict"
	StepLockInOverride       QuestionStep = "lock_in_override"
	StepBinaryClarifier      QuestionStep = "binary_clarifier"
	StepCauseMotionLine      QuestionStep = "cause_motion_line"
	StepPreservationLine     QuestionStep = "preservation_line"
)

// WorkflowSteps returns the question steps in workflow order.
func WorkflowSteps() []QuestionStep {
	return []QuestionStep{
		StepNormalize,
		StepDefineRule,
		StepConfirmUnderstanding,
		StepElicitConflict,
		StepLockInOverride,
		StepBinaryClarifier,
		StepCauseMotionLine,
		StepPreservationLine,
	}
}

// QuestionStyle marks where a question may safely be asked.
type QuestionStyle string

const (
	StylePanelSafe  QuestionStyle = "panel_safe"
	StyleIndividual QuestionStyle = "individual"
	StyleBench      QuestionStyle = "bench"
)

// WarningType is the closed set of risk categories a response may raise.
type WarningType string

const (
	WarnCommitmentQuestionRisk       WarningType = "commitment_question_risk"
	WarnInsufficientRecord           WarningType = "insufficient_record"
	WarnHardshipNotCause             WarningType = "hardship_not_cause"
	WarnConfirmatoryFairnessQuestion WarningType = "confirmatory_fairness_question"
	WarnBatsonRisk                   WarningType = "batson_risk"
	WarnRehabilitationVulnerability  WarningType = "rehabilitation_vulnerability"
	WarnMissingLockIn                WarningType = "missing_lock_in"
	WarnNonverbalOnly                WarningType = "nonverbal_only"
)

// QuestionPlanItem is one scripted question with branch guidance.
type QuestionPlanItem struct {
	Step           QuestionStep  `json:"step"`
	Text           string        `json:"text"`
	Style          QuestionStyle `json:"style"`
	ExpectedSignal string        `json:"expected_signal"`
	IfYes          string        `json:"if_yes,omitempty"`
	IfNo           string        `json:"if_no,omitempty"`
	IfHedge        string        `json:"if_hedge,omitempty"`
}

// QuestionPlan sequences the questions needed to build the record.
type QuestionPlan struct {
	SequenceType        string             `json:"sequence_type"`
	Purpose             string             `json:"purpose"`
	Questions           []QuestionPlanItem `json:"questions"`
	StopConditions      []string           `json:"stop_conditions,omitempty"`
	AntiCommitmentCheck string             `json:"anti_commitment_check,omitempty"`
}

// Admission cites a juror statement by its transcript turn id.
type Admission struct {
	Admission    string `json:"admission"`
	SourceTurnID string `json:"source_turn_id"`
}

// LegalHook ties a finding to a statutory ground.
type LegalHook struct {
	Code      string `json:"code"`
	Rationale string `json:"rationale"`
}

// MotionLanguage is ready-to-speak cause motion phrasing.
type MotionLanguage struct {
	ShortForm    string `json:"short_form"`
	ExpandedForm string `json:"expanded_form"`
}

// AlternativeQuestion is one question in an alternative approach.
type AlternativeQuestion struct {
	Step string `json:"step"`
	Text string `json:"text"`
}

// Alternative is a fallback questioning approach.
type Alternative struct {
	Approach  string                `json:"approach"`
	Questions []AlternativeQuestion `json:"questions,omitempty"`
}

// AnalysisItem is one per-issue finding about the target juror.
type AnalysisItem struct {
	IssueID           string          `json:"issue_id"`
	JurorRef          string          `json:"juror_ref"`
	IssueType         string          `json:"issue_type"`
	Status            IssueStatus     `json:"status"`
	EvidenceSummary   string          `json:"evidence_summary"`
	KeyAdmissions     []Admission     `json:"key_admissions"`
	LegalHooks        []LegalHook     `json:"legal_hooks"`
	AmbiguityFlags    []string        `json:"ambiguity_flags"`
	QuestionPlan      QuestionPlan    `json:"question_plan"`
	MotionLanguage    *MotionLanguage `json:"motion_language,omitempty"`
	Alternatives      []Alternative   `json:"alternatives,omitempty"`
	Confidence        ConfidenceLevel `json:"confidence"`
	ConfidenceReasons []string        `json:"confidence_reasons"`
	SourceTurnRefs    []string        `json:"source_turn_refs"`
}

// Summary is the cross-cutting roll-up over all findings.
type Summary struct {
	LikelyCauseCandidates []string `json:"likely_cause_candidates"`
	LikelyPeremptoryOnly  []string `json:"likely_peremptory_only"`
	ImmediateActions      []string `json:"immediate_actions"`
	Notes                 string   `json:"notes"`
}

// Preservation scripts the on-record objection after a denied challenge.
type Preservation struct {
	Recommended bool     `json:"recommended"`
	Lines       []string `json:"lines"`
	Conditions  []string `json:"conditions"`
}

// Warning flags a risk in the recommended approach.
type Warning struct {
	Type    WarningType `json:"type"`
	Message string      `json:"message"`
}

// AnalysisPayload is the shape the backend must produce through the forced
// tool contract: the response minus the envelope fields the orchestrator
// adds itself.
type AnalysisPayload struct {
	Summary      Summary        `json:"summary"`
	Analyses     []AnalysisItem `json:"analyses"`
	Preservation Preservation   `json:"preservation"`
	Warnings     []Warning      `json:"warnings"`
}

// Audit carries observability metadata. Not part of the semantic contract.
type Audit struct {
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	LatencyMS    int64  `json:"latency_ms"`
	ModelVersion string `json:"model_version"`
}

// Response is the full envelope returned for one request. The embedded
// payload fields serialize at the top level.
type Response struct {
	RequestID    string `json:"request_id"`
	Model        string `json:"model"`
	Version      string `json:"version"`
	Jurisdiction string `json:"jurisdiction"`
	AnalysisPayload
	Audit *Audit `json:"audit,omitempty"`
}
