// Package forms implements the Critical Yield Calculation form engine: the
// static question catalog, the conditional assembler that decides which
// questions a stage renders, and the wizard controller that owns the shared
// answer state across stages.
package forms

// QuestionKind identifies how a question should be rendered.
type QuestionKind string

const (
	KindText     QuestionKind = "text"
	KindSelect   QuestionKind = "select"
	KindRadio    QuestionKind = "radio"
	KindNumber   QuestionKind = "number"
	KindDate     QuestionKind = "date"
	KindReadonly QuestionKind = "readonly"
	KindHeading  QuestionKind = "heading"
	KindSection  QuestionKind = "section"
	KindButton   QuestionKind = "button"
)

// Condition gates a question on a previously answered field.
type Condition struct {
	DependsOn     string
	RequiredValue string
}

// Question is a single catalog entry. Catalog data is immutable at runtime;
// the assembler copies rows, it never mutates them.
type Question struct {
	Key         string
	Label       string
	Placeholder string
	Kind        QuestionKind
	Options     []string
	Suffix      string
	Condition   *Condition
}

// Row pairs a question with its contextual guide text. Keeping the pair in
// one struct makes question/guide alignment structural: a splice either
// inserts both or neither.
type Row struct {
	Question Question
	Guide    string
}

// Stage enumerates the screens of the CYC wizard, in display order.
type Stage int

const (
	StageBasicDetails Stage = iota
	StageExistingPlans
	StageRecommendedPlan
	StageResults
)

const stageCount = 4

// Stages returns every wizard stage in order.
func Stages() []Stage {
	return []Stage{StageBasicDetails, StageExistingPlans, StageRecommendedPlan, StageResults}
}

func (s Stage) String() string {
	switch s {
	case StageBasicDetails:
		return "Basic Details"
	case StageExistingPlans:
		return "Existing Plans"
	case StageRecommendedPlan:
		return "Recommended Plan"
	case StageResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Valid reports whether the stage index is renderable.
func (s Stage) Valid() bool {
	return s >= 0 && s < stageCount
}
