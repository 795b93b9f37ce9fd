package horary

import "time"

// AspectType identifies the kind of connection an aspect event represents.
type AspectType string

const (
	// AspectDirect is a direct applying aspect between significators.
	AspectDirect AspectType = "direct"

	// AspectTranslation is a translation of light by a faster third body.
	AspectTranslation AspectType = "translation"

	// AspectCollection is a collection of light by a slower third body.
	AspectCollection AspectType = "collection"
)

// recognizedAspects lists the path-qualifying aspect types in the order the
// engine considers them. Timeline order, not this order, breaks ties.
var recognizedAspects = map[AspectType]bool{
	AspectDirect:      true,
	AspectTranslation: true,
	AspectCollection:  true,
}

// Recognized reports whether the aspect type is one of the path kinds the
// engine understands. Unrecognized types are ignored entirely during
// evaluation.
func (t AspectType) Recognized() bool {
	return recognizedAspects[t]
}

// AspectStatus describes the temporal state of an aspect event.
type AspectStatus string

const (
	// StatusApplying means the aspect is still forming. Only applying
	// aspects can qualify as a path.
	StatusApplying AspectStatus = "applying"

	// StatusPerfected means the aspect has already completed and is no
	// longer actionable.
	StatusPerfected AspectStatus = "perfected"

	// StatusSeparating means the bodies are moving apart and the aspect
	// will not form.
	StatusSeparating AspectStatus = "separating"
)

// AspectEvent is one entry in a chart's aspect timeline: a connection type
// and its temporal status. Events with unrecognized types or statuses are
// tolerated; they simply never qualify.
type AspectEvent struct {
	Type   AspectType   `yaml:"type" json:"type"`
	Status AspectStatus `yaml:"status" json:"status"`
}

// BlockerKind identifies a condition that can void an otherwise-affirmed
// outcome.
type BlockerKind string

const (
	// BlockerProhibition is an intervening aspect that perfects first.
	BlockerProhibition BlockerKind = "prohibition"

	// BlockerRefranation is a significator turning away before perfection.
	BlockerRefranation BlockerKind = "refranation"

	// BlockerCombustion is a significator too close to the Sun. Whether
	// combustion disqualifies the outcome is configurable.
	BlockerCombustion BlockerKind = "combustion"
)

// ModulatorName names a confidence weight category.
type ModulatorName string

const (
	// ModulatorDignities weighs essential dignities of the significators.
	ModulatorDignities ModulatorName = "dignities"

	// ModulatorReceptions weighs mutual and mixed receptions.
	ModulatorReceptions ModulatorName = "receptions"

	// ModulatorBenefics weighs benefic support (Jupiter, Venus).
	ModulatorBenefics ModulatorName = "benefics"
)

// Chart is the mutable record describing the symbolic state of a horary
// question. It is constructed by a chart source, handed to the engine once,
// mutated in place across the evaluation phases, and discarded after the
// result is extracted. A chart must not be shared across concurrent
// evaluations.
//
// All fields are optional on input; the engine fills safe defaults.
type Chart struct {
	// ID identifies the chart (opaque to the engine).
	ID string `yaml:"id" json:"id"`

	// Question is the horary question being judged (opaque to the engine).
	Question string `yaml:"question" json:"question"`

	// Querent identifies who asked (opaque to the engine).
	Querent string `yaml:"querent,omitempty" json:"querent,omitempty"`

	// CastAt is when the chart was cast (opaque to the engine).
	CastAt time.Time `yaml:"cast_at,omitempty" json:"cast_at,omitempty"`

	// AspectTimeline is the ordered sequence of aspect events, the source
	// of truth for path detection.
	AspectTimeline []AspectEvent `yaml:"aspect_timeline" json:"aspect_timeline"`

	// Paths holds the qualifying path types found by the engine, in
	// timeline order. Populated during evaluation.
	Paths []AspectType `yaml:"-" json:"paths"`

	// RejectedPaths holds the recognized-but-non-qualifying path types, in
	// timeline order. Populated during evaluation for audit purposes.
	RejectedPaths []AspectType `yaml:"-" json:"rejected_paths"`

	// Blockers lists the blocking conditions present in the chart.
	Blockers []BlockerKind `yaml:"blockers,omitempty" json:"blockers,omitempty"`

	// Modulators maps weight categories to numeric confidence adjustments.
	Modulators map[ModulatorName]float64 `yaml:"modulators,omitempty" json:"modulators,omitempty"`

	// Retrograde marks a retrograde significator, a fixed confidence
	// penalty.
	Retrograde bool `yaml:"retrograde,omitempty" json:"retrograde,omitempty"`

	// Rulers maps houses to their ruling bodies. Bookkeeping for
	// downstream collaborators; the engine only defaults it.
	Rulers map[string]string `yaml:"rulers,omitempty" json:"rulers,omitempty"`

	// Normalized is set once the engine has defaulted missing fields.
	Normalized bool `yaml:"-" json:"normalized"`
}

// Modulator returns the weight for the named category, or 0 if the category
// is absent or the modulator map is nil.
func (c *Chart) Modulator(name ModulatorName) float64 {
	if c.Modulators == nil {
		return 0
	}
	return c.Modulators[name]
}

// HasBlocker reports whether the chart lists the given blocker kind.
func (c *Chart) HasBlocker(kind BlockerKind) bool {
	for _, b := range c.Blockers {
		if b == kind {
			return true
		}
	}
	return false
}
