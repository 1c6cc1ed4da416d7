package types

import (
	"strconv"
	"strings"
	"time"
)

// Stage identifies the current step of the advisory pipeline. Transitions
// are unconditional forward advances; there is no failure state distinct
// from done.
type Stage string

const (
	StageCollectingProfile Stage = "COLLECTING_PROFILE"
	StageFindingResources  Stage = "FINDING_RESOURCES"
	StageComposingRoadmap  Stage = "COMPOSING_ROADMAP"
	StageDone              Stage = "DONE"
)

// Level is the experience level shared by profiles and resources.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ParseLevel coerces free text from the model into a known level.
// Unrecognized input maps to the empty level rather than failing.
func ParseLevel(s string) Level {
	switch v := strings.ToLower(strings.TrimSpace(s)); {
	case strings.HasPrefix(v, "beginner"), strings.HasPrefix(v, "foundation"):
		return LevelBeginner
	case strings.HasPrefix(v, "intermediate"):
		return LevelIntermediate
	case strings.HasPrefix(v, "advanced"), strings.HasPrefix(v, "expert"):
		return LevelAdvanced
	default:
		return ""
	}
}

// ResourceType categorizes a learning resource.
type ResourceType string

const (
	ResourceCourse        ResourceType = "course"
	ResourceModule        ResourceType = "module"
	ResourceCertification ResourceType = "certification"
	ResourceLab           ResourceType = "lab"
	ResourceDocumentation ResourceType = "documentation"
)

// ParseResourceType coerces free text into a known resource type.
func ParseResourceType(s string) ResourceType {
	switch v := strings.ToLower(strings.TrimSpace(s)); {
	case strings.HasPrefix(v, "course"), strings.HasPrefix(v, "learning path"):
		return ResourceCourse
	case strings.HasPrefix(v, "module"):
		return ResourceModule
	case strings.HasPrefix(v, "cert"):
		return ResourceCertification
	case strings.HasPrefix(v, "lab"), strings.HasPrefix(v, "hands-on"):
		return ResourceLab
	case strings.HasPrefix(v, "doc"), strings.HasPrefix(v, "reference"):
		return ResourceDocumentation
	default:
		return ""
	}
}

// Profile is the structured record collected by the profile stage.
// It is immutable once the stage signals completion; the later stages
// consume it read-only.
type Profile struct {
	Goal         string   `yaml:"goal"`
	Level        Level    `yaml:"level"`
	Skills       []string `yaml:"skills"`
	HoursPerWeek int      `yaml:"hoursPerWeek"`
	Timeline     string   `yaml:"timeline"`
	// Raw is the full PROFILE_COMPLETE text from the model; the research
	// and advisor prompts consume this verbatim.
	Raw string `yaml:"raw"`
}

// Complete reports whether all five required fields are populated.
func (p Profile) Complete() bool {
	return p.Goal != "" && p.Level != "" && len(p.Skills) > 0 &&
		p.HoursPerWeek > 0 && p.Timeline != ""
}

// Resource is one learning resource selected by the research stage.
type Resource struct {
	Title    string       `yaml:"title"`
	Type     ResourceType `yaml:"type"`
	Level    Level        `yaml:"level"`
	Duration string       `yaml:"duration"`
	Link     string       `yaml:"link"`
}

// MaxResources bounds the research output; the prompt asks for 5-7 but the
// parser enforces the ceiling regardless of what the model returns.
const MaxResources = 7

// SessionRecord is the terminal artifact of one run, written out only when
// the user asks for it. Nothing persists otherwise.
type SessionRecord struct {
	Profile    Profile    `yaml:"profile"`
	Resources  []Resource `yaml:"resources"`
	Roadmap    string     `yaml:"roadmap"`
	StartedAt  time.Time  `yaml:"startedAt"`
	FinishedAt time.Time  `yaml:"finishedAt"`
}

// ParseHours extracts the first positive integer from free text like
// "15 hours per week". Returns 0 when no number is present.
func ParseHours(s string) int {
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	}) {
		if n, err := strconv.Atoi(field); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
