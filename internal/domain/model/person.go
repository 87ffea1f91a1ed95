// Package model contains domain models passed between layers.
package model

// Person is a single normalized search result. Every field is always
// populated; consumers render it unconditionally.
type Person struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Username   string   `json:"username"`
	Headline   string   `json:"headline"`
	Location   string   `json:"location"`
	Avatar     *string  `json:"avatar"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Rating     float64  `json:"rating"`
	Verified   bool     `json:"verified"`
}

// SearchPage is the normalized response for a people search.
type SearchPage struct {
	Results      []Person `json:"results"`
	Total        int      `json:"total"`
	Aggregations any      `json:"aggregations,omitempty"`
	Source       string   `json:"source,omitempty"` // "mock" when served by the fallback provider
}

// PersonSummary is the identity block of a genome.
type PersonSummary struct {
	Name                 string  `json:"name"`
	ProfessionalHeadline string  `json:"professionalHeadline"`
	Picture              *string `json:"picture"`
	Location             string  `json:"location"`
}

// SkillDetail is one detailed skill row of a genome.
type SkillDetail struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"` // [0,100]
	Experience  string `json:"experience"`
}

// Experience is one professional experience entry of a genome.
type Experience struct {
	Name          string   `json:"name"`
	Category      string   `json:"category,omitempty"`
	Organizations []string `json:"organizations"`
}

// Genome is the normalized profile detail for one username. The personality
// map always carries exactly the five trait keys of Traits.
type Genome struct {
	Username    string         `json:"username"`
	Person      PersonSummary  `json:"person"`
	Strengths   []string       `json:"strengths"`
	Personality map[string]int `json:"personality"`
	Skills      []SkillDetail  `json:"skills"`
	Interests   []string       `json:"interests"`
	Experiences []Experience   `json:"experiences"`
	Awards      []any          `json:"awards"`
}

// Traits lists the five personality trait keys, in display order.
var Traits = []string{
	"openness",
	"conscientiousness",
	"extraversion",
	"agreeableness",
	"neuroticism",
}

// Caps applied by the normalizer and the mock provider.
const (
	MaxSkills      = 8
	MaxStrengths   = 6
	MaxSkillDetail = 8
	MaxInterests   = 5
	MaxExperiences = 5
)
