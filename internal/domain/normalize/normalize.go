// Package normalize maps raw upstream payloads into the canonical model
// shapes. Every function absorbs malformed input into documented defaults;
// nothing in this package returns an error and no output field is ever left
// unset. That trade (lenient over strict) keeps rendering unconditional.
package normalize

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"talentlens/internal/domain/model"
)

// Display defaults used when an upstream field is absent or unusable.
const (
	DefaultLocation   = "Location not specified"
	DefaultHeadline   = "Professional"
	DefaultExperience = "Experience not specified"
	DefaultUsername   = "unknown"
	DefaultName       = "Unknown"
)

// defaultStrengths is emitted when the raw strengths block is missing or not
// a list at all.
var defaultStrengths = []string{
	"Problem Solving",
	"Team Leadership",
	"Innovation",
}

// defaultPersonality is emitted when the raw personality block is absent.
var defaultPersonality = map[string]int{
	"openness":          85,
	"conscientiousness": 78,
	"extraversion":      72,
	"agreeableness":     88,
	"neuroticism":       25,
}

// Normalizer converts raw search and genome payloads into model types.
// Fallback values are fixed and deterministic; options exist to override
// them, e.g. for parity testing against recorded datasets.
type Normalizer struct {
	rating      float64
	personality int
	proficiency int
	experience  string
	newID       func() string
}

// New constructs a Normalizer with the documented fallback values.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		rating:      4.0,
		personality: 70,
		proficiency: 85,
		experience:  "3 years",
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// FormatLocation flattens an upstream location value into a display string.
// Strings pass through; objects join their name and country with ", ";
// anything else yields DefaultLocation.
func FormatLocation(v any) string {
	switch loc := v.(type) {
	case string:
		if strings.TrimSpace(loc) == "" {
			return DefaultLocation
		}
		return loc
	case map[string]any:
		parts := make([]string, 0, 2)
		if name := stringField(loc, "name"); name != "" {
			parts = append(parts, name)
		}
		if country := stringField(loc, "country"); country != "" {
			parts = append(parts, country)
		}
		if len(parts) == 0 {
			return DefaultLocation
		}
		return strings.Join(parts, ", ")
	default:
		return DefaultLocation
	}
}

// ExtractSkills unions skill names from the skills, strengths and interests
// fields of a raw search item, in first-seen order, deduplicated, capped at
// model.MaxSkills. Elements may be plain strings or objects with a name.
func ExtractSkills(item map[string]any) []string {
	skills := make([]string, 0, model.MaxSkills)
	seen := make(map[string]struct{})
	for _, field := range []string{"skills", "strengths", "interests"} {
		for _, entry := range listField(item, field) {
			name := nameOf(entry)
			if name == "" {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			skills = append(skills, name)
			if len(skills) == model.MaxSkills {
				return skills
			}
		}
	}
	return skills
}

// ExtractStrengths maps raw genome strengths to their names (or ids), capped
// at model.MaxStrengths. A missing or non-list input falls back to a fixed
// three-entry default.
func ExtractStrengths(v any) []string {
	entries, ok := v.([]any)
	if !ok {
		out := make([]string, len(defaultStrengths))
		copy(out, defaultStrengths)
		return out
	}
	strengths := make([]string, 0, model.MaxStrengths)
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name := stringField(m, "name")
		if name == "" {
			name = stringField(m, "id")
		}
		if name == "" {
			continue
		}
		strengths = append(strengths, name)
		if len(strengths) == model.MaxStrengths {
			break
		}
	}
	return strengths
}

// ExtractInterests maps raw interest entries to their names, capped at
// model.MaxInterests. Absent input yields an empty list.
func ExtractInterests(v any) []string {
	entries, _ := v.([]any)
	interests := make([]string, 0, model.MaxInterests)
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name := stringField(m, "name")
		if name == "" {
			continue
		}
		interests = append(interests, name)
		if len(interests) == model.MaxInterests {
			break
		}
	}
	return interests
}

// TransformExperiences maps raw experience entries, carrying category and
// organizations through, capped at model.MaxExperiences.
func TransformExperiences(v any) []model.Experience {
	entries, _ := v.([]any)
	experiences := make([]model.Experience, 0, model.MaxExperiences)
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name := stringField(m, "name")
		if name == "" {
			continue
		}
		orgs := make([]string, 0)
		for _, org := range listField(m, "organizations") {
			if s := nameOf(org); s != "" {
				orgs = append(orgs, s)
			}
		}
		experiences = append(experiences, model.Experience{
			Name:          name,
			Category:      stringField(m, "category"),
			Organizations: orgs,
		})
		if len(experiences) == model.MaxExperiences {
			break
		}
	}
	return experiences
}

// TransformPersonality produces the five fixed trait keys as integer
// percentages. Values at or below 1 are treated as fractions and scaled;
// larger values are used as-is. Results are clamped to [0,100]. An absent
// block yields the fixed default profile; an absent trait yields the
// configured per-trait fallback.
func (n *Normalizer) TransformPersonality(v any) map[string]int {
	raw, ok := v.(map[string]any)
	if !ok {
		out := make(map[string]int, len(defaultPersonality))
		for trait, score := range defaultPersonality {
			out[trait] = score
		}
		return out
	}
	out := make(map[string]int, len(model.Traits))
	for _, trait := range model.Traits {
		score, ok := numberField(raw, trait)
		if !ok {
			out[trait] = n.personality
			continue
		}
		if score <= 1 {
			score *= 100
		}
		out[trait] = clampInt(int(math.Round(score)), 0, 100)
	}
	return out
}

// TransformSkillDetails maps raw genome strength entries to detailed skill
// rows, capped at model.MaxSkillDetail. Missing proficiency and experience
// fall back to the configured values.
func (n *Normalizer) TransformSkillDetails(v any) []model.SkillDetail {
	entries, _ := v.([]any)
	details := make([]model.SkillDetail, 0, model.MaxSkillDetail)
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name := stringField(m, "name")
		if name == "" {
			continue
		}
		proficiency := n.proficiency
		if score, ok := numberField(m, "proficiency"); ok {
			if score <= 1 {
				score *= 100
			}
			proficiency = clampInt(int(math.Round(score)), 0, 100)
		}
		experience := stringField(m, "experience")
		if experience == "" {
			experience = n.experience
		}
		details = append(details, model.SkillDetail{
			Name:        name,
			Proficiency: proficiency,
			Experience:  experience,
		})
		if len(details) == model.MaxSkillDetail {
			break
		}
	}
	return details
}

// Person normalizes one raw search item. The second return is false when the
// item carries no usable name; such records are dropped rather than rendered
// blank.
func (n *Normalizer) Person(item map[string]any) (model.Person, bool) {
	name := stringField(item, "name")
	if name == "" {
		return model.Person{}, false
	}

	id := firstString(item, "subjectId", "id", "username")
	if id == "" {
		id = n.newID()
	}
	username := firstString(item, "username", "subjectId")
	if username == "" {
		username = DefaultUsername
	}
	headline := firstString(item, "professionalHeadline", "headline")
	if headline == "" {
		headline = DefaultHeadline
	}
	experience := stringField(item, "experience")
	if experience == "" {
		experience = DefaultExperience
	}

	rating := n.rating
	if weight, ok := numberField(item, "weight"); ok && weight > 0 {
		rating = clampFloat(weight, 0, 5)
	} else if weight, ok := numberField(item, "rating"); ok && weight > 0 {
		rating = clampFloat(weight, 0, 5)
	}

	return model.Person{
		ID:         id,
		Name:       name,
		Username:   username,
		Headline:   headline,
		Location:   FormatLocation(item["location"]),
		Avatar:     optionalString(item, "picture"),
		Skills:     ExtractSkills(item),
		Experience: experience,
		Rating:     rating,
		Verified:   boolField(item, "verified"),
	}, true
}

// SearchPage normalizes a raw search payload. Invalid items are dropped and
// duplicate IDs within the page are replaced with generated ones so the
// result set stays uniquely keyed.
func (n *Normalizer) SearchPage(raw map[string]any) model.SearchPage {
	items := listField(raw, "results")
	results := make([]model.Person, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		person, ok := n.Person(m)
		if !ok {
			continue
		}
		if _, dup := seen[person.ID]; dup {
			person.ID = n.newID()
		}
		seen[person.ID] = struct{}{}
		results = append(results, person)
	}

	total := len(results)
	if v, ok := numberField(raw, "total"); ok && v >= 0 {
		total = int(v)
	}

	return model.SearchPage{
		Results:      results,
		Total:        total,
		Aggregations: raw["aggregations"],
	}
}

// Genome normalizes a raw genome payload for username. Detailed skills are
// derived from the strengths block, matching the upstream schema where
// proficiency lives on strength entries.
func (n *Normalizer) Genome(username string, raw map[string]any) model.Genome {
	person, _ := raw["person"].(map[string]any)

	name := stringField(person, "name")
	if name == "" {
		name = DefaultName
	}
	headline := stringField(person, "professionalHeadline")
	if headline == "" {
		headline = DefaultHeadline
	}

	awards := listField(raw, "awards")
	if awards == nil {
		awards = []any{}
	}

	return model.Genome{
		Username: username,
		Person: model.PersonSummary{
			Name:                 name,
			ProfessionalHeadline: headline,
			Picture:              optionalString(person, "picture"),
			Location:             FormatLocation(person["location"]),
		},
		Strengths:   ExtractStrengths(raw["strengths"]),
		Personality: n.TransformPersonality(raw["personality"]),
		Skills:      n.TransformSkillDetails(raw["strengths"]),
		Interests:   ExtractInterests(raw["interests"]),
		Experiences: TransformExperiences(raw["experiences"]),
		Awards:      awards,
	}
}

// nameOf accepts either a plain string or an object with a name field.
func nameOf(v any) string {
	switch entry := v.(type) {
	case string:
		return strings.TrimSpace(entry)
	case map[string]any:
		return stringField(entry, "name")
	default:
		return ""
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringField(m, key); s != "" {
			return s
		}
	}
	return ""
}

func optionalString(m map[string]any, key string) *string {
	if s := stringField(m, key); s != "" {
		return &s
	}
	return nil
}

func numberField(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func boolField(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func listField(m map[string]any, key string) []any {
	l, _ := m[key].([]any)
	return l
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
