// Package mock is the fallback data provider. It serves fully-formed records
// of the same shape the normalizer emits, so the endpoint layer can swap it
// in transparently when the upstream is disabled or down.
package mock

import (
	"strings"
	"unicode"

	"talentlens/internal/domain/model"
)

// Source marks responses served by this provider.
const Source = "mock"

// people is the static search dataset. Records are complete on purpose:
// consumers must never need to backfill a field.
var people = []model.Person{
	{
		ID: "1", Name: "Sarah Chen", Username: "sarahchen",
		Headline: "Senior Full Stack Developer at Meta", Location: "San Francisco, CA",
		Skills:     []string{"React", "Node.js", "Python", "AWS"},
		Experience: "5+ years", Rating: 4.9,
	},
	{
		ID: "2", Name: "Marcus Johnson", Username: "marcusdev",
		Headline: "DevOps Engineer & Cloud Architect", Location: "Austin, TX",
		Skills:     []string{"Kubernetes", "Docker", "Terraform", "Azure"},
		Experience: "7+ years", Rating: 4.8,
	},
	{
		ID: "3", Name: "Elena Rodriguez", Username: "elenarodriguez",
		Headline: "Product Designer at Stripe", Location: "New York, NY",
		Skills:     []string{"Figma", "UX Research", "Prototyping", "Design Systems"},
		Experience: "4+ years", Rating: 4.9,
	},
	{
		ID: "4", Name: "Alex Thompson", Username: "alexthompson",
		Headline: "Machine Learning Engineer at Google", Location: "Seattle, WA",
		Skills:     []string{"Python", "TensorFlow", "PyTorch", "MLOps"},
		Experience: "6+ years", Rating: 4.7,
	},
	{
		ID: "5", Name: "Maria Garcia", Username: "mariagarcia",
		Headline: "Senior Product Manager at Microsoft", Location: "Redmond, WA",
		Skills:     []string{"Product Strategy", "User Research", "Agile", "Analytics"},
		Experience: "8+ years", Rating: 4.8,
	},
	{
		ID: "6", Name: "David Kim", Username: "davidkim",
		Headline: "iOS Developer at Apple", Location: "Cupertino, CA",
		Skills:     []string{"Swift", "iOS", "Xcode", "Core Data"},
		Experience: "4+ years", Rating: 4.9,
	},
}

// Provider serves the static dataset.
type Provider struct{}

// NewProvider returns the fallback provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Search filters the static dataset with a case-insensitive substring match
// against name, headline, skills and location. A blank query returns the
// full set.
func (p *Provider) Search(query string) model.SearchPage {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return page(clone(people))
	}

	matched := make([]model.Person, 0, len(people))
	for _, person := range people {
		if matches(person, term) {
			matched = append(matched, person)
		}
	}
	return page(clone(matched))
}

// Genome returns the static genome template personalized for username: the
// display name is the username with its first letter capitalized.
func (p *Provider) Genome(username string) model.Genome {
	return model.Genome{
		Username: username,
		Person: model.PersonSummary{
			Name:                 capitalize(username),
			ProfessionalHeadline: "Professional Developer",
			Location:             "Global",
		},
		Strengths: []string{
			"Problem Solving", "Team Leadership", "Innovation",
			"Communication", "Strategic thinking", "Technical Architecture",
		},
		Personality: map[string]int{
			"openness":          85,
			"conscientiousness": 78,
			"extraversion":      72,
			"agreeableness":     88,
			"neuroticism":       25,
		},
		Skills: []model.SkillDetail{
			{Name: "JavaScript", Proficiency: 95, Experience: "5 years"},
			{Name: "React", Proficiency: 92, Experience: "4 years"},
			{Name: "Node.js", Proficiency: 88, Experience: "3 years"},
			{Name: "Python", Proficiency: 85, Experience: "4 years"},
			{Name: "AWS", Proficiency: 80, Experience: "3 years"},
			{Name: "TypeScript", Proficiency: 90, Experience: "3 years"},
		},
		Interests: []string{
			"Technology", "Innovation", "Team Building", "Open Source", "AI/ML",
		},
		Experiences: []model.Experience{
			{
				Name: "Software Development", Category: "Technology",
				Organizations: []string{"Tech Corp", "StartupXYZ"},
			},
			{
				Name: "Team Leadership", Category: "Management",
				Organizations: []string{"Current Company"},
			},
		},
		Awards: []any{},
	}
}

// JobSearch has no static dataset behind it; it returns an empty
// upstream-shaped placeholder.
func (p *Provider) JobSearch() map[string]any {
	return map[string]any{
		"results": []any{},
		"total":   0,
		"source":  Source,
	}
}

func matches(person model.Person, term string) bool {
	if strings.Contains(strings.ToLower(person.Name), term) ||
		strings.Contains(strings.ToLower(person.Headline), term) ||
		strings.Contains(strings.ToLower(person.Location), term) {
		return true
	}
	for _, skill := range person.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

func page(results []model.Person) model.SearchPage {
	return model.SearchPage{
		Results: results,
		Total:   len(results),
		Source:  Source,
	}
}

// clone copies records so callers cannot mutate the static dataset through
// the shared skill slices.
func clone(in []model.Person) []model.Person {
	out := make([]model.Person, len(in))
	for i, person := range in {
		person.Skills = append([]string(nil), person.Skills...)
		out[i] = person
	}
	return out
}

func capitalize(s string) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) == 0 {
		return "Unknown"
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
