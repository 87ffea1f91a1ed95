package normalize_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"talentlens/internal/domain/model"
	"talentlens/internal/domain/normalize"
)

func TestFormatLocation(t *testing.T) {
	Convey("Given assorted raw location values", t, func() {
		Convey("Then nil yields the default", func() {
			So(normalize.FormatLocation(nil), ShouldEqual, "Location not specified")
		})

		Convey("Then a plain string passes through", func() {
			So(normalize.FormatLocation("Berlin, Germany"), ShouldEqual, "Berlin, Germany")
		})

		Convey("Then an empty object yields the default", func() {
			So(normalize.FormatLocation(map[string]any{}), ShouldEqual, "Location not specified")
		})

		Convey("Then name and country are joined", func() {
			loc := map[string]any{"name": "Medellín", "country": "Colombia"}
			So(normalize.FormatLocation(loc), ShouldEqual, "Medellín, Colombia")
		})

		Convey("Then a country-only object still renders", func() {
			So(normalize.FormatLocation(map[string]any{"country": "Colombia"}), ShouldEqual, "Colombia")
		})

		Convey("Then unexpected types yield the default, never empty", func() {
			for _, v := range []any{42.0, true, []any{"x"}, map[string]any{"name": 7.0}} {
				So(normalize.FormatLocation(v), ShouldNotBeEmpty)
			}
		})
	})
}

func TestExtractSkills(t *testing.T) {
	Convey("Given a raw search item", t, func() {
		Convey("When skills, strengths and interests are all present", func() {
			item := map[string]any{
				"skills":    []any{"Go", map[string]any{"name": "Rust"}},
				"strengths": []any{map[string]any{"name": "Go"}, "Kubernetes"},
				"interests": []any{"Rust", "Distributed Systems"},
			}
			skills := normalize.ExtractSkills(item)

			Convey("Then the union keeps first-seen order without duplicates", func() {
				So(skills, ShouldResemble, []string{"Go", "Rust", "Kubernetes", "Distributed Systems"})
			})
		})

		Convey("When all three source fields are missing", func() {
			Convey("Then the result is empty, not nil-keyed", func() {
				So(normalize.ExtractSkills(map[string]any{}), ShouldBeEmpty)
			})
		})

		Convey("When more than eight distinct names exist", func() {
			many := make([]any, 0, 12)
			for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
				many = append(many, s)
			}
			skills := normalize.ExtractSkills(map[string]any{"skills": many})

			Convey("Then the list is capped at eight", func() {
				So(skills, ShouldHaveLength, model.MaxSkills)
			})
		})
	})
}

func TestExtractStrengths(t *testing.T) {
	Convey("Given raw genome strengths", t, func() {
		Convey("When the block is absent", func() {
			strengths := normalize.ExtractStrengths(nil)

			Convey("Then the fixed default list is returned", func() {
				So(strengths, ShouldResemble, []string{"Problem Solving", "Team Leadership", "Innovation"})
			})
		})

		Convey("When entries carry names or ids", func() {
			raw := []any{
				map[string]any{"name": "Empathy"},
				map[string]any{"id": "resilience"},
				map[string]any{"weight": 3.0}, // no name, no id
				"not an object",
			}
			strengths := normalize.ExtractStrengths(raw)

			Convey("Then unusable entries are filtered out", func() {
				So(strengths, ShouldResemble, []string{"Empathy", "resilience"})
			})
		})

		Convey("When more than six usable entries exist", func() {
			raw := make([]any, 0, 9)
			for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
				raw = append(raw, map[string]any{"name": s})
			}

			Convey("Then the list is capped at six", func() {
				So(normalize.ExtractStrengths(raw), ShouldHaveLength, model.MaxStrengths)
			})
		})
	})
}

func TestTransformPersonality(t *testing.T) {
	n := normalize.New()

	Convey("Given raw personality data", t, func() {
		Convey("When a trait arrives as a fraction", func() {
			out := n.TransformPersonality(map[string]any{"openness": 0.85})

			Convey("Then it is scaled to a percentage", func() {
				So(out["openness"], ShouldEqual, 85)
			})
		})

		Convey("When a trait already is a percentage", func() {
			out := n.TransformPersonality(map[string]any{"openness": 85.0})

			Convey("Then it passes through unchanged", func() {
				So(out["openness"], ShouldEqual, 85)
			})
		})

		Convey("When traits are missing from a present block", func() {
			out := n.TransformPersonality(map[string]any{"openness": 0.5})

			Convey("Then all five keys are still present", func() {
				for _, trait := range model.Traits {
					_, ok := out[trait]
					So(ok, ShouldBeTrue)
				}
			})

			Convey("Then missing traits carry the deterministic fallback", func() {
				So(out["neuroticism"], ShouldEqual, 70)
			})
		})

		Convey("When the block is absent entirely", func() {
			out := n.TransformPersonality(nil)

			Convey("Then the fixed default profile is returned", func() {
				So(out["openness"], ShouldEqual, 85)
				So(out["neuroticism"], ShouldEqual, 25)
				So(out, ShouldHaveLength, 5)
			})
		})

		Convey("When values are out of range", func() {
			out := n.TransformPersonality(map[string]any{"openness": 180.0, "extraversion": -4.0})

			Convey("Then they are clamped to [0,100]", func() {
				So(out["openness"], ShouldEqual, 100)
				So(out["extraversion"], ShouldEqual, 0)
			})
		})
	})
}

func TestTransformSkillDetails(t *testing.T) {
	n := normalize.New()

	Convey("Given raw genome strength entries", t, func() {
		Convey("When proficiency and experience are present", func() {
			raw := []any{map[string]any{"name": "Go", "proficiency": 0.9, "experience": "6 years"}}
			details := n.TransformSkillDetails(raw)

			Convey("Then fractions are scaled and labels kept", func() {
				So(details, ShouldHaveLength, 1)
				So(details[0].Proficiency, ShouldEqual, 90)
				So(details[0].Experience, ShouldEqual, "6 years")
			})
		})

		Convey("When proficiency and experience are missing", func() {
			details := n.TransformSkillDetails([]any{map[string]any{"name": "Go"}})

			Convey("Then the deterministic fallbacks apply", func() {
				So(details[0].Proficiency, ShouldEqual, 85)
				So(details[0].Experience, ShouldEqual, "3 years")
			})
		})

		Convey("When entries lack names", func() {
			details := n.TransformSkillDetails([]any{map[string]any{"proficiency": 1.0}})

			Convey("Then they are dropped", func() {
				So(details, ShouldBeEmpty)
			})
		})
	})
}

func TestPerson(t *testing.T) {
	Convey("Given a normalizer with a stable ID generator", t, func() {
		n := normalize.New(normalize.WithIDGenerator(func() string { return "generated" }))

		Convey("When the item is fully populated", func() {
			person, ok := n.Person(map[string]any{
				"subjectId":            "abc123",
				"name":                 "Sarah Chen",
				"username":             "sarahchen",
				"professionalHeadline": "Platform Engineer",
				"location":             map[string]any{"name": "San Francisco", "country": "USA"},
				"picture":              "https://cdn.example.com/p.jpg",
				"skills":               []any{"Go"},
				"weight":               4.6,
				"verified":             true,
			})

			Convey("Then every field maps through", func() {
				So(ok, ShouldBeTrue)
				So(person.ID, ShouldEqual, "abc123")
				So(person.Username, ShouldEqual, "sarahchen")
				So(person.Headline, ShouldEqual, "Platform Engineer")
				So(person.Location, ShouldEqual, "San Francisco, USA")
				So(*person.Avatar, ShouldEqual, "https://cdn.example.com/p.jpg")
				So(person.Rating, ShouldEqual, 4.6)
				So(person.Verified, ShouldBeTrue)
			})
		})

		Convey("When the item carries only a name", func() {
			person, ok := n.Person(map[string]any{"name": "Ghost"})

			Convey("Then all defaults apply and no field is unset", func() {
				So(ok, ShouldBeTrue)
				So(person.ID, ShouldEqual, "generated")
				So(person.Username, ShouldEqual, "unknown")
				So(person.Headline, ShouldEqual, "Professional")
				So(person.Location, ShouldEqual, "Location not specified")
				So(person.Avatar, ShouldBeNil)
				So(person.Skills, ShouldBeEmpty)
				So(person.Experience, ShouldEqual, "Experience not specified")
				So(person.Rating, ShouldEqual, 4.0)
				So(person.Verified, ShouldBeFalse)
			})
		})

		Convey("When the name is missing", func() {
			_, ok := n.Person(map[string]any{"username": "nameless"})

			Convey("Then the record is rejected", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the upstream weight exceeds the rating scale", func() {
			person, _ := n.Person(map[string]any{"name": "Heavy", "weight": 8000.0})

			Convey("Then the rating is clamped to 5", func() {
				So(person.Rating, ShouldEqual, 5.0)
			})
		})
	})
}

func TestSearchPage(t *testing.T) {
	Convey("Given a raw search payload", t, func() {
		ids := 0
		n := normalize.New(normalize.WithIDGenerator(func() string {
			ids++
			return map[int]string{1: "gen-1", 2: "gen-2", 3: "gen-3"}[ids]
		}))

		Convey("When items collide on ID or lack names", func() {
			page := n.SearchPage(map[string]any{
				"results": []any{
					map[string]any{"id": "dup", "name": "First"},
					map[string]any{"id": "dup", "name": "Second"},
					map[string]any{"username": "nameless"},
					"not an object",
				},
				"total": 9.0,
			})

			Convey("Then IDs are unique within the page", func() {
				So(page.Results, ShouldHaveLength, 2)
				So(page.Results[0].ID, ShouldNotEqual, page.Results[1].ID)
			})

			Convey("Then the upstream total is preserved", func() {
				So(page.Total, ShouldEqual, 9)
			})
		})

		Convey("When the payload omits total", func() {
			page := n.SearchPage(map[string]any{
				"results": []any{map[string]any{"id": "a", "name": "Solo"}},
			})

			Convey("Then total falls back to the result count", func() {
				So(page.Total, ShouldEqual, 1)
			})
		})

		Convey("When the payload is empty", func() {
			page := n.SearchPage(map[string]any{})

			Convey("Then results are empty and total zero", func() {
				So(page.Results, ShouldBeEmpty)
				So(page.Total, ShouldEqual, 0)
			})
		})
	})
}

func TestGenome(t *testing.T) {
	n := normalize.New()

	Convey("Given a fully populated raw genome", t, func() {
		raw := map[string]any{
			"person": map[string]any{
				"name":                 "Sarah Chen",
				"professionalHeadline": "Platform Engineer",
				"picture":              "https://cdn.example.com/p.jpg",
				"location":             map[string]any{"name": "San Francisco", "country": "USA"},
			},
			"strengths": []any{
				map[string]any{"name": "Go", "proficiency": 0.95, "experience": "7 years"},
				map[string]any{"name": "Mentoring"},
			},
			"personality": map[string]any{"openness": 0.8},
			"interests":   []any{map[string]any{"name": "Climbing"}},
			"experiences": []any{
				map[string]any{
					"name":          "Backend Development",
					"category":      "jobs",
					"organizations": []any{map[string]any{"name": "Acme"}},
				},
			},
			"awards": []any{map[string]any{"name": "Speaker"}},
		}

		Convey("When normalized", func() {
			genome := n.Genome("sarahchen", raw)

			Convey("Then the identity block maps through", func() {
				So(genome.Username, ShouldEqual, "sarahchen")
				So(genome.Person.Name, ShouldEqual, "Sarah Chen")
				So(genome.Person.Location, ShouldEqual, "San Francisco, USA")
			})

			Convey("Then strengths double as detailed skills", func() {
				So(genome.Strengths, ShouldResemble, []string{"Go", "Mentoring"})
				So(genome.Skills[0].Proficiency, ShouldEqual, 95)
			})

			Convey("Then experience organizations flatten to names", func() {
				So(genome.Experiences[0].Organizations, ShouldResemble, []string{"Acme"})
			})

			Convey("Then awards pass through unmodified", func() {
				So(genome.Awards, ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given a minimal raw genome", t, func() {
		genome := n.Genome("ghost", map[string]any{})

		Convey("Then every field is present and typed", func() {
			So(genome.Person.Name, ShouldEqual, "Unknown")
			So(genome.Person.ProfessionalHeadline, ShouldEqual, "Professional")
			So(genome.Person.Location, ShouldEqual, "Location not specified")
			So(genome.Strengths, ShouldNotBeEmpty)
			So(genome.Personality, ShouldHaveLength, 5)
			So(genome.Skills, ShouldBeEmpty)
			So(genome.Interests, ShouldBeEmpty)
			So(genome.Experiences, ShouldBeEmpty)
			So(genome.Awards, ShouldBeEmpty)
			So(genome.Awards, ShouldNotBeNil)
		})
	})
}
