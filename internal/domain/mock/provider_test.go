package mock_test

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"talentlens/internal/domain/mock"
)

func TestSearch(t *testing.T) {
	provider := mock.NewProvider()

	Convey("Given the static dataset", t, func() {
		Convey("When searching with an empty query", func() {
			page := provider.Search("")

			Convey("Then the full set is returned unfiltered", func() {
				So(page.Results, ShouldHaveLength, 6)
				So(page.Total, ShouldEqual, 6)
				So(page.Source, ShouldEqual, "mock")
			})
		})

		Convey("When searching for react", func() {
			page := provider.Search("react")

			Convey("Then every hit contains the term in a searchable field", func() {
				So(page.Results, ShouldNotBeEmpty)
				for _, person := range page.Results {
					haystack := strings.ToLower(strings.Join(append(
						[]string{person.Name, person.Headline, person.Location},
						person.Skills...), " "))
					So(haystack, ShouldContainSubstring, "react")
				}
			})
		})

		Convey("When the query matches a location", func() {
			page := provider.Search("austin")

			Convey("Then the match is case-insensitive", func() {
				So(page.Results, ShouldHaveLength, 1)
				So(page.Results[0].Username, ShouldEqual, "marcusdev")
			})
		})

		Convey("When the query matches nothing", func() {
			page := provider.Search("quantum basket weaving")

			Convey("Then results are empty but well-formed", func() {
				So(page.Results, ShouldBeEmpty)
				So(page.Total, ShouldEqual, 0)
			})
		})

		Convey("When a caller mutates returned skills", func() {
			first := provider.Search("")
			first.Results[0].Skills[0] = "tampered"
			second := provider.Search("")

			Convey("Then the dataset is unaffected", func() {
				So(second.Results[0].Skills[0], ShouldNotEqual, "tampered")
			})
		})
	})
}

func TestGenome(t *testing.T) {
	provider := mock.NewProvider()

	Convey("Given a requested username", t, func() {
		genome := provider.Genome("torvalds")

		Convey("Then the display name is derived from it", func() {
			So(genome.Username, ShouldEqual, "torvalds")
			So(genome.Person.Name, ShouldEqual, "Torvalds")
		})

		Convey("Then the template satisfies the genome invariants", func() {
			So(genome.Personality, ShouldHaveLength, 5)
			So(len(genome.Strengths), ShouldBeLessThanOrEqualTo, 6)
			So(len(genome.Skills), ShouldBeLessThanOrEqualTo, 8)
			So(len(genome.Interests), ShouldBeLessThanOrEqualTo, 5)
			So(len(genome.Experiences), ShouldBeLessThanOrEqualTo, 5)
			So(genome.Awards, ShouldNotBeNil)
		})
	})
}
