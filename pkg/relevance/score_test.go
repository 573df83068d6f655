package relevance_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smartystreets/goconvey/convey"

	"marketplace/pkg/domain"
	"marketplace/pkg/relevance"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func km(v float64) *float64 { return &v }

func paris() *domain.Coordinates { return &domain.Coordinates{Lat: 48.85, Lon: 2.35} }

func project(distance *float64, remote bool, age time.Duration, skills ...domain.SkillID) relevance.ProjectCandidate {
	return relevance.ProjectCandidate{
		ID:               domain.ProjectID(uuid.New()),
		Phase:            domain.ProjectPhaseIdea,
		CreatedAt:        now.Add(-age),
		DistanceKm:       distance,
		RemotePossible:   remote,
		RequiredSkillIDs: skills,
	}
}

func TestScorer_Score(t *testing.T) {
	convey.Convey("Given a scorer with a fixed clock", t, func() {
		scorer := relevance.NewScorer(relevance.WithClock(fixedClock))
		talent := relevance.TalentProfile{
			ID:       domain.UserID(uuid.New()),
			Location: paris(),
			SkillIDs: []domain.SkillID{1, 2},
		}

		convey.Convey("When scoring the reference example", func() {
			res := scorer.Score(talent, []relevance.ProjectCandidate{
				project(km(10), false, 48*time.Hour, 1, 2, 3),
			})

			convey.Convey("Then every term matches the formula and the total is rounded", func() {
				convey.So(res, convey.ShouldHaveLength, 1)
				convey.So(res[0].Breakdown.Distance, convey.ShouldEqual, 35.0)
				convey.So(res[0].Breakdown.Skills, convey.ShouldAlmostEqual, 80.0/3, 1e-9)
				convey.So(res[0].Breakdown.Remote, convey.ShouldEqual, 0.0)
				convey.So(res[0].Breakdown.Recency, convey.ShouldEqual, 10.0)
				convey.So(res[0].Overlap, convey.ShouldEqual, 2)
				convey.So(res[0].Score, convey.ShouldEqual, 72)
			})
		})

		convey.Convey("When a project matches on every term", func() {
			res := scorer.Score(talent, []relevance.ProjectCandidate{
				project(km(0), true, time.Hour, 1, 2),
			})

			convey.Convey("Then it scores exactly 100", func() {
				convey.So(res[0].Breakdown.Total(), convey.ShouldEqual, 100.0)
				convey.So(res[0].Score, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When a project matches on no term", func() {
			res := scorer.Score(talent, []relevance.ProjectCandidate{
				project(nil, false, 40*24*time.Hour, 7, 8),
			})

			convey.Convey("Then it scores exactly 0", func() {
				convey.So(res[0].Score, convey.ShouldEqual, 0)
				convey.So(res[0].Overlap, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When a project requires no skill", func() {
			res := scorer.Score(talent, []relevance.ProjectCandidate{project(nil, false, 40*24*time.Hour)})

			convey.Convey("Then the skill term is 0", func() {
				convey.So(res[0].Breakdown.Skills, convey.ShouldEqual, 0.0)
				convey.So(res[0].Score, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the talent has no coordinates", func() {
			talent.Location = nil
			res := scorer.Score(talent, []relevance.ProjectCandidate{project(km(0), false, 40*24*time.Hour)})

			convey.Convey("Then distance contributes nothing", func() {
				convey.So(res[0].Breakdown.Distance, convey.ShouldEqual, 0.0)
			})
		})

		convey.Convey("When the project list is empty", func() {
			res := scorer.Score(talent, nil)

			convey.Convey("Then the result is empty but not nil", func() {
				convey.So(res, convey.ShouldNotBeNil)
				convey.So(res, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When records are malformed", func() {
			undated := project(km(math.NaN()), false, 0, 1)
			undated.CreatedAt = time.Time{}
			negative := project(km(-5), false, 40*24*time.Hour)
			future := project(nil, false, -72*time.Hour)
			healthy := project(km(20), false, 10*24*time.Hour, 1, 2)

			res := scorer.Score(talent, []relevance.ProjectCandidate{undated, negative, future, healthy})

			convey.Convey("Then each one degrades alone and the batch is complete", func() {
				convey.So(res, convey.ShouldHaveLength, 4)
				byID := map[domain.ProjectID]relevance.ScoredProject{}
				for _, r := range res {
					byID[r.ID] = r
				}
				convey.So(byID[undated.ID].Breakdown.Distance, convey.ShouldEqual, 0.0)
				convey.So(byID[undated.ID].Breakdown.Recency, convey.ShouldEqual, 0.0)
				convey.So(byID[undated.ID].Score, convey.ShouldEqual, 40)
				convey.So(byID[negative.ID].Score, convey.ShouldEqual, 0)
				convey.So(byID[future.ID].Breakdown.Recency, convey.ShouldEqual, 10.0)
				convey.So(byID[healthy.ID].Score, convey.ShouldEqual, 30+40+5)
			})
		})

		convey.Convey("When required skills contain duplicates", func() {
			res := scorer.Score(talent, []relevance.ProjectCandidate{
				project(nil, false, 40*24*time.Hour, 1, 1, 3, 3),
			})

			convey.Convey("Then they are counted once", func() {
				convey.So(res[0].Overlap, convey.ShouldEqual, 1)
				convey.So(res[0].Breakdown.Skills, convey.ShouldEqual, 20.0)
			})
		})
	})
}

func TestScorer_Properties(t *testing.T) {
	convey.Convey("Given a scorer and a talent holding four skills", t, func() {
		scorer := relevance.NewScorer(relevance.WithClock(fixedClock))
		talent := relevance.TalentProfile{Location: paris(), SkillIDs: []domain.SkillID{1, 2, 3, 4}}

		convey.Convey("Scores always stay within [0, 100]", func() {
			wide := relevance.Weights{
				Distance: 500, DistanceDecayPerKm: 1, Skills: 500, Remote: 500, Fresh: 500, Recent: 1,
				FreshWindow: time.Hour, RecentWindow: 2 * time.Hour,
			}
			big := relevance.NewScorer(relevance.WithClock(fixedClock), relevance.WithWeights(wide))
			for _, s := range []*relevance.Scorer{scorer, big} {
				res := s.Score(talent, []relevance.ProjectCandidate{
					project(km(0), true, 0, 1, 2),
					project(km(1000), false, 1000*time.Hour),
					project(nil, true, 0, 9),
				})
				for _, r := range res {
					convey.So(r.Score, convey.ShouldBeBetweenOrEqual, 0, 100)
				}
			}
		})

		convey.Convey("The distance term never increases with distance and vanishes at 80 km", func() {
			prev := math.Inf(1)
			for d := 0.0; d <= 120; d += 2.5 {
				r := scorer.ScoreOne(talent, project(km(d), false, 0))
				convey.So(r.Breakdown.Distance, convey.ShouldBeLessThanOrEqualTo, prev)
				if d >= 80 {
					convey.So(r.Breakdown.Distance, convey.ShouldEqual, 0.0)
				}
				prev = r.Breakdown.Distance
			}
		})

		convey.Convey("The skill term scales linearly with the overlap", func() {
			one := scorer.ScoreOne(talent, project(nil, false, 0, 1, 10, 11, 12))
			two := scorer.ScoreOne(talent, project(nil, false, 0, 1, 2, 11, 12))
			four := scorer.ScoreOne(talent, project(nil, false, 0, 1, 2, 3, 4))
			convey.So(two.Breakdown.Skills, convey.ShouldEqual, 2*one.Breakdown.Skills)
			convey.So(four.Breakdown.Skills, convey.ShouldEqual, 40.0)
		})

		convey.Convey("Recency awards 10, then 5, then nothing", func() {
			convey.So(scorer.ScoreOne(talent, project(nil, false, 6*24*time.Hour)).Breakdown.Recency, convey.ShouldEqual, 10.0)
			convey.So(scorer.ScoreOne(talent, project(nil, false, 7*24*time.Hour)).Breakdown.Recency, convey.ShouldEqual, 5.0)
			convey.So(scorer.ScoreOne(talent, project(nil, false, 29*24*time.Hour)).Breakdown.Recency, convey.ShouldEqual, 5.0)
			convey.So(scorer.ScoreOne(talent, project(nil, false, 30*24*time.Hour)).Breakdown.Recency, convey.ShouldEqual, 0.0)
		})

		convey.Convey("Scoring twice yields identical output and leaves the input untouched", func() {
			in := []relevance.ProjectCandidate{
				project(km(50), false, 40*24*time.Hour),
				project(km(5), true, time.Hour, 1, 2),
				project(nil, false, 10*24*time.Hour, 3),
			}
			first := in[0].ID
			a := scorer.Score(talent, in)
			b := scorer.Score(talent, in)
			convey.So(a, convey.ShouldResemble, b)
			convey.So(in[0].ID, convey.ShouldEqual, first)
		})
	})
}

func TestSort(t *testing.T) {
	convey.Convey("Given scored projects", t, func() {
		mk := func(score int, distance *float64, age time.Duration) relevance.ScoredProject {
			return relevance.ScoredProject{ProjectCandidate: project(distance, false, age), Score: score}
		}

		convey.Convey("Higher scores come first", func() {
			low, high := mk(40, nil, 0), mk(70, nil, 0)
			in := []relevance.ScoredProject{low, high}
			relevance.Sort(in)
			convey.So(in[0].ID, convey.ShouldEqual, high.ID)
			convey.So(in[1].ID, convey.ShouldEqual, low.ID)
		})

		convey.Convey("Ties go to the closest, unknown distances last, then to the newest", func() {
			unknown := mk(50, nil, 0)
			far := mk(50, km(30), 0)
			nearOld := mk(50, km(10), 48*time.Hour)
			nearNew := mk(50, km(10), time.Hour)
			in := []relevance.ScoredProject{unknown, far, nearOld, nearNew}
			relevance.Sort(in)
			convey.So(in[0].ID, convey.ShouldEqual, nearNew.ID)
			convey.So(in[1].ID, convey.ShouldEqual, nearOld.ID)
			convey.So(in[2].ID, convey.ShouldEqual, far.ID)
			convey.So(in[3].ID, convey.ShouldEqual, unknown.ID)
		})

		convey.Convey("Complete ties keep their input order", func() {
			a, b := mk(10, nil, time.Hour), mk(10, nil, time.Hour)
			in := []relevance.ScoredProject{a, b}
			relevance.Sort(in)
			convey.So(in[0].ID, convey.ShouldEqual, a.ID)
		})
	})
}
