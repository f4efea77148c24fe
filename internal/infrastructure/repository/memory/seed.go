package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/golf-tracker/internal/domain/course"
	"github.com/riskibarqy/golf-tracker/internal/domain/round"
)

const (
	CourseIDPondokIndah  = "idn-pondok-indah"
	CourseIDRoyalJakarta = "idn-royal-jakarta"

	UserIDDemoGolfer = "demo-golfer"
	UserIDDemoRookie = "demo-rookie"
)

var (
	pondokIndahPars  = []int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 5, 4, 4, 3, 4, 5}
	royalJakartaPars = []int{5, 4, 4, 3, 4, 5, 3, 4, 4, 4, 4, 3, 5, 4, 4, 3, 5, 4}
)

func SeedCourses() []course.Course {
	return []course.Course{
		seedCourse(CourseIDPondokIndah, "Pondok Indah Golf Course", "Jakarta", pondokIndahPars, []course.Tee{
			{Name: "Blue", CourseRating: 73.4, SlopeRating: 131},
			{Name: "White", CourseRating: 71.2, SlopeRating: 125},
		}),
		seedCourse(CourseIDRoyalJakarta, "Royal Jakarta Golf Club", "Jakarta", royalJakartaPars, []course.Tee{
			{Name: "Blue", CourseRating: 74.1, SlopeRating: 135},
			{Name: "White", CourseRating: 72.0, SlopeRating: 0},
		}),
	}
}

func seedCourse(id, name, location string, pars []int, tees []course.Tee) course.Course {
	holes := make([]course.Hole, 0, len(pars))
	for i, par := range pars {
		yardage := 150 + (par-3)*170 + (i%4)*15
		holes = append(holes, course.Hole{
			Number:   i + 1,
			Par:      par,
			Handicap: (i*7)%18 + 1,
			Yardages: map[string]int{"Blue": yardage + 20, "White": yardage},
		})
	}

	return course.Course{ID: id, Name: name, Location: location, Holes: holes, Tees: tees}
}

// SeedRounds builds a deterministic history relative to now: the demo golfer has
// enough completed rounds for an index, the rookie does not.
func SeedRounds(now time.Time) []round.Round {
	var out []round.Round

	for i := 0; i < 12; i++ {
		courseID, pars, tee := CourseIDPondokIndah, pondokIndahPars, "White"
		if i%3 == 2 {
			courseID, pars, tee = CourseIDRoyalJakarta, royalJakartaPars, "Blue"
		}
		out = append(out, seedRound(
			fmt.Sprintf("seed-round-%02d", i+1),
			courseID, tee,
			now.AddDate(0, 0, -(i*17+3)),
			round.StatusCompleted,
			seedPlayer(UserIDDemoGolfer, pars, i),
		))
	}

	for i := 0; i < 3; i++ {
		out = append(out, seedRound(
			fmt.Sprintf("seed-rookie-%02d", i+1),
			CourseIDRoyalJakarta, "White",
			now.AddDate(0, 0, -(i*30+5)),
			round.StatusCompleted,
			seedPlayer(UserIDDemoRookie, royalJakartaPars, i+20),
		))
	}

	out = append(out, round.Round{
		ID:       "seed-active-01",
		CourseID: CourseIDPondokIndah,
		TeeName:  "White",
		PlayedAt: now,
		Status:   round.StatusActive,
		Players:  []round.Player{{UserID: UserIDDemoGolfer}},
	})

	return out
}

func seedRound(id, courseID, tee string, playedAt time.Time, status round.Status, players ...round.Player) round.Round {
	return round.Round{
		ID:       id,
		CourseID: courseID,
		TeeName:  tee,
		PlayedAt: playedAt.UTC().Truncate(time.Minute),
		Status:   status,
		Players:  players,
	}
}

// seedPlayer derives hole results from the pars with a small repeating offset so every
// scoring category shows up in the demo data.
func seedPlayer(userID string, pars []int, variant int) round.Player {
	offsets := []int{0, 1, 0, 2, -1, 1, 0, 1, 3, 0, 1, 0, -2, 1, 2, 0, 1, 1}

	p := round.Player{UserID: userID}
	for i, par := range pars {
		strokes := par + offsets[(i+variant)%len(offsets)]
		if strokes < 1 {
			strokes = 1
		}
		putts := 2
		if strokes < par {
			putts = 1
		}
		p.Scores = append(p.Scores, round.PlayerScore{
			HoleNumber:        i + 1,
			Strokes:           strokes,
			Putts:             putts,
			FairwayHit:        par >= 4 && (i+variant)%3 != 0,
			GreenInRegulation: strokes-putts <= par-2,
			DriveDistance:     seedDrive(par, i+variant),
		})
		p.TotalScore += strokes
	}

	return p
}

func seedDrive(par, n int) int {
	if par < 4 {
		return 0
	}
	return 225 + (n*13)%60
}
