package course

import "math"

const (
	// DefaultCourseRating applies when legacy course data carries no rating.
	DefaultCourseRating = 72.0
	// DefaultSlopeRating applies when legacy course data carries no slope, or a slope of 0.
	DefaultSlopeRating = 113.0

	MinPar = 3
	MaxPar = 6

	HolesPerRound = 18
)

// Course is a playable golf course with its holes and rated tees.
type Course struct {
	ID       string
	Name     string
	Location string
	Holes    []Hole
	Tees     []Tee
}

// Hole is one numbered hole of a course.
type Hole struct {
	Number   int
	Par      int
	Handicap int
	Yardages map[string]int
}

// Tee holds course-level difficulty constants for one named tee set.
type Tee struct {
	Name         string
	CourseRating float64
	SlopeRating  float64
}

// NormalizeRatings substitutes the defaults for missing or unusable rating and slope values.
func NormalizeRatings(courseRating, slopeRating float64) (float64, float64) {
	if courseRating <= 0 || math.IsNaN(courseRating) || math.IsInf(courseRating, 0) {
		courseRating = DefaultCourseRating
	}
	if slopeRating <= 0 || math.IsNaN(slopeRating) || math.IsInf(slopeRating, 0) {
		slopeRating = DefaultSlopeRating
	}
	return courseRating, slopeRating
}

func (c Course) HoleByNumber(number int) (Hole, bool) {
	for _, h := range c.Holes {
		if h.Number == number {
			return h, true
		}
	}
	return Hole{}, false
}

func (c Course) TeeByName(name string) (Tee, bool) {
	for _, t := range c.Tees {
		if t.Name == name {
			return t, true
		}
	}
	return Tee{}, false
}
