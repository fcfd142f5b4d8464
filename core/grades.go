package core

// Ungraded is the enrollment grade until a letter grade is assigned.
const Ungraded = "--"

type gradeStep struct {
	min    float64
	letter string
	points float64
}

// gradeScale maps class percentages to letter grades and grade points, highest first.
var gradeScale = []gradeStep{
	{93, "A", 4.0},
	{90, "A-", 3.7},
	{87, "B+", 3.3},
	{83, "B", 3.0},
	{80, "B-", 2.7},
	{77, "C+", 2.3},
	{73, "C", 2.0},
	{70, "C-", 1.7},
	{67, "D+", 1.3},
	{63, "D", 1.0},
	{60, "D-", 0.7},
	{0, "E", 0.0},
}

// LetterGrade returns the letter grade earned with the given class percentage.
func LetterGrade(percentage float64) string {
	for _, step := range gradeScale {
		if percentage >= step.min {
			return step.letter
		}
	}
	return "E"
}

// GradePoints returns the grade-point value of a letter grade.
// ok is false for the Ungraded sentinel and unknown letters.
func GradePoints(letter string) (points float64, ok bool) {
	if letter == "F" {
		letter = "E"
	}
	for _, step := range gradeScale {
		if step.letter == letter {
			return step.points, true
		}
	}
	return 0, false
}
