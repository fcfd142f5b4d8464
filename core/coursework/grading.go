package coursework

import "github.com/code-sharingan/Learning-management-system/core"

// ClassPercentage computes a student's class percentage from their category scores.
// Each category holding assignments worth points contributes earned/points scaled by
// its weight; the sum is rescaled to the total weight of the contributing categories.
// ok is false when no category contributes.
func ClassPercentage(scores []CategoryScore) (pct float64, ok bool) {
	var sum float64
	var weights int
	for _, s := range scores {
		if s.Points <= 0 {
			continue
		}
		sum += float64(s.Earned) / float64(s.Points) * float64(s.Weight)
		weights += s.Weight
	}
	if weights == 0 {
		return 0, false
	}
	return sum * 100 / float64(weights), true
}

// ClassGrade returns the letter grade for the given category scores, or the ungraded
// sentinel when nothing can be graded yet.
func ClassGrade(scores []CategoryScore) string {
	pct, ok := ClassPercentage(scores)
	if !ok {
		return core.Ungraded
	}
	return core.LetterGrade(pct)
}
