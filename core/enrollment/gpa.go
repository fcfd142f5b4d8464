package enrollment

import (
	"github.com/samber/lo"

	"github.com/code-sharingan/Learning-management-system/core"
)

// ComputeGPA averages the grade points of the given letter grades, every class
// weighing the same. Ungraded classes are skipped; no graded class yields 0.
func ComputeGPA(grades []string) float64 {
	points := lo.FilterMap(grades, func(grade string, _ int) (float64, bool) {
		return core.GradePoints(grade)
	})
	if len(points) == 0 {
		return 0
	}
	return lo.Sum(points) / float64(len(points))
}
