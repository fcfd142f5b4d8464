package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/coursework"
)

const assignmentKeyJoins = `
	JOIN assignment_categories ac ON ac.category_id = a.category_id
	JOIN classes cl ON cl.class_id = ac.class_id
	JOIN courses co ON co.course_id = cl.course_id
	WHERE co.subject = ? AND co.num = ? AND cl.season = ? AND cl.year = ? AND ac.name = ? AND a.name = ?`

func assignmentKeyArgs(key coursework.AssignmentKey) []interface{} {
	return append(classKeyArgs(key.ClassKey), key.Category, key.Name)
}

type courseworkRepository struct{}

var _ coursework.Repository = (*courseworkRepository)(nil) // interface compliance check

func NewCourseworkRepository() *courseworkRepository {
	return &courseworkRepository{}
}

func (repo courseworkRepository) GetClassID(ctx context.Context, ex core.DBExecutor, key core.ClassKey) (int, error) {
	return getClassID(ctx, ex, key, coursework.ErrClassNotFound)
}

func (repo courseworkRepository) GetCategory(ctx context.Context, ex core.DBExecutor, classID int, name string) (coursework.Category, error) {
	var cat coursework.Category
	q := `SELECT category_id, class_id, name, weight FROM assignment_categories WHERE class_id = ? AND name = ?`
	err := get(ctx, ex, &cat, q, classID, name)
	return cat, trapNoRowsErr(err, coursework.ErrCategoryNotFound, "getting category")
}

func (repo courseworkRepository) CreateCategory(ctx context.Context, ex core.DBExecutor, cat coursework.Category) error {
	q := `INSERT INTO assignment_categories (class_id, name, weight) VALUES (?, ?, ?)`
	_, err := exec(ctx, ex, q, cat.ClassID, cat.Name, cat.Weight)
	return constraintErrs{
		unique:     coursework.ErrCategoryExists,
		foreignKey: coursework.ErrClassNotFound,
	}.trap(err, "inserting category")
}

func (repo courseworkRepository) QueryCategories(ctx context.Context, ex core.DBExecutor, key core.ClassKey) ([]coursework.Category, error) {
	cats := make([]coursework.Category, 0)
	q := `
		SELECT ac.category_id, ac.class_id, ac.name, ac.weight
		FROM assignment_categories ac
		JOIN classes cl ON cl.class_id = ac.class_id` + classKeyJoins + `
		ORDER BY ac.name`
	if err := sel(ctx, ex, &cats, q, classKeyArgs(key)...); err != nil {
		return nil, errors.Wrap(err, "selecting categories")
	}
	return cats, nil
}

func (repo courseworkRepository) GetAssignment(ctx context.Context, ex core.DBExecutor, key coursework.AssignmentKey) (coursework.Assignment, error) {
	var asg coursework.Assignment
	q := `
		SELECT a.assignment_id, a.category_id, ac.class_id, a.name, a.contents, a.due, a.points
		FROM assignments a` + assignmentKeyJoins
	err := get(ctx, ex, &asg, q, assignmentKeyArgs(key)...)
	return asg, trapNoRowsErr(err, coursework.ErrAssignmentNotFound, "getting assignment")
}

func (repo courseworkRepository) CreateAssignment(ctx context.Context, ex core.DBExecutor, asg coursework.Assignment) error {
	q := `INSERT INTO assignments (category_id, name, contents, due, points) VALUES (?, ?, ?, ?, ?)`
	_, err := exec(ctx, ex, q, asg.CategoryID, asg.Name, asg.Contents, asg.Due, asg.Points)
	return constraintErrs{
		unique:     coursework.ErrAssignmentExists,
		foreignKey: coursework.ErrCategoryNotFound,
	}.trap(err, "inserting assignment")
}

func (repo courseworkRepository) QueryAssignments(ctx context.Context, ex core.DBExecutor, key core.ClassKey, category string) ([]coursework.AssignmentListing, error) {
	args := classKeyArgs(key)
	var categoryFilter string
	if category != "" {
		categoryFilter = ` AND ac.name = ?`
		args = append(args, category)
	}

	asgs := make([]coursework.AssignmentListing, 0)
	q := `
		SELECT a.name AS aname, ac.name AS cname, a.due, COUNT(s.uid) AS submissions
		FROM assignments a
		JOIN assignment_categories ac ON ac.category_id = a.category_id
		JOIN classes cl ON cl.class_id = ac.class_id
		LEFT JOIN submissions s ON s.assignment_id = a.assignment_id` + classKeyJoins + categoryFilter + `
		GROUP BY a.assignment_id, a.name, ac.name, a.due
		ORDER BY a.due, a.name`
	if err := sel(ctx, ex, &asgs, q, args...); err != nil {
		return nil, errors.Wrap(err, "selecting assignments")
	}
	return asgs, nil
}

func (repo courseworkRepository) QueryStudentAssignments(ctx context.Context, ex core.DBExecutor, key core.ClassKey, uid string) ([]coursework.StudentAssignment, error) {
	asgs := make([]coursework.StudentAssignment, 0)
	q := `
		SELECT a.name AS aname, ac.name AS cname, a.due, s.score
		FROM assignments a
		JOIN assignment_categories ac ON ac.category_id = a.category_id
		JOIN classes cl ON cl.class_id = ac.class_id
		JOIN enrolled e ON e.class_id = cl.class_id AND e.uid = ?
		LEFT JOIN submissions s ON s.assignment_id = a.assignment_id AND s.uid = e.uid` + classKeyJoins + `
		ORDER BY a.due, a.name`
	args := append([]interface{}{uid}, classKeyArgs(key)...)
	if err := sel(ctx, ex, &asgs, q, args...); err != nil {
		return nil, errors.Wrap(err, "selecting student assignments")
	}
	return asgs, nil
}

func (repo courseworkRepository) GetSubmission(ctx context.Context, ex core.DBExecutor, assignmentID int, uid string) (coursework.Submission, error) {
	var sub coursework.Submission
	q := `SELECT uid, assignment_id, time, contents, score FROM submissions WHERE assignment_id = ? AND uid = ?`
	err := get(ctx, ex, &sub, q, assignmentID, uid)
	return sub, trapNoRowsErr(err, coursework.ErrSubmissionNotFound, "getting submission")
}

func (repo courseworkRepository) CreateSubmission(ctx context.Context, ex core.DBExecutor, sub coursework.Submission) error {
	q := `INSERT INTO submissions (uid, assignment_id, time, contents, score) VALUES (?, ?, ?, ?, ?)`
	_, err := exec(ctx, ex, q, sub.UID, sub.AssignmentID, sub.Time, sub.Contents, sub.Score)
	return constraintErrs{
		// another first submission won the race
		unique:     core.ErrTxConflict,
		foreignKey: coursework.ErrStudentNotFound,
	}.trap(err, "inserting submission")
}

func (repo courseworkRepository) UpdateSubmission(ctx context.Context, ex core.DBExecutor, sub coursework.Submission) error {
	q := `UPDATE submissions SET time = ?, contents = ? WHERE uid = ? AND assignment_id = ?`
	if _, err := exec(ctx, ex, q, sub.Time, sub.Contents, sub.UID, sub.AssignmentID); err != nil {
		return errors.Wrap(err, "updating submission")
	}
	return nil
}

func (repo courseworkRepository) QuerySubmissions(ctx context.Context, ex core.DBExecutor, key coursework.AssignmentKey) ([]coursework.SubmissionListing, error) {
	subs := make([]coursework.SubmissionListing, 0)
	q := `
		SELECT st.first_name, st.last_name, s.uid, s.time, s.score
		FROM submissions s
		JOIN students st ON st.uid = s.uid
		JOIN assignments a ON a.assignment_id = s.assignment_id` + assignmentKeyJoins + `
		ORDER BY st.last_name, st.first_name, s.uid`
	if err := sel(ctx, ex, &subs, q, assignmentKeyArgs(key)...); err != nil {
		return nil, errors.Wrap(err, "selecting submissions")
	}
	return subs, nil
}

func (repo courseworkRepository) SetScore(ctx context.Context, ex core.DBExecutor, assignmentID int, uid string, score int) error {
	res, err := exec(ctx, ex, `UPDATE submissions SET score = ? WHERE assignment_id = ? AND uid = ?`, score, assignmentID, uid)
	if err != nil {
		return constraintErrs{}.trap(err, "updating score")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "updating score")
	}
	if n == 0 {
		return coursework.ErrSubmissionNotFound
	}
	return nil
}

func (repo courseworkRepository) QueryCategoryScores(ctx context.Context, ex core.DBExecutor, classID int, uid string) ([]coursework.CategoryScore, error) {
	scores := make([]coursework.CategoryScore, 0)
	q := `
		SELECT ac.category_id, ac.weight, SUM(a.points) AS points, SUM(COALESCE(s.score, 0)) AS earned
		FROM assignment_categories ac
		JOIN assignments a ON a.category_id = ac.category_id
		LEFT JOIN submissions s ON s.assignment_id = a.assignment_id AND s.uid = ?
		WHERE ac.class_id = ?
		GROUP BY ac.category_id, ac.weight`
	if err := sel(ctx, ex, &scores, q, uid, classID); err != nil {
		return nil, errors.Wrap(err, "selecting category scores")
	}
	return scores, nil
}

func (repo courseworkRepository) SetClassGrade(ctx context.Context, ex core.DBExecutor, classID int, uid, grade string) error {
	_, err := exec(ctx, ex, `UPDATE enrolled SET grade = ? WHERE class_id = ? AND uid = ?`, grade, classID, uid)
	return constraintErrs{}.trap(err, "updating class grade")
}
