package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/enrollment"
)

type enrollmentRepository struct{}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository() *enrollmentRepository {
	return &enrollmentRepository{}
}

func (repo enrollmentRepository) GetClassID(ctx context.Context, ex core.DBExecutor, key core.ClassKey) (int, error) {
	return getClassID(ctx, ex, key, enrollment.ErrClassNotFound)
}

func (repo enrollmentRepository) CreateEnrollment(ctx context.Context, ex core.DBExecutor, enr enrollment.Enrollment) error {
	_, err := exec(ctx, ex, `INSERT INTO enrolled (uid, class_id, grade) VALUES (?, ?, ?)`, enr.UID, enr.ClassID, enr.Grade)
	return constraintErrs{
		unique:     enrollment.ErrAlreadyEnrolled,
		foreignKey: enrollment.ErrStudentNotFound,
	}.trap(err, "inserting enrollment")
}

func (repo enrollmentRepository) QueryRoster(ctx context.Context, ex core.DBExecutor, key core.ClassKey) ([]enrollment.RosterEntry, error) {
	roster := make([]enrollment.RosterEntry, 0)
	q := `
		SELECT st.first_name, st.last_name, st.uid, st.dob, e.grade
		FROM enrolled e
		JOIN students st ON st.uid = e.uid
		JOIN classes cl ON cl.class_id = e.class_id` + classKeyJoins + `
		ORDER BY st.last_name, st.first_name, st.uid`
	if err := sel(ctx, ex, &roster, q, classKeyArgs(key)...); err != nil {
		return nil, errors.Wrap(err, "selecting roster")
	}
	return roster, nil
}

func (repo enrollmentRepository) QueryStudentClasses(ctx context.Context, ex core.DBExecutor, uid string) ([]enrollment.StudentClass, error) {
	classes := make([]enrollment.StudentClass, 0)
	q := `
		SELECT co.subject, co.num, co.name, cl.season, cl.year, e.grade
		FROM enrolled e
		JOIN classes cl ON cl.class_id = e.class_id
		JOIN courses co ON co.course_id = cl.course_id
		WHERE e.uid = ?
		ORDER BY cl.year DESC, cl.season, co.subject, co.num`
	if err := sel(ctx, ex, &classes, q, uid); err != nil {
		return nil, errors.Wrap(err, "selecting student classes")
	}
	return classes, nil
}

func (repo enrollmentRepository) QueryGrades(ctx context.Context, ex core.DBExecutor, uid string) ([]string, error) {
	grades := make([]string, 0)
	if err := sel(ctx, ex, &grades, `SELECT grade FROM enrolled WHERE uid = ?`, uid); err != nil {
		return nil, errors.Wrap(err, "selecting grades")
	}
	return grades, nil
}
