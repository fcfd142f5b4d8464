package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/schedule"
)

type scheduleRepository struct{}

var _ schedule.Repository = (*scheduleRepository)(nil) // interface compliance check

func NewScheduleRepository() *scheduleRepository {
	return &scheduleRepository{}
}

func (repo scheduleRepository) GetCourseID(ctx context.Context, ex core.DBExecutor, subject string, number int) (int, error) {
	var id int
	err := get(ctx, ex, &id, `SELECT course_id FROM courses WHERE subject = ? AND num = ?`, subject, number)
	return id, trapNoRowsErr(err, schedule.ErrCourseNotFound, "getting course id")
}

func (repo scheduleRepository) QuerySemesterClasses(ctx context.Context, ex core.DBExecutor, season string, year int) ([]schedule.Class, error) {
	classes := make([]schedule.Class, 0)
	q := `
		SELECT class_id, course_id, season, year, start_time, end_time, location, professor
		FROM classes
		WHERE season = ? AND year = ?`
	if err := sel(ctx, ex, &classes, q, season, year); err != nil {
		return nil, constraintErrs{}.trap(err, "selecting semester classes")
	}
	return classes, nil
}

func (repo scheduleRepository) CreateClass(ctx context.Context, ex core.DBExecutor, cls schedule.Class) error {
	q := `
		INSERT INTO classes (course_id, season, year, start_time, end_time, location, professor)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := exec(ctx, ex, q, cls.CourseID, cls.Season, cls.Year, cls.Start, cls.End, cls.Location, cls.Professor)
	return constraintErrs{
		unique:     schedule.ErrCourseOffered,
		foreignKey: schedule.ErrProfessorNotFound,
	}.trap(err, "inserting class")
}

func (repo scheduleRepository) QueryOfferings(ctx context.Context, ex core.DBExecutor, subject string, number int) ([]schedule.Offering, error) {
	offerings := make([]schedule.Offering, 0)
	q := `
		SELECT cl.season, cl.year, cl.location, cl.start_time, cl.end_time, p.first_name, p.last_name
		FROM classes cl
		JOIN courses co ON co.course_id = cl.course_id
		JOIN professors p ON p.uid = cl.professor
		WHERE co.subject = ? AND co.num = ?
		ORDER BY cl.year DESC, cl.season`
	if err := sel(ctx, ex, &offerings, q, subject, number); err != nil {
		return nil, errors.Wrap(err, "selecting course offerings")
	}
	return offerings, nil
}

func (repo scheduleRepository) QueryTaughtClasses(ctx context.Context, ex core.DBExecutor, uid string) ([]schedule.TaughtClass, error) {
	classes := make([]schedule.TaughtClass, 0)
	q := `
		SELECT co.subject, co.num, co.name, cl.season, cl.year
		FROM classes cl
		JOIN courses co ON co.course_id = cl.course_id
		WHERE cl.professor = ?
		ORDER BY cl.year DESC, cl.season, co.subject, co.num`
	if err := sel(ctx, ex, &classes, q, uid); err != nil {
		return nil, errors.Wrap(err, "selecting professor classes")
	}
	return classes, nil
}
