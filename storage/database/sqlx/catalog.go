package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/catalog"
)

type catalogRepository struct{}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository() *catalogRepository {
	return &catalogRepository{}
}

func (repo catalogRepository) CreateDepartment(ctx context.Context, ex core.DBExecutor, dep catalog.Department) error {
	_, err := exec(ctx, ex, `INSERT INTO departments (subject, name) VALUES (?, ?)`, dep.Subject, dep.Name)
	return constraintErrs{unique: catalog.ErrDepartmentExists}.trap(err, "inserting department")
}

func (repo catalogRepository) CreateCourse(ctx context.Context, ex core.DBExecutor, crs catalog.Course) error {
	_, err := exec(ctx, ex, `INSERT INTO courses (subject, num, name) VALUES (?, ?, ?)`, crs.Subject, crs.Number, crs.Name)
	return constraintErrs{
		unique:     catalog.ErrCourseExists,
		foreignKey: catalog.ErrDepartmentNotFound,
	}.trap(err, "inserting course")
}

func (repo catalogRepository) QueryDepartments(ctx context.Context, ex core.DBExecutor) ([]catalog.Department, error) {
	deps := make([]catalog.Department, 0)
	if err := sel(ctx, ex, &deps, `SELECT subject, name FROM departments ORDER BY subject`); err != nil {
		return nil, errors.Wrap(err, "selecting departments")
	}
	return deps, nil
}

func (repo catalogRepository) QueryAllCourses(ctx context.Context, ex core.DBExecutor) ([]catalog.Course, error) {
	courses := make([]catalog.Course, 0)
	if err := sel(ctx, ex, &courses, `SELECT course_id, subject, num, name FROM courses ORDER BY subject, num`); err != nil {
		return nil, errors.Wrap(err, "selecting courses")
	}
	return courses, nil
}

func (repo catalogRepository) QueryCourses(ctx context.Context, ex core.DBExecutor, subject string) ([]catalog.CourseListing, error) {
	courses := make([]catalog.CourseListing, 0)
	q := `SELECT num, name FROM courses WHERE subject = ? ORDER BY num`
	if err := sel(ctx, ex, &courses, q, subject); err != nil {
		return nil, errors.Wrap(err, "selecting department courses")
	}
	return courses, nil
}

func (repo catalogRepository) QueryProfessors(ctx context.Context, ex core.DBExecutor, subject string) ([]catalog.ProfessorListing, error) {
	profs := make([]catalog.ProfessorListing, 0)
	q := `SELECT last_name, first_name, uid FROM professors WHERE subject = ? ORDER BY last_name, first_name, uid`
	if err := sel(ctx, ex, &profs, q, subject); err != nil {
		return nil, errors.Wrap(err, "selecting department professors")
	}
	return profs, nil
}
