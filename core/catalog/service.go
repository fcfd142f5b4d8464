package catalog

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/code-sharingan/Learning-management-system/core"
)

var (
	// errors
	ErrDepartmentExists   = core.NewRejection("a department with this subject already exists")
	ErrDepartmentNotFound = core.NewRejection("department not found")
	ErrCourseExists       = core.NewRejection("a course with this number already exists in the department")
)

type (
	// Repository implementations report duplicate keys with ErrDepartmentExists or ErrCourseExists,
	// and a missing department with ErrDepartmentNotFound.
	Repository interface {
		CreateDepartment(ctx context.Context, exec core.DBExecutor, dep Department) error
		CreateCourse(ctx context.Context, exec core.DBExecutor, crs Course) error
		QueryDepartments(ctx context.Context, exec core.DBExecutor) ([]Department, error)
		QueryAllCourses(ctx context.Context, exec core.DBExecutor) ([]Course, error)
		QueryCourses(ctx context.Context, exec core.DBExecutor, subject string) ([]CourseListing, error)
		QueryProfessors(ctx context.Context, exec core.DBExecutor, subject string) ([]ProfessorListing, error)
	}

	Service interface {
		CreateDepartment(ctx context.Context, nd NewDepartment) error
		CreateCourse(ctx context.Context, nc NewCourse) error
		QueryCourses(ctx context.Context, subject string) ([]CourseListing, error)
		QueryProfessors(ctx context.Context, subject string) ([]ProfessorListing, error)
		Catalog(ctx context.Context) ([]CatalogDepartment, error)
	}

	service struct {
		db   core.DB
		repo Repository
	}
)

var _ Service = (*service)(nil) // interface compliance check

func NewService(db core.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (svc *service) CreateDepartment(ctx context.Context, nd NewDepartment) error {
	dep := Department{Subject: nd.Subject, Name: nd.Name}
	return core.RunInTx(ctx, svc.db, core.ReadCommitted, func(tx core.DBExecutor) error {
		return svc.repo.CreateDepartment(ctx, tx, dep)
	})
}

func (svc *service) CreateCourse(ctx context.Context, nc NewCourse) error {
	crs := Course{Subject: nc.Subject, Number: nc.Number, Name: nc.Name}
	return core.RunInTx(ctx, svc.db, core.ReadCommitted, func(tx core.DBExecutor) error {
		return svc.repo.CreateCourse(ctx, tx, crs)
	})
}

func (svc *service) QueryCourses(ctx context.Context, subject string) ([]CourseListing, error) {
	return svc.repo.QueryCourses(ctx, svc.db, core.CleanSubject(subject))
}

func (svc *service) QueryProfessors(ctx context.Context, subject string) ([]ProfessorListing, error) {
	return svc.repo.QueryProfessors(ctx, svc.db, core.CleanSubject(subject))
}

// Catalog lists every department with all of its courses, departments without courses included.
func (svc *service) Catalog(ctx context.Context) ([]CatalogDepartment, error) {
	deps, err := svc.repo.QueryDepartments(ctx, svc.db)
	if err != nil {
		return nil, errors.Wrap(err, "querying departments")
	}
	courses, err := svc.repo.QueryAllCourses(ctx, svc.db)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return buildCatalog(deps, courses), nil
}

func buildCatalog(deps []Department, courses []Course) []CatalogDepartment {
	bySubject := lo.GroupBy(courses, func(c Course) string { return c.Subject })

	catalog := make([]CatalogDepartment, 0, len(deps))
	for _, dep := range deps {
		crs := lo.Map(bySubject[dep.Subject], func(c Course, _ int) CatalogCourse {
			return CatalogCourse{Number: c.Number, Name: c.Name}
		})
		sort.Slice(crs, func(i, j int) bool { return crs[i].Number < crs[j].Number })
		catalog = append(catalog, CatalogDepartment{Subject: dep.Subject, Name: dep.Name, Courses: crs})
	}
	sort.Slice(catalog, func(i, j int) bool { return catalog[i].Subject < catalog[j].Subject })
	return catalog
}
