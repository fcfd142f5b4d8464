package inmemdb

import (
	"context"
	"sort"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/catalog"
	"github.com/code-sharingan/Learning-management-system/core/people"
)

type catalogRepository struct {
	db *DB
}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository(db *DB) *catalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) CreateDepartment(_ context.Context, _ core.DBExecutor, dep catalog.Department) error {
	return repo.db.write(func(t *tables) error {
		if _, ok := t.departments[dep.Subject]; ok {
			return catalog.ErrDepartmentExists
		}
		t.departments[dep.Subject] = dep
		return nil
	})
}

func (repo *catalogRepository) CreateCourse(_ context.Context, _ core.DBExecutor, crs catalog.Course) error {
	return repo.db.write(func(t *tables) error {
		for _, c := range t.courses {
			if c.Subject == crs.Subject && c.Number == crs.Number {
				return catalog.ErrCourseExists
			}
		}
		if _, ok := t.departments[crs.Subject]; !ok {
			return catalog.ErrDepartmentNotFound
		}
		crs.ID = t.nextID()
		t.courses[crs.ID] = crs
		return nil
	})
}

func (repo *catalogRepository) QueryDepartments(_ context.Context, _ core.DBExecutor) ([]catalog.Department, error) {
	deps := make([]catalog.Department, 0)
	repo.db.read(func(t *tables) {
		for _, dep := range t.departments {
			deps = append(deps, dep)
		}
	})
	sort.Slice(deps, func(i, j int) bool { return deps[i].Subject < deps[j].Subject })
	return deps, nil
}

func (repo *catalogRepository) QueryAllCourses(_ context.Context, _ core.DBExecutor) ([]catalog.Course, error) {
	courses := make([]catalog.Course, 0)
	repo.db.read(func(t *tables) {
		for _, crs := range t.courses {
			courses = append(courses, crs)
		}
	})
	sort.Slice(courses, func(i, j int) bool {
		if courses[i].Subject != courses[j].Subject {
			return courses[i].Subject < courses[j].Subject
		}
		return courses[i].Number < courses[j].Number
	})
	return courses, nil
}

func (repo *catalogRepository) QueryCourses(_ context.Context, _ core.DBExecutor, subject string) ([]catalog.CourseListing, error) {
	courses := make([]catalog.CourseListing, 0)
	repo.db.read(func(t *tables) {
		for _, crs := range t.courses {
			if crs.Subject == subject {
				courses = append(courses, catalog.CourseListing{Number: crs.Number, Name: crs.Name})
			}
		}
	})
	sort.Slice(courses, func(i, j int) bool { return courses[i].Number < courses[j].Number })
	return courses, nil
}

func (repo *catalogRepository) QueryProfessors(_ context.Context, _ core.DBExecutor, subject string) ([]catalog.ProfessorListing, error) {
	profs := make([]catalog.ProfessorListing, 0)
	repo.db.read(func(t *tables) {
		for _, p := range t.people {
			if p.Role == people.RoleProfessor && p.Subject == subject {
				profs = append(profs, catalog.ProfessorListing{LastName: p.LastName, FirstName: p.FirstName, UID: p.UID})
			}
		}
	})
	sort.Slice(profs, func(i, j int) bool {
		a, b := profs[i], profs[j]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return a.UID < b.UID
	})
	return profs, nil
}
