package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/catalog"
	"github.com/code-sharingan/Learning-management-system/core/coursework"
	"github.com/code-sharingan/Learning-management-system/core/enrollment"
	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/core/schedule"
	"github.com/code-sharingan/Learning-management-system/storage/database"
	"github.com/code-sharingan/Learning-management-system/storage/database/inmem"
	"github.com/code-sharingan/Learning-management-system/storage/database/sqlx"
)

// Repos bundles one repository per domain.
type Repos struct {
	Catalog    catalog.Repository
	Schedule   schedule.Repository
	Coursework coursework.Repository
	Enrollment enrollment.Repository
	People     people.Repository
}

func NewInmemRepos(db *inmemdb.DB) Repos {
	return Repos{
		Catalog:    inmemdb.NewCatalogRepository(db),
		Schedule:   inmemdb.NewScheduleRepository(db),
		Coursework: inmemdb.NewCourseworkRepository(db),
		Enrollment: inmemdb.NewEnrollmentRepository(db),
		People:     inmemdb.NewPeopleRepository(db),
	}
}

func NewSQLRepos() Repos {
	return Repos{
		Catalog:    sqlxrepos.NewCatalogRepository(),
		Schedule:   sqlxrepos.NewScheduleRepository(),
		Coursework: sqlxrepos.NewCourseworkRepository(),
		Enrollment: sqlxrepos.NewEnrollmentRepository(),
		People:     sqlxrepos.NewPeopleRepository(),
	}
}

// tables in deletion order
var tables = []string{
	"submissions", "enrolled", "assignments", "assignment_categories", "classes",
	"students", "professors", "administrators", "courses", "departments",
}

// PrepareDB opens, migrates and empties the test database.
// The test is skipped unless TEST_DATABASE_NAME is set.
func PrepareDB(t *testing.T) *database.DB {
	if os.Getenv("TEST_DATABASE_NAME") == "" {
		t.Skip("TEST_DATABASE_NAME is not set")
	}
	t.Setenv("ENV", "TEST")
	conf := core.NewConfig()

	if err := database.CreateIfNotExist(conf); err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	db, err := database.Open(conf)
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(db); err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	for _, table := range tables {
		if _, err = db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("PrepareDB() failed: %v", err)
		}
	}
	return db
}

// Fixture seeds rows straight through the repositories.
type Fixture struct {
	T     *testing.T
	DB    core.DB
	Repos Repos
}

func (f Fixture) ctx() context.Context { return context.Background() }

func (f Fixture) check(fn string, err error) {
	f.T.Helper()
	if err != nil {
		f.T.Fatalf("%s() failed: %v", fn, err)
	}
}

func (f Fixture) CreateDepartment(subject, name string) catalog.Department {
	f.T.Helper()
	dep := catalog.Department{Subject: subject, Name: name}
	f.check("CreateDepartment", f.Repos.Catalog.CreateDepartment(f.ctx(), f.DB, dep))
	return dep
}

func (f Fixture) CreateCourse(subject string, num int, name string) catalog.Course {
	f.T.Helper()
	crs := catalog.Course{Subject: subject, Number: num, Name: name}
	f.check("CreateCourse", f.Repos.Catalog.CreateCourse(f.ctx(), f.DB, crs))
	id, err := f.Repos.Schedule.GetCourseID(f.ctx(), f.DB, subject, num)
	f.check("CreateCourse", err)
	crs.ID = id
	return crs
}

func (f Fixture) CreatePerson(role, uid, fname, lname, subject string, dob ...core.Date) people.Person {
	f.T.Helper()
	p := people.Person{UID: uid, FirstName: fname, LastName: lname, Subject: subject, Role: role}
	if len(dob) > 0 {
		p.DOB = dob[0]
	}
	f.check("CreatePerson", f.Repos.People.CreatePerson(f.ctx(), f.DB, p))
	return p
}

func (f Fixture) CreateClass(key core.ClassKey, start, end schedule.Clock, location, professor string) core.ClassKey {
	f.T.Helper()
	courseID, err := f.Repos.Schedule.GetCourseID(f.ctx(), f.DB, key.Subject, key.Number)
	f.check("CreateClass", err)
	cls := schedule.Class{
		CourseID:  courseID,
		Season:    key.Season,
		Year:      key.Year,
		Start:     start,
		End:       end,
		Location:  location,
		Professor: professor,
	}
	f.check("CreateClass", f.Repos.Schedule.CreateClass(f.ctx(), f.DB, cls))
	return key
}

func (f Fixture) CreateCategory(key core.ClassKey, name string, weight int) coursework.Category {
	f.T.Helper()
	classID, err := f.Repos.Coursework.GetClassID(f.ctx(), f.DB, key)
	f.check("CreateCategory", err)
	f.check("CreateCategory", f.Repos.Coursework.CreateCategory(f.ctx(), f.DB, coursework.Category{ClassID: classID, Name: name, Weight: weight}))
	cat, err := f.Repos.Coursework.GetCategory(f.ctx(), f.DB, classID, name)
	f.check("CreateCategory", err)
	return cat
}

func (f Fixture) CreateAssignment(key core.ClassKey, category, name string, points int, due time.Time, contents ...string) coursework.AssignmentKey {
	f.T.Helper()
	classID, err := f.Repos.Coursework.GetClassID(f.ctx(), f.DB, key)
	f.check("CreateAssignment", err)
	cat, err := f.Repos.Coursework.GetCategory(f.ctx(), f.DB, classID, category)
	f.check("CreateAssignment", err)

	asg := coursework.Assignment{CategoryID: cat.ID, ClassID: classID, Name: name, Due: due.UTC(), Points: points}
	if len(contents) > 0 {
		asg.Contents = contents[0]
	}
	f.check("CreateAssignment", f.Repos.Coursework.CreateAssignment(f.ctx(), f.DB, asg))
	return coursework.AssignmentKey{ClassKey: key, Category: category, Name: name}
}

func (f Fixture) Enroll(key core.ClassKey, uid string, grade ...string) {
	f.T.Helper()
	classID, err := f.Repos.Enrollment.GetClassID(f.ctx(), f.DB, key)
	f.check("Enroll", err)
	enr := enrollment.Enrollment{UID: uid, ClassID: classID, Grade: core.Ungraded}
	if len(grade) > 0 {
		enr.Grade = grade[0]
	}
	f.check("Enroll", f.Repos.Enrollment.CreateEnrollment(f.ctx(), f.DB, enr))
}

func (f Fixture) Submit(key coursework.AssignmentKey, uid, contents string, submittedAt time.Time, score ...int) {
	f.T.Helper()
	asg, err := f.Repos.Coursework.GetAssignment(f.ctx(), f.DB, key)
	f.check("Submit", err)
	sub := coursework.Submission{UID: uid, AssignmentID: asg.ID, Time: submittedAt.UTC(), Contents: contents}
	if len(score) > 0 {
		sub.Score = score[0]
	}
	f.check("Submit", f.Repos.Coursework.CreateSubmission(f.ctx(), f.DB, sub))
}

// ClassKey is a shorthand for building class keys.
func ClassKey(subject string, num int, season string, year int) core.ClassKey {
	return core.ClassKey{Subject: subject, Number: num, Season: season, Year: year}
}
