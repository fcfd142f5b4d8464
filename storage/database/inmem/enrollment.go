package inmemdb

import (
	"context"
	"sort"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/enrollment"
	"github.com/code-sharingan/Learning-management-system/core/people"
)

type enrollmentRepository struct {
	db *DB
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db *DB) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (repo *enrollmentRepository) GetClassID(_ context.Context, _ core.DBExecutor, key core.ClassKey) (id int, err error) {
	repo.db.read(func(t *tables) {
		var ok bool
		if id, ok = t.classID(key); !ok {
			err = enrollment.ErrClassNotFound
		}
	})
	return id, err
}

func (repo *enrollmentRepository) CreateEnrollment(_ context.Context, _ core.DBExecutor, enr enrollment.Enrollment) error {
	return repo.db.write(func(t *tables) error {
		key := enrollKey{uid: enr.UID, classID: enr.ClassID}
		if _, ok := t.enrolled[key]; ok {
			return enrollment.ErrAlreadyEnrolled
		}
		if !t.hasRole(enr.UID, people.RoleStudent) {
			return enrollment.ErrStudentNotFound
		}
		if _, ok := t.classes[enr.ClassID]; !ok {
			return enrollment.ErrClassNotFound
		}
		t.enrolled[key] = enr
		return nil
	})
}

func (repo *enrollmentRepository) QueryRoster(_ context.Context, _ core.DBExecutor, key core.ClassKey) ([]enrollment.RosterEntry, error) {
	roster := make([]enrollment.RosterEntry, 0)
	repo.db.read(func(t *tables) {
		classID, ok := t.classID(key)
		if !ok {
			return
		}
		for k, enr := range t.enrolled {
			if k.classID != classID {
				continue
			}
			st := t.people[k.uid]
			roster = append(roster, enrollment.RosterEntry{
				FirstName: st.FirstName,
				LastName:  st.LastName,
				UID:       st.UID,
				DOB:       st.DOB,
				Grade:     enr.Grade,
			})
		}
	})
	sort.Slice(roster, func(i, j int) bool {
		a, b := roster[i], roster[j]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return a.UID < b.UID
	})
	return roster, nil
}

func (repo *enrollmentRepository) QueryStudentClasses(_ context.Context, _ core.DBExecutor, uid string) ([]enrollment.StudentClass, error) {
	classes := make([]enrollment.StudentClass, 0)
	repo.db.read(func(t *tables) {
		for k, enr := range t.enrolled {
			if k.uid != uid {
				continue
			}
			cls := t.classes[k.classID]
			crs := t.courses[cls.CourseID]
			classes = append(classes, enrollment.StudentClass{
				Subject: crs.Subject,
				Number:  crs.Number,
				Name:    crs.Name,
				Season:  cls.Season,
				Year:    cls.Year,
				Grade:   enr.Grade,
			})
		}
	})
	sort.Slice(classes, func(i, j int) bool {
		a, b := classes[i], classes[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Season != b.Season {
			return a.Season < b.Season
		}
		if a.Subject != b.Subject {
			return a.Subject < b.Subject
		}
		return a.Number < b.Number
	})
	return classes, nil
}

func (repo *enrollmentRepository) QueryGrades(_ context.Context, _ core.DBExecutor, uid string) ([]string, error) {
	grades := make([]string, 0)
	repo.db.read(func(t *tables) {
		for k, enr := range t.enrolled {
			if k.uid == uid {
				grades = append(grades, enr.Grade)
			}
		}
	})
	return grades, nil
}
