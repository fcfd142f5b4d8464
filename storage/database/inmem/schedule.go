package inmemdb

import (
	"context"
	"sort"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/core/schedule"
)

type scheduleRepository struct {
	db *DB
}

var _ schedule.Repository = (*scheduleRepository)(nil) // interface compliance check

func NewScheduleRepository(db *DB) *scheduleRepository {
	return &scheduleRepository{db: db}
}

func (repo *scheduleRepository) GetCourseID(_ context.Context, _ core.DBExecutor, subject string, number int) (int, error) {
	id := 0
	repo.db.read(func(t *tables) {
		for _, crs := range t.courses {
			if crs.Subject == subject && crs.Number == number {
				id = crs.ID
				return
			}
		}
	})
	if id == 0 {
		return 0, schedule.ErrCourseNotFound
	}
	return id, nil
}

func (repo *scheduleRepository) QuerySemesterClasses(_ context.Context, _ core.DBExecutor, season string, year int) ([]schedule.Class, error) {
	classes := make([]schedule.Class, 0)
	repo.db.read(func(t *tables) {
		for _, cls := range t.classes {
			if cls.Season == season && cls.Year == year {
				classes = append(classes, cls)
			}
		}
	})
	return classes, nil
}

func (repo *scheduleRepository) CreateClass(_ context.Context, _ core.DBExecutor, cls schedule.Class) error {
	return repo.db.write(func(t *tables) error {
		for _, c := range t.classes {
			if c.Season == cls.Season && c.Year == cls.Year && c.CourseID == cls.CourseID {
				return schedule.ErrCourseOffered
			}
		}
		if _, ok := t.courses[cls.CourseID]; !ok {
			return schedule.ErrCourseNotFound
		}
		if !t.hasRole(cls.Professor, people.RoleProfessor) {
			return schedule.ErrProfessorNotFound
		}
		cls.ID = t.nextID()
		t.classes[cls.ID] = cls
		return nil
	})
}

func (repo *scheduleRepository) QueryOfferings(_ context.Context, _ core.DBExecutor, subject string, number int) ([]schedule.Offering, error) {
	offerings := make([]schedule.Offering, 0)
	repo.db.read(func(t *tables) {
		for _, cls := range t.classes {
			crs := t.courses[cls.CourseID]
			if crs.Subject != subject || crs.Number != number {
				continue
			}
			prof := t.people[cls.Professor]
			offerings = append(offerings, schedule.Offering{
				Season:    cls.Season,
				Year:      cls.Year,
				Location:  cls.Location,
				Start:     cls.Start,
				End:       cls.End,
				FirstName: prof.FirstName,
				LastName:  prof.LastName,
			})
		}
	})
	sort.Slice(offerings, func(i, j int) bool {
		a, b := offerings[i], offerings[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Season < b.Season
	})
	return offerings, nil
}

func (repo *scheduleRepository) QueryTaughtClasses(_ context.Context, _ core.DBExecutor, uid string) ([]schedule.TaughtClass, error) {
	classes := make([]schedule.TaughtClass, 0)
	repo.db.read(func(t *tables) {
		for _, cls := range t.classes {
			if cls.Professor != uid {
				continue
			}
			crs := t.courses[cls.CourseID]
			classes = append(classes, schedule.TaughtClass{
				Subject: crs.Subject,
				Number:  crs.Number,
				Name:    crs.Name,
				Season:  cls.Season,
				Year:    cls.Year,
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
