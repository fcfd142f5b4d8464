package schedule

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
)

var (
	// errors
	ErrCourseNotFound    = core.NewRejection("course not found")
	ErrProfessorNotFound = core.NewRejection("professor not found")
	ErrCourseOffered     = core.NewRejection("the course is already offered this semester")
	ErrLocationBusy      = core.NewRejection("the location is in use at an overlapping time")
)

type (
	// Repository implementations report a duplicate (course, season, year) with ErrCourseOffered,
	// an unknown instructor with ErrProfessorNotFound and an aborted serializable transaction
	// with core.ErrTxConflict.
	Repository interface {
		GetCourseID(ctx context.Context, exec core.DBExecutor, subject string, number int) (int, error)
		QuerySemesterClasses(ctx context.Context, exec core.DBExecutor, season string, year int) ([]Class, error)
		CreateClass(ctx context.Context, exec core.DBExecutor, cls Class) error
		QueryOfferings(ctx context.Context, exec core.DBExecutor, subject string, number int) ([]Offering, error)
		QueryTaughtClasses(ctx context.Context, exec core.DBExecutor, uid string) ([]TaughtClass, error)
	}

	Service interface {
		CreateClass(ctx context.Context, nc NewClass) error
		QueryOfferings(ctx context.Context, subject string, number int) ([]Offering, error)
		QueryTaughtClasses(ctx context.Context, uid string) ([]TaughtClass, error)
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

// CreateClass schedules a class unless its course is already offered in the semester
// or its location is taken at an overlapping time. The check and the insert share a
// serializable transaction.
func (svc *service) CreateClass(ctx context.Context, nc NewClass) error {
	return core.RunInTx(ctx, svc.db, core.Serializable, func(tx core.DBExecutor) error {
		courseID, err := svc.repo.GetCourseID(ctx, tx, nc.Subject, nc.Number)
		if err != nil {
			return err
		}

		cls := Class{
			CourseID:  courseID,
			Season:    nc.Season,
			Year:      nc.Year,
			Start:     nc.Start,
			End:       nc.End,
			Location:  nc.Location,
			Professor: nc.Instructor,
		}

		existing, err := svc.repo.QuerySemesterClasses(ctx, tx, cls.Season, cls.Year)
		if err != nil {
			return errors.Wrap(err, "querying semester classes")
		}
		if err = CheckConflicts(existing, cls); err != nil {
			return err
		}
		return svc.repo.CreateClass(ctx, tx, cls)
	})
}

// CheckConflicts rejects cls when the same course already has a class among existing,
// or when an existing class meets in the same location at an overlapping time.
// existing must hold the classes of cls's semester.
func CheckConflicts(existing []Class, cls Class) error {
	for _, other := range existing {
		if other.CourseID == cls.CourseID {
			return ErrCourseOffered
		}
	}
	for _, other := range existing {
		if other.Location == cls.Location && other.Window().Overlaps(cls.Window()) {
			return ErrLocationBusy
		}
	}
	return nil
}

func (svc *service) QueryOfferings(ctx context.Context, subject string, number int) ([]Offering, error) {
	return svc.repo.QueryOfferings(ctx, svc.db, core.CleanSubject(subject), number)
}

func (svc *service) QueryTaughtClasses(ctx context.Context, uid string) ([]TaughtClass, error) {
	return svc.repo.QueryTaughtClasses(ctx, svc.db, core.CleanString(uid))
}
