package enrollment

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
)

var (
	// errors
	ErrClassNotFound   = core.NewRejection("class not found")
	ErrStudentNotFound = core.NewRejection("student not found")
	ErrAlreadyEnrolled = core.NewRejection("the student is already enrolled in this class")
)

type (
	// Repository implementations report a duplicate enrollment with ErrAlreadyEnrolled
	// and an unknown student with ErrStudentNotFound.
	Repository interface {
		GetClassID(ctx context.Context, exec core.DBExecutor, key core.ClassKey) (int, error)
		CreateEnrollment(ctx context.Context, exec core.DBExecutor, enr Enrollment) error
		QueryRoster(ctx context.Context, exec core.DBExecutor, key core.ClassKey) ([]RosterEntry, error)
		QueryStudentClasses(ctx context.Context, exec core.DBExecutor, uid string) ([]StudentClass, error)
		QueryGrades(ctx context.Context, exec core.DBExecutor, uid string) ([]string, error)
	}

	Service interface {
		Enroll(ctx context.Context, ne NewEnrollment) error
		Roster(ctx context.Context, key core.ClassKey) ([]RosterEntry, error)
		StudentClasses(ctx context.Context, uid string) ([]StudentClass, error)
		GPA(ctx context.Context, uid string) (GPA, error)
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

func (svc *service) Enroll(ctx context.Context, ne NewEnrollment) error {
	return core.RunInTx(ctx, svc.db, core.ReadCommitted, func(tx core.DBExecutor) error {
		classID, err := svc.repo.GetClassID(ctx, tx, ne.ClassKey)
		if err != nil {
			return err
		}
		return svc.repo.CreateEnrollment(ctx, tx, Enrollment{UID: ne.UID, ClassID: classID, Grade: core.Ungraded})
	})
}

func (svc *service) Roster(ctx context.Context, key core.ClassKey) ([]RosterEntry, error) {
	key.Clean()
	return svc.repo.QueryRoster(ctx, svc.db, key)
}

func (svc *service) StudentClasses(ctx context.Context, uid string) ([]StudentClass, error) {
	classes, err := svc.repo.QueryStudentClasses(ctx, svc.db, core.CleanString(uid))
	if err != nil {
		return nil, err
	}
	for i := range classes {
		if classes[i].Grade == "" {
			classes[i].Grade = core.Ungraded
		}
	}
	return classes, nil
}

func (svc *service) GPA(ctx context.Context, uid string) (GPA, error) {
	grades, err := svc.repo.QueryGrades(ctx, svc.db, core.CleanString(uid))
	if err != nil {
		return GPA{}, errors.Wrap(err, "querying grades")
	}
	return GPA{GPA: ComputeGPA(grades)}, nil
}
