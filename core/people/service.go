package people

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
)

var (
	// errors
	ErrNotFound           = errors.New("person not found")
	ErrUIDTaken           = core.NewRejection("the uid is already taken")
	ErrDepartmentNotFound = core.NewRejection("department not found")
)

type (
	// Repository implementations report an unknown uid with ErrNotFound, a uid in use
	// with ErrUIDTaken and an unknown department with ErrDepartmentNotFound.
	Repository interface {
		// LastUID returns the greatest uid across all roles, "" when there is none.
		LastUID(ctx context.Context, exec core.DBExecutor) (string, error)
		CreatePerson(ctx context.Context, exec core.DBExecutor, p Person) error
		GetPerson(ctx context.Context, exec core.DBExecutor, uid string) (Person, error)
	}

	Service interface {
		Create(ctx context.Context, np NewPerson) (Person, error)
		Get(ctx context.Context, uid string) (Person, error)
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

// Create stores a new person under the next free uid.
func (svc *service) Create(ctx context.Context, np NewPerson) (Person, error) {
	var p Person
	err := core.RunInTx(ctx, svc.db, core.Serializable, func(tx core.DBExecutor) error {
		last, err := svc.repo.LastUID(ctx, tx)
		if err != nil {
			return errors.Wrap(err, "querying last uid")
		}
		uid, err := NextUID(last)
		if err != nil {
			return err
		}

		p = Person{
			UID:       uid,
			FirstName: np.FirstName,
			LastName:  np.LastName,
			DOB:       np.DOB,
			Subject:   np.Subject,
			Role:      np.Role,
		}
		return svc.repo.CreatePerson(ctx, tx, p)
	})
	if err != nil {
		return Person{}, err
	}
	return p, nil
}

func (svc *service) Get(ctx context.Context, uid string) (Person, error) {
	return svc.repo.GetPerson(ctx, svc.db, core.CleanString(uid))
}
