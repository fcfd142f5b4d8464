package inmemdb

import (
	"context"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/people"
)

type peopleRepository struct {
	db *DB
}

var _ people.Repository = (*peopleRepository)(nil) // interface compliance check

func NewPeopleRepository(db *DB) *peopleRepository {
	return &peopleRepository{db: db}
}

func (repo *peopleRepository) LastUID(_ context.Context, _ core.DBExecutor) (last string, _ error) {
	repo.db.read(func(t *tables) {
		for uid := range t.people {
			if uid > last {
				last = uid
			}
		}
	})
	return last, nil
}

func (repo *peopleRepository) CreatePerson(_ context.Context, _ core.DBExecutor, p people.Person) error {
	return repo.db.write(func(t *tables) error {
		if _, ok := t.people[p.UID]; ok {
			return people.ErrUIDTaken
		}
		if p.Role != people.RoleAdministrator {
			if _, ok := t.departments[p.Subject]; !ok {
				return people.ErrDepartmentNotFound
			}
		}
		t.people[p.UID] = p
		return nil
	})
}

func (repo *peopleRepository) GetPerson(_ context.Context, _ core.DBExecutor, uid string) (p people.Person, err error) {
	repo.db.read(func(t *tables) {
		var ok bool
		if p, ok = t.people[uid]; !ok {
			err = people.ErrNotFound
		}
	})
	return p, err
}
