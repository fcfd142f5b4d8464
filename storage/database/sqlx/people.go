package sqlxrepos

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/people"
)

var personTables = map[string]string{
	people.RoleAdministrator: "administrators",
	people.RoleProfessor:     "professors",
	people.RoleStudent:       "students",
}

type peopleRepository struct{}

var _ people.Repository = (*peopleRepository)(nil) // interface compliance check

func NewPeopleRepository() *peopleRepository {
	return &peopleRepository{}
}

func (repo peopleRepository) LastUID(ctx context.Context, ex core.DBExecutor) (string, error) {
	var uid string
	q := `
		SELECT COALESCE(MAX(uid), '') FROM (
			SELECT uid FROM administrators
			UNION ALL SELECT uid FROM professors
			UNION ALL SELECT uid FROM students
		) AS people`
	if err := get(ctx, ex, &uid, q); err != nil {
		return "", constraintErrs{}.trap(err, "selecting last uid")
	}
	return uid, nil
}

func (repo peopleRepository) CreatePerson(ctx context.Context, ex core.DBExecutor, p people.Person) error {
	table, ok := personTables[p.Role]
	if !ok {
		return errors.Errorf("unknown role %q", p.Role)
	}

	var err error
	if p.Role == people.RoleAdministrator {
		q := `INSERT INTO administrators (uid, first_name, last_name, dob) VALUES (?, ?, ?, ?)`
		_, err = exec(ctx, ex, q, p.UID, p.FirstName, p.LastName, p.DOB)
	} else {
		q := fmt.Sprintf(`INSERT INTO %s (uid, first_name, last_name, dob, subject) VALUES (?, ?, ?, ?, ?)`, table)
		_, err = exec(ctx, ex, q, p.UID, p.FirstName, p.LastName, p.DOB, p.Subject)
	}
	return constraintErrs{
		unique:     people.ErrUIDTaken,
		foreignKey: people.ErrDepartmentNotFound,
	}.trap(err, "inserting person")
}

func (repo peopleRepository) GetPerson(ctx context.Context, ex core.DBExecutor, uid string) (people.Person, error) {
	var p people.Person
	q := `
		SELECT uid, first_name, last_name, dob, '' AS subject, 'Administrator' AS role FROM administrators WHERE uid = ?
		UNION ALL
		SELECT uid, first_name, last_name, dob, subject, 'Professor' AS role FROM professors WHERE uid = ?
		UNION ALL
		SELECT uid, first_name, last_name, dob, subject, 'Student' AS role FROM students WHERE uid = ?`
	err := get(ctx, ex, &p, q, uid, uid, uid)
	return p, trapNoRowsErr(err, people.ErrNotFound, "getting person")
}
