package people

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
)

// Roles
const (
	RoleAdministrator = "Administrator"
	RoleProfessor     = "Professor"
	RoleStudent       = "Student"
)

var Roles = []string{RoleAdministrator, RoleProfessor, RoleStudent}

type Person struct {
	UID       string    `json:"uid" db:"uid"`
	FirstName string    `json:"fname" db:"first_name"`
	LastName  string    `json:"lname" db:"last_name"`
	DOB       core.Date `json:"dob" db:"dob"`
	Subject   string    `json:"department,omitempty" db:"subject"` // empty for administrators
	Role      string    `json:"role" db:"role"`
}

func (p Person) IsAdministrator() bool { return p.Role == RoleAdministrator }
func (p Person) IsProfessor() bool     { return p.Role == RoleProfessor }
func (p Person) IsStudent() bool       { return p.Role == RoleStudent }

// NewPerson contains information needed to create a new Person.
type NewPerson struct {
	Role      string    `json:"role" validate:"required,oneof=Administrator Professor Student"`
	FirstName string    `json:"fname" validate:"required,notblank,max=100"`
	LastName  string    `json:"lname" validate:"required,notblank,max=100"`
	DOB       core.Date `json:"dob"`
	Subject   string    `json:"department" validate:"omitempty,subject"`
}

func (np *NewPerson) Validate(validate *validator.Validate) error {
	np.FirstName = core.CleanString(np.FirstName)
	np.LastName = core.CleanString(np.LastName)
	np.Subject = core.CleanSubject(np.Subject)

	if err := validate.Struct(np); err != nil {
		return err
	}
	if np.Role != RoleAdministrator && np.Subject == "" {
		return core.NewValidationError(
			errors.New("missing department"),
			core.FieldError{Field: "department", Error: "this field is required"},
		)
	}
	if np.Role == RoleAdministrator {
		np.Subject = ""
	}
	return nil
}

// NextUID returns the uid following the greatest one in use ("" when none is).
func NextUID(last string) (string, error) {
	if last == "" {
		return FormatUID(1), nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(last, "u"))
	if err != nil {
		return "", errors.Wrapf(err, "parsing uid %q", last)
	}
	if n >= 9999999 {
		return "", errors.New("uid space exhausted")
	}
	return FormatUID(n + 1), nil
}

func FormatUID(n int) string {
	return fmt.Sprintf("u%07d", n)
}
