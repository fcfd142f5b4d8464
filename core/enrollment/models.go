package enrollment

import (
	"github.com/go-playground/validator/v10"

	"github.com/code-sharingan/Learning-management-system/core"
)

type Enrollment struct {
	UID     string `db:"uid"`
	ClassID int    `db:"class_id"`
	Grade   string `db:"grade"`
}

// RosterEntry is an enrolled student as listed for the class professor.
type RosterEntry struct {
	FirstName string    `json:"fname" db:"first_name"`
	LastName  string    `json:"lname" db:"last_name"`
	UID       string    `json:"uid" db:"uid"`
	DOB       core.Date `json:"dob" db:"dob"`
	Grade     string    `json:"grade" db:"grade"`
}

// StudentClass is a class as listed for an enrolled student.
type StudentClass struct {
	Subject string `json:"subject" db:"subject"`
	Number  int    `json:"number" db:"num"`
	Name    string `json:"name" db:"name"`
	Season  string `json:"season" db:"season"`
	Year    int    `json:"year" db:"year"`
	Grade   string `json:"grade" db:"grade"`
}

type GPA struct {
	GPA float64 `json:"gpa"`
}

// NewEnrollment contains information needed to enroll a student in a class.
type NewEnrollment struct {
	core.ClassKey
	UID string `json:"uid" validate:"required,uid"`
}

func (ne *NewEnrollment) Validate(validate *validator.Validate) error {
	ne.ClassKey.Clean()
	ne.UID = core.CleanString(ne.UID)
	return validate.Struct(ne)
}
