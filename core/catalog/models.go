package catalog

import (
	"github.com/go-playground/validator/v10"

	"github.com/code-sharingan/Learning-management-system/core"
)

type Department struct {
	Subject string `json:"subject" db:"subject"`
	Name    string `json:"name" db:"name"`
}

type Course struct {
	ID      int    `json:"-" db:"course_id"`
	Subject string `json:"subject" db:"subject"`
	Number  int    `json:"number" db:"num"`
	Name    string `json:"name" db:"name"`
}

// CourseListing is a course as listed under its department.
type CourseListing struct {
	Number int    `json:"number" db:"num"`
	Name   string `json:"name" db:"name"`
}

// ProfessorListing is a professor as listed under their department.
type ProfessorListing struct {
	LastName  string `json:"lname" db:"last_name"`
	FirstName string `json:"fname" db:"first_name"`
	UID       string `json:"uid" db:"uid"`
}

// CatalogDepartment is one entry of the course catalog: a department with all its courses.
type CatalogDepartment struct {
	Subject string          `json:"subject"`
	Name    string          `json:"dname"`
	Courses []CatalogCourse `json:"courses"`
}

type CatalogCourse struct {
	Number int    `json:"number"`
	Name   string `json:"cname"`
}

// NewDepartment contains information needed to create a new Department.
type NewDepartment struct {
	Subject string `json:"subject" validate:"required,subject"`
	Name    string `json:"name" validate:"required,notblank,max=100"`
}

func (nd *NewDepartment) Validate(validate *validator.Validate) error {
	nd.Subject = core.CleanSubject(nd.Subject)
	nd.Name = core.CleanString(nd.Name)
	return validate.Struct(nd)
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Subject string `json:"subject" validate:"required,subject"`
	Number  int    `json:"number" validate:"min=0,max=32767"`
	Name    string `json:"name" validate:"required,notblank,max=100"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Subject = core.CleanSubject(nc.Subject)
	nc.Name = core.CleanString(nc.Name)
	return validate.Struct(nc)
}
