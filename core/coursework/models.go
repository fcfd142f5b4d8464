package coursework

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/code-sharingan/Learning-management-system/core"
)

type Category struct {
	ID      int    `json:"-" db:"category_id"`
	ClassID int    `json:"-" db:"class_id"`
	Name    string `json:"name" db:"name"`
	Weight  int    `json:"weight" db:"weight"`
}

type Assignment struct {
	ID         int       `db:"assignment_id"`
	CategoryID int       `db:"category_id"`
	ClassID    int       `db:"class_id"`
	Name       string    `db:"name"`
	Contents   string    `db:"contents"`
	Due        time.Time `db:"due"`
	Points     int       `db:"points"`
}

type Submission struct {
	UID          string    `db:"uid"`
	AssignmentID int       `db:"assignment_id"`
	Time         time.Time `db:"time"`
	Contents     string    `db:"contents"`
	Score        int       `db:"score"`
}

// AssignmentKey identifies an assignment by its class, category and name.
type AssignmentKey struct {
	core.ClassKey
	Category string `json:"category" validate:"required,notblank,max=100"`
	Name     string `json:"asgname" validate:"required,notblank,max=100"`
}

func (k *AssignmentKey) Clean() {
	k.ClassKey.Clean()
	k.Category = core.CleanString(k.Category)
	k.Name = core.CleanString(k.Name)
}

// AssignmentListing is an assignment as listed for the professor.
type AssignmentListing struct {
	Name        string    `json:"aname" db:"aname"`
	Category    string    `json:"cname" db:"cname"`
	Due         time.Time `json:"due" db:"due"`
	Submissions int       `json:"submissions" db:"submissions"`
}

// SubmissionListing is a submission as listed for the professor grading it.
type SubmissionListing struct {
	FirstName string    `json:"fname" db:"first_name"`
	LastName  string    `json:"lname" db:"last_name"`
	UID       string    `json:"uid" db:"uid"`
	Time      time.Time `json:"time" db:"time"`
	Score     int       `json:"score" db:"score"`
}

// StudentAssignment is an assignment as listed for a student; Score is null until submitted.
type StudentAssignment struct {
	Name     string    `json:"aname" db:"aname"`
	Category string    `json:"cname" db:"cname"`
	Due      time.Time `json:"due" db:"due"`
	Score    null.Int  `json:"score" db:"score"`
}

// CategoryScore is a student's standing in one category of a class.
type CategoryScore struct {
	CategoryID int `db:"category_id"`
	Weight     int `db:"weight"`
	Points     int `db:"points"` // sum of the max points of the category's assignments
	Earned     int `db:"earned"` // sum of the student's scores, missing submissions count 0
}

// NewCategory contains information needed to create a new Category.
type NewCategory struct {
	core.ClassKey
	Name   string `json:"category" validate:"required,notblank,max=100"`
	Weight int    `json:"catweight" validate:"min=0,max=100"`
}

func (nc *NewCategory) Validate(validate *validator.Validate) error {
	nc.ClassKey.Clean()
	nc.Name = core.CleanString(nc.Name)
	return validate.Struct(nc)
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	core.ClassKey
	Category string    `json:"category" validate:"required,notblank,max=100"`
	Name     string    `json:"asgname" validate:"required,notblank,max=100"`
	Points   int       `json:"asgpoints" validate:"min=0"`
	Due      time.Time `json:"asgdue" validate:"required"`
	Contents string    `json:"asgcontents" validate:"max=8192"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.ClassKey.Clean()
	na.Category = core.CleanString(na.Category)
	na.Name = core.CleanString(na.Name)
	return validate.Struct(na)
}

// NewSubmission contains a student's submission text for an assignment.
type NewSubmission struct {
	AssignmentKey
	UID      string `json:"uid" validate:"required,uid"`
	Contents string `json:"contents" validate:"max=8192"`
}

func (ns *NewSubmission) Validate(validate *validator.Validate) error {
	ns.AssignmentKey.Clean()
	ns.UID = core.CleanString(ns.UID)
	return validate.Struct(ns)
}

// NewGrade contains the score a professor gives to a student's submission.
type NewGrade struct {
	AssignmentKey
	UID   string `json:"uid" validate:"required,uid"`
	Score int    `json:"score" validate:"min=0"`
}

func (ng *NewGrade) Validate(validate *validator.Validate) error {
	ng.AssignmentKey.Clean()
	ng.UID = core.CleanString(ng.UID)
	return validate.Struct(ng)
}
