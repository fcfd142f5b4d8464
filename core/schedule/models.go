package schedule

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
)

type Class struct {
	ID        int    `db:"class_id"`
	CourseID  int    `db:"course_id"`
	Season    string `db:"season"`
	Year      int    `db:"year"`
	Start     Clock  `db:"start_time"`
	End       Clock  `db:"end_time"`
	Location  string `db:"location"`
	Professor string `db:"professor"`
}

func (c Class) Window() Window {
	return Window{Start: c.Start, End: c.End}
}

// Window is the daily time range [Start, End) a class meets in.
type Window struct {
	Start Clock
	End   Clock
}

// Overlaps reports whether the two windows share any instant.
// Windows that only touch at an endpoint do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start < other.End && other.Start < w.End
}

// Offering is a class of a course as seen in the course's offering history.
type Offering struct {
	Season    string `json:"season" db:"season"`
	Year      int    `json:"year" db:"year"`
	Location  string `json:"location" db:"location"`
	Start     Clock  `json:"start" db:"start_time"`
	End       Clock  `json:"end" db:"end_time"`
	FirstName string `json:"fname" db:"first_name"`
	LastName  string `json:"lname" db:"last_name"`
}

// TaughtClass is a class as listed for the professor teaching it.
type TaughtClass struct {
	Subject string `json:"subject" db:"subject"`
	Number  int    `json:"number" db:"num"`
	Name    string `json:"name" db:"name"`
	Season  string `json:"season" db:"season"`
	Year    int    `json:"year" db:"year"`
}

// NewClass contains information needed to schedule a new Class.
type NewClass struct {
	Subject    string `json:"subject" validate:"required,subject"`
	Number     int    `json:"number" validate:"min=0,max=32767"`
	Season     string `json:"season" validate:"required,season"`
	Year       int    `json:"year" validate:"min=1850,max=9999"`
	Start      Clock  `json:"start"`
	End        Clock  `json:"end"`
	Location   string `json:"location" validate:"required,notblank,max=100"`
	Instructor string `json:"instructor" validate:"required,uid"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.Subject = core.CleanSubject(nc.Subject)
	nc.Season = core.CleanSeason(nc.Season)
	nc.Location = core.CleanString(nc.Location)
	nc.Instructor = core.CleanString(nc.Instructor)

	if err := validate.Struct(nc); err != nil {
		return err
	}
	if !nc.Start.Valid() {
		return core.NewValidationError(errors.New("invalid start"), core.FieldError{Field: "start", Error: "must be a time of day"})
	}
	if !nc.End.Valid() {
		return core.NewValidationError(errors.New("invalid end"), core.FieldError{Field: "end", Error: "must be a time of day"})
	}
	if nc.End <= nc.Start {
		return core.NewValidationError(errors.New("invalid time window"), core.FieldError{Field: "end", Error: "must be after start"})
	}
	return nil
}
