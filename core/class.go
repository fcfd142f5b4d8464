package core

import "fmt"

// ClassKey identifies a class offering by its course and semester.
type ClassKey struct {
	Subject string `json:"subject" validate:"required,subject"`
	Number  int    `json:"number" validate:"min=0,max=32767"`
	Season  string `json:"season" validate:"required,season"`
	Year    int    `json:"year" validate:"min=1850,max=9999"`
}

func (k *ClassKey) Clean() {
	k.Subject = CleanSubject(k.Subject)
	k.Season = CleanSeason(k.Season)
}

func (k ClassKey) String() string {
	return fmt.Sprintf("%s %d %s %d", k.Subject, k.Number, k.Season, k.Year)
}
