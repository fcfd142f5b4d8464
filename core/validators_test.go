package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidators(t *testing.T) {
	validate, translator := NewValidator()

	type payload struct {
		Subject string `json:"subject" validate:"required,subject"`
		UID     string `json:"uid" validate:"required,uid"`
		Season  string `json:"season" validate:"required,season"`
		Name    string `json:"name" validate:"required,notblank"`
	}
	valid := payload{Subject: "CS", UID: "u0000042", Season: SeasonFall, Name: "Databases"}

	tests := []struct {
		name      string
		mutate    func(p *payload)
		wantField string
		wantMsg   string
	}{
		{name: "valid", mutate: func(p *payload) {}},
		{name: "lower-case subject", mutate: func(p *payload) { p.Subject = "cs" }, wantField: "subject", wantMsg: "must be 1 to 4 upper-case letters"},
		{name: "long subject", mutate: func(p *payload) { p.Subject = "MATHS" }, wantField: "subject", wantMsg: "must be 1 to 4 upper-case letters"},
		{name: "short uid", mutate: func(p *payload) { p.UID = "u123" }, wantField: "uid", wantMsg: "must be a 'u' followed by 7 digits"},
		{name: "unknown season", mutate: func(p *payload) { p.Season = "Autumn" }, wantField: "season", wantMsg: "must be one of Spring, Summer, Fall or Winter"},
		{name: "blank name", mutate: func(p *payload) { p.Name = "   " }, wantField: "name", wantMsg: "this field cannot be blank"},
		{name: "missing name", mutate: func(p *payload) { p.Name = "" }, wantField: "name", wantMsg: "this field is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := validate.Struct(p)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("validate.Struct() unexpected error = %v", err)
				}
				return
			}

			verrs, ok := err.(validator.ValidationErrors)
			if !ok || len(verrs) != 1 {
				t.Fatalf("validate.Struct() error = %v, want one field error", err)
			}
			if verrs[0].Field() != tt.wantField {
				t.Errorf("field = %q, want %q", verrs[0].Field(), tt.wantField)
			}
			if msg := verrs[0].Translate(translator); msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
