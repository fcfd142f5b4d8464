package enrollment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/enrollment"
	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/core/schedule"
	"github.com/code-sharingan/Learning-management-system/storage/database/inmem"
	"github.com/code-sharingan/Learning-management-system/tests"
)

var (
	dbFall   = testutil.ClassKey("CS", 5530, core.SeasonFall, 2024)
	osFall   = testutil.ClassKey("CS", 4400, core.SeasonFall, 2024)
	swSpring = testutil.ClassKey("CS", 3500, core.SeasonSpring, 2024)
)

func setup(t *testing.T) (enrollment.Service, testutil.Fixture) {
	db := inmemdb.New()
	repos := testutil.NewInmemRepos(db)
	fx := testutil.Fixture{T: t, DB: db, Repos: repos}

	fx.CreateDepartment("CS", "Computer Science")
	fx.CreateCourse("CS", 5530, "Database Systems")
	fx.CreateCourse("CS", 4400, "Computer Systems")
	fx.CreateCourse("CS", 3500, "Software Practice")
	fx.CreatePerson(people.RoleProfessor, "u0000001", "Danny", "Kopta", "CS")
	fx.CreatePerson(people.RoleStudent, "u0000002", "Ada", "Lovelace", "CS", core.NewDate(1815, time.December, 10))
	fx.CreatePerson(people.RoleStudent, "u0000003", "Alan", "Turing", "CS")

	clock := schedule.NewClock
	fx.CreateClass(dbFall, clock(10, 0, 0), clock(11, 0, 0), "WEB L104", "u0000001")
	fx.CreateClass(osFall, clock(12, 0, 0), clock(13, 0, 0), "WEB L104", "u0000001")
	fx.CreateClass(swSpring, clock(9, 0, 0), clock(10, 0, 0), "MEB 3147", "u0000001")

	return enrollment.NewService(db, repos.Enrollment), fx
}

func TestService_Enroll(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		ne      enrollment.NewEnrollment
		wantErr error
	}{
		{name: "first", ne: enrollment.NewEnrollment{ClassKey: dbFall, UID: "u0000002"}},
		{name: "twice", ne: enrollment.NewEnrollment{ClassKey: dbFall, UID: "u0000002"}, wantErr: enrollment.ErrAlreadyEnrolled},
		{name: "other student", ne: enrollment.NewEnrollment{ClassKey: dbFall, UID: "u0000003"}},
		{name: "missing class", ne: enrollment.NewEnrollment{ClassKey: testutil.ClassKey("CS", 5530, core.SeasonSummer, 2024), UID: "u0000002"}, wantErr: enrollment.ErrClassNotFound},
		{name: "not a student", ne: enrollment.NewEnrollment{ClassKey: dbFall, UID: "u0000001"}, wantErr: enrollment.ErrStudentNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Enroll(ctx, tt.ne); err != tt.wantErr {
				t.Errorf("Enroll() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	roster, err := svc.Roster(ctx, dbFall)
	require.NoError(t, err)
	assert.Equal(t, []enrollment.RosterEntry{
		{FirstName: "Ada", LastName: "Lovelace", UID: "u0000002", DOB: core.NewDate(1815, time.December, 10), Grade: core.Ungraded},
		{FirstName: "Alan", LastName: "Turing", UID: "u0000003", Grade: core.Ungraded},
	}, roster)
}

func TestService_StudentClasses(t *testing.T) {
	svc, fx := setup(t)
	fx.Enroll(swSpring, "u0000002", "A")
	fx.Enroll(dbFall, "u0000002")

	classes, err := svc.StudentClasses(context.Background(), "u0000002")
	require.NoError(t, err)
	assert.Equal(t, []enrollment.StudentClass{
		{Subject: "CS", Number: 5530, Name: "Database Systems", Season: core.SeasonFall, Year: 2024, Grade: core.Ungraded},
		{Subject: "CS", Number: 3500, Name: "Software Practice", Season: core.SeasonSpring, Year: 2024, Grade: "A"},
	}, classes)
}

func TestService_GPA(t *testing.T) {
	svc, fx := setup(t)
	ctx := context.Background()
	fx.Enroll(dbFall, "u0000002", "A")
	fx.Enroll(osFall, "u0000002", "B")
	fx.Enroll(swSpring, "u0000002")

	gpa, err := svc.GPA(ctx, "u0000002")
	require.NoError(t, err)
	assert.InDelta(t, 3.5, gpa.GPA, 1e-9)

	gpa, err = svc.GPA(ctx, "u0000003")
	require.NoError(t, err)
	assert.Equal(t, 0.0, gpa.GPA)
}
