package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/catalog"
	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/storage/database/inmem"
	"github.com/code-sharingan/Learning-management-system/tests"
)

func setup(t *testing.T) (catalog.Service, testutil.Fixture) {
	db := inmemdb.New()
	repos := testutil.NewInmemRepos(db)
	return catalog.NewService(db, repos.Catalog), testutil.Fixture{T: t, DB: db, Repos: repos}
}

func TestService_CreateDepartment(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		nd      catalog.NewDepartment
		wantErr error
	}{
		{name: "new", nd: catalog.NewDepartment{Subject: "CS", Name: "Computer Science"}},
		{name: "other", nd: catalog.NewDepartment{Subject: "MATH", Name: "Mathematics"}},
		{name: "duplicate subject", nd: catalog.NewDepartment{Subject: "CS", Name: "Another name"}, wantErr: catalog.ErrDepartmentExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.CreateDepartment(ctx, tt.nd); err != tt.wantErr {
				t.Errorf("CreateDepartment() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	// the rejected department left the table unchanged
	cat, err := svc.Catalog(ctx)
	require.NoError(t, err)
	require.Len(t, cat, 2)
	assert.Equal(t, "Computer Science", cat[0].Name)
}

func TestService_CreateCourse(t *testing.T) {
	svc, fx := setup(t)
	ctx := context.Background()
	fx.CreateDepartment("CS", "Computer Science")

	tests := []struct {
		name    string
		nc      catalog.NewCourse
		wantErr error
	}{
		{name: "new", nc: catalog.NewCourse{Subject: "CS", Number: 5530, Name: "Database Systems"}},
		{name: "duplicate", nc: catalog.NewCourse{Subject: "CS", Number: 5530, Name: "Databases"}, wantErr: catalog.ErrCourseExists},
		{name: "same number other department", nc: catalog.NewCourse{Subject: "MATH", Number: 5530, Name: "Topology"}, wantErr: catalog.ErrDepartmentNotFound},
		{name: "other number", nc: catalog.NewCourse{Subject: "CS", Number: 3500, Name: "Software Practice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateCourse(ctx, tt.nc)
			if err != tt.wantErr {
				t.Errorf("CreateCourse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !core.IsRejection(err) {
				t.Errorf("CreateCourse() error %v is not a rejection", err)
			}
		})
	}

	courses, err := svc.QueryCourses(ctx, "cs")
	require.NoError(t, err)
	assert.Equal(t, []catalog.CourseListing{
		{Number: 3500, Name: "Software Practice"},
		{Number: 5530, Name: "Database Systems"},
	}, courses)

	courses, err = svc.QueryCourses(ctx, "MATH")
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestService_QueryProfessors(t *testing.T) {
	svc, fx := setup(t)
	ctx := context.Background()
	fx.CreateDepartment("CS", "Computer Science")
	fx.CreateDepartment("MATH", "Mathematics")
	fx.CreatePerson(people.RoleProfessor, "u0000003", "Grace", "Hopper", "CS")
	fx.CreatePerson(people.RoleProfessor, "u0000001", "Alan", "Turing", "CS")
	fx.CreatePerson(people.RoleProfessor, "u0000002", "Emmy", "Noether", "MATH")
	fx.CreatePerson(people.RoleStudent, "u0000004", "Ada", "Lovelace", "CS")

	profs, err := svc.QueryProfessors(ctx, "CS")
	require.NoError(t, err)
	assert.Equal(t, []catalog.ProfessorListing{
		{LastName: "Hopper", FirstName: "Grace", UID: "u0000003"},
		{LastName: "Turing", FirstName: "Alan", UID: "u0000001"},
	}, profs)
}

func TestService_Catalog(t *testing.T) {
	svc, fx := setup(t)
	fx.CreateDepartment("MATH", "Mathematics")
	fx.CreateDepartment("CS", "Computer Science")
	fx.CreateCourse("CS", 5530, "Database Systems")
	fx.CreateCourse("CS", 3500, "Software Practice")

	got, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.CatalogDepartment{
		{Subject: "CS", Name: "Computer Science", Courses: []catalog.CatalogCourse{
			{Number: 3500, Name: "Software Practice"},
			{Number: 5530, Name: "Database Systems"},
		}},
		{Subject: "MATH", Name: "Mathematics", Courses: []catalog.CatalogCourse{}},
	}, got)
}
