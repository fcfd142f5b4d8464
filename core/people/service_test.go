package people_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/storage/database/inmem"
	"github.com/code-sharingan/Learning-management-system/tests"
)

func TestService_Create(t *testing.T) {
	db := inmemdb.New()
	repos := testutil.NewInmemRepos(db)
	fx := testutil.Fixture{T: t, DB: db, Repos: repos}
	fx.CreateDepartment("CS", "Computer Science")
	svc := people.NewService(db, repos.People)
	ctx := context.Background()

	admin, err := svc.Create(ctx, people.NewPerson{Role: people.RoleAdministrator, FirstName: "Root", LastName: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, "u0000001", admin.UID)

	prof, err := svc.Create(ctx, people.NewPerson{Role: people.RoleProfessor, FirstName: "Danny", LastName: "Kopta", Subject: "CS"})
	require.NoError(t, err)
	assert.Equal(t, "u0000002", prof.UID)

	_, err = svc.Create(ctx, people.NewPerson{Role: people.RoleStudent, FirstName: "Ada", LastName: "Lovelace", Subject: "MATH"})
	assert.Equal(t, people.ErrDepartmentNotFound, err)

	// the rejected creation did not consume a uid
	st, err := svc.Create(ctx, people.NewPerson{Role: people.RoleStudent, FirstName: "Ada", LastName: "Lovelace", Subject: "CS"})
	require.NoError(t, err)
	assert.Equal(t, "u0000003", st.UID)

	got, err := svc.Get(ctx, "u0000002")
	require.NoError(t, err)
	assert.Equal(t, prof, got)
	assert.True(t, got.IsProfessor())

	_, err = svc.Get(ctx, "u0000042")
	assert.Equal(t, people.ErrNotFound, err)
}
