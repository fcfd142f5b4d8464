package echoapi_test

import (
	"net/http"
	"testing"

	"github.com/code-sharingan/Learning-management-system/core/catalog"
	"github.com/code-sharingan/Learning-management-system/core/people"
)

func Test_adminApi_catalog(t *testing.T) {
	srv, _ := setup(t)
	adminToken := getToken(t, admin)

	tests := []httpTest{
		{
			name: "Auth required", method: http.MethodPost, path: "/v1/admin/departments",
			wantCode: http.StatusUnauthorized, wantData: marshalObj(t, errMissingToken),
		},
		{
			name: "Administrator required", method: http.MethodPost, path: "/v1/admin/departments",
			body: []byte(`{"subject": "MATH", "name": "Mathematics"}`), token: getToken(t, professor),
			wantCode: http.StatusForbidden, wantData: marshalObj(t, errForbidden),
		},
		{
			name: "invalid subject", method: http.MethodPost, path: "/v1/admin/departments",
			body: []byte(`{"subject": "math1", "name": "Mathematics"}`), token: adminToken,
			wantCode: http.StatusBadRequest, wantData: []byte(`{"subject": "must be 1 to 4 upper-case letters"}`),
		},
		{
			name: "create department", method: http.MethodPost, path: "/v1/admin/departments",
			body: []byte(`{"subject": "math", "name": "Mathematics"}`), token: adminToken,
			wantData: marshalObj(t, succeeded),
		},
		{
			name: "duplicate department", method: http.MethodPost, path: "/v1/admin/departments",
			body: []byte(`{"subject": "CS", "name": "Computing"}`), token: adminToken,
			wantData: marshalObj(t, rejected),
		},
		{
			name: "create course", method: http.MethodPost, path: "/v1/admin/courses",
			body: []byte(`{"subject": "CS", "number": 3500, "name": "Software Practice"}`), token: adminToken,
			wantData: marshalObj(t, succeeded),
		},
		{
			name: "duplicate course", method: http.MethodPost, path: "/v1/admin/courses",
			body: []byte(`{"subject": "CS", "number": 5530, "name": "Databases"}`), token: adminToken,
			wantData: marshalObj(t, rejected),
		},
		{
			name: "course of unknown department", method: http.MethodPost, path: "/v1/admin/courses",
			body: []byte(`{"subject": "BIO", "number": 1010, "name": "Biology"}`), token: adminToken,
			wantData: marshalObj(t, rejected),
		},
		{
			name: "list courses", path: "/v1/admin/departments/CS/courses", token: adminToken,
			wantData: marshalObj(t, []catalog.CourseListing{
				{Number: 3500, Name: "Software Practice"},
				{Number: 5530, Name: "Database Systems"},
			}),
		},
		{name: "list courses (empty)", path: "/v1/admin/departments/MATH/courses", token: adminToken, wantData: []byte(`[]`)},
		{
			name: "list professors", path: "/v1/admin/departments/CS/professors/", token: adminToken,
			wantData: []byte(`[{"lname": "Kopta", "fname": "Danny", "uid": "u0000002"}]`),
		},
	}
	runHTTPTests(t, srv, tests)
}

func Test_adminApi_createClass(t *testing.T) {
	srv, fx := setup(t)
	fx.CreateCourse("CS", 3500, "Software Practice")
	fx.CreateCourse("CS", 4400, "Computer Systems")
	adminToken := getToken(t, admin)

	class := func(num int, season, start, end, location string) []byte {
		return marshalObj(t, map[string]interface{}{
			"subject": "CS", "number": num, "season": season, "year": 2024,
			"start": start, "end": end, "location": location, "instructor": professor.UID,
		})
	}

	tests := []httpTest{
		{
			name: "same course same semester", method: http.MethodPost, path: "/v1/admin/classes",
			body: class(5530, "Fall", "14:00", "15:00", "MEB 3147"), token: adminToken,
			wantData: marshalObj(t, rejected),
		},
		{
			name: "overlapping location", method: http.MethodPost, path: "/v1/admin/classes",
			body: class(3500, "Fall", "10:30", "11:30", "WEB L104"), token: adminToken,
			wantData: marshalObj(t, rejected),
		},
		{
			name: "enclosed window", method: http.MethodPost, path: "/v1/admin/classes",
			body: class(3500, "Fall", "10:15", "10:45", "WEB L104"), token: adminToken,
			wantData: marshalObj(t, rejected),
		},
		{
			name: "back to back", method: http.MethodPost, path: "/v1/admin/classes",
			body: class(3500, "fall", "11:00", "12:00", "WEB L104"), token: adminToken,
			wantData: marshalObj(t, succeeded),
		},
		{
			name: "other semester", method: http.MethodPost, path: "/v1/admin/classes",
			body: class(4400, "Spring", "10:00", "11:00", "WEB L104"), token: adminToken,
			wantData: marshalObj(t, succeeded),
		},
		{
			name: "end before start", method: http.MethodPost, path: "/v1/admin/classes",
			body: class(4400, "Fall", "13:00", "12:00", "WEB L104"), token: adminToken,
			wantCode: http.StatusBadRequest, wantData: []byte(`{"end": "must be after start"}`),
		},
		{
			name: "unknown course", method: http.MethodPost, path: "/v1/admin/classes",
			body: class(9999, "Fall", "13:00", "14:00", "WEB L104"), token: adminToken,
			wantData: marshalObj(t, rejected),
		},
		{
			name: "unknown professor", method: http.MethodPost, path: "/v1/admin/classes",
			body: []byte(`{"subject": "CS", "number": 4400, "season": "Fall", "year": 2024, "start": "13:00", "end": "14:00", "location": "WEB L104", "instructor": "u0000042"}`),
			token: adminToken, wantData: marshalObj(t, rejected),
		},
		{
			name: "offerings", path: "/v1/common/courses/CS/3500/offerings", token: getToken(t, student),
			wantData: []byte(`[{"season": "Fall", "year": 2024, "location": "WEB L104", "start": "11:00:00", "end": "12:00:00", "fname": "Danny", "lname": "Kopta"}]`),
		},
	}
	runHTTPTests(t, srv, tests)
}

func Test_adminApi_people(t *testing.T) {
	srv, _ := setup(t)
	adminToken := getToken(t, admin)

	created := people.Person{UID: "u0000005", FirstName: "Grace", LastName: "Hopper", Subject: "CS", Role: people.RoleProfessor}

	tests := []httpTest{
		{
			name: "create professor", method: http.MethodPost, path: "/v1/admin/people",
			body:  []byte(`{"role": "Professor", "fname": " Grace ", "lname": "Hopper", "department": "cs"}`),
			token: adminToken, wantCode: http.StatusCreated, wantData: marshalObj(t, created),
		},
		{
			name: "missing department", method: http.MethodPost, path: "/v1/admin/people",
			body:  []byte(`{"role": "Student", "fname": "Grace", "lname": "Hopper"}`),
			token: adminToken, wantCode: http.StatusBadRequest, wantData: []byte(`{"department": "this field is required"}`),
		},
		{
			name: "unknown department", method: http.MethodPost, path: "/v1/admin/people",
			body:  []byte(`{"role": "Student", "fname": "Grace", "lname": "Hopper", "department": "BIO"}`),
			token: adminToken, wantData: marshalObj(t, rejected),
		},
		{name: "retrieve", path: "/v1/admin/people/u0000005", token: adminToken, wantData: marshalObj(t, created)},
		{
			name: "retrieve unknown", path: "/v1/admin/people/u0000099", token: adminToken,
			wantCode: http.StatusNotFound, wantData: []byte(`{"error": "Not Found"}`),
		},
		{name: "me", path: "/v1/common/me", token: getToken(t, student), wantData: marshalObj(t, student)},
	}
	runHTTPTests(t, srv, tests)
}
