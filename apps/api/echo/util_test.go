package echoapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/code-sharingan/Learning-management-system/apps/api/echo"
	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/catalog"
	"github.com/code-sharingan/Learning-management-system/core/coursework"
	"github.com/code-sharingan/Learning-management-system/core/enrollment"
	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/core/schedule"
	"github.com/code-sharingan/Learning-management-system/services/logger"
	"github.com/code-sharingan/Learning-management-system/storage/database/inmem"
	"github.com/code-sharingan/Learning-management-system/tests"
)

var (
	conf = &core.Config{
		Env:       "TEST",
		TestMode:  true,
		AppName:   "LMS",
		SecretKey: "secret",
		Server:    core.ServerConfig{JWTExpirationDelta: time.Hour},
	}

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errForbidden    = httpErr{Error: "permission denied"}
	succeeded       = SuccessResponse{Success: true}
	rejected        = SuccessResponse{Success: false}

	admin     = people.Person{UID: "u0000001", FirstName: "Root", LastName: "Admin", Role: people.RoleAdministrator}
	professor = people.Person{UID: "u0000002", FirstName: "Danny", LastName: "Kopta", Subject: "CS", Role: people.RoleProfessor}
	student   = people.Person{UID: "u0000003", FirstName: "Ada", LastName: "Lovelace", Subject: "CS", Role: people.RoleStudent}
	student2  = people.Person{UID: "u0000004", FirstName: "Alan", LastName: "Turing", Subject: "CS", Role: people.RoleStudent}
)

// setup returns a server backed by a seeded in-memory database: the CS department,
// CS 5530 taught by professor in Fall 2024 (10:00-11:00 at WEB L104) and the people above.
func setup(t *testing.T) (Server, testutil.Fixture) {
	db := inmemdb.New()
	repos := testutil.NewInmemRepos(db)
	fx := testutil.Fixture{T: t, DB: db, Repos: repos}

	fx.CreateDepartment("CS", "Computer Science")
	fx.CreateCourse("CS", 5530, "Database Systems")
	for _, p := range []people.Person{admin, professor, student, student2} {
		fx.CreatePerson(p.Role, p.UID, p.FirstName, p.LastName, p.Subject)
	}
	fx.CreateClass(dbFall, schedule.NewClock(10, 0, 0), schedule.NewClock(11, 0, 0), "WEB L104", professor.UID)

	validate, translator := core.NewValidator()
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)

	srv := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         logger,
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
		CatalogSvc:     catalog.NewService(db, repos.Catalog),
		ScheduleSvc:    schedule.NewService(db, repos.Schedule),
		CourseworkSvc:  coursework.NewService(db, repos.Coursework),
		EnrollmentSvc:  enrollment.NewService(db, repos.Enrollment),
		PeopleSvc:      people.NewService(db, repos.People),
	})
	return srv, fx
}

var dbFall = testutil.ClassKey("CS", 5530, core.SeasonFall, 2024)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func getToken(t *testing.T, p people.Person) string {
	token, err := GenerateToken(NewClaims(p, conf), conf.SecretKey)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	wantCode := tt.wantCode
	if wantCode == 0 {
		wantCode = http.StatusOK
	}
	if rec.Code != wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, srv Server, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func assertBody(t *testing.T, srv Server, path, token, want string) {
	t.Helper()
	req, rec := newAuthRequest(http.MethodGet, path, token)
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}
