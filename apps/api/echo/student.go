package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core/coursework"
	"github.com/code-sharingan/Learning-management-system/core/enrollment"
)

type studentApi struct {
	courseworkSvc coursework.Service
	enrollmentSvc enrollment.Service
	validate      *validator.Validate
}

func registerStudentAPI(g *echo.Group, deps ServerDeps) {
	api := studentApi{
		courseworkSvc: deps.CourseworkSvc,
		enrollmentSvc: deps.EnrollmentSvc,
		validate:      deps.Validate,
	}

	sg := g.Group("/:uid", ownUIDMiddleware)
	sg.GET("/classes", api.queryClasses)
	sg.GET("/gpa", api.gpa)
	sg.POST("/enroll", api.enroll)
	sg.GET(classPath+"/assignments", api.queryAssignments)
	sg.GET(assignmentPath, api.retrieveAssignment)
	sg.GET(assignmentPath+"/submission", api.retrieveSubmission)
	sg.POST(assignmentPath+"/submit", api.submit)
}

func (api *studentApi) queryClasses(ctx echo.Context) error {
	classes, err := api.enrollmentSvc.StudentClasses(ctx.Request().Context(), ctx.Param("uid"))
	if err != nil {
		return errors.Wrap(err, "querying student classes")
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *studentApi) gpa(ctx echo.Context) error {
	gpa, err := api.enrollmentSvc.GPA(ctx.Request().Context(), ctx.Param("uid"))
	if err != nil {
		return errors.Wrap(err, "computing gpa")
	}
	return ctx.JSON(http.StatusOK, gpa)
}

func (api *studentApi) enroll(ctx echo.Context) error {
	var data enrollment.NewEnrollment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEnrollment")
	}
	data.UID = ctx.Param("uid")
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.enrollmentSvc.Enroll(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "enrolling")
	}
	return success(ctx)
}

func (api *studentApi) queryAssignments(ctx echo.Context) error {
	key, err := classKeyParam(ctx)
	if err != nil {
		return err
	}
	asgs, err := api.courseworkSvc.StudentAssignments(ctx.Request().Context(), key, ctx.Param("uid"))
	if err != nil {
		return errors.Wrap(err, "querying student assignments")
	}
	return ctx.JSON(http.StatusOK, asgs)
}

func (api *studentApi) retrieveAssignment(ctx echo.Context) error {
	key, err := assignmentKeyParam(ctx)
	if err != nil {
		return err
	}
	contents, err := api.courseworkSvc.AssignmentContents(ctx.Request().Context(), key)
	if err != nil {
		if err == coursework.ErrAssignmentNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "retrieving assignment contents")
	}
	return ctx.String(http.StatusOK, contents)
}

func (api *studentApi) retrieveSubmission(ctx echo.Context) error {
	key, err := assignmentKeyParam(ctx)
	if err != nil {
		return err
	}
	text, err := api.courseworkSvc.SubmissionText(ctx.Request().Context(), key, ctx.Param("uid"))
	if err != nil {
		if err == coursework.ErrAssignmentNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "retrieving submission text")
	}
	return ctx.String(http.StatusOK, text)
}

func (api *studentApi) submit(ctx echo.Context) error {
	key, err := assignmentKeyParam(ctx)
	if err != nil {
		return err
	}
	var data coursework.NewSubmission
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubmission")
	}
	data.AssignmentKey = key
	data.UID = ctx.Param("uid")
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	if err = api.courseworkSvc.Submit(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "submitting assignment")
	}
	return success(ctx)
}
