package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core/coursework"
	"github.com/code-sharingan/Learning-management-system/core/enrollment"
	"github.com/code-sharingan/Learning-management-system/core/schedule"
)

type professorApi struct {
	scheduleSvc   schedule.Service
	courseworkSvc coursework.Service
	enrollmentSvc enrollment.Service
	validate      *validator.Validate
}

func registerProfessorAPI(g *echo.Group, deps ServerDeps) {
	api := professorApi{
		scheduleSvc:   deps.ScheduleSvc,
		courseworkSvc: deps.CourseworkSvc,
		enrollmentSvc: deps.EnrollmentSvc,
		validate:      deps.Validate,
	}

	g.GET("/:uid/classes", api.queryClasses, ownUIDMiddleware)

	cg := g.Group(classPath)
	cg.GET("/students", api.queryRoster)
	cg.GET("/categories", api.queryCategories)
	cg.POST("/categories", api.createCategory)
	cg.GET("/assignments", api.queryAssignments)
	cg.POST("/assignments", api.createAssignment)

	ag := cg.Group("/categories/:category/assignments/:asgname")
	ag.GET("", api.retrieveAssignment)
	ag.GET("/submissions", api.querySubmissions)
	ag.GET("/submissions/:uid", api.retrieveSubmission)
	ag.POST("/grade", api.grade)
}

func (api *professorApi) queryClasses(ctx echo.Context) error {
	classes, err := api.scheduleSvc.QueryTaughtClasses(ctx.Request().Context(), ctx.Param("uid"))
	if err != nil {
		return errors.Wrap(err, "querying taught classes")
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *professorApi) queryRoster(ctx echo.Context) error {
	key, err := classKeyParam(ctx)
	if err != nil {
		return err
	}
	roster, err := api.enrollmentSvc.Roster(ctx.Request().Context(), key)
	if err != nil {
		return errors.Wrap(err, "querying roster")
	}
	return ctx.JSON(http.StatusOK, roster)
}

func (api *professorApi) queryCategories(ctx echo.Context) error {
	key, err := classKeyParam(ctx)
	if err != nil {
		return err
	}
	cats, err := api.courseworkSvc.QueryCategories(ctx.Request().Context(), key)
	if err != nil {
		return errors.Wrap(err, "querying categories")
	}
	return ctx.JSON(http.StatusOK, cats)
}

func (api *professorApi) createCategory(ctx echo.Context) error {
	key, err := classKeyParam(ctx)
	if err != nil {
		return err
	}
	var data coursework.NewCategory
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCategory")
	}
	data.ClassKey = key
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	if err = api.courseworkSvc.CreateCategory(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "creating category")
	}
	return success(ctx)
}

func (api *professorApi) queryAssignments(ctx echo.Context) error {
	key, err := classKeyParam(ctx)
	if err != nil {
		return err
	}
	asgs, err := api.courseworkSvc.QueryAssignments(ctx.Request().Context(), key, ctx.QueryParam("category"))
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, asgs)
}

func (api *professorApi) createAssignment(ctx echo.Context) error {
	key, err := classKeyParam(ctx)
	if err != nil {
		return err
	}
	var data coursework.NewAssignment
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	data.ClassKey = key
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	if err = api.courseworkSvc.CreateAssignment(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return success(ctx)
}

func (api *professorApi) retrieveAssignment(ctx echo.Context) error {
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

func (api *professorApi) querySubmissions(ctx echo.Context) error {
	key, err := assignmentKeyParam(ctx)
	if err != nil {
		return err
	}
	subs, err := api.courseworkSvc.QuerySubmissions(ctx.Request().Context(), key)
	if err != nil {
		return errors.Wrap(err, "querying submissions")
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *professorApi) retrieveSubmission(ctx echo.Context) error {
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

func (api *professorApi) grade(ctx echo.Context) error {
	key, err := assignmentKeyParam(ctx)
	if err != nil {
		return err
	}
	var data coursework.NewGrade
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGrade")
	}
	data.AssignmentKey = key
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	if err = api.courseworkSvc.Grade(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "grading submission")
	}
	return success(ctx)
}
