package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core/catalog"
	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/core/schedule"
)

type adminApi struct {
	catalogSvc  catalog.Service
	scheduleSvc schedule.Service
	peopleSvc   people.Service
	validate    *validator.Validate
}

func registerAdminAPI(g *echo.Group, deps ServerDeps) {
	api := adminApi{
		catalogSvc:  deps.CatalogSvc,
		scheduleSvc: deps.ScheduleSvc,
		peopleSvc:   deps.PeopleSvc,
		validate:    deps.Validate,
	}

	g.POST("/departments", api.createDepartment)
	g.GET("/departments/:subject/courses", api.queryCourses)
	g.GET("/departments/:subject/professors", api.queryProfessors)
	g.POST("/courses", api.createCourse)
	g.POST("/classes", api.createClass)
	g.POST("/people", api.createPerson)
	g.GET("/people/:uid", api.retrievePerson)
}

func (api *adminApi) createDepartment(ctx echo.Context) error {
	var data catalog.NewDepartment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDepartment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.catalogSvc.CreateDepartment(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "creating department")
	}
	return success(ctx)
}

func (api *adminApi) createCourse(ctx echo.Context) error {
	var data catalog.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.catalogSvc.CreateCourse(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "creating course")
	}
	return success(ctx)
}

func (api *adminApi) queryCourses(ctx echo.Context) error {
	courses, err := api.catalogSvc.QueryCourses(ctx.Request().Context(), pathParam(ctx, "subject"))
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *adminApi) queryProfessors(ctx echo.Context) error {
	profs, err := api.catalogSvc.QueryProfessors(ctx.Request().Context(), pathParam(ctx, "subject"))
	if err != nil {
		return errors.Wrap(err, "querying professors")
	}
	return ctx.JSON(http.StatusOK, profs)
}

func (api *adminApi) createClass(ctx echo.Context) error {
	var data schedule.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.scheduleSvc.CreateClass(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "creating class")
	}
	return success(ctx)
}

func (api *adminApi) createPerson(ctx echo.Context) error {
	var data people.NewPerson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPerson")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, err := api.peopleSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating person")
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *adminApi) retrievePerson(ctx echo.Context) error {
	p, err := api.peopleSvc.Get(ctx.Request().Context(), ctx.Param("uid"))
	if err != nil {
		return errors.Wrap(err, "finding person")
	}
	return ctx.JSON(http.StatusOK, p)
}
