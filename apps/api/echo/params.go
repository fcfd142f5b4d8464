package echoapi

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/coursework"
)

// classPath is the route suffix identifying a class.
const classPath = "/classes/:subject/:num/:season/:year"

// assignmentPath is the route suffix identifying an assignment of a class.
const assignmentPath = classPath + "/categories/:category/assignments/:asgname"

func pathParam(ctx echo.Context, name string) string {
	p := ctx.Param(name)
	if s, err := url.PathUnescape(p); err == nil {
		return s
	}
	return p
}

func intParam(ctx echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, errHttpNotFound
	}
	return n, nil
}

func classKeyParam(ctx echo.Context) (core.ClassKey, error) {
	num, err := intParam(ctx, "num")
	if err != nil {
		return core.ClassKey{}, err
	}
	year, err := intParam(ctx, "year")
	if err != nil {
		return core.ClassKey{}, err
	}
	key := core.ClassKey{
		Subject: pathParam(ctx, "subject"),
		Number:  num,
		Season:  pathParam(ctx, "season"),
		Year:    year,
	}
	key.Clean()
	return key, nil
}

func assignmentKeyParam(ctx echo.Context) (coursework.AssignmentKey, error) {
	key, err := classKeyParam(ctx)
	if err != nil {
		return coursework.AssignmentKey{}, err
	}
	akey := coursework.AssignmentKey{
		ClassKey: key,
		Category: pathParam(ctx, "category"),
		Name:     pathParam(ctx, "asgname"),
	}
	akey.Clean()
	return akey, nil
}

func success(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}
