package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core/catalog"
	"github.com/code-sharingan/Learning-management-system/core/people"
	"github.com/code-sharingan/Learning-management-system/core/schedule"
)

// commonApi serves every authenticated role.
type commonApi struct {
	catalogSvc  catalog.Service
	scheduleSvc schedule.Service
	peopleSvc   people.Service
}

func registerCommonAPI(g *echo.Group, deps ServerDeps) {
	api := commonApi{
		catalogSvc:  deps.CatalogSvc,
		scheduleSvc: deps.ScheduleSvc,
		peopleSvc:   deps.PeopleSvc,
	}

	g.GET("/me", api.me)
	g.GET("/catalog", api.catalog)
	g.GET("/courses/:subject/:num/offerings", api.offerings)
}

func (api *commonApi) me(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	p, err := api.peopleSvc.Get(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "finding person")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *commonApi) catalog(ctx echo.Context) error {
	cat, err := api.catalogSvc.Catalog(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "building catalog")
	}
	return ctx.JSON(http.StatusOK, cat)
}

func (api *commonApi) offerings(ctx echo.Context) error {
	num, err := intParam(ctx, "num")
	if err != nil {
		return err
	}
	offerings, err := api.scheduleSvc.QueryOfferings(ctx.Request().Context(), pathParam(ctx, "subject"), num)
	if err != nil {
		return errors.Wrap(err, "querying offerings")
	}
	return ctx.JSON(http.StatusOK, offerings)
}
