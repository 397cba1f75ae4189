package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/kashi-pulse/kashipath/pkg/http/router/routerhelper"
	"github.com/kashi-pulse/kashipath/pkg/http/usecases"
	"go.uber.org/zap"
)

type navigationAPI struct {
	navigationService NavigationService
	governanceService GovernanceService
	log               *zap.Logger
}

func New(navigationService NavigationService, governanceService GovernanceService, log *zap.Logger) *navigationAPI {
	return &navigationAPI{
		navigationService: navigationService,
		governanceService: governanceService,
		log:               log,
	}
}

func (api *navigationAPI) Routes(group *helper.RouteGroup) {
	group.GET("/navigation/route", api.route)
	group.POST("/navigation/routes", api.batchRoutes)
	group.GET("/navigation/hubs", api.hubs)
	group.POST("/governance/update", api.governanceUpdate)
}

func (api *navigationAPI) route(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := routeRequest{
		Origin:      query.Get("origin"),
		Destination: query.Get("destination"),
		Mode:        query.Get("mode"),
	}

	if errs := api.validateRequest(request); errs != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", errs))
		return
	}

	path, totalCost, trace, err := api.navigationService.Route(request.Origin, request.Destination, request.Mode)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewRouteResponse(path, totalCost, trace)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) batchRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request batchRoutesRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if errs := api.validateRequest(request); errs != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", errs))
		return
	}

	queries := make([]usecases.BatchRouteQuery, 0, len(request.Routes))
	for _, route := range request.Routes {
		queries = append(queries, usecases.BatchRouteQuery{
			Origin:      route.Origin,
			Destination: route.Destination,
			Mode:        route.Mode,
		})
	}

	answers := api.navigationService.BatchRoute(queries)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewBatchRoutesResponse(answers)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) hubs(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewHubsResponse(api.navigationService.Hubs())}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) governanceUpdate(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request governanceUpdateRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if errs := api.validateRequest(request); errs != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", errs))
		return
	}

	api.governanceService.ApplySnapshot(request.FloodLevel, request.AQI,
		request.RoadConditions, request.CrowdDensities, request.MelaActive)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": "governance snapshot applied"}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) validateRequest(request interface{}) []string {
	validate := validator.New()
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	vvString := []string{}
	for _, v := range translateError(err, trans) {
		vvString = append(vvString, v.Error())
	}
	return vvString
}
