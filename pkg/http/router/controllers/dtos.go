package controllers

import (
	"fmt"

	"github.com/kashi-pulse/kashipath/pkg/guidance"
	"github.com/kashi-pulse/kashipath/pkg/http/usecases"
)

type routeRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Mode        string `json:"mode" validate:"required"`
}

type traceSegmentResponse struct {
	Segment string `json:"segment"`
	Status  string `json:"status"`
}

func NewTraceResponse(trace []guidance.TraceSegment) []traceSegmentResponse {
	segments := make([]traceSegmentResponse, 0, len(trace))
	for _, ts := range trace {
		segments = append(segments, traceSegmentResponse{
			Segment: fmt.Sprintf("%s-%s", ts.GetSource(), ts.GetDestination()),
			Status:  ts.GetStatus(),
		})
	}
	return segments
}

type routeResponse struct {
	Path      []string               `json:"path"`
	TotalCost float64                `json:"total_cost"`
	Trace     []traceSegmentResponse `json:"trace"`
}

func NewRouteResponse(path []string, totalCost float64, trace []guidance.TraceSegment) routeResponse {
	return routeResponse{
		Path:      path,
		TotalCost: totalCost,
		Trace:     NewTraceResponse(trace),
	}
}

type batchRoutesRequest struct {
	Routes []routeRequest `json:"routes" validate:"required,min=1,dive"`
}

type batchRouteItemResponse struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Mode        string         `json:"mode"`
	Route       *routeResponse `json:"route,omitempty"`
	Error       string         `json:"error,omitempty"`
}

func NewBatchRoutesResponse(answers []usecases.BatchRouteAnswer) []batchRouteItemResponse {
	items := make([]batchRouteItemResponse, 0, len(answers))
	for _, answer := range answers {
		item := batchRouteItemResponse{
			Origin:      answer.Query.Origin,
			Destination: answer.Query.Destination,
			Mode:        answer.Query.Mode,
		}
		if answer.Err != nil {
			item.Error = answer.Err.Error()
		} else {
			route := NewRouteResponse(answer.Path, answer.TotalCost, answer.Trace)
			item.Route = &route
		}
		items = append(items, item)
	}
	return items
}

type governanceUpdateRequest struct {
	FloodLevel     float64            `json:"flood_level" validate:"min=0"`
	AQI            float64            `json:"aqi" validate:"min=0"`
	RoadConditions map[string]float64 `json:"road_conditions"`
	CrowdDensities map[string]float64 `json:"crowd_densities"`
	MelaActive     bool               `json:"mela_active"`
}

type hubResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

func NewHubsResponse(hubs []usecases.HubInfo) []hubResponse {
	responses := make([]hubResponse, 0, len(hubs))
	for _, hub := range hubs {
		responses = append(responses, hubResponse{ID: hub.ID, Category: hub.Category})
	}
	return responses
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
