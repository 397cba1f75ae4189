package controllers

import (
	"github.com/kashi-pulse/kashipath/pkg/guidance"
	"github.com/kashi-pulse/kashipath/pkg/http/usecases"
)

type NavigationService interface {
	Route(origin, destination, mode string) ([]string, float64, []guidance.TraceSegment, error)
	BatchRoute(queries []usecases.BatchRouteQuery) []usecases.BatchRouteAnswer
	Hubs() []usecases.HubInfo
}

type GovernanceService interface {
	ApplySnapshot(floodLevel, aqi float64, roadConditions, crowdDensities map[string]float64, melaActive bool)
}
