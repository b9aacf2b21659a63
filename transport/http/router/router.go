package router

import (
	"estate/internal/handlers/followup"
	"estate/internal/handlers/maintenance"
	"estate/internal/handlers/viewing"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Viewing     viewing.Handler
	FollowUp    followup.Handler
	Maintenance maintenance.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Viewing.Router(routerGroup)
		r.DomainHandlers.FollowUp.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
