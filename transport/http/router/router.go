package router

import (
	"barber/internal/handlers/publicbooking"
	"barber/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	PublicBooking publicbooking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.Session)

		r.DomainHandlers.PublicBooking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
