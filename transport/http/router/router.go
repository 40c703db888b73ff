package router

import (
	"stayadmin/internal/handlers/booking"
	"stayadmin/internal/handlers/integration"
	"stayadmin/internal/handlers/roomtype"
	"stayadmin/internal/handlers/slip"
	"stayadmin/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking     booking.Handler
	Slip        slip.Handler
	RoomType    roomtype.Handler
	Integration integration.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts admin routes behind token auth and RBAC, and the
// reservation flow routes behind the service API key.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Group(func(admin chi.Router) {
			admin.Use(r.AuthRole.Auth, r.AuthRole.RBAC)

			r.DomainHandlers.Booking.Router(admin)
			r.DomainHandlers.Slip.Router(admin)
			r.DomainHandlers.RoomType.Router(admin)
		})

		routerGroup.Group(func(internal chi.Router) {
			internal.Use(r.AuthRole.APIKey)

			r.DomainHandlers.Integration.Router(internal)
		})
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
