// README: API gateway; holds the services the routes delegate to.
package http

import (
	"travelogue/internal/config"
	"travelogue/internal/service"
)

type ServerDeps struct {
	Planner     *service.Planner
	Form        config.FormConfig
	CORSOrigins []string
}

type Server struct {
	planner     *service.Planner
	form        config.FormConfig
	corsOrigins []string
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		planner:     deps.Planner,
		form:        deps.Form,
		corsOrigins: deps.CORSOrigins,
	}
}
