package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // aplicados na ordem da lista
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	r := httprouter.New()
	r.NotFound = http.HandlerFunc(notFound)
	r.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	router := &Router{router: r}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}

func notFound(w http.ResponseWriter, req *http.Request) {
	log.ForContext(req.Context()).WithField("path", req.URL.Path).Debug("router: rota não encontrada")
	apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", nil)
}
