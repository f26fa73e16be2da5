// Package handler mounts the HTTP surface: the GraphQL endpoint behind the
// authentication middleware, and a health check.
package handler

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/jtng3/taskade/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, schema *graphql.Schema, db Pinger) {
	mux.Handle("POST /graphql", Authenticate(auth, &relay.Handler{Schema: schema}))
	mux.HandleFunc("GET /healthz", HandleHealthz(db))
}
