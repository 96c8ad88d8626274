package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"create-endpoint/internal/model"
)

func route(path, url string, methods ...string) model.RouteDef {
	r := model.NewRouteDef(path)
	r.URLPath = url
	r.Methods = methods
	return *r
}

func TestSortRoutesDoesNotMutateInput(t *testing.T) {
	in := []model.RouteDef{
		route("ingest/refresh", "/api/ingest/refresh", "POST"),
		route("(admin)/users", "/api/users", "GET"),
		route("dashboard/stats", "/api/dashboard/stats", "GET"),
		route("users", "/api/users", "GET"),
	}

	out := SortRoutes(in)

	assert.Equal(t, "ingest/refresh", in[0].Path)
	require.Len(t, out, 4)
	assert.Equal(t, []string{"dashboard/stats", "ingest/refresh", "(admin)/users", "users"},
		[]string{out[0].Path, out[1].Path, out[2].Path, out[3].Path})
}

func TestGroupRoutes(t *testing.T) {
	sections := GroupRoutes([]model.RouteDef{
		route("ingest/refresh", "/api/ingest/refresh", "POST"),
		route("", "/api", "GET"),
		route("ingest/poll", "/api/ingest/poll", "GET"),
		route("dashboard/stats", "/api/dashboard/stats", "GET"),
	})

	require.Len(t, sections, 3)
	assert.Equal(t, RootSection, sections[0].Name)
	assert.Equal(t, "dashboard", sections[1].Name)
	assert.Equal(t, "ingest", sections[2].Name)
	require.Len(t, sections[2].Routes, 2)
	assert.Equal(t, "ingest/poll", sections[2].Routes[0].Path)
}

func TestOperations(t *testing.T) {
	routes := []model.RouteDef{
		route("a", "/api/a", "GET", "POST"),
		route("b", "/api/b", "DELETE"),
	}

	ops := Operations(routes)
	require.Len(t, ops, 3)
	assert.Equal(t, "POST", ops[1].Method)
	assert.Equal(t, "a", ops[1].Route.Path)
	assert.Equal(t, "DELETE", ops[2].Method)
}
