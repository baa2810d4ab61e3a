package searchkit

import (
	"github.com/dmitrymomot/searchkit/connector"
	"github.com/dmitrymomot/searchkit/connector/awssigv4"
	"github.com/dmitrymomot/searchkit/connector/basicauth"
	"github.com/dmitrymomot/searchkit/connector/standard"
)

// NewDefaultRegistry returns a registry with the built-in connectors
// registered: standard, basicauth and awssigv4, in that order.
func NewDefaultRegistry() *connector.Registry {
	r := connector.NewRegistry()

	// Built-in ids cannot collide on a fresh registry.
	for _, register := range []func(*connector.Registry) error{
		standard.Register,
		basicauth.Register,
		awssigv4.Register,
	} {
		if err := register(r); err != nil {
			panic("searchkit: failed to register built-in connector: " + err.Error())
		}
	}
	return r
}
