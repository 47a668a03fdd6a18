package server

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/skillgap-coach/internal/analysis"
	"github.com/jonathan/skillgap-coach/internal/skills"
)

// newTestServer builds a Server wired for handler tests: baseline analyzer,
// no HTTP listener, and whatever store the test supplies.
func newTestServer(store Store) *Server {
	return &Server{
		store:       store,
		analyzer:    analysis.New(skills.NewExtractor(nil)),
		validator:   validator.New(),
		corsOrigins: []string{"*"},
	}
}
