// Package simple provides a monotonically increasing id sequence, used to
// number booking events within a single run.
package simple

import "context"

type Generator struct {
	counter int
}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GetID(_ context.Context) (int, error) {
	g.counter++

	return g.counter, nil
}
