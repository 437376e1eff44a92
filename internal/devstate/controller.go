package devstate

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Microsoft/devtoggle/internal/log"
	"github.com/Microsoft/devtoggle/internal/logfields"
)

// Controller changes device states on behalf of repeated callers. Every call
// opens, scans and closes its own snapshot; no entries are kept between calls,
// so a Controller is safe for concurrent use.
type Controller struct {
	reg     Registry
	aliases map[string]string
}

// Option configures a Controller.
type Option func(*Controller)

// WithAliases sets the names that [Controller.Resolve] maps to instance IDs.
func WithAliases(aliases map[string]string) Option {
	return func(c *Controller) {
		c.aliases = make(map[string]string, len(aliases))
		for k, v := range aliases {
			c.aliases[k] = v
		}
	}
}

func NewController(reg Registry, opts ...Option) *Controller {
	c := &Controller{reg: reg}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Resolve returns the instance ID for name if it is a configured alias, and
// name itself otherwise. Alias names are case-sensitive.
func (c *Controller) Resolve(name string) string {
	if id, ok := c.aliases[name]; ok {
		return id
	}
	return name
}

// SetState resolves name and changes the state of the device it refers to.
func (c *Controller) SetState(ctx context.Context, name string, s State) error {
	id := c.Resolve(name)
	if id != name {
		ctx, _ = log.SetEntry(ctx, logrus.Fields{logfields.Alias: name})
	}
	return SetState(ctx, c.reg, id, s)
}
