package solver

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/rondo/config"
	"github.com/katalvlaran/rondo/search"
)

// ContextOption configures a Context before use.
type ContextOption func(*Context)

// WithProperties attaches named configuration options that selectors read
// during Init.
func WithProperties(props config.Properties) ContextOption {
	return func(c *Context) { c.props = props }
}

// WithLogger sets the logger exposed to selectors and loops.
// The default is a no-op logger.
func WithLogger(log zerolog.Logger) ContextOption {
	return func(c *Context) { c.log = log }
}

// Context is the concrete solver context: it implements search.Context and
// additionally exposes Properties and Logger, which selectors may discover
// by type assertion.
type Context struct {
	sol   *search.Solution
	props config.Properties
	log   zerolog.Logger
}

// NewContext wraps sol as the shared solution of a search run.
func NewContext(sol *search.Solution, opts ...ContextOption) (*Context, error) {
	if sol == nil {
		return nil, ErrNilSolution
	}
	c := &Context{sol: sol, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Solution returns the shared solution.
func (c *Context) Solution() *search.Solution { return c.sol }

// Properties returns the named configuration options (possibly nil).
func (c *Context) Properties() config.Properties { return c.props }

// Logger returns the context logger.
func (c *Context) Logger() zerolog.Logger { return c.log }

// InitSelector initializes sel against this context, delegating to sel.Init
// exactly once per call.
func (c *Context) InitSelector(sel search.Selector) error {
	if sel == nil {
		return search.ErrNilSelector
	}

	return sel.Init(c)
}
