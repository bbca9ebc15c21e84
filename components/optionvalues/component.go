package optionvalues

import "net/http"

// Component pairs resolved Options with the handler built from them, so a
// server and the forms it renders agree on the endpoint.
type Component struct {
	opts    Options
	handler http.Handler
}

func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts, handler: HandlerWithOptions(opts)}
}

// Options returns a copy of the resolved configuration.
func (c *Component) Options() Options {
	return c.opts
}

func (c *Component) Handler() http.Handler {
	return c.handler
}

// EndpointURL is the URL a field mounted under basePath uses to look up label.
func (c *Component) EndpointURL(basePath, label string) string {
	return endpointURL(mountPath(basePath, c.opts.RoutePath), c.opts.LabelParam, label)
}

// RegisterRoutes mounts the handler under basePath and returns the pattern.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if mux == nil {
		return "", errMissingMux
	}
	pattern := mountPath(basePath, c.opts.RoutePath)
	mux.Handle(pattern, c.handler)
	c.opts.Logger.Debug("option value endpoint mounted")
	return pattern, nil
}
