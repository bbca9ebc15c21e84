package optionvalues

import (
	"errors"
	"net/http"
	"net/url"
	"path"
	"strings"
)

var errMissingMux = errors.New("optionvalues: missing mux")

// Mux is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath joins basePath and the configured route path. Repeated and
// trailing slashes are collapsed so "/admin/" and "admin" mount alike.
func MountPath(basePath string, fns ...OptionFn) string {
	return mountPath(basePath, NewOptions(fns...).RoutePath)
}

// EndpointURL is the GET URL a form field calls to resolve label.
func EndpointURL(basePath, label string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return endpointURL(mountPath(basePath, opts.RoutePath), opts.LabelParam, label)
}

// RegisterRoutes mounts the option value handler under basePath.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return New(fns...).RegisterRoutes(mux, basePath)
}

func mountPath(basePath, routePath string) string {
	return path.Join("/", strings.TrimSpace(basePath), strings.TrimSpace(routePath))
}

func endpointURL(mount, param, label string) string {
	q := url.Values{}
	q.Set(param, label)
	return mount + "?" + q.Encode()
}
