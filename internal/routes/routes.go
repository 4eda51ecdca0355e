package routes

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	GroupSite = "site"

	RouteHome     = "home"
	RouteServices = "services"
	RouteProjects = "projects"
	RouteProject  = "project"
	RouteContact  = "contact"
)

var ErrBaseURLInvalid = errors.New("routes: base url must be absolute")

// Paths lists the public pages and their patterns.
var Paths = map[string]string{
	RouteHome:     "/",
	RouteServices: "/services",
	RouteProjects: "/projects",
	RouteProject:  "/projects/:slug",
	RouteContact:  "/contact",
}

// Routes builds absolute and relative page URLs through go-urlkit.
type Routes struct {
	manager *urlkit.RouteManager
	group   *urlkit.Group
	base    *url.URL
}

// New registers the site group under baseURL.
func New(baseURL string) (*Routes, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBaseURLInvalid, baseURL)
	}
	paths := make(map[string]string, len(Paths))
	for name, path := range Paths {
		paths[name] = path
	}
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    GroupSite,
				BaseURL: base.String(),
				Paths:   paths,
			},
		},
	})
	group, err := lookupGroup(manager, GroupSite)
	if err != nil {
		return nil, err
	}
	return &Routes{manager: manager, group: group, base: base}, nil
}

// BaseURL returns the configured site origin without a trailing slash.
func (r *Routes) BaseURL() string {
	return r.base.String()
}

// URL builds the absolute URL of route.
func (r *Routes) URL(route string, params map[string]any, query url.Values) (string, error) {
	builder, err := safeBuilder(r.group, route)
	if err != nil {
		return "", err
	}
	for key, val := range params {
		builder.WithParam(key, val)
	}
	for key, values := range query {
		for _, v := range values {
			builder.WithQuery(key, v)
		}
	}
	return builder.Build()
}

// Path builds the site-relative URL of route, query included.
func (r *Routes) Path(route string, params map[string]any, query url.Values) (string, error) {
	absolute, err := r.URL(route, params, query)
	if err != nil {
		return "", err
	}
	parsed, err := url.Parse(absolute)
	if err != nil {
		return "", err
	}
	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}
	return path, nil
}

// Home returns the relative home URL.
func (r *Routes) Home() string { return r.mustPath(RouteHome, nil, nil) }

// Services returns the relative services URL.
func (r *Routes) Services() string { return r.mustPath(RouteServices, nil, nil) }

// Projects returns the relative projects URL, filtered by category when set.
func (r *Routes) Projects(category string) string {
	if strings.TrimSpace(category) == "" {
		return r.mustPath(RouteProjects, nil, nil)
	}
	return r.mustPath(RouteProjects, nil, url.Values{"category": {category}})
}

// Project returns the relative URL of a project detail page.
func (r *Routes) Project(slug string) string {
	return r.mustPath(RouteProject, map[string]any{"slug": slug}, nil)
}

// Contact returns the relative contact URL.
func (r *Routes) Contact() string { return r.mustPath(RouteContact, nil, nil) }

// Canonical returns the absolute form of a site-relative path.
func (r *Routes) Canonical(path string) string {
	if path == "" || path == "/" {
		return r.base.String() + "/"
	}
	return r.base.String() + "/" + strings.TrimLeft(path, "/")
}

// Pattern paths are static, so a failure here means the route table itself
// is broken; fall back to the raw pattern rather than an empty link.
func (r *Routes) mustPath(route string, params map[string]any, query url.Values) string {
	path, err := r.Path(route, params, query)
	if err != nil {
		return Paths[route]
	}
	return path
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, errors.New("routes: urlkit group is nil")
	}
	if _, ok := Paths[route]; !ok {
		return nil, fmt.Errorf("routes: unknown route %q", route)
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}
