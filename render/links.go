package render

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-blockdoc/i18n"
)

// LinkResolver builds the href for a page-link block from the target page's
// slug and the locale being rendered.
type LinkResolver interface {
	PageURL(slug string, locale i18n.Locale) (string, error)
}

// PrefixLinkResolver joins a base path, an optional locale segment and the
// page slug. The zero value resolves to "/<slug>".
type PrefixLinkResolver struct {
	BasePath string
}

// PageURL satisfies LinkResolver.
func (r PrefixLinkResolver) PageURL(slug string, locale i18n.Locale) (string, error) {
	parts := []string{strings.TrimSuffix(r.BasePath, "/")}
	if locale != i18n.LocaleDefault {
		parts = append(parts, string(locale))
	}
	parts = append(parts, strings.TrimPrefix(slug, "/"))
	return strings.Join(parts, "/"), nil
}

// URLKitResolverOptions configures the go-urlkit backed resolver.
type URLKitResolverOptions struct {
	Manager      *urlkit.RouteManager
	DefaultGroup string
	LocaleGroups map[string]string
	Route        string
	SlugParam    string
	LocaleParam  string
}

// URLKitResolver resolves page-link URLs using a go-urlkit RouteManager.
type URLKitResolver struct {
	manager      *urlkit.RouteManager
	defaultGroup string
	localeGroups map[string]string
	route        string
	slugParam    string
	localeParam  string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts URLKitResolverOptions) *URLKitResolver {
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	if opts.Route == "" {
		opts.Route = "page"
	}
	return &URLKitResolver{
		manager:      opts.Manager,
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		localeGroups: opts.LocaleGroups,
		route:        opts.Route,
		slugParam:    opts.SlugParam,
		localeParam:  strings.TrimSpace(opts.LocaleParam),
		groupCache:   make(map[string]*urlkit.Group),
	}
}

// PageURL satisfies LinkResolver by building the URL through the configured
// route manager.
func (r *URLKitResolver) PageURL(slug string, locale i18n.Locale) (string, error) {
	if r == nil || r.manager == nil || slug == "" {
		return "", nil
	}

	groupPath := r.defaultGroup
	if r.localeGroups != nil {
		if path, ok := r.localeGroups[string(locale)]; ok && strings.TrimSpace(path) != "" {
			groupPath = strings.TrimSpace(path)
		}
	}
	if groupPath == "" {
		return "", nil
	}

	group, err := r.groupForPath(groupPath)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := safeBuilder(group, r.route)
	if err != nil {
		return "", err
	}

	builder.WithParam(r.slugParam, slug)
	if r.localeParam != "" && locale != i18n.LocaleDefault {
		builder.WithParam(r.localeParam, string(locale))
	}
	return builder.Build()
}

func (r *URLKitResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("render: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("render: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("render: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
