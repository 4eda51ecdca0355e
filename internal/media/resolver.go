package media

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidReference reports an asset reference that does not follow the image-{id}-{W}x{H}-{ext} shape.
var ErrInvalidReference = errors.New("media: invalid image reference")

const defaultCDNBase = "https://cdn.sanity.io/images"

// Display sizes used by the page renderers.
const (
	ServiceWidth, ServiceHeight         = 800, 800
	CardWidth, CardHeight               = 800, 600
	HeroWidth, HeroHeight               = 1920, 1080
	GalleryWidth, GalleryHeight         = 800, 600
	AvatarWidth, AvatarHeight           = 100, 100
	ProjectHeroWidth, ProjectHeroHeight = 1920, 1080
)

// Resolver turns image references into fetchable URLs. It never performs
// network calls.
type Resolver struct {
	projectID string
	dataset   string
	base      string
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithCDNBase overrides the image CDN base URL.
func WithCDNBase(base string) ResolverOption {
	return func(r *Resolver) {
		if trimmed := strings.TrimRight(strings.TrimSpace(base), "/"); trimmed != "" {
			r.base = trimmed
		}
	}
}

// NewResolver builds a resolver for the given project and dataset.
func NewResolver(projectID, dataset string, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		projectID: strings.TrimSpace(projectID),
		dataset:   strings.TrimSpace(dataset),
		base:      defaultCDNBase,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// URL returns a sized URL for img, or the placeholder when img is absent or
// its reference cannot be resolved.
func (r *Resolver) URL(img *Image, width, height int) string {
	if !img.Present() {
		return Placeholder(width, height)
	}
	if img.Asset.URL != "" {
		return withSize(img.Asset.URL, width, height)
	}
	ref := img.Asset.Ref
	if ref == "" {
		ref = img.Asset.ID
	}
	parsed, err := ParseReference(ref)
	if err != nil || r == nil || r.projectID == "" {
		return Placeholder(width, height)
	}
	raw := r.base + "/" + url.PathEscape(r.projectID) + "/" + url.PathEscape(r.dataset) + "/" + parsed.Filename()
	return withSize(raw, width, height)
}

// Placeholder returns the placeholder image path for the requested size.
func Placeholder(width, height int) string {
	return "/placeholder.svg?height=" + strconv.Itoa(height) + "&width=" + strconv.Itoa(width)
}

func withSize(raw string, width, height int) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return Placeholder(width, height)
	}
	query := parsed.Query()
	query.Set("w", strconv.Itoa(width))
	query.Set("h", strconv.Itoa(height))
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
