package media

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Asset mirrors a content store image asset. Expanded assets carry URL and
// ID; unexpanded ones only carry Ref.
type Asset struct {
	ID  string `json:"_id,omitempty"`
	Ref string `json:"_ref,omitempty"`
	URL string `json:"url,omitempty"`
}

// Image is an image field as returned by content queries.
type Image struct {
	Type  string `json:"_type,omitempty"`
	Key   string `json:"_key,omitempty"`
	Asset *Asset `json:"asset,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

// Present reports whether the image carries any usable asset reference.
func (img *Image) Present() bool {
	if img == nil || img.Asset == nil {
		return false
	}
	return img.Asset.URL != "" || img.Asset.Ref != "" || img.Asset.ID != ""
}

// Reference is a parsed image asset id of the form image-{id}-{W}x{H}-{ext}.
type Reference struct {
	ID     string
	Width  int
	Height int
	Format string
}

var refPattern = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+)x(\d+)-([a-z0-9]+)$`)

// ParseReference parses an image asset id or _ref.
func ParseReference(ref string) (Reference, error) {
	matches := refPattern.FindStringSubmatch(strings.TrimSpace(ref))
	if matches == nil {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}
	width, _ := strconv.Atoi(matches[2])
	height, _ := strconv.Atoi(matches[3])
	return Reference{ID: matches[1], Width: width, Height: height, Format: matches[4]}, nil
}

// Filename returns the CDN file name for the reference.
func (r Reference) Filename() string {
	return fmt.Sprintf("%s-%dx%d.%s", r.ID, r.Width, r.Height, r.Format)
}
