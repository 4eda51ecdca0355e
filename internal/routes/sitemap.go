package routes

import (
	"encoding/xml"
	"net/url"
	"sort"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders the sitemap for the static pages plus one entry per
// project slug. Slugs are sorted and deduplicated.
func (r *Routes) Sitemap(projectSlugs []string) ([]byte, error) {
	set := urlSet{XMLNS: sitemapNamespace}
	static := []struct {
		route    string
		priority string
	}{
		{RouteHome, "1.0"},
		{RouteServices, "0.8"},
		{RouteProjects, "0.8"},
		{RouteContact, "0.5"},
	}
	for _, entry := range static {
		loc, err := r.URL(entry.route, nil, url.Values{})
		if err != nil {
			return nil, err
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: loc, ChangeFreq: "weekly", Priority: entry.priority})
	}

	seen := make(map[string]struct{}, len(projectSlugs))
	slugs := make([]string, 0, len(projectSlugs))
	for _, slug := range projectSlugs {
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		loc, err := r.URL(RouteProject, map[string]any{"slug": slug}, nil)
		if err != nil {
			return nil, err
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: loc, ChangeFreq: "monthly", Priority: "0.6"})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
