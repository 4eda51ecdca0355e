package pages

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goliatone/socialsync/internal/content"
	"github.com/goliatone/socialsync/internal/i18n"
	"github.com/goliatone/socialsync/internal/logging"
	"github.com/goliatone/socialsync/internal/markdown"
	"github.com/goliatone/socialsync/internal/media"
	"github.com/goliatone/socialsync/internal/routes"
	"github.com/goliatone/socialsync/pkg/interfaces"
)

const (
	contactPhone                 = "+55 (11) 99999-9999"
	contactPhoneURL template.URL = "tel:+5511999999999"
)

// ErrProjectNotFound is returned when no project matches the requested slug.
var ErrProjectNotFound = errors.New("pages: project not found")

// Option customises a Renderer.
type Option func(*Renderer)

// WithLogger sets the renderer logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithSiteName overrides the site name used in titles.
func WithSiteName(name string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(name) != "" {
			r.siteName = strings.TrimSpace(name)
		}
	}
}

// WithThemes sets the go-theme selector used for layouts.
func WithThemes(themes *Themes) Option {
	return func(r *Renderer) {
		r.themes = themes
	}
}

// Renderer builds page view models from content, falling back to built-in
// entities whenever the content store has nothing to offer. It is safe for
// concurrent use.
type Renderer struct {
	fetcher  content.Fetcher
	images   *media.Resolver
	routes   *routes.Routes
	markdown *markdown.Renderer
	themes   *Themes
	logger   interfaces.Logger
	now      func() time.Time
	siteName string
}

// NewRenderer wires a renderer. fetcher may be nil, in which case every
// section uses its defaults.
func NewRenderer(fetcher content.Fetcher, images *media.Resolver, urls *routes.Routes, opts ...Option) *Renderer {
	r := &Renderer{
		fetcher:  fetcher,
		images:   images,
		routes:   urls,
		markdown: markdown.NewRenderer(markdown.Options{SafeMode: true}),
		themes:   NewThemes(),
		logger:   logging.NoOp(),
		now:      time.Now,
		siteName: "Social Sync",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SiteName returns the configured site name.
func (r *Renderer) SiteName() string { return r.siteName }

// Routes returns the URL builder.
func (r *Renderer) Routes() *routes.Routes { return r.routes }

// Layout builds the shared page frame for path.
func (r *Renderer) Layout(snap i18n.Snapshot, theme *ThemeState, path, title string) Layout {
	tr := snap.Translations
	lang := snap.Language
	other := lang.Alternate()
	pageTitle := r.siteName
	if title != "" {
		pageTitle = title
	}
	toggle := ThemeLight
	if theme.Preference() == ThemeLight {
		toggle = ThemeDark
	}

	nav := []NavLink{
		{Label: tr.Navigation.Home, URL: r.routes.Home()},
		{Label: tr.Navigation.Services, URL: r.routes.Services()},
		{Label: tr.Navigation.Projects, URL: r.routes.Projects("")},
		{Label: tr.Navigation.Contact, URL: r.routes.Contact()},
	}
	for i := range nav {
		nav[i].Active = isActive(nav[i].URL, path)
	}

	services := r.routes.Services()
	return Layout{
		SiteName:    r.siteName,
		Title:       pageTitle,
		Description: tr.Hero.Title,
		Canonical:   r.routes.Canonical(path),
		Language:    lang,
		State:       snap.State,
		T:           tr,
		Switch: LanguageSwitch{
			Code:  other.String(),
			Label: lang.SwitchLabel(),
			Aria:  lang.SwitchAria(),
			URL:   "/language/" + other.String(),
		},
		Theme:          r.themes.View(theme),
		ThemeToggleURL: "/theme/" + toggle,
		Nav:            nav,
		ServiceLinks: []NavLink{
			{Label: tr.Services.SocialMedia.Title, URL: services + "#" + ServiceSocialMedia},
			{Label: tr.Services.PaidTraffic.Title, URL: services + "#" + ServicePaidTraffic},
			{Label: tr.Services.WebDevelopment.Title, URL: services + "#" + ServiceWebDevelopment},
			{Label: tr.Services.Photography.Title, URL: services + "#" + ServicePhotography},
		},
		ContactEmail: ContactEmail,
		Year:         r.now().Year(),
	}
}

func isActive(link, path string) bool {
	if i := strings.IndexByte(link, '?'); i >= 0 {
		link = link[:i]
	}
	if link == "/" {
		return path == "/"
	}
	return path == link || strings.HasPrefix(path, link+"/")
}

// Home builds the home page from the homepage document.
func (r *Renderer) Home(ctx context.Context, snap i18n.Snapshot) HomeView {
	tr := snap.Translations
	home, _ := fetch[content.Homepage](ctx, r, content.HomepageQuery, nil)

	hero := content.Hero{}
	if home.Hero != nil {
		hero = *home.Hero
	}

	services := Resolve(home.FeaturedServices, DefaultServices(tr))
	projects := Resolve(home.FeaturedProjects, DefaultProjects())
	testimonials := Resolve(home.FeaturedTestimonials, DefaultTestimonials())

	view := HomeView{
		Hero: HeroView{
			Title:    ResolveString(hero.Title, tr.Hero.Title),
			Subtitle: ResolveString(hero.Subtitle, tr.Hero.Tagline),
			CTA:      tr.Hero.CTA,
			CTAURL:   r.routes.Services(),
			ImageURL: r.imageURL(hero.Image, media.HeroWidth, media.HeroHeight),
		},
		ServicesURL: r.routes.Services(),
		ProjectsURL: r.routes.Projects(""),
		Contact:     r.Contact(snap),
	}
	for i, service := range services {
		view.Services = append(view.Services, r.serviceCard(service, i))
	}
	for _, project := range projects {
		view.Projects = append(view.Projects, r.projectCard(project))
	}
	for _, testimonial := range testimonials {
		view.Testimonials = append(view.Testimonials, r.testimonialCard(testimonial))
	}
	return view
}

// Services builds the services page. Known services keep their fixed order;
// any other remote services follow.
func (r *Renderer) Services(ctx context.Context, snap i18n.Snapshot) ServicesView {
	remote, _ := fetch[[]content.Service](ctx, r, content.ServicesQuery, nil)
	services := Resolve(remote, DefaultServices(snap.Translations))

	ordered := make([]content.Service, 0, len(services))
	used := make(map[int]bool, len(services))
	for _, key := range ServiceOrder {
		for i, service := range services {
			if used[i] {
				continue
			}
			if service.ID == key || service.Slug.Current == key {
				ordered = append(ordered, service)
				used[i] = true
				break
			}
		}
	}
	for i, service := range services {
		if !used[i] {
			ordered = append(ordered, service)
		}
	}

	view := ServicesView{ContactURL: r.routes.Contact()}
	for i, service := range ordered {
		view.Services = append(view.Services, r.serviceCard(service, i))
	}
	return view
}

// Projects builds the portfolio page filtered by categoryID. An empty
// categoryID shows every project.
func (r *Renderer) Projects(ctx context.Context, snap i18n.Snapshot, categoryID string) ProjectsView {
	remote, _ := fetch[[]content.Project](ctx, r, content.ProjectsQuery, nil)
	projects := Resolve(remote, DefaultProjects())

	categories, _ := fetch[[]content.Category](ctx, r, content.CategoriesQuery, nil)
	categories = Resolve(categories, categoriesOf(projects))

	categoryID = strings.TrimSpace(categoryID)
	view := ProjectsView{Selected: categoryID}
	view.Filters = append(view.Filters, CategoryFilter{
		Name:   "All",
		URL:    r.routes.Projects(""),
		Active: categoryID == "",
	})
	for _, category := range categories {
		active := category.ID == categoryID
		view.Filters = append(view.Filters, CategoryFilter{
			ID:     category.ID,
			Name:   category.Name,
			URL:    r.routes.Projects(category.ID),
			Active: active,
		})
		if active && isPhotography(category) {
			view.ForceLight = true
		}
	}
	if categoryID == ServicePhotography {
		view.ForceLight = true
	}

	for _, project := range projects {
		if categoryID != "" && (project.Category == nil || project.Category.ID != categoryID) {
			continue
		}
		view.Projects = append(view.Projects, r.projectCard(project))
	}
	return view
}

// Project builds a project detail page. It returns ErrProjectNotFound when
// neither the content store nor the built-in portfolio has slug.
func (r *Renderer) Project(ctx context.Context, snap i18n.Snapshot, slug string) (ProjectView, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ProjectView{}, ErrProjectNotFound
	}
	project, ok := fetch[content.Project](ctx, r, content.ProjectBySlugQuery, content.Params{"slug": slug})
	if !ok {
		found := false
		for _, candidate := range DefaultProjects() {
			if candidate.Slug.Current == slug {
				project, found = candidate, true
				break
			}
		}
		if !found {
			return ProjectView{}, ErrProjectNotFound
		}
	}

	view := ProjectView{
		Title:       project.Title,
		PageTitle:   fmt.Sprintf("%s | %s", project.Title, r.siteName),
		Description: project.Description,
		HeroURL:     r.imageURL(project.MainImage, media.ProjectHeroWidth, media.ProjectHeroHeight),
		Client:      project.Client,
		Date:        FormatDate(project.Date, snap.Language),
		Tags:        project.Tags,
		Testimonial: project.Testimonial,
		BackURL:     r.routes.Projects(""),
	}
	if project.Category != nil {
		view.CategoryName = project.Category.Name
	}
	for i := range project.Gallery {
		view.Gallery = append(view.Gallery, GalleryImage{
			URL: r.imageURL(&project.Gallery[i], media.GalleryWidth, media.GalleryHeight),
			Alt: fmt.Sprintf("%s - Image %d", project.Title, i+1),
		})
	}

	var err error
	if view.Content, err = RichHTML(r.markdown, project.Content, r.images); err != nil {
		r.logger.Warn("pages.render.content_failed", "slug", slug, "error", err)
	}
	if view.Results, err = RichHTML(r.markdown, project.Results, r.images); err != nil {
		r.logger.Warn("pages.render.results_failed", "slug", slug, "error", err)
	}
	return view, nil
}

// Contact builds the contact form view.
func (r *Renderer) Contact(snap i18n.Snapshot) ContactView {
	return ContactView{
		Form:     snap.Translations.Contact.Form,
		Action:   "/api/contact",
		Email:    ContactEmail,
		Phone:    contactPhone,
		PhoneURL: contactPhoneURL,
	}
}

// ProjectSlugs lists the slugs of the projects currently shown.
func (r *Renderer) ProjectSlugs(ctx context.Context) []string {
	remote, _ := fetch[[]content.Project](ctx, r, content.ProjectsQuery, nil)
	projects := Resolve(remote, DefaultProjects())
	slugs := make([]string, 0, len(projects))
	for _, project := range projects {
		slugs = append(slugs, project.Slug.Current)
	}
	return slugs
}

// FormatDate renders a content date in the visitor's language. Unparseable
// values are returned as-is.
func FormatDate(raw string, lang i18n.Language) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	var (
		parsed time.Time
		err    error
	)
	for _, layout := range []string{"2006-01-02", time.RFC3339Nano} {
		if parsed, err = time.Parse(layout, raw); err == nil {
			break
		}
	}
	if err != nil {
		return raw
	}
	if lang == i18n.English {
		return parsed.Format("1/2/2006")
	}
	return parsed.Format("02/01/2006")
}

// fetch reads query into T, logging failures. ok is false on error or when
// the store returned nothing, so callers fall back the same way in both cases.
func fetch[T any](ctx context.Context, r *Renderer, query content.Query, params content.Params) (T, bool) {
	value, ok, err := content.Get[T](ctx, r.fetcher, query, params)
	if err != nil {
		r.logger.Warn("pages.fetch.fallback", "query", query.Name, "error", err)
		var zero T
		return zero, false
	}
	return value, ok
}

func (r *Renderer) imageURL(img *media.Image, width, height int) string {
	if r.images == nil {
		return media.Placeholder(width, height)
	}
	return r.images.URL(img, width, height)
}

func (r *Renderer) serviceCard(service content.Service, index int) ServiceCard {
	slug := service.Slug.Current
	icon := IconKey(service.Icon)
	return ServiceCard{
		ID:          service.ID,
		Title:       service.Title,
		Slug:        slug,
		Description: service.Description,
		Icon:        icon,
		IconSVG:     IconSVG(icon),
		Features:    service.Features,
		ImageURL:    r.imageURL(service.Image, media.ServiceWidth, media.ServiceHeight),
		URL:         r.routes.Services() + "#" + slug,
		ForceLight:  slug == ServicePhotography,
		Reverse:     index%2 == 1,
	}
}

func (r *Renderer) projectCard(project content.Project) ProjectCard {
	card := ProjectCard{
		ID:          project.ID,
		Title:       project.Title,
		Slug:        project.Slug.Current,
		URL:         r.routes.Project(project.Slug.Current),
		Description: project.Description,
		ImageURL:    r.imageURL(project.MainImage, media.CardWidth, media.CardHeight),
	}
	if project.Category != nil {
		card.CategoryID = project.Category.ID
		card.CategoryName = project.Category.Name
	}
	return card
}

func (r *Renderer) testimonialCard(t content.Testimonial) TestimonialCard {
	initial := ""
	if first, _ := utf8.DecodeRuneInString(t.Name); first != utf8.RuneError {
		initial = string(first)
	}
	return TestimonialCard{
		ID:        t.ID,
		Name:      t.Name,
		Position:  t.Position,
		Company:   t.Company,
		Content:   t.Content,
		AvatarURL: r.imageURL(t.Avatar, media.AvatarWidth, media.AvatarHeight),
		Initial:   initial,
	}
}

func categoriesOf(projects []content.Project) []content.Category {
	seen := map[string]bool{}
	var out []content.Category
	for _, project := range projects {
		if project.Category == nil || project.Category.ID == "" || seen[project.Category.ID] {
			continue
		}
		seen[project.Category.ID] = true
		out = append(out, *project.Category)
	}
	return out
}

func isPhotography(category content.Category) bool {
	return category.ID == ServicePhotography ||
		category.Slug.Current == ServicePhotography ||
		strings.EqualFold(category.Name, "Photography") ||
		strings.EqualFold(category.Name, "Fotografia")
}
