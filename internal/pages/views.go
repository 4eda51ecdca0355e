package pages

import (
	"html/template"

	"github.com/goliatone/socialsync/internal/i18n"
)

// ContactEmail is the public inbox shown in the footer and contact page.
const ContactEmail = "contact@socialsyncmkt.com"

// NavLink is a navigation entry.
type NavLink struct {
	Label  string
	URL    string
	Active bool
}

// LanguageSwitch describes the toggle to the other language.
type LanguageSwitch struct {
	Code  string
	Label string
	Aria  string
	URL   string
}

// Layout is the data shared by every page.
type Layout struct {
	SiteName       string
	Title          string
	Description    string
	Canonical      string
	Language       i18n.Language
	State          i18n.State
	T              i18n.Translations
	Switch         LanguageSwitch
	Theme          ThemeView
	ThemeToggleURL string
	Nav            []NavLink
	ServiceLinks   []NavLink
	ContactEmail   string
	Year           int
}

// Page pairs the layout with a page body.
type Page struct {
	Layout Layout
	Body   any
}

type HeroView struct {
	Title    string
	Subtitle string
	CTA      string
	CTAURL   string
	ImageURL string
}

type ServiceCard struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Icon        string
	IconSVG     template.HTML
	Features    []string
	ImageURL    string
	URL         string
	ForceLight  bool
	Reverse     bool
}

type ProjectCard struct {
	ID           string
	Title        string
	Slug         string
	URL          string
	Description  string
	CategoryID   string
	CategoryName string
	ImageURL     string
}

type TestimonialCard struct {
	ID        string
	Name      string
	Position  string
	Company   string
	Content   string
	AvatarURL string
	Initial   string
}

// ContactView drives both the contact page and the home contact section.
type ContactView struct {
	Form     i18n.ContactForm
	Action   string
	Email    string
	Phone    string
	PhoneURL template.URL
}

type HomeView struct {
	Hero         HeroView
	Services     []ServiceCard
	ServicesURL  string
	Projects     []ProjectCard
	ProjectsURL  string
	Testimonials []TestimonialCard
	Contact      ContactView
}

type ServicesView struct {
	Services   []ServiceCard
	ContactURL string
}

type CategoryFilter struct {
	ID     string
	Name   string
	URL    string
	Active bool
}

type ProjectsView struct {
	Filters    []CategoryFilter
	Projects   []ProjectCard
	Selected   string
	ForceLight bool
}

type GalleryImage struct {
	URL string
	Alt string
}

type ProjectView struct {
	Title        string
	PageTitle    string
	Description  string
	HeroURL      string
	Client       string
	Date         string
	CategoryName string
	Tags         []string
	Gallery      []GalleryImage
	Content      template.HTML
	Results      template.HTML
	Testimonial  string
	BackURL      string
}
