package i18n

import (
	"reflect"
	"sort"
	"strings"
)

// Translations is the UI string tree of one language. Being a struct, every
// language has the same leaf paths.
type Translations struct {
	Navigation   Navigation   `json:"navigation"`
	Hero         Hero         `json:"hero"`
	Services     Services     `json:"services"`
	Projects     Projects     `json:"projects"`
	Testimonials Testimonials `json:"testimonials"`
	Contact      Contact      `json:"contact"`
	Footer       Footer       `json:"footer"`
}

type Navigation struct {
	Home     string `json:"home"`
	Services string `json:"services"`
	Projects string `json:"projects"`
	Contact  string `json:"contact"`
}

type Hero struct {
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
	CTA     string `json:"cta"`
}

type ServiceCopy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Services struct {
	Title          string      `json:"title"`
	ViewAll        string      `json:"viewAll"`
	ContactUs      string      `json:"contactUs"`
	SocialMedia    ServiceCopy `json:"socialMedia"`
	PaidTraffic    ServiceCopy `json:"paidTraffic"`
	WebDevelopment ServiceCopy `json:"webDevelopment"`
	Photography    ServiceCopy `json:"photography"`
}

type Projects struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ViewAll  string `json:"viewAll"`
}

type Testimonials struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type ContactForm struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	Send         string `json:"send"`
	MessageSent  string `json:"messageSent"`
	MessageError string `json:"messageError"`
}

type Contact struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Form     ContactForm `json:"form"`
}

type Footer struct {
	Tagline           string `json:"tagline"`
	QuickLinks        string `json:"quickLinks"`
	AllRightsReserved string `json:"allRightsReserved"`
	PrivacyPolicy     string `json:"privacyPolicy"`
	TermsOfService    string `json:"termsOfService"`
}

// Leaves flattens the tree into dotted json paths.
func (t Translations) Leaves() map[string]string {
	out := make(map[string]string)
	collectLeaves(reflect.ValueOf(t), "", out)
	return out
}

// LeafPaths returns the sorted leaf paths of t.
func LeafPaths(t Translations) []string {
	leaves := t.Leaves()
	paths := make([]string, 0, len(leaves))
	for path := range leaves {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Complete reports whether every leaf carries text.
func (t Translations) Complete() bool {
	for _, value := range t.Leaves() {
		if strings.TrimSpace(value) == "" {
			return false
		}
	}
	return true
}

func collectLeaves(v reflect.Value, prefix string, out map[string]string) {
	switch v.Kind() {
	case reflect.Struct:
		typ := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := typ.Field(i)
			name := strings.Split(field.Tag.Get("json"), ",")[0]
			if name == "" {
				name = field.Name
			}
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}
			collectLeaves(v.Field(i), path, out)
		}
	case reflect.String:
		out[prefix] = v.String()
	}
}
