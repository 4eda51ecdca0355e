// Package http serves the public site.
//
// Routes are registered on a stdlib ServeMux with method patterns:
//   - Pages: /, /services, /projects, /projects/{slug}, /contact
//   - Contact form: POST /api/contact
//   - Preferences: /language/{code}, /theme/{mode}
//   - Assets: /placeholder.svg, /sitemap.xml, /healthz
//
// Host applications can mount the handler returned by Site.Handler or call
// Register on their own mux.
package http
