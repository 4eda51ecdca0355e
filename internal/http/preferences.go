package http

import (
	"net/http"
	"time"

	"github.com/goliatone/socialsync/internal/i18n"
	"github.com/goliatone/socialsync/internal/pages"
)

const (
	LanguageCookie = "language"
	ThemeCookie    = "theme"

	preferenceMaxAge = 365 * 24 * time.Hour
)

// languageOf returns the visitor's language from the cookie, or the site default.
func (site *Site) languageOf(r *http.Request) i18n.Language {
	cookie, err := r.Cookie(LanguageCookie)
	if err != nil {
		return site.defaultLanguage
	}
	return i18n.ParseLanguageOr(cookie.Value, site.defaultLanguage)
}

// themeOf returns a fresh theme state from the theme cookie.
func (site *Site) themeOf(r *http.Request) *pages.ThemeState {
	cookie, err := r.Cookie(ThemeCookie)
	if err != nil {
		return pages.NewThemeState("")
	}
	return pages.NewThemeState(cookie.Value)
}

// session builds the translation session for one request. Language
// changes are persisted to the response as a cookie.
func (site *Site) session(w http.ResponseWriter, r *http.Request) *i18n.Session {
	persister := i18n.PersisterFunc(func(lang i18n.Language) error {
		http.SetCookie(w, site.preferenceCookie(LanguageCookie, lang.String()))
		return nil
	})
	return i18n.NewSession(site.translations, site.languageOf(r), persister)
}

func (site *Site) preferenceCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(preferenceMaxAge / time.Second),
		HttpOnly: true,
		Secure:   site.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (site *Site) handleLanguage(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.ParseLanguage(r.PathValue("code"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported language")
		return
	}
	if _, err := site.session(w, r).SetLanguage(r.Context(), lang); err != nil {
		site.logger.Warn("http.language.persist_failed", "language", lang, "error", err)
	}
	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

func (site *Site) handleTheme(w http.ResponseWriter, r *http.Request) {
	mode, ok := pages.ParseTheme(r.PathValue("mode"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Unsupported theme")
		return
	}
	http.SetCookie(w, site.preferenceCookie(ThemeCookie, mode))
	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}
