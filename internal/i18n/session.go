package i18n

import (
	"context"
	"fmt"
)

// State is the loading state of a Session.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Persister stores the chosen language on the client, e.g. in a cookie.
type Persister interface {
	SaveLanguage(lang Language) error
}

// PersisterFunc adapts a function to Persister.
type PersisterFunc func(lang Language) error

func (f PersisterFunc) SaveLanguage(lang Language) error {
	return f(lang)
}

// Snapshot is an immutable view of a Session.
type Snapshot struct {
	Language     Language
	State        State
	Source       Source
	Translations Translations
}

// Session holds the translation state of one visitor for one request. It
// is not safe for concurrent use.
type Session struct {
	loader    Loader
	persister Persister

	language     Language
	state        State
	source       Source
	translations Translations
}

// NewSession starts in the loading state with the default tree of lang.
func NewSession(loader Loader, lang Language, persister Persister) *Session {
	if lang != Portuguese && lang != English {
		lang = DefaultLanguage
	}
	return &Session{
		loader:       loader,
		persister:    persister,
		language:     lang,
		state:        StateLoading,
		source:       SourceDefault,
		translations: Defaults(lang),
	}
}

// Start loads the active language and moves the session to ready.
func (s *Session) Start(ctx context.Context) Snapshot {
	s.state = StateLoading
	if s.loader != nil {
		s.translations, s.source = s.loader.Load(ctx, s.language)
	} else {
		s.translations, s.source = Defaults(s.language), SourceDefault
	}
	s.state = StateReady
	return s.Snapshot()
}

// SetLanguage switches language: it re-enters loading, persists the choice
// and reloads. A persistence failure is returned after the switch completes.
func (s *Session) SetLanguage(ctx context.Context, lang Language) (Snapshot, error) {
	if lang != Portuguese && lang != English {
		return s.Snapshot(), fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	s.language = lang
	s.state = StateLoading
	s.translations, s.source = Defaults(lang), SourceDefault

	var persistErr error
	if s.persister != nil {
		if err := s.persister.SaveLanguage(lang); err != nil {
			persistErr = fmt.Errorf("i18n: persist language: %w", err)
		}
	}
	return s.Start(ctx), persistErr
}

func (s *Session) Language() Language { return s.language }

func (s *Session) State() State { return s.state }

func (s *Session) Source() Source { return s.source }

// Translations is always fully populated, whatever the state.
func (s *Session) Translations() Translations { return s.translations }

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Language:     s.language,
		State:        s.state,
		Source:       s.source,
		Translations: s.translations,
	}
}
