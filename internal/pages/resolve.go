package pages

import "strings"

// Resolve returns remote when it holds any element, otherwise fallback.
// Every section with built-in defaults goes through it.
func Resolve[S ~[]E, E any](remote, fallback S) S {
	if len(remote) > 0 {
		return remote
	}
	return fallback
}

// ResolveString returns remote unless it is blank.
func ResolveString(remote, fallback string) string {
	if strings.TrimSpace(remote) != "" {
		return remote
	}
	return fallback
}
