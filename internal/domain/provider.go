package domain

import "fmt"

// ProviderKind identifies an external content source integration.
type ProviderKind string

const (
	ProviderRSS     ProviderKind = "rss"
	ProviderYoutube ProviderKind = "youtube"
)

// ParseProvider validates a provider tag received from the outside.
func ParseProvider(s string) (ProviderKind, error) {
	switch ProviderKind(s) {
	case ProviderRSS:
		return ProviderRSS, nil
	case ProviderYoutube:
		return ProviderYoutube, nil
	default:
		return "", fmt.Errorf("unknown provider %q", s)
	}
}
