package model

import (
	"fmt"
	"strings"
)

// IsProvider reports whether name is a recognised provider prefix.
func IsProvider(name string) bool {
	for _, p := range Providers() {
		if p == name {
			return true
		}
	}
	return false
}

// Split separates a model identifier into its provider and upstream name.
//
// Rules:
//   - A recognised prefix followed by "/" selects that provider; the rest,
//     which may itself contain slashes, is the upstream name.
//   - An identifier without any "/" targets OpenAI directly.
//   - Anything else is an error.
func Split(id string) (provider, upstream string, err error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "", fmt.Errorf("model identifier is empty")
	}

	idx := strings.Index(id, "/")
	if idx < 0 {
		return OpenAI, id, nil
	}

	provider = strings.ToLower(id[:idx])
	upstream = id[idx+1:]
	if !IsProvider(provider) {
		return "", "", fmt.Errorf("model %q: unrecognised provider %q (want one of %s)",
			id, provider, strings.Join(Providers(), ", "))
	}
	if strings.TrimSpace(upstream) == "" {
		return "", "", fmt.Errorf("model %q: missing model name after provider %q", id, provider)
	}
	return provider, upstream, nil
}

// Validate checks that id can be routed to a provider.
func Validate(id string) error {
	_, _, err := Split(id)
	return err
}
