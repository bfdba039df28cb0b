package provider

import "github.com/CodexForgeBR/llm-retry/internal/model"

// CheckAvailability reports whether a backend is registered for each
// provider name. A name missing from the router maps to false.
func (r *Router) CheckAvailability(names ...string) map[string]bool {
	result := make(map[string]bool, len(names))
	for _, name := range names {
		_, ok := r.backends[name]
		result[name] = ok
	}
	return result
}

// Unavailable returns the example models whose provider has no backend,
// in input order.
func (r *Router) Unavailable(targets []model.Example) []model.Example {
	var missing []model.Example
	for _, t := range targets {
		name, _, err := model.Split(t.Model)
		if err != nil || !r.CheckAvailability(name)[name] {
			missing = append(missing, t)
		}
	}
	return missing
}
