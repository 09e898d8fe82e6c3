package pageconfig

import (
	"github.com/jovian-labs/nbserve/internal/config"
)

// Trait is one enumerated configurable application setting surfaced to the
// browser under its camelCase key. Traits whose snake_case name ends in
// "_url" additionally get a synthesized "full<Name>" entry holding the value
// joined onto the base URL when it is not absolute already.
//
// The trait set is a fixed, explicit list built once at startup; the builder
// iterates it instead of reflecting over application state.
type Trait struct {
	// Name is the snake_case trait name (e.g. "default_url").
	Name string

	// Value is the trait's current value.
	Value any

	// IsURL marks traits carrying an application-relative URL, i.e. names
	// with the "_url" suffix.
	IsURL bool
}

// TraitsFromApp enumerates the configurable traits of the application
// settings. The list is stable: identical inputs yield an identical slice.
func TraitsFromApp(app config.App) []Trait {
	return []Trait{
		{Name: "app_name", Value: app.Name},
		{Name: "app_version", Value: app.Version},
		{Name: "default_url", Value: app.DefaultURL, IsURL: true},
		{Name: "static_dir", Value: app.StaticDir},
		{Name: "custom_css", Value: !app.NoCustomCSS},
		{Name: "expose_app_in_browser", Value: app.ExposeAppInBrowser},
	}
}
