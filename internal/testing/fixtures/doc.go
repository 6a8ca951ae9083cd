// Package fixtures provides test data factories for the Lumos API.
//
// The fixtures package contains factory functions for creating test data
// with sensible defaults and optional customization.
//
// # Factory Pattern
//
// Create a factory with a database connection:
//
//	f := fixtures.New(tdb.DB)
//
// # Creating Test Data
//
// Factory methods create domain entities:
//
//	user := f.CreateUser(t)                         // Default account
//	profile := f.CreateProfile(t, user)             // Profile for user
//	comment := f.CreateComment(t, user,
//	    model.ForCharacter("harry-potter"))         // Comment on a page
//
// Options customize individual fields:
//
//	user := f.CreateUser(t, func(o *fixtures.UserOpts) {
//	    o.Email = "luna@owlpost.dev"
//	})
//
// Cache and daily feature documents can be seeded directly:
//
//	f.SeedCache(t, "characters", chars, time.Now())
//	f.SeedDailyFeature(t, feature)
package fixtures
