// Package nav is the navigation engine: it resolves navigation
// targets, re-verifies the cached session, enforces the route guard,
// drives the shell, and dispatches to the matching view.
package nav

import "strings"

// Target is a navigation target: the fragment portion of the page URL.
type Target string

// The recognized targets. Everything under the protected prefix
// requires authentication; the two edit prefixes are dynamic routes
// whose trailing segment is an entity id.
const (
	TargetLogin       Target = "#/login"
	TargetRegister    Target = "#/register"
	TargetDashboard   Target = "#/dashboard"
	TargetEvents      Target = "#/dashboard/events"
	TargetCreateEvent Target = "#/dashboard/events/create"
	TargetUsers       Target = "#/dashboard/users"
	TargetCreateUser  Target = "#/dashboard/users/create"
	TargetMyEvents    Target = "#/dashboard/my-events"
	TargetNotFound    Target = "#/not-found"

	PrefixEditEvent Target = "#/dashboard/events/edit/"
	PrefixEditUser  Target = "#/dashboard/users/edit/"

	// ProtectedPrefix is the namespace requiring authentication.
	// TargetDashboard doubles as the protected landing target.
	ProtectedPrefix Target = "#/dashboard"
)

// Parse turns a raw fragment into a Target, defaulting to the login
// target when empty.
func Parse(raw string) Target {
	if raw == "" {
		return TargetLogin
	}
	return Target(raw)
}

// Protected reports whether the target is under the protected prefix.
func (t Target) Protected() bool {
	return strings.HasPrefix(string(t), string(ProtectedPrefix))
}

// HasPrefix reports whether the target starts with the given prefix.
func (t Target) HasPrefix(prefix Target) bool {
	return strings.HasPrefix(string(t), string(prefix))
}

// LastSegment returns the trailing path segment, the parameter of a
// dynamic route.
func (t Target) LastSegment() string {
	s := string(t)
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

func (t Target) String() string { return string(t) }

// EditEvent builds the dynamic edit target for an event id.
func EditEvent(id string) Target { return PrefixEditEvent + Target(id) }

// EditUser builds the dynamic edit target for a user id.
func EditUser(id string) Target { return PrefixEditUser + Target(id) }
