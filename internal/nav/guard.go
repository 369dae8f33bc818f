package nav

// Decision is the route guard's verdict for a navigation attempt.
type Decision int

const (
	// Proceed lets the navigation continue to view dispatch.
	Proceed Decision = iota
	// RedirectLogin bounces an unauthenticated visitor off a
	// protected target.
	RedirectLogin
	// RedirectLanding bounces an authenticated visitor off the
	// login and register screens.
	RedirectLanding
)

// Evaluate applies the guard rules in order: protected targets require
// authentication, and authenticated visitors are kept away from the
// login and register screens. Everything else proceeds.
func Evaluate(target Target, authenticated bool) Decision {
	if target.Protected() && !authenticated {
		return RedirectLogin
	}
	if authenticated && (target == TargetLogin || target == TargetRegister) {
		return RedirectLanding
	}
	return Proceed
}
