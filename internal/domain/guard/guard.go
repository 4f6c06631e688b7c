// Package guard implements the request-time route-guarding policy: a pure
// decision over (path classification, session indicator presence). It never
// inspects the indicator's value; a forged but present indicator passes here
// and only fails at the authoritative session check deeper in the stack. That
// split keeps redirects cheap and flicker-free and is a deliberate boundary,
// not an oversight.
package guard

import "strings"

// Disposition is the guard's three-way decision for an intercepted request.
type Disposition int

const (
	// Allow lets the request proceed to page logic.
	Allow Disposition = iota

	// RedirectToLogin sends an unauthenticated request on a protected path
	// to the login page.
	RedirectToLogin

	// RedirectToDashboard sends an authenticated request on a public path
	// (login, register) to the dashboard.
	RedirectToDashboard
)

// String returns the disposition name, for logs.
func (d Disposition) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToDashboard:
		return "redirect_to_dashboard"
	default:
		return "unknown"
	}
}

// Policy holds the configured path sets the guard intercepts. Paths matching
// neither set fall outside the guard's matcher scope and are implicitly
// allowed by omission (the middleware is simply not consulted for them).
type Policy struct {
	publicPaths       map[string]struct{}
	protectedPrefixes []string
}

// NewPolicy builds a Policy from the configured public paths (exact match)
// and protected path prefixes.
func NewPolicy(publicPaths, protectedPrefixes []string) *Policy {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return &Policy{
		publicPaths:       public,
		protectedPrefixes: protectedPrefixes,
	}
}

// Intercepts reports whether the path falls inside the guard's matcher scope.
func (p *Policy) Intercepts(path string) bool {
	if _, ok := p.publicPaths[path]; ok {
		return true
	}

	return p.matchesProtected(path)
}

// Decide evaluates the guard policy for an intercepted path, in precedence
// order:
//  1. public path with an indicator present -> RedirectToDashboard
//  2. non-public path with no indicator     -> RedirectToLogin
//  3. otherwise                             -> Allow
//
// hasSession is presence only; validity is someone else's job.
func (p *Policy) Decide(path string, hasSession bool) Disposition {
	_, isPublic := p.publicPaths[path]

	if isPublic && hasSession {
		return RedirectToDashboard
	}

	if !isPublic && !hasSession {
		return RedirectToLogin
	}

	return Allow
}

func (p *Policy) matchesProtected(path string) bool {
	for _, prefix := range p.protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	return false
}
