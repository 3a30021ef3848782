package domain

import (
	"strings"
)

// Access describes what a route requires of the caller.
type Access uint8

const (
	// AccessAuthenticated admits any established principal.
	AccessAuthenticated Access = iota
	// AccessPublic admits every request, with or without a principal.
	AccessPublic
	// AccessRole admits only principals holding a specific role.
	AccessRole
	// AccessDenied admits nobody. Paths with dot or empty segments get it.
	AccessDenied
)

// Requirement is the access rule attached to a route pattern.
type Requirement struct {
	Access Access
	Role   Role
}

// Public returns a requirement that admits anonymous requests.
func Public() Requirement { return Requirement{Access: AccessPublic} }

// Authenticated returns a requirement that admits any principal.
func Authenticated() Requirement { return Requirement{Access: AccessAuthenticated} }

// HasRole returns a requirement that admits principals holding role.
func HasRole(role Role) Requirement { return Requirement{Access: AccessRole, Role: role} }

// Rule binds a route pattern to a requirement.
//
// Patterns are either exact paths ("/auth/login") or a prefix followed by "/**"
// ("/servers/**"), which matches the prefix itself and everything below it.
type Rule struct {
	Pattern     string
	Requirement Requirement
}

// Policy is a static table of rules. When several rules match, the most specific one
// decides; paths matched by no rule require an authenticated principal.
type Policy struct {
	rules []Rule
}

// NewPolicy creates a policy from rules. Rule order is irrelevant.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: append([]Rule(nil), rules...)}
}

// DefaultPolicy returns the route table of the statistics API.
func DefaultPolicy() *Policy {
	return NewPolicy(
		Rule{Pattern: "/auth/login", Requirement: Public()},
		Rule{Pattern: "/health", Requirement: Public()},
		Rule{Pattern: "/ready", Requirement: Public()},
		Rule{Pattern: "/docs", Requirement: Public()},
		Rule{Pattern: "/docs/**", Requirement: Public()},
		Rule{Pattern: "/v3/api-docs", Requirement: Public()},
		Rule{Pattern: "/v3/api-docs/**", Requirement: Public()},
		Rule{Pattern: "/swagger-ui/**", Requirement: Public()},
		Rule{Pattern: "/swagger-ui.html", Requirement: Public()},
		Rule{Pattern: "/servers/**", Requirement: HasRole(RoleAdmin)},
		Rule{Pattern: "/reports/**", Requirement: HasRole(RoleAdmin)},
		Rule{Pattern: "/players/**", Requirement: HasRole(RolePlayer)},
	)
}

// Requirement returns the requirement of the most specific rule matching requestPath.
// The path is matched as routed, never cleaned: a path with "." or ".." or empty
// segments is denied outright, so the policy cannot see a different route than the
// router dispatches.
func (p *Policy) Requirement(requestPath string) Requirement {
	cleaned, ok := normalizePath(requestPath)
	if !ok {
		return Requirement{Access: AccessDenied}
	}

	best := Authenticated()
	bestScore := -1
	for _, rule := range p.rules {
		score, ok := matchPattern(rule.Pattern, cleaned)
		if ok && score > bestScore {
			best = rule.Requirement
			bestScore = score
		}
	}
	return best
}

// Evaluate decides whether principal may access requestPath. A nil principal means no
// identity was established for the request.
func (p *Policy) Evaluate(requestPath string, principal *Principal) error {
	req := p.Requirement(requestPath)

	if req.Access == AccessPublic {
		return nil
	}
	if principal == nil {
		return ErrUnauthenticated
	}
	if req.Access == AccessDenied {
		return ErrPathRejected
	}
	if req.Access == AccessRole && principal.Role != req.Role {
		return ErrInsufficientRole
	}
	return nil
}

// matchPattern reports whether pattern matches requestPath and how specific the match is.
// Exact patterns always outrank wildcard patterns; among wildcards the longer prefix wins.
func matchPattern(pattern, requestPath string) (int, bool) {
	prefix, wildcard := strings.CutSuffix(pattern, "/**")
	if !wildcard {
		if pattern == requestPath {
			return 1 << 16, true
		}
		return 0, false
	}

	if requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/") {
		return len(prefix), true
	}
	return 0, false
}

// normalizePath adds a missing leading slash and drops one trailing slash. It reports
// false for paths holding ".", ".." or empty segments.
func normalizePath(p string) (string, bool) {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	if p == "/" {
		return p, true
	}
	for segment := range strings.SplitSeq(p[1:], "/") {
		if segment == "" || segment == "." || segment == ".." {
			return "", false
		}
	}
	return p, true
}
