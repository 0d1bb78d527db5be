// Package access decides whether a request may proceed, given its method,
// its path and who is calling. Rules are evaluated in order and the first
// match wins.
package access

import (
	"net/http"
	"path"
	"strings"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny_unauthenticated"
	case DenyForbidden:
		return "deny_forbidden"
	default:
		return "unknown"
	}
}

type requirementKind int

const (
	permitAll requirementKind = iota
	authenticated
	hasRole
)

// Requirement is what a matched rule demands from the caller.
type Requirement struct {
	kind requirementKind
	role string
}

func PermitAll() Requirement { return Requirement{kind: permitAll} }

func Authenticated() Requirement { return Requirement{kind: authenticated} }

func HasRole(role string) Requirement { return Requirement{kind: hasRole, role: role} }

// Rule matches requests by method and path pattern. An empty Method matches
// every method. Patterns ending in "/**" match the prefix and everything below
// it; otherwise "*" matches a single path segment.
type Rule struct {
	Method  string
	Pattern string
	Require Requirement
}

// Principal is the caller as seen by the policy.
type Principal struct {
	Authenticated bool
	Roles         []string
}

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy returns the policy guarding the raid-hub API.
func DefaultPolicy() *Policy {
	return NewPolicy(DefaultRules()...)
}

// DefaultRules lists the raid-hub rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Method: http.MethodOptions, Pattern: "/**", Require: PermitAll()},
		{Method: http.MethodPost, Pattern: "/api/users/register", Require: PermitAll()},
		{Method: http.MethodGet, Pattern: "/api/users/check-username/**", Require: PermitAll()},
		{Method: http.MethodGet, Pattern: "/api/youtube/playlist-items", Require: PermitAll()},
		{Method: http.MethodPost, Pattern: "/api/videos", Require: HasRole(domain.RoleAdmin)},
		{Method: http.MethodDelete, Pattern: "/api/videos/*", Require: HasRole(domain.RoleAdmin)},
		{Method: http.MethodGet, Pattern: "/api/**", Require: PermitAll()},
		{Method: http.MethodPost, Pattern: "/login", Require: PermitAll()},
		{Method: http.MethodPost, Pattern: "/logout", Require: PermitAll()},
		{Method: http.MethodGet, Pattern: "/health", Require: PermitAll()},
		{Method: http.MethodGet, Pattern: "/health/ready", Require: PermitAll()},
		{Method: http.MethodGet, Pattern: "/metrics", Require: PermitAll()},
		{Method: http.MethodGet, Pattern: "/swagger/**", Require: PermitAll()},
		{Pattern: "/**", Require: Authenticated()},
	}
}

// Decide applies the first rule matching method and requestPath. A request
// no rule matches must be authenticated.
func (p *Policy) Decide(method, requestPath string, who Principal) Decision {
	cleaned := path.Clean("/" + requestPath)
	for _, r := range p.rules {
		if r.Method != "" && !strings.EqualFold(r.Method, method) {
			continue
		}
		if !Match(r.Pattern, cleaned) {
			continue
		}
		return evaluate(r.Require, who)
	}
	return evaluate(Authenticated(), who)
}

func evaluate(req Requirement, who Principal) Decision {
	switch req.kind {
	case permitAll:
		return Allow
	case hasRole:
		if !who.Authenticated {
			return DenyUnauthenticated
		}
		if !who.HasRole(req.role) {
			return DenyForbidden
		}
		return Allow
	default:
		if !who.Authenticated {
			return DenyUnauthenticated
		}
		return Allow
	}
}

// Match reports whether requestPath matches pattern.
func Match(pattern, requestPath string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/")
	}
	ok, err := path.Match(pattern, requestPath)
	return err == nil && ok
}
