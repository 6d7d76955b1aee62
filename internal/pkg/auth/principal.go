package auth

// MemberPrincipal is the authenticated caller's identity as extracted from a
// verified access token. Use cases receive it explicitly; nothing reads caller
// identity from ambient state.
type MemberPrincipal struct {
	ID      int64
	LoginID string
	Name    string
	Roles   []string
}

// HasRole reports whether the principal carries the given role.
func (p MemberPrincipal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
