// Package auth provides access token issuance and verification, the signup
// password policy, and bcrypt password hashing. The HTTP middleware turns a
// bearer token into a MemberPrincipal; everything below the boundary receives
// that principal as an explicit argument.
package auth
