// Package member contains the Member account aggregate. A member is the owner
// of delivery requests; the password is handled as an opaque hash here, with
// the strength policy and hashing living in the auth package.
package member
