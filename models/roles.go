package models

import "fmt"

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleVoter Role = "Voter"
)

// Capability names an action guarded by the role gate.
type Capability int

const (
	CapCastVote Capability = iota + 1
	CapManageCandidates
	CapManageUsers
	CapResetElection
)

var capabilityNames = map[Capability]string{
	CapCastVote:         "cast_vote",
	CapManageCandidates: "manage_candidates",
	CapManageUsers:      "manage_users",
	CapResetElection:    "reset_election",
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("capability(%d)", int(c))
}

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapCastVote:         true,
		CapManageCandidates: true,
		CapManageUsers:      true,
		CapResetElection:    true,
	},
	RoleVoter: {
		CapCastVote: true,
	},
}

// ParseRole converts a stored or requested role name into a Role.
// Matching is exact; "admin" is not "Admin".
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleCapabilities[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can reports whether the role grants the capability. Unknown roles grant nothing.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}
