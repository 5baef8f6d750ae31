// Package session holds the client's authentication state: the bearer token
// and the resolved user profile. It is the single source of truth for "who
// is logged in", shared by the transport layer, the command guard and the
// interactive commands.
package session

// Role is the authorization tag attached to a user. It is used for
// client-side gating only; the server re-checks the role on every
// privileged call.
type Role string

const (
	RoleAttendee  Role = "attendee"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// User is the profile record resolved from the API.
type User struct {
	ID       int    `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// UserPatch describes a shallow update of the current user. Nil fields are
// left untouched.
type UserPatch struct {
	FullName *string
	Email    *string
	Role     *Role
}

// Snapshot is an immutable copy of the session state. It is also the
// serialized form persisted between runs.
type Snapshot struct {
	Token           string `json:"token"`
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

func (s Snapshot) clone() Snapshot {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
