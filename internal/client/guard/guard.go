// Package guard decides whether the current session may enter a protected
// view. It only reads already-resolved session state and performs no I/O.
package guard

import "github.com/eventflow-dev/eventflow/internal/client/session"

// Decision is the outcome of a guard check.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends the visitor to the login view. The requested
	// destination is not preserved.
	RedirectLogin
	// RedirectHome sends an authenticated but unauthorized user home.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Check gates access to a view. An empty allowedRoles set means any
// authenticated role may enter.
func Check(snap session.Snapshot, allowedRoles []session.Role) Decision {
	if !snap.IsAuthenticated {
		return RedirectLogin
	}

	if len(allowedRoles) == 0 {
		return Allow
	}

	if snap.User != nil {
		for _, r := range allowedRoles {
			if snap.User.Role == r {
				return Allow
			}
		}
	}

	return RedirectHome
}
