package session

import (
	"encoding/json"
	"maps"
)

// User is the cached profile of the authenticated account. The backend may
// attach attributes beyond the well-known ones; they are preserved in Extra
// so a round trip through storage loses nothing.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	// Extra holds backend-supplied attributes with no dedicated field.
	Extra map[string]any `json:"-"`
}

var knownUserFields = map[string]struct{}{
	"id":         {},
	"email":      {},
	"role":       {},
	"first_name": {},
	"last_name":  {},
}

// UnmarshalJSON decodes the well-known fields and captures everything else
// into Extra.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	var known alias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*u = User(known)
	for key, val := range raw {
		if _, ok := knownUserFields[key]; ok {
			continue
		}
		var v any
		if err := json.Unmarshal(val, &v); err != nil {
			continue
		}
		if u.Extra == nil {
			u.Extra = make(map[string]any)
		}
		u.Extra[key] = v
	}
	return nil
}

// MarshalJSON flattens Extra back into the top-level object. Well-known
// fields always win over a colliding Extra key.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Extra)+5)
	maps.Copy(out, u.Extra)

	out["id"] = u.ID
	out["email"] = u.Email
	out["role"] = u.Role
	if u.FirstName != "" {
		out["first_name"] = u.FirstName
	}
	if u.LastName != "" {
		out["last_name"] = u.LastName
	}
	return json.Marshal(out)
}

// merge overlays the non-zero fields of partial onto u and returns the result.
func (u User) merge(partial User) User {
	merged := u
	if partial.ID != "" {
		merged.ID = partial.ID
	}
	if partial.Email != "" {
		merged.Email = partial.Email
	}
	if partial.Role != "" {
		merged.Role = partial.Role
	}
	if partial.FirstName != "" {
		merged.FirstName = partial.FirstName
	}
	if partial.LastName != "" {
		merged.LastName = partial.LastName
	}
	if len(partial.Extra) > 0 {
		merged.Extra = make(map[string]any, len(u.Extra)+len(partial.Extra))
		maps.Copy(merged.Extra, u.Extra)
		maps.Copy(merged.Extra, partial.Extra)
	}
	return merged
}
