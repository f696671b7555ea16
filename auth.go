package influmatch

import (
	"context"
	"fmt"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
	"github.com/influmatch/influmatch-go/pkg/session"
)

// AuthService is the login/registration flow and the only SDK component
// that writes credentials into the session store.
type AuthService struct {
	api     *apiclient.Client
	session *session.Store
}

// Credentials are the login inputs.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration are the sign-up inputs. Role is "creator" or "brand".
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// AuthResponse is the backend's answer to a successful login or
// registration.
type AuthResponse struct {
	User        session.User `json:"user"`
	AccessToken string       `json:"access_token"`
	SessionID   string       `json:"session_id"`
}

// ActiveSession describes one live session of the current account.
type ActiveSession struct {
	SessionID      string `json:"sessionId"`
	UserID         string `json:"userId"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	CreatedAt      int64  `json:"createdAt"`
	LastAccessedAt int64  `json:"lastAccessedAt"`
	UserAgent      string `json:"userAgent,omitempty"`
	IPAddress      string `json:"ipAddress,omitempty"`
	IsCurrent      bool   `json:"isCurrent,omitempty"`
}

// Login authenticates with email and password and stores the issued
// credentials; requests made after a successful login carry them
// automatically.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	auth, err := postJSON[AuthResponse](ctx, s.api, "/auth/login", creds)
	if err != nil {
		return nil, err
	}
	s.session.SetAuthenticated(ctx, auth.SessionID, auth.AccessToken, &auth.User)
	return &auth, nil
}

// Register creates an account and stores the issued credentials.
func (s *AuthService) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	auth, err := postJSON[AuthResponse](ctx, s.api, "/auth/register", reg)
	if err != nil {
		return nil, err
	}
	s.session.SetAuthenticated(ctx, auth.SessionID, auth.AccessToken, &auth.User)
	return &auth, nil
}

// Logout ends the current session on the backend. Local credentials are
// cleared even when the backend call fails; staying logged in locally after
// a failed logout would be worse than the reverse.
func (s *AuthService) Logout(ctx context.Context) error {
	_, err := s.api.Post(ctx, "/auth/logout", nil)
	s.session.Clear(ctx)
	if err != nil && !apiclient.IsUnauthorized(err) {
		return err
	}
	return nil
}

// LogoutAllDevices revokes every session of the account and clears local
// credentials.
func (s *AuthService) LogoutAllDevices(ctx context.Context) (int, error) {
	result, err := postJSON[struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
	}](ctx, s.api, "/auth/logout-all", nil)
	if err != nil {
		return 0, err
	}
	s.session.Clear(ctx)
	return result.Count, nil
}

// Profile fetches the account profile from the backend.
func (s *AuthService) Profile(ctx context.Context) (*session.User, error) {
	user, err := getJSON[session.User](ctx, s.api, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ActiveSessions lists the account's live sessions across devices.
func (s *AuthService) ActiveSessions(ctx context.Context) ([]ActiveSession, error) {
	return getJSON[[]ActiveSession](ctx, s.api, "/auth/sessions", nil)
}

// RevokeSession ends one session by ID.
func (s *AuthService) RevokeSession(ctx context.Context, sessionID string) error {
	_, err := s.api.Delete(ctx, fmt.Sprintf("/auth/sessions/%s", sessionID))
	return err
}

// IsAuthenticated reports whether the session store holds credentials.
func (s *AuthService) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}

// CurrentUser returns the locally cached user, if any.
func (s *AuthService) CurrentUser(ctx context.Context) *session.User {
	return s.session.User(ctx)
}
