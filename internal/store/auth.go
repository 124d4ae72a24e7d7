package store

import (
	"sync"

	"ridehub/internal/domain/models"
)

// AuthState is the session slice: the authenticated identity, its token and
// the status of the last auth action. Exactly one session is active per store;
// the role is fixed for the lifetime of the session.
type AuthState struct {
	mu     sync.RWMutex
	user   *models.Identity
	token  string
	status Status
	errMsg string
}

func newAuthState() *AuthState {
	return &AuthState{status: StatusIdle}
}

func (a *AuthState) Begin() {
	a.mu.Lock()
	a.status = StatusLoading
	a.errMsg = ""
	a.mu.Unlock()
}

func (a *AuthState) Fail(err error) {
	a.mu.Lock()
	a.status = StatusFailed
	a.errMsg = err.Error()
	a.mu.Unlock()
}

// CommitSignIn retains the identity and token of a fulfilled sign-in.
func (a *AuthState) CommitSignIn(user models.Identity, token string) {
	a.mu.Lock()
	u := user
	a.user = &u
	a.token = token
	a.status = StatusSucceeded
	a.mu.Unlock()
}

// ClearSession drops identity and token and returns the slice to idle,
// regardless of prior state.
func (a *AuthState) ClearSession() {
	a.mu.Lock()
	a.user = nil
	a.token = ""
	a.status = StatusIdle
	a.errMsg = ""
	a.mu.Unlock()
}

func (a *AuthState) User() (models.Identity, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return models.Identity{}, false
	}
	return *a.user, true
}

func (a *AuthState) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *AuthState) Status() Status {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

func (a *AuthState) Err() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.errMsg
}

func (a *AuthState) reset() {
	a.ClearSession()
}
