package game

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/NaxiosMIV/Yeet/internal/netcfg"
)

// AuthUser is the account slice the auth endpoints return.
type AuthUser struct {
	Name     string `json:"name"`
	ColorHue int    `json:"color_hue"`
}

type authResp struct {
	Status string    `json:"status"`
	User   *AuthUser `json:"user"`
}

// AuthConfig carries provider settings, e.g. the Google client id the
// login flow needs.
type AuthConfig struct {
	GoogleClientID string `json:"google_client_id,omitempty"`
}

// AuthClient talks to the auth REST endpoints. The session rides on a
// cookie, so the jar is the whole credential store.
type AuthClient struct {
	base string
	http *http.Client
}

func NewAuthClient() *AuthClient {
	jar, _ := cookiejar.New(nil)
	return &AuthClient{
		base: netcfg.APIBase,
		http: &http.Client{Timeout: 10 * time.Second, Jar: jar},
	}
}

func (a *AuthClient) post(path string, body any) (*authResp, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	resp, err := a.http.Post(a.base+path, "application/json", &buf)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth: %s returned %s", path, resp.Status)
	}
	var out authResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GuestLogin creates an anonymous session.
func (a *AuthClient) GuestLogin() (*AuthUser, error) {
	out, err := a.post("/auth/login/guest", nil)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

// GoogleLogin exchanges a Google ID token for a session.
func (a *AuthClient) GoogleLogin(token string) (*AuthUser, error) {
	out, err := a.post("/auth/login/google", map[string]string{"token": token})
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

// Me returns the current session's user, or an error when signed out.
func (a *AuthClient) Me() (*AuthUser, error) {
	resp, err := a.http.Get(a.base + "/auth/me")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("auth: not signed in")
	}
	var out authResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, errors.New("auth: empty user")
	}
	return out.User, nil
}

// Config fetches provider configuration.
func (a *AuthClient) Config() (*AuthConfig, error) {
	resp, err := a.http.Get(a.base + "/auth/config")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var out AuthConfig
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetColorHue persists the account tile color.
func (a *AuthClient) SetColorHue(hue int) error {
	_, err := a.post("/auth/color-hue", map[string]int{"color_hue": hue})
	return err
}

// Logout drops the session.
func (a *AuthClient) Logout() error {
	_, err := a.post("/auth/logout", nil)
	return err
}

// fetchSession asks the auth service who we are, falling back to a guest
// session. Runs off the frame loop; the result lands on authCh. A slow
// response arriving after the user typed a name only fills blanks.
func (g *Game) fetchSession() {
	u, err := g.auth.Me()
	if err != nil {
		u, err = g.auth.GuestLogin()
	}
	g.authCh <- authResult{user: u, err: err}
}

// cycleHue steps the tile color through the hue wheel and persists the
// choice when a session exists.
func (g *Game) cycleHue() {
	g.hue = (g.hue + 30) % 360
	g.color = colorForHue(g.hue)
	if g.auth != nil {
		go func(h int) {
			if err := g.auth.SetColorHue(h); err != nil {
				debugf("auth: color-hue: %v", err)
			}
		}(g.hue)
	}
}

// pressSignOut drops the session; a fresh guest session replaces it so
// the player can still join rooms.
func (g *Game) pressSignOut() {
	g.user = nil
	g.setStatus("Signed out")
	if g.auth != nil {
		go func() {
			if err := g.auth.Logout(); err != nil {
				debugf("auth: logout: %v", err)
			}
			g.fetchSession()
		}()
	}
}
