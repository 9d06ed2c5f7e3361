package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"github.com/tecskill/rtx-cli/common/logger"
)

const (
	loginEndpoint         = "/auth_app_homolog.php"
	logoutEndpoint        = "/logout"
	validateTokenEndpoint = "/validate-token"

	// User-facing login failure reasons, part of the service contract.
	loginErrInvalidCredentials = "Credenciais inválidas"
	loginErrConnection         = "Erro de conexão"
)

type loginRequest struct {
	UserName     string `json:"userName"`
	UserPassword string `json:"userPassword"`
	APIToken     string `json:"apiToken"`
}

// Login authenticates with username and password. On success the returned
// token is stored in the session service as a side effect. On any failure the
// session is left untouched; there is no fallback for login, a fabricated
// success here would be a security hole.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, ErrEmptyCredentials
	}

	payload, err := json.Marshal(loginRequest{
		UserName:     username,
		UserPassword: password,
		APIToken:     c.ServiceToken,
	})
	if err != nil {
		return LoginResult{}, eris.Wrap(err, "Failed to marshal login request")
	}

	// Login goes out without a bearer token; the session does not exist yet.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+loginEndpoint, bytes.NewReader(payload))
	if err != nil {
		return LoginResult{}, eris.Wrap(err, "Failed to create login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Debugf("login request failed: %v", err)
		return LoginResult{Success: false, Error: loginErrConnection}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Debugf("failed to read login response: %v", err)
		return LoginResult{Success: false, Error: loginErrConnection}, nil
	}

	status := gjson.GetBytes(body, "status").String()
	token := gjson.GetBytes(body, "data").String()

	if status != "success" || token == "" {
		return LoginResult{Success: false, Error: loginErrInvalidCredentials}, nil
	}

	if err := c.Session.Set(token); err != nil {
		return LoginResult{}, eris.Wrap(err, "Failed to store session token")
	}

	return LoginResult{Success: true, Token: token}, nil
}

// Logout tells the backend to invalidate the session, then clears the local
// session no matter what happened. Local teardown is never blocked by a
// remote failure.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.sendRequest(ctx, http.MethodPost, logoutEndpoint, nil)

	c.Session.Clear()

	if err != nil {
		logger.Debugf("logout call failed, local session cleared anyway: %v", err)
		return eris.Wrap(err, "logout call failed")
	}
	return nil
}

// ValidateToken asks the backend whether the current session token is still
// accepted. Any failure counts as invalid.
func (c *Client) ValidateToken(ctx context.Context) bool {
	body, err := c.sendRequest(ctx, http.MethodGet, validateTokenEndpoint, nil)
	if err != nil {
		return false
	}
	return gjson.GetBytes(body, "valid").Bool()
}
