package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	perr "rolegate/internal/platform/errors"
)

// ErrNotMember is returned by the member lookups when the provider reports
// the subject is not in the guild (403/404-class responses)
var ErrNotMember = perr.Forbiddenf("not a guild member")

// ExchangeCode swaps an authorization code for a user bearer token.
// A response without a usable access_token is an authorization failure,
// never retried: the code is already consumed.
func (c *Client) ExchangeCode(ctx context.Context, code string) (Token, error) {
	form := url.Values{}
	form.Set("client_id", c.opts.ClientID)
	form.Set("client_secret", c.opts.ClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.opts.RedirectURI)

	resp, err := c.do(ctx, http.MethodPost, "/oauth2/token",
		"application/x-www-form-urlencoded", "", strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, err
	}
	defer c.closeBody(resp, "/oauth2/token")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logStatus(resp, "/oauth2/token")
		if isTransient(resp.StatusCode) {
			return Token{}, perr.Unavailablef("discord token endpoint returned %d", resp.StatusCode)
		}
		return Token{}, perr.Unauthorizedf("code exchange rejected with %d", resp.StatusCode)
	}

	var out Token
	if err := decodeBody(resp.Body, &out); err != nil {
		return Token{}, perr.Wrapf(err, perr.ErrorCodeUnauthorized, "malformed token response")
	}
	if out.AccessToken == "" {
		return Token{}, perr.Unauthorizedf("token response missing access_token")
	}
	return out, nil
}

// Me fetches the authenticated user's identity with the user bearer token
func (c *Client) Me(ctx context.Context, userToken string) (User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users/@me", "", "Bearer "+userToken, nil)
	if err != nil {
		return User{}, err
	}
	defer c.closeBody(resp, "/users/@me")

	if resp.StatusCode != http.StatusOK {
		c.logStatus(resp, "/users/@me")
		if isTransient(resp.StatusCode) {
			return User{}, perr.Unavailablef("discord identity endpoint returned %d", resp.StatusCode)
		}
		return User{}, perr.Unauthorizedf("identity lookup rejected with %d", resp.StatusCode)
	}

	var out User
	if err := decodeBody(resp.Body, &out); err != nil {
		return User{}, perr.Wrapf(err, perr.ErrorCodeUnauthorized, "malformed identity response")
	}
	if out.ID == "" {
		return User{}, perr.Unauthorizedf("identity response missing subject id")
	}
	return out, nil
}

// SelfGuildMember fetches the caller's membership in guildID with the user
// bearer token obtained from this login
func (c *Client) SelfGuildMember(ctx context.Context, userToken, guildID string) (Member, error) {
	path := "/users/@me/guilds/" + guildID + "/member"
	return c.member(ctx, path, "Bearer "+userToken)
}

// GuildMember fetches a member by user id using the privileged bot token.
// Used by the liveness recheck where the original user token is long gone.
func (c *Client) GuildMember(ctx context.Context, guildID, userID string) (Member, error) {
	path := "/guilds/" + guildID + "/members/" + userID
	return c.member(ctx, path, "Bot "+c.opts.BotToken)
}

func (c *Client) member(ctx context.Context, path, authz string) (Member, error) {
	resp, err := c.do(ctx, http.MethodGet, path, "", authz, nil)
	if err != nil {
		return Member{}, err
	}
	defer c.closeBody(resp, path)

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case isTransient(resp.StatusCode):
		c.logStatus(resp, path)
		return Member{}, perr.Unavailablef("discord member endpoint returned %d", resp.StatusCode)
	default:
		// 401/403/404-class: the provider says this subject is not a member
		c.logStatus(resp, path)
		return Member{}, ErrNotMember
	}

	var out Member
	if err := decodeBody(resp.Body, &out); err != nil {
		return Member{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "malformed member response")
	}
	return out, nil
}

// decodeBody reads a size-capped body into dst
func decodeBody(r io.Reader, dst any) error {
	b, err := io.ReadAll(io.LimitReader(r, 1<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
