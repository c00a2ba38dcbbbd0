package discord

// Token is the bearer credential returned by the code exchange
// single-use within one flow execution; never persisted
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

// User is a partial Discord user document with fields we use
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
}

// Member is a partial guild member document
// Roles holds the snowflake ids of the roles the member has in the guild
type Member struct {
	Roles []string `json:"roles"`
	Nick  string   `json:"nick"`
	User  *User    `json:"user"`
}
