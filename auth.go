package releasefetch

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Credentials are the username and password a source requires.
type Credentials struct {
	Username string
	Password string
}

// BasicAuthorization returns the value of a Basic Authorization header for the credentials.
func (c Credentials) BasicAuthorization() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.Username+":"+c.Password))
}

// authorize sets the Authorization header when credentials are configured.
func (c *Credentials) authorize(req *http.Request) {
	if c == nil {
		return
	}
	req.Header.Set("Authorization", c.BasicAuthorization())
}

// ftpLogin returns the username and password for an FTP login.
// Without credentials, or with blank fields, it falls back to an anonymous login with an empty password.
func (c *Credentials) ftpLogin() (string, string) {
	user, password := "anonymous", ""
	if c == nil {
		return user, password
	}
	if !isBlank(c.Username) {
		user = c.Username
	}
	if !isBlank(c.Password) {
		password = c.Password
	}

	return user, password
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
