package domain

// AuthMethod identifies how requests to the content repository authenticate.
type AuthMethod string

const (
	// AuthMethodBasic sends HTTP Basic credentials (username/password).
	AuthMethodBasic AuthMethod = "basic"
	// AuthMethodBearer sends a static bearer token, for repositories
	// fronted by an SSO gateway.
	AuthMethodBearer AuthMethod = "bearer"
)

// Credentials holds the repository authentication material loaded from
// configuration. Exactly one of the username/password pair or Token is
// populated, depending on Method.
type Credentials struct {
	// Method selects basic or bearer authentication.
	Method AuthMethod
	// Username for basic authentication.
	Username string
	// Password for basic authentication.
	Password string
	// Token for bearer authentication.
	Token string
}

// IsZero reports whether no authentication material is present.
func (c Credentials) IsZero() bool {
	return c.Username == "" && c.Password == "" && c.Token == ""
}
