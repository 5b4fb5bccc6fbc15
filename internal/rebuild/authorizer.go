package rebuild

// UnauthorizedError is returned when a rebuild trigger is not allowed.
// Message is safe to show to the caller.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// Authorizer gates the rebuild trigger behind a shared secret. The secret is
// an explicit value, not ambient configuration, so the authorizer can be
// tested without a live config.
type Authorizer struct {
	// Token is the expected bearer token. Empty disables the endpoint
	// entirely, independent of caller identity.
	Token string
}

// Authorize checks the supplied bearer token. A nil token means the caller
// sent no credential at all.
func (a *Authorizer) Authorize(token *string) error {
	if a.Token == "" {
		return &UnauthorizedError{Message: "Endpoint is not configured"}
	}
	if token == nil {
		return &UnauthorizedError{Message: "Missing authentication token"}
	}
	if *token != a.Token {
		return &UnauthorizedError{Message: "The token used for authentication is not valid"}
	}
	return nil
}
