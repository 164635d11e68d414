package ports

// TokenPair bundles the two credentials issued on signup and login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and verifies the signed bearer credentials. Both
// operations are pure: signing has no side effects and verification touches
// no storage. Verify failures distinguish domain.ErrTokenExpired from
// domain.ErrInvalidToken.
type TokenService interface {
	Issue(userID string) (TokenPair, error)
	// IssueAccess mints a fresh access token only, used by the refresh flow.
	IssueAccess(userID string) (string, error)
	VerifyAccess(token string) (string, error)
	VerifyRefresh(token string) (string, error)
}
