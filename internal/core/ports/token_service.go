package ports

import "github.com/saasdash/dashboard-api/internal/core/domain"

// TokenService mints and verifies the two token flavors. Access tokens are
// short-lived and sent as bearer credentials; refresh tokens are longer-lived
// and only ever exchanged for new access tokens. Verification failures are
// uniform: callers get domain.ErrInvalidToken whether the token is malformed,
// signed with the wrong secret, of the wrong flavor, or expired.
type TokenService interface {
	IssueAccessToken(userID, role string) (string, error)
	IssueRefreshToken(userID, role string) (string, error)
	VerifyAccess(token string) (domain.Identity, error)
	VerifyRefresh(token string) (domain.Identity, error)
}
