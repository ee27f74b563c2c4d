// Package auth issues and verifies the RS256 tokens used for login sessions
// and email verification links.
package auth

import (
	"crypto/rsa"
	"time"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// Token audiences keep session tokens and verification tokens from being
// accepted in each other's place.
const (
	audienceSession      = "session"
	audienceVerification = "verification"
)

// Signer signs tokens with the service's RSA private key.
type Signer struct {
	key *rsa.PrivateKey
}

// NewSigner parses the PEM encoded private key.
func NewSigner(privateKeyPEM string) (*Signer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse RSA private key")
	}

	return &Signer{key: key}, nil
}

// SignSession issues a bearer token for the given session. The token expires
// together with the session, the subject carries the session id.
func (s *Signer) SignSession(session domain.Session) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   session.ID.String(),
		Audience:  jwt.ClaimStrings{audienceSession},
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not sign session token")
	}

	return signed, nil
}

// SignVerification issues the token embedded in verification mails. The
// subject carries the user id.
func (s *Signer) SignVerification(userID domain.UserID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Audience:  jwt.ClaimStrings{audienceVerification},
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not sign verification token")
	}

	return signed, nil
}

// Verifier validates tokens with the service's RSA public key.
type Verifier struct {
	key *rsa.PublicKey
}

// NewVerifier parses the PEM encoded public key.
func NewVerifier(publicKeyPEM string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse RSA public key")
	}

	return &Verifier{key: key}, nil
}

func (v *Verifier) subject(token, audience string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (interface{}, error) { return v.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return subject, nil
}

// SessionID extracts the session id from a valid session token.
func (v *Verifier) SessionID(token string) (domain.SessionID, error) {
	subject, err := v.subject(token, audienceSession)
	if err != nil {
		return domain.SessionID{}, err
	}

	id, err := domain.ParseSessionID(subject)
	if err != nil {
		return domain.SessionID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session token")
	}

	return id, nil
}

// VerificationUserID extracts the user id from a valid verification token.
func (v *Verifier) VerificationUserID(token string) (domain.UserID, error) {
	subject, err := v.subject(token, audienceVerification)
	if err != nil {
		return domain.UserID{}, err
	}

	id, err := domain.ParseUserID(subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid verification token")
	}

	return id, nil
}
