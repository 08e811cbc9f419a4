package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "workbase.com/workbase/internal/errors"
)

const secret = "0123456789abcdef0123"

func TestIssueAndParse(t *testing.T) {
	token, err := Issue(secret, "user-1", time.Hour)
	require.NoError(t, err)

	subject, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestParse_Rejects(t *testing.T) {
	expired, err := Issue(secret, "user-1", -time.Minute)
	require.NoError(t, err)

	otherKey, err := Issue("ffffffffffffffffffff", "user-1", time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte(secret))
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"expired":    expired,
		"wrong key":  otherKey,
		"alg none":   none,
		"no subject": noSubject,
		"garbage":    "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(secret, raw)
			assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		})
	}
}

func TestIssue_RequiresSubject(t *testing.T) {
	_, err := Issue(secret, " ", time.Hour)
	assert.Error(t, err)
}
