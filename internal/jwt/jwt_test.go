package jwt_test

import (
	"testing"
	"time"

	"github.com/saad710/shop-api/internal/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := jwt.NewService("test-secret", 24*time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestVerify_Expired(t *testing.T) {
	svc := jwt.NewService("test-secret", -time.Second)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := jwt.NewService("secret-a", time.Hour)
	verifier := jwt.NewService("secret-b", time.Hour)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(tok)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = svc.Verify(tampered)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}
