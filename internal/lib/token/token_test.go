package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueVerify(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute)

	signed, err := m.Issue("deadbeef", "order_abc123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "deadbeef", claims.Hash)
	require.Equal(t, "order_abc123", claims.GatewayOrderID)
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager("test-secret", -1*time.Minute)

	signed, err := m.Issue("deadbeef", "order_abc123")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewManager("issuer-secret", 15*time.Minute)
	verifier := NewManager("other-secret", 15*time.Minute)

	signed, err := issuer.Issue("deadbeef", "order_abc123")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute)

	tCases := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "not_a_jwt", raw: "definitely-not-a-jwt"},
		{name: "truncated", raw: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			_, err := m.Verify(tCase.raw)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
