package service

import (
	"testing"
	"time"

	"github.com/lshigami/quizreview/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T, secret string) *sessionService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Session.Secret = secret
	cfg.Session.TTL = time.Hour
	svc, err := NewSessionService(cfg)
	require.NoError(t, err)
	return svc.(*sessionService)
}

func TestSession_IssueAndVerify(t *testing.T) {
	svc := newSessionService(t, "test-secret")

	session, err := svc.Issue(" user-1 ")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	userID, err := svc.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSession_RejectsForeignSignature(t *testing.T) {
	issuer := newSessionService(t, "secret-a")
	verifier := newSessionService(t, "secret-b")

	session, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = verifier.Verify(session.Token)
	assert.True(t, IsUnauthorized(err))
}

func TestSession_RejectsExpired(t *testing.T) {
	svc := newSessionService(t, "test-secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	session, err := svc.Issue("user-1")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(session.Token)
	assert.True(t, IsUnauthorized(err))
}

func TestSession_RejectsGarbage(t *testing.T) {
	svc := newSessionService(t, "test-secret")

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.True(t, IsUnauthorized(err), "token %q", token)
	}
}

func TestSession_IssueRequiresUser(t *testing.T) {
	svc := newSessionService(t, "test-secret")

	_, err := svc.Issue("")
	assert.True(t, IsValidation(err))
}

func TestSession_RandomSecretWhenUnset(t *testing.T) {
	svc := newSessionService(t, "")
	assert.Len(t, svc.secret, 64)

	session, err := svc.Issue("user-1")
	require.NoError(t, err)
	_, err = svc.Verify(session.Token)
	assert.NoError(t, err)
}

func TestSession_TokenCarriesOnlyIssuedUser(t *testing.T) {
	svc := newSessionService(t, "test-secret")

	alice, err := svc.Issue("alice")
	require.NoError(t, err)
	bob, err := svc.Issue("bob")
	require.NoError(t, err)
	assert.NotEqual(t, alice.Token, bob.Token)

	userID, err := svc.Verify(alice.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)
	userID, err = svc.Verify(bob.Token)
	require.NoError(t, err)
	assert.Equal(t, "bob", userID)
}
