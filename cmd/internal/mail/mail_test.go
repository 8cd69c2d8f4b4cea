package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetLink(t *testing.T) {
	s := NewLogSender("http://localhost:3000/auth/update-password?lang=vi")
	link, err := s.ResetLink("abc.def")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/auth/update-password?lang=vi&token=abc.def", link)
}

func TestSendPasswordResetBadURL(t *testing.T) {
	s := NewLogSender("://bad")
	assert.Error(t, s.SendPasswordReset(context.Background(), "a@b.vn", "tok"))
}
