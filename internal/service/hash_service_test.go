package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HashService_HashAndVerify(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("S3cure!Password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := svc.Verify("S3cure!Password", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2HashService_WrongPassword(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("correct")
	require.NoError(t, err)

	ok, err := svc.Verify("incorrect", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2HashService_UniqueSalts(t *testing.T) {
	svc := NewArgon2HashService()

	h1, err := svc.Hash("same password")
	require.NoError(t, err)
	h2, err := svc.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestArgon2HashService_InvalidHashFormat(t *testing.T) {
	svc := NewArgon2HashService()

	_, err := svc.Verify("password", "not-a-valid-hash")
	require.Error(t, err)

	_, err = svc.Verify("password", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA")
	require.Error(t, err)
}
