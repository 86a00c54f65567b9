package service

import (
	"testing"

	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentialService_HashAndVerify(t *testing.T) {
	svc := NewCredentialService(bcrypt.MinCost, logger.Nop())

	hash, err := svc.Hash("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, svc.Verify("s3cret", hash))
	assert.False(t, svc.Verify("wrong", hash))
}

func TestCredentialService_HashesAreSalted(t *testing.T) {
	svc := NewCredentialService(bcrypt.MinCost, logger.Nop())

	first, err := svc.Hash("s3cret")
	require.NoError(t, err)
	second, err := svc.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCredentialService_EmptyPassword(t *testing.T) {
	svc := NewCredentialService(bcrypt.MinCost, logger.Nop())

	_, err := svc.Hash("")
	assert.ErrorIs(t, err, utils.ErrEmptyPassword)
}

func TestCredentialService_VerifyMalformedHash(t *testing.T) {
	svc := NewCredentialService(bcrypt.MinCost, logger.Nop())

	assert.False(t, svc.Verify("s3cret", "not-a-bcrypt-hash"))
	assert.False(t, svc.Verify("s3cret", ""))
}
