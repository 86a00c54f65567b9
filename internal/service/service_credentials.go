package service

import (
	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/internal/utils"
)

// credentialService is the bcrypt-backed implementation of
// [CredentialService]. The work factor comes from configuration; zero means
// the bcrypt default.
type credentialService struct {
	cost   int
	logger *logger.Logger
}

// NewCredentialService constructs a [CredentialService] with the given
// bcrypt cost factor.
func NewCredentialService(cost int, logger *logger.Logger) CredentialService {
	logger.Debug().Int("bcrypt_cost", cost).Msg("creating credential service")
	return &credentialService{
		cost:   cost,
		logger: logger,
	}
}

// Hash computes a salted bcrypt hash of plaintext.
// Returns [utils.ErrEmptyPassword] for empty input; hashing empty
// credentials would only waste CPU.
func (c *credentialService) Hash(plaintext string) (string, error) {
	hashed, err := utils.HashPassword(plaintext, c.cost)
	if err != nil {
		return "", err
	}

	return hashed, nil
}

// Verify reports whether plaintext matches hashed. Mismatches and malformed
// stored hashes both yield false, never an error.
func (c *credentialService) Verify(plaintext, hashed string) bool {
	return utils.VerifyPassword(plaintext, hashed)
}
