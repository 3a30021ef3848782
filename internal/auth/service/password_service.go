package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"sync"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	apperrors "github.com/allisson/gamestats/internal/errors"
)

// passwordService implements PasswordService using Argon2id, with bcrypt accepted for
// hashes provisioned before the switch.
type passwordService struct {
	hasher *pwdhash.PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

// HashPassword hashes a plain text password using Argon2id.
func (s *passwordService) HashPassword(plainPassword string) (string, error) {
	hashed, err := s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

// ComparePassword verifies plainPassword against an Argon2id or bcrypt hash.
func (s *passwordService) ComparePassword(
	ctx context.Context,
	plainPassword, hashedPassword string,
) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if isBcryptHash(hashedPassword) {
		return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)) == nil, nil
	}

	ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false, nil
	}
	return ok, nil
}

// DummyHash returns an Argon2id hash of a random password, computed once.
func (s *passwordService) DummyHash() string {
	s.dummyOnce.Do(func() {
		randomBytes := make([]byte, 16)
		_, _ = rand.Read(randomBytes)
		hashed, err := s.hasher.Hash([]byte(base64.RawURLEncoding.EncodeToString(randomBytes)))
		if err != nil {
			// This should never happen with a valid policy
			panic(err)
		}
		s.dummyHash = hashed
	})
	return s.dummyHash
}

func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}

// NewPasswordService creates a new PasswordService using the Interactive Argon2id policy,
// tuned for verification on the login path.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}

// boundedPasswordService caps how many password verifications run at once. Hashing is
// memory hard, so unbounded concurrent logins would exhaust the process.
type boundedPasswordService struct {
	next PasswordService
	sem  *semaphore.Weighted
}

// HashPassword delegates to the wrapped service without taking a slot.
func (b *boundedPasswordService) HashPassword(plainPassword string) (string, error) {
	return b.next.HashPassword(plainPassword)
}

// ComparePassword waits for a free slot, honouring ctx, then verifies.
func (b *boundedPasswordService) ComparePassword(
	ctx context.Context,
	plainPassword, hashedPassword string,
) (bool, error) {
	if err := b.sem.Acquire(ctx, 1); err != nil {
		return false, apperrors.Wrap(err, "password verification cancelled")
	}
	defer b.sem.Release(1)

	return b.next.ComparePassword(ctx, plainPassword, hashedPassword)
}

// DummyHash delegates to the wrapped service.
func (b *boundedPasswordService) DummyHash() string {
	return b.next.DummyHash()
}

// NewBoundedPasswordService wraps next so that at most workers verifications run
// concurrently. Values below one are treated as one.
func NewBoundedPasswordService(next PasswordService, workers int) PasswordService {
	if workers < 1 {
		workers = 1
	}
	return &boundedPasswordService{
		next: next,
		sem:  semaphore.NewWeighted(int64(workers)),
	}
}
