// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"pinesvet/config"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/service"
)

// defaultForbiddenWords are substrings no password may contain, compared
// case-insensitively.
var defaultForbiddenWords = []string{"password", "admin", "123456", "qwerty"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost             int
	minLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
	forbiddenWords   []string
}

// NewBcryptHasher is the constructor for bcryptHasher with default settings.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost creates a hasher with a specific bcrypt cost factor,
// keeping the default strength requirements.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{
		cost:             cost,
		minLength:        8,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
		requireSpecial:   true,
		forbiddenWords:   defaultForbiddenWords,
	}
}

// NewBcryptHasherFromConfig creates a hasher driven by the configured cost
// and password strength requirements.
func NewBcryptHasherFromConfig(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost:             bcrypt.DefaultCost,
		minLength:        8,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
		requireSpecial:   true,
		forbiddenWords:   defaultForbiddenWords,
	}

	if cfg == nil {
		return hasher
	}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if strength := cfg.PasswordStrength; strength != nil {
		if strength.MinLength > 0 {
			hasher.minLength = strength.MinLength
		}
		hasher.requireUppercase = strength.RequireUppercase
		hasher.requireLowercase = strength.RequireLowercase
		hasher.requireNumbers = strength.RequireNumbers
		hasher.requireSpecial = strength.RequireSpecial
	}

	return hasher
}

// Hash validates the password strength and then generates a salted bcrypt hash.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength verifies the password against the configured
// requirements. The checks run in a fixed order so error messages are stable.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := h.minLength
	if minLength <= 0 {
		minLength = 8
	}
	if len(password) < minLength {
		return errors.Errorf("password must be at least %d characters long", minLength)
	}
	if h.requireLowercase && !h.hasLowercase(password) {
		return errors.New("password must contain at least one lowercase letter")
	}
	if h.requireUppercase && !h.hasUppercase(password) {
		return errors.New("password must contain at least one uppercase letter")
	}
	if h.requireNumbers && !h.hasNumbers(password) {
		return errors.New("password must contain at least one number")
	}
	if h.requireSpecial && !h.hasSpecialChars(password) {
		return errors.New("password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, h.forbiddenWords) {
		return domainerrors.ErrPasswordForbiddenWords.WrapMessage("password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, forbiddenWords []string) bool {
	if len(forbiddenWords) == 0 {
		forbiddenWords = defaultForbiddenWords
	}
	lowered := strings.ToLower(s)
	for _, word := range forbiddenWords {
		if strings.Contains(lowered, strings.ToLower(word)) {
			return true
		}
	}

	return false
}
