package auth

import (
	"testing"

	domainerrors "pinesvet/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	plain := "ClinicPortal9!"
	hash, err := hasher.Hash(plain)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, plain, hash)

	assert.True(t, hasher.Check(plain, hash))
	assert.False(t, hasher.Check("ClinicPortal9?", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(plain, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_HashRejectsWeakPasswords(t *testing.T) {
	hasher := NewBcryptHasher()

	for _, weak := range []string{
		"ab1!",        // too short
		"password1!",  // no uppercase, forbidden word
		"CLINIC2024!", // no lowercase
		"clinic2024!", // no uppercase
		"ClinicVet!!", // no digits
		"Clinic2024x", // no special characters
	} {
		_, err := hasher.Hash(weak)
		assert.Error(t, err, "password %q should be rejected", weak)
	}
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher()

	for _, ok := range []string{
		"ClinicPortal9!",
		"Booking@Slot1",
		"Feed#Reducer7",
	} {
		assert.NoError(t, hasher.ValidatePasswordStrength(ok), "password %q should pass", ok)
	}

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{name: "too short", password: "Ab1!", wantMsg: "must be at least 8 characters long"},
		{name: "no lowercase", password: "CLINIC2024!", wantMsg: "must contain at least one lowercase letter"},
		{name: "no uppercase", password: "clinic2024!", wantMsg: "must contain at least one uppercase letter"},
		{name: "no digits", password: "ClinicVet!!", wantMsg: "must contain at least one number"},
		{name: "no special", password: "Clinic2024x", wantMsg: "must contain at least one special character"},
		{name: "forbidden word", password: "MyPassword1!", wantMsg: "contains forbidden words"},
		{name: "forbidden word mixed case", password: "SuperAdmin1!", wantMsg: "contains forbidden words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestBcryptHasher_ForbiddenWordSentinel(t *testing.T) {
	hasher := NewBcryptHasher()

	err := hasher.ValidatePasswordStrength("MyPassword1!")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordForbiddenWords))
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	// Low cost keeps the test fast.
	hasher := NewBcryptHasherWithCost(6)

	hash, err := hasher.Hash("ClinicPortal9!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
	assert.True(t, hasher.Check("ClinicPortal9!", hash))
}

func TestBcryptHasher_CharacterClassHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Vaccine"))
	assert.False(t, hasher.hasUppercase("vaccine"))

	assert.True(t, hasher.hasLowercase("Vaccine"))
	assert.False(t, hasher.hasLowercase("VACCINE"))

	assert.True(t, hasher.hasNumbers("Vaccine3"))
	assert.False(t, hasher.hasNumbers("Vaccine"))

	assert.True(t, hasher.hasSpecialChars("Vaccine#"))
	assert.False(t, hasher.hasSpecialChars("Vaccine3"))

	forbidden := []string{"password", "admin"}
	assert.True(t, hasher.containsForbiddenWords("MyPassword123", forbidden))
	assert.True(t, hasher.containsForbiddenWords("AdminConsole", forbidden))
	assert.False(t, hasher.containsForbiddenWords("BookingSlot123", forbidden))
}

func TestBcryptHasher_UnicodePasswords(t *testing.T) {
	hasher := NewBcryptHasher()

	// Non-ASCII letters still satisfy the letter classes.
	assert.NoError(t, hasher.ValidatePasswordStrength("Pörtal2024!"))

	// Special characters alone are not enough.
	assert.Error(t, hasher.ValidatePasswordStrength("!@#$%^&*()"))
}
