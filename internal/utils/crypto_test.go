package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	plaintext := `{"incomes":[{"value":5000,"category":"Salary"}]}`

	ciphertext, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	got, err := Decrypt(ciphertext, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEncryptRejectsBadKey(t *testing.T) {
	_, err := Encrypt("data", []byte("short"))
	assert.Error(t, err)

	_, err = Encrypt("", []byte("0123456789abcdef"))
	assert.Error(t, err)
}

func TestVerifyHMAC(t *testing.T) {
	tag := GenerateHMAC("payload", "secret")
	assert.True(t, VerifyHMAC("payload", tag, "secret"))
	assert.False(t, VerifyHMAC("tampered", tag, "secret"))
	assert.False(t, VerifyHMAC("payload", tag, "other-secret"))
}
