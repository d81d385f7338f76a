package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("0512345678"))
	assert.True(t, ValidPhone("512345678"))

	assert.False(t, ValidPhone("1234567890"))
	assert.False(t, ValidPhone("05123456789"))
	assert.False(t, ValidPhone("051234567"))
	assert.False(t, ValidPhone("05123abc78"))
	assert.False(t, ValidPhone(""))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("11111111"))
	assert.True(t, ValidPassword("Str0ng@Pass#16ok"))

	assert.False(t, ValidPassword("short"))
	assert.False(t, ValidPassword("waytoolongpassword123"))
	assert.False(t, ValidPassword("has space 1"))
	assert.False(t, ValidPassword("bad!chars"))
}
