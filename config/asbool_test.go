package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/dbhelper/errors"
)

// TestAsBool tests the boolean parsing rules.
func TestAsBool(t *testing.T) {
	t.Run("Truthy", func(t *testing.T) {
		for _, s := range []string{"TRUE ", "Yes", "1", "on", " y", "t", "true"} {
			v, err := AsBool(s)
			require.NoError(t, err, s)
			assert.True(t, v, s)
		}
	})

	t.Run("Falsy", func(t *testing.T) {
		for _, s := range []string{"off", "0", "False", "NO", "n", "f"} {
			v, err := AsBool(s)
			require.NoError(t, err, s)
			assert.False(t, v, s)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"maybe", "", "2", "yess"} {
			_, err := AsBool(s)
			require.Error(t, err, s)
			assert.True(t, errors.Is(err, ErrInvalidBoolean), s)
		}
		_, err := AsBool(" Maybe ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'maybe'")
	})

	t.Run("NonString", func(t *testing.T) {
		var nilPtr *int
		one := 1
		cases := []struct {
			value    interface{}
			expected bool
		}{
			{true, true},
			{false, false},
			{nil, false},
			{0, false},
			{12, true},
			{uint8(0), false},
			{0.0, false},
			{0.5, true},
			{[]string{}, false},
			{[]string{"a"}, true},
			{map[string]int{}, false},
			{nilPtr, false},
			{&one, true},
			{struct{}{}, true},
		}
		for _, c := range cases {
			v, err := AsBool(c.value)
			require.NoError(t, err)
			assert.Equal(t, c.expected, v, "%#v", c.value)
		}
	})
}
