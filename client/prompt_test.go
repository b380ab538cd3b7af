package main

import (
	"bytes"
	"strings"
	"testing"

	"bikeshare/domain/entities/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskNormalizesTheAnswer(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("  new YORK city \n"), &out, 0, []string{"quit"})

	city, err := prompter.Ask("city? ", filter.ParseCity)
	require.NoError(t, err)
	assert.Equal(t, "New York City", city)
	assert.Equal(t, "city? ", out.String())
}

func TestAskWithoutAttemptLimit(t *testing.T) {
	var out bytes.Buffer
	input := strings.Repeat("nowhere\n", 20) + "washington\n"
	prompter := NewPrompter(strings.NewReader(input), &out, 0, nil)

	city, err := prompter.Ask("city? ", filter.ParseCity)
	require.NoError(t, err)
	assert.Equal(t, "Washington", city)
	assert.Equal(t, 20, strings.Count(out.String(), "not a valid entry"))
}

func TestAskQuitWordIsCaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("EXIT\n"), &out, 0, []string{"quit", "exit"})

	_, err := prompter.Ask("city? ", filter.ParseCity)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer   string
		expected bool
	}{
		{"yes", true},
		{"Y", true},
		{" YES ", true},
		{"no", false},
		{"", false},
		{"maybe", false},
	}

	for _, test := range tests {
		var out bytes.Buffer
		prompter := NewPrompter(strings.NewReader(test.answer+"\n"), &out, 0, nil)

		confirmed, err := prompter.Confirm("continue? ")
		require.NoError(t, err)
		assert.Equal(t, test.expected, confirmed, "answer %q", test.answer)
	}
}

func TestConfirmAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader(""), &out, 0, nil)

	_, err := prompter.Confirm("continue? ")
	assert.ErrorIs(t, err, ErrAborted)
}
