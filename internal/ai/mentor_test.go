package ai

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNewMentorRequiresAPIKey(t *testing.T) {
	assert.Nil(t, NewMentor("", "gpt-4o-mini"))
}

func TestNilMentorReturnsNotConfigured(t *testing.T) {
	var m *Mentor

	_, err := m.Chat(context.Background(), nil, "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = m.OptimizeResume(context.Background(), "resume text", "backend engineer")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTruncatePreservesRuneBoundaries(t *testing.T) {
	s := strings.Repeat("é", 10)

	out := truncate(s, 11)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, strings.Repeat("é", 5), out)

	assert.Equal(t, s, truncate(s, len(s)))
	assert.Equal(t, "", truncate("日本", 1))
}
