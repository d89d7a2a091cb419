package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticesStackInsteadOfReplacing(t *testing.T) {
	s := NewNoticeStack()

	cmd1 := s.Error("first failure")
	cmd2 := s.Success("created")
	cmd3 := s.Error("second failure")
	require.NotNil(t, cmd1)
	require.NotNil(t, cmd2)
	require.NotNil(t, cmd3)

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "first failure", all[0].Message)
	assert.Equal(t, NoticeError, all[0].Kind)
	assert.Equal(t, "created", all[1].Message)
	assert.Equal(t, NoticeSuccess, all[1].Kind)
	assert.Equal(t, "second failure", all[2].Message)
}

func TestExpireRemovesOnlyTheNamedNotice(t *testing.T) {
	s := NewNoticeStack()
	s.Error("a")
	s.Success("b")

	id := s.All()[0].ID
	s.Expire(id)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].Message)

	// Expiring an id that is already gone is a no-op.
	s.Expire(id)
	assert.Equal(t, 1, s.Len())
}

func TestNoticeTTLsDiffer(t *testing.T) {
	assert.Greater(t, ErrorNoticeTTL, SuccessNoticeTTL)
}

func TestNoticeViewRendersAllLines(t *testing.T) {
	s := NewNoticeStack()
	assert.Empty(t, s.View())

	s.Error("boom")
	s.Success("saved")
	view := s.View()
	assert.Contains(t, view, "boom")
	assert.Contains(t, view, "saved")
}
