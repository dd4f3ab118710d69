package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEveryRejectsNonPositiveInterval(t *testing.T) {
	s := New(time.Local, zap.NewNop())

	_, err := s.Every(0, func() {})
	assert.Error(t, err)
	_, err = s.Every(-time.Second, func() {})
	assert.Error(t, err)
}

func TestJobsRegisterAndSchedulerStops(t *testing.T) {
	s := New(time.Local, zap.NewNop())

	_, err := s.AtMidnight(func() {})
	require.NoError(t, err)
	_, err = s.Every(time.Hour, func() {})
	require.NoError(t, err)

	s.Start()
	s.Stop() // must not hang
}
