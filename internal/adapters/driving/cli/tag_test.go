package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagCmd_Use(t *testing.T) {
	assert.Equal(t, "tag [tag]", tagCmd.Use)
}

func TestTagCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"tag"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestTagCmd_PassesTag(t *testing.T) {
	mock := &mockFeedService{items: sampleItems()}
	cleanup := injectFeed(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"tag", "compilers"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "compilers", mock.lastTag)
}

func TestTagCmd_LimitFlagPassedThrough(t *testing.T) {
	mock := &mockFeedService{items: sampleItems()}
	cleanup := injectFeed(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"tag", "go", "-n", "1"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLimitFlag(tagCmd)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, []int{1}, mock.lastLimit)
}

func TestTagCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := injectFeed(nil)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"tag", "go"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "feed service not configured")
}
