package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/copperline-studio/activityfeed/internal/core/domain"
)

func TestPostsCmd_Use(t *testing.T) {
	assert.Equal(t, "posts", postsCmd.Use)
}

func TestProfilesCmd_Use(t *testing.T) {
	assert.Equal(t, "profiles", profilesCmd.Use)
}

func TestProductsCmd_Use(t *testing.T) {
	assert.Equal(t, "products", productsCmd.Use)
}

func TestCollectionCmds_RequestMatchingType(t *testing.T) {
	tests := []struct {
		command  string
		wantType domain.ItemType
	}{
		{command: "posts", wantType: domain.TypePost},
		{command: "profiles", wantType: domain.TypeProfile},
		{command: "products", wantType: domain.TypeProduct},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			mock := &mockFeedService{items: sampleItems()}
			cleanup := injectFeed(mock)
			defer cleanup()

			buf := new(bytes.Buffer)
			rootCmd.SetOut(buf)
			rootCmd.SetArgs([]string{tt.command})
			defer func() {
				rootCmd.SetArgs(nil)
			}()

			err := rootCmd.Execute()

			assert.NoError(t, err)
			assert.Equal(t, tt.wantType, mock.lastType)
		})
	}
}

func TestCollectionCmds_OmittedLimitPassesNothing(t *testing.T) {
	mock := &mockFeedService{items: sampleItems()}
	cleanup := injectFeed(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"posts"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Empty(t, mock.lastLimit)
}

func TestCollectionCmds_LimitFlagPassedThrough(t *testing.T) {
	mock := &mockFeedService{items: sampleItems()}
	cleanup := injectFeed(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"profiles", "-n", "2"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetLimitFlag(profilesCmd)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, []int{2}, mock.lastLimit)
}

func TestCollectionCmds_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"products", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		typeJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"ProductCategory\"")
}

func TestCollectionCmds_ServiceNotConfigured(t *testing.T) {
	cleanup := injectFeed(nil)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"posts"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "feed service not configured")
}
