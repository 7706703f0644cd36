package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParsePair(t *testing.T) {
	pair, err := GeneratePair("user-1", "leader")
	require.NoError(t, err)

	claims, err := ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "leader", claims.Role)

	rc, err := ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", rc.UserID)
}

func TestAccessAndRefreshNotInterchangeable(t *testing.T) {
	pair, err := GeneratePair("user-1", "admin")
	require.NoError(t, err)

	_, err = ParseAccess(pair.RefreshToken)
	assert.Error(t, err)

	_, err = ParseRefresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestParseAccessExpired(t *testing.T) {
	oldTTL := AccessTTL
	AccessTTL = -time.Minute
	defer func() { AccessTTL = oldTTL }()

	pair, err := GeneratePair("user-1", "volunteer")
	require.NoError(t, err)

	_, err = ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseAccessGarbage(t *testing.T) {
	_, err := ParseAccess("not.a.token")
	assert.Error(t, err)
}
