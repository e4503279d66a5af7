package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" confirmed ")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)
	assert.True(t, s.Known())

	s, err = ParseStatus("on-hold")
	require.NoError(t, err)
	assert.Equal(t, Status("on-hold"), s)
	assert.False(t, s.Known())

	_, err = ParseStatus("   ")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "status_required"))
}

func TestInitialStatusIsPending(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
