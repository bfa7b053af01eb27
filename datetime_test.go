package nbfx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicksToTime_UnspecifiedEpoch(t *testing.T) {
	// TZ=0 (unspecified), ticks = ticksBetweenEpochs -> 1970-01-01T00:00:00Z
	raw := ticksBetweenEpochs | (uint64(tzUnspecified) << 62)
	got, err := ticksToTime(raw)
	require.NoError(t, err)
	assert.True(t, time.Unix(0, 0).UTC().Equal(got))
}

func TestTicksToTime_LocalTreatedAsPlainTicks(t *testing.T) {
	raw := ticksBetweenEpochs | (uint64(tzLocal) << 62)
	got, err := ticksToTime(raw)
	require.NoError(t, err)
	assert.True(t, time.Unix(0, 0).UTC().Equal(got))
}

func TestTicksToTime_UTCUnsupported(t *testing.T) {
	raw := ticksBetweenEpochs | (uint64(tzUTC) << 62)
	_, err := ticksToTime(raw)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestTimeToTicks_AlwaysSetsLocalFlag(t *testing.T) {
	now := time.Date(2026, 7, 31, 12, 30, 0, 0, time.UTC)
	raw := timeToTicks(now)
	assert.Equal(t, uint64(tzLocal), raw>>62)
}

func TestTicksRoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	raw := timeToTicks(now)
	got, err := ticksToTime(raw)
	require.NoError(t, err)
	assert.True(t, now.Equal(got))
}
