package nbfx

import "time"

// ticksBetweenEpochs is the number of 100ns ticks between
// 0001-01-01T00:00:00 UTC (the DateTime epoch) and 1970-01-01T00:00:00 UTC
// (the Unix epoch).
const ticksBetweenEpochs uint64 = 621355968000000000

// dateTimeTZMask isolates the top two bits of the wire DateTime payload that
// flag its timezone kind.
const dateTimeTZMask = uint64(3) << 62

// dateTimeTicksMask isolates the low 62 bits holding the tick count.
const dateTimeTicksMask = ^dateTimeTZMask

// dateTimeTZ enumerates the wire's timezone flag.
type dateTimeTZ uint8

const (
	tzUnspecified dateTimeTZ = 0
	tzUTC         dateTimeTZ = 1
	tzLocal       dateTimeTZ = 2
)

// ticksToTime converts a raw 8-byte DateTime payload (as read off the wire,
// already decoded from little-endian) into a UTC time.Time. TZ=0
// (unspecified) and TZ=2 (local) are both treated as plain absolute ticks;
// TZ=1 (UTC) is rejected as Unsupported, since correcting it into the same
// absolute timeline requires offset information this codec does not track.
func ticksToTime(raw uint64) (time.Time, error) {
	tz := dateTimeTZ(raw >> 62)
	ticks := raw & dateTimeTicksMask

	if tz == tzUTC {
		return time.Time{}, unsupportedError(DateTimeText)
	}

	unixTicks := int64(ticks) - int64(ticksBetweenEpochs)
	nanos := unixTicks * 100
	return time.Unix(0, nanos).UTC(), nil
}

// timeToTicks converts a UTC time.Time to the raw 8-byte DateTime wire
// payload (still host-endian uint64; the caller writes it little-endian).
// The TZ flag is always set to "local" (2), which ticksToTime accepts as
// plain absolute ticks, so encoding and decoding a DateTime round-trip.
func timeToTicks(t time.Time) uint64 {
	nanos := t.UTC().UnixNano()
	ticks := uint64(nanos/100 + int64(ticksBetweenEpochs))
	return ticks | (uint64(tzLocal) << 62)
}
