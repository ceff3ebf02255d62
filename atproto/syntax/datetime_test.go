package syntax

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDatetimeParse(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []string{
		"1985-04-12T23:20:50.123Z",
		"1985-04-12T23:20:50Z",
		"1985-04-12T23:20:50.123+00:00",
		"2022-12-01T00:00:00+05:30",
	} {
		d, err := ParseDatetime(s)
		assert.NoError(err, s)
		assert.Equal(s, d.String())
	}

	for _, s := range []string{
		"",
		"1985-04-12",
		"1985-04-12T23:20:50.123-00:00",
		"1985-04-12 23:20:50Z",
	} {
		_, err := ParseDatetime(s)
		assert.Error(err, s)
	}
}

func TestDatetimeFromTime(t *testing.T) {
	assert := assert.New(t)

	loc := time.FixedZone("UTC+2", 2*60*60)
	d := DatetimeFromTime(time.Date(2023, 4, 5, 8, 9, 10, 123000000, loc))
	assert.Equal("2023-04-05T06:09:10.123Z", d.String())

	now := DatetimeNow()
	_, err := ParseDatetime(now.String())
	assert.NoError(err)
}
