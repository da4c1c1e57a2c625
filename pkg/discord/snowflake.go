package discord

import (
	"errors"
	"fmt"
	"strconv"
)

// Snowflake is a Discord identifier, here a channel ID.
// cf https://discord.com/developers/docs/reference#snowflakes
type Snowflake string

// Snowflakes below this value would predate the Discord epoch.
const minSnowflake uint64 = 1 << 22

var ErrInvalidSnowflake = errors.New("invalid snowflake")

func (s Snowflake) String() string {
	return string(s)
}

func (s *Snowflake) UnmarshalText(text []byte) error {
	value, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSnowflake, err)
	} else if value < minSnowflake {
		return ErrInvalidSnowflake
	}
	*s = Snowflake(text)
	return nil
}
