package discord

import (
	"github.com/Adirelle/efadmintag/pkg/utils"
)

type (
	// Config enables audit notifications in Discord channels.
	Config struct {
		Token      utils.Secret `json:"token" validate:"required"`
		ChannelIDs []Snowflake  `json:"channelIds" validate:"required,min=1"`
	}
)
