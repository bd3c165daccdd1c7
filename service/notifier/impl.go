package notifier

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/service/redis"
)

type Cfg struct {
	Redis   redis.Service
	Channel string

	// optional discord mirror for ops visibility
	DiscordBotKey    string
	DiscordChannelId string
}

type impl struct {
	redis            redis.Service
	channel          string
	discord          *discordgo.Session
	discordChannelId string
}

func New(cfg *Cfg) Service {
	im := &impl{
		redis:            cfg.Redis,
		channel:          cfg.Channel,
		discordChannelId: cfg.DiscordChannelId,
	}
	if cfg.DiscordBotKey != "" {
		discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.DiscordBotKey))
		if err != nil {
			log.Log().WithField("err", err).Warn("failed to connect to discord, mirror disabled")
		} else {
			im.discord = discord
		}
	}
	return im
}

func (im *impl) Notify(c ctx.Ctx, severity Severity, message string) {
	evt := Event{
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "message": message}).Error("failed to marshal notification")
		return
	}

	if err := im.redis.Publish(c, im.channel, payload); err != nil {
		c.WithFields(log.Fields{"err": err, "message": message}).Error("failed to publish notification")
	}

	if im.discord != nil {
		if _, err := im.discord.ChannelMessageSend(im.discordChannelId, fmt.Sprintf("[%s] %s", severity, message)); err != nil {
			c.WithFields(log.Fields{"err": err, "message": message}).Warn("failed to mirror notification to discord")
		}
	}
}
