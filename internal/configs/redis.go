package config

import (
	"github.com/redis/rueidis"
	"github.com/rs/zerolog/log"
)

func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("failed to create redis client")
	}

	return redisClient
}
