package infra_redis_init

import (
	"fmt"
	"log"

	"github.com/go-redis/redis"

	"github.com/ibanezbetes/trinity-sub006/internal/config"
)

// MustEstablishConn connects the shared pool-cache client or dies. The pool
// cache is the only redis consumer in this service, so DB 0 is fine.
func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		log.Fatalf("pool cache redis ping failed (%s): %v", addr, err)
	}
	log.Printf("pool cache redis connected : %s", addr)

	return client
}
