package middleware

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/redis/go-redis/v9"
)

// Counter es el almacén de ventanas fijas que usa RateLimiter. Expire sólo
// debe fijar el TTL cuando la clave todavía no tiene uno.
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type RedisCounter struct {
	Client *redis.Client
}

func (c RedisCounter) Incr(ctx context.Context, key string) (int64, error) {
	return c.Client.Incr(ctx, key).Result()
}

// Expire usa EXPIRE NX: no alarga una ventana que ya tiene TTL.
func (c RedisCounter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.Client.ExpireNX(ctx, key, ttl).Err()
}

// NewRedisCounter devuelve nil si no hay dirección o Redis no responde;
// el limitador queda desactivado en ese caso.
func NewRedisCounter(addr string) Counter {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: failed to connect to Redis at %s: %v. Rate limiting disabled.", addr, err)
		client.Close()
		return nil
	}
	log.Printf("Redis connected successfully: %s", addr)
	return RedisCounter{Client: client}
}

// RateLimiter admite limit peticiones por period y por IP. Sin contador, o si
// el contador falla, la petición pasa. El TTL se reintenta en cada petición,
// así un EXPIRE fallido no deja la clave bloqueada para siempre.
func RateLimiter(counter Counter, limit int, period time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if counter == nil || limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := "rate_limit:" + clientIP(r) + ":" + r.URL.Path
			count, err := counter.Incr(r.Context(), key)
			if err != nil {
				log.Printf("rate limiter: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if err := counter.Expire(r.Context(), key, period); err != nil {
				log.Printf("rate limiter: %v", err)
			}
			if count > int64(limit) {
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, map[string]string{"error": "Too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
