package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/mamede573/BarberManager/internal/civil"
)

// BookingLock serializa check-then-write por (barbeiro, dia civil).
// Duas requisições concorrentes para a mesma agenda passam uma de cada vez
// pela revalidação + insert; é o que fecha a janela de double-booking com
// várias réplicas da API.
type BookingLock struct {
	rdb *redis.Client
}

var ErrLockNotAcquired = errors.New("booking lock not acquired")

const (
	lockTTL      = 10 * time.Second
	lockWait     = 3 * time.Second
	lockInterval = 50 * time.Millisecond
)

// compara o token antes de apagar: nunca solta lock de outra requisição
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewBookingLock(rdb *redis.Client) *BookingLock {
	return &BookingLock{rdb: rdb}
}

func (l *BookingLock) Acquire(
	ctx context.Context,
	barberID string,
	date civil.Date,
) (func(), error) {

	key := fmt.Sprintf("booking_lock:%s:%s", barberID, date.String())
	token := uuid.NewString()

	deadline := time.Now().Add(lockWait)

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}

		if ok {
			release := func() {
				rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				releaseScript.Run(rctx, l.rdb, []string{key}, token)
			}
			return release, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockInterval):
		}
	}
}
