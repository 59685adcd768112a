// Package slots кэширует сгенерированные списки слотов в Redis.
//
// Один hash на (компания, дата): slots:{company}:{date}.
// Поле hash - {professional|any}:{duration}, значение - JSON со слотами.
// Любая запись, меняющая занятость дня, удаляет hash этого дня целиком.
package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

const (
	keyPrefix = "slots"
	scanCount = 100
)

// Key параметры запроса, определяющие список слотов
type Key struct {
	CompanyID       int64
	Date            types.Date
	ProfessionalID  *int64
	DurationMinutes int
}

type cachedSlot struct {
	Time      string `json:"t"`
	Available bool   `json:"a"`
	Reason    string `json:"r,omitempty"`
}

// Cache кэш слотов поверх Redis
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// New создает кэш с временем жизни записей ttl
func New(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает слоты из кэша; ok = false при промахе
func (c *Cache) Get(ctx context.Context, key Key) ([]domain.Slot, bool, error) {
	raw, err := c.client.HGet(ctx, dayKey(key.CompanyID, key.Date), field(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCacheRead, err)
	}

	var cached []cachedSlot
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("%w: decode: %v", ErrCacheRead, err)
	}

	slots := make([]domain.Slot, len(cached))
	for i, s := range cached {
		slots[i] = domain.Slot{
			Time:      types.TimeString(s.Time),
			Available: s.Available,
			Reason:    domain.SlotBlockReason(s.Reason),
		}
	}
	return slots, true, nil
}

// Set сохраняет слоты; TTL выставляется на весь hash дня
func (c *Cache) Set(ctx context.Context, key Key, slots []domain.Slot) error {
	cached := make([]cachedSlot, len(slots))
	for i, s := range slots {
		cached[i] = cachedSlot{Time: s.Time.String(), Available: s.Available, Reason: string(s.Reason)}
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrCacheWrite, err)
	}

	hashKey := dayKey(key.CompanyID, key.Date)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hashKey, field(key), raw)
		pipe.Expire(ctx, hashKey, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return nil
}

// Invalidate удаляет закэшированные слоты компании на указанные даты
func (c *Cache) Invalidate(ctx context.Context, companyID int64, dates ...types.Date) error {
	if len(dates) == 0 {
		return nil
	}
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = dayKey(companyID, d)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheInvalidate, err)
	}
	return nil
}

// InvalidateCompany удаляет все закэшированные слоты компании
// Используется при смене настроек и рабочих часов, которые влияют на любые даты
func (c *Cache) InvalidateCompany(ctx context.Context, companyID int64) error {
	pattern := fmt.Sprintf("%s:%d:*", keyPrefix, companyID)

	var keys []string
	iter := c.client.Scan(ctx, 0, pattern, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: scan: %v", ErrCacheInvalidate, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheInvalidate, err)
	}
	return nil
}

func dayKey(companyID int64, date types.Date) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, companyID, date.String())
}

func field(key Key) string {
	professional := "any"
	if key.ProfessionalID != nil {
		professional = strconv.FormatInt(*key.ProfessionalID, 10)
	}
	return professional + ":" + strconv.Itoa(key.DurationMinutes)
}

// Noop кэш для режима без Redis: всегда промах
type Noop struct{}

func (Noop) Get(context.Context, Key) ([]domain.Slot, bool, error) { return nil, false, nil }

func (Noop) Set(context.Context, Key, []domain.Slot) error { return nil }

func (Noop) Invalidate(context.Context, int64, ...types.Date) error { return nil }

func (Noop) InvalidateCompany(context.Context, int64) error { return nil }
