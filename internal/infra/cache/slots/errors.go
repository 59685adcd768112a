package slots

import "errors"

var (
	// ErrCacheRead ошибка чтения из кэша
	ErrCacheRead = errors.New("slots.cache: failed to read cached slots")

	// ErrCacheWrite ошибка записи в кэш
	ErrCacheWrite = errors.New("slots.cache: failed to write cached slots")

	// ErrCacheInvalidate ошибка сброса кэша
	ErrCacheInvalidate = errors.New("slots.cache: failed to invalidate cached slots")
)
