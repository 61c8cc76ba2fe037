package cache

import "errors"

// ErrCacheMiss возвращается внутренними хелперами при отсутствии ключа
var ErrCacheMiss = errors.New("cache: miss")
