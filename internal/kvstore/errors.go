package kvstore

import "errors"

// ErrNotFound возвращается, когда по ключу ничего не сохранено.
var ErrNotFound = errors.New("key not found")
