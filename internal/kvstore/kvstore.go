package kvstore

import "context"

// Store определяет слот хранения "ключ-значение", в котором живёт
// всё долговременное состояние приложения.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
