package storage

import (
	"context"
	"errors"

	"github.com/socialhax/socialhax/internal/kvstore"
	"go.uber.org/zap"
)

// ProfilePicKey - одноразовый слот передачи аватара между страницами.
const ProfilePicKey = "prank_profile_pic"

// ErrNoProfilePic возвращается, когда в слоте нет аватара.
var ErrNoProfilePic = errors.New("no profile picture stored")

// ProfilePicStore - одноразовый слот для data URI аватара: значение
// выдаётся один раз и сразу удаляется.
type ProfilePicStore struct {
	kv     kvstore.Store
	logger *zap.Logger
}

// NewProfilePicStore создаёт хранилище аватара.
func NewProfilePicStore(kv kvstore.Store, logger *zap.Logger) *ProfilePicStore {
	return &ProfilePicStore{kv: kv, logger: logger}
}

// Put кладёт data URI в слот. Ошибка записи логируется и не возвращается.
func (s *ProfilePicStore) Put(ctx context.Context, dataURI string) {
	if err := s.kv.Set(ctx, ProfilePicKey, dataURI); err != nil {
		s.logger.Error("failed to store profile picture", zap.Error(err))
	}
}

// Take забирает data URI из слота и удаляет его. Повторный вызов
// вернёт ErrNoProfilePic.
func (s *ProfilePicStore) Take(ctx context.Context) (string, error) {
	dataURI, err := s.kv.Get(ctx, ProfilePicKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return "", ErrNoProfilePic
		}
		s.logger.Warn("failed to read profile picture slot", zap.Error(err))
		return "", ErrNoProfilePic
	}

	if err := s.kv.Delete(ctx, ProfilePicKey); err != nil {
		s.logger.Warn("failed to clear profile picture slot", zap.Error(err))
	}

	return dataURI, nil
}
