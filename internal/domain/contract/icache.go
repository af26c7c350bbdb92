package contract

import (
	"context"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// IHomeCache is a read-through cache for listing reads. A miss is (nil, false, nil).
type IHomeCache interface {
	GetHome(ctx context.Context, homeID string) (*entity.Home, bool, error)
	SetHome(ctx context.Context, home *entity.Home) error
	InvalidateHome(ctx context.Context, homeID string) error

	GetHomeList(ctx context.Context) ([]*entity.Home, bool, error)
	SetHomeList(ctx context.Context, homes []*entity.Home) error
	InvalidateHomeLists(ctx context.Context) error
}
