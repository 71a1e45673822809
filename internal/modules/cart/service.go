package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/users"
)

type Service struct {
	repo *Repo
	db   *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: NewRepo(db), db: db}
}

func (s *Service) Add(ctx context.Context, userID, skuID int64, quantity int) (CartItem, error) {
	return s.repo.Add(ctx, userID, skuID, quantity)
}

type GroupedCart struct {
	Data       []ShopCart `json:"data"`
	TotalItems int64      `json:"totalItems"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}

// List returns the user's cart grouped by shop, newest items first.
// Grouping happens here rather than in SQL so a shop's block keeps the
// order its items were added in.
func (s *Service) List(ctx context.Context, userID int64, page, limit int) (GroupedCart, error) {
	res, err := s.repo.List(ctx, ListParams{UserID: userID, Page: page, PageSize: limit})
	if err != nil {
		return GroupedCart{}, err
	}

	shopIDs := make([]int64, 0, len(res.Items))
	seen := make(map[int64]bool)
	for _, item := range res.Items {
		if item.SKU == nil {
			continue
		}
		if id := item.SKU.CreatedByID; !seen[id] {
			seen[id] = true
			shopIDs = append(shopIDs, id)
		}
	}

	shops := make(map[int64]users.User, len(shopIDs))
	if len(shopIDs) > 0 {
		var rows []users.User
		if err := s.db.WithContext(ctx).Find(&rows, "id IN ?", shopIDs).Error; err != nil {
			return GroupedCart{}, err
		}
		for _, u := range rows {
			shops[u.ID] = u
		}
	}

	grouped := make([]ShopCart, 0, len(shopIDs))
	index := make(map[int64]int, len(shopIDs))
	for _, item := range res.Items {
		if item.SKU == nil {
			continue
		}
		shopID := item.SKU.CreatedByID
		i, ok := index[shopID]
		if !ok {
			info := ShopInfo{ID: shopID}
			if u, ok := shops[shopID]; ok {
				info.Name = u.Name
				info.Avatar = u.Avatar
			}
			grouped = append(grouped, ShopCart{Shop: info})
			i = len(grouped) - 1
			index[shopID] = i
		}
		grouped[i].CartItems = append(grouped[i].CartItems, item)
	}

	return GroupedCart{
		Data:       grouped,
		TotalItems: res.Total,
		Page:       pageOr(page, 1),
		Limit:      pageOr(limit, 20),
	}, nil
}

func (s *Service) UpdateItem(ctx context.Context, userID, cartItemID, skuID int64, quantity int) (CartItem, error) {
	return s.repo.UpdateItem(ctx, userID, cartItemID, skuID, quantity)
}

func (s *Service) Delete(ctx context.Context, userID int64, cartItemIDs []int64) (int64, error) {
	return s.repo.Delete(ctx, userID, cartItemIDs)
}

func pageOr(v, def int) int {
	if v < 1 {
		return def
	}
	return v
}
