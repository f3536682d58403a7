package repository

import (
	"context"
	"time"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"

	"gorm.io/gorm"
)

type OfferGormRepository struct {
	db *gorm.DB
}

func NewOfferGormRepository(db *gorm.DB) *OfferGormRepository {
	return &OfferGormRepository{db: db}
}

func (r *OfferGormRepository) ListActiveByProduct(ctx context.Context, productID int64, now time.Time) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_active = ? AND starts_at <= ? AND ends_at >= ?", productID, true, now, now).
		Order("offer_price asc").
		Find(&offers).Error
	if err != nil {
		return []model.Offer{}, err
	}
	return offers, nil
}

func (r *OfferGormRepository) ListActiveByProducts(ctx context.Context, productIDs []int64, now time.Time) (map[int64][]model.Offer, error) {
	out := make(map[int64][]model.Offer, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Where("product_id IN ? AND is_active = ? AND starts_at <= ? AND ends_at >= ?", productIDs, true, now, now).
		Order("offer_price asc").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}

	for _, o := range offers {
		out[o.ProductID] = append(out[o.ProductID], o)
	}
	return out, nil
}

func (r *OfferGormRepository) ListByProduct(ctx context.Context, productID int64) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("starts_at desc").
		Find(&offers).Error
	if err != nil {
		return []model.Offer{}, err
	}
	return offers, nil
}

func (r *OfferGormRepository) Create(ctx context.Context, o model.Offer) (model.Offer, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Offer{}, err
	}
	return o, nil
}

func (r *OfferGormRepository) SetActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Offer{}).
		Where("id IN ?", ids).
		Update("is_active", active)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *OfferGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Offer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
