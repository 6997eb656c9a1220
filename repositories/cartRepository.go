package repositories

import (
	"context"
	"errors"

	"github.com/nmthang/shopvn-api/models"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *CartRepository) WithTx(tx *gorm.DB) *CartRepository {
	return &CartRepository{db: tx}
}

// AddItem adds a product to the user's cart, creating the cart lazily. An
// existing line for the same product gets its quantity incremented instead of
// a second line; new lines snapshot the current product unit price.
func (r *CartRepository) AddItem(ctx context.Context, userID, productID, quantity int) error {
	db := r.db.WithContext(ctx)

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := db.Create(&cart).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	if err == nil {
		item.Quantity += quantity
		return db.Save(&item).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	item = models.CartItem{
		CartID:    int(cart.ID),
		ProductID: productID,
		Quantity:  quantity,
		Price:     product.Price,
	}
	return db.Create(&item).Error
}

// GetCart returns the user's cart with its lines, or nil when no cart exists.
func (r *CartRepository) GetCart(ctx context.Context, userID int) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetItems returns the cart lines with product names resolved. A missing cart
// is an empty result, not an error.
func (r *CartRepository) GetItems(ctx context.Context, userID int) ([]models.CartItemResponse, error) {
	cart, err := r.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return []models.CartItemResponse{}, nil
	}

	productIDs := make([]int, 0, len(cart.Items))
	for _, item := range cart.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	var products []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, err
	}
	names := make(map[int]string, len(products))
	for _, product := range products {
		names[int(product.ID)] = product.Name
	}

	items := make([]models.CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, models.CartItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: names[item.ProductID],
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return items, nil
}

// SetQuantity overwrites the quantity of an existing line and refreshes its
// unit price snapshot from the current product price. Missing cart or line is
// a silent no-op.
func (r *CartRepository) SetQuantity(ctx context.Context, userID, productID, quantity int) error {
	db := r.db.WithContext(ctx)

	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err == nil {
		item.Price = product.Price
	}

	item.Quantity = quantity
	return db.Save(&item).Error
}

// RemoveItem deletes a single line. The delete is issued directly against the
// row so a read that follows immediately sees it gone.
func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID int) error {
	db := r.db.WithContext(ctx)

	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartNotFound
	}
	if err != nil {
		return err
	}

	// Hard delete: a soft-deleted row would still occupy the unique
	// (cart, product) slot and block re-adding the product later.
	result := db.Unscoped().
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearItems deletes exactly the given lines, by ID. Lines added to the cart
// after the caller loaded this set are left alone.
func (r *CartRepository) ClearItems(ctx context.Context, items []models.CartItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return r.db.WithContext(ctx).Unscoped().Delete(&models.CartItem{}, ids).Error
}
