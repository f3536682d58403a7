package usecase

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"tienda/internal/domain/model"
	"tienda/internal/mailer"
	"tienda/internal/pricing"
	repo "tienda/internal/repository"
	"tienda/internal/validator"
)

type CheckoutUsecase struct {
	txManager repo.TransactionManager
	cartStore repo.CartStore
	orderRepo repo.OrderRepository
	mail      mailer.Mailer
	now       func() time.Time
}

func NewCheckoutUsecase(
	txManager repo.TransactionManager,
	cartStore repo.CartStore,
	orderRepo repo.OrderRepository,
	mail mailer.Mailer,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		txManager: txManager,
		cartStore: cartStore,
		orderRepo: orderRepo,
		mail:      mail,
		now:       time.Now,
	}
}

type CheckoutOutput struct {
	OrderID int64           `json:"pedido_id"`
	Total   decimal.Decimal `json:"total_pedido"`
	Status  string          `json:"estado_pedido"`
}

// Checkout converts the identity's cart into an order in one transaction:
// every line's stock is re-checked with a conditional decrement, the order
// and its snapshot lines are written, and any shortfall rolls the whole
// thing back with nothing charged and nothing decremented. The cart is
// cleared only after commit.
func (u *CheckoutUsecase) Checkout(ctx context.Context, identity string, customerID *int64, in validator.CheckoutInput) (CheckoutOutput, error) {
	clean, err := validator.ValidateCheckout(in)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := u.cartStore.Get(ctx, identity)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}
	if cart.IsEmpty() {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "el carrito está vacío")
	}

	now := u.now()
	var created model.Order

	txErr := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		// Stable iteration keeps lock acquisition order deterministic
		// across concurrent checkouts.
		ids := sortedProductIDs(cart)

		offersByProduct, err := r.Offers().ListActiveByProducts(ctx, ids, now)
		if err != nil {
			return err
		}

		total := decimal.Zero
		lines := make([]model.OrderLine, 0, len(ids))
		for _, id := range ids {
			qty := cart.Items[id]

			p, err := r.Products().FindByID(ctx, id)
			if err == repo.ErrNotFound {
				continue
			}
			if err != nil {
				return err
			}
			if !p.IsActive {
				continue
			}

			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, id, qty)
			if err != nil {
				return err
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("stock insuficiente para %s", p.Name))
			}

			unitPrice := pricing.EffectivePrice(p, offersByProduct[id], now)
			lines = append(lines, model.OrderLine{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    qty,
				UnitPrice:   unitPrice,
			})
			total = total.Add(unitPrice.Mul(decimal.NewFromInt(qty)))
		}

		if len(lines) == 0 {
			return NewHTTPError(http.StatusBadRequest, "el carrito está vacío")
		}

		order := model.Order{
			CustomerID:       customerID,
			CustomerName:     clean.CustomerName,
			CustomerEmail:    clean.CustomerEmail,
			CustomerPhone:    clean.CustomerPhone,
			Address:          clean.Address,
			Region:           clean.Region,
			Comuna:           clean.Comuna,
			PostalCode:       clean.PostalCode,
			AddressReference: clean.AddressReference,
			Notes:            clean.Notes,
			Total:            total,
			Status:           model.OrderStatusPendingPayment,
			PaymentMethod:    model.PaymentMethod(clean.PaymentMethod),
			CreatedAt:        now,
		}
		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return err
		}
		if err := r.OrderLines().CreateBulk(ctx, orderID, lines); err != nil {
			return err
		}

		order.ID = orderID
		order.Lines = lines
		created = order
		return nil
	})
	if txErr != nil {
		if he, ok := AsHTTPError(txErr); ok {
			return CheckoutOutput{}, he
		}
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartStore.Delete(ctx, identity); err != nil {
		log.Errorf("checkout: clear cart for %s: %v", identity, err)
	}

	// Notifications are best effort; the order already committed.
	if err := u.mail.SendOrderConfirmation(&created); err != nil {
		log.Errorf("checkout: confirmation mail for order %d: %v", created.ID, err)
	}
	if err := u.mail.SendAdminOrderNotification(&created); err != nil {
		log.Errorf("checkout: admin mail for order %d: %v", created.ID, err)
	}

	return CheckoutOutput{
		OrderID: created.ID,
		Total:   created.Total,
		Status:  string(created.Status),
	}, nil
}

func sortedProductIDs(cart model.Cart) []int64 {
	ids := make([]int64, 0, len(cart.Items))
	for id := range cart.Items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
