package usecase

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"

	"tienda/internal/mailer"
	repo "tienda/internal/repository"
)

// MaintenanceUsecase hosts the scheduled jobs: expired-cart sweeps and the
// pending-payment reminder pass.
type MaintenanceUsecase struct {
	cartStore     repo.CartStore
	orderRepo     repo.OrderRepository
	orderLineRepo repo.OrderLineRepository
	mail          mailer.Mailer
	now           func() time.Time
}

func NewMaintenanceUsecase(
	cartStore repo.CartStore,
	orderRepo repo.OrderRepository,
	orderLineRepo repo.OrderLineRepository,
	mail mailer.Mailer,
) *MaintenanceUsecase {
	return &MaintenanceUsecase{
		cartStore:     cartStore,
		orderRepo:     orderRepo,
		orderLineRepo: orderLineRepo,
		mail:          mail,
		now:           time.Now,
	}
}

func (u *MaintenanceUsecase) PurgeExpiredCarts(ctx context.Context) {
	n, err := u.cartStore.PurgeExpired(ctx)
	if err != nil {
		log.Errorf("maintenance: purge carts: %v", err)
		return
	}
	if n > 0 {
		log.Infof("maintenance: purged %d expired carts", n)
	}
}

// RemindPendingPayments mails every order still unpaid after the grace
// period. Failures are logged per order so one bad address does not stop
// the pass.
func (u *MaintenanceUsecase) RemindPendingPayments(ctx context.Context, olderThan time.Duration) {
	cutoff := u.now().Add(-olderThan)
	orders, err := u.orderRepo.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		log.Errorf("maintenance: list pending orders: %v", err)
		return
	}

	for i := range orders {
		o := &orders[i]
		lines, err := u.orderLineRepo.ListByOrderID(ctx, o.ID)
		if err != nil {
			log.Errorf("maintenance: lines for order %d: %v", o.ID, err)
			continue
		}
		o.Lines = lines
		if err := u.mail.SendPendingPaymentReminder(o); err != nil {
			log.Errorf("maintenance: reminder for order %d: %v", o.ID, err)
		}
	}
}
