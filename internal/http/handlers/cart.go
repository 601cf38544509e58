package handlers

import (
	"database/sql"
	"io"
	"net/http"
	"sync"
	"time"

	"tourbooking/internal/booking"
	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/http/middleware"
	"tourbooking/internal/repositories"
	"tourbooking/internal/services"
	"tourbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	cartCfgMu        sync.RWMutex
	checkoutBaseURL  = "http://localhost:3000"
	cartPollInterval = 3 * time.Second
)

// SetCartConfig wires the checkout link base and the stream poll interval.
func SetCartConfig(baseURL string, pollInterval time.Duration) {
	cartCfgMu.Lock()
	defer cartCfgMu.Unlock()
	if baseURL != "" {
		checkoutBaseURL = baseURL
	}
	if pollInterval > 0 {
		cartPollInterval = pollInterval
	}
}

func cartService(c *gin.Context) services.CartService {
	cartCfgMu.RLock()
	base := checkoutBaseURL
	cartCfgMu.RUnlock()
	return services.CartService{
		CartRepo:        repositories.CartRepository{},
		TourRepo:        repositories.TourRepository{},
		RequestID:       middleware.GetRequestID(c),
		CheckoutBaseURL: base,
	}
}

// GET /api/cart
func GetCart(c *gin.Context) {
	svc := cartService(c)
	items, summary, err := svc.Cart(middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "summary": summary})
}

type addCartRequest struct {
	TourID      int64    `json:"tourId"`
	ActivityIDs []string `json:"activityIds"`
}

func loadTour(c *gin.Context, tourID int64) (*models.Tour, bool) {
	tour, err := (repositories.TourRepository{}).GetByID(tourID)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "tour"})
		} else {
			RespondDomainError(c, domain.InternalError{Err: err})
		}
		return nil, false
	}
	return &tour, true
}

// POST /api/cart/items
func AddCartItem(c *gin.Context) {
	var req addCartRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	tour, ok := loadTour(c, req.TourID)
	if !ok {
		return
	}

	svc := cartService(c)
	res := svc.AddBookingToCart(middleware.CurrentUserID(c), tour, req.ActivityIDs)
	respondOpResult(c, res)
}

// POST /api/cart/items/partial
func AddPartialCartItem(c *gin.Context) {
	var req addCartRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	tour, ok := loadTour(c, req.TourID)
	if !ok {
		return
	}

	svc := cartService(c)
	res := svc.AddPartialBookingToCart(middleware.CurrentUserID(c), tour, req.ActivityIDs)
	respondOpResult(c, res)
}

type updateCartRequest struct {
	SelectedDate *string                `json:"selectedDate"`
	ClearDate    bool                   `json:"clearDate"`
	Travelers    *models.TravelerCounts `json:"travelers"`
	ActivityIDs  []string               `json:"activityIds"`
}

func (r updateCartRequest) selection(c *gin.Context, base models.BookingSelection) (models.BookingSelection, bool) {
	sel := base
	if r.ClearDate {
		sel.SelectedDate = nil
	} else if r.SelectedDate != nil {
		d, err := utils.ParseDate(*r.SelectedDate)
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "selectedDate", Msg: "expected YYYY-MM-DD"})
			return sel, false
		}
		sel.SelectedDate = &d
	}
	if r.Travelers != nil {
		sel.Travelers = r.Travelers
	}
	if r.ActivityIDs != nil {
		sel.ActivityIDs = r.ActivityIDs
	}
	return sel, true
}

// PUT /api/cart/items/:id
func UpdateCartItem(c *gin.Context) {
	itemID, ok := PathID(c)
	if !ok {
		return
	}
	var req updateCartRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	userID := middleware.CurrentUserID(c)
	svc := cartService(c)

	item, err := svc.CartRepo.GetByID(itemID)
	if err != nil || item.UserID != userID {
		RespondDomainError(c, domain.NotFoundError{Resource: "cart item"})
		return
	}

	sel, ok := req.selection(c, item.Selection())
	if !ok {
		return
	}
	respondOpResult(c, svc.UpdateItemFromSelection(userID, itemID, sel))
}

// DELETE /api/cart/items/:id
func DeleteCartItem(c *gin.Context) {
	itemID, ok := PathID(c)
	if !ok {
		return
	}
	svc := cartService(c)
	respondOpResult(c, svc.RemoveFromCart(middleware.CurrentUserID(c), itemID))
}

type resolveActionRequest struct {
	TourID        int64    `json:"tourId"`
	Intent        string   `json:"intent"`
	DetectChanges bool     `json:"detectChanges"`
	ActivityIDs   []string `json:"activityIds"`
}

// POST /api/cart/resolve-action
func ResolveCartAction(c *gin.Context) {
	var req resolveActionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.TourID <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "tourId", Msg: "tour id is required"})
		return
	}

	svc := cartService(c)
	resolved, err := svc.ResolveAction(
		middleware.CurrentUserID(c), req.TourID,
		booking.ParseIntent(req.Intent), req.DetectChanges, req.ActivityIDs,
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

type cartEvent struct {
	name    string
	payload gin.H
}

// GET /api/cart/stream — server-sent events with the live cart.
func CartStream(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	svc := cartService(c)

	cartCfgMu.RLock()
	interval := cartPollInterval
	cartCfgMu.RUnlock()

	events := make(chan cartEvent, 8)
	unsubscribe := svc.Subscribe(c.Request.Context(), userID, interval,
		func(items []models.CartItem, summary models.CartSummary) {
			select {
			case events <- cartEvent{name: "cart", payload: gin.H{"items": items, "summary": summary}}:
			default:
			}
		},
		func(err error) {
			select {
			case events <- cartEvent{name: "error", payload: gin.H{"error": err.Error()}}:
			default:
			}
		},
	)
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-events:
			c.SSEvent(ev.name, ev.payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func respondOpResult(c *gin.Context, res domain.OpResult) {
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"success": res.Success, "message": res.Message})
}
