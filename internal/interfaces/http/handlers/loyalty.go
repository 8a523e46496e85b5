// internal/interfaces/http/handlers/loyalty.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/cart"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/loyalty"
	"github.com/gokhanazp/riversideburger-sub000/internal/interfaces/http/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// LoyaltyHandler handles loyalty points endpoints
type LoyaltyHandler struct {
	loyaltyService *loyalty.Service
	cartService    *cart.Service
	config         *config.Config
}

// NewLoyaltyHandler creates a new loyalty handler
func NewLoyaltyHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyService: loyalty.NewService(db, cfg),
		cartService:    cart.NewService(db, redisClient, cfg),
		config:         cfg,
	}
}

// GetBalance handles GET /loyalty/balance
func (h *LoyaltyHandler) GetBalance(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	balance, err := h.loyaltyService.GetBalance(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve loyalty balance",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Loyalty balance retrieved successfully",
		"data": gin.H{
			"points": balance,
		},
	})
}

// GetTransactions handles GET /loyalty/transactions
func (h *LoyaltyHandler) GetTransactions(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	transactions, err := h.loyaltyService.GetTransactions(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve loyalty transactions",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Loyalty transactions retrieved successfully",
		"data":    transactions,
	})
}

// QuoteRedemption handles POST /loyalty/quote - previews a redemption
// against the current cart without committing anything
func (h *LoyaltyHandler) QuoteRedemption(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req struct {
		RedeemPoints int64 `json:"redeem_points" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userCart, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	balance, err := h.loyaltyService.GetBalance(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve loyalty balance",
		})
		return
	}

	subtotal := userCart.Subtotal()
	redemption := loyalty.ApplyRedemption(
		subtotal,
		req.RedeemPoints*loyalty.PointValueMinorUnits,
		balance*loyalty.PointValueMinorUnits,
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Redemption quoted successfully",
		"data": gin.H{
			"subtotal":   subtotal,
			"balance":    balance,
			"redemption": redemption,
		},
	})
}
