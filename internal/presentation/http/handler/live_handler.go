package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/feed"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/response"
)

// LiveHandler serves the in-memory open-order feed kept current by the
// order event stream.
type LiveHandler struct {
	feed *feed.Feed
}

// NewLiveHandler creates a new live feed handler
func NewLiveHandler(f *feed.Feed) *LiveHandler {
	return &LiveHandler{feed: f}
}

// Orders returns the current open-order snapshot
func (h *LiveHandler) Orders(c *gin.Context) {
	orders := h.feed.List()
	response.OK(c, "Live orders retrieved successfully", gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// Order returns one order from the snapshot
func (h *LiveHandler) Order(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order := h.feed.Get(id)
	if order == nil {
		response.NotFound(c, "Order is not on the live feed")
		return
	}
	response.OK(c, "Live order retrieved successfully", order)
}
