package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sunward-optics/frametag/internal/classifier"
	"github.com/sunward-optics/frametag/internal/database"
	"github.com/sunward-optics/frametag/internal/domain"
	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/processor"
	"github.com/sunward-optics/frametag/internal/reconcile"
)

const (
	maxBatchSize        = 250
	defaultHistoryLimit = 100
)

// Handler handles HTTP requests for the tagging API.
type Handler struct {
	classifier *classifier.Classifier
	reconciler *reconcile.Reconciler
	batch      *processor.BatchProcessor
	history    *database.HistoryRepository // nil when history is disabled
	logger     logger.Logger
}

// NewHandler creates an API handler. history may be nil.
func NewHandler(
	c *classifier.Classifier,
	r *reconcile.Reconciler,
	batch *processor.BatchProcessor,
	history *database.HistoryRepository,
	log logger.Logger,
) *Handler {
	return &Handler{
		classifier: c,
		reconciler: r,
		batch:      batch,
		history:    history,
		logger:     log,
	}
}

// TagRequest is a single tagging request.
type TagRequest struct {
	Product domain.Product `json:"product" binding:"required"`
}

// TagResponse is a single tagging response.
type TagResponse struct {
	ProductID     string   `json:"product_id"`
	SuggestedTags []string `json:"suggested_tags"`
	AlreadyTagged bool     `json:"already_tagged"`
}

// BatchTagRequest is a batch tagging request.
type BatchTagRequest struct {
	Products []domain.Product `json:"products" binding:"required,min=1"`
}

// BatchTagResponse is a batch tagging response.
type BatchTagResponse struct {
	Results       []TagResponse `json:"results"`
	Total         int           `json:"total"`
	NeedsTagging  int           `json:"needs_tagging"`
	AlreadyTagged int           `json:"already_tagged"`
}

// Tag handles POST /api/v1/tag.
func (h *Handler) Tag(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid tag request", logger.Error(err))
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result := h.classifier.Classify(c.Request.Context(), &req.Product)
	reconciled := h.reconciler.Reconcile(&req.Product, result.Tags)

	c.JSON(http.StatusOK, toTagResponse(reconciled))
}

// TagBatch handles POST /api/v1/tag/batch.
func (h *Handler) TagBatch(c *gin.Context) {
	var req BatchTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch tag request", logger.Error(err))
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if len(req.Products) > maxBatchSize {
		c.JSON(http.StatusRequestEntityTooLarge, errorMessage("batch exceeds maximum size"))
		return
	}

	reconciled := h.batch.Process(c.Request.Context(), req.Products)

	resp := BatchTagResponse{
		Results: make([]TagResponse, len(reconciled)),
		Total:   len(reconciled),
	}
	for i, rp := range reconciled {
		resp.Results[i] = toTagResponse(rp)
		if rp.AlreadyTagged {
			resp.AlreadyTagged++
		} else {
			resp.NeedsTagging++
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ListRules handles GET /api/v1/rules.
func (h *Handler) ListRules(c *gin.Context) {
	table := h.classifier.Rules()

	type ruleView struct {
		Tag      string   `json:"tag"`
		Keywords []string `json:"keywords"`
		Pattern  string   `json:"pattern,omitempty"`
	}
	views := make([]ruleView, len(table))
	for i, rule := range table {
		views[i] = ruleView{
			Tag:      rule.Tag().String(),
			Keywords: rule.Keywords,
			Pattern:  rule.Pattern,
		}
	}
	c.JSON(http.StatusOK, gin.H{"rules": views, "count": len(views)})
}

// History handles GET /api/v1/history.
func (h *Handler) History(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, errorMessage("history is not enabled"))
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, errorMessage("invalid limit"))
			return
		}
		limit = parsed
	}

	var (
		entries []database.HistoryEntry
		err     error
	)
	if productID := c.Query("product_id"); productID != "" {
		entries, err = h.history.ListByProduct(c.Request.Context(), productID)
	} else {
		entries, err = h.history.ListRecent(c.Request.Context(), limit)
	}
	if err != nil {
		h.logger.Error("history lookup failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

func toTagResponse(rp domain.ReconciledProduct) TagResponse {
	return TagResponse{
		ProductID:     rp.Product.ID,
		SuggestedTags: domain.TagStrings(rp.SuggestedTags),
		AlreadyTagged: rp.AlreadyTagged,
	}
}
