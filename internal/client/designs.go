package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/studiofront/designer-console/internal/models"

	"go.uber.org/zap"
)

// ListDesigns fetches one page of the AI design feed. On failure it logs
// and returns an empty slice; the view renders an empty state.
func (c *APIClient) ListDesigns(ctx context.Context, skip, limit int) []models.Design {
	url := fmt.Sprintf("%s/app/ai-design/getAll/designs?limit=%d&skip=%d", c.baseURL, limit, skip)

	var designs []models.Design
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &designs, true); err != nil {
		c.logger.Error("Failed to fetch designs",
			zap.Int("skip", skip),
			zap.Int("limit", limit),
			zap.Error(err),
		)
		return []models.Design{}
	}

	return designs
}

// GetDesign fetches the full detail record for one design. Returns nil on
// failure.
func (c *APIClient) GetDesign(ctx context.Context, id string) *models.DesignDetail {
	url := fmt.Sprintf("%s/app/ai-design/%s", c.baseURL, id)

	var detail models.DesignDetail
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &detail, true); err != nil {
		c.logger.Error("Failed to fetch design details",
			zap.String("design_id", id),
			zap.Error(err),
		)
		return nil
	}

	return &detail
}
