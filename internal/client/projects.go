package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/studiofront/designer-console/internal/models"

	"go.uber.org/zap"
)

// SearchProjects runs a filtered, sorted, paginated project search. On
// failure it logs and returns an empty result with a zero count.
func (c *APIClient) SearchProjects(ctx context.Context, filters models.ProjectFilters, skip, limit int) models.ProjectSearchResult {
	url := fmt.Sprintf("%s/project/search?limit=%d&skip=%d", c.baseURL, limit, skip)

	req := models.ProjectSearchRequest{
		Filters: filters,
		Sort:    map[string]int{"createdAt": -1},
	}

	var result models.ProjectSearchResult
	if err := c.doJSON(ctx, http.MethodPost, url, req, &result, true); err != nil {
		c.logger.Error("Failed to search projects",
			zap.Int("skip", skip),
			zap.Int("limit", limit),
			zap.Error(err),
		)
		return models.ProjectSearchResult{Projects: []models.Project{}}
	}

	return result
}
