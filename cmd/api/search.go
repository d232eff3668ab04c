package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skycast/internal/search"
)

// SearchInput defines the query parameters for the search endpoint
type SearchInput struct {
	Query string `form:"q" binding:"required"`
}

// handleSearch godoc
// @Summary Search for locations
// @Description Resolve a free-text query to a ranked list of candidate locations. Queries are debounced server-side and superseded by newer ones; a superseded query returns 204 and its results are discarded.
// @Tags search
// @Produce json
// @Param q query string true "Free-text place query, minimum 2 characters" example(London)
// @Success 200 {array} types.Location
// @Success 204 "superseded by a newer query"
// @Failure 400 {object} map[string]string
// @Router /api/search [get]
func (app *App) handleSearch(c *gin.Context) {
	var input SearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := app.search.Search(c.Request.Context(), input.Query)
	switch {
	case errors.Is(err, search.ErrQueryTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, search.ErrSuperseded):
		c.Status(http.StatusNoContent)
	case err != nil:
		// Candidate lookup failures degrade to an empty list.
		c.JSON(http.StatusOK, gin.H{"results": []any{}})
	default:
		c.JSON(http.StatusOK, gin.H{"results": results})
	}
}
