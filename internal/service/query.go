package service

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gitlab.com/tomas.hradek/address-book/internal/auth"
	"gitlab.com/tomas.hradek/address-book/internal/store"
)

// defaultLimit is the page size used when the limit URL parameter is omitted.
const defaultLimit = 20

// parseListQuery inspects the page, limit and favorite URL parameters and
// builds the query handed to the store.
//
// The page parameter starts at 1 and the offset is (page-1)*limit. A page
// below 1 is floored to the first page so the offset can never go negative.
// The favorite filter is applied only if the parameter is literally "true"
// or "false"; any other value means the filter is not applied. Non-numeric
// page and limit values and a non-positive limit are rejected with a 400
// response.
func parseListQuery(c *gin.Context) (store.ListQuery, bool) {
	q := store.ListQuery{Owner: auth.Owner(c), Limit: defaultLimit}

	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid page parameter"})
			return store.ListQuery{}, false
		}
		if parsed > 1 {
			page = parsed
		}
	}
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid limit parameter"})
			return store.ListQuery{}, false
		}
		q.Limit = parsed
	}
	q.Offset = (page - 1) * q.Limit

	switch c.Query("favorite") {
	case "true":
		favorite := true
		q.Favorite = &favorite
	case "false":
		favorite := false
		q.Favorite = &favorite
	}
	return q, true
}
