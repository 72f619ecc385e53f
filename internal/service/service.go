package service

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gitlab.com/tomas.hradek/address-book/internal/auth"
	"gitlab.com/tomas.hradek/address-book/internal/model"
	"gitlab.com/tomas.hradek/address-book/internal/store"
)

// Handler serves the contact endpoints against a single store.
type Handler struct {
	store *store.Store
}

// SetupHttpRouter initializes the REST API router and registers all
// endpoints. Every /contacts route runs the access guard first, so the
// caller identity is always resolved before a handler touches the store.
func SetupHttpRouter(s *store.Store, guard *auth.Manager) *gin.Engine {
	var router *gin.Engine
	if strings.EqualFold(os.Getenv("GIN_LOGGING"), "off") {
		router = gin.New()
	} else {
		router = gin.Default()
	}
	h := &Handler{store: s}
	router.GET("/health", health)
	contacts := router.Group("/contacts", guard.Middleware())
	{
		contacts.GET("", h.findContacts)
		contacts.POST("", h.createContact)
		contacts.GET("/:contactId", h.findContactByID)
		contacts.PUT("/:contactId", h.updateContactByID)
		contacts.DELETE("/:contactId", h.deleteContactByID)
		contacts.PATCH("/:contactId/favorite", h.updateFavorite)
	}
	return router
}

// health answers the liveness probe used by cmd/wait-until-available.
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError translates a store failure into the HTTP response. Anything
// that is not a missing record is logged and answered with a generic 500 so
// that no storage detail leaks to the caller.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("storage failure")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

// findContacts responds with a page of the caller's contacts as JSON.
//
// The URL parameters 'page' and 'limit' select the page of results, starting
// at page 1 with 20 contacts per page. The URL parameter 'favorite' filters
// the result by the favorite flag if it is set to 'true' or 'false'.
//
// REST API calls:
//
//	> curl -H "Authorization: Bearer $TOKEN" "http://localhost:8080/contacts"
//	> curl -H "Authorization: Bearer $TOKEN" "http://localhost:8080/contacts?page=2&limit=5"
//	> curl -H "Authorization: Bearer $TOKEN" "http://localhost:8080/contacts?favorite=true"
func (h *Handler) findContacts(c *gin.Context) {
	query, ok := parseListQuery(c)
	if !ok {
		return
	}
	contacts, err := h.store.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// findContactByID locates the caller's contact whose id matches the
// contactId parameter of the request URL and returns it.
//
// Example REST API call:
//
//	> curl -H "Authorization: Bearer $TOKEN" http://localhost:8080/contacts/0c7cfe0d-4289-4a3c-9b87-6857f3aabb45
func (h *Handler) findContactByID(c *gin.Context) {
	contact, err := h.store.GetByID(c.Request.Context(), c.Param("contactId"), auth.Owner(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// createContact validates the contact in the request's JSON and inserts it
// into the database with the caller recorded as owner. It responds with the
// full contact data including the newly assigned id.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts --request "POST" --include --header "Authorization: Bearer $TOKEN" --header "Content-Type: application/json" --data '{"name": "Hans Wurst", "email": "hans@example.com", "phone": "0815"}'
func (h *Handler) createContact(c *gin.Context) {
	var input model.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	if err := input.Validate(); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	contact, err := h.store.Create(c.Request.Context(), input, auth.Owner(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, contact)
}

// updateContactByID replaces the caller's contact whose id matches the
// contactId parameter of the request URL with the contact in the request's
// JSON. The payload follows the same schema as for creation, so all required
// fields must be present. It responds with the new version of the contact.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/0c7cfe0d-4289-4a3c-9b87-6857f3aabb45 --request "PUT" --include --header "Authorization: Bearer $TOKEN" --header "Content-Type: application/json" --data '{"name": "Hans Wurst", "email": "hans@example.com", "phone": "81970"}'
func (h *Handler) updateContactByID(c *gin.Context) {
	var input model.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	if err := input.Validate(); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	contact, err := h.store.UpdateByID(c.Request.Context(), c.Param("contactId"), auth.Owner(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// deleteContactByID deletes the caller's contact whose id matches the
// contactId parameter of the request URL from the database.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/0c7cfe0d-4289-4a3c-9b87-6857f3aabb45 --request "DELETE" --header "Authorization: Bearer $TOKEN"
func (h *Handler) deleteContactByID(c *gin.Context) {
	if err := h.store.DeleteByID(c.Request.Context(), c.Param("contactId"), auth.Owner(c)); err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "Contact Deleted"})
}

// updateFavorite sets exactly the favorite flag of the caller's contact
// whose id matches the contactId parameter of the request URL. The request
// body must contain a literal boolean favorite field; anything else is
// rejected before the database is touched.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/0c7cfe0d-4289-4a3c-9b87-6857f3aabb45/favorite --request "PATCH" --include --header "Authorization: Bearer $TOKEN" --header "Content-Type: application/json" --data '{"favorite": true}'
func (h *Handler) updateFavorite(c *gin.Context) {
	var body struct {
		Favorite *bool `json:"favorite"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Favorite == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "missing field favorite"})
		return
	}
	contact, err := h.store.UpdateFavorite(c.Request.Context(), c.Param("contactId"), auth.Owner(c), *body.Favorite)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}
