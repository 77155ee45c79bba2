package handlers

import (
	"errors"
	"net/http"

	request "petromap/internal/adapter/http/dto/request"
	response "petromap/internal/adapter/http/dto/response"
	"petromap/internal/adapter/http/middleware"
	"petromap/internal/usecase"
	"petromap/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)
	errInvalidFilterQuery    = pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid filter parameters", http.StatusBadRequest)
)

// RequestHandler handles HTTP requests for the registration review
// workflow.

type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

// List returns the visible subset for the given filter state. Every call
// scans the collection fresh; clients re-list after each mutation.
func (h *RequestHandler) List(c *gin.Context) {
	var q request.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidFilterQuery.HTTPStatus, errInvalidFilterQuery.ToHTTPError())
		return
	}

	state, ok := q.ToFilterState()
	if !ok {
		c.JSON(errInvalidFilterQuery.HTTPStatus, errInvalidFilterQuery.ToHTTPError())
		return
	}

	requests, err := h.usecase.List(c.Request.Context(), state)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ListRequestsResponse{
		Requests: response.FromRequests(requests),
		Count:    len(requests),
	})
}

// Counts returns the tab badge counts over the unfiltered collection.
func (h *RequestHandler) Counts(c *gin.Context) {
	counts, err := h.usecase.Counts(c.Request.Context())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCounts(counts))
}

// Get returns one request plus, best effort, the submitter's profile.
func (h *RequestHandler) Get(c *gin.Context) {
	req, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	submitter := h.usecase.Submitter(c.Request.Context(), req.RequestedByUserID)

	c.JSON(http.StatusOK, response.RequestDetailResponse{
		Request:     response.FromRequest(req),
		SubmittedBy: response.FromUserProfile(submitter),
	})
}

func (h *RequestHandler) Create(c *gin.Context) {
	var payload request.CreateRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToDetails(), middleware.ActorID(c))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequest(created))
}

func (h *RequestHandler) Update(c *gin.Context) {
	var payload request.UpdateRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Edit(c.Request.Context(), c.Param("id"), payload.ToPatch(), middleware.ActorID(c))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *RequestHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestHandler) Approve(c *gin.Context) {
	req, pump, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ApproveResponse{
		Request: response.FromRequest(req),
		Pump:    response.FromPump(pump),
	})
}

func (h *RequestHandler) Reject(c *gin.Context) {
	var payload request.RejectRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), payload.Reason, middleware.ActorID(c))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequest(req))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyRejectionReason):
		return pkg.NewDomainErrorSimple("EMPTY_REJECTION_REASON", "Please provide a reason for rejection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
