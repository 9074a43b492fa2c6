package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/handler/dto"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type LedgerSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (domain.Event, error)
	Mint(ctx context.Context, input domain.MintInput) (domain.Token, error)
	CheckIn(ctx context.Context, input domain.CheckInInput) (domain.Token, error)
	Transfer(ctx context.Context, input domain.TransferInput) (domain.Token, error)
	GrantMinter(ctx context.Context, caller, account domain.Account) error
	RevokeMinter(ctx context.Context, caller, account domain.Account) error
	IsMinter(account domain.Account) bool
	GetEvent(id domain.EventID) (domain.Event, error)
	ListEvents() []domain.Event
	GetToken(id domain.TokenID) (domain.Token, error)
	ListTokens() []domain.Token
	TokensOf(account domain.Account) []domain.TokenID
	Stats() domain.Stats
}

type Handler struct {
	ledgerService LedgerSvc
}

func NewHandler(ledgerService LedgerSvc) *Handler {
	return &Handler{ledgerService: ledgerService}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.ledgerService.CreateEvent(c.Request.Context(), domain.CreateEventInput{
		Caller:   caller,
		Name:     req.Name,
		Date:     req.Date,
		Location: req.Location,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := parseID(c, "invalid event id")
	if !ok {
		return
	}

	event, err := h.ledgerService.GetEvent(domain.EventID(id))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events := h.ledgerService.ListEvents()

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Tokens

func (h *Handler) Mint(c *ginext.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	eventID, ok := parseID(c, "invalid event id")
	if !ok {
		return
	}

	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.ledgerService.Mint(c.Request.Context(), domain.MintInput{
		Caller:    caller,
		EventID:   domain.EventID(eventID),
		Recipient: domain.Account(req.Recipient),
		Metadata:  req.Metadata,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTokenResponse(token))
}

func (h *Handler) GetToken(c *ginext.Context) {
	id, ok := parseID(c, "invalid token id")
	if !ok {
		return
	}

	token, err := h.ledgerService.GetToken(domain.TokenID(id))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenResponse(token))
}

func (h *Handler) ListTokens(c *ginext.Context) {
	tokens := h.ledgerService.ListTokens()

	resp := make([]dto.TokenResponse, 0, len(tokens))
	for _, t := range tokens {
		resp = append(resp, dto.ToTokenResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Transfer(c *ginext.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "invalid token id")
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.ledgerService.Transfer(c.Request.Context(), domain.TransferInput{
		Caller:  caller,
		To:      domain.Account(req.To),
		TokenID: domain.TokenID(id),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenResponse(token))
}

func (h *Handler) TokensOf(c *ginext.Context) {
	account := domain.Account(c.Param("account"))
	c.JSON(http.StatusOK, dto.ToOwnedTokensResponse(account, h.ledgerService.TokensOf(account)))
}

// Minters

func (h *Handler) GetMinter(c *ginext.Context) {
	account := domain.Account(c.Param("account"))
	c.JSON(http.StatusOK, dto.MinterResponse{
		Account:    string(account),
		Authorized: h.ledgerService.IsMinter(account),
	})
}

func (h *Handler) GrantMinter(c *ginext.Context) {
	h.setMinter(c, h.ledgerService.GrantMinter)
}

func (h *Handler) RevokeMinter(c *ginext.Context) {
	h.setMinter(c, h.ledgerService.RevokeMinter)
}

func (h *Handler) setMinter(c *ginext.Context, apply func(ctx context.Context, caller, account domain.Account) error) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	account := domain.Account(c.Param("account"))
	if err := apply(c.Request.Context(), caller, account); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MinterResponse{
		Account:    string(account),
		Authorized: h.ledgerService.IsMinter(account),
	})
}

func (h *Handler) Stats(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.ToStatsResponse(h.ledgerService.Stats()))
}

// Webhooks

func (h *Handler) CheckIn(c *ginext.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.ledgerService.CheckIn(c.Request.Context(), domain.CheckInInput{
		EventID:   domain.EventID(req.EventID),
		Recipient: domain.Account(req.Recipient),
		Metadata:  req.Metadata,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTokenResponse(token))
}

func callerOrAbort(c *ginext.Context) (domain.Account, bool) {
	caller, ok := middleware.Caller(c)
	if !ok || caller == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthenticated"})
		return "", false
	}
	return caller, true
}

func parseID(c *ginext.Context, msg string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return 0, false
	}
	return id, true
}

func handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidSignature):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTransferDenied):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
