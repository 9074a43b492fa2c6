package handler

import (
	"context"
	"net/http"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Login(ctx context.Context, input domain.LoginInput) (domain.Session, error)
}

type AuthHandler struct {
	authService AuthSvc
}

func NewAuthHandler(authService AuthSvc) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login trades a signed wallet message for a bearer token.
func (h *AuthHandler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), domain.LoginInput{
		Address:   domain.Account(req.WalletAddress),
		Message:   req.Message,
		Signature: req.Signature,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(session))
}
