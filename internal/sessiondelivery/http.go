// Package sessiondelivery manages the delivery layer of customer
// sessions.
package sessiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sunbelt-bank/bank-core/internal/domain"
	"github.com/sunbelt-bank/bank-core/internal/middleware"
	"github.com/sunbelt-bank/bank-core/pkg/errorspkg"
	"github.com/sunbelt-bank/bank-core/pkg/tokenpkg"
	"github.com/sunbelt-bank/bank-core/pkg/web"
)

// Service provides the session service interface needed by the
// delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package sessiondelivery
type Service interface {
	Login(ctx context.Context, fullName, secret string) (string, domain.Session, error)
	UpdateSecret(ctx context.Context, fullName, currentSecret, newSecret string) error
}

// Handler facilitates session delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns the session handler.
func NewHandler(ss Service) *Handler {
	return &Handler{
		service: ss,
	}
}

func serviceError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCredentialNotFound),
		errors.Is(err, domain.ErrWrongPassword):
		gctx.JSON(http.StatusUnauthorized, web.Error(err))
	case errors.Is(err, domain.ErrInvalidSecret):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type loginRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

type loginResponse struct {
	AccessToken string         `json:"access_token"`
	Session     domain.Session `json:"session"`
}

// Login handles http request to open a customer session.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	accessToken, sess, err := h.service.Login(ctx, req.FullName, req.Secret)
	if err != nil {
		serviceError(gctx, err)

		return
	}

	rsp := loginResponse{
		AccessToken: accessToken,
		Session:     sess,
	}
	gctx.JSON(http.StatusOK, rsp)
}

type updateSecretRequest struct {
	CurrentSecret string `json:"current_secret" binding:"required"`
	NewSecret     string `json:"new_secret" binding:"required"`
}

// UpdateSecret handles http request to replace the session customer's
// login secret.
func (h *Handler) UpdateSecret(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req updateSecretRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	payload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	if err := h.service.UpdateSecret(ctx, payload.Username, req.CurrentSecret, req.NewSecret); err != nil {
		serviceError(gctx, err)

		return
	}

	gctx.Status(http.StatusNoContent)
}
