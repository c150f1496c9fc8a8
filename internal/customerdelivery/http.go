// Package customerdelivery manages the delivery layer of customer
// onboarding and staff views.
package customerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sunbelt-bank/bank-core/internal/customerservice"
	"github.com/sunbelt-bank/bank-core/internal/domain"
	"github.com/sunbelt-bank/bank-core/pkg/errorspkg"
	"github.com/sunbelt-bank/bank-core/pkg/web"
)

// Service provides the customer service interface needed by the
// delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package customerdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateCustomerParams) (customerservice.NewCustomer, error)
	ManagerView(ctx context.Context, fullName string) (domain.Customer, error)
	ViewForTeller(ctx context.Context, fullName string) (customerservice.TellerView, error)
	Statement(ctx context.Context, fullName string) (string, error)
	Summary(ctx context.Context, fullName string) (string, error)
}

// Handler facilitates customer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns the customer handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

func bindError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	var (
		ve     validator.ValidationErrors
		errMsg string
	)

	if errors.As(err, &ve) {
		field := ve[0]
		errMsg = field.Field() + web.GetErrorMsg(field)
	} else {
		errMsg = err.Error()
	}

	l.Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})
}

func serviceError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrNameAlreadyExists):
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type customerURI struct {
	Name string `uri:"name" binding:"required"`
}

type createCustomerRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=25"`
	LastName    string `json:"last_name" binding:"required,max=25"`
	DateOfBirth string `json:"date_of_birth" binding:"required,max=11"`
	Address     string `json:"address" binding:"required,max=50"`
	PhoneNumber string `json:"phone_number" binding:"required,max=14"`
}

type createCustomerData struct {
	Customer customerservice.NewCustomer `json:"new_customer"`
}

type createCustomerResponse struct {
	Data createCustomerData `json:"data,omitempty"`
}

// Create handles http request to onboard a new customer.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createCustomerRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	arg := domain.CreateCustomerParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}

	created, err := h.service.Create(ctx, arg)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, createCustomerResponse{Data: createCustomerData{created}})
}

type customerData struct {
	Customer domain.Customer `json:"customer"`
}

type customerResponse struct {
	Data customerData `json:"data,omitempty"`
}

// Get handles http request for the full customer record.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	c, err := h.service.ManagerView(ctx, uri.Name)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, customerResponse{Data: customerData{c}})
}

type tellerViewData struct {
	Customer customerservice.TellerView `json:"customer"`
}

type tellerViewResponse struct {
	Data tellerViewData `json:"data,omitempty"`
}

// GetForTeller handles http request for the restricted customer view.
func (h *Handler) GetForTeller(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	view, err := h.service.ViewForTeller(ctx, uri.Name)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, tellerViewResponse{Data: tellerViewData{view}})
}

type statementData struct {
	Path string `json:"path"`
}

type statementResponse struct {
	Data statementData `json:"data,omitempty"`
}

// Statement handles http request to generate a full bank statement.
func (h *Handler) Statement(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	path, err := h.service.Statement(ctx, uri.Name)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, statementResponse{Data: statementData{path}})
}

// Summary handles http request to generate a transaction summary.
func (h *Handler) Summary(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	path, err := h.service.Summary(ctx, uri.Name)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, statementResponse{Data: statementData{path}})
}
