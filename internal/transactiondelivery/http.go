// Package transactiondelivery manages the delivery layer of engine operations.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sunbelt-bank/bank-core/internal/domain"
	"github.com/sunbelt-bank/bank-core/internal/middleware"
	"github.com/sunbelt-bank/bank-core/internal/transactionservice"
	"github.com/sunbelt-bank/bank-core/pkg/errorspkg"
	"github.com/sunbelt-bank/bank-core/pkg/tokenpkg"
	"github.com/sunbelt-bank/bank-core/pkg/web"
)

// The engine never sees amounts outside (0, maxAmount]; the bound is
// enforced here.
var maxAmount = decimal.NewFromInt(900_000)

// ErrAmountOutOfRange indicates an amount outside the accepted bounds.
var ErrAmountOutOfRange = errors.New("amount must be positive and not bigger than 900000")

// Service provides the engine interface needed by the delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Withdraw(ctx context.Context, fullName string, accountType domain.AccountType, amount decimal.Decimal) (domain.Account, error)
	Deposit(ctx context.Context, fullName string, accountType domain.AccountType, amount decimal.Decimal) (domain.Account, error)
	Transfer(ctx context.Context, fullName string, fromType, toType domain.AccountType, amount decimal.Decimal) (domain.Account, domain.Account, error)
	Pay(ctx context.Context, payerName, recipientName string, fromType, toType domain.AccountType, amount decimal.Decimal) (domain.Account, domain.Account, error)
	Inquire(ctx context.Context, fullName string, accountType domain.AccountType) (transactionservice.Balance, error)
	History(ctx context.Context, fullName string, accountType domain.AccountType) (string, error)
}

// Handler facilitates engine delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns the engine handler.
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
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrRecipientNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrUnsupportedAccountType),
		errors.Is(err, domain.ErrUnsupportedLegs),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrSelfPayment):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrExceedsCreditBalance),
		errors.Is(err, domain.ErrCreditLimitExceeded):
		gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if amount.LessThanOrEqual(decimal.Zero) || amount.GreaterThan(maxAmount) {
		return decimal.Decimal{}, ErrAmountOutOfRange
	}

	return amount, nil
}

func sessionName(gctx *gin.Context) string {
	payload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	return payload.Username
}

type accountData struct {
	Account domain.Account `json:"account"`
}

type accountResponse struct {
	Data accountData `json:"data,omitempty"`
}

type withdrawRequest struct {
	AccountType string `json:"account_type" binding:"required,oneof=Checking Savings"`
	Amount      string `json:"amount" binding:"required"`
}

// Withdraw handles http request to withdraw money.
func (h *Handler) Withdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req withdrawRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		bindError(gctx, err)
		return
	}

	acc, err := h.service.Withdraw(ctx, sessionName(gctx), domain.AccountType(req.AccountType), amount)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, accountResponse{Data: accountData{acc}})
}

type depositRequest struct {
	AccountType string `json:"account_type" binding:"required,oneof=Checking Savings Credit"`
	Amount      string `json:"amount" binding:"required"`
}

// Deposit handles http request to deposit money.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req depositRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		bindError(gctx, err)
		return
	}

	acc, err := h.service.Deposit(ctx, sessionName(gctx), domain.AccountType(req.AccountType), amount)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, accountResponse{Data: accountData{acc}})
}

type transferRequest struct {
	FromType string `json:"from_type" binding:"required,oneof=Checking Savings"`
	ToType   string `json:"to_type" binding:"required,oneof=Checking Savings"`
	Amount   string `json:"amount" binding:"required"`
}

type transferData struct {
	FromAccount domain.Account `json:"from_account"`
	ToAccount   domain.Account `json:"to_account"`
}

type transferResponse struct {
	Data transferData `json:"data,omitempty"`
}

// Transfer handles http request to transfer money between own accounts.
func (h *Handler) Transfer(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		bindError(gctx, err)
		return
	}

	fromAcc, toAcc, err := h.service.Transfer(ctx, sessionName(gctx),
		domain.AccountType(req.FromType), domain.AccountType(req.ToType), amount)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, transferResponse{Data: transferData{fromAcc, toAcc}})
}

type payRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	FromType  string `json:"from_type" binding:"required,oneof=Checking"`
	ToType    string `json:"to_type" binding:"required,oneof=Checking"`
	Amount    string `json:"amount" binding:"required"`
}

type payData struct {
	PayerAccount     domain.Account `json:"payer_account"`
	RecipientAccount domain.Account `json:"recipient_account"`
}

type payResponse struct {
	Data payData `json:"data,omitempty"`
}

// Pay handles http request to pay another customer.
func (h *Handler) Pay(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req payRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		bindError(gctx, err)
		return
	}

	payerAcc, recipientAcc, err := h.service.Pay(ctx, sessionName(gctx), req.Recipient,
		domain.AccountType(req.FromType), domain.AccountType(req.ToType), amount)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, payResponse{Data: payData{payerAcc, recipientAcc}})
}

type accountTypeURI struct {
	AccountType string `uri:"type" binding:"required,oneof=Checking Savings Credit"`
}

type balanceData struct {
	Balance transactionservice.Balance `json:"balance"`
}

type balanceResponse struct {
	Data balanceData `json:"data,omitempty"`
}

// Inquire handles http request to inquire an account balance.
func (h *Handler) Inquire(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req accountTypeURI
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	balance, err := h.service.Inquire(ctx, sessionName(gctx), domain.AccountType(req.AccountType))
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, balanceResponse{Data: balanceData{balance}})
}

type historyData struct {
	AccountType string `json:"account_type"`
	History     string `json:"history"`
}

type historyResponse struct {
	Data historyData `json:"data,omitempty"`
}

// History handles http request to read the transaction history of an account.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req accountTypeURI
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	history, err := h.service.History(ctx, sessionName(gctx), domain.AccountType(req.AccountType))
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, historyResponse{Data: historyData{req.AccountType, history}})
}
