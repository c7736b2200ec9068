package v1

import (
	"net/http"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// WalletHandler defines the interface for wallet operations
type WalletHandler interface {
	Get(ctx *gin.Context)
	Transactions(ctx *gin.Context)
	TopUp(ctx *gin.Context)
}

type walletHandler struct {
	walletService wallets.WalletService
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(walletService wallets.WalletService) WalletHandler {
	return &walletHandler{walletService: walletService}
}

// ownWallet opens the wallet of the caller. Agency accounts see their agency's wallet.
func (handler *walletHandler) ownWallet(ctx *gin.Context) (*wallets.Wallet, error) {
	principal := principalFrom(ctx)
	if principal == nil {
		return nil, apperr.ErrUnauthorized
	}
	if principal.Role == users.RoleAgency {
		if !principal.IsAgency() {
			return nil, apperr.Forbiddenf("account is not linked to an agency")
		}
		return handler.walletService.GetOrCreate(ctx, principal.AgencyID, wallets.OwnerAgency)
	}
	return handler.walletService.GetOrCreate(ctx, principal.UserID, wallets.OwnerUser)
}

// Get returns the caller's wallet
// @Summary Show my wallet
// @Tags Wallet
// @Produce json
// @Success 200 {object} WalletResponse
// @Router /wallet [get]
func (handler *walletHandler) Get(ctx *gin.Context) {
	wallet, err := handler.ownWallet(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newWalletResponse(wallet))
}

// Transactions returns the caller's ledger, newest first
func (handler *walletHandler) Transactions(ctx *gin.Context) {
	wallet, err := handler.ownWallet(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	query := wallets.NewTransactionQuery()
	if txType := ctx.Query("type"); len(txType) > 0 {
		query.Type = txType
	}
	readPaging(ctx, &query.Limit, &query.Offset)

	transactions, err := handler.walletService.Transactions(ctx, wallet.ID, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		response = append(response, newTransactionResponse(transaction))
	}
	ctx.JSON(http.StatusOK, response)
}

// TopUp credits a user or agency wallet
// @Summary Top up a wallet
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body TopUpRequest true "Credit"
// @Success 201 {object} TransactionResponse
// @Router /admin/wallets/top-up [post]
func (handler *walletHandler) TopUp(ctx *gin.Context) {
	var request TopUpRequest
	if !bindJSON(ctx, &request) {
		return
	}

	wallet, err := handler.walletService.GetOrCreate(ctx, request.OwnerID, request.OwnerType)
	if err != nil {
		writeError(ctx, err)
		return
	}

	description := request.Description
	if description == "" {
		description = "Top-up"
	}
	transaction, err := handler.walletService.Credit(ctx, wallet.ID, request.Amount, request.Reference, description)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newTransactionResponse(transaction))
}
