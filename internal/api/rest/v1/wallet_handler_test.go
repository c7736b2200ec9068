//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testWalletID = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"

func testWallet(ownerID, ownerType string, balance int64) *wallets.Wallet {
	return &wallets.Wallet{
		ID:        testWalletID,
		OwnerID:   ownerID,
		OwnerType: ownerType,
		Balance:   balance,
		Currency:  "AED",
		CreatedAt: time.Now().UTC(),
	}
}

func TestWalletHandler_Get_UserWallet(t *testing.T) {
	mockWalletService := new(MockWalletService)
	handler := NewWalletHandler(mockWalletService)

	mockWalletService.On("GetOrCreate", mock.Anything, testUserID, wallets.OwnerUser).Return(testWallet(testUserID, wallets.OwnerUser, 125050), nil)

	c, w := newTestContext("GET", "/api/wallet", "")
	asUser(c)
	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"formatted_balance":"AED 1,250.50"`)
	mockWalletService.AssertExpectations(t)
}

func TestWalletHandler_Get_AgencyWallet(t *testing.T) {
	mockWalletService := new(MockWalletService)
	handler := NewWalletHandler(mockWalletService)

	mockWalletService.On("GetOrCreate", mock.Anything, testAgencyID, wallets.OwnerAgency).Return(testWallet(testAgencyID, wallets.OwnerAgency, 0), nil)

	c, w := newTestContext("GET", "/api/wallet", "")
	asAgency(c)
	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"owner_type":"agency"`)
	mockWalletService.AssertExpectations(t)
}

func TestWalletHandler_Get_UnlinkedAgencyAccount(t *testing.T) {
	handler := NewWalletHandler(new(MockWalletService))

	c, w := newTestContext("GET", "/api/wallet", "")
	c.Set(principalKey, &users.Principal{UserID: testUserID, Role: users.RoleAgency})
	handler.Get(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWalletHandler_Transactions_Filters(t *testing.T) {
	mockWalletService := new(MockWalletService)
	handler := NewWalletHandler(mockWalletService)

	mockWalletService.On("GetOrCreate", mock.Anything, testUserID, wallets.OwnerUser).Return(testWallet(testUserID, wallets.OwnerUser, 5000), nil)
	mockWalletService.
		On("Transactions", mock.Anything, testWalletID, mock.MatchedBy(func(q *wallets.TransactionQuery) bool {
			return q.Type == wallets.TypeDebit && q.Limit == 10 && q.Offset == 20
		})).
		Return([]*wallets.Transaction{{ID: "tx-1", WalletID: testWalletID, Type: wallets.TypeDebit, Amount: 1000, BalanceAfter: 5000}}, nil)

	c, w := newTestContext("GET", "/api/wallet/transactions?type=debit&limit=10&offset=20", "")
	asUser(c)
	handler.Transactions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"balance_after":5000`)
	mockWalletService.AssertExpectations(t)
}

func TestWalletHandler_TopUp(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		description string
	}{
		{"DefaultDescription", `{"owner_id":"` + testUserID + `","owner_type":"user","amount":10000}`, "Top-up"},
		{"CustomDescription", `{"owner_id":"` + testUserID + `","owner_type":"user","amount":10000,"reference":"BANK-1","description":"Refund goodwill"}`, "Refund goodwill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWalletService := new(MockWalletService)
			handler := NewWalletHandler(mockWalletService)

			mockWalletService.On("GetOrCreate", mock.Anything, testUserID, wallets.OwnerUser).Return(testWallet(testUserID, wallets.OwnerUser, 0), nil)
			mockWalletService.
				On("Credit", mock.Anything, testWalletID, int64(10000), mock.Anything, tt.description).
				Return(&wallets.Transaction{ID: "tx-2", WalletID: testWalletID, Type: wallets.TypeCredit, Amount: 10000, BalanceAfter: 10000}, nil)

			c, w := newTestContext("POST", "/api/admin/wallets/top-up", tt.body)
			asAdmin(c)
			handler.TopUp(c)

			assert.Equal(t, http.StatusCreated, w.Code)
			mockWalletService.AssertExpectations(t)
		})
	}
}

func TestWalletHandler_TopUp_RejectsUnknownOwnerType(t *testing.T) {
	handler := NewWalletHandler(new(MockWalletService))

	c, w := newTestContext("POST", "/api/admin/wallets/top-up", `{"owner_id":"`+testUserID+`","owner_type":"partner","amount":100}`)
	asAdmin(c)
	handler.TopUp(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "owner_type")
}
