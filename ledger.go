package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Ledger statement and summary handler functions

// @Summary Get account ledger
// @Description Fetch an account's statement: transactions in an optional inclusive
// @Description date window (newest first) folded into totalTook (Credits) and
// @Description totalGave (Debits). Computed fresh on every call.
// @Tags accounting
// @Produce json
// @Param accountId path string true "Account ID"
// @Param startDate query string false "Window start (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "Window end, end-of-day normalized (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} map[string]interface{} "Ledger statement"
// @Failure 400 {object} map[string]interface{} "Bad date filter"
// @Failure 404 {object} map[string]interface{} "Account not found"
// @Router /api/accounting/ledger/{accountId} [get]
func getLedger(c *gin.Context) {
	accountID, err := pgUUID(c.Param("accountId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	startDate, err := parseDateParam(c.Query("startDate"), false)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	endDate, err := parseDateParam(c.Query("endDate"), true)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	dbAccount, err := queries.GetAccount(context.Background(), accountID)
	if err != nil {
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	dbTransactions, err := queries.ListTransactionsByAccount(context.Background(), ListTransactionsParams{
		AccountID: accountID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		logger.Errorf("Error fetching ledger transactions: %v", err)
		respondError(c, http.StatusInternalServerError, "Error fetching ledger", err)
		return
	}

	// Period statistic for the filtered window, independent of the all-time
	// cached balance.
	totalTook := decimal.Zero
	totalGave := decimal.Zero
	transactions := make([]Transaction, 0, len(dbTransactions))
	for _, dbTransaction := range dbTransactions {
		amount := decimalFromNumeric(dbTransaction.Amount)
		if dbTransaction.TransactionType == TransactionTypeCredit {
			totalTook = totalTook.Add(amount)
		} else {
			totalGave = totalGave.Add(amount)
		}
		transactions = append(transactions, convertTransaction(dbTransaction))
	}

	statement := LedgerStatement{
		Account:      convertAccount(dbAccount),
		Transactions: transactions,
		TotalTook:    totalTook.InexactFloat64(),
		TotalGave:    totalGave.InexactFloat64(),
		Count:        len(transactions),
	}

	respondOK(c, http.StatusOK, "Ledger fetched successfully", statement)
}

// @Summary Get accounting summary
// @Description Scan all accounts and bucket each by the sign of its balance:
// @Description positive balances sum into totalPayable, negative magnitudes into
// @Description totalReceivable; netBalance = totalReceivable - totalPayable.
// @Tags accounting
// @Produce json
// @Success 200 {object} map[string]interface{} "Cross-account totals"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/accounting/summary [get]
func getAccountingSummary(c *gin.Context) {
	balances, err := queries.ListAccountBalances(context.Background())
	if err != nil {
		logger.Errorf("Error fetching account balances: %v", err)
		respondError(c, http.StatusInternalServerError, "Error calculating summary", err)
		return
	}

	totalPayable := decimal.Zero
	totalReceivable := decimal.Zero
	for _, balance := range balances {
		value := decimalFromNumeric(balance)
		switch {
		case value.IsPositive():
			totalPayable = totalPayable.Add(value)
		case value.IsNegative():
			totalReceivable = totalReceivable.Add(value.Abs())
		}
	}
	netBalance := totalReceivable.Sub(totalPayable)

	summary := AccountingSummary{
		TotalPayable:    totalPayable.InexactFloat64(),
		TotalReceivable: totalReceivable.InexactFloat64(),
		NetBalance:      netBalance.InexactFloat64(),
	}

	respondOK(c, http.StatusOK, "Summary calculated successfully", summary)
}
