package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Account handler functions

// GetAccountRequest is the request body for the get-or-create operation
type GetAccountRequest struct {
	ContactID   string  `json:"contactId"`
	AccountType *string `json:"accountType"`
	AccountName *string `json:"accountName"`
}

// UpdateAccountRequest is the request body for renaming or retyping a ledger
type UpdateAccountRequest struct {
	AccountName *string `json:"accountName"`
	AccountType *string `json:"accountType"`
}

// @Summary Get or create account
// @Description Resolve the ledger for a (contact, accountType) pair, creating it
// @Description with a zero balance when absent. Repeated calls return the same account.
// @Tags accounting
// @Accept json
// @Produce json
// @Param account body GetAccountRequest true "Contact id, optional account type and name"
// @Success 200 {object} map[string]interface{} "Resolved account"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /api/accounting/get-account [post]
func getOrCreateAccount(c *gin.Context) {
	var request GetAccountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	contactID, err := pgUUID(request.ContactID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact ID", err)
		return
	}

	dbContact, err := queries.GetContact(context.Background(), contactID)
	if err != nil {
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	accountType := defaultAccountType(dbContact.ContactType)
	if request.AccountType != nil {
		if err := validateAccountType(*request.AccountType); err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		accountType = *request.AccountType
	}

	accountName := defaultAccountName(dbContact.Name)
	if request.AccountName != nil && *request.AccountName != "" {
		accountName = *request.AccountName
	}

	dbAccount, err := queries.UpsertAccount(context.Background(), UpsertAccountParams{
		ContactID:   contactID,
		AccountName: accountName,
		AccountType: accountType,
	})
	if err != nil {
		logger.Errorf("Error resolving account: %v", err)
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	account := convertAccount(dbAccount)
	contact := convertContact(dbContact)
	account.Contact = &contact

	respondOK(c, http.StatusOK, "Account resolved successfully", account)
}

// @Summary List accounts
// @Description Retrieve all ledger accounts with their owning contact, paginated
// @Tags accounting
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} map[string]interface{} "List of accounts with pagination"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/accounting/accounts [get]
func listAccounts(c *gin.Context) {
	page, limit := paginationParams(c)

	total, err := queries.CountAccounts(context.Background())
	if err != nil {
		logger.Errorf("Error counting accounts: %v", err)
		respondError(c, http.StatusInternalServerError, "Error fetching accounts", err)
		return
	}

	dbAccounts, err := queries.ListAccountsWithContact(context.Background(), ListAccountsParams{
		Limit:  int32(limit),
		Offset: int32((page - 1) * limit),
	})
	if err != nil {
		logger.Errorf("Error fetching accounts: %v", err)
		respondError(c, http.StatusInternalServerError, "Error fetching accounts", err)
		return
	}

	accounts := make([]Account, 0, len(dbAccounts))
	for _, dbAccount := range dbAccounts {
		accounts = append(accounts, convertAccountWithContact(dbAccount))
	}

	respondList(c, "Accounts fetched successfully", accounts, buildPagination(page, limit, total))
}

// @Summary Update account
// @Description Rename or retype a ledger account
// @Tags accounting
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body UpdateAccountRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated account"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Account not found"
// @Failure 409 {object} map[string]interface{} "Contact already has an account of that type"
// @Router /api/accounting/accounts/{id} [put]
func updateAccount(c *gin.Context) {
	accountID, err := pgUUID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	var request UpdateAccountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if request.AccountName != nil {
		if err := validateName(*request.AccountName); err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}
	if request.AccountType != nil {
		if err := validateAccountType(*request.AccountType); err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	dbAccount, err := queries.UpdateAccount(context.Background(), UpdateAccountParams{
		ID:          accountID,
		AccountName: pgText(request.AccountName),
		AccountType: pgText(request.AccountType),
	})
	if err != nil {
		logger.Errorf("Error updating account: %v", err)
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	respondOK(c, http.StatusOK, "Account updated successfully", convertAccount(dbAccount))
}

// @Summary Delete account
// @Description Delete a ledger account and all of its transactions. Deletion is
// @Description unconditional; any non-zero balance confirmation is the caller's job.
// @Tags accounting
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Account not found"
// @Router /api/accounting/accounts/{id} [delete]
func deleteAccount(c *gin.Context) {
	accountID, err := pgUUID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	deleted, err := queries.DeleteAccount(context.Background(), accountID)
	if err != nil {
		logger.Errorf("Error deleting account: %v", err)
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}
	if deleted == 0 {
		respondError(c, http.StatusNotFound, "Account not found", nil)
		return
	}

	respondOK(c, http.StatusOK, "Account deleted successfully", gin.H{"id": uuidString(accountID)})
}
