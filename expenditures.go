package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Expenditure handler functions
//
// Expenditures are standalone expenses outside any ledger: they carry an
// optional tag but never touch account balances.

// ExpenditureRequest is the request body for creating or updating an expenditure
type ExpenditureRequest struct {
	Title   *string  `json:"title"`
	Amount  *float64 `json:"amount"`
	TagID   *string  `json:"tagId"`
	SpentAt *string  `json:"spentAt"`
	Notes   *string  `json:"notes"`
}

// @Summary List expenditures
// @Description Retrieve expenditures in an optional inclusive date window,
// @Description newest first, paginated, with the window's folded total.
// @Tags expenditures
// @Produce json
// @Param startDate query string false "Window start (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "Window end, end-of-day normalized"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} map[string]interface{} "Expenditures with summary and pagination"
// @Failure 400 {object} map[string]interface{} "Bad date filter"
// @Router /api/expenditures [get]
func listExpenditures(c *gin.Context) {
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
	page, limit := paginationParams(c)

	window := CountExpendituresParams{StartDate: startDate, EndDate: endDate}

	total, err := queries.CountExpenditures(context.Background(), window)
	if err != nil {
		logger.Errorf("Error counting expenditures: %v", err)
		respondError(c, http.StatusInternalServerError, "Error fetching expenditures", err)
		return
	}

	dbExpenditures, err := queries.ListExpenditures(context.Background(), ListExpendituresParams{
		StartDate: startDate,
		EndDate:   endDate,
		Limit:     int32(limit),
		Offset:    int32((page - 1) * limit),
	})
	if err != nil {
		logger.Errorf("Error fetching expenditures: %v", err)
		respondError(c, http.StatusInternalServerError, "Error fetching expenditures", err)
		return
	}

	// Fold over the whole window, not just the served page
	amounts, err := queries.ListExpenditureAmounts(context.Background(), window)
	if err != nil {
		logger.Errorf("Error fetching expenditure amounts: %v", err)
		respondError(c, http.StatusInternalServerError, "Error fetching expenditures", err)
		return
	}
	totalSpent := decimal.Zero
	for _, amount := range amounts {
		totalSpent = totalSpent.Add(decimalFromNumeric(amount))
	}

	expenditures := make([]Expenditure, 0, len(dbExpenditures))
	for _, dbExpenditure := range dbExpenditures {
		expenditures = append(expenditures, convertExpenditure(dbExpenditure))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expenditures fetched successfully",
		"data": gin.H{
			"expenditures": expenditures,
			"summary": ExpenditureSummary{
				TotalSpent: totalSpent.InexactFloat64(),
				Count:      int(total),
			},
		},
		"pagination": buildPagination(page, limit, total),
	})
}

// @Summary Create expenditure
// @Description Record a standalone business expense
// @Tags expenditures
// @Accept json
// @Produce json
// @Param expenditure body ExpenditureRequest true "Expenditure data (title and amount required)"
// @Success 201 {object} map[string]interface{} "Created expenditure"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /api/expenditures [post]
func createExpenditure(c *gin.Context) {
	var request ExpenditureRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if request.Title == nil {
		respondError(c, http.StatusBadRequest, "title is required", nil)
		return
	}
	if err := validateName(*request.Title); err != nil {
		respondError(c, http.StatusBadRequest, "title cannot be empty", nil)
		return
	}
	if request.Amount == nil {
		respondError(c, http.StatusBadRequest, "amount is required", nil)
		return
	}

	var spentAt pgtype.Timestamptz
	var err error
	if request.SpentAt != nil {
		spentAt, err = parseDateParam(*request.SpentAt, false)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	var tagID pgtype.UUID
	if request.TagID != nil && *request.TagID != "" {
		tagID, err = pgUUID(*request.TagID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid tag ID", err)
			return
		}
	}

	dbExpenditure, err := queries.CreateExpenditure(context.Background(), CreateExpenditureParams{
		Title:   *request.Title,
		Amount:  numericFromDecimal(coerceAmount(*request.Amount)),
		TagID:   tagID,
		SpentAt: spentAt,
		Notes:   pgText(request.Notes),
	})
	if err != nil {
		logger.Errorf("Error creating expenditure: %v", err)
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	respondOK(c, http.StatusCreated, "Expenditure created successfully", convertExpenditure(dbExpenditure))
}

// @Summary Update expenditure
// @Description Update any subset of an expenditure's fields; a present-but-empty
// @Description tagId clears the tag.
// @Tags expenditures
// @Accept json
// @Produce json
// @Param id path string true "Expenditure ID"
// @Param expenditure body ExpenditureRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated expenditure"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Expenditure not found"
// @Router /api/expenditures/{id} [put]
func updateExpenditure(c *gin.Context) {
	expenditureID, err := pgUUID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid expenditure ID", err)
		return
	}

	var request ExpenditureRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if request.Title != nil {
		if err := validateName(*request.Title); err != nil {
			respondError(c, http.StatusBadRequest, "title cannot be empty", nil)
			return
		}
	}

	var amount pgtype.Numeric
	if request.Amount != nil {
		amount = numericFromDecimal(coerceAmount(*request.Amount))
	}

	var spentAt pgtype.Timestamptz
	if request.SpentAt != nil {
		spentAt, err = parseDateParam(*request.SpentAt, false)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	setTag := request.TagID != nil
	var tagID pgtype.UUID
	if setTag && *request.TagID != "" {
		tagID, err = pgUUID(*request.TagID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid tag ID", err)
			return
		}
	}

	dbExpenditure, err := queries.UpdateExpenditure(context.Background(), UpdateExpenditureParams{
		ID:      expenditureID,
		Title:   pgText(request.Title),
		Amount:  amount,
		SetTag:  setTag,
		TagID:   tagID,
		SpentAt: spentAt,
		Notes:   pgText(request.Notes),
	})
	if err != nil {
		logger.Errorf("Error updating expenditure: %v", err)
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	respondOK(c, http.StatusOK, "Expenditure updated successfully", convertExpenditure(dbExpenditure))
}

// @Summary Delete expenditure
// @Description Remove an expenditure
// @Tags expenditures
// @Produce json
// @Param id path string true "Expenditure ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Expenditure not found"
// @Router /api/expenditures/{id} [delete]
func deleteExpenditure(c *gin.Context) {
	expenditureID, err := pgUUID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid expenditure ID", err)
		return
	}

	deleted, err := queries.DeleteExpenditure(context.Background(), expenditureID)
	if err != nil {
		logger.Errorf("Error deleting expenditure: %v", err)
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}
	if deleted == 0 {
		respondError(c, http.StatusNotFound, "Expenditure not found", nil)
		return
	}

	respondOK(c, http.StatusOK, "Expenditure deleted successfully", gin.H{"id": uuidString(expenditureID)})
}
