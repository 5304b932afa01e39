package main

import (
	"net/http"
	"testing"
)

// TestGetLedger tests the GET /api/accounting/ledger/:accountId endpoint
func TestGetLedger(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	contact, err := createTestContact("Mia Nolan", ContactTypeCustomer)
	assertNoError(t, err)
	account := resolveTestAccount(t, uuidString(contact.ID), "")

	postTestTransaction(t, account.ID, 500, TransactionTypeCredit, map[string]any{"date": "2026-01-10"})
	postTestTransaction(t, account.ID, 200, TransactionTypeDebit, map[string]any{"date": "2026-01-20"})
	postTestTransaction(t, account.ID, 50, TransactionTypeCredit, map[string]any{"date": "2026-02-05"})

	t.Run("unfiltered statement folds all transactions", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounting/ledger/"+account.ID, nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var statement LedgerStatement
		assertNoError(t, parseData(resp, &statement))

		if statement.Count != 3 {
			t.Errorf("Expected 3 transactions, got %d", statement.Count)
		}
		if statement.TotalTook != 550 {
			t.Errorf("Expected totalTook 550, got %v", statement.TotalTook)
		}
		if statement.TotalGave != 200 {
			t.Errorf("Expected totalGave 200, got %v", statement.TotalGave)
		}
		if statement.Account.TotalBalance != 350 {
			t.Errorf("Expected account balance 350, got %v", statement.Account.TotalBalance)
		}
	})

	t.Run("statement is sorted newest first", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounting/ledger/"+account.ID, nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var statement LedgerStatement
		assertNoError(t, parseData(resp, &statement))

		for i := 1; i < len(statement.Transactions); i++ {
			if statement.Transactions[i].Date.After(statement.Transactions[i-1].Date) {
				t.Error("Expected transactions ordered newest first")
			}
		}
	})

	t.Run("date window filters inclusively with end-of-day normalization", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounting/ledger/"+account.ID+"?startDate=2026-01-01&endDate=2026-01-20", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var statement LedgerStatement
		assertNoError(t, parseData(resp, &statement))

		if statement.Count != 2 {
			t.Errorf("Expected 2 transactions in January window, got %d", statement.Count)
		}
		if statement.TotalTook != 500 {
			t.Errorf("Expected totalTook 500, got %v", statement.TotalTook)
		}
		if statement.TotalGave != 200 {
			t.Errorf("Expected totalGave 200, got %v", statement.TotalGave)
		}
	})

	t.Run("round-trip: a posted transaction appears exactly once in its window", func(t *testing.T) {
		result := postTestTransaction(t, account.ID, 33, TransactionTypeDebit, map[string]any{"date": "2026-03-01"})

		resp := makeRequest("GET", "/api/accounting/ledger/"+account.ID+"?startDate=2026-03-01&endDate=2026-03-01", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var statement LedgerStatement
		assertNoError(t, parseData(resp, &statement))

		if statement.Count != 1 {
			t.Fatalf("Expected exactly 1 transaction in window, got %d", statement.Count)
		}
		if statement.Transactions[0].ID != result.Transaction.ID {
			t.Error("Expected the posted transaction in its date window")
		}
		if statement.TotalGave != 33 || statement.TotalTook != 0 {
			t.Errorf("Expected totalGave 33 / totalTook 0, got %v / %v", statement.TotalGave, statement.TotalTook)
		}
	})

	t.Run("should reject malformed date filters", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounting/ledger/"+account.ID+"?startDate=yesterday", nil)
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should return 404 for unknown account", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounting/ledger/00000000-0000-0000-0000-000000000000", nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

// TestAccountingSummary tests the GET /api/accounting/summary endpoint
func TestAccountingSummary(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("empty database yields zero totals", func(t *testing.T) {
		resp := makeRequest("GET", "/api/accounting/summary", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var summary AccountingSummary
		assertNoError(t, parseData(resp, &summary))

		if summary.TotalPayable != 0 || summary.TotalReceivable != 0 || summary.NetBalance != 0 {
			t.Errorf("Expected zero summary, got %+v", summary)
		}
	})

	t.Run("buckets balances by sign", func(t *testing.T) {
		// Balances [500, -200, 0]
		positive, err := createTestContact("Nora Hale", ContactTypeCustomer)
		assertNoError(t, err)
		positiveAccount := resolveTestAccount(t, uuidString(positive.ID), "")
		postTestTransaction(t, positiveAccount.ID, 500, TransactionTypeCredit, nil)

		negative, err := createTestContact("Omar Reyes", ContactTypeSupplier)
		assertNoError(t, err)
		negativeAccount := resolveTestAccount(t, uuidString(negative.ID), "")
		postTestTransaction(t, negativeAccount.ID, 200, TransactionTypeDebit, nil)

		zero, err := createTestContact("Pia Stern", ContactTypeCustomer)
		assertNoError(t, err)
		resolveTestAccount(t, uuidString(zero.ID), "")

		resp := makeRequest("GET", "/api/accounting/summary", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var summary AccountingSummary
		assertNoError(t, parseData(resp, &summary))

		if summary.TotalPayable != 500 {
			t.Errorf("Expected totalPayable 500, got %v", summary.TotalPayable)
		}
		if summary.TotalReceivable != 200 {
			t.Errorf("Expected totalReceivable 200, got %v", summary.TotalReceivable)
		}
		if summary.NetBalance != -300 {
			t.Errorf("Expected netBalance -300, got %v", summary.NetBalance)
		}
	})
}
