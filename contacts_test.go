package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

// TestCreateContact tests the POST /api/contacts endpoint
func TestCreateContact(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("creates a contact with full details", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{
			"name":        "Rosa Delgado",
			"contactType": ContactTypeSupplier,
			"phone":       "+1-555-0142",
			"email":       "rosa@delgado-supply.example",
		})
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/contacts", bytes.NewBuffer(body))
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var contact Contact
		assertNoError(t, parseData(resp, &contact))
		if contact.Name != "Rosa Delgado" {
			t.Errorf("Expected name 'Rosa Delgado', got %s", contact.Name)
		}
		if contact.ContactType != ContactTypeSupplier {
			t.Errorf("Expected supplier type, got %s", contact.ContactType)
		}
		if contact.Phone == nil || *contact.Phone != "+1-555-0142" {
			t.Errorf("Expected phone to round-trip, got %v", contact.Phone)
		}
	})

	t.Run("defaults contact type to Customer", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{"name": "Walk-in Wendy"})
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/contacts", bytes.NewBuffer(body))
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var contact Contact
		assertNoError(t, parseData(resp, &contact))
		if contact.ContactType != ContactTypeCustomer {
			t.Errorf("Expected default type Customer, got %s", contact.ContactType)
		}
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{"name": ""})
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/contacts", bytes.NewBuffer(body))
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should fail with unknown contact type", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{"name": "Typo Tim", "contactType": "Vendor"})
		assertNoError(t, err)

		resp := makeRequest("POST", "/api/contacts", bytes.NewBuffer(body))
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestListContacts tests the GET /api/contacts endpoint
func TestListContacts(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	for _, name := range []string{"Ada", "Ben", "Cal"} {
		_, err := createTestContact(name, ContactTypeCustomer)
		assertNoError(t, err)
	}

	t.Run("returns contacts with pagination metadata", func(t *testing.T) {
		resp := makeRequest("GET", "/api/contacts?page=1&limit=2", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		env, err := parseEnvelope(resp)
		assertNoError(t, err)

		var contacts []Contact
		assertNoError(t, json.Unmarshal(env.Data, &contacts))
		if len(contacts) != 2 {
			t.Errorf("Expected 2 contacts on first page, got %d", len(contacts))
		}
		if env.Pagination == nil {
			t.Fatal("Expected pagination metadata")
		}
		if env.Pagination.Total != 3 {
			t.Errorf("Expected total 3, got %d", env.Pagination.Total)
		}
		if env.Pagination.TotalPages != 2 {
			t.Errorf("Expected 2 pages, got %d", env.Pagination.TotalPages)
		}
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		resp := makeRequest("GET", "/api/contacts?page=2&limit=2", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var contacts []Contact
		assertNoError(t, parseData(resp, &contacts))
		if len(contacts) != 1 {
			t.Errorf("Expected 1 contact on second page, got %d", len(contacts))
		}
	})
}

// TestGetContact tests the GET /api/contacts/:id endpoint
func TestGetContact(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	contact, err := createTestContact("Dora Finch", ContactTypeOther)
	assertNoError(t, err)

	t.Run("returns the contact by id", func(t *testing.T) {
		resp := makeRequest("GET", "/api/contacts/"+uuidString(contact.ID), nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var got Contact
		assertNoError(t, parseData(resp, &got))
		if got.Name != "Dora Finch" {
			t.Errorf("Expected 'Dora Finch', got %s", got.Name)
		}
	})

	t.Run("should return 404 for unknown id", func(t *testing.T) {
		resp := makeRequest("GET", "/api/contacts/00000000-0000-0000-0000-000000000000", nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

// TestUpdateContact tests the PUT /api/contacts/:id endpoint
func TestUpdateContact(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	contact, err := createTestContact("Early Name", ContactTypeCustomer)
	assertNoError(t, err)

	t.Run("updates only the provided fields", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{"phone": "+1-555-0199"})
		assertNoError(t, err)

		resp := makeRequest("PUT", "/api/contacts/"+uuidString(contact.ID), bytes.NewBuffer(body))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var got Contact
		assertNoError(t, parseData(resp, &got))
		if got.Name != "Early Name" {
			t.Errorf("Expected name untouched, got %s", got.Name)
		}
		if got.Phone == nil || *got.Phone != "+1-555-0199" {
			t.Errorf("Expected updated phone, got %v", got.Phone)
		}
	})

	t.Run("should return 404 for unknown id", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{"name": "Nobody"})
		assertNoError(t, err)

		resp := makeRequest("PUT", "/api/contacts/00000000-0000-0000-0000-000000000000", bytes.NewBuffer(body))
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

// TestDeleteContact tests that contacts with open accounts cannot be removed
func TestDeleteContact(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("deletes a contact with no accounts", func(t *testing.T) {
		contact, err := createTestContact("No Ledger Lee", ContactTypeCustomer)
		assertNoError(t, err)

		resp := makeRequest("DELETE", "/api/contacts/"+uuidString(contact.ID), nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		resp = makeRequest("GET", "/api/contacts/"+uuidString(contact.ID), nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("refuses to delete a contact with a ledger account", func(t *testing.T) {
		contact, err := createTestContact("Active Abe", ContactTypeSupplier)
		assertNoError(t, err)
		resolveTestAccount(t, uuidString(contact.ID), "")

		resp := makeRequest("DELETE", "/api/contacts/"+uuidString(contact.ID), nil)
		assertStatusCode(t, http.StatusConflict, resp.Code)

		// Contact is still there
		resp = makeRequest("GET", "/api/contacts/"+uuidString(contact.ID), nil)
		assertStatusCode(t, http.StatusOK, resp.Code)
	})

	t.Run("should return 404 for unknown id", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/contacts/00000000-0000-0000-0000-000000000000", nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}
