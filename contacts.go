package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Contact handler functions

// ContactRequest is the request body for creating or updating a contact
type ContactRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	ContactType *string `json:"contactType"`
}

// @Summary List contacts
// @Description Retrieve contacts ordered by name, paginated
// @Tags contacts
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} map[string]interface{} "List of contacts with pagination"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/contacts [get]
func listContacts(c *gin.Context) {
	page, limit := paginationParams(c)

	total, err := queries.CountContacts(context.Background())
	if err != nil {
		logger.Errorf("Error counting contacts: %v", err)
		respondError(c, http.StatusInternalServerError, "Error fetching contacts", err)
		return
	}

	dbContacts, err := queries.ListContacts(context.Background(), ListContactsParams{
		Limit:  int32(limit),
		Offset: int32((page - 1) * limit),
	})
	if err != nil {
		logger.Errorf("Error fetching contacts: %v", err)
		respondError(c, http.StatusInternalServerError, "Error fetching contacts", err)
		return
	}

	contacts := make([]Contact, 0, len(dbContacts))
	for _, dbContact := range dbContacts {
		contacts = append(contacts, convertContact(dbContact))
	}

	respondList(c, "Contacts fetched successfully", contacts, buildPagination(page, limit, total))
}

// @Summary Create contact
// @Description Create a new contact (customer, supplier, or other)
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body ContactRequest true "Contact data (name required)"
// @Success 201 {object} map[string]interface{} "Created contact"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/contacts [post]
func createContact(c *gin.Context) {
	var request ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if request.Name == nil {
		respondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	if err := validateName(*request.Name); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	contactType := ContactTypeCustomer
	if request.ContactType != nil {
		if err := validateContactType(*request.ContactType); err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		contactType = *request.ContactType
	}

	dbContact, err := queries.CreateContact(context.Background(), CreateContactParams{
		Name:        *request.Name,
		Phone:       pgText(request.Phone),
		Email:       pgText(request.Email),
		ContactType: contactType,
	})
	if err != nil {
		logger.Errorf("Error creating contact: %v", err)
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	respondOK(c, http.StatusCreated, "Contact created successfully", convertContact(dbContact))
}

// @Summary Get contact
// @Description Fetch a single contact by id
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} map[string]interface{} "Contact"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /api/contacts/{id} [get]
func getContact(c *gin.Context) {
	contactID, err := pgUUID(c.Param("id"))
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

	respondOK(c, http.StatusOK, "Contact fetched successfully", convertContact(dbContact))
}

// @Summary Update contact
// @Description Update any subset of name, phone, email, contactType
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param contact body ContactRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated contact"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /api/contacts/{id} [put]
func updateContact(c *gin.Context) {
	contactID, err := pgUUID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact ID", err)
		return
	}

	var request ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if request.Name != nil {
		if err := validateName(*request.Name); err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}
	if request.ContactType != nil {
		if err := validateContactType(*request.ContactType); err != nil {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	dbContact, err := queries.UpdateContact(context.Background(), UpdateContactParams{
		ID:          contactID,
		Name:        pgText(request.Name),
		Phone:       pgText(request.Phone),
		Email:       pgText(request.Email),
		ContactType: pgText(request.ContactType),
	})
	if err != nil {
		logger.Errorf("Error updating contact: %v", err)
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	respondOK(c, http.StatusOK, "Contact updated successfully", convertContact(dbContact))
}

// @Summary Delete contact
// @Description Delete a contact. Refused with 409 while any account still references it.
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 409 {object} map[string]interface{} "Contact still owns accounts"
// @Router /api/contacts/{id} [delete]
func deleteContact(c *gin.Context) {
	contactID, err := pgUUID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact ID", err)
		return
	}

	if _, err := queries.GetContact(context.Background(), contactID); err != nil {
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	accountCount, err := queries.CountAccountsByContact(context.Background(), contactID)
	if err != nil {
		logger.Errorf("Error counting accounts for contact: %v", err)
		respondError(c, http.StatusInternalServerError, "Error deleting contact", err)
		return
	}
	if accountCount > 0 {
		respondError(c, http.StatusConflict, "Contact still owns ledger accounts; delete those first", nil)
		return
	}

	if err := queries.DeleteContact(context.Background(), contactID); err != nil {
		logger.Errorf("Error deleting contact: %v", err)
		statusCode, message := handleDatabaseError(err)
		respondError(c, statusCode, message, err)
		return
	}

	respondOK(c, http.StatusOK, "Contact deleted successfully", gin.H{"id": uuidString(contactID)})
}
