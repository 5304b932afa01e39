package main

import "time"

// Contact represents a customer, supplier, or other business relation
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	ContactType string    `json:"contactType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Account represents one ledger between the business and one contact
type Account struct {
	ID           string    `json:"id"`
	ContactID    string    `json:"contactId"`
	AccountName  string    `json:"accountName"`
	AccountType  string    `json:"accountType"`
	TotalBalance float64   `json:"totalBalance"`
	Contact      *Contact  `json:"contact,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Transaction represents a single signed monetary entry against an account
type Transaction struct {
	ID              string    `json:"id"`
	AccountID       string    `json:"accountId"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transactionType"`
	Date            time.Time `json:"date"`
	TagID           *string   `json:"tagId"`
	Description     *string   `json:"description"`
	Reference       *string   `json:"reference"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Tag represents label/color metadata attached to transactions and expenditures
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Expenditure represents a standalone business expense outside any ledger
type Expenditure struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	TagID     *string   `json:"tagId"`
	SpentAt   time.Time `json:"spentAt"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User represents an authenticated API user
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LedgerStatement is the per-account statement for a date-filtered window
type LedgerStatement struct {
	Account      Account       `json:"account"`
	Transactions []Transaction `json:"transactions"`
	TotalTook    float64       `json:"totalTook"`
	TotalGave    float64       `json:"totalGave"`
	Count        int           `json:"count"`
}

// AccountingSummary aggregates balances across all accounts
type AccountingSummary struct {
	TotalPayable    float64 `json:"totalPayable"`
	TotalReceivable float64 `json:"totalReceivable"`
	NetBalance      float64 `json:"netBalance"`
}

// ExpenditureSummary is the folded total for a date-filtered window
type ExpenditureSummary struct {
	TotalSpent float64 `json:"totalSpent"`
	Count      int     `json:"count"`
}

// Pagination describes the page window of a list response
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
