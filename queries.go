package main

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx so every query can run
// standalone or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries provides typed database operations
type Queries struct {
	db DBTX
}

// NewQueries initializes a query layer over a pool or transaction
func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries bound to the given transaction
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// Database row types

type DBUser struct {
	ID           pgtype.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type DBContact struct {
	ID          pgtype.UUID
	Name        string
	Phone       pgtype.Text
	Email       pgtype.Text
	ContactType string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type DBTag struct {
	ID        pgtype.UUID
	Name      string
	Color     pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type DBAccount struct {
	ID           pgtype.UUID
	ContactID    pgtype.UUID
	AccountName  string
	AccountType  string
	TotalBalance pgtype.Numeric
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

// DBAccountWithContact joins the owning contact onto an account row
type DBAccountWithContact struct {
	Account DBAccount
	Contact DBContact
}

type DBTransaction struct {
	ID              pgtype.UUID
	AccountID       pgtype.UUID
	Amount          pgtype.Numeric
	TransactionType string
	TxnDate         pgtype.Timestamptz
	TagID           pgtype.UUID
	Description     pgtype.Text
	Reference       pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

// DBSignedAmount is the minimal projection used by statement folds
type DBSignedAmount struct {
	Amount          pgtype.Numeric
	TransactionType string
}

type DBExpenditure struct {
	ID        pgtype.UUID
	Title     string
	Amount    pgtype.Numeric
	TagID     pgtype.UUID
	SpentAt   pgtype.Timestamptz
	Notes     pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// User queries

type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (DBUser, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, created_at, updated_at`,
		arg.Name, arg.Email, arg.PasswordHash, arg.Role)
	var u DBUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (DBUser, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users WHERE email = $1`, email)
	var u DBUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Contact queries

type CreateContactParams struct {
	Name        string
	Phone       pgtype.Text
	Email       pgtype.Text
	ContactType string
}

func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (DBContact, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO contacts (name, phone, email, contact_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, phone, email, contact_type, created_at, updated_at`,
		arg.Name, arg.Phone, arg.Email, arg.ContactType)
	var c DBContact
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.ContactType, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (q *Queries) GetContact(ctx context.Context, id pgtype.UUID) (DBContact, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, name, phone, email, contact_type, created_at, updated_at
		FROM contacts WHERE id = $1`, id)
	var c DBContact
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.ContactType, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

type ListContactsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListContacts(ctx context.Context, arg ListContactsParams) ([]DBContact, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, name, phone, email, contact_type, created_at, updated_at
		FROM contacts ORDER BY name
		LIMIT $1 OFFSET $2`, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var contacts []DBContact
	for rows.Next() {
		var c DBContact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.ContactType, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (q *Queries) CountContacts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	return count, err
}

type UpdateContactParams struct {
	ID          pgtype.UUID
	Name        pgtype.Text
	Phone       pgtype.Text
	Email       pgtype.Text
	ContactType pgtype.Text
}

func (q *Queries) UpdateContact(ctx context.Context, arg UpdateContactParams) (DBContact, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE contacts SET
			name = COALESCE($2, name),
			phone = COALESCE($3, phone),
			email = COALESCE($4, email),
			contact_type = COALESCE($5, contact_type),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, name, phone, email, contact_type, created_at, updated_at`,
		arg.ID, arg.Name, arg.Phone, arg.Email, arg.ContactType)
	var c DBContact
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.ContactType, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (q *Queries) DeleteContact(ctx context.Context, id pgtype.UUID) error {
	_, err := q.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	return err
}

func (q *Queries) CountAccountsByContact(ctx context.Context, contactID pgtype.UUID) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE contact_id = $1`, contactID).Scan(&count)
	return count, err
}

// Tag queries

type CreateTagParams struct {
	Name  string
	Color pgtype.Text
}

func (q *Queries) CreateTag(ctx context.Context, arg CreateTagParams) (DBTag, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO tags (name, color)
		VALUES ($1, $2)
		RETURNING id, name, color, created_at, updated_at`,
		arg.Name, arg.Color)
	var t DBTag
	err := row.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (q *Queries) GetTag(ctx context.Context, id pgtype.UUID) (DBTag, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, name, color, created_at, updated_at FROM tags WHERE id = $1`, id)
	var t DBTag
	err := row.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (q *Queries) ListTags(ctx context.Context) ([]DBTag, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, name, color, created_at, updated_at FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tags []DBTag
	for rows.Next() {
		var t DBTag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// DeleteTag removes a tag; tag references on transactions and expenditures
// are cleared by the ON DELETE SET NULL constraints, not cascaded.
func (q *Queries) DeleteTag(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Account queries

type UpsertAccountParams struct {
	ContactID   pgtype.UUID
	AccountName string
	AccountType string
}

// UpsertAccount performs the get-or-create for a (contact, accountType) pair.
// The unique constraint makes this idempotent under concurrent callers; the
// no-op DO UPDATE lets the existing row come back through RETURNING.
func (q *Queries) UpsertAccount(ctx context.Context, arg UpsertAccountParams) (DBAccount, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO accounts (contact_id, account_name, account_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (contact_id, account_type)
		DO UPDATE SET account_name = accounts.account_name
		RETURNING id, contact_id, account_name, account_type, total_balance, created_at, updated_at`,
		arg.ContactID, arg.AccountName, arg.AccountType)
	var a DBAccount
	err := row.Scan(&a.ID, &a.ContactID, &a.AccountName, &a.AccountType, &a.TotalBalance, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (q *Queries) GetAccount(ctx context.Context, id pgtype.UUID) (DBAccount, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, contact_id, account_name, account_type, total_balance, created_at, updated_at
		FROM accounts WHERE id = $1`, id)
	var a DBAccount
	err := row.Scan(&a.ID, &a.ContactID, &a.AccountName, &a.AccountType, &a.TotalBalance, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

type ListAccountsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListAccountsWithContact(ctx context.Context, arg ListAccountsParams) ([]DBAccountWithContact, error) {
	rows, err := q.db.Query(ctx, `
		SELECT a.id, a.contact_id, a.account_name, a.account_type, a.total_balance, a.created_at, a.updated_at,
		       c.id, c.name, c.phone, c.email, c.contact_type, c.created_at, c.updated_at
		FROM accounts a
		JOIN contacts c ON c.id = a.contact_id
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2`, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var accounts []DBAccountWithContact
	for rows.Next() {
		var ac DBAccountWithContact
		if err := rows.Scan(
			&ac.Account.ID, &ac.Account.ContactID, &ac.Account.AccountName, &ac.Account.AccountType,
			&ac.Account.TotalBalance, &ac.Account.CreatedAt, &ac.Account.UpdatedAt,
			&ac.Contact.ID, &ac.Contact.Name, &ac.Contact.Phone, &ac.Contact.Email,
			&ac.Contact.ContactType, &ac.Contact.CreatedAt, &ac.Contact.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, ac)
	}
	return accounts, rows.Err()
}

func (q *Queries) CountAccounts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	return count, err
}

type UpdateAccountParams struct {
	ID          pgtype.UUID
	AccountName pgtype.Text
	AccountType pgtype.Text
}

func (q *Queries) UpdateAccount(ctx context.Context, arg UpdateAccountParams) (DBAccount, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE accounts SET
			account_name = COALESCE($2, account_name),
			account_type = COALESCE($3, account_type),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, contact_id, account_name, account_type, total_balance, created_at, updated_at`,
		arg.ID, arg.AccountName, arg.AccountType)
	var a DBAccount
	err := row.Scan(&a.ID, &a.ContactID, &a.AccountName, &a.AccountType, &a.TotalBalance, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// ApplyAccountDelta adds a signed delta to the cached balance in place, so two
// concurrent postings never clobber each other's contribution.
func (q *Queries) ApplyAccountDelta(ctx context.Context, id pgtype.UUID, delta pgtype.Numeric) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE accounts SET
			total_balance = total_balance + $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`, id, delta)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteAccount removes an account; its transactions go with it via the
// ON DELETE CASCADE constraint.
func (q *Queries) DeleteAccount(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListAccountBalances returns every account's cached balance for the summary scan
func (q *Queries) ListAccountBalances(ctx context.Context) ([]pgtype.Numeric, error) {
	rows, err := q.db.Query(ctx, `SELECT total_balance FROM accounts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var balances []pgtype.Numeric
	for rows.Next() {
		var b pgtype.Numeric
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// Transaction queries

type CreateTransactionParams struct {
	AccountID       pgtype.UUID
	Amount          pgtype.Numeric
	TransactionType string
	TxnDate         pgtype.Timestamptz
	TagID           pgtype.UUID
	Description     pgtype.Text
	Reference       pgtype.Text
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (DBTransaction, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO transactions (account_id, amount, transaction_type, txn_date, tag_id, description, reference)
		VALUES ($1, $2, $3, COALESCE($4, CURRENT_TIMESTAMP), $5, $6, $7)
		RETURNING id, account_id, amount, transaction_type, txn_date, tag_id, description, reference, created_at, updated_at`,
		arg.AccountID, arg.Amount, arg.TransactionType, arg.TxnDate, arg.TagID, arg.Description, arg.Reference)
	var t DBTransaction
	err := row.Scan(&t.ID, &t.AccountID, &t.Amount, &t.TransactionType, &t.TxnDate,
		&t.TagID, &t.Description, &t.Reference, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (q *Queries) GetTransaction(ctx context.Context, id pgtype.UUID) (DBTransaction, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, account_id, amount, transaction_type, txn_date, tag_id, description, reference, created_at, updated_at
		FROM transactions WHERE id = $1`, id)
	var t DBTransaction
	err := row.Scan(&t.ID, &t.AccountID, &t.Amount, &t.TransactionType, &t.TxnDate,
		&t.TagID, &t.Description, &t.Reference, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// GetTransactionForUpdate locks the row so the signed delta reverted by an
// edit or deletion is read from the current committed state, not a stale one.
func (q *Queries) GetTransactionForUpdate(ctx context.Context, id pgtype.UUID) (DBTransaction, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, account_id, amount, transaction_type, txn_date, tag_id, description, reference, created_at, updated_at
		FROM transactions WHERE id = $1
		FOR UPDATE`, id)
	var t DBTransaction
	err := row.Scan(&t.ID, &t.AccountID, &t.Amount, &t.TransactionType, &t.TxnDate,
		&t.TagID, &t.Description, &t.Reference, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

type UpdateTransactionParams struct {
	ID              pgtype.UUID
	Amount          pgtype.Numeric
	TransactionType pgtype.Text
	TxnDate         pgtype.Timestamptz
	SetTag          bool
	TagID           pgtype.UUID
	Description     pgtype.Text
	Reference       pgtype.Text
}

func (q *Queries) UpdateTransaction(ctx context.Context, arg UpdateTransactionParams) (DBTransaction, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE transactions SET
			amount = COALESCE($2, amount),
			transaction_type = COALESCE($3, transaction_type),
			txn_date = COALESCE($4, txn_date),
			tag_id = CASE WHEN $5 THEN $6 ELSE tag_id END,
			description = COALESCE($7, description),
			reference = COALESCE($8, reference),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, account_id, amount, transaction_type, txn_date, tag_id, description, reference, created_at, updated_at`,
		arg.ID, arg.Amount, arg.TransactionType, arg.TxnDate, arg.SetTag, arg.TagID, arg.Description, arg.Reference)
	var t DBTransaction
	err := row.Scan(&t.ID, &t.AccountID, &t.Amount, &t.TransactionType, &t.TxnDate,
		&t.TagID, &t.Description, &t.Reference, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (q *Queries) DeleteTransaction(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ListTransactionsParams struct {
	AccountID pgtype.UUID
	StartDate pgtype.Timestamptz
	EndDate   pgtype.Timestamptz
}

// ListTransactionsByAccount returns the statement window newest-first
func (q *Queries) ListTransactionsByAccount(ctx context.Context, arg ListTransactionsParams) ([]DBTransaction, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, account_id, amount, transaction_type, txn_date, tag_id, description, reference, created_at, updated_at
		FROM transactions
		WHERE account_id = $1
		  AND ($2::timestamptz IS NULL OR txn_date >= $2)
		  AND ($3::timestamptz IS NULL OR txn_date <= $3)
		ORDER BY txn_date DESC, created_at DESC`,
		arg.AccountID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var transactions []DBTransaction
	for rows.Next() {
		var t DBTransaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Amount, &t.TransactionType, &t.TxnDate,
			&t.TagID, &t.Description, &t.Reference, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// Expenditure queries

type CreateExpenditureParams struct {
	Title   string
	Amount  pgtype.Numeric
	TagID   pgtype.UUID
	SpentAt pgtype.Timestamptz
	Notes   pgtype.Text
}

func (q *Queries) CreateExpenditure(ctx context.Context, arg CreateExpenditureParams) (DBExpenditure, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO expenditures (title, amount, tag_id, spent_at, notes)
		VALUES ($1, $2, $3, COALESCE($4, CURRENT_TIMESTAMP), $5)
		RETURNING id, title, amount, tag_id, spent_at, notes, created_at, updated_at`,
		arg.Title, arg.Amount, arg.TagID, arg.SpentAt, arg.Notes)
	var e DBExpenditure
	err := row.Scan(&e.ID, &e.Title, &e.Amount, &e.TagID, &e.SpentAt, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (q *Queries) GetExpenditure(ctx context.Context, id pgtype.UUID) (DBExpenditure, error) {
	row := q.db.QueryRow(ctx, `
		SELECT id, title, amount, tag_id, spent_at, notes, created_at, updated_at
		FROM expenditures WHERE id = $1`, id)
	var e DBExpenditure
	err := row.Scan(&e.ID, &e.Title, &e.Amount, &e.TagID, &e.SpentAt, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

type ListExpendituresParams struct {
	StartDate pgtype.Timestamptz
	EndDate   pgtype.Timestamptz
	Limit     int32
	Offset    int32
}

func (q *Queries) ListExpenditures(ctx context.Context, arg ListExpendituresParams) ([]DBExpenditure, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, title, amount, tag_id, spent_at, notes, created_at, updated_at
		FROM expenditures
		WHERE ($1::timestamptz IS NULL OR spent_at >= $1)
		  AND ($2::timestamptz IS NULL OR spent_at <= $2)
		ORDER BY spent_at DESC
		LIMIT $3 OFFSET $4`,
		arg.StartDate, arg.EndDate, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var expenditures []DBExpenditure
	for rows.Next() {
		var e DBExpenditure
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.TagID, &e.SpentAt, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		expenditures = append(expenditures, e)
	}
	return expenditures, rows.Err()
}

type CountExpendituresParams struct {
	StartDate pgtype.Timestamptz
	EndDate   pgtype.Timestamptz
}

func (q *Queries) CountExpenditures(ctx context.Context, arg CountExpendituresParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM expenditures
		WHERE ($1::timestamptz IS NULL OR spent_at >= $1)
		  AND ($2::timestamptz IS NULL OR spent_at <= $2)`,
		arg.StartDate, arg.EndDate).Scan(&count)
	return count, err
}

// ListExpenditureAmounts returns the amounts of the whole filtered window so
// the summary fold never depends on the page being served.
func (q *Queries) ListExpenditureAmounts(ctx context.Context, arg CountExpendituresParams) ([]pgtype.Numeric, error) {
	rows, err := q.db.Query(ctx, `
		SELECT amount FROM expenditures
		WHERE ($1::timestamptz IS NULL OR spent_at >= $1)
		  AND ($2::timestamptz IS NULL OR spent_at <= $2)`,
		arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var amounts []pgtype.Numeric
	for rows.Next() {
		var a pgtype.Numeric
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		amounts = append(amounts, a)
	}
	return amounts, rows.Err()
}

type UpdateExpenditureParams struct {
	ID      pgtype.UUID
	Title   pgtype.Text
	Amount  pgtype.Numeric
	SetTag  bool
	TagID   pgtype.UUID
	SpentAt pgtype.Timestamptz
	Notes   pgtype.Text
}

func (q *Queries) UpdateExpenditure(ctx context.Context, arg UpdateExpenditureParams) (DBExpenditure, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE expenditures SET
			title = COALESCE($2, title),
			amount = COALESCE($3, amount),
			tag_id = CASE WHEN $4 THEN $5 ELSE tag_id END,
			spent_at = COALESCE($6, spent_at),
			notes = COALESCE($7, notes),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, title, amount, tag_id, spent_at, notes, created_at, updated_at`,
		arg.ID, arg.Title, arg.Amount, arg.SetTag, arg.TagID, arg.SpentAt, arg.Notes)
	var e DBExpenditure
	err := row.Scan(&e.ID, &e.Title, &e.Amount, &e.TagID, &e.SpentAt, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (q *Queries) DeleteExpenditure(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM expenditures WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
