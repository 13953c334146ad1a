package repository

import (
	"context"
	_ "embed"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	db "github.com/pipsmade/platform/internal/database"
	"github.com/pipsmade/platform/internal/transaction/model"
	"github.com/pipsmade/platform/internal/utils"
)

//go:embed queries/insert_transaction.sql
var insertTransaction string

//go:embed queries/insert_withdrawal_request.sql
var insertWithdrawalRequest string

//go:embed queries/insert_deposit_request.sql
var insertDepositRequest string

//go:embed queries/select_transaction_by_id.sql
var selectTransactionByID string

//go:embed queries/select_transactions_by_user.sql
var selectTransactionsByUser string

//go:embed queries/select_withdrawal_request_by_id.sql
var selectWithdrawalRequestByID string

//go:embed queries/select_deposit_request_by_id.sql
var selectDepositRequestByID string

//go:embed queries/select_pending_withdrawal_requests.sql
var selectPendingWithdrawalRequests string

//go:embed queries/select_pending_deposit_requests.sql
var selectPendingDepositRequests string

//go:embed queries/finalize_transaction.sql
var finalizeTransaction string

//go:embed queries/mark_withdrawal_processed.sql
var markWithdrawalProcessed string

//go:embed queries/mark_deposit_verified.sql
var markDepositVerified string

type PostgresTransactionRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresTransactionRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

// Insert writes a standalone ledger entry, used for bookkeeping kinds that
// have no request attached.
func (r *PostgresTransactionRepository) Insert(ctx context.Context, transaction model.Transaction) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, insertTransaction,
		transaction.ID, transaction.UserLogin, transaction.Kind, transaction.Status, transaction.AssetCode,
		transaction.Amount, transaction.PlatformFee, transaction.NetworkFee, transaction.TxHash,
		transaction.FromAddress, transaction.ToAddress, transaction.UserNotes)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

// InsertWithdrawal creates the pending transaction and its request in one
// database transaction, so a request never exists without its owning
// transaction.
func (r *PostgresTransactionRepository) InsertWithdrawal(ctx context.Context, transaction model.Transaction, request model.WithdrawalRequest) error {
	tx, err := r.postgresPool.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperrors.NewValueError("unable to start transaction", utils.Caller(), err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	batch.Queue(insertTransaction,
		transaction.ID, transaction.UserLogin, transaction.Kind, transaction.Status, transaction.AssetCode,
		transaction.Amount, transaction.PlatformFee, transaction.NetworkFee, transaction.TxHash,
		transaction.FromAddress, transaction.ToAddress, transaction.UserNotes)
	batch.Queue(insertWithdrawalRequest,
		request.ID, request.TransactionID, request.UserLogin, request.AssetCode, request.Amount,
		request.DestinationAddress, request.Network, request.PlatformFee, request.IPAddress, request.UserAgent)
	result := tx.SendBatch(ctx, batch)

	if err = result.Close(); err != nil {
		return apperrors.NewValueError("close failed", utils.Caller(), err)
	}

	if err = tx.Commit(ctx); err != nil {
		return apperrors.NewValueError("commit failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresTransactionRepository) InsertDeposit(ctx context.Context, transaction model.Transaction, request model.DepositRequest) error {
	tx, err := r.postgresPool.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperrors.NewValueError("unable to start transaction", utils.Caller(), err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	batch.Queue(insertTransaction,
		transaction.ID, transaction.UserLogin, transaction.Kind, transaction.Status, transaction.AssetCode,
		transaction.Amount, transaction.PlatformFee, transaction.NetworkFee, transaction.TxHash,
		transaction.FromAddress, transaction.ToAddress, transaction.UserNotes)
	batch.Queue(insertDepositRequest,
		request.ID, request.TransactionID, request.UserLogin, request.AssetCode, request.Amount,
		request.TxHash, request.SenderAddress, request.ProofURL)
	result := tx.SendBatch(ctx, batch)

	if err = result.Close(); err != nil {
		return apperrors.NewValueError("close failed", utils.Caller(), err)
	}

	if err = tx.Commit(ctx); err != nil {
		return apperrors.NewValueError("commit failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresTransactionRepository) SelectByID(ctx context.Context, id string) (*model.Transaction, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var t model.Transaction
	err := conn.QueryRow(ctx, selectTransactionByID, id).
		Scan(&t.ID, &t.UserLogin, &t.Kind, &t.Status, &t.AssetCode, &t.Amount, &t.PlatformFee, &t.NetworkFee,
			&t.TxHash, &t.FromAddress, &t.ToAddress, &t.UserNotes, &t.AdminNotes, &t.RejectionReason,
			&t.ApprovedBy, &t.ApprovedAt, &t.CreatedAt, &t.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrTransactionNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &t, nil
}

func (r *PostgresTransactionRepository) SelectByUser(ctx context.Context, userLogin string, kind string, status string) ([]model.Transaction, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectTransactionsByUser, userLogin, kind, status)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	transactions, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Transaction])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	if len(transactions) == 0 {
		return nil, apperrors.ErrNoTransactions
	}

	return transactions, nil
}

func (r *PostgresTransactionRepository) SelectWithdrawalRequest(ctx context.Context, id string) (*model.WithdrawalRequest, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var w model.WithdrawalRequest
	err := conn.QueryRow(ctx, selectWithdrawalRequestByID, id).
		Scan(&w.ID, &w.TransactionID, &w.UserLogin, &w.AssetCode, &w.Amount, &w.DestinationAddress, &w.Network,
			&w.PlatformFee, &w.IPAddress, &w.UserAgent, &w.ProcessedBy, &w.ProcessedAt, &w.ProcessingNotes,
			&w.SentTxHash, &w.SentAt, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrRequestNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &w, nil
}

func (r *PostgresTransactionRepository) SelectDepositRequest(ctx context.Context, id string) (*model.DepositRequest, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var d model.DepositRequest
	err := conn.QueryRow(ctx, selectDepositRequestByID, id).
		Scan(&d.ID, &d.TransactionID, &d.UserLogin, &d.AssetCode, &d.Amount, &d.TxHash, &d.SenderAddress,
			&d.ProofURL, &d.VerifiedBy, &d.VerifiedAt, &d.VerificationNotes, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrRequestNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &d, nil
}

func (r *PostgresTransactionRepository) SelectPendingWithdrawals(ctx context.Context) ([]model.WithdrawalRequest, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectPendingWithdrawalRequests)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	requests, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.WithdrawalRequest])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return requests, nil
}

func (r *PostgresTransactionRepository) SelectPendingDeposits(ctx context.Context) ([]model.DepositRequest, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectPendingDepositRequests)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	requests, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.DepositRequest])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return requests, nil
}

// Finalize moves a pending transaction to a terminal status. The status guard
// sits in the WHERE clause, so a replayed decision affects zero rows and is
// reported as already finalized.
func (r *PostgresTransactionRepository) Finalize(ctx context.Context, id string, status string, approver string, notes string, rejectionReason string) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	tag, err := conn.Exec(ctx, finalizeTransaction, id, status, approver, notes, rejectionReason)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyFinalized
	}

	return nil
}

func (r *PostgresTransactionRepository) MarkWithdrawalProcessed(ctx context.Context, id string, operator string, notes string, sentTxHash string) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, markWithdrawalProcessed, id, operator, notes, sentTxHash)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresTransactionRepository) MarkDepositVerified(ctx context.Context, id string, operator string, notes string) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, markDepositVerified, id, operator, notes)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}
