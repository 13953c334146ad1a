package repository

import (
	"context"
	_ "embed"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/apperrors"
	db "github.com/pipsmade/platform/internal/database"
	"github.com/pipsmade/platform/internal/utils"
	"github.com/pipsmade/platform/internal/wallet/model"
)

//go:embed queries/select_wallet_by_user_and_asset.sql
var selectWalletByUserAndAsset string

//go:embed queries/select_wallets_by_user.sql
var selectWalletsByUser string

//go:embed queries/credit_wallet.sql
var creditWallet string

//go:embed queries/debit_wallet.sql
var debitWallet string

type PostgresWalletRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresWalletRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresWalletRepository {
	return &PostgresWalletRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresWalletRepository) SelectByUserAndAsset(ctx context.Context, userLogin string, assetCode string) (*model.Wallet, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var wallet model.Wallet
	err := conn.QueryRow(ctx, selectWalletByUserAndAsset, userLogin, assetCode).
		Scan(&wallet.ID, &wallet.UserLogin, &wallet.AssetCode, &wallet.Balance, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrWalletNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &wallet, nil
}

func (r *PostgresWalletRepository) SelectAllByUser(ctx context.Context, userLogin string) ([]model.Wallet, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectWalletsByUser, userLogin)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	wallets, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Wallet])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return wallets, nil
}

// Credit lazily creates the wallet on first credit for a (user, asset) pair.
func (r *PostgresWalletRepository) Credit(ctx context.Context, userLogin string, assetCode string, amount decimal.Decimal) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, creditWallet, uuid.New().String(), userLogin, assetCode, amount)
	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	return nil
}

// Debit is a single conditional update: the balance check and the decrement are
// one statement, so two concurrent approvals cannot both pass the check before
// either writes. Zero affected rows means the balance was short (or the wallet
// does not exist).
func (r *PostgresWalletRepository) Debit(ctx context.Context, userLogin string, assetCode string, amount decimal.Decimal) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	tag, err := conn.Exec(ctx, debitWallet, userLogin, assetCode, amount)

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.CheckViolation {
		return apperrors.ErrInsufficientBalance
	}

	if err != nil {
		return apperrors.NewValueError("query failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrInsufficientBalance
	}

	return nil
}
