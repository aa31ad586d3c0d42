package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hakuramasam/arcade-gmmc/internal/database"
	model "github.com/hakuramasam/arcade-gmmc/internal/models"
	"github.com/hakuramasam/arcade-gmmc/internal/scanner"
	"github.com/jackc/pgx/v5"
)

// Postgres implémente LeaderboardStore sur le pool global database.DB.
type Postgres struct{}

func (p *Postgres) CountSince(ctx context.Context, walletAddress string, since time.Time) (int, error) {
	var count int
	err := database.DB.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM leaderboard
		WHERE wallet_address = $1 AND created_at >= $2
	`, walletAddress, since).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (p *Postgres) Insert(ctx context.Context, sub model.ScoreSubmission) (*model.LeaderboardEntry, error) {
	row := database.DB.QueryRow(ctx, `
		INSERT INTO leaderboard(id, wallet_address, score, tx_hash, player_name, created_at)
		VALUES($1, $2, $3, $4, $5, NOW())
		RETURNING id, wallet_address, score, tx_hash, player_name, created_at
	`, uuid.NewString(), sub.WalletAddress, sub.Score, sub.TxHash, sub.PlayerName)

	return scanner.ScanLeaderboardEntry(row)
}

func (p *Postgres) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := database.DB.Query(ctx, `
		WITH best_scores AS (
			SELECT DISTINCT ON (wallet_address)
				id, wallet_address, score, tx_hash, player_name, created_at
			FROM leaderboard
			ORDER BY wallet_address, score DESC, created_at ASC
		)
		SELECT id, wallet_address, score, tx_hash, player_name, created_at
		FROM best_scores
		ORDER BY score DESC, created_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (p *Postgres) WalletRank(ctx context.Context, walletAddress string) (*model.WalletRank, error) {
	var rank model.WalletRank

	err := database.DB.QueryRow(ctx, `
		WITH wallet_scores AS (
			SELECT wallet_address, MAX(score) as best_score
			FROM leaderboard
			GROUP BY wallet_address
		),
		ranked_wallets AS (
			SELECT
				wallet_address,
				best_score,
				ROW_NUMBER() OVER (ORDER BY best_score DESC) as rank
			FROM wallet_scores
		),
		total_count AS (
			SELECT COUNT(*) as total FROM ranked_wallets
		)
		SELECT rw.rank, rw.best_score, (SELECT total FROM total_count) as total_wallets
		FROM ranked_wallets rw
		WHERE rw.wallet_address = $1
	`, walletAddress).Scan(&rank.Rank, &rank.BestScore, &rank.TotalWallets)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rank.WalletAddress = walletAddress
	return &rank, nil
}

func (p *Postgres) WalletScores(ctx context.Context, walletAddress string, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, wallet_address, score, tx_hash, player_name, created_at
		FROM leaderboard
		WHERE wallet_address = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, walletAddress, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	for rows.Next() {
		entry, err := scanner.ScanLeaderboardEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}
