package model

import "time"

// ScoreSubmission est une soumission validée et normalisée, prête à insérer.
// L'adresse est déjà en minuscules, le nom déjà assaini.
type ScoreSubmission struct {
	WalletAddress string  `json:"wallet_address"`
	Score         int     `json:"score"`
	TxHash        *string `json:"tx_hash,omitempty"`
	PlayerName    *string `json:"player_name,omitempty"`
}

// LeaderboardEntry est une ligne persistée du classement. Jamais modifiée
// après création (le classement est un registre en append-only).
type LeaderboardEntry struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Score         int       `json:"score"`
	TxHash        *string   `json:"tx_hash"`
	PlayerName    *string   `json:"player_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// WalletRank est la position d'un wallet dans le classement général.
type WalletRank struct {
	WalletAddress string   `json:"wallet_address"`
	Rank          int      `json:"rank"`
	BestScore     int      `json:"best_score"`
	TotalWallets  int      `json:"total_wallets"`
	Percentile    float64  `json:"percentile"` // Top X%
	Badges        []string `json:"badges,omitempty"`
}
