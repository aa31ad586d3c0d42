package scanner

import (
	"database/sql"

	model "github.com/hakuramasam/arcade-gmmc/internal/models"
	"github.com/hakuramasam/arcade-gmmc/internal/utils"
)

// ScanLeaderboardEntry scanne une ligne SQL vers une LeaderboardEntry.
// Utilise les types sql.Null* et les convertit automatiquement.
func ScanLeaderboardEntry(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	var txHash, playerName sql.NullString

	err := scanner.Scan(
		&entry.ID, &entry.WalletAddress, &entry.Score,
		&txHash, &playerName, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	entry.TxHash = utils.NullStringToPointer(txHash)
	entry.PlayerName = utils.NullStringToPointer(playerName)

	return &entry, nil
}
