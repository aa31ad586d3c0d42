package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	model "github.com/hakuramasam/arcade-gmmc/internal/models"
	"github.com/hakuramasam/arcade-gmmc/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(wallet string, score int) model.LeaderboardEntry {
	return model.LeaderboardEntry{
		ID:            "e-" + wallet[:8],
		WalletAddress: wallet,
		Score:         score,
		CreatedAt:     time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func decodeEntries(t *testing.T, rec *httptest.ResponseRecorder) []model.LeaderboardEntry {
	t.Helper()
	var resp struct {
		Success bool                     `json:"success"`
		Data    []model.LeaderboardEntry `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestGetLeaderboard(t *testing.T) {
	fake := &fakeStore{topEntries: []model.LeaderboardEntry{
		entry("0x1111111111111111111111111111111111111111", 9000),
		entry("0x2222222222222222222222222222222222222222", 7500),
	}}
	withFakeStore(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rec := httptest.NewRecorder()
	GetLeaderboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeEntries(t, rec)
	require.Len(t, entries, 2)
	assert.Equal(t, 9000, entries[0].Score)
}

func TestGetLeaderboardLimitParam(t *testing.T) {
	fake := &fakeStore{topEntries: []model.LeaderboardEntry{
		entry("0x1111111111111111111111111111111111111111", 9000),
		entry("0x2222222222222222222222222222222222222222", 7500),
		entry("0x3333333333333333333333333333333333333333", 6000),
	}}
	withFakeStore(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard?limit=2", nil)
	rec := httptest.NewRecorder()
	GetLeaderboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeEntries(t, rec), 2)
}

func TestGetTopPerformers(t *testing.T) {
	fake := &fakeStore{topEntries: []model.LeaderboardEntry{
		entry("0x1111111111111111111111111111111111111111", 9000),
		entry("0x2222222222222222222222222222222222222222", 7500),
		entry("0x3333333333333333333333333333333333333333", 6000),
		entry("0x4444444444444444444444444444444444444444", 100),
	}}
	withFakeStore(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard/top", nil)
	rec := httptest.NewRecorder()
	GetTopPerformers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeEntries(t, rec), 3)
}

func TestGetWalletRank(t *testing.T) {
	fake := &fakeStore{rank: &model.WalletRank{
		WalletAddress: testWallet,
		Rank:          1,
		BestScore:     9000,
		TotalWallets:  40,
	}}
	withFakeStore(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard/wallets/"+testWallet, nil)
	req = mux.SetURLVars(req, map[string]string{"address": testWallet})
	rec := httptest.NewRecorder()
	GetWalletRank(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool             `json:"success"`
		Data    model.WalletRank `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Data.Rank)
	assert.InDelta(t, 2.5, resp.Data.Percentile, 0.001)
	assert.Equal(t, []string{"👑", "🔥", "💎"}, resp.Data.Badges)
}

// L'adresse de l'URL suit la même règle de casse que la soumission.
func TestGetWalletRankLowercasesAddress(t *testing.T) {
	upper := "0xABCDEF1234567890ABCDEF1234567890ABCDEF12"
	fake := &fakeStore{rank: &model.WalletRank{Rank: 7, BestScore: 50, TotalWallets: 10}}
	withFakeStore(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard/wallets/"+upper, nil)
	req = mux.SetURLVars(req, map[string]string{"address": upper})
	rec := httptest.NewRecorder()
	GetWalletRank(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0xabcdef1234567890abcdef1234567890abcdef12", fake.rankedWallet)
}

func TestGetWalletRankInvalidAddress(t *testing.T) {
	withFakeStore(t, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/leaderboard/wallets/bad", nil)
	req = mux.SetURLVars(req, map[string]string{"address": "bad"})
	rec := httptest.NewRecorder()
	GetWalletRank(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWalletRankNotFound(t *testing.T) {
	withFakeStore(t, &fakeStore{rankErr: store.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/leaderboard/wallets/"+testWallet, nil)
	req = mux.SetURLVars(req, map[string]string{"address": testWallet})
	rec := httptest.NewRecorder()
	GetWalletRank(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetWalletScores(t *testing.T) {
	fake := &fakeStore{scores: []model.LeaderboardEntry{
		entry(testWallet, 400),
		entry(testWallet, 300),
	}}
	withFakeStore(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard/wallets/"+testWallet+"/scores", nil)
	req = mux.SetURLVars(req, map[string]string{"address": testWallet})
	rec := httptest.NewRecorder()
	GetWalletScores(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeEntries(t, rec), 2)
}
