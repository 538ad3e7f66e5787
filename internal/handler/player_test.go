package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arise/hunter/api/internal/model"
	"github.com/arise/hunter/api/internal/service"
)

func newPlayerHandler(repo *stubPlayerRepo) *PlayerHandler {
	svc := service.NewPlayerService(service.PlayerServiceConfig{PlayerRepo: repo})
	return NewPlayerHandler(svc)
}

func TestPlayerGetOrCreate_ProvisionsNewPlayer(t *testing.T) {
	h := newPlayerHandler(newStubPlayerRepo())

	req := httptest.NewRequest(http.MethodGet, "/v1/players/Jinwoo", nil)
	req.SetPathValue("name", "Jinwoo")
	rec := httptest.NewRecorder()

	h.GetOrCreate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var player model.Player
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&player))
	assert.Equal(t, "Jinwoo", player.Name)
	assert.Equal(t, 1, player.Level)
	assert.Equal(t, model.RankE, player.Rank)
	assert.Equal(t, 1000, player.Rating)
}

func TestPlayerGetOrCreate_NeverSerializesHash(t *testing.T) {
	h := newPlayerHandler(newStubPlayerRepo())

	req := httptest.NewRequest(http.MethodGet, "/v1/players/Jinwoo", nil)
	req.SetPathValue("name", "Jinwoo")
	rec := httptest.NewRecorder()

	h.GetOrCreate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestPlayerGetOrCreate_ExistingPlayerIsStable(t *testing.T) {
	existing := seedPlayer("Jinwoo")
	existing.Level = 7
	h := newPlayerHandler(newStubPlayerRepo(existing))

	req := httptest.NewRequest(http.MethodGet, "/v1/players/Jinwoo", nil)
	req.SetPathValue("name", "Jinwoo")
	rec := httptest.NewRecorder()

	h.GetOrCreate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var player model.Player
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&player))
	assert.Equal(t, 7, player.Level)
}

func TestPlayerUpdate_MalformedBody_Returns400(t *testing.T) {
	h := newPlayerHandler(newStubPlayerRepo())

	req := httptest.NewRequest(http.MethodPut, "/v1/players/player:jinwoo", strings.NewReader("{not json"))
	req.SetPathValue("id", "player:jinwoo")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayerUpdate_NonWritableField_Returns422(t *testing.T) {
	h := newPlayerHandler(newStubPlayerRepo(seedPlayer("Jinwoo")))

	req := httptest.NewRequest(http.MethodPut, "/v1/players/player:jinwoo",
		strings.NewReader(`{"hash":"evil"}`))
	req.SetPathValue("id", "player:jinwoo")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var problem model.ProblemDetails
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
	assert.Equal(t, model.ErrCodeValidation, problem.Code)
}

func TestAllocateStat_SpendsPoint(t *testing.T) {
	player := seedPlayer("Jinwoo")
	player.StatPoints = 5
	h := newPlayerHandler(newStubPlayerRepo(player))

	body, _ := json.Marshal(model.AllocateStatRequest{Stat: model.StatFitness})
	req := httptest.NewRequest(http.MethodPost, "/v1/players/player:jinwoo/stats/allocate", bytes.NewReader(body))
	req.SetPathValue("id", "player:jinwoo")
	rec := httptest.NewRecorder()

	h.AllocateStat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Player
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 51, got.Fitness)
	assert.Equal(t, 4, got.StatPoints)
}

func TestAllocateStat_NoPoints_Returns422(t *testing.T) {
	h := newPlayerHandler(newStubPlayerRepo(seedPlayer("Jinwoo")))

	body, _ := json.Marshal(model.AllocateStatRequest{Stat: model.StatIQ})
	req := httptest.NewRequest(http.MethodPost, "/v1/players/player:jinwoo/stats/allocate", bytes.NewReader(body))
	req.SetPathValue("id", "player:jinwoo")
	rec := httptest.NewRecorder()

	h.AllocateStat(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var problem model.ProblemDetails
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
	assert.Equal(t, model.ErrCodeInsufficientResource, problem.Code)
}
