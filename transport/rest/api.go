package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
)

type playRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Move *int `json:"move"`
}

type apiResponse struct {
	Game  *GameView `json:"game,omitempty"`
	Error string    `json:"error,omitempty"`
}

func (that *handlers) apiCreate(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateGame(r.Context())
	if err != nil {
		that.apiError(w, r, nil, err)
		return
	}

	that.writeGame(w, http.StatusCreated, game)
}

func (that *handlers) apiGet(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.apiError(w, r, nil, err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

func (that *handlers) apiDelete(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.apiError(w, r, nil, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) apiPlay(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Error: "body must be {\"cell\": <0-8>}"})
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.apiError(w, r, game, err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

func (that *handlers) apiJump(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Move == nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Error: "body must be {\"move\": <index>}"})
		return
	}

	game, err := that.games.JumpTo(r.Context(), chi.URLParam(r, "id"), *req.Move)
	if err != nil {
		that.apiError(w, r, game, err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

func (that *handlers) apiReverse(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.ToggleHistoryOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.apiError(w, r, game, err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

// apiError - a rejected operation is answered with 409 and the unchanged game.
func (that *handlers) apiError(w http.ResponseWriter, r *http.Request, game *entity.Game, err error) {
	switch {
	case errors.Is(err, apperror.ErrInvalidOperation):
		resp := apiResponse{Error: err.Error()}
		if game != nil {
			view := newGameView(game)
			resp.Game = &view
		}
		writeJSON(w, http.StatusConflict, resp)
	case errors.Is(err, repository.ErrGameNotFound):
		writeJSON(w, http.StatusNotFound, apiResponse{Error: repository.ErrGameNotFound.Error()})
	default:
		that.logger.Error("api request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func (that *handlers) writeGame(w http.ResponseWriter, status int, game *entity.Game) {
	view := newGameView(game)
	writeJSON(w, status, apiResponse{Game: &view})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
