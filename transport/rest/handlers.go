package rest

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
)

type handlers struct {
	logger *slog.Logger
	games  gameUseCase
	tpl    *templates
}

func (that *handlers) index(w http.ResponseWriter, _ *http.Request) {
	that.renderPage(w, that.tpl.index, nil)
}

func (that *handlers) create(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateGame(r.Context())
	if err != nil {
		that.logger.Error("failed to create game", "error", err)
		http.Error(w, "failed to create game", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, gamePath(game.ID), http.StatusSeeOther)
}

func (that *handlers) view(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.pageError(w, r, err)
		return
	}

	that.renderPage(w, that.tpl.game, newGameView(game))
}

func (that *handlers) play(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cell, ok := formInt(r, "cell")
	if !ok {
		http.Redirect(w, r, gamePath(id), http.StatusSeeOther)
		return
	}

	_, err := that.games.MakeTurn(r.Context(), id, cell)
	that.afterAction(w, r, id, err)
}

func (that *handlers) jump(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	index, ok := formInt(r, "move")
	if !ok {
		http.Redirect(w, r, gamePath(id), http.StatusSeeOther)
		return
	}

	_, err := that.games.JumpTo(r.Context(), id, index)
	that.afterAction(w, r, id, err)
}

func (that *handlers) reverse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	_, err := that.games.ToggleHistoryOrder(r.Context(), id)
	that.afterAction(w, r, id, err)
}

// afterAction - rejected operations leave the game as it was, so the page is simply shown again.
func (that *handlers) afterAction(w http.ResponseWriter, r *http.Request, id string, err error) {
	if err != nil && !errors.Is(err, apperror.ErrInvalidOperation) {
		that.pageError(w, r, err)
		return
	}

	http.Redirect(w, r, gamePath(id), http.StatusSeeOther)
}

func (that *handlers) pageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrGameNotFound) {
		http.NotFound(w, r)
		return
	}

	that.logger.Error("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (that *handlers) renderPage(w http.ResponseWriter, t *template.Template, data any) {
	page, err := renderTemplate(t, data)
	if err != nil {
		that.logger.Error("failed to render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func formInt(r *http.Request, key string) (int, bool) {
	if err := r.ParseForm(); err != nil {
		return 0, false
	}

	value, err := strconv.Atoi(r.PostForm.Get(key))
	if err != nil {
		return 0, false
	}

	return value, true
}

func gamePath(id string) string {
	return "/game/" + id
}
