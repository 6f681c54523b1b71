package server

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"ranktree/ranking"
)

type registerBody struct {
	Rating int `json:"rating"`
}

type playerResponse struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Rank   int    `json:"rank"`
}

type versionResponse struct {
	Version int `json:"version"`
}

func registerHandler(svc *ranking.Service) HandlerFunc {
	return func(c *Context) {
		var body registerBody
		if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
			writeError(c, http.StatusBadRequest, ErrInvalidBody)
			return
		}
		svc.RegisterPlayerResult(c.Param(), body.Rating)
		c.Writer().WriteHeader(http.StatusNoContent)
	}
}

func unregisterHandler(svc *ranking.Service) HandlerFunc {
	return func(c *Context) {
		svc.UnregisterPlayer(c.Param())
		c.Writer().WriteHeader(http.StatusNoContent)
	}
}

func getPlayerHandler(svc *ranking.Service) HandlerFunc {
	return func(c *Context) {
		rating := svc.GetPlayerRating(c.Param())
		if rating == -1 {
			writeError(c, http.StatusNotFound, ErrPlayerNotFound)
			return
		}
		writeJSON(c, http.StatusOK, playerResponse{
			Name:   c.Param(),
			Rating: rating,
			Rank:   svc.GetPlayerRank(c.Param()),
		})
	}
}

func rollbackHandler(svc *ranking.Service) HandlerFunc {
	return func(c *Context) {
		delta, err := strconv.Atoi(c.Param())
		if err != nil || delta <= 0 {
			writeError(c, http.StatusBadRequest, ErrInvalidRollbackDelta)
			return
		}
		if err := svc.Rollback(delta); err != nil {
			writeError(c, http.StatusBadRequest, err)
			return
		}
		c.Writer().WriteHeader(http.StatusNoContent)
	}
}

func versionHandler(svc *ranking.Service) HandlerFunc {
	return func(c *Context) {
		writeJSON(c, http.StatusOK, versionResponse{Version: svc.Version()})
	}
}

func writeJSON(c *Context, status int, v any) {
	c.Writer().Header().Set("Content-Type", "application/json; charset=utf-8")
	c.Writer().WriteHeader(status)
	_ = json.NewEncoder(c.Writer()).Encode(v)
}

func writeError(c *Context, status int, err error) {
	writeJSON(c, status, map[string]string{"error": err.Error()})
}
