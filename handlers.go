package main

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"wordbank/internal/reqid"
	"wordbank/internal/types"
	"wordbank/internal/words"
)

type nextWordRequest struct {
	CompletedWords []string `json:"completedWords"`
}

type nextWordResponse struct {
	Word  string `json:"word"`
	Hint  string `json:"hint,omitempty"`
	Reset bool   `json:"reset"`
}

type listResponse[T any] struct {
	Words []T `json:"words"`
	Count int `json:"count"`
}

type lookupResponse struct {
	Word     string `json:"word"`
	Answer   bool   `json:"answer"`
	Accepted bool   `json:"accepted"`
}

// randomWordHandler returns one random answer. ?hint=0 leaves out the hint.
func (app *App) randomWordHandler(c *gin.Context) {
	entry := app.Words.RandomWord(c.Request.Context())
	if c.Query("hint") == "0" {
		entry.Hint = ""
	}
	c.JSON(http.StatusOK, entry)
}

// nextWordHandler returns a random answer the client has not completed yet.
func (app *App) nextWordHandler(c *gin.Context) {
	ctx := c.Request.Context()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBodyBytes)

	var req nextWordRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logWarn("%sFailed to parse completed words: %v", reqid.Prefix(ctx), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidBody})
		return
	}

	completed := lo.Filter(req.CompletedWords, func(word string, _ int) bool {
		ok := app.Words.IsAnswer(word)
		if !ok {
			logWarn("%sInvalid completed word ignored: %s", reqid.Prefix(ctx), word)
		}
		return ok
	})

	entry, reset := app.Words.RandomWordExcluding(ctx, completed)
	c.JSON(http.StatusOK, nextWordResponse{Word: entry.Word, Hint: entry.Hint, Reset: reset})
}

// wordsHandler lists every answer with its hint.
func (app *App) wordsHandler(c *gin.Context) {
	answers := app.Words.Answers()
	c.JSON(http.StatusOK, listResponse[types.WordEntry]{Words: answers, Count: len(answers)})
}

// guessesHandler lists every valid guess.
func (app *App) guessesHandler(c *gin.Context) {
	accepted := app.Words.Accepted()
	c.JSON(http.StatusOK, listResponse[string]{Words: accepted, Count: len(accepted)})
}

// lookupHandler reports whether a word is an answer and a valid guess.
func (app *App) lookupHandler(c *gin.Context) {
	word := words.Normalize(c.Param("word"))
	if !words.IsWellFormed(word) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidLength})
		return
	}
	c.JSON(http.StatusOK, lookupResponse{
		Word:     word,
		Answer:   app.Words.IsAnswer(word),
		Accepted: app.Words.IsAccepted(word),
	})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"env":            envName(app.Config.IsProduction()),
		"words_loaded":   app.Words.Len(),
		"accepted_words": app.Words.AcceptedLen(),
		"uptime":         formatUptime(uptime),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}
