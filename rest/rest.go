package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/homanp/ohh/hand"
	"github.com/homanp/ohh/logging"
	"github.com/homanp/ohh/natspub"
	"github.com/homanp/ohh/store"
	"github.com/homanp/ohh/util"
)

var restLogger = logging.GetZeroLogger("rest::rest", nil)

var handStore store.HandStore
var handPublisher *natspub.Publisher

//
// APP error definition
//
type appError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type saveHandResponse struct {
	GameNumber string `json:"gameNumber"`
}

type settleResponse struct {
	GameNumber string `json:"gameNumber"`
	PlayerID   int    `json:"playerId"`
	Result     int64  `json:"result"`
	Profited   bool   `json:"profited"`
}

type positionResponse struct {
	GameNumber string        `json:"gameNumber"`
	PlayerID   int           `json:"playerId"`
	Position   hand.Position `json:"position"`
}

// RunRestServer serves the hand history API. The publisher is optional.
func RunRestServer(s store.HandStore, publisher *natspub.Publisher, port int) error {
	handStore = s
	handPublisher = publisher
	r := gin.Default()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/hands", saveHand)
	r.GET("/hands/:gameNumber", getHand)
	r.GET("/hands/:gameNumber/result/:playerId", getResult)
	r.GET("/hands/:gameNumber/position/:playerId", getPosition)
	return r.Run(fmt.Sprintf(":%d", port))
}

func saveHand(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	h, err := hand.ParseHand(data)
	if err != nil {
		restLogger.Error().Msgf("Failed to parse hand history document. Error: %v", err)
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	err = handStore.Save(h)
	if err != nil {
		restLogger.Error().
			Str(logging.GameNumberKey, h.GameNumber).
			Msgf("Failed to save hand history. Error: %v", err)
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}
	util.Metrics.HandSaved()

	if handPublisher != nil {
		err = handPublisher.PublishHand(h)
		if err != nil {
			// The hand is already persisted. Publishing is best effort.
			restLogger.Error().
				Str(logging.GameNumberKey, h.GameNumber).
				Msgf("Failed to publish hand history. Error: %v", err)
		}
	}

	c.JSON(http.StatusOK, saveHandResponse{GameNumber: h.GameNumber})
}

func getHand(c *gin.Context) {
	h, ok := loadHand(c)
	if !ok {
		return
	}
	data, err := hand.ToJSON(h)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func getResult(c *gin.Context) {
	h, ok := loadHand(c)
	if !ok {
		return
	}
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	result, err := hand.Settle(h, playerID)
	if err != nil {
		restLogger.Error().
			Str(logging.GameNumberKey, h.GameNumber).
			Int(logging.PlayerIDKey, playerID).
			Msgf("Failed to settle hand. Error: %v", err)
		abortWithError(c, http.StatusNotFound, err)
		return
	}
	util.Metrics.SettlementComputed()
	restLogger.Debug().
		Str(logging.GameNumberKey, h.GameNumber).
		Int(logging.PlayerIDKey, playerID).
		Msgf("Settled hand. Result: %d", result)
	c.JSON(http.StatusOK, settleResponse{
		GameNumber: h.GameNumber,
		PlayerID:   playerID,
		Result:     result,
		Profited:   result > 0,
	})
}

func getPosition(c *gin.Context) {
	h, ok := loadHand(c)
	if !ok {
		return
	}
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	position, err := hand.ResolvePosition(h, playerID)
	if err != nil {
		restLogger.Error().
			Str(logging.GameNumberKey, h.GameNumber).
			Int(logging.PlayerIDKey, playerID).
			Msgf("Failed to resolve position. Error: %v", err)
		abortWithError(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, positionResponse{
		GameNumber: h.GameNumber,
		PlayerID:   playerID,
		Position:   position,
	})
}

func loadHand(c *gin.Context) (*hand.HandHistory, bool) {
	gameNumber := c.Param("gameNumber")
	h, err := handStore.Load(gameNumber)
	if err != nil {
		abortWithError(c, http.StatusNotFound, err)
		return nil, false
	}
	util.Metrics.HandLoaded()
	return h, true
}

func parsePlayerID(c *gin.Context) (int, bool) {
	playerID, err := strconv.Atoi(c.Param("playerId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Errorf("Invalid player id [%s]", c.Param("playerId")))
		return 0, false
	}
	return playerID, true
}

func abortWithError(c *gin.Context, code int, err error) {
	c.IndentedJSON(code, appError{
		Code:    code,
		Message: err.Error(),
	})
	c.Error(err)
}
