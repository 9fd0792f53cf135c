package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/homanp/ohh/hand"
	"github.com/homanp/ohh/logging"
	"github.com/homanp/ohh/natspub"
	"github.com/homanp/ohh/rest"
	"github.com/homanp/ohh/store"
	"github.com/homanp/ohh/test"
	"github.com/homanp/ohh/util"
)

var mainLogger = logging.GetZeroLogger("main::main", nil)

func main() {
	zerolog.SetGlobalLevel(util.Env.GetZeroLogLogLevel())

	var runServer = flag.Bool("server", true, "runs the hand history REST server")
	var runHandScripts = flag.String("hand-scripts", "", "runs tests with hand script files")
	var testName = flag.String("testname", "", "runs a specific hand script test")
	var settleFile = flag.String("settle", "", "settles a hand history file")
	var playerID = flag.Int("player", 0, "player id to settle for")
	flag.Parse()

	if *runHandScripts != "" {
		test.RunHandScriptTests(*runHandScripts, *testName)
		return
	}

	if *settleFile != "" {
		settleHandFile(*settleFile, *playerID)
		return
	}

	if *runServer {
		runRestServer()
	}
}

func settleHandFile(fileName string, playerID int) {
	h, err := hand.ReadHandFile(fileName)
	if err != nil {
		mainLogger.Error().Msgf("Unable to read hand file [%s]. Error: %v", fileName, err)
		os.Exit(1)
	}
	result, err := hand.Settle(h, playerID)
	if err != nil {
		mainLogger.Error().
			Str(logging.GameNumberKey, h.GameNumber).
			Msgf("Unable to settle hand for player [%d]. Error: %v", playerID, err)
		os.Exit(1)
	}
	position, err := hand.ResolvePosition(h, playerID)
	if err != nil {
		mainLogger.Error().
			Str(logging.GameNumberKey, h.GameNumber).
			Msgf("Unable to resolve position for player [%d]. Error: %v", playerID, err)
		os.Exit(1)
	}
	fmt.Printf("Game: %s Player: %d Position: %s Result: %d Profited: %v\n",
		h.GameNumber, playerID, position, result, result > 0)
}

func runRestServer() {
	persistMethod := util.Env.GetPersistMethod()
	handStore, err := store.NewHandStore(persistMethod)
	if err != nil {
		mainLogger.Error().Msgf("Unable to create hand store [%s]. Error: %v", persistMethod, err)
		os.Exit(1)
	}
	mainLogger.Info().Msgf("Persisting hand history using method: %s", persistMethod)

	var publisher *natspub.Publisher
	if util.Env.ShouldPublishHands() {
		publisher, err = natspub.NewPublisher(util.Env.GetNatsURL())
		if err != nil {
			mainLogger.Error().Msgf("Unable to connect to NATS at %s. Error: %v", util.Env.GetNatsURL(), err)
			os.Exit(1)
		}
		defer publisher.Close()
	}

	err = rest.RunRestServer(handStore, publisher, util.Env.GetPort())
	if err != nil {
		mainLogger.Error().Msgf("REST server exited with error: %v", err)
		os.Exit(1)
	}
}
