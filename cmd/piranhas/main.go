//
// Piranhas - bitboard-based engine for the two-player Piranhas board game
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/frankkopp/piranhas/internal/config"
	"github.com/frankkopp/piranhas/internal/engine"
	"github.com/frankkopp/piranhas/internal/logging"
	"github.com/frankkopp/piranhas/internal/match"
	"github.com/frankkopp/piranhas/internal/selfplay"
	"github.com/frankkopp/piranhas/internal/xmlclient"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	number := flag.Int("number", 1, "number of games to play")
	threads := flag.Int("threads", 7, "number of games to run concurrently")
	xmlReplay := flag.Bool("xml", false, "write a replay XML file per game")
	collect := flag.Bool("collect", false, "emit self-play training records")
	benchmark := flag.Bool("benchmark", false, "report throughput only, skip result aggregation")
	scrimmage := flag.Bool("scrimmage", false, "round-robin tournament between the built-in alpha-beta and MCTS contestants")
	selfplayFlag := flag.Bool("selfplay", false, "one engine plays itself, writing self-play records")
	profileFlag := flag.Bool("profile", false, "enable CPU profiling for the duration of the run")
	host := flag.String("host", "", "match server host (overrides config file if set)")
	port := flag.Int("port", 0, "match server port (overrides config file if nonzero)")
	flag.Parse()

	// config file path must be set before Setup() reads it.
	config.ConfFile = *configFile
	config.Setup()

	// command line flags always win over the config file.
	config.Settings.Match.NumberOfGames = *number
	config.Settings.Match.Threads = *threads
	config.Settings.Match.XMLReplay = *xmlReplay
	config.Settings.Match.DataCollection = *collect
	config.Settings.Match.Benchmark = *benchmark
	config.Settings.Match.Scrimmage = *scrimmage
	config.Settings.Match.SelfPlay = *selfplayFlag
	if *host != "" {
		config.Settings.Match.Host = *host
	}
	if *port != 0 {
		config.Settings.Match.Port = *port
	}

	log := logging.GetLog()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	var logger *selfplay.Logger
	if config.Settings.Match.DataCollection {
		var err error
		logger, err = selfplay.NewDefaultLogger()
		if err != nil {
			log.Errorf("self-play logger: %v", err)
			os.Exit(1)
		}
	}

	start := time.Now()
	var err error
	switch {
	case config.Settings.Match.Scrimmage:
		err = runScrimmage(logger)
	case config.Settings.Match.SelfPlay:
		err = runSelfPlay(logger)
	default:
		err = runXMLMatches(log)
	}
	elapsed := time.Since(start)

	if logger != nil {
		if closeErr := logger.Close(); closeErr != nil {
			log.Errorf("self-play logger close: %v", closeErr)
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if config.Settings.Match.Benchmark {
		reportThroughput(config.Settings.Match.NumberOfGames, elapsed)
	}
}

// runScrimmage plays a round-robin between a forced-alpha-beta and a
// forced-MCTS contestant, config.Settings.Match.NumberOfGames games per
// pairing, and prints the resulting standings (unless --benchmark
// suppresses aggregation).
func runScrimmage(logger *selfplay.Logger) error {
	contestants := []match.Contestant{
		{Name: "alphabeta", Engine: engine.NewEngineWithMCTS(false)},
		{Name: "mcts", Engine: engine.NewEngineWithMCTS(true)},
	}
	pairings := match.RoundRobinPairings(contestants, config.Settings.Match.NumberOfGames, 0)
	driver := match.NewDriver(config.Settings.Match.Threads, config.Settings.Match.DataCollection, logger)
	results := driver.Run(pairings)
	if !config.Settings.Match.Benchmark {
		reportStandings(results)
	}
	return nil
}

// runSelfPlay plays one default-policy engine against itself,
// config.Settings.Match.NumberOfGames times, almost always paired with
// --collect so the games are worth having played at all.
func runSelfPlay(logger *selfplay.Logger) error {
	contestant := match.Contestant{Name: "self", Engine: engine.NewEngine()}
	pairings := match.SelfPlayPairings(contestant, config.Settings.Match.NumberOfGames, 0)
	driver := match.NewDriver(config.Settings.Match.Threads, config.Settings.Match.DataCollection, logger)
	results := driver.Run(pairings)
	if !config.Settings.Match.Benchmark {
		reportStandings(results)
	}
	return nil
}

// runXMLMatches is the default mode: connect to the external match
// server config.Settings.Match.NumberOfGames times in a row, playing
// one game per connection. There is no result aggregation here - the
// match server is the authority on who won - only a replay file per
// game when --xml is set.
func runXMLMatches(log logGetter) error {
	for i := 0; i < config.Settings.Match.NumberOfGames; i++ {
		eng := engine.NewEngine()
		var replay *xmlclient.ReplayWriter
		if config.Settings.Match.XMLReplay {
			path := fmt.Sprintf("%s/%d.xml", config.Settings.Match.ReplayDir, i)
			var err error
			replay, err = xmlclient.NewReplayWriter(path)
			if err != nil {
				log.Errorf("replay file: %v", err)
			}
		}
		err := xmlclient.Play(config.Settings.Match.Host, config.Settings.Match.Port, "", eng, replay)
		if replay != nil {
			_ = replay.Close()
		}
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}
	}
	return nil
}

// logGetter is the one method main's logger actually needs here -
// kept narrow so runXMLMatches doesn't have to import go-logging just
// to accept the concrete *logging.Logger type.
type logGetter interface {
	Errorf(format string, args ...interface{})
}
