package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/ChizhovVadim/chessai/internal/evalbuilder"
	"github.com/ChizhovVadim/chessai/internal/utils"
	"github.com/ChizhovVadim/chessai/pkg/difficulty"
	"github.com/ChizhovVadim/chessai/pkg/engine"
	"github.com/ChizhovVadim/chessai/pkg/uci"
)

/*
chessai
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name   = "chessai"
	author = "chessai authors"
)

var (
	versionName   = "dev"
	buildDate     = "(null)"
	gitRevision   = "(null)"
	flgDifficulty string
	flgEval       string
	flgPlay       bool
	flgBlack      bool
)

func main() {
	flag.StringVar(&flgDifficulty, "difficulty", difficulty.Medium, "initial difficulty: easy, medium or hard")
	flag.StringVar(&flgEval, "eval", "", "evaluation function: full or material")
	flag.BoolVar(&flgPlay, "play", false, "play a console game instead of speaking UCI")
	flag.BoolVar(&flgBlack, "black", false, "with -play, take the black pieces")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
	)

	config, err := difficulty.Get(flgDifficulty)
	if err != nil {
		logger.Fatal(err)
	}
	newEvaluator, err := evalbuilder.Get(flgEval)
	if err != nil {
		logger.Fatal(err)
	}

	if flgPlay {
		var eng = engine.NewEngine(newEvaluator(), nil)
		err = utils.PlayCli(context.Background(), os.Stdin, os.Stdout, eng, config, !flgBlack)
		if err != nil {
			logger.Fatal(err)
		}
		return
	}

	var level = flgDifficulty
	var drawAvoidance = -1
	var eng = engine.NewEngine(newEvaluator(), logger)

	var protocol = uci.New(name, author, versionName, eng,
		func() (engine.SearchConfig, error) {
			var config, err = difficulty.Get(level)
			if err != nil {
				return config, err
			}
			if drawAvoidance >= 0 {
				config.DrawAvoidance = drawAvoidance
			}
			return config, nil
		},
		[]uci.Option{
			&uci.ComboOption{Name: "Difficulty", Values: difficulty.Names(), Value: &level},
			&uci.IntOption{Name: "DrawAvoidance", Min: -1, Max: 100, Value: &drawAvoidance},
		},
	)
	eng.Progress = protocol.OnProgress
	protocol.Run(logger)
}
