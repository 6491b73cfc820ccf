package main

import (
	"flag"
	"os"
	"strings"

	"cribbage-trainer/internal/config"
	"cribbage-trainer/internal/rng"
	"cribbage-trainer/pkg/render"
	"cribbage-trainer/pkg/trainer"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var command = flag.String("c", "play", "specifies the command (play, score)")
var asJSON = flag.Bool("json", false, "score: print the score boards as JSON")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	painter := render.Painter{Color: useColor(cfg.Color)}

	switch *command {
	case "play":
		game := trainer.NewGame(logrus.StandardLogger(), rng.FromSeed(cfg.Seed))
		if err := play(os.Stdin, os.Stdout, game, painter, cfg.ShowNotation); err != nil {
			logrus.WithError(err).Fatal("could not read guesses")
		}

	case "score":
		var err error
		if flag.NArg() > 0 {
			err = score(strings.NewReader(strings.Join(flag.Args(), "\n")), os.Stdout, painter, *asJSON)
		} else {
			err = score(os.Stdin, os.Stdout, painter, *asJSON)
		}

		if err != nil {
			logrus.WithError(err).Error("could not score every hand")
			os.Exit(1)
		}

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func useColor(setting string) bool {
	switch setting {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
