// Command opensite runs the "open site with waits" scenario once against a
// real browser and exits non-zero on any wait or assertion failure.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/aqacourses/selenium-waits/scenario"
	"github.com/aqacourses/selenium-waits/shared"
	"github.com/aqacourses/selenium-waits/sitefixture"
	"github.com/aqacourses/selenium-waits/webdriver"
	"github.com/sirupsen/logrus"
)

var (
	targetURL  = flag.String("target_url", scenario.SiteURL, "Site to open")
	useFixture = flag.Bool("use_fixture", false, "Open a local replica of the site instead of --target_url")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := webdriver.FlagConfig()
	if err != nil {
		logrus.Errorf("Failed to load config: %s", err.Error())
		return 2
	}
	logger := shared.NewCLILogger(os.Stderr, cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = shared.WithLogger(ctx, shared.NewLogrusLogger(logger))

	url := *targetURL
	if *useFixture {
		server := sitefixture.NewServer(sitefixture.Options{})
		defer server.Close()
		url = server.URL + "/"
		logger.Infof("Serving site replica at %s", url)
	}

	report, err := scenario.Run(ctx, scenario.SessionOpener(cfg), scenario.DefaultOptions(url), "opensite")
	if err != nil {
		logger.Errorf("FAIL: %v", err)
		return 1
	}
	logger.WithFields(logrus.Fields{
		"title": report.Title,
		"link":  report.LinkText,
		"url":   report.URL,
	}).Info("PASS")
	return 0
}
