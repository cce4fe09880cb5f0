package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/pwaldron/bridgesim/bridge"
	"github.com/pwaldron/bridgesim/dealer"
)

func main() {
	count := flag.Int("deals", 10, "number of deals to generate")
	workers := flag.Int("workers", 1, "dealer worker goroutines")
	flag.Parse()

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	renderHeader()
	logger.Info("generating deals with a weak two in hearts for South", "deals", *count)

	// South holds a weak 2H: six hearts, 3-9 points and a shortage.
	accept := func(deal bridge.Deal) bool {
		south := deal.South()
		shape := south.Shape()
		return shape[bridge.Hearts] == 6 &&
			south.Points() >= 3 && south.Points() < 10 &&
			bridge.HasShortage(shape)
	}

	d := dealer.New([4]bridge.Hand{}, accept,
		dealer.WithCount(*count),
		dealer.WithWorkers(*workers),
	)
	deals, err := d.FindDeals()
	if err != nil {
		logger.Error("deal generation failed", "error", err)
		os.Exit(1)
	}

	for i, deal := range deals {
		renderDeal(i, deal)
	}
	renderSummary(deals)
}
