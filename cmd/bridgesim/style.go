package main

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/pwaldron/bridgesim/bridge"
)

func renderHeader() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Bridge", pterm.FgGreen.ToStyle()),
		putils.LettersFromStringWithStyle("Sim", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func renderDeal(i int, deal bridge.Deal) {
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle(pterm.LightYellow("Deal " + strconv.Itoa(i+1))).WithTitleTopCenter().Println(deal.String())
}

func renderSummary(deals []bridge.Deal) {
	rows := pterm.TableData{{"Deal", "South shape", "South HCP", "N/S HCP"}}
	for i, deal := range deals {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			shapeString(deal.South().Shape()),
			strconv.Itoa(deal.South().Points()),
			strconv.Itoa(deal.North().Points() + deal.South().Points()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func shapeString(shape [4]int) string {
	s := ""
	for i, n := range shape {
		if i > 0 {
			s += "-"
		}
		s += strconv.Itoa(n)
	}
	return s
}
