package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/planner/pkg/tennis"
)

// Tennis prints the fetched results wrapped to width, then their sources.
func (pp *PrettyPrint) Tennis(res *tennis.Result, width int) {
	pp.Title("テニスの試合結果")
	pp.NewLine()
	if width <= 0 {
		width = 80
	}
	pp.Text(wordwrap.String(res.Text, width))

	if len(res.Sources) == 0 {
		return
	}
	pp.Title("出典")
	faint := color.New(color.Faint)
	for _, src := range res.Sources {
		title := src.Title
		if title == "" {
			title = src.URI
		}
		_, _ = fmt.Fprintf(pp.out(), " • %s %s\n", title, faint.Sprint(src.URI))
	}
	pp.NewLine()
}
