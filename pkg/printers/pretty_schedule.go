package printers

import (
	"time"

	"tableflip.dev/planner/pkg/schedule"
)

// Schedule prints the tasks of the reference day followed by the upcoming
// week grouped by date.
func (pp *PrettyPrint) Schedule(day time.Time, w schedule.Window) {
	pp.Title(schedule.DayLabel(day))
	pp.NewLine()

	pp.TitleWithCount("今日のタスク", len(w.Today))
	if len(w.Today) == 0 {
		pp.Empty("今日のタスクはありません。")
	} else {
		pp.Tasks(w.Today...)
	}

	pp.TitleWithCount("今後の予定 (一週間)", w.Count())
	if len(w.Upcoming) == 0 {
		pp.Empty("今後一週間のタスクはありません。")
		return
	}
	for _, g := range w.Upcoming {
		pp.Title(schedule.GroupLabel(g.Date))
		pp.Tasks(g.Tasks...)
	}
}
