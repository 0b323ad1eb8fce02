package arbitrage

import "aurora-grid/internal/model"

// TopWindowCount is how many collapsed windows the API surface reports.
const TopWindowCount = 5

// CollapseWindows groups strictly consecutive actions (by list position,
// not time gap) of identical kind into summary windows. AvgMW is the
// arithmetic mean of the grouped powers; start/end are the timestamps of
// the first and last grouped action.
func CollapseWindows(actions []model.DispatchAction, series model.ForecastSeries) []model.ActionWindow {
	if len(actions) == 0 {
		return nil
	}

	var windows []model.ActionWindow
	runStart := 0
	flush := func(end int) {
		run := actions[runStart : end+1]
		sum := 0.0
		for _, a := range run {
			sum += a.PowerMW
		}
		windows = append(windows, model.ActionWindow{
			Kind:  run[0].Kind,
			Start: series.Points[run[0].Index].TS,
			End:   series.Points[run[len(run)-1].Index].TS,
			AvgMW: sum / float64(len(run)),
		})
	}

	for i := 1; i < len(actions); i++ {
		if actions[i].Kind != actions[i-1].Kind {
			flush(i - 1)
			runStart = i
		}
	}
	flush(len(actions) - 1)
	return windows
}

// TopWindows returns the first n windows in emission order. Intentionally
// not sorted by magnitude: the reported windows are whichever come first
// chronologically.
func TopWindows(windows []model.ActionWindow, n int) []model.ActionWindow {
	if len(windows) <= n {
		return windows
	}
	return windows[:n]
}
