package services

// Progress event kinds pushed over the realtime hub.
const (
	EventIntakeRecorded = "intake.recorded"
	EventIntakeUndone   = "intake.undone"
	EventGoalReached    = "goal.reached"
	EventAppReset       = "app.reset"
)

type ProgressEvent struct {
	Kind    string `json:"kind"`
	TotalML int    `json:"total_ml"`
	GoalML  int    `json:"goal_ml"`
	Percent int    `json:"percent"`
}

type progressDeps struct {
	rt *RealtimeHub
}

var _progress progressDeps

func InitProgressDeps(rt *RealtimeHub) {
	_progress = progressDeps{rt: rt}
}

// EmitProgress broadcasts the current daily state. Safe to call anywhere; a
// hub that was never wired up makes this a no-op.
func EmitProgress(kind string, totalML, goalML int) {
	if _progress.rt == nil {
		return
	}
	_progress.rt.Broadcast(ProgressEvent{
		Kind:    kind,
		TotalML: totalML,
		GoalML:  goalML,
		Percent: ProgressPercent(totalML, goalML),
	})
}

// ProgressPercent is the goal completion shown on the progress ring, capped at
// 100.
func ProgressPercent(totalML, goalML int) int {
	if goalML <= 0 {
		return 0
	}
	p := totalML * 100 / goalML
	if p > 100 {
		return 100
	}
	return p
}
