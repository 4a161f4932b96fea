package scenario

func add(content string) Step { return Step{Action: ActionAdd, Content: content} }

var (
	show = Step{Action: ActionShow}
	fail = Step{Action: ActionFail}
)

// Demo returns the classic walkthrough: a bridge overhang fails, the two
// most recent layers are discarded and the print resumes with a support.
func Demo() *Scenario {
	return &Scenario{
		Name: "overhang bridge",
		Steps: []Step{
			add("Solid Base"),
			add("Bottom Infill"),
			add("Walls Level 1"),
			show,

			add("Infill Level 1"),
			add("Overhang Bridge (Unstable)"),
			show,

			fail,
			show,

			{Action: ActionNote, Content: "--- Retrying corrected print ---"},
			add("Structural Support (Correction)"),
			add("Overhang Bridge (Stable)"),
			show,
		},
	}
}
