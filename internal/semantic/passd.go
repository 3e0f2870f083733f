package semantic

import "ffanalyze/internal/model"

// passD flags mutually exclusive global options, e.g. "-y" with "-n".
func (a *analysis) passD() {
	var yes, no *model.Option
	for i := range a.cmd.GlobalOpts {
		switch a.cmd.GlobalOpts[i].Kind {
		case model.OptOverwriteYes:
			yes = &a.cmd.GlobalOpts[i]
		case model.OptOverwriteNo:
			no = &a.cmd.GlobalOpts[i]
		}
	}
	if yes == nil || no == nil {
		return
	}
	const msg = "\"-y\" and \"-n\" are mutually exclusive"
	a.b.New("W301", model.SeverityWarning, msg).
		Target(yes.FlagSpan, "overwrite without asking").
		Target(no.FlagSpan, "never overwrite").
		Finish()
}
