package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cryptofolio"
	md "github.com/nao1215/markdown"
)

// GoalsMarkdown renders the goal progress report.
func GoalsMarkdown(r *cryptofolio.GoalReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Goals")

	if !r.Set {
		doc.PlainText("No goals set yet. Use `cft goal -target <value>` to set one.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Target"), md.Bold(r.Target.String())},
		Rows: [][]string{
			{"Current", r.Current.String()},
		},
	}
	if r.Exceeded {
		table.Rows = append(table.Rows, []string{"Exceeded by", r.Remaining.Neg().String()})
	} else {
		table.Rows = append(table.Rows, []string{"Remaining", r.Remaining.String()})
	}
	if r.HasROI {
		table.Rows = append(table.Rows, []string{"Initial Investment", r.InitialInvestment.String()})
		table.Rows = append(table.Rows, []string{"ROI", r.ROI.SignedString()})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("`%s` %.1f%%", ProgressBar(float64(r.ProgressPct)), float64(r.ProgressPct)))

	if r.HasTargetDate {
		switch {
		case r.DaysLeft > 0:
			doc.PlainText(fmt.Sprintf("%d days left until %s.", r.DaysLeft, r.TargetDate))
		case r.DaysLeft == 0:
			doc.PlainText("Target date is today!")
		default:
			doc.PlainText(fmt.Sprintf("Target date passed %d days ago.", -r.DaysLeft))
		}
	}

	return doc.String()
}
