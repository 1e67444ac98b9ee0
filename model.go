package polyfit

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Model represents a serializeable format of a polynomial fit storing the fit
// options, scores, and coefficients
type Model struct {
	Degree       int       `json:"degree"`
	Options      *Options  `json:"options"`
	Scores       *Scores   `json:"scores"`
	Coefficients []float64 `json:"coefficients"`
}

// TablePrint writes out a formatted summary of the model to the input writer. Each
// line is prepended with the prefix and nested lines are indented with multiples
// of indent.
func (m Model) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sPolynomial:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s%sDegree: %d\n", prefix, indentExpand(indent, 1), m.Degree); err != nil {
		return err
	}

	if m.Options == nil || m.Options.OutlierOptions == nil {
		if _, err := fmt.Fprintf(w, "%s%sOutlier Options: None\n", prefix, indentExpand(indent, 1)); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s%sOutlier Options:\n", prefix, indentExpand(indent, 1)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sPasses: %d, Lower: %.2f, Upper: %.2f, Tukey Factor: %.2f\n",
			prefix, indentExpand(indent, 2),
			m.Options.OutlierOptions.NumPasses,
			m.Options.OutlierOptions.LowerPercentile,
			m.Options.OutlierOptions.UpperPercentile,
			m.Options.OutlierOptions.TukeyFactor); err != nil {
			return err
		}
	}

	if m.Scores != nil {
		if _, err := fmt.Fprintf(w, "%s%sScores:\n", prefix, indentExpand(indent, 0)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sMAPE: %.3f    MSE: %.3f    R2: %.3f\n",
			prefix, indentExpand(indent, 1),
			m.Scores.MAPE,
			m.Scores.MSE,
			m.Scores.R2,
		); err != nil {
			return err
		}
	}

	return m.tablePrintWeights(w, prefix, indent, 0)
}

func (m Model) tablePrintWeights(w io.Writer, prefix, indent string, indentGrowth int) error {
	if _, err := fmt.Fprintf(w, "%s%sWeights:\n", prefix, indentExpand(indent, indentGrowth)); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sTerm\tValue\t\n", prefix, indentExpand(indent, indentGrowth+1)); err != nil {
		return err
	}
	for i, c := range m.Coefficients {
		val := fmt.Sprintf("%.3f", c)
		if c == 0 {
			val = "..."
		}
		if _, err := fmt.Fprintf(tbl, "%s%s%s\t%s\t\n",
			prefix, indentExpand(indent, indentGrowth+1),
			termLabel(i), val); err != nil {
			return err
		}
	}
	return tbl.Flush()
}

// termLabel names the polynomial term for a given power starting with the intercept
// at power 0.
func termLabel(power int) string {
	switch power {
	case 0:
		return "intercept"
	case 1:
		return "x"
	default:
		return fmt.Sprintf("x^%d", power)
	}
}

func indentExpand(indent string, growth int) string {
	indentByte := []byte(indent)
	out := make([]byte, 0, len(indent)*growth)
	for i := 0; i < growth; i++ {
		out = append(out, indentByte...)
	}
	return string(out)
}
