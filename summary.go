package investview

import (
	"fmt"
	"strings"
)

// Summarize writes the plain-text portfolio summary handed to the narrative
// generator: total invested, allocation by subtype, the covered period and
// the projected value on the reference day.
func Summarize(a *Aggregate, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Investment Value: %.2f %s.\n", a.TotalInvested, currency)

	shares := make([]string, 0, len(a.BySubtype))
	for i, x := range a.BySubtype {
		shares = append(shares, fmt.Sprintf("%s: %s", x.Label, a.BySubtype.Share(i)))
	}
	fmt.Fprintf(&b, "Asset Allocation by Type: %s.\n", strings.Join(shares, ", "))

	if a.Records == 0 {
		b.WriteString("The portfolio contains no data.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "The portfolio contains data from %s to %s.\n", a.Earliest, a.Latest)
	fmt.Fprintf(&b, "Projected Value on %s: %.2f %s (%s).\n", a.On, a.CurrentValue, currency, a.ReturnRate().SignedString())
	return b.String()
}
