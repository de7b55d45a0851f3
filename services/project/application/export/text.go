package export

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/services/project/domain/services"
)

// Text renders q as an aligned plain-text quote.
func Text(q services.Quote) string {
	p := q.Project
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", p.Name)
	if p.Client != "" {
		fmt.Fprintf(&b, "Client: %s\n", p.Client)
	}
	fmt.Fprintf(&b, "Date: %s\n\n", p.CreatedAt.Format("2006-01-02"))

	if len(p.Items) > 0 {
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "#\tItem\tType\tQty\tPrice\tSubtotal\t")
		for i, item := range p.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t\n",
				i+1, item.Name, item.ItemType, item.Quantity,
				money(item.UnitPrice), money(q.Lines[i].Subtotal))
		}
		_ = tw.Flush()
		b.WriteString("\n")
	}

	s := q.Summary
	tw := tabwriter.NewWriter(&b, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Subtotal:\t%s\n", money(s.Subtotal))
	if !p.DiscountPct.IsZero() {
		fmt.Fprintf(tw, "Discount:\t%s%%\n", p.DiscountPct)
	}
	if !p.TaxPct.IsZero() {
		fmt.Fprintf(tw, "Tax:\t%s%%\n", p.TaxPct)
	}
	fmt.Fprintf(tw, "Revenue:\t%s\n", money(s.Revenue))
	fmt.Fprintf(tw, "Total cost:\t%s\n", money(s.TotalCost))
	fmt.Fprintf(tw, "Profit:\t%s\n", money(s.Profit))
	fmt.Fprintf(tw, "Margin:\t%s%%\n", s.Margin.StringFixed(2))
	_ = tw.Flush()

	if p.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", p.Notes)
	}
	return b.String()
}

func money(v decimal.Decimal) string {
	return v.StringFixed(2)
}
