package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	accent = lipgloss.Color("#D97706")
	dim    = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

// renderReport writes one line per placed order and a boxed summary.
func renderReport(w io.Writer, placed []queries.GetPlacedOrdersQueryResponse) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Placed orders"))
	b.WriteString("\n")

	subtotal, salesTax, total := decimal.Zero, decimal.Zero, decimal.Zero
	items := 0
	for _, p := range placed {
		fmt.Fprintf(&b, "%s  #%-5d %3d pizzas  $%9s\n",
			dimStyle.Render(p.PlacedAt.Local().Format(time.DateTime)),
			p.Number, p.ItemCount, kernel.FormatMoney(p.Total))

		subtotal = subtotal.Add(p.Subtotal)
		salesTax = salesTax.Add(p.SalesTax)
		total = total.Add(p.Total)
		items += p.ItemCount
	}
	if len(placed) == 0 {
		b.WriteString(dimStyle.Render("no orders yet"))
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("Orders: %d\nPizzas: %d\nSubtotal: $%s\nSales Tax: $%s\nTotal: $%s",
		len(placed), items,
		kernel.FormatMoney(subtotal), kernel.FormatMoney(salesTax), kernel.FormatMoney(total))
	b.WriteString(boxStyle.Render(summary))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
