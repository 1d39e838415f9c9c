package reportgen

import (
	"bytes"
	"fmt"

	"github.com/vermaanurag1532/Restro-sub000/services"

	"github.com/signintech/gopdf"
)

// PDFGenerator renders order statistics into a one-page PDF.
type PDFGenerator struct {
	FontPath string
}

func NewPDFGenerator(fontPath string) *PDFGenerator {
	return &PDFGenerator{FontPath: fontPath}
}

func (g *PDFGenerator) Generate(stats *services.OrderStats) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := pdf.AddTTFFont("report", g.FontPath); err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	if err := pdf.SetFont("report", "", 14); err != nil {
		return nil, fmt.Errorf("failed to set font: %w", err)
	}

	pdf.SetX(40)
	pdf.SetY(30)
	pdf.Cell(nil, "Order Report - "+stats.RestaurantID)

	pdf.SetY(60)
	lines := []string{
		fmt.Sprintf("Period: %s to %s", stats.From.Format("2006-01-02"), stats.To.Format("2006-01-02")),
		fmt.Sprintf("Orders: %d", stats.OrderCount),
		fmt.Sprintf("Revenue: %.2f", stats.Revenue),
		fmt.Sprintf("Paid: %d   Served: %d", stats.PaidCount, stats.ServedCount),
	}
	for _, line := range lines {
		pdf.SetX(40)
		pdf.Cell(nil, line)
		pdf.Br(20)
	}

	pdf.Br(10)
	pdf.SetX(40)
	pdf.Cell(nil, "Top dishes")
	pdf.Br(20)
	for _, d := range stats.TopDishes {
		pdf.SetX(50)
		pdf.Cell(nil, fmt.Sprintf("%s - %d", d.Name, d.Quantity))
		pdf.Br(18)
	}

	var buf bytes.Buffer
	if err := pdf.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
