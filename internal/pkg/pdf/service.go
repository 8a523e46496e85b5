// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/loyalty"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/order"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/pricing"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates a PDF receipt for a placed order
func (s *Service) GenerateReceipt(placed *order.Order) (*bytes.Buffer, error) {
	data := receiptData{
		ReceiptNumber: fmt.Sprintf("RCP-%s", placed.OrderNumber),
		ReceiptDate:   placed.CreatedAt.Format("January 2, 2006 15:04"),
		GeneratedAt:   time.Now().Format("January 2, 2006 15:04"),
		StoreName:     s.config.App.Name,
		Order:         placed,
		Subtotal:      formatBase(placed.SubtotalAmount),
		Discount:      formatBase(placed.PointsUsed * loyalty.PointValueMinorUnits),
		Total:         formatBase(placed.TotalAmount),
		Lines:         make([]receiptLine, 0, len(placed.Items)),
	}

	for _, item := range placed.Items {
		line := receiptLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Total:    formatBase(item.TotalPrice),
		}
		for _, opt := range item.Options {
			line.Options = append(line.Options, opt.Name)
		}
		data.Lines = append(data.Lines, line)
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) generateHTML(data receiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func formatBase(minor int64) string {
	return fmt.Sprintf("%s%.2f", pricing.Info(pricing.BaseCurrency).Symbol, pricing.ToMajor(minor))
}

type receiptData struct {
	ReceiptNumber string
	ReceiptDate   string
	GeneratedAt   string
	StoreName     string
	Order         *order.Order
	Lines         []receiptLine
	Subtotal      string
	Discount      string
	Total         string
}

type receiptLine struct {
	Name     string
	Quantity int
	Options  []string
	Total    string
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
        .header { border-bottom: 2px solid #eee; padding-bottom: 16px; margin-bottom: 24px; }
        .title { font-size: 24px; font-weight: bold; color: #b91c1c; }
        table { width: 100%; border-collapse: collapse; }
        th, td { padding: 8px 4px; text-align: left; border-bottom: 1px solid #eee; }
        th { background: #f9fafb; }
        .options { color: #6b7280; font-size: 12px; }
        .totals td { border: none; padding: 4px; }
        .grand { font-weight: bold; font-size: 16px; }
    </style>
</head>
<body>
    <div class="header">
        <div class="title">{{.StoreName}}</div>
        <div>Receipt {{.ReceiptNumber}}</div>
        <div>Order {{.Order.OrderNumber}} &middot; {{.ReceiptDate}}</div>
    </div>

    <table>
        <tr><th>Item</th><th>Qty</th><th>Total</th></tr>
        {{range .Lines}}
        <tr>
            <td>
                {{.Name}}
                {{if .Options}}<div class="options">{{range .Options}}{{.}} {{end}}</div>{{end}}
            </td>
            <td>{{.Quantity}}</td>
            <td>{{.Total}}</td>
        </tr>
        {{end}}
    </table>

    <table class="totals" style="margin-top: 16px;">
        <tr><td>Subtotal</td><td style="text-align: right;">{{.Subtotal}}</td></tr>
        <tr><td>Loyalty discount</td><td style="text-align: right;">-{{.Discount}}</td></tr>
        <tr class="grand"><td>Total</td><td style="text-align: right;">{{.Total}}</td></tr>
    </table>

    <p>Delivery address: {{.Order.Address}}</p>
    <p class="options">Generated {{.GeneratedAt}}</p>
</body>
</html>
`
