package orders

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"vastra/models"
	"vastra/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/mongo"
)

// upiPayload builds the upi:// deep link encoded into the invoice QR.
func upiPayload(order models.Order) string {
	vpa := os.Getenv("UPI_VPA")
	if vpa == "" {
		vpa = "vastra@upi"
	}
	q := url.Values{}
	q.Set("pa", vpa)
	q.Set("pn", "Vastra Store")
	q.Set("am", fmt.Sprintf("%.2f", order.TotalAmount))
	q.Set("tn", order.OrderID)
	q.Set("cu", "INR")
	return "upi://pay?" + q.Encode()
}

// Invoice renders the order as a PDF. UPI orders that are still unpaid
// carry a scannable payment QR.
func Invoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order, err := findOrder(ctx, ps.ByName("orderid"))
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Failed to fetch order", http.StatusInternalServerError)
		return
	}
	if order.UserID != userID && !utils.IsAdminRequest(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Tax Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order: %s", order.OrderID))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", order.CreatedAt.Format(time.DateOnly)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Payment: %s (%s)", order.PaymentMethod, order.PaymentStatus))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(90, 8, "Item")
	pdf.Cell(25, 8, "Qty")
	pdf.Cell(35, 8, "Unit Price")
	pdf.Cell(35, 8, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	for _, it := range order.Items {
		name := it.Name
		if name == "" {
			name = it.ProductID
		}
		pdf.Cell(90, 7, name)
		pdf.Cell(25, 7, fmt.Sprintf("%d", it.Quantity))
		pdf.Cell(35, 7, fmt.Sprintf("%.2f", it.Price))
		pdf.Cell(35, 7, fmt.Sprintf("%.2f", it.Price*float64(it.Quantity)))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	for _, row := range [][2]string{
		{"Subtotal", fmt.Sprintf("%.2f", order.Subtotal)},
		{"Shipping", fmt.Sprintf("%.2f", order.Shipping)},
		{"Tax (18%)", fmt.Sprintf("%.2f", order.Tax)},
		{"Total", fmt.Sprintf("%.2f", order.TotalAmount)},
	} {
		pdf.Cell(150, 7, row[0])
		pdf.Cell(35, 7, row[1])
		pdf.Ln(7)
	}

	if order.PaymentMethod == "upi" && order.PaymentStatus == models.PaymentUnpaid {
		qrPNG, err := qrcode.Encode(upiPayload(order), qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
			return
		}
		imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("upiqr", imageOpts, bytes.NewReader(qrPNG))
		pdf.ImageOptions("upiqr", 150, 230, 40, 40, false, imageOpts, 0, "")
		pdf.SetXY(10, 240)
		pdf.Cell(0, 7, "Scan to pay via UPI")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
