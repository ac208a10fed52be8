package bookings

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

var voucherSecret = func() []byte {
	if s := os.Getenv("VOUCHER_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("fairway-voucher-dev-secret")
}()

// VoucherPayload returns bookingID|confirmationCode|timestamp|signature for
// front-desk scan verification.
func VoucherPayload(bookingID, confirmationCode string) string {
	data := fmt.Sprintf("%s|%s|%d", bookingID, confirmationCode, time.Now().Unix())

	h := hmac.New(sha256.New, voucherSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// VerifyVoucherPayload checks the HMAC signature on a scanned payload.
func VerifyVoucherPayload(payload string) bool {
	idx := -1
	for i := len(payload) - 1; i >= 0; i-- {
		if payload[i] == '|' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	data, sig := payload[:idx], payload[idx+1:]

	h := hmac.New(sha256.New, voucherSecret)
	h.Write([]byte(data))
	expected := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return hmac.Equal([]byte(sig), []byte(expected))
}

func typeLabel(itemType string) string {
	switch itemType {
	case models.TypeGolf:
		return "Tee Time"
	case models.TypeHotel:
		return "Hotel Stay"
	case models.TypeRestaurant:
		return "Dining Reservation"
	case models.TypeExperience:
		return "Experience"
	case models.TypePackage:
		return "Trip Package"
	default:
		return "Booking"
	}
}

// GET /api/bookings/:id/pdf
func PrintVoucher(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var booking models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": ps.ByName("id"), "userid": userID}).Decode(&booking)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	if booking.Status != models.BookingConfirmed {
		http.Error(w, "Voucher available for confirmed bookings only", http.StatusConflict)
		return
	}

	qrPNG, err := qrcode.Encode(VoucherPayload(booking.BookingID, booking.ConfirmationCode), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(40, 10, "Fairway Booking Voucher")
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, typeLabel(booking.ItemType))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Item: %s", booking.ItemName))
	pdf.Ln(8)
	if booking.Date != "" {
		when := booking.Date
		if booking.Start != "" {
			when += " " + booking.Start
		}
		pdf.Cell(0, 10, fmt.Sprintf("When: %s", when))
		pdf.Ln(8)
	}
	if booking.EndDate != "" && booking.EndDate != booking.Date {
		pdf.Cell(0, 10, fmt.Sprintf("Through: %s", booking.EndDate))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Confirmation Code: %s", booking.ConfirmationCode))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Amount Paid: USD %.2f", float64(booking.PricePaid)/100))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=voucher-"+booking.ConfirmationCode+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
