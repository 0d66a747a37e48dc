package service

// QRCodeService defines the interface for product share QR codes
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code linking to the product page
	GenerateProductQR(productID int64) ([]byte, error)

	// ParseProductQR extracts the product ID from decoded QR code content
	ParseProductQR(qrData string) (int64, error)
}
