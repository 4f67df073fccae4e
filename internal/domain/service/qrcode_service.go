package service

// QRCodeService generates QR code images for device activation.
type QRCodeService interface {
	// GenerateActivationQR renders the activation confirmation URL for a
	// code as a PNG image.
	GenerateActivationQR(confirmURL string) ([]byte, error)
}
