// Package domain contains the core types and interfaces of the service.
package domain

// UploadedFile is a single user-supplied file held in memory for the
// lifetime of one request.
type UploadedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SecureMode selects the direction of the secure operation.
type SecureMode string

const (
	SecureModeEncrypt SecureMode = "encrypt"
	SecureModeDecrypt SecureMode = "decrypt"
)

// ParseSecureMode validates a user-supplied mode string.
func ParseSecureMode(s string) (SecureMode, bool) {
	switch SecureMode(s) {
	case SecureModeEncrypt, SecureModeDecrypt:
		return SecureMode(s), true
	}
	return "", false
}

// ValidRotationAngle reports whether angle is one of the supported
// clockwise rotations.
func ValidRotationAngle(angle int) bool {
	return angle == 90 || angle == 180 || angle == 270
}
