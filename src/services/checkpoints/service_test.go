package checkpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanTokenDeterministic(t *testing.T) {
	id := "0b9fca2e-5c3f-4f6d-9f93-1f6a2b3c4d5e"
	assert.Equal(t, ScanToken(id), ScanToken(id))
	assert.NotEqual(t, ScanToken(id), ScanToken("another-checkpoint"))
	assert.NotEmpty(t, ScanToken(id))
}

func TestQRPayloadCarriesIDAndToken(t *testing.T) {
	payload := QRPayload("cp-1", "tok-1")
	assert.Contains(t, payload, "cp-1")
	assert.Contains(t, payload, "tok-1")
}
