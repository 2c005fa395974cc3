package transaction_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	txsvc "github.com/amirasaad/backoffice/pkg/service/transaction"
	"github.com/stretchr/testify/assert"
)

func sign(secret, manifest string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSignatureManifest(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "id:abc123;request-id:req-1;ts:1700000000;",
		txsvc.SignatureManifest("ABC123", "req-1", "1700000000"))
	assert.Equal(t, "ts:1700000000;", txsvc.SignatureManifest("", "", "1700000000"))
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()
	const secret = "s3cret"
	v1 := sign(secret, "id:123;request-id:req-1;ts:1700000000;")

	tests := []struct {
		name   string
		header string
		reqID  string
		dataID string
		want   bool
	}{
		{"valid", "ts=1700000000,v1=" + v1, "req-1", "123", true},
		{"valid with spaces", "ts=1700000000, v1=" + v1, "req-1", "123", true},
		{"different payment", "ts=1700000000,v1=" + v1, "req-1", "124", false},
		{"different request", "ts=1700000000,v1=" + v1, "req-2", "123", false},
		{"different ts", "ts=1700000001,v1=" + v1, "req-1", "123", false},
		{"missing v1", "ts=1700000000", "req-1", "123", false},
		{"not hex", "ts=1700000000,v1=zz", "req-1", "123", false},
		{"empty", "", "req-1", "123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, txsvc.VerifySignature(secret, tt.header, tt.reqID, tt.dataID))
		})
	}
}
