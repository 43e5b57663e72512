package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"testing"
	"time"

	"noteverse-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const testSecret = "whsec_dGVzdC1zaWduaW5nLWtleQ==" // base64("test-signing-key")

func newTestVerifier(t *testing.T) *Verifier {
	t.Helper()
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)
	v.now = func() time.Time { return testNow }
	return v
}

func signPayload(key []byte, msgId, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", msgId, timestamp)
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestNewVerifier(t *testing.T) {
	_, err := NewVerifier("")
	assert.Error(t, err)

	_, err = NewVerifier("whsec_%%%not-base64%%%")
	assert.Error(t, err)

	v, err := NewVerifier(testSecret)
	require.NoError(t, err)
	assert.Equal(t, []byte("test-signing-key"), v.key)
}

func TestVerify_ValidSignature(t *testing.T) {
	v := newTestVerifier(t)
	payload := []byte(`{"type":"user.created"}`)
	ts := strconv.FormatInt(testNow.Unix(), 10)
	sig := signPayload(v.key, "msg_1", ts, payload)

	err := v.Verify(payload, "msg_1", ts, "v1,"+sig)
	assert.NoError(t, err)
}

func TestVerify_AnyOfMultipleSignatures(t *testing.T) {
	v := newTestVerifier(t)
	payload := []byte(`{"type":"user.created"}`)
	ts := strconv.FormatInt(testNow.Unix(), 10)
	good := signPayload(v.key, "msg_1", ts, payload)

	err := v.Verify(payload, "msg_1", ts, "v1,Ym9ndXM= v1,"+good)
	assert.NoError(t, err)
}

func TestVerify_TamperedBody(t *testing.T) {
	v := newTestVerifier(t)
	ts := strconv.FormatInt(testNow.Unix(), 10)
	sig := signPayload(v.key, "msg_1", ts, []byte(`{"a":1}`))

	err := v.Verify([]byte(`{"a":2}`), "msg_1", ts, "v1,"+sig)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestVerify_StaleTimestamp(t *testing.T) {
	v := newTestVerifier(t)
	payload := []byte(`{}`)
	stale := strconv.FormatInt(testNow.Add(-6*time.Minute).Unix(), 10)
	sig := signPayload(v.key, "msg_1", stale, payload)

	err := v.Verify(payload, "msg_1", stale, "v1,"+sig)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestVerify_FutureTimestamp(t *testing.T) {
	v := newTestVerifier(t)
	payload := []byte(`{}`)
	future := strconv.FormatInt(testNow.Add(6*time.Minute).Unix(), 10)
	sig := signPayload(v.key, "msg_1", future, payload)

	err := v.Verify(payload, "msg_1", future, "v1,"+sig)
	assert.Error(t, err)
}

func TestVerify_MissingHeaders(t *testing.T) {
	v := newTestVerifier(t)
	ts := strconv.FormatInt(testNow.Unix(), 10)

	assert.Error(t, v.Verify([]byte(`{}`), "", ts, "v1,sig"))
	assert.Error(t, v.Verify([]byte(`{}`), "msg_1", "", "v1,sig"))
	assert.Error(t, v.Verify([]byte(`{}`), "msg_1", ts, ""))
}

func TestVerify_UnknownSignatureVersion(t *testing.T) {
	v := newTestVerifier(t)
	payload := []byte(`{}`)
	ts := strconv.FormatInt(testNow.Unix(), 10)
	sig := signPayload(v.key, "msg_1", ts, payload)

	err := v.Verify(payload, "msg_1", ts, "v2,"+sig)
	assert.Error(t, err)
}

func TestVerify_MalformedTimestamp(t *testing.T) {
	v := newTestVerifier(t)
	err := v.Verify([]byte(`{}`), "msg_1", "not-a-number", "v1,sig")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}
