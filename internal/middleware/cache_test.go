package middleware

import (
    "bytes"
    "net/http"
    "testing"
)

func TestPayloadCodecRoundTrip(t *testing.T) {
    hdr := make(http.Header)
    hdr.Set("Content-Type", "application/json")
    hdr.Set("X-Total", "4")
    body := []byte(`{"plans":[]}`)

    enc, err := encodePayload(http.StatusOK, hdr, body)
    if err != nil {
        t.Fatalf("encode: %v", err)
    }
    status, gotHdr, gotBody, ok := decodePayload(enc)
    if !ok {
        t.Fatal("decode reported failure")
    }
    if status != http.StatusOK {
        t.Errorf("status = %d, want 200", status)
    }
    if gotHdr.Get("Content-Type") != "application/json" || gotHdr.Get("X-Total") != "4" {
        t.Errorf("headers lost: %v", gotHdr)
    }
    if !bytes.Equal(gotBody, body) {
        t.Errorf("body = %q, want %q", gotBody, body)
    }
}

func TestPayloadCodecEmptyBody(t *testing.T) {
    enc, err := encodePayload(http.StatusNoContent, make(http.Header), nil)
    if err != nil {
        t.Fatalf("encode: %v", err)
    }
    status, _, body, ok := decodePayload(enc)
    if !ok || status != http.StatusNoContent || len(body) != 0 {
        t.Errorf("decode = (%d, %q, %v)", status, body, ok)
    }
}

func TestDecodePayloadGarbage(t *testing.T) {
    for _, bs := range [][]byte{nil, {}, {1, 2, 3}, []byte("short")} {
        if _, _, _, ok := decodePayload(bs); ok {
            t.Errorf("decodePayload(%v) accepted garbage", bs)
        }
    }
    // header length pointing past the buffer
    bad, _ := encodePayload(200, make(http.Header), []byte("x"))
    bad[7] = 0xFF
    if _, _, _, ok := decodePayload(bad); ok {
        t.Error("oversized header length accepted")
    }
}
