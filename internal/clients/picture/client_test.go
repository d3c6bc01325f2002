package picture_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/identity/internal/clients/picture"
)

func TestDownload(t *testing.T) {
	t.Parallel()

	allowed := []string{"image/jpeg", "image/png", "image/webp"}

	testCases := []struct {
		name        string
		contentType string
		body        []byte
		status      int
		wantErr     error
		anyErr      bool
		wantExt     string
	}{
		{name: "png", contentType: "image/png", body: []byte("png-bytes"), wantExt: "png"},
		{name: "jpeg with params", contentType: "image/jpeg; charset=binary", body: []byte("jpg"), wantExt: "jpg"},
		{name: "exactly at limit", contentType: "image/webp", body: bytes.Repeat([]byte{1}, 16), wantExt: "webp"},
		{name: "over limit", contentType: "image/png", body: bytes.Repeat([]byte{1}, 17), wantErr: picture.ErrTooLarge},
		{name: "not an image", contentType: "text/html", body: []byte("<html>"), wantErr: picture.ErrContentTypeBlocked},
		{name: "image type not allowed", contentType: "image/gif", body: []byte("gif"), wantErr: picture.ErrContentTypeBlocked},
		{name: "upstream error", contentType: "image/png", status: http.StatusNotFound, anyErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)

				if tc.status != 0 {
					w.WriteHeader(tc.status)
					return
				}

				_, _ = w.Write(tc.body)
			}))
			t.Cleanup(srv.Close)

			pic, err := picture.NewClient(time.Second, 16, allowed).Download(context.Background(), srv.URL)

			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.body, pic.Data)
				require.Equal(t, tc.wantExt, pic.Extension)
			}
		})
	}
}
