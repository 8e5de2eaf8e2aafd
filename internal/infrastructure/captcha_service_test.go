package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/config"
)

func newCaptchaConfig(verifyURL string, devMode bool) *config.Config {
	return &config.Config{
		RecaptchaSiteKey:   "site-key",
		RecaptchaSecretKey: "secret-key",
		RecaptchaVerifyURL: verifyURL,
		VerifyTimeout:      2 * time.Second,
		DevMode:            devMode,
	}
}

func TestCaptchaVerifyDevModeBypass(t *testing.T) {
	// No server behind the URL: dev mode must not touch the network.
	service := NewCaptchaService(newCaptchaConfig("http://127.0.0.1:1/verify", true))
	assert.True(t, service.Verify(context.Background(), "anything"))
}

func TestCaptchaVerify(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    bool
	}{
		{
			name: "success true",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success": true}`))
			},
			want: true,
		},
		{
			name: "success false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success": false}`))
			},
			want: false,
		},
		{
			name: "success field absent",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"hostname": "example.com"}`))
			},
			want: false,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
			want: false,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			service := NewCaptchaService(newCaptchaConfig(server.URL, false))
			assert.Equal(t, tt.want, service.Verify(context.Background(), "token"))
		})
	}
}

func TestCaptchaVerifyPostsTokenAndSecret(t *testing.T) {
	var gotSecret, gotResponse string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotSecret = r.PostFormValue("secret")
		gotResponse = r.PostFormValue("response")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	service := NewCaptchaService(newCaptchaConfig(server.URL, false))
	assert.True(t, service.Verify(context.Background(), "the-token"))
	assert.Equal(t, "secret-key", gotSecret)
	assert.Equal(t, "the-token", gotResponse)
}

func TestCaptchaVerifyNetworkErrorFailsClosed(t *testing.T) {
	// Closed server: connection refused must count as failed verification.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	service := NewCaptchaService(newCaptchaConfig(server.URL, false))
	assert.False(t, service.Verify(context.Background(), "token"))
}
