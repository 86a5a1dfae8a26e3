package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	signInPagePath  = "/"
	callbackPath    = "/auth/google/callback"
	csrfField       = "g_csrf_token"
	credentialField = "credential"
	maxFormBytes    = 64 << 10
)

var (
	ErrCSRFMismatch      = errors.New("google sign-in csrf token mismatch")
	ErrCallbackTimeout   = errors.New("timed out waiting for google sign-in")
	ErrMissingClientID   = errors.New("google client id is required")
	ErrMissingCredential = errors.New("google sign-in response has no credential")
)

var signInPage = template.Must(template.New("signin").Parse(`<!doctype html>
<html>
<head><title>Slim Design System sign-in</title>
<script src="https://accounts.google.com/gsi/client" async></script></head>
<body>
<div id="g_id_onload" data-client_id="{{.ClientID}}" data-ux_mode="redirect" data-login_uri="{{.LoginURI}}"></div>
<div class="g_id_signin" data-type="standard"></div>
</body>
</html>
`))

// CallbackServer serves a Google Identity Services button on loopback and
// receives the redirect-mode POST carrying the ID token.
type CallbackServer struct {
	clientID   string
	listener   net.Listener
	server     *http.Server
	resultCh   chan callbackResult
	resultOnce sync.Once
	closeOnce  sync.Once
}

type callbackResult struct {
	credential string
	err        error
}

func StartCallbackServer(listenAddr string, clientID string) (*CallbackServer, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen callback server: %w", err)
	}

	cb := &CallbackServer{
		clientID: clientID,
		listener: listener,
		resultCh: make(chan callbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(signInPagePath, cb.handleSignIn)
	mux.HandleFunc(callbackPath, cb.handleCallback)

	cb.server = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if serveErr := cb.server.Serve(cb.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			cb.trySendResult(callbackResult{err: serveErr})
		}
	}()

	return cb, nil
}

func (c *CallbackServer) baseURL() string {
	if tcpAddr, ok := c.listener.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://localhost:%d", tcpAddr.Port)
	}
	return "http://localhost"
}

// SignInURL is the page the user opens in a browser.
func (c *CallbackServer) SignInURL() string {
	return c.baseURL() + signInPagePath
}

func (c *CallbackServer) LoginURI() string {
	return c.baseURL() + callbackPath
}

// WaitForCredential blocks until the browser posts back, ctx ends or timeout
// elapses. The server is closed on return.
func (c *CallbackServer) WaitForCredential(ctx context.Context, timeout time.Duration) (string, error) {
	defer func() { _ = c.Close() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-c.resultCh:
		return result.credential, result.err
	case <-timer.C:
		return "", ErrCallbackTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *CallbackServer) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		closeErr = c.server.Close()
	})
	return closeErr
}

func (c *CallbackServer) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != signInPagePath {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = signInPage.Execute(w, struct {
		ClientID string
		LoginURI string
	}{ClientID: c.clientID, LoginURI: c.LoginURI()})
}

func (c *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	cookie, err := r.Cookie(csrfField)
	bodyToken := r.PostForm.Get(csrfField)
	if err != nil || cookie.Value == "" || bodyToken == "" ||
		subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(bodyToken)) != 1 {
		c.trySendResult(callbackResult{err: ErrCSRFMismatch})
		http.Error(w, "csrf token mismatch", http.StatusBadRequest)
		return
	}

	credential := r.PostForm.Get(credentialField)
	if credential == "" {
		c.trySendResult(callbackResult{err: ErrMissingCredential})
		http.Error(w, "missing credential", http.StatusBadRequest)
		return
	}

	c.trySendResult(callbackResult{credential: credential})
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Signed in. You can close this window."))
}

func (c *CallbackServer) trySendResult(result callbackResult) {
	c.resultOnce.Do(func() {
		c.resultCh <- result
	})
}
