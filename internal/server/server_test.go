package server

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io"
	"math/big"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/crypto"
	"github.com/MKhiriev/go-user-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-user-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/metrics"
	"github.com/MKhiriev/go-user-keeper/internal/router"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/workers"
	"github.com/MKhiriev/go-user-keeper/models"
)

const localAddr = "127.0.0.1:0"

func newTestHandlers(t *testing.T, cfg config.Server, opts ...router.Option) *handler.Handlers {
	t.Helper()

	log := logger.Nop()
	storages, err := store.NewStorages(context.Background(), config.Storage{
		Driver: config.DriverFiles,
		Files:  config.Files{DataDir: t.TempDir()},
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services := service.NewServices(storages, crypto.NewHMACHasher("thisIsASecret"), log)
	h, err := handler.NewHandlers(services, cfg, log, opts...)
	require.NoError(t, err)

	return h
}

// startServer runs s until the test ends and returns a channel closed once
// run returns.
func startServer(t *testing.T, s *server) (context.CancelFunc, <-chan struct{}) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, s.run(ctx))
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})

	return cancel, done
}

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()

	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = client.Get(url)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestNewServer_NoServers(t *testing.T) {
	h := newTestHandlers(t, config.Server{GRPCAddress: localAddr})

	_, err := NewServer(h, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", localAddr)
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: localAddr, GRPCAddress: busy.Addr().String()}
	h := newTestHandlers(t, cfg)

	_, err = NewServer(h, cfg, logger.Nop())
	require.ErrorIs(t, err, errListening)
}

func TestNewServer_MissingCertificate(t *testing.T) {
	reserved, err := net.Listen("tcp", localAddr)
	require.NoError(t, err)
	httpAddr := reserved.Addr().String()
	require.NoError(t, reserved.Close())

	cfg := config.Server{
		HTTPAddress:  httpAddr,
		HTTPSAddress: localAddr,
		TLSCertFile:  filepath.Join(t.TempDir(), "cert.pem"),
		TLSKeyFile:   filepath.Join(t.TempDir(), "key.pem"),
	}
	h := newTestHandlers(t, cfg)

	_, err = NewServer(h, cfg, logger.Nop())
	require.ErrorIs(t, err, errLoadingCertificate)

	// the plaintext listener opened before the failure is released
	l, err := net.Listen("tcp", httpAddr)
	require.NoError(t, err)
	require.NoError(t, l.Close())
}

func TestServer_Run_HTTPAndMetrics(t *testing.T) {
	m := metrics.New()
	cfg := config.Server{HTTPAddress: localAddr, MetricsAddress: localAddr}
	h := newTestHandlers(t, cfg, router.WithObserver(m))

	srv, err := NewServer(h, cfg, logger.Nop(), WithMetrics(m.Handler()))
	require.NoError(t, err)
	s := srv.(*server)

	cancel, done := startServer(t, s)

	status, body := get(t, http.DefaultClient, "http://"+s.httpServer.Addr().String()+"/ping")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, body)

	status, body = get(t, http.DefaultClient, "http://"+s.metricsServer.Addr().String()+metricsPath)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `userkeeper_requests_total{method="get",route="ping",status="200"} 1`)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + s.httpServer.Addr().String() + "/ping")
	assert.Error(t, err)
}

func TestServer_Run_HTTPS(t *testing.T) {
	certFile, keyFile := writeSelfSignedCert(t)
	cfg := config.Server{HTTPSAddress: localAddr, TLSCertFile: certFile, TLSKeyFile: keyFile}
	h := newTestHandlers(t, cfg)

	srv, err := NewServer(h, cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)
	require.Nil(t, s.httpServer)

	startServer(t, s)

	client := &http.Client{Transport: &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // self-signed test certificate
	}}

	status, body := get(t, client, "https://"+s.httpsServer.Addr().String()+"/users")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"Error":"Missing required field"}`, body)
}

func TestServer_Run_GRPC(t *testing.T) {
	cfg := config.Server{GRPCAddress: localAddr}
	h := newTestHandlers(t, cfg)

	srv, err := NewServer(h, cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	startServer(t, s)

	conn, err := grpc.NewClient(s.gRPCServer.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := myGRPC.NewDispatcherClient(conn).Dispatch(ctx, &models.DispatchRequest{
		Path:   "users",
		Method: "post",
		Body:   `{"firstName":"Jane","lastName":"Doe","phone":"1234567890","password":"secret","tosAgreement":true}`,
	}, grpc.WaitForReady(true))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{}`, string(resp.Body))
}

type countingWorker struct {
	started chan struct{}
}

func (w *countingWorker) Run(ctx context.Context) {
	close(w.started)
	<-ctx.Done()
}

func TestServer_Run_StopsWorkers(t *testing.T) {
	cfg := config.Server{HTTPAddress: localAddr}
	h := newTestHandlers(t, cfg)

	w := &countingWorker{started: make(chan struct{})}

	srv, err := NewServer(h, cfg, logger.Nop(), WithWorkers(workers.New(w)))
	require.NoError(t, err)

	cancel, done := startServer(t, srv.(*server))

	select {
	case <-w.started:
	case <-time.After(2 * time.Second):
		t.Fatal("worker not started")
	}

	cancel()
	<-done
}

func TestServer_Run_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	require.Error(t, s.run(context.Background()))
}

func writeSelfSignedCert(t *testing.T) (string, string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	dir := t.TempDir()
	certFile := filepath.Join(dir, "cert.pem")
	keyFile := filepath.Join(dir, "key.pem")

	require.NoError(t, os.WriteFile(certFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))

	return certFile, keyFile
}

func TestMetricsServer_OnlyGet(t *testing.T) {
	m := metrics.New()
	s, err := newMetricsServer(localAddr, m.Handler(), 0, logger.Nop())
	require.NoError(t, err)

	go s.RunServer()
	t.Cleanup(s.Shutdown)

	url := "http://" + s.Addr().String() + metricsPath

	status, _ := get(t, http.DefaultClient, url)
	assert.Equal(t, http.StatusOK, status)

	resp, err := http.Post(url, "text/plain", strings.NewReader(""))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
