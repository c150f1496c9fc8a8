package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sunbelt-bank/bank-core/internal/directory"
	"github.com/sunbelt-bank/bank-core/pkg/configpkg"
	"github.com/sunbelt-bank/bank-core/pkg/randompkg"
)

const sheet = `Identification Number, First Name, Last Name, Date of Birth, Address, Phone Number, Checking Account Number, Checking Starting Balance, Savings Account Number, Savings Starting Balance, Credit Account Number, Credit Max, Credit Starting Balance
1,Sofia,Hernandez,12-March-1994,42 Mesa Verde Dr,(915) 555-0117,10,500,11,1500,12,5000,-100
2,Diego,Luna,07-July-1987,12 Alameda Ave,(915) 555-0142,20,800,21,2500,22,7000,-50
`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	dataFile := filepath.Join(dir, "customers.csv")
	require.NoError(t, os.WriteFile(dataFile, []byte(sheet), 0o644))

	config := configpkg.Config{
		ServerAddress:       "0.0.0.0:8080",
		DataFile:            dataFile,
		StatementDir:        filepath.Join(dir, "statements"),
		TokenSymmetricKey:   randompkg.String(32),
		AccessTokenDuration: time.Minute,
		Environment:         "test",
	}

	server, err := New(zerolog.Nop(), config)
	require.NoError(t, err)

	return server
}

func TestNew(t *testing.T) {
	server := newTestServer(t)

	err := server.Store.View(func(txn directory.Txn) error {
		c, err := txn.ByName("Sofia Hernandez")
		require.NoError(t, err)
		require.Equal(t, 1, c.ID)

		require.Len(t, txn.Customers(), 2)

		return nil
	})
	require.NoError(t, err)
}

func TestMetricsRoute(t *testing.T) {
	server := newTestServer(t)

	request, err := http.NewRequest(http.MethodGet, "/metrics", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthRequired(t *testing.T) {
	server := newTestServer(t)

	body := bytes.NewBufferString(`{"account_type":"Checking","amount":"100"}`)

	request, err := http.NewRequest(http.MethodPost, "/withdrawals", body)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLoginRejectsWrongSecret(t *testing.T) {
	server := newTestServer(t)

	body := bytes.NewBufferString(`{"full_name":"Sofia Hernandez","secret":"notright"}`)

	request, err := http.NewRequest(http.MethodPost, "/sessions", body)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestPersist(t *testing.T) {
	server := newTestServer(t)

	require.NoError(t, server.Persist(context.Background()))

	raw, err := os.ReadFile(server.Config.DataFile)
	require.NoError(t, err)
	require.Contains(t, string(raw), "Sofia")
	require.Contains(t, string(raw), "Diego")
}
