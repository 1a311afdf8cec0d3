package discovery

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	consul "github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type agentCall struct {
	method string
	path   string
	body   []byte
}

// fakeAgent records calls to the agent endpoints and answers with status.
func fakeAgent(t *testing.T, status int) (*httptest.Server, func() []agentCall) {
	t.Helper()
	var mu sync.Mutex
	var calls []agentCall

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, agentCall{method: r.Method, path: r.URL.Path, body: body})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []agentCall {
		mu.Lock()
		defer mu.Unlock()
		return append([]agentCall(nil), calls...)
	}
}

func newTestRegistrar(t *testing.T, srv *httptest.Server) *Registrar {
	t.Helper()
	t.Setenv("CONSUL_HTTP_TOKEN", "")
	r, err := NewRegistrar(Options{
		Address:     strings.TrimPrefix(srv.URL, "http://"),
		ServiceName: "valorant-lootbox",
		Port:        8080,
		Host:        "lootbox-1",
		Tags:        []string{"v1"},
	})
	require.NoError(t, err)
	return r
}

func TestNewRegistration(t *testing.T) {
	reg := newRegistration(Options{ServiceName: "valorant-lootbox", Port: 9000}, "box")

	assert.Equal(t, "valorant-lootbox-box", reg.ID)
	assert.Equal(t, "valorant-lootbox", reg.Name)
	assert.Equal(t, 9000, reg.Port)
	require.NotNil(t, reg.Check)
	assert.Equal(t, "http://box:9000/healthz", reg.Check.HTTP)
	assert.Equal(t, DeregisterCriticalAt, reg.Check.DeregisterCriticalServiceAfter)
}

func TestRegisterAndDeregister(t *testing.T) {
	srv, calls := fakeAgent(t, http.StatusOK)
	r := newTestRegistrar(t, srv)

	require.NoError(t, r.Register())
	require.NoError(t, r.Deregister())

	got := calls()
	require.Len(t, got, 2)

	assert.Equal(t, http.MethodPut, got[0].method)
	assert.Equal(t, "/v1/agent/service/register", got[0].path)
	var sent consul.AgentServiceRegistration
	require.NoError(t, json.Unmarshal(got[0].body, &sent))
	assert.Equal(t, "valorant-lootbox-lootbox-1", sent.ID)
	assert.Equal(t, []string{"v1"}, sent.Tags)

	assert.Equal(t, http.MethodPut, got[1].method)
	assert.Equal(t, "/v1/agent/service/deregister/"+r.ServiceID(), got[1].path)
}

func TestRegister_AgentError(t *testing.T) {
	srv, _ := fakeAgent(t, http.StatusInternalServerError)
	r := newTestRegistrar(t, srv)

	err := r.Register()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "register valorant-lootbox-lootbox-1")
}
