package app_test

import (
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/tonetui/tone/internal/app"
	"github.com/tonetui/tone/internal/tui/top"
)

// fakeFrontend is a scripted OpenNebula XML-RPC endpoint. Each method is
// answered with a canned payload, and every call is recorded so tests can
// assert what the app submitted.
type fakeFrontend struct {
	mu        sync.Mutex
	responses map[string]string
	failures  map[string]string
	calls     []string
}

func newFakeFrontend() *fakeFrontend {
	return &fakeFrontend{
		responses: map[string]string{
			"one.vmpool.info":   vmPool,
			"one.hostpool.info": hostPool,
			"one.vm.info":       vmDetail,
			"one.vm.action":     "0",
		},
		failures: make(map[string]string),
	}
}

func (f *fakeFrontend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var call struct {
		Method string `xml:"methodName"`
	}
	if err := xml.Unmarshal(raw, &call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.calls = append(f.calls, call.Method)
	msg, failed := f.failures[call.Method]
	body, ok := f.responses[call.Method]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "text/xml")
	switch {
	case failed:
		io.WriteString(w, rpcFailure(msg))
	case ok:
		io.WriteString(w, rpcSuccess(body))
	default:
		io.WriteString(w, rpcFailure("unsupported method "+call.Method))
	}
}

// fail scripts an error response for method, overriding any canned payload.
func (f *fakeFrontend) fail(method, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method] = msg
}

func (f *fakeFrontend) called(method string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Contains(f.calls, method)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// rpcSuccess wraps a payload in OpenNebula's [success, body, errcode]
// response convention. The payload is itself XML, so it is escaped into the
// string value the way the real frontend does.
func rpcSuccess(body string) string {
	return `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><boolean>1</boolean></value>
<value><string>` + xmlEscaper.Replace(body) + `</string></value>
<value><i4>0</i4></value>
</data></array></value></param></params></methodResponse>`
}

func rpcFailure(msg string) string {
	return `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><boolean>0</boolean></value>
<value><string>` + xmlEscaper.Replace(msg) + `</string></value>
<value><i4>1</i4></value>
</data></array></value></param></params></methodResponse>`
}

const vmPool = `<VM_POOL>
  <VM>
    <ID>0</ID>
    <NAME>web-1</NAME>
    <STATE>3</STATE>
    <LCM_STATE>3</LCM_STATE>
    <HISTORY_RECORDS><HISTORY><HOSTNAME>node-1</HOSTNAME></HISTORY></HISTORY_RECORDS>
    <TEMPLATE><CPU>1</CPU><MEMORY>2048</MEMORY></TEMPLATE>
  </VM>
  <VM>
    <ID>1</ID>
    <NAME>db-1</NAME>
    <STATE>8</STATE>
    <LCM_STATE>0</LCM_STATE>
    <HISTORY_RECORDS><HISTORY><HOSTNAME>node-2</HOSTNAME></HISTORY></HISTORY_RECORDS>
    <TEMPLATE><CPU>2</CPU><MEMORY>4096</MEMORY></TEMPLATE>
  </VM>
</VM_POOL>`

const hostPool = `<HOST_POOL>
  <HOST>
    <ID>0</ID>
    <NAME>node-1</NAME>
    <STATE>2</STATE>
    <CLUSTER>default</CLUSTER>
    <HOST_SHARE><RUNNING_VMS>2</RUNNING_VMS></HOST_SHARE>
  </HOST>
</HOST_POOL>`

const vmDetail = `<VM>
  <ID>0</ID>
  <NAME>web-1</NAME>
  <STATE>3</STATE>
  <LCM_STATE>3</LCM_STATE>
  <TEMPLATE><CPU>1</CPU><MEMORY>2048</MEMORY><DISK><IMAGE>alpine</IMAGE></DISK></TEMPLATE>
</VM>`

// setup serves the scripted frontend and starts the terminal app against
// it. Auto-refresh is left disabled so tests control exactly when the app
// talks to the frontend.
func setup(t *testing.T, f *fakeFrontend, opts ...func(*app.Config)) *teatest.TestModel {
	t.Helper()

	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	t.Setenv("ONE_AUTH", "oneadmin:opennebula")

	cfg := app.Config{
		Endpoint: srv.URL,
		LogLevel: "info",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return top.StartTest(t, cfg, 100, 30)
}

func waitFor(t *testing.T, tm *teatest.TestModel, cond func(s string) bool) {
	t.Helper()

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return cond(ansi.Strip(string(b)))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*10),
	)
}
